package repository

import (
	"context"
	"time"

	"github.com/bookingmap-cl/bookingmap/backend/internal/domain"
)

func (r *Repository) CreateReview(review *domain.Review) error {
	query := `
		INSERT INTO reviews (business_id, user_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{review.BusinessID, review.UserID, review.Rating, review.Comment}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&review.ID, &review.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetReviewsByBusiness(businessID int64) ([]*domain.Review, error) {
	query := `
		SELECT rv.id, rv.user_id, u.name, rv.rating, rv.comment, rv.created_at
		FROM reviews rv
		JOIN users u ON u.id = rv.user_id
		WHERE rv.business_id = $1
		ORDER BY rv.created_at DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []*domain.Review{}
	for rows.Next() {
		review := domain.Review{
			BusinessID: businessID,
		}
		dst := []any{&review.ID, &review.UserID, &review.UserName, &review.Rating, &review.Comment, &review.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}
