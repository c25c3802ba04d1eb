package repository

import (
	"context"
	"time"

	"github.com/bookingmap-cl/bookingmap/backend/internal/domain"
)

func (r *Repository) GetAllBusinesses() ([]*domain.Business, error) {
	// the review aggregate rides along so the directory listing does not
	// need a query per business
	query := `
		SELECT
			b.id,
			b.name,
			b.category,
			b.type,
			b.business_type,
			b.lat,
			b.lng,
			b.address,
			b.phone,
			b.owner_id,
			b.created_at,
			ROUND(AVG(rv.rating)::numeric, 1)::float8,
			COUNT(rv.id)
		FROM businesses b
		LEFT JOIN reviews rv ON rv.business_id = b.id
		GROUP BY b.id
		ORDER BY b.created_at DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	businesses := []*domain.Business{}
	for rows.Next() {
		var business domain.Business
		dst := []any{
			&business.ID,
			&business.Name,
			&business.Category,
			&business.Type,
			&business.BusinessType,
			&business.Lat,
			&business.Lng,
			&business.Address,
			&business.Phone,
			&business.OwnerID,
			&business.CreatedAt,
			&business.AvgRating,
			&business.ReviewCount,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		businesses = append(businesses, &business)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return businesses, nil
}

func (r *Repository) GetBusinessByID(id int64) (*domain.Business, error) {
	query := `
		SELECT name, category, type, business_type, lat, lng, address, phone, owner_id, created_at
		FROM businesses WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	business := &domain.Business{
		ID: id,
	}

	dst := []any{
		&business.Name,
		&business.Category,
		&business.Type,
		&business.BusinessType,
		&business.Lat,
		&business.Lng,
		&business.Address,
		&business.Phone,
		&business.OwnerID,
		&business.CreatedAt,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return business, nil
}

// CreateBusiness inserts the business and its weekly schedule rows in one
// transaction, so a half-created business never becomes visible.
func (r *Repository) CreateBusiness(business *domain.Business) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO businesses (name, category, type, business_type, lat, lng, address, phone, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`
	params := []any{
		business.Name,
		business.Category,
		business.Type,
		business.BusinessType,
		business.Lat,
		business.Lng,
		business.Address,
		business.Phone,
		business.OwnerID,
	}
	if err := tx.QueryRowContext(ctx, query, params...).Scan(&business.ID, &business.CreatedAt); err != nil {
		return err
	}

	for i := range business.Schedules {
		query = `
			INSERT INTO business_schedules (business_id, day_of_week, is_open, open_time, close_time, booking_interval)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`
		s := &business.Schedules[i]
		params := []any{business.ID, s.DayOfWeek, s.IsOpen, s.OpenTime, s.CloseTime, s.BookingInterval}
		if err := tx.QueryRowContext(ctx, query, params...).Scan(&s.ID); err != nil {
			return err
		}
		s.BusinessID = business.ID
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteBusiness(id int64) error {
	query := `
		DELETE FROM businesses WHERE id = $1
		RETURNING id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var deleted int64
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&deleted); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetSchedules(businessID int64) ([]domain.Schedule, error) {
	query := `
		SELECT id, day_of_week, is_open, open_time, close_time, booking_interval
		FROM business_schedules
		WHERE business_id = $1
		ORDER BY day_of_week
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	schedules := []domain.Schedule{}
	for rows.Next() {
		schedule := domain.Schedule{
			BusinessID: businessID,
		}
		dst := []any{
			&schedule.ID,
			&schedule.DayOfWeek,
			&schedule.IsOpen,
			&schedule.OpenTime,
			&schedule.CloseTime,
			&schedule.BookingInterval,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		schedules = append(schedules, schedule)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return schedules, nil
}

// ReplaceSchedules overwrites the business's weekly hours wholesale, which
// is how owners save them.
func (r *Repository) ReplaceSchedules(businessID int64, schedules []domain.Schedule) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM business_schedules WHERE business_id = $1`, businessID); err != nil {
		return err
	}

	for i := range schedules {
		query := `
			INSERT INTO business_schedules (business_id, day_of_week, is_open, open_time, close_time, booking_interval)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`
		s := &schedules[i]
		params := []any{businessID, s.DayOfWeek, s.IsOpen, s.OpenTime, s.CloseTime, s.BookingInterval}
		if err := tx.QueryRowContext(ctx, query, params...).Scan(&s.ID); err != nil {
			return err
		}
		s.BusinessID = businessID
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}
