package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/bookingmap-cl/bookingmap/backend/internal/domain"
)

func (r *Repository) CreateBooking(booking *domain.Booking) error {
	query := `
		INSERT INTO bookings (user_id, business_id, business_name, business_address, user_name, user_email, date, time, service, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, status, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	params := []any{
		booking.UserID,
		booking.BusinessID,
		booking.BusinessName,
		booking.BusinessAddress,
		booking.UserName,
		booking.UserEmail,
		booking.Date,
		booking.Time,
		booking.Service,
		booking.Notes,
	}
	dst := []any{&booking.ID, &booking.Status, &booking.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetBookingByID(id int64) (*domain.Booking, error) {
	query := `
		SELECT user_id, business_id, business_name, business_address, user_name, user_email, date, time, service, notes, status, created_at
		FROM bookings WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	booking := &domain.Booking{
		ID: id,
	}

	dst := []any{
		&booking.UserID,
		&booking.BusinessID,
		&booking.BusinessName,
		&booking.BusinessAddress,
		&booking.UserName,
		&booking.UserEmail,
		&booking.Date,
		&booking.Time,
		&booking.Service,
		&booking.Notes,
		&booking.Status,
		&booking.CreatedAt,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return booking, nil
}

func (r *Repository) GetAllBookings() ([]*domain.Booking, error) {
	query := `
		SELECT id, user_id, business_id, business_name, business_address, user_name, user_email, date, time, service, notes, status, created_at
		FROM bookings
		ORDER BY created_at DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *Repository) GetBookingsByUser(userID int64) ([]*domain.Booking, error) {
	query := `
		SELECT id, user_id, business_id, business_name, business_address, user_name, user_email, date, time, service, notes, status, created_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY date DESC, time DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetActiveBookingTimes returns the set of times already taken by
// non-cancelled bookings for the business on the given date. Both the
// availability listing and the admission pre-check read from here, so the
// two can never disagree about what counts as taken.
func (r *Repository) GetActiveBookingTimes(businessID int64, date string) (map[string]struct{}, error) {
	query := `
		SELECT time FROM bookings
		WHERE business_id = $1 AND date = $2 AND status <> $3
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, businessID, date, domain.BookingStatusCancelled)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	times := make(map[string]struct{})
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		times[t] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return times, nil
}

func (r *Repository) UpdateBookingStatus(id int64, status domain.BookingStatus) (*domain.Booking, error) {
	query := `
		UPDATE bookings SET status = $1 WHERE id = $2
		RETURNING user_id, business_id, business_name, business_address, user_name, user_email, date, time, service, notes, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	booking := &domain.Booking{
		ID:     id,
		Status: status,
	}

	dst := []any{
		&booking.UserID,
		&booking.BusinessID,
		&booking.BusinessName,
		&booking.BusinessAddress,
		&booking.UserName,
		&booking.UserEmail,
		&booking.Date,
		&booking.Time,
		&booking.Service,
		&booking.Notes,
		&booking.CreatedAt,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, status, id).Scan(dst...); err != nil {
		return nil, err
	}

	return booking, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := []*domain.Booking{}
	for rows.Next() {
		var booking domain.Booking
		dst := []any{
			&booking.ID,
			&booking.UserID,
			&booking.BusinessID,
			&booking.BusinessName,
			&booking.BusinessAddress,
			&booking.UserName,
			&booking.UserEmail,
			&booking.Date,
			&booking.Time,
			&booking.Service,
			&booking.Notes,
			&booking.Status,
			&booking.CreatedAt,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}
