package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/bookingmap-cl/bookingmap/backend/internal/config"
)

type Repository struct {
	cfg    *config.Config
	dbpool *sql.DB
}

func NewRepository(cfg *config.Config, dbpool *sql.DB) *Repository {
	return &Repository{
		cfg:    cfg,
		dbpool: dbpool,
	}
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT UNIQUE NOT NULL,
	phone TEXT NOT NULL DEFAULT '',
	password_hash TEXT NOT NULL,
	role TEXT NOT NULL DEFAULT 'user',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS businesses (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	category TEXT NOT NULL,
	type TEXT NOT NULL,
	business_type TEXT NOT NULL DEFAULT 'pyme',
	lat DOUBLE PRECISION NOT NULL,
	lng DOUBLE PRECISION NOT NULL,
	address TEXT NOT NULL,
	phone TEXT NOT NULL,
	owner_id BIGINT REFERENCES users(id) ON DELETE SET NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS business_schedules (
	id BIGSERIAL PRIMARY KEY,
	business_id BIGINT NOT NULL REFERENCES businesses(id) ON DELETE CASCADE,
	day_of_week INT NOT NULL CHECK (day_of_week BETWEEN 0 AND 6),
	is_open BOOLEAN NOT NULL DEFAULT true,
	open_time TEXT,
	close_time TEXT,
	booking_interval INT NOT NULL DEFAULT 30,
	UNIQUE (business_id, day_of_week)
);

CREATE TABLE IF NOT EXISTS bookings (
	id BIGSERIAL PRIMARY KEY,
	user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	business_id BIGINT NOT NULL REFERENCES businesses(id) ON DELETE CASCADE,
	business_name TEXT NOT NULL,
	business_address TEXT NOT NULL,
	user_name TEXT NOT NULL,
	user_email TEXT NOT NULL,
	date TEXT NOT NULL,
	time TEXT NOT NULL,
	service TEXT,
	notes TEXT,
	status TEXT NOT NULL DEFAULT 'Confirmed',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS bookings_business_date_idx
	ON bookings (business_id, date, time);

-- At most one non-cancelled booking per slot. The insert racing against a
-- concurrent insert for the same slot fails here, which the handler maps
-- to a conflict.
CREATE UNIQUE INDEX IF NOT EXISTS bookings_active_slot_key
	ON bookings (business_id, date, time)
	WHERE status <> 'Cancelled';

CREATE TABLE IF NOT EXISTS reviews (
	id BIGSERIAL PRIMARY KEY,
	business_id BIGINT NOT NULL REFERENCES businesses(id) ON DELETE CASCADE,
	user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	rating INT NOT NULL CHECK (rating BETWEEN 1 AND 5),
	comment TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (business_id, user_id)
);
`

// Migrate applies the idempotent schema at startup.
func (r *Repository) Migrate() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, schemaSQL)
	return err
}
