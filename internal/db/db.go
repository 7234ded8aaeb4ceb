package db

import (
	"context"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

type DB struct {
	*sqlx.DB
}

// maxOpenConns bounds the pool; waiters queue inside database/sql when all
// connections are busy.
const maxOpenConns = 10

func Open(dsn string) (*DB, error) {
	xdb, err := sqlx.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	xdb.SetMaxOpenConns(maxOpenConns)
	if err := xdb.Ping(); err != nil {
		_ = xdb.Close()
		return nil, err
	}
	d := &DB{DB: xdb}
	// dev-only: ensure schema inline
	if err := d.ensureSchema(context.Background()); err != nil {
		_ = xdb.Close()
		return nil, err
	}
	return d, nil
}

// New wraps an existing sqlx handle (used by tests with a stub driver).
func New(xdb *sqlx.DB) *DB { return &DB{DB: xdb} }

func (d *DB) Close() error { return d.DB.Close() }

// Domain models (must match the schema below)

type Booking struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Email       string    `db:"email"`
	Contact     string    `db:"contact"`
	Arrival     string    `db:"arrival"`
	Departure   string    `db:"departure"`
	Adults      string    `db:"adults"`
	Kids        string    `db:"kids"`
	KidAges     string    `db:"kid_ages"`
	Nationality string    `db:"nationality"`
	CreatedAt   time.Time `db:"created_at"`
}

type Attendee struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Batch     string    `db:"batch"`
	Phone     string    `db:"phone"`
	CreatedAt time.Time `db:"created_at"`
}

// InsertBooking persists a booking submission and returns the generated id.
// Field values pass through as given; the column types are the only check.
func (d *DB) InsertBooking(ctx context.Context, b Booking) (int64, error) {
	res, err := d.ExecContext(ctx, `INSERT INTO bookings
		(name, email, contact, arrival, departure, adults, kids, kid_ages, nationality)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.Name, b.Email, b.Contact, b.Arrival, b.Departure, b.Adults, b.Kids, b.KidAges, b.Nationality)
	if err != nil {
		return 0, classify(err)
	}
	return res.LastInsertId()
}

// InsertAttendee persists an event registration and returns the generated id.
// A uniqueness breach on email comes back as ErrDuplicate.
func (d *DB) InsertAttendee(ctx context.Context, a Attendee) (int64, error) {
	res, err := d.ExecContext(ctx,
		"INSERT INTO attendees (name, email, batch, phone) VALUES (?, ?, ?, ?)",
		a.Name, a.Email, a.Batch, a.Phone)
	if err != nil {
		return 0, classify(err)
	}
	return res.LastInsertId()
}

// Dev-time schema (inline DDL)

func (d *DB) ensureSchema(ctx context.Context) error {
	stmts := []string{
		// bookings — submissions are stored as-is; no unique constraints,
		// duplicate submissions create duplicate rows
		`CREATE TABLE IF NOT EXISTS bookings (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			contact VARCHAR(64) NOT NULL,
			arrival DATE NOT NULL,
			departure DATE NOT NULL,
			adults INT NOT NULL,
			kids INT NOT NULL,
			kid_ages VARCHAR(255) NULL,
			nationality VARCHAR(128) NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		// attendees — email uniqueness is enforced here, not in the handler
		`CREATE TABLE IF NOT EXISTS attendees (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			batch VARCHAR(64) NOT NULL,
			phone VARCHAR(64) NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
	}

	for _, s := range stmts {
		if _, err := d.DB.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("schema: %w", err)
		}
	}
	return nil
}
