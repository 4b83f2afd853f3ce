// Package repository implements the data access layer over MySQL.  Each
// repository wraps a *sql.DB and exposes the lookups and mutations the
// service layer consumes.  Absent rows are reported as (nil, nil) so
// services can express domain checks without caring about sql.ErrNoRows.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/event-hotel-booking/internal/model"
)

// EnrollmentRepo provides lookups and upserts for enrollments and their
// mailing addresses.
type EnrollmentRepo struct {
	db *sql.DB
}

// NewEnrollmentRepo returns a new EnrollmentRepo bound to the given database.
func NewEnrollmentRepo(db *sql.DB) *EnrollmentRepo { return &EnrollmentRepo{db: db} }

// FindByUserID returns the user's enrollment or (nil, nil) when the user
// has not enrolled yet.
func (r *EnrollmentRepo) FindByUserID(ctx context.Context, userID uint64) (*model.Enrollment, error) {
	const q = `SELECT id, user_id, name, document, birthday, phone, created_at, updated_at
	           FROM enrollments WHERE user_id = ? LIMIT 1`
	var e model.Enrollment
	err := r.db.QueryRowContext(ctx, q, userID).Scan(
		&e.ID, &e.UserID, &e.Name, &e.Document, &e.Birthday, &e.Phone, &e.CreatedAt, &e.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// FindAddress returns the enrollment's address or (nil, nil) when none
// has been registered.
func (r *EnrollmentRepo) FindAddress(ctx context.Context, enrollmentID uint64) (*model.Address, error) {
	const q = `SELECT id, enrollment_id, postal_code, street, number, district, detail, city, state, created_at, updated_at
	           FROM addresses WHERE enrollment_id = ? LIMIT 1`
	var (
		a      model.Address
		detail sql.NullString
	)
	err := r.db.QueryRowContext(ctx, q, enrollmentID).Scan(
		&a.ID, &a.EnrollmentID, &a.PostalCode, &a.Street, &a.Number, &a.District, &detail,
		&a.City, &a.State, &a.CreatedAt, &a.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if detail.Valid {
		d := detail.String
		a.Detail = &d
	}
	return &a, nil
}

// Upsert inserts the user's enrollment or updates its mutable fields when
// one already exists.  The enrollment id is returned in both cases.
func (r *EnrollmentRepo) Upsert(ctx context.Context, e model.Enrollment) (uint64, error) {
	const q = `INSERT INTO enrollments (user_id, name, document, birthday, phone)
	           VALUES (?, ?, ?, ?, ?)
	           ON DUPLICATE KEY UPDATE name = VALUES(name), document = VALUES(document),
	                                   birthday = VALUES(birthday), phone = VALUES(phone)`
	if _, err := r.db.ExecContext(ctx, q, e.UserID, e.Name, e.Document, e.Birthday, e.Phone); err != nil {
		return 0, err
	}
	// LastInsertId is unreliable for ON DUPLICATE KEY UPDATE, so read the
	// id back by the unique user_id.
	var id uint64
	if err := r.db.QueryRowContext(ctx,
		`SELECT id FROM enrollments WHERE user_id = ? LIMIT 1`, e.UserID).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// UpsertAddress replaces the enrollment's address, creating it on first
// write.
func (r *EnrollmentRepo) UpsertAddress(ctx context.Context, a model.Address) error {
	const q = `INSERT INTO addresses (enrollment_id, postal_code, street, number, district, detail, city, state)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	           ON DUPLICATE KEY UPDATE postal_code = VALUES(postal_code), street = VALUES(street),
	                                   number = VALUES(number), district = VALUES(district),
	                                   detail = VALUES(detail), city = VALUES(city), state = VALUES(state)`
	var detail interface{}
	if a.Detail != nil {
		detail = *a.Detail
	}
	_, err := r.db.ExecContext(ctx, q, a.EnrollmentID, a.PostalCode, a.Street, a.Number, a.District, detail, a.City, a.State)
	return err
}
