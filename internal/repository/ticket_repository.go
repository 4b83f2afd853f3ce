package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/event-hotel-booking/internal/model"
)

// TicketRepo provides lookups for tickets and ticket types.  Ticket types
// are read-only reference data; tickets are created once per enrollment
// and paid for outside this service.
type TicketRepo struct {
	db *sql.DB
}

// NewTicketRepo returns a new TicketRepo bound to the given database.
func NewTicketRepo(db *sql.DB) *TicketRepo { return &TicketRepo{db: db} }

const ticketWithTypeColumns = `t.id, t.enrollment_id, t.ticket_type_id, t.status, t.created_at, t.updated_at,
	tt.id, tt.name, tt.price_cents, tt.is_remote, tt.includes_hotel, tt.created_at, tt.updated_at`

func scanTicketWithType(row *sql.Row) (*model.TicketWithType, error) {
	var tw model.TicketWithType
	err := row.Scan(
		&tw.ID, &tw.EnrollmentID, &tw.TicketTypeID, &tw.Status, &tw.CreatedAt, &tw.UpdatedAt,
		&tw.Type.ID, &tw.Type.Name, &tw.Type.PriceCents, &tw.Type.IsRemote, &tw.Type.IncludesHotel,
		&tw.Type.CreatedAt, &tw.Type.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tw, nil
}

// ListTypes returns all ticket types ordered by price.
func (r *TicketRepo) ListTypes(ctx context.Context) ([]model.TicketType, error) {
	const q = `SELECT id, name, price_cents, is_remote, includes_hotel, created_at, updated_at
	           FROM ticket_types ORDER BY price_cents ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []model.TicketType
	for rows.Next() {
		var tt model.TicketType
		if err := rows.Scan(&tt.ID, &tt.Name, &tt.PriceCents, &tt.IsRemote, &tt.IncludesHotel,
			&tt.CreatedAt, &tt.UpdatedAt); err != nil {
			return nil, err
		}
		types = append(types, tt)
	}
	return types, rows.Err()
}

// TypeExists reports whether a ticket type with the given id exists.
func (r *TicketRepo) TypeExists(ctx context.Context, typeID uint64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM ticket_types WHERE id = ? LIMIT 1`, typeID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// FindByEnrollmentID returns the enrollment's ticket joined with its type,
// or (nil, nil) when the enrollment holds no ticket.
func (r *TicketRepo) FindByEnrollmentID(ctx context.Context, enrollmentID uint64) (*model.TicketWithType, error) {
	q := `SELECT ` + ticketWithTypeColumns + `
	      FROM tickets t JOIN ticket_types tt ON tt.id = t.ticket_type_id
	      WHERE t.enrollment_id = ? LIMIT 1`
	return scanTicketWithType(r.db.QueryRowContext(ctx, q, enrollmentID))
}

// Create inserts a RESERVED ticket for the enrollment and returns it
// joined with its type.  A duplicate enrollment_id surfaces as
// model.ErrTicketExists via the unique index.
func (r *TicketRepo) Create(ctx context.Context, enrollmentID, typeID uint64) (*model.TicketWithType, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO tickets (enrollment_id, ticket_type_id, status) VALUES (?, ?, ?)`,
		enrollmentID, typeID, model.TicketStatusReserved)
	if err != nil {
		if strings.Contains(err.Error(), "1062") {
			return nil, model.ErrTicketExists
		}
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	q := `SELECT ` + ticketWithTypeColumns + `
	      FROM tickets t JOIN ticket_types tt ON tt.id = t.ticket_type_id
	      WHERE t.id = ? LIMIT 1`
	return scanTicketWithType(r.db.QueryRowContext(ctx, q, uint64(id)))
}
