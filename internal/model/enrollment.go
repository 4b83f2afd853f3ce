package model

import "time"

// Enrollment is a user's registration record for the event.  Each user
// has at most one enrollment (enforced by a unique index on user_id) and
// the enrollment optionally owns a single mailing address.  Core fields
// are written once at creation; only the address may be upserted later.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – owning user (unique).
//  Name      – attendee's full name.
//  Document  – national identity document number.
//  Birthday  – attendee's date of birth.
//  Phone     – contact phone number.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Enrollment struct {
	ID        uint64    // enrollments.id
	UserID    uint64    // enrollments.user_id
	Name      string    // enrollments.name
	Document  string    // enrollments.document
	Birthday  time.Time // enrollments.birthday
	Phone     string    // enrollments.phone
	CreatedAt time.Time // enrollments.created_at
	UpdatedAt time.Time // enrollments.updated_at
}

// Address is the mailing address attached to an enrollment.  At most one
// row exists per enrollment (unique index on enrollment_id); upserts
// replace the previous value.
type Address struct {
	ID           uint64    // addresses.id
	EnrollmentID uint64    // addresses.enrollment_id
	PostalCode   string    // addresses.postal_code
	Street       string    // addresses.street
	Number       string    // addresses.number
	District     string    // addresses.district
	Detail       *string   // addresses.detail (nullable)
	City         string    // addresses.city
	State        string    // addresses.state
	CreatedAt    time.Time // addresses.created_at
	UpdatedAt    time.Time // addresses.updated_at
}
