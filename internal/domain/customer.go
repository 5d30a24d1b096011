package domain

import "time"

// Customer represents a customer account. Bookings and invoices refer to
// customers only by the company name string, not by id.
type Customer struct {
	ID            int64
	CompanyName   string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	City          string
	State         string
	ZipCode       string

	CreatedAt time.Time
	UpdatedAt time.Time
}
