package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus represents the commercial status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusDelivered BookingStatus = "delivered"
	StatusCollected BookingStatus = "collected"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a customer's reservation of a skip bin for a date range
type Booking struct {
	ID            int64
	BookingNumber string
	CustomerName  string
	BinNumber     *string // Assigned bin business number (nil until a bin is assigned)
	BinSize       string
	StartDate     time.Time
	EndDate       time.Time
	Status        BookingStatus
	Location      string
	Contact       string
	TotalAmount   decimal.Decimal
	Notes         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still holds its assigned bin
func (b *Booking) IsActive() bool {
	return b.Status != StatusCollected && b.Status != StatusCancelled
}

// IsTerminal returns true if no further status transition is permitted
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCollected
}

// HasBin returns true if a bin is assigned to the booking
func (b *Booking) HasBin() bool {
	return b.BinNumber != nil && *b.BinNumber != ""
}

// ValidBookingStatus reports whether s is one of the known booking statuses
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusDelivered, StatusCollected, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether a booking in status from may move to status to.
// The progression is pending -> confirmed -> delivered -> collected, but collected
// is reachable from any non-terminal state and cancelled from anything except
// collected. pending is the initial state only and is never a transition target.
func CanTransitionTo(from, to BookingStatus) bool {
	if from == StatusCollected {
		return false
	}

	switch to {
	case StatusConfirmed:
		return from == StatusPending || from == StatusConfirmed
	case StatusDelivered, StatusCollected:
		return from == StatusPending || from == StatusConfirmed || from == StatusDelivered
	case StatusCancelled:
		return true
	default:
		return false
	}
}

// BinCascadeStatus returns the bin status that mirrors a booking status,
// or false if the booking status does not drive the bin.
// The bin's physical status is a derived reflection of its booking's
// commercial status, so every ledger write with an assigned bin pushes
// the corresponding registry update.
func BinCascadeStatus(s BookingStatus) (BinStatus, bool) {
	switch s {
	case StatusPending, StatusConfirmed:
		return BinStatusBooked, true
	case StatusDelivered:
		return BinStatusDelivered, true
	case StatusCollected, StatusCancelled:
		return BinStatusAvailable, true
	default:
		return "", false
	}
}

// ActiveStatuses список статусов активных бронирований.
// Бронирование в одном из этих статусов удерживает назначенный бин.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusDelivered,
}

// BookingFilter фильтр для поиска бронирований
type BookingFilter struct {
	Text   *string        // Подстрочный поиск по клиенту, номеру бина и локации (опционально)
	Status *BookingStatus // Фильтр по статусу (опционально, nil — все статусы)
}
