package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"confirmed to delivered", StatusConfirmed, StatusDelivered, true},
		{"delivered to collected", StatusDelivered, StatusCollected, true},
		{"pending to delivered skips confirmation", StatusPending, StatusDelivered, true},
		{"pending to collected skips the whole chain", StatusPending, StatusCollected, true},
		{"confirmed to collected", StatusConfirmed, StatusCollected, true},
		{"repeated confirmation is idempotent", StatusConfirmed, StatusConfirmed, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"delivered to cancelled", StatusDelivered, StatusCancelled, true},
		{"cancelled to cancelled is idempotent", StatusCancelled, StatusCancelled, true},

		{"collected is terminal for cancelled", StatusCollected, StatusCancelled, false},
		{"collected is terminal for confirmed", StatusCollected, StatusConfirmed, false},
		{"collected is terminal for delivered", StatusCollected, StatusDelivered, false},
		{"delivered cannot go back to confirmed", StatusDelivered, StatusConfirmed, false},
		{"cancelled cannot be confirmed", StatusCancelled, StatusConfirmed, false},
		{"cancelled cannot be delivered", StatusCancelled, StatusDelivered, false},
		{"cancelled cannot be collected", StatusCancelled, StatusCollected, false},
		{"pending is never a target", StatusConfirmed, StatusPending, false},
		{"unknown target", StatusPending, BookingStatus("archived"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransitionTo(tt.from, tt.to))
		})
	}
}

func TestBinCascadeStatus(t *testing.T) {
	tests := []struct {
		booking BookingStatus
		bin     BinStatus
		ok      bool
	}{
		{StatusPending, BinStatusBooked, true},
		{StatusConfirmed, BinStatusBooked, true},
		{StatusDelivered, BinStatusDelivered, true},
		{StatusCollected, BinStatusAvailable, true},
		{StatusCancelled, BinStatusAvailable, true},
		{BookingStatus("archived"), "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.booking), func(t *testing.T) {
			bin, ok := BinCascadeStatus(tt.booking)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.bin, bin)
		})
	}
}

func TestBookingHasBin(t *testing.T) {
	b := &Booking{}
	assert.False(t, b.HasBin())

	empty := ""
	b.BinNumber = &empty
	assert.False(t, b.HasBin())

	number := "SB-001"
	b.BinNumber = &number
	assert.True(t, b.HasBin())
}

func TestBookingIsActive(t *testing.T) {
	for _, status := range ActiveStatuses {
		assert.True(t, (&Booking{Status: status}).IsActive(), "status %s", status)
	}
	assert.False(t, (&Booking{Status: StatusCollected}).IsActive())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsActive())
}
