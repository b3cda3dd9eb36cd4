package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidBookingResponse(t *testing.T) {
	assert.True(t, ValidBookingResponse(BookingStatusAccepted))
	assert.True(t, ValidBookingResponse(BookingStatusDeclined))
	assert.True(t, ValidBookingResponse(BookingStatusCancelled))

	// pending is system-set, never a caller response
	assert.False(t, ValidBookingResponse(BookingStatusPending))
	assert.False(t, ValidBookingResponse("confirmed"))
	assert.False(t, ValidBookingResponse(""))
}

func TestBookingStatusCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from string
		to   string
		ok   bool
	}{
		{"accept pending", BookingStatusPending, BookingStatusAccepted, true},
		{"decline pending", BookingStatusPending, BookingStatusDeclined, true},
		{"cancel pending", BookingStatusPending, BookingStatusCancelled, true},
		{"cancel accepted", BookingStatusAccepted, BookingStatusCancelled, true},

		{"accept accepted", BookingStatusAccepted, BookingStatusAccepted, false},
		{"decline accepted", BookingStatusAccepted, BookingStatusDeclined, false},
		{"accept declined", BookingStatusDeclined, BookingStatusAccepted, false},
		{"cancel declined", BookingStatusDeclined, BookingStatusCancelled, false},
		{"cancel cancelled", BookingStatusCancelled, BookingStatusCancelled, false},
		{"revive cancelled", BookingStatusCancelled, BookingStatusAccepted, false},
		{"back to pending", BookingStatusAccepted, BookingStatusPending, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.ok, BookingStatusCanTransition(tc.from, tc.to))
		})
	}
}
