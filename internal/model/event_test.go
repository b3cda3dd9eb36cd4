package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEventStatus(t *testing.T) {
	for _, s := range []string{
		EventStatusCreated, EventStatusOffered, EventStatusConfirmed,
		EventStatusCancelled, EventStatusCompleted,
	} {
		assert.True(t, ValidEventStatus(s), s)
	}
	assert.False(t, ValidEventStatus("pending"))
	assert.False(t, ValidEventStatus(""))
}

func TestEventStatusCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from string
		to   string
		ok   bool
	}{
		{"created to offered", EventStatusCreated, EventStatusOffered, true},
		{"offered to confirmed", EventStatusOffered, EventStatusConfirmed, true},
		{"confirmed to completed", EventStatusConfirmed, EventStatusCompleted, true},
		{"created to cancelled", EventStatusCreated, EventStatusCancelled, true},
		{"offered to cancelled", EventStatusOffered, EventStatusCancelled, true},
		{"confirmed to cancelled", EventStatusConfirmed, EventStatusCancelled, true},

		{"created to confirmed", EventStatusCreated, EventStatusConfirmed, false},
		{"created to completed", EventStatusCreated, EventStatusCompleted, false},
		{"offered to completed", EventStatusOffered, EventStatusCompleted, false},
		{"cancelled to offered", EventStatusCancelled, EventStatusOffered, false},
		{"completed to cancelled", EventStatusCompleted, EventStatusCancelled, false},
		{"completed to created", EventStatusCompleted, EventStatusCreated, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.ok, EventStatusCanTransition(tc.from, tc.to))
		})
	}
}

func TestEventStatusCanTransitionSelfIsNoop(t *testing.T) {
	// full-record updates may resend the unchanged status
	assert.True(t, EventStatusCanTransition(EventStatusOffered, EventStatusOffered))
	assert.False(t, EventStatusCanTransition("bogus", "bogus"))
}
