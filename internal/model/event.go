package model

import "time"

// Event status values stored in events.status.  Transitions between them
// are validated by EventStatusCanTransition rather than trusted from the
// client.
const (
	EventStatusCreated   = "created"
	EventStatusOffered   = "offered"
	EventStatusConfirmed = "confirmed"
	EventStatusCancelled = "cancelled"
	EventStatusCompleted = "completed"
)

// Frequency values stored in events.frequency.
const (
	FrequencySingle   = "single"
	FrequencyMultiple = "multiple"
)

// Event is a venue-owned calendar entry that artists can be offered.
// Date and the two times are kept as strings ("2006-01-02" and
// "15:04:05") because the underlying columns are DATE and TIME, which the
// MySQL driver does not map onto time.Time.
//
// Fields:
//  ID           – primary key identifier.
//  VenueID      – owning venue.
//  DanceFloorID – optional floor the event takes place on.
//  EventName    – display name of the event.
//  EventDate    – calendar date (YYYY-MM-DD).
//  StartTime    – start of the time window (HH:MM:SS).
//  EndTime      – end of the time window (HH:MM:SS).
//  AmountSEK    – offered fee in SEK (nullable).
//  Notes        – free-text notes.
//  Frequency    – "single" or "multiple".
//  Status       – lifecycle status, see constants above.
//  CreatedBy    – user who created the event.
//  CreatedAt    – creation timestamp.
//  UpdatedAt    – last update timestamp.
type Event struct {
	ID           uint64    `json:"id"`
	VenueID      uint64    `json:"venue_id"`
	DanceFloorID *uint64   `json:"dance_floor_id"`
	EventName    string    `json:"event_name"`
	EventDate    string    `json:"event_date"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	AmountSEK    *float64  `json:"amount_sek"`
	Notes        *string   `json:"notes"`
	Frequency    *string   `json:"frequency"`
	Status       string    `json:"status"`
	CreatedBy    uint64    `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// eventTransitions enumerates the legal status edges.  Cancellation is
// reachable from every non-terminal status; completed only follows a
// confirmed event.
var eventTransitions = map[string][]string{
	EventStatusCreated:   {EventStatusOffered, EventStatusCancelled},
	EventStatusOffered:   {EventStatusConfirmed, EventStatusCancelled},
	EventStatusConfirmed: {EventStatusCompleted, EventStatusCancelled},
	EventStatusCancelled: {},
	EventStatusCompleted: {},
}

// ValidEventStatus reports whether s is a known event status value.
func ValidEventStatus(s string) bool {
	_, ok := eventTransitions[s]
	return ok
}

// EventStatusCanTransition reports whether an event may move from one
// status to another.  Setting the same status again is treated as a no-op
// and allowed so that full-record updates do not have to special-case an
// unchanged status field.
func EventStatusCanTransition(from, to string) bool {
	if from == to {
		return ValidEventStatus(from)
	}
	for _, next := range eventTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
