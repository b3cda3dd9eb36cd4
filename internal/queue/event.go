// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingOfferedEvent is published when a venue sends a booking offer to
// an artist.  It contains enough information for downstream consumers to
// log, notify, or trigger analytics without querying the primary database.
type BookingOfferedEvent struct {
	BookingID   uint64  `json:"booking_id"`
	EventID     uint64  `json:"event_id"`
	ArtistID    uint64  `json:"artist_id"`
	VenueID     uint64  `json:"venue_id"`
	VenueName   string  `json:"venue_name"`
	EventName   string  `json:"event_name"`
	EventDate   string  `json:"event_date"`
	AmountSEK   *float64 `json:"amount_sek,omitempty"`
	OfferSentAt string  `json:"offer_sent_at"`
}

// BookingRespondedEvent is published when a booking leaves the pending
// state: the artist accepted or declined, or either party cancelled.
type BookingRespondedEvent struct {
	BookingID   uint64 `json:"booking_id"`
	EventID     uint64 `json:"event_id"`
	ArtistID    uint64 `json:"artist_id"`
	Status      string `json:"status"`
	RespondedBy uint64 `json:"responded_by"`
	RespondedAt string `json:"responded_at"`
}
