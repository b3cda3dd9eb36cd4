package model

import "time"

// Booking status values stored in bookings.status.
const (
	BookingStatusPending   = "pending"
	BookingStatusAccepted  = "accepted"
	BookingStatusDeclined  = "declined"
	BookingStatusCancelled = "cancelled"
)

// Booking is the offer relationship between one event and one artist.
// The (event_id, artist_id) pair is unique: a venue can offer a given
// event to an artist at most once.
//
// Fields:
//  ID          – primary key identifier.
//  EventID     – event the offer is for.
//  ArtistID    – artist the offer was sent to.
//  Status      – offer state, see constants above.
//  OfferSentAt – when the venue sent the offer.
//  RespondedAt – when the artist (or venue, for cancellation) last responded.
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – last update timestamp.
type Booking struct {
	ID          uint64     `json:"id"`
	EventID     uint64     `json:"event_id"`
	ArtistID    uint64     `json:"artist_id"`
	Status      string     `json:"status"`
	OfferSentAt *time.Time `json:"offer_sent_at"`
	RespondedAt *time.Time `json:"responded_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ValidBookingResponse reports whether s is a status a caller may move a
// booking into.  Pending is only ever set by the system when the offer is
// created.
func ValidBookingResponse(s string) bool {
	switch s {
	case BookingStatusAccepted, BookingStatusDeclined, BookingStatusCancelled:
		return true
	}
	return false
}

// BookingStatusCanTransition reports whether a booking may move from one
// status to another.  Accept and decline require a pending offer;
// cancellation is allowed while the offer is pending or accepted.
// Declined and cancelled are terminal.
func BookingStatusCanTransition(from, to string) bool {
	switch to {
	case BookingStatusAccepted, BookingStatusDeclined:
		return from == BookingStatusPending
	case BookingStatusCancelled:
		return from == BookingStatusPending || from == BookingStatusAccepted
	}
	return false
}
