package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/jockyhq/booking-api/internal/model"
)

// BookingRepo provides operations on booking offers.  A booking links
// one event to one artist; the unique (event_id, artist_id) key means a
// venue can offer an event to an artist at most once.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

const bookingCols = "id, event_id, artist_id, status, offer_sent_at, responded_at, created_at, updated_at"

func scanBooking(row interface{ Scan(...any) error }, b *model.Booking) error {
	return row.Scan(&b.ID, &b.EventID, &b.ArtistID, &b.Status,
		&b.OfferSentAt, &b.RespondedAt, &b.CreatedAt, &b.UpdatedAt)
}

// Create inserts a pending offer stamped with offer_sent_at and returns
// the stored row.  A second offer for the same (event, artist) pair hits
// the unique key and is reported as ErrDuplicateBooking.
func (r *BookingRepo) Create(ctx context.Context, eventID, artistID uint64) (model.Booking, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO bookings (event_id, artist_id, status, offer_sent_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)`,
		eventID, artistID, model.BookingStatusPending)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return model.Booking{}, ErrDuplicateBooking
		}
		return model.Booking{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Booking{}, err
	}
	var b model.Booking
	err = scanBooking(r.db.QueryRowContext(ctx,
		"SELECT "+bookingCols+" FROM bookings WHERE id=?", uint64(id)), &b)
	return b, err
}

// BookingParties is a booking together with the user ids behind both
// sides of the offer, used to authorize responses without extra queries.
type BookingParties struct {
	model.Booking
	ArtistUserID uint64 // user owning the offered artist profile
	VenueUserID  uint64 // user owning the venue behind the event
}

// GetParties loads a booking plus the artist's and venue owner's user
// ids.  sql.ErrNoRows is returned when the booking does not exist.
func (r *BookingRepo) GetParties(ctx context.Context, id uint64) (BookingParties, error) {
	const q = `SELECT b.id, b.event_id, b.artist_id, b.status, b.offer_sent_at, b.responded_at,
					  b.created_at, b.updated_at, a.user_id, v.user_id
			   FROM bookings b
			   JOIN artists a ON b.artist_id = a.id
			   JOIN events e ON b.event_id = e.id
			   JOIN venues v ON e.venue_id = v.id
			   WHERE b.id = ?`
	var p BookingParties
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&p.ID, &p.EventID, &p.ArtistID, &p.Status, &p.OfferSentAt, &p.RespondedAt,
		&p.CreatedAt, &p.UpdatedAt, &p.ArtistUserID, &p.VenueUserID)
	return p, err
}

// UpdateStatus sets the booking status, stamps responded_at and returns
// the stored row.  Transition legality is checked by the handler against
// the state machine before this is called.
func (r *BookingRepo) UpdateStatus(ctx context.Context, id uint64, status string) (model.Booking, error) {
	_, err := r.db.ExecContext(ctx,
		"UPDATE bookings SET status = ?, responded_at = CURRENT_TIMESTAMP WHERE id = ?",
		status, id)
	if err != nil {
		return model.Booking{}, err
	}
	var b model.Booking
	err = scanBooking(r.db.QueryRowContext(ctx,
		"SELECT "+bookingCols+" FROM bookings WHERE id=?", id), &b)
	return b, err
}

// BookingDetail is one row of the offer listing, carrying enough event
// and venue context for a client to render it without further requests.
type BookingDetail struct {
	ID          uint64     `json:"id"`
	EventID     uint64     `json:"event_id"`
	ArtistID    uint64     `json:"artist_id"`
	Status      string     `json:"status"`
	OfferSentAt *time.Time `json:"offer_sent_at"`
	RespondedAt *time.Time `json:"responded_at"`
	EventName   string     `json:"event_name"`
	EventDate   string     `json:"event_date"`
	StartTime   string     `json:"start_time"`
	EndTime     string     `json:"end_time"`
	VenueName   string     `json:"venue_name"`
	ArtistName  string     `json:"artist_name"`
}

const bookingDetailQ = `SELECT b.id, b.event_id, b.artist_id, b.status, b.offer_sent_at, b.responded_at,
							   e.event_name, e.event_date, e.start_time, e.end_time,
							   v.name, a.stage_name
						FROM bookings b
						JOIN events e ON b.event_id = e.id
						JOIN venues v ON e.venue_id = v.id
						JOIN artists a ON b.artist_id = a.id`

func (r *BookingRepo) listDetails(ctx context.Context, q string, arg uint64) ([]BookingDetail, error) {
	rows, err := r.db.QueryContext(ctx, q, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []BookingDetail{}
	for rows.Next() {
		var d BookingDetail
		var date time.Time
		if err := rows.Scan(&d.ID, &d.EventID, &d.ArtistID, &d.Status, &d.OfferSentAt, &d.RespondedAt,
			&d.EventName, &date, &d.StartTime, &d.EndTime, &d.VenueName, &d.ArtistName); err != nil {
			return nil, err
		}
		d.EventDate = date.Format(dateLayout)
		out = append(out, d)
	}
	return out, rows.Err()
}

// ListForArtist returns all offers sent to the artist, newest first.
func (r *BookingRepo) ListForArtist(ctx context.Context, artistID uint64) ([]BookingDetail, error) {
	return r.listDetails(ctx,
		bookingDetailQ+" WHERE b.artist_id = ? ORDER BY b.id DESC", artistID)
}

// ListForVenue returns all offers on the venue's events, newest first.
func (r *BookingRepo) ListForVenue(ctx context.Context, venueID uint64) ([]BookingDetail, error) {
	return r.listDetails(ctx,
		bookingDetailQ+" WHERE e.venue_id = ? ORDER BY b.id DESC", venueID)
}
