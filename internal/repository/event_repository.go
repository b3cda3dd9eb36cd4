package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/jockyhq/booking-api/internal/model"
)

// EventRepo provides CRUD operations for venue events.  Events are owned
// by a venue; ownership checks join through venues.user_id so handlers
// can answer with 404 instead of 403 and never reveal whether a foreign
// event exists.  All timestamp columns are assumed to be stored in UTC.
type EventRepo struct {
	db *sql.DB
}

// NewEventRepo returns a new EventRepo bound to the given database.
func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db} }

const dateLayout = "2006-01-02"

// EventUpdate is the typed partial-update record for events.  Only the
// non-nil fields are written; anything a client sends outside these
// members never reaches the database.  This replaces dynamic field
// allow-listing with a closed struct.
type EventUpdate struct {
	EventName *string  `json:"event_name"`
	EventDate *string  `json:"event_date"`
	StartTime *string  `json:"start_time"`
	EndTime   *string  `json:"end_time"`
	AmountSEK *float64 `json:"amount_sek"`
	Notes     *string  `json:"notes"`
	Status    *string  `json:"status"`
}

// Empty reports whether no updatable field is set.
func (u EventUpdate) Empty() bool {
	return u.EventName == nil && u.EventDate == nil && u.StartTime == nil &&
		u.EndTime == nil && u.AmountSEK == nil && u.Notes == nil && u.Status == nil
}

const eventCols = `e.id, e.venue_id, e.dance_floor_id, e.event_name, e.event_date,
				   e.start_time, e.end_time, e.amount_sek, e.notes, e.frequency,
				   e.status, e.created_by, e.created_at, e.updated_at`

// scanEvent reads one event row.  event_date is a DATE column which the
// driver hands back as time.Time under parseTime=true; start_time and
// end_time are TIME columns and arrive as strings.
func scanEvent(row interface{ Scan(...any) error }, e *model.Event) error {
	var date time.Time
	if err := row.Scan(&e.ID, &e.VenueID, &e.DanceFloorID, &e.EventName, &date,
		&e.StartTime, &e.EndTime, &e.AmountSEK, &e.Notes, &e.Frequency,
		&e.Status, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return err
	}
	e.EventDate = date.Format(dateLayout)
	return nil
}

// Create inserts a new event with status defaulting to 'created' and
// returns the stored row.
func (r *EventRepo) Create(ctx context.Context, venueID, createdBy uint64, danceFloorID *uint64,
	name, date, start, end string, amountSEK *float64, notes *string, frequency *string) (model.Event, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO events
		   (venue_id, dance_floor_id, event_name, event_date, start_time, end_time, amount_sek, notes, frequency, status, created_by)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		venueID, danceFloorID, name, date, start, end, amountSEK, notes, frequency,
		model.EventStatusCreated, createdBy)
	if err != nil {
		return model.Event{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Event{}, err
	}
	var e model.Event
	err = scanEvent(r.db.QueryRowContext(ctx,
		"SELECT "+eventCols+" FROM events e WHERE e.id=?", uint64(id)), &e)
	return e, err
}

// EventListRow is one row of the venue calendar listing.  Events joined
// against their bookings fan out into one row per booking match, which
// mirrors how clients consume the listing.
type EventListRow struct {
	model.Event
	VenueName      string  `json:"venue_name"`
	DanceFloorName *string `json:"dance_floor_name"`
	ArtistName     *string `json:"artist_name"`
	BookingStatus  *string `json:"booking_status"`
}

// ListForVenue returns the venue's events joined with venue name, dance
// floor name and any bookings' artist name and status.  The optional
// date range is inclusive on both bounds; the optional status filter is
// an exact match.  Rows are ordered by event date then start time.
func (r *EventRepo) ListForVenue(ctx context.Context, venueID uint64, startDate, endDate, status string) ([]EventListRow, error) {
	q := `SELECT ` + eventCols + `,
				 v.name, df.name, a.stage_name, b.status
		  FROM events e
		  LEFT JOIN venues v ON e.venue_id = v.id
		  LEFT JOIN dance_floors df ON e.dance_floor_id = df.id
		  LEFT JOIN bookings b ON e.id = b.event_id
		  LEFT JOIN artists a ON b.artist_id = a.id
		  WHERE e.venue_id = ?`
	args := []any{venueID}
	if startDate != "" && endDate != "" {
		q += " AND e.event_date BETWEEN ? AND ?"
		args = append(args, startDate, endDate)
	}
	if status != "" {
		q += " AND e.status = ?"
		args = append(args, status)
	}
	q += " ORDER BY e.event_date ASC, e.start_time ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []EventListRow{}
	for rows.Next() {
		var row EventListRow
		var date time.Time
		var dfName, artistName, bookingStatus sql.NullString
		if err := rows.Scan(&row.ID, &row.VenueID, &row.DanceFloorID, &row.EventName, &date,
			&row.StartTime, &row.EndTime, &row.AmountSEK, &row.Notes, &row.Frequency,
			&row.Status, &row.CreatedBy, &row.CreatedAt, &row.UpdatedAt,
			&row.VenueName, &dfName, &artistName, &bookingStatus); err != nil {
			return nil, err
		}
		row.EventDate = date.Format(dateLayout)
		if dfName.Valid {
			s := dfName.String
			row.DanceFloorName = &s
		}
		if artistName.Valid {
			s := artistName.String
			row.ArtistName = &s
		}
		if bookingStatus.Valid {
			s := bookingStatus.String
			row.BookingStatus = &s
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// EventDetail is a single event together with its venue and dance floor
// names, returned by GetByID.
type EventDetail struct {
	model.Event
	VenueName      string  `json:"venue_name"`
	DanceFloorName *string `json:"dance_floor_name"`
}

// GetByID returns one event with venue and dance floor names joined.
// Any authenticated user may fetch any event: the listing already only
// shows a venue its own calendar, and offers reference events by id.
func (r *EventRepo) GetByID(ctx context.Context, id uint64) (EventDetail, error) {
	const q = `SELECT ` + eventCols + `, v.name, df.name
			   FROM events e
			   LEFT JOIN venues v ON e.venue_id = v.id
			   LEFT JOIN dance_floors df ON e.dance_floor_id = df.id
			   WHERE e.id = ?`
	var det EventDetail
	var date time.Time
	var dfName sql.NullString
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&det.ID, &det.VenueID, &det.DanceFloorID, &det.EventName, &date,
		&det.StartTime, &det.EndTime, &det.AmountSEK, &det.Notes, &det.Frequency,
		&det.Status, &det.CreatedBy, &det.CreatedAt, &det.UpdatedAt,
		&det.VenueName, &dfName)
	if err != nil {
		return det, err
	}
	det.EventDate = date.Format(dateLayout)
	if dfName.Valid {
		s := dfName.String
		det.DanceFloorName = &s
	}
	return det, nil
}

// OwnedByUser reports whether the event exists and belongs to a venue
// owned by the given user.
func (r *EventRepo) OwnedByUser(ctx context.Context, eventID, userID uint64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM events e JOIN venues v ON e.venue_id = v.id
		 WHERE e.id = ? AND v.user_id = ?`, eventID, userID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Update applies the non-nil fields of upd to the event and returns the
// stored row.  An empty update returns ErrNoFields.  A status change is
// validated against the event state machine and rejected with
// ErrInvalidTransition when it is not a legal edge.  updated_at is
// always stamped.
func (r *EventRepo) Update(ctx context.Context, id uint64, upd EventUpdate) (model.Event, error) {
	if upd.Empty() {
		return model.Event{}, ErrNoFields
	}
	if upd.Status != nil {
		var current string
		if err := r.db.QueryRowContext(ctx,
			"SELECT status FROM events WHERE id=?", id).Scan(&current); err != nil {
			return model.Event{}, err
		}
		if !model.ValidEventStatus(*upd.Status) || !model.EventStatusCanTransition(current, *upd.Status) {
			return model.Event{}, ErrInvalidTransition
		}
	}

	sets := []string{}
	args := []any{}
	add := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}
	if upd.EventName != nil {
		add("event_name", *upd.EventName)
	}
	if upd.EventDate != nil {
		add("event_date", *upd.EventDate)
	}
	if upd.StartTime != nil {
		add("start_time", *upd.StartTime)
	}
	if upd.EndTime != nil {
		add("end_time", *upd.EndTime)
	}
	if upd.AmountSEK != nil {
		add("amount_sek", *upd.AmountSEK)
	}
	if upd.Notes != nil {
		add("notes", *upd.Notes)
	}
	if upd.Status != nil {
		add("status", *upd.Status)
	}
	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	q := "UPDATE events SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		return model.Event{}, err
	}
	var e model.Event
	err := scanEvent(r.db.QueryRowContext(ctx,
		"SELECT "+eventCols+" FROM events e WHERE e.id=?", id), &e)
	return e, err
}

// Delete hard-deletes the event.  Bookings referencing it are removed by
// the store's ON DELETE CASCADE rule.
func (r *EventRepo) Delete(ctx context.Context, id uint64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM events WHERE id=?", id)
	return err
}
