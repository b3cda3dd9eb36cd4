package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jockyhq/booking-api/internal/model"
)

var eventRowCols = []string{
	"id", "venue_id", "dance_floor_id", "event_name", "event_date",
	"start_time", "end_time", "amount_sek", "notes", "frequency",
	"status", "created_by", "created_at", "updated_at",
}

func eventRow(id uint64, name, status string) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows(eventRowCols).
		AddRow(id, 1, nil, name, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			"20:00:00", "23:00:00", nil, nil, nil, status, 1, now, now)
}

func TestEventUpdateAppliesOnlySetFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewEventRepo(db)

	name := "Gig"
	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE events SET event_name = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?")).
		WithArgs("Gig", uint64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT e.id, e.venue_id, .+ FROM events e WHERE e.id=").
		WithArgs(uint64(5)).
		WillReturnRows(eventRow(5, "Gig", model.EventStatusCreated))

	e, err := repo.Update(context.Background(), 5, EventUpdate{EventName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Gig", e.EventName)
	assert.Equal(t, "2025-06-01", e.EventDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventUpdateEmpty(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewEventRepo(db)

	_, err = repo.Update(context.Background(), 5, EventUpdate{})
	assert.ErrorIs(t, err, ErrNoFields)
}

func TestEventUpdateRejectsIllegalStatusTransition(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewEventRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT status FROM events WHERE id=?")).
		WithArgs(uint64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(model.EventStatusCreated))

	to := model.EventStatusCompleted
	_, err = repo.Update(context.Background(), 5, EventUpdate{Status: &to})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventUpdateAllowsLegalStatusTransition(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewEventRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT status FROM events WHERE id=?")).
		WithArgs(uint64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(model.EventStatusCreated))
	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE events SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?")).
		WithArgs(model.EventStatusOffered, uint64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT e.id, e.venue_id, .+ FROM events e WHERE e.id=").
		WithArgs(uint64(5)).
		WillReturnRows(eventRow(5, "Gig", model.EventStatusOffered))

	to := model.EventStatusOffered
	e, err := repo.Update(context.Background(), 5, EventUpdate{Status: &to})
	require.NoError(t, err)
	assert.Equal(t, model.EventStatusOffered, e.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListForVenueDateRangeAndStatusFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewEventRepo(db)

	cols := append(append([]string{}, eventRowCols...),
		"venue_name", "dance_floor_name", "artist_name", "booking_status")
	now := time.Now().UTC()
	rows := sqlmock.NewRows(cols).
		AddRow(1, 1, nil, "Gig", time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
			"20:00:00", "23:00:00", nil, nil, nil, "created", 1, now, now,
			"Venue A", nil, "DJ Nova", "accepted")

	mock.ExpectQuery("FROM events e .+WHERE e.venue_id = \\? AND e.event_date BETWEEN \\? AND \\? AND e.status = \\? ORDER BY e.event_date ASC, e.start_time ASC").
		WithArgs(uint64(1), "2025-01-01", "2025-01-31", "created").
		WillReturnRows(rows)

	out, err := repo.ListForVenue(context.Background(), 1, "2025-01-01", "2025-01-31", "created")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "2025-01-10", out[0].EventDate)
	assert.Equal(t, "Venue A", out[0].VenueName)
	require.NotNil(t, out[0].BookingStatus)
	assert.Equal(t, "accepted", *out[0].BookingStatus)
	assert.Nil(t, out[0].DanceFloorName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOwnedByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewEventRepo(db)

	mock.ExpectQuery("SELECT 1 FROM events e JOIN venues v ON e.venue_id = v.id WHERE e.id = \\? AND v.user_id = \\?").
		WithArgs(uint64(5), uint64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	owned, err := repo.OwnedByUser(context.Background(), 5, 2)
	require.NoError(t, err)
	assert.True(t, owned)

	mock.ExpectQuery("SELECT 1 FROM events e JOIN venues v ON e.venue_id = v.id WHERE e.id = \\? AND v.user_id = \\?").
		WithArgs(uint64(5), uint64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	owned, err = repo.OwnedByUser(context.Background(), 5, 3)
	require.NoError(t, err)
	assert.False(t, owned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteEvent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewEventRepo(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM events WHERE id=?")).
		WithArgs(uint64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}
