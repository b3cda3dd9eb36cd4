package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jockyhq/booking-api/internal/model"
)

var bookingRowCols = []string{
	"id", "event_id", "artist_id", "status",
	"offer_sent_at", "responded_at", "created_at", "updated_at",
}

func TestCreateBooking(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewBookingRepo(db)

	sent := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectExec("INSERT INTO bookings \\(event_id, artist_id, status, offer_sent_at\\)").
		WithArgs(uint64(5), uint64(3), model.BookingStatusPending).
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectQuery("SELECT id, event_id, artist_id, .+ FROM bookings WHERE id=").
		WithArgs(uint64(11)).
		WillReturnRows(sqlmock.NewRows(bookingRowCols).
			AddRow(11, 5, 3, model.BookingStatusPending, sent, nil, sent, sent))

	b, err := repo.Create(context.Background(), 5, 3)
	require.NoError(t, err)
	assert.Equal(t, uint64(11), b.ID)
	assert.Equal(t, model.BookingStatusPending, b.Status)
	assert.Nil(t, b.RespondedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingDuplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewBookingRepo(db)

	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(uint64(5), uint64(3), model.BookingStatusPending).
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry '5-3' for key 'bookings.uq_event_artist'"))

	_, err = repo.Create(context.Background(), 5, 3)
	assert.ErrorIs(t, err, ErrDuplicateBooking)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetParties(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewBookingRepo(db)

	sent := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cols := append(append([]string{}, bookingRowCols...), "artist_user_id", "venue_user_id")
	mock.ExpectQuery("SELECT b.id, b.event_id, b.artist_id, .+ JOIN artists a .+ JOIN venues v").
		WithArgs(uint64(11)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(11, 5, 3, model.BookingStatusPending, sent, nil, sent, sent, 20, 30))

	p, err := repo.GetParties(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, uint64(20), p.ArtistUserID)
	assert.Equal(t, uint64(30), p.VenueUserID)
	assert.Equal(t, model.BookingStatusPending, p.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateBookingStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewBookingRepo(db)

	sent := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	responded := sent.Add(time.Hour)
	mock.ExpectExec("UPDATE bookings SET status = \\?, responded_at = CURRENT_TIMESTAMP WHERE id = \\?").
		WithArgs(model.BookingStatusAccepted, uint64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT id, event_id, artist_id, .+ FROM bookings WHERE id=").
		WithArgs(uint64(11)).
		WillReturnRows(sqlmock.NewRows(bookingRowCols).
			AddRow(11, 5, 3, model.BookingStatusAccepted, sent, responded, sent, responded))

	b, err := repo.UpdateStatus(context.Background(), 11, model.BookingStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusAccepted, b.Status)
	require.NotNil(t, b.RespondedAt)
	assert.Equal(t, responded, *b.RespondedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListForArtist(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewBookingRepo(db)

	sent := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cols := []string{
		"id", "event_id", "artist_id", "status", "offer_sent_at", "responded_at",
		"event_name", "event_date", "start_time", "end_time", "name", "stage_name",
	}
	mock.ExpectQuery("SELECT b.id, b.event_id, .+ WHERE b.artist_id = \\? ORDER BY b.id DESC").
		WithArgs(uint64(3)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(12, 6, 3, model.BookingStatusPending, sent, nil,
				"Friday Live", time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC), "20:00:00", "23:00:00", "Venue A", "DJ Nova").
			AddRow(11, 5, 3, model.BookingStatusAccepted, sent, sent,
				"Club Night", time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC), "21:00:00", "23:30:00", "Venue A", "DJ Nova"))

	out, err := repo.ListForArtist(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "2025-06-20", out[0].EventDate)
	assert.Equal(t, "Venue A", out[0].VenueName)
	assert.Equal(t, model.BookingStatusAccepted, out[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
