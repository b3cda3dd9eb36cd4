package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jockyhq/booking-api/internal/model"
	"github.com/jockyhq/booking-api/internal/repository"
)

func newBookingHandler(t *testing.T) (*BookingHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewBookingHandler(
		repository.NewBookingRepo(db), repository.NewEventRepo(db),
		repository.NewVenueRepo(db), repository.NewArtistRepo(db),
	), mock
}

func duplicateKeyErr() error {
	return errors.New("Error 1062 (23000): Duplicate entry '5-3' for key 'bookings.uq_event_artist'")
}

func expectParties(mock sqlmock.Sqlmock, bookingID uint64, status string, artistUserID, venueUserID uint64) {
	sent := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cols := []string{
		"id", "event_id", "artist_id", "status", "offer_sent_at", "responded_at",
		"created_at", "updated_at", "artist_user_id", "venue_user_id",
	}
	mock.ExpectQuery("SELECT b.id, b.event_id, b.artist_id, .+ JOIN artists a .+ JOIN venues v").
		WithArgs(bookingID).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(bookingID, 5, 3, status, sent, nil, sent, sent, artistUserID, venueUserID))
}

func TestRespondAccept(t *testing.T) {
	h, mock := newBookingHandler(t)

	expectParties(mock, 11, model.BookingStatusPending, 20, 30)
	sent := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	responded := sent.Add(time.Hour)
	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE bookings SET status = ?, responded_at = CURRENT_TIMESTAMP WHERE id = ?")).
		WithArgs(model.BookingStatusAccepted, uint64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT id, event_id, artist_id, .+ FROM bookings WHERE id=").
		WithArgs(uint64(11)).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "event_id", "artist_id", "status", "offer_sent_at", "responded_at", "created_at", "updated_at"}).
			AddRow(11, 5, 3, model.BookingStatusAccepted, sent, responded, sent, responded))

	e := newEcho()
	req := jsonReq(http.MethodPut, "/api/bookings/11", `{"status":"accepted"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("11")
	c.Set("user_id", uint64(20))
	c.Set("role", model.RoleArtist)

	require.NoError(t, h.Respond(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"Offer accepted"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRespondAcceptByNonArtistHidesBooking(t *testing.T) {
	h, mock := newBookingHandler(t)

	expectParties(mock, 11, model.BookingStatusPending, 20, 30)

	e := newEcho()
	req := jsonReq(http.MethodPut, "/api/bookings/11", `{"status":"accepted"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("11")
	c.Set("user_id", uint64(30)) // venue owner, not the artist
	c.Set("role", model.RoleVenue)

	require.NoError(t, h.Respond(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Booking not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRespondCancelByVenue(t *testing.T) {
	h, mock := newBookingHandler(t)

	expectParties(mock, 11, model.BookingStatusAccepted, 20, 30)
	sent := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE bookings SET status = ?, responded_at = CURRENT_TIMESTAMP WHERE id = ?")).
		WithArgs(model.BookingStatusCancelled, uint64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT id, event_id, artist_id, .+ FROM bookings WHERE id=").
		WithArgs(uint64(11)).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "event_id", "artist_id", "status", "offer_sent_at", "responded_at", "created_at", "updated_at"}).
			AddRow(11, 5, 3, model.BookingStatusCancelled, sent, sent, sent, sent))

	e := newEcho()
	req := jsonReq(http.MethodPut, "/api/bookings/11", `{"status":"cancelled"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("11")
	c.Set("user_id", uint64(30))
	c.Set("role", model.RoleVenue)

	require.NoError(t, h.Respond(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"cancelled"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRespondRejectsUnknownStatus(t *testing.T) {
	h, mock := newBookingHandler(t)

	e := newEcho()
	req := jsonReq(http.MethodPut, "/api/bookings/11", `{"status":"maybe"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("11")
	c.Set("user_id", uint64(20))

	require.NoError(t, h.Respond(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Status must be accepted, declined or cancelled")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRespondRejectsDecidedOffer(t *testing.T) {
	h, mock := newBookingHandler(t)

	expectParties(mock, 11, model.BookingStatusDeclined, 20, 30)

	e := newEcho()
	req := jsonReq(http.MethodPut, "/api/bookings/11", `{"status":"accepted"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("11")
	c.Set("user_id", uint64(20))
	c.Set("role", model.RoleArtist)

	require.NoError(t, h.Respond(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid status transition")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingDuplicateOffer(t *testing.T) {
	h, mock := newBookingHandler(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM events e JOIN venues v ON e.venue_id = v.id")).
		WithArgs(uint64(5), uint64(30)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT id,user_id,stage_name,.+ FROM artists WHERE id=").
		WithArgs(uint64(3)).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "user_id", "stage_name", "type", "location", "bio", "genres", "profile_image_url", "created_at", "updated_at"}).
			AddRow(3, 20, "DJ Nova", nil, nil, nil, `["house","techno"]`, nil, now, now))
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(uint64(5), uint64(3), model.BookingStatusPending).
		WillReturnError(duplicateKeyErr())

	e := newEcho()
	req := jsonReq(http.MethodPost, "/api/bookings", `{"event_id":5,"artist_id":3}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uint64(30))
	c.Set("role", model.RoleVenue)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Offer already sent to this artist")
	assert.NoError(t, mock.ExpectationsWereMet())
}
