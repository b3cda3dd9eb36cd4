package handler

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jockyhq/booking-api/internal/model"
	"github.com/jockyhq/booking-api/internal/queue"
	"github.com/jockyhq/booking-api/internal/repository"
	queuepublisher "github.com/jockyhq/booking-api/internal/service"
)

// BookingHandler bundles repositories for the offer lifecycle.
type BookingHandler struct {
	Bookings *repository.BookingRepo
	Events   *repository.EventRepo
	Venues   *repository.VenueRepo
	Artists  *repository.ArtistRepo
}

func NewBookingHandler(bookings *repository.BookingRepo, events *repository.EventRepo,
	venues *repository.VenueRepo, artists *repository.ArtistRepo) *BookingHandler {
	if bookings == nil || events == nil || venues == nil || artists == nil {
		panic("nil repository passed to NewBookingHandler")
	}
	return &BookingHandler{Bookings: bookings, Events: events, Venues: venues, Artists: artists}
}

type createBookingReq struct {
	EventID  uint64 `json:"event_id" validate:"required"`
	ArtistID uint64 `json:"artist_id" validate:"required"`
}

type respondBookingReq struct {
	Status string `json:"status" validate:"required"`
}

// Create sends an offer for one of the caller venue's events to an
// artist. The unique (event, artist) pair makes a repeat offer a 409.
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSeconds*time.Second)
	defer cancel()

	// The offered event must belong to the caller's venue. Foreign and
	// unknown events both answer 404.
	owned, err := h.Events.OwnedByUser(ctx, req.EventID, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to send offer"})
	}
	if !owned {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Event not found or unauthorized"})
	}
	if _, err := h.Artists.GetByID(ctx, req.ArtistID); err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Artist not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to send offer"})
	}

	booking, err := h.Bookings.Create(ctx, req.EventID, req.ArtistID)
	if err != nil {
		if err == repository.ErrDuplicateBooking {
			return c.JSON(http.StatusConflict, echo.Map{"error": "Offer already sent to this artist"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to send offer"})
	}

	// Best-effort event to the broker; request success does not depend
	// on it.
	if detail, err := h.Events.GetByID(ctx, req.EventID); err == nil {
		ev := queue.BookingOfferedEvent{
			BookingID: booking.ID,
			EventID:   booking.EventID,
			ArtistID:  booking.ArtistID,
			VenueID:   detail.VenueID,
			VenueName: detail.VenueName,
			EventName: detail.EventName,
			EventDate: detail.EventDate,
			AmountSEK: detail.AmountSEK,
		}
		if booking.OfferSentAt != nil {
			ev.OfferSentAt = booking.OfferSentAt.UTC().Format(time.RFC3339)
		}
		go func() {
			pubCtx, pubCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer pubCancel()
			_ = queuepublisher.PublishBookingOffered(pubCtx, ev)
		}()
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "Offer sent", "booking": booking})
}

// Respond moves a booking out of its current status. Accept and decline
// are artist-only and require a pending offer; cancel is allowed for the
// artist or the owning venue while the offer is pending or accepted.
// Callers who are neither party get 404, matching the ownership policy
// used for events.
func (h *BookingHandler) Respond(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	var req respondBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if !model.ValidBookingResponse(req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Status must be accepted, declined or cancelled"})
	}
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSeconds*time.Second)
	defer cancel()

	parties, err := h.Bookings.GetParties(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to respond"})
	}

	switch req.Status {
	case model.BookingStatusAccepted, model.BookingStatusDeclined:
		if uid != parties.ArtistUserID {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Booking not found"})
		}
	case model.BookingStatusCancelled:
		if uid != parties.ArtistUserID && uid != parties.VenueUserID {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Booking not found"})
		}
	}

	if !model.BookingStatusCanTransition(parties.Status, req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid status transition"})
	}

	booking, err := h.Bookings.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to respond"})
	}

	ev := queue.BookingRespondedEvent{
		BookingID:   booking.ID,
		EventID:     booking.EventID,
		ArtistID:    booking.ArtistID,
		Status:      booking.Status,
		RespondedBy: uid,
	}
	if booking.RespondedAt != nil {
		ev.RespondedAt = booking.RespondedAt.UTC().Format(time.RFC3339)
	}
	go func() {
		pubCtx, pubCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer pubCancel()
		_ = queuepublisher.PublishBookingResponded(pubCtx, ev)
	}()

	return c.JSON(http.StatusOK, echo.Map{"message": "Offer " + booking.Status, "booking": booking})
}

// List returns the caller's offers: an artist sees offers sent to them,
// a venue sees offers on its events.
func (h *BookingHandler) List(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSeconds*time.Second)
	defer cancel()

	var bookings []repository.BookingDetail
	switch getRole(c) {
	case model.RoleArtist:
		artist, err := h.Artists.GetByUserID(ctx, uid)
		if err != nil {
			if err == sql.ErrNoRows {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "Artist not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get bookings"})
		}
		bookings, err = h.Bookings.ListForArtist(ctx, artist.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get bookings"})
		}
	default:
		venue, err := h.Venues.GetByUserID(ctx, uid)
		if err != nil {
			if err == sql.ErrNoRows {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "Venue not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get bookings"})
		}
		bookings, err = h.Bookings.ListForVenue(ctx, venue.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get bookings"})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"bookings": bookings})
}
