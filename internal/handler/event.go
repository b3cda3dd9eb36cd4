package handler

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jockyhq/booking-api/internal/repository"
)

// EventHandler bundles repositories for the venue event calendar.
type EventHandler struct {
	Events *repository.EventRepo
	Venues *repository.VenueRepo
}

func NewEventHandler(events *repository.EventRepo, venues *repository.VenueRepo) *EventHandler {
	if events == nil || venues == nil {
		panic("nil repository passed to NewEventHandler")
	}
	return &EventHandler{Events: events, Venues: venues}
}

type createEventReq struct {
	EventName    string   `json:"event_name" validate:"required"`
	EventDate    string   `json:"event_date" validate:"required,datetime=2006-01-02"`
	StartTime    string   `json:"start_time" validate:"required,datetime=15:04:05"`
	EndTime      string   `json:"end_time" validate:"required,datetime=15:04:05"`
	DanceFloorID *uint64  `json:"dance_floor_id"`
	AmountSEK    *float64 `json:"amount_sek"`
	Notes        *string  `json:"notes"`
	Frequency    *string  `json:"frequency" validate:"omitempty,oneof=single multiple"`
}

// Create inserts a new event on the caller's venue with status
// defaulting to 'created'.
func (h *EventHandler) Create(c echo.Context) error {
	var req createEventReq
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

	venue, err := h.Venues.GetByUserID(ctx, uid)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Venue not found for user"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create event"})
	}

	event, err := h.Events.Create(ctx, venue.ID, uid, req.DanceFloorID,
		req.EventName, req.EventDate, req.StartTime, req.EndTime,
		req.AmountSEK, req.Notes, req.Frequency)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create event"})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Event created successfully",
		"event":   event,
	})
}

// List returns the caller venue's events joined with booking details.
// Optional ?start_date and ?end_date (inclusive) and ?status filters.
func (h *EventHandler) List(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSeconds*time.Second)
	defer cancel()

	venue, err := h.Venues.GetByUserID(ctx, uid)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get events"})
	}

	events, err := h.Events.ListForVenue(ctx, venue.ID,
		c.QueryParam("start_date"), c.QueryParam("end_date"), c.QueryParam("status"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get events"})
	}

	return c.JSON(http.StatusOK, echo.Map{"events": events})
}

// GetByID returns one event with venue and dance floor names joined.
func (h *EventHandler) GetByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSeconds*time.Second)
	defer cancel()

	event, err := h.Events.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get event"})
	}

	return c.JSON(http.StatusOK, echo.Map{"event": event})
}

// Update applies a typed partial update to an event owned by the caller.
// Ownership failures answer 404 so foreign event ids are not confirmed
// to exist.
func (h *EventHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	var upd repository.EventUpdate
	if err := c.Bind(&upd); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSeconds*time.Second)
	defer cancel()

	owned, err := h.Events.OwnedByUser(ctx, id, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update event"})
	}
	if !owned {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Event not found or unauthorized"})
	}

	event, err := h.Events.Update(ctx, id, upd)
	if err != nil {
		switch err {
		case repository.ErrNoFields:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "No valid fields to update"})
		case repository.ErrInvalidTransition:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid status transition"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update event"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Event updated successfully",
		"event":   event,
	})
}

// Delete removes an event owned by the caller. Bookings cascade in the
// store.
func (h *EventHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSeconds*time.Second)
	defer cancel()

	owned, err := h.Events.OwnedByUser(ctx, id, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete event"})
	}
	if !owned {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Event not found or unauthorized"})
	}

	if err := h.Events.Delete(ctx, id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete event"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Event deleted successfully"})
}
