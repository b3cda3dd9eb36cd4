package handler

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jockyhq/booking-api/internal/repository"
)

// DirectoryHandler serves the artist and venue listings plus the venue's
// dance floor resources.
type DirectoryHandler struct {
	Artists *repository.ArtistRepo
	Venues  *repository.VenueRepo
}

func NewDirectoryHandler(artists *repository.ArtistRepo, venues *repository.VenueRepo) *DirectoryHandler {
	if artists == nil || venues == nil {
		panic("nil repository passed to NewDirectoryHandler")
	}
	return &DirectoryHandler{Artists: artists, Venues: venues}
}

// GetArtists lists all artist profiles.
func (h *DirectoryHandler) GetArtists(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSeconds*time.Second)
	defer cancel()

	artists, err := h.Artists.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get artists"})
	}
	return c.JSON(http.StatusOK, echo.Map{"artists": artists})
}

// GetVenues lists all venue profiles.
func (h *DirectoryHandler) GetVenues(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSeconds*time.Second)
	defer cancel()

	venues, err := h.Venues.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get venues"})
	}
	return c.JSON(http.StatusOK, echo.Map{"venues": venues})
}

type createDanceFloorReq struct {
	Name     string  `json:"name" validate:"required"`
	Capacity *uint32 `json:"capacity"`
}

// CreateDanceFloor adds a dance floor to the caller's venue.
func (h *DirectoryHandler) CreateDanceFloor(c echo.Context) error {
	var req createDanceFloorReq
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
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create dance floor"})
	}

	df, err := h.Venues.CreateDanceFloor(ctx, venue.ID, req.Name, req.Capacity)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create dance floor"})
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "Dance floor created successfully", "dance_floor": df})
}

// ListDanceFloors lists the caller venue's dance floors.
func (h *DirectoryHandler) ListDanceFloors(c echo.Context) error {
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
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get dance floors"})
	}

	floors, err := h.Venues.ListDanceFloors(ctx, venue.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get dance floors"})
	}
	return c.JSON(http.StatusOK, echo.Map{"dance_floors": floors})
}
