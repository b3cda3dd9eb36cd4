package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Health reports service liveness for load balancers and monitoring.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":    "ok",
		"message":   "Jocky API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
