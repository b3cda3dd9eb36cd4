package router // package router defines how HTTP routes are registered for the API

import (
	"net/http"

	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/jockyhq/booking-api/internal/handler"    // import the handlers that implement business logic
	"github.com/jockyhq/booking-api/internal/middleware" // import middleware for JWT authentication and role enforcement
	"github.com/jockyhq/booking-api/internal/model"
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance: the health check and the JSON 404 fallback
// for unmatched paths.
func RegisterRoutes(e *echo.Echo) {
	// This endpoint can be used by load balancers or monitoring systems to
	// verify that the service is up and running.
	e.GET("/health", handler.Health)

	// Unmatched routes answer a JSON body carrying the requested path.
	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Route not found",
			"path":  c.Request().URL.Path,
		})
	})
}

// RegisterAuth registers all authentication‑related routes and applies the
// necessary middleware.  Unauthenticated operations live under /api/auth,
// and /api/auth/me requires a valid token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/api/auth")
	// Register a POST endpoint to handle user registration at /api/auth/register.
	g.POST("/register", a.Register)
	// Register a POST endpoint to handle user login at /api/auth/login.
	g.POST("/login", a.Login)
	// Register a GET endpoint that returns the authenticated user's information.
	g.GET("/me", a.Me, middleware.JWTAuth(jwtSecret))
}

// RegisterEvents registers the venue event calendar under /api/events.
// Every route requires a valid token; create, update and delete are
// restricted to venue users, while reads are open to any authenticated
// role (artists look events up from their offers).
func RegisterEvents(e *echo.Echo, h *handler.EventHandler, jwtSecret string) {
	g := e.Group("/api/events")
	g.Use(middleware.JWTAuth(jwtSecret))

	venueOnly := middleware.RequireRole(model.RoleVenue)
	g.POST("", h.Create, venueOnly)
	g.PUT("/:id", h.Update, venueOnly)
	g.DELETE("/:id", h.Delete, venueOnly)

	g.GET("", h.List)
	g.GET("/:id", h.GetByID)
}

// RegisterBookings registers the offer lifecycle under /api/bookings.
// Sending an offer is venue-only; responding and listing are open to any
// authenticated role and authorized per booking in the handler.
func RegisterBookings(e *echo.Echo, h *handler.BookingHandler, jwtSecret string) {
	g := e.Group("/api/bookings")
	g.Use(middleware.JWTAuth(jwtSecret))

	g.POST("", h.Create, middleware.RequireRole(model.RoleVenue))
	g.PUT("/:id", h.Respond)
	g.GET("", h.List)
}

// RegisterDirectory registers the artist and venue listings plus dance
// floor management.  The two listings change rarely and sit behind the
// Redis response cache when one is configured.
func RegisterDirectory(e *echo.Echo, h *handler.DirectoryHandler, jwtSecret string, cache echo.MiddlewareFunc) {
	auth := middleware.JWTAuth(jwtSecret)
	e.GET("/api/artists", h.GetArtists, auth, cache)
	e.GET("/api/venues", h.GetVenues, auth, cache)

	floors := e.Group("/api/venues/floors")
	floors.Use(auth, middleware.RequireRole(model.RoleVenue))
	floors.POST("", h.CreateDanceFloor)
	floors.GET("", h.ListDanceFloors)
}

// RegisterMessages registers user-to-user messaging under /api/messages.
func RegisterMessages(e *echo.Echo, h *handler.MessageHandler, jwtSecret string) {
	g := e.Group("/api/messages")
	g.Use(middleware.JWTAuth(jwtSecret))

	g.POST("", h.Send)
	g.GET("", h.List)
	g.PUT("/:id/read", h.MarkRead)
}
