package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"      // .env loader for local development
	"github.com/labstack/echo/v4"   // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/jockyhq/booking-api/internal/config"     // Internal config loader
	"github.com/jockyhq/booking-api/internal/database"   // MySQL connection pool
	"github.com/jockyhq/booking-api/internal/handler"    // HTTP handlers
	"github.com/jockyhq/booking-api/internal/middleware" // rate limiting and caching
	"github.com/jockyhq/booking-api/internal/queue"      // broker consumer
	"github.com/jockyhq/booking-api/internal/repository" // data access layer
	"github.com/jockyhq/booking-api/internal/router"     // route registration
	"github.com/jockyhq/booking-api/internal/validate"   // request body validation
)

func main() {
	_ = godotenv.Load() // load .env when present; real env vars win

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	defer db.Close()

	// Redis is optional: a nil client disables rate limiting and caching.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; rate limiting and response caching disabled")
	}

	// Repositories
	users := repository.NewUserRepo(db)
	venues := repository.NewVenueRepo(db)
	artists := repository.NewArtistRepo(db)
	events := repository.NewEventRepo(db)
	bookings := repository.NewBookingRepo(db)
	messages := repository.NewMessageRepo(db)

	// Handlers
	authH := handler.NewAuthHandler(cfg, users)
	eventH := handler.NewEventHandler(events, venues)
	bookingH := handler.NewBookingHandler(bookings, events, venues, artists)
	dirH := handler.NewDirectoryHandler(artists, venues)
	messageH := handler.NewMessageHandler(messages, users)

	e := echo.New() // Create Echo instance
	e.HideBanner = true
	e.Validator = validate.New()

	e.Use(echomw.Recover()) // per-request panics become 500s, never crash the process
	e.Use(echomw.Logger())
	e.Use(echomw.Secure())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendOrigin},
		AllowCredentials: true,
	}))
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e) // Register application routes
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterEvents(e, eventH, cfg.JWTSecret)
	router.RegisterBookings(e, bookingH, cfg.JWTSecret)
	router.RegisterDirectory(e, dirH, cfg.JWTSecret, cacheMW)
	router.RegisterMessages(e, messageH, cfg.JWTSecret)

	// Consume booking events in the background; the loop reconnects on
	// broker failures and never takes the API down.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
