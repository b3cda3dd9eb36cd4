package model

import "time"

// Venue is the venue-side profile extension of a user.  Exactly one row
// exists per venue-role user; it is created inside the registration
// transaction and cascade-deleted with the user.
//
// Fields:
//  ID          – primary key identifier.
//  UserID      – owning user (1:1).
//  Name        – venue name, seeded from the registration name.
//  Location    – free-text address or city.
//  Capacity    – audience capacity (nullable).
//  Description – optional blurb shown to artists.
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – last update timestamp.
type Venue struct {
	ID          uint64    `json:"id"`
	UserID      uint64    `json:"user_id"`
	Name        string    `json:"name"`
	Location    *string   `json:"location"`
	Capacity    *uint32   `json:"capacity"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DanceFloor is a bookable floor resource inside a venue.  Events may
// optionally reference one.
//
// Fields:
//  ID        – primary key identifier.
//  VenueID   – owning venue.
//  Name      – floor name (e.g. "Main floor").
//  Capacity  – dancer capacity (nullable).
//  CreatedAt – creation timestamp.
type DanceFloor struct {
	ID        uint64    `json:"id"`
	VenueID   uint64    `json:"venue_id"`
	Name      string    `json:"name"`
	Capacity  *uint32   `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
}
