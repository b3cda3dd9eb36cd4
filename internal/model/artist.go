package model

import "time"

// Artist is the artist-side profile extension of a user.  Exactly one row
// exists per artist-role user; it is created inside the registration
// transaction and cascade-deleted with the user.  Genres are stored as a
// JSON array in a TEXT column and decoded by the repository.
//
// Fields:
//  ID              – primary key identifier.
//  UserID          – owning user (1:1).
//  StageName       – performer name, seeded from the registration name.
//  Type            – act type (e.g. "DJ", "band").
//  Location        – home city.
//  Bio             – free-text biography.
//  Genres          – set of genre tags.
//  ProfileImageURL – optional avatar URL.
//  CreatedAt       – creation timestamp.
//  UpdatedAt       – last update timestamp.
type Artist struct {
	ID              uint64    `json:"id"`
	UserID          uint64    `json:"user_id"`
	StageName       string    `json:"stage_name"`
	Type            *string   `json:"type"`
	Location        *string   `json:"location"`
	Bio             *string   `json:"bio"`
	Genres          []string  `json:"genres"`
	ProfileImageURL *string   `json:"profile_image_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
