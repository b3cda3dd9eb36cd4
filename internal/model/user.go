package model

import "time"

// Role names stored in users.role.  Venue operators and artists register
// themselves; the admin role is only ever seeded manually.
const (
	RoleVenue  = "venue"
	RoleArtist = "artist"
	RoleAdmin  = "admin"
)

// User represents an application user record as stored in the
// `users` table. Each field corresponds to a column in the
// database. These structs are primarily used internally by the
// repository layer; handlers define separate response types with
// appropriate JSON tags where the shapes differ.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password.
//  Role         – role name (venue, artist or admin).
//  Name         – display name supplied at registration.
//  Phone        – optional contact phone number.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64    // users.id
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	Role         string    // users.role
	Name         string    // users.name
	Phone        *string   // users.phone (nullable)
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}
