package repository

import (
	"context"
	"database/sql"

	"github.com/jockyhq/booking-api/internal/model"
)

// VenueRepo provides access to venue profiles and their dance floors.
type VenueRepo struct{ DB *sql.DB }

func NewVenueRepo(db *sql.DB) *VenueRepo { return &VenueRepo{DB: db} }

// GetByUserID returns the venue owned by the given user. Every
// venue-role user has exactly one; sql.ErrNoRows means the caller is not
// a venue.
func (r *VenueRepo) GetByUserID(ctx context.Context, userID uint64) (model.Venue, error) {
	var v model.Venue
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,user_id,name,location,capacity,description,created_at,updated_at FROM venues WHERE user_id=? LIMIT 1",
		userID).Scan(&v.ID, &v.UserID, &v.Name, &v.Location, &v.Capacity, &v.Description, &v.CreatedAt, &v.UpdatedAt)
	return v, err
}

// List returns all venue profiles for the directory endpoint, ordered by
// name for deterministic output.
func (r *VenueRepo) List(ctx context.Context) ([]model.Venue, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,user_id,name,location,capacity,description,created_at,updated_at FROM venues ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Venue{}
	for rows.Next() {
		var v model.Venue
		if err := rows.Scan(&v.ID, &v.UserID, &v.Name, &v.Location, &v.Capacity, &v.Description, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// CreateDanceFloor inserts a dance floor for the venue and returns the
// stored row.
func (r *VenueRepo) CreateDanceFloor(ctx context.Context, venueID uint64, name string, capacity *uint32) (model.DanceFloor, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO dance_floors (venue_id, name, capacity) VALUES (?,?,?)",
		venueID, name, capacity)
	if err != nil {
		return model.DanceFloor{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.DanceFloor{}, err
	}
	var df model.DanceFloor
	err = r.DB.QueryRowContext(ctx,
		"SELECT id,venue_id,name,capacity,created_at FROM dance_floors WHERE id=?",
		uint64(id)).Scan(&df.ID, &df.VenueID, &df.Name, &df.Capacity, &df.CreatedAt)
	return df, err
}

// ListDanceFloors returns the venue's dance floors in creation order.
func (r *VenueRepo) ListDanceFloors(ctx context.Context, venueID uint64) ([]model.DanceFloor, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,venue_id,name,capacity,created_at FROM dance_floors WHERE venue_id=? ORDER BY id",
		venueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.DanceFloor{}
	for rows.Next() {
		var df model.DanceFloor
		if err := rows.Scan(&df.ID, &df.VenueID, &df.Name, &df.Capacity, &df.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, df)
	}
	return out, rows.Err()
}
