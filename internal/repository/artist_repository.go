package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/jockyhq/booking-api/internal/model"
)

// ArtistRepo provides access to artist profiles. Genres are persisted as
// a JSON array in a TEXT column; decoding failures fall back to an empty
// set rather than failing the whole listing.
type ArtistRepo struct{ DB *sql.DB }

func NewArtistRepo(db *sql.DB) *ArtistRepo { return &ArtistRepo{DB: db} }

const artistCols = "id,user_id,stage_name,type,location,bio,genres,profile_image_url,created_at,updated_at"

func scanArtist(row interface{ Scan(...any) error }) (model.Artist, error) {
	var a model.Artist
	var genres sql.NullString
	err := row.Scan(&a.ID, &a.UserID, &a.StageName, &a.Type, &a.Location, &a.Bio,
		&genres, &a.ProfileImageURL, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return a, err
	}
	a.Genres = []string{}
	if genres.Valid && genres.String != "" {
		if err := json.Unmarshal([]byte(genres.String), &a.Genres); err != nil {
			a.Genres = []string{}
		}
	}
	return a, nil
}

// GetByUserID returns the artist profile owned by the given user.
func (r *ArtistRepo) GetByUserID(ctx context.Context, userID uint64) (model.Artist, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+artistCols+" FROM artists WHERE user_id=? LIMIT 1", userID)
	return scanArtist(row)
}

// GetByID returns an artist profile by its id.
func (r *ArtistRepo) GetByID(ctx context.Context, id uint64) (model.Artist, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+artistCols+" FROM artists WHERE id=? LIMIT 1", id)
	return scanArtist(row)
}

// List returns all artist profiles for the directory endpoint, ordered
// by stage name for deterministic output.
func (r *ArtistRepo) List(ctx context.Context) ([]model.Artist, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+artistCols+" FROM artists ORDER BY stage_name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Artist{}
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
