package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jockyhq/booking-api/internal/model"
	"github.com/jockyhq/booking-api/internal/utils"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// CreateWithProfile inserts the user row and its venue or artist profile
// row inside a single transaction, so a failed profile insert never
// leaves an orphaned user behind. The profile name is seeded from the
// registration name. Returns the new user id.
func (r *UserRepo) CreateWithProfile(ctx context.Context, email, password, role, name string, phone *string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO users (email, password_hash, role, name, phone) VALUES (?,?,?,?,?)",
		email, hash, role, name, phone)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	switch role {
	case model.RoleVenue:
		_, err = tx.ExecContext(ctx,
			"INSERT INTO venues (user_id, name) VALUES (?,?)", uint64(id), name)
	case model.RoleArtist:
		_, err = tx.ExecContext(ctx,
			"INSERT INTO artists (user_id, stage_name) VALUES (?,?)", uint64(id), name)
	}
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,email,password_hash,role,name,phone,created_at,updated_at FROM users WHERE email=? LIMIT 1",
		email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.Name, &u.Phone, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,email,password_hash,role,name,phone,created_at,updated_at FROM users WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.Name, &u.Phone, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// Exists reports whether a user row with the given id is present. Used
// by messaging to validate receivers without loading the whole row.
func (r *UserRepo) Exists(ctx context.Context, id uint64) (bool, error) {
	var one int
	err := r.DB.QueryRowContext(ctx,
		"SELECT 1 FROM users WHERE id=? LIMIT 1", id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
