package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/agroferia/agroferia-backend/internal/model"
	"github.com/agroferia/agroferia-backend/internal/utils"
)

// UserRepo persists users.  Passwords are bcrypt-hashed before they reach
// the database; the hash never leaves this package except through
// Credentials for login verification.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Credentials carries the minimum needed to verify a login.
type Credentials struct {
	ID           uint64
	Role         string
	Status       string
	PasswordHash string
}

const userCols = "id, username, email, full_name, phone, role, status, created_at, updated_at"

// Create inserts a user and returns its ID.  Duplicate username or email
// surfaces as ErrDuplicate via the unique constraints.
func (r *UserRepo) Create(ctx context.Context, u *model.User, password string, cost int) (uint64, error) {
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	var id uint64
	err = r.DB.QueryRowContext(ctx,
		`INSERT INTO users (username, email, password_hash, full_name, phone, role, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		strings.ToLower(strings.TrimSpace(u.Username)),
		strings.ToLower(strings.TrimSpace(u.Email)),
		hash, u.FullName, u.Phone, u.Role, u.Status,
	).Scan(&id)
	if err != nil {
		return 0, translateUnique(err)
	}
	return id, nil
}

// GetCredentials fetches the login credentials for a normalized email.
func (r *UserRepo) GetCredentials(ctx context.Context, email string) (Credentials, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var cr Credentials
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, role, status, password_hash FROM users WHERE email = $1 LIMIT 1",
		email).Scan(&cr.ID, &cr.Role, &cr.Status, &cr.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return Credentials{}, ErrNotFound
	}
	return cr, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+userCols+" FROM users WHERE id = $1 LIMIT 1", id).
		Scan(&u.ID, &u.Username, &u.Email, &u.FullName, &u.Phone, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrNotFound
	}
	return u, err
}

// List returns all users, newest first.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+userCols+" FROM users ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.FullName, &u.Phone, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// Update rewrites the mutable profile fields of a user.
func (r *UserRepo) Update(ctx context.Context, u *model.User) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE users SET email = $1, full_name = $2, phone = $3, role = $4, status = $5, updated_at = now()
		 WHERE id = $6`,
		strings.ToLower(strings.TrimSpace(u.Email)), u.FullName, u.Phone, u.Role, u.Status, u.ID)
	if err != nil {
		return translateUnique(err)
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return ErrNotFound
	}
	return err
}

// Delete hard-deletes a user.  No entity is soft-deleted.
func (r *UserRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return ErrNotFound
	}
	return err
}
