package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// TokenRepo stores hashed refresh tokens.  Only the SHA-256 hash of the raw
// token ever touches the database.
type TokenRepo struct{ DB *sql.DB }

func NewTokenRepo(db *sql.DB) *TokenRepo { return &TokenRepo{DB: db} }

// StoreRefresh saves a refresh token hash for a user.
func (r *TokenRepo) StoreRefresh(ctx context.Context, userID uint64, hash string, exp time.Time) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO refresh_tokens (user_id, token_hash, expires_at) VALUES ($1, $2, $3)",
		userID, hash, exp)
	return err
}

// FindValid returns the owning user of a non-revoked, non-expired token
// hash, or ErrNotFound.
func (r *TokenRepo) FindValid(ctx context.Context, hash string) (uint64, error) {
	var userID uint64
	err := r.DB.QueryRowContext(ctx,
		`SELECT user_id FROM refresh_tokens
		 WHERE token_hash = $1 AND revoked_at IS NULL AND expires_at > now() LIMIT 1`,
		hash).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	return userID, err
}

// Revoke marks a token hash as revoked.  Revoking an unknown hash is not an
// error; logout is idempotent.
func (r *TokenRepo) Revoke(ctx context.Context, hash string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE refresh_tokens SET revoked_at = now() WHERE token_hash = $1 AND revoked_at IS NULL",
		hash)
	return err
}
