package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
)

// Open connects to Postgres and verifies the connection.  sslmode should be
// "require" for hosted providers such as Neon and "disable" for local
// development.
func Open(user, pass, host, port, name, sslmode string) (*sql.DB, error) {
	auth := url.QueryEscape(user)
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", auth, url.QueryEscape(pass))
	}
	dsn := fmt.Sprintf("postgres://%s@%s:%s/%s?sslmode=%s",
		auth, host, port, name, sslmode)

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}
