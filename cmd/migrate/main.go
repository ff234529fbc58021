package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/agroferia/agroferia-backend/internal/config"
	"github.com/agroferia/agroferia-backend/internal/database"
)

// statements run in order; every table is created IF NOT EXISTS so the
// migration is safe to rerun.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGSERIAL PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		full_name     TEXT NOT NULL DEFAULT '',
		phone         TEXT NOT NULL DEFAULT '',
		role          TEXT NOT NULL DEFAULT 'user',
		status        TEXT NOT NULL DEFAULT 'active',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		id         BIGSERIAL PRIMARY KEY,
		user_id    BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		token_hash TEXT NOT NULL UNIQUE,
		expires_at TIMESTAMPTZ NOT NULL,
		revoked_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS producers (
		id              BIGSERIAL PRIMARY KEY,
		user_id         BIGINT REFERENCES users(id) ON DELETE SET NULL,
		name            TEXT NOT NULL,
		document_type   TEXT NOT NULL,
		document_number TEXT NOT NULL,
		phone           TEXT NOT NULL DEFAULT '',
		email           TEXT NOT NULL DEFAULT '',
		farm_name       TEXT NOT NULL DEFAULT '',
		farm_size       DOUBLE PRECISION NOT NULL DEFAULT 0,
		product_type    JSONB NOT NULL DEFAULT '[]',
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (document_type, document_number)
	)`,
	`CREATE TABLE IF NOT EXISTS fairs (
		id                 BIGSERIAL PRIMARY KEY,
		name               TEXT NOT NULL,
		location           TEXT NOT NULL DEFAULT '',
		address            TEXT NOT NULL DEFAULT '',
		start_date         TIMESTAMPTZ NOT NULL,
		end_date           TIMESTAMPTZ NOT NULL,
		max_capacity       INT NOT NULL DEFAULT 50,
		current_capacity   INT NOT NULL DEFAULT 0,
		status             TEXT NOT NULL DEFAULT 'scheduled',
		product_categories JSONB NOT NULL DEFAULT '[]',
		requirements       JSONB NOT NULL DEFAULT '[]',
		created_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at         TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id          BIGSERIAL PRIMARY KEY,
		producer_id BIGINT NOT NULL REFERENCES producers(id) ON DELETE CASCADE,
		name        TEXT NOT NULL,
		category    TEXT NOT NULL DEFAULT '',
		quantity    DOUBLE PRECISION NOT NULL DEFAULT 0,
		unit        TEXT NOT NULL DEFAULT 'unidad',
		unit_price  DOUBLE PRECISION NOT NULL DEFAULT 0,
		status      TEXT NOT NULL DEFAULT 'available',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS registrations (
		id                 BIGSERIAL PRIMARY KEY,
		fair_id            BIGINT NOT NULL REFERENCES fairs(id) ON DELETE CASCADE,
		producer_id        BIGINT NOT NULL REFERENCES producers(id) ON DELETE CASCADE,
		products_to_sell   JSONB NOT NULL DEFAULT '[]',
		estimated_quantity DOUBLE PRECISION NOT NULL DEFAULT 0,
		status             TEXT NOT NULL DEFAULT 'pending',
		assigned_spot      TEXT,
		created_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (fair_id, producer_id)
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id              BIGSERIAL PRIMARY KEY,
		registration_id BIGINT NOT NULL REFERENCES registrations(id) ON DELETE CASCADE,
		product_id      BIGINT REFERENCES products(id) ON DELETE SET NULL,
		product_name    TEXT NOT NULL,
		quantity        DOUBLE PRECISION NOT NULL DEFAULT 0,
		unit_price      DOUBLE PRECISION NOT NULL DEFAULT 0,
		total_amount    DOUBLE PRECISION NOT NULL DEFAULT 0,
		payment_method  TEXT NOT NULL DEFAULT 'efectivo',
		sale_date       TIMESTAMPTZ NOT NULL DEFAULT now(),
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS content_reports (
		id           BIGSERIAL PRIMARY KEY,
		user_id      BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		content_type TEXT NOT NULL,
		description  TEXT NOT NULL,
		location     TEXT NOT NULL DEFAULT '',
		photo_file   TEXT,
		status       TEXT NOT NULL DEFAULT 'pending',
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS technical_help_requests (
		id          BIGSERIAL PRIMARY KEY,
		user_id     BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		subject     TEXT NOT NULL,
		description TEXT NOT NULL,
		urgency     TEXT NOT NULL DEFAULT 'medium',
		attachments JSONB NOT NULL DEFAULT '[]',
		status      TEXT NOT NULL DEFAULT 'pending',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS fair_surveys (
		id              BIGSERIAL PRIMARY KEY,
		user_id         BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		fair_id         BIGINT NOT NULL REFERENCES fairs(id) ON DELETE CASCADE,
		satisfaction    INT NOT NULL,
		organization    INT NOT NULL,
		sales_volume    TEXT NOT NULL DEFAULT '',
		comments        TEXT NOT NULL DEFAULT '',
		would_recommend BOOLEAN NOT NULL DEFAULT FALSE,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (user_id, fair_id)
	)`,
	`CREATE TABLE IF NOT EXISTS post_sale_reports (
		id               BIGSERIAL PRIMARY KEY,
		user_id          BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		fair_id          BIGINT NOT NULL REFERENCES fairs(id) ON DELETE CASCADE,
		total_sales      DOUBLE PRECISION NOT NULL DEFAULT 0,
		products_sold    JSONB NOT NULL DEFAULT '[]',
		leftover_percent DOUBLE PRECISION NOT NULL DEFAULT 0,
		comments         TEXT NOT NULL DEFAULT '',
		created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS fair_coordinators (
		id            BIGSERIAL PRIMARY KEY,
		user_id       BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		fair_id       BIGINT NOT NULL REFERENCES fairs(id) ON DELETE CASCADE,
		assigned_date TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (user_id, fair_id)
	)`,
	`CREATE TABLE IF NOT EXISTS translations (
		id            BIGSERIAL PRIMARY KEY,
		language_code TEXT NOT NULL,
		key           TEXT NOT NULL,
		value         TEXT NOT NULL,
		UNIQUE (language_code, key)
	)`,
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBSSLMode)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}
	log.Println("migration complete")
}
