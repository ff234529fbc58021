package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/agroferia/agroferia-backend/internal/model"
)

// ProducerRepo persists producer profiles.
type ProducerRepo struct{ DB *sql.DB }

func NewProducerRepo(db *sql.DB) *ProducerRepo { return &ProducerRepo{DB: db} }

const producerCols = "id, user_id, name, document_type, document_number, phone, email, farm_name, farm_size, product_type, created_at, updated_at"

// Create inserts a producer and populates the generated fields on p.
// A duplicate document number for the same document type surfaces as
// ErrDuplicate.
func (r *ProducerRepo) Create(ctx context.Context, p *model.Producer) error {
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO producers (user_id, name, document_type, document_number, phone, email, farm_name, farm_size, product_type)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at, updated_at`,
		p.UserID, p.Name, p.DocumentType, p.DocumentNumber, p.Phone, p.Email, p.FarmName, p.FarmSize, jsonbList(p.ProductType),
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	return translateUnique(err)
}

// GetByID fetches a producer by id.
func (r *ProducerRepo) GetByID(ctx context.Context, id uint64) (model.Producer, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+producerCols+" FROM producers WHERE id = $1 LIMIT 1", id)
	p, err := scanProducer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Producer{}, ErrNotFound
	}
	return p, err
}

// List returns all producers, newest first.
func (r *ProducerRepo) List(ctx context.Context) ([]model.Producer, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+producerCols+" FROM producers ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Producer{}
	for rows.Next() {
		p, err := scanProducer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type rowScanner interface{ Scan(dest ...any) error }

func scanProducer(s rowScanner) (model.Producer, error) {
	var p model.Producer
	var userID sql.NullInt64
	var productType []byte
	err := s.Scan(&p.ID, &userID, &p.Name, &p.DocumentType, &p.DocumentNumber, &p.Phone, &p.Email, &p.FarmName, &p.FarmSize, &productType, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return model.Producer{}, err
	}
	if userID.Valid {
		v := uint64(userID.Int64)
		p.UserID = &v
	}
	p.ProductType = scanList(productType)
	return p, nil
}
