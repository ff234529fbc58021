package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/agroferia/agroferia-backend/internal/model"
)

// ProductRepo persists the product catalog.
type ProductRepo struct{ DB *sql.DB }

func NewProductRepo(db *sql.DB) *ProductRepo { return &ProductRepo{DB: db} }

const productCols = "id, producer_id, name, quantity, unit, unit_price, category, status, created_at, updated_at"

// Create inserts a product and populates the generated fields on p.
func (r *ProductRepo) Create(ctx context.Context, p *model.Product) error {
	return r.DB.QueryRowContext(ctx,
		`INSERT INTO products (producer_id, name, quantity, unit, unit_price, category, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		p.ProducerID, p.Name, p.Quantity, p.Unit, p.UnitPrice, p.Category, p.Status,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// GetByID fetches a product by id.
func (r *ProductRepo) GetByID(ctx context.Context, id uint64) (model.Product, error) {
	var p model.Product
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+productCols+" FROM products WHERE id = $1 LIMIT 1", id).
		Scan(&p.ID, &p.ProducerID, &p.Name, &p.Quantity, &p.Unit, &p.UnitPrice, &p.Category, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Product{}, ErrNotFound
	}
	return p, err
}

// List returns products, optionally filtered by producer (producer_id=0
// means no filter), newest first.
func (r *ProductRepo) List(ctx context.Context, producerID uint64) ([]model.Product, error) {
	query := "SELECT " + productCols + " FROM products"
	args := []any{}
	if producerID != 0 {
		query += " WHERE producer_id = $1"
		args = append(args, producerID)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.ProducerID, &p.Name, &p.Quantity, &p.Unit, &p.UnitPrice, &p.Category, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Update rewrites the mutable fields of a product.
func (r *ProductRepo) Update(ctx context.Context, p *model.Product) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE products SET name = $1, quantity = $2, unit = $3, unit_price = $4, category = $5, status = $6, updated_at = now()
		 WHERE id = $7`,
		p.Name, p.Quantity, p.Unit, p.UnitPrice, p.Category, p.Status, p.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return ErrNotFound
	}
	return err
}

// Delete hard-deletes a product.
func (r *ProductRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return ErrNotFound
	}
	return err
}
