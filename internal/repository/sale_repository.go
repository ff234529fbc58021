package repository

import (
	"context"
	"database/sql"

	"github.com/agroferia/agroferia-backend/internal/model"
)

// SaleRepo persists sales.  A sale always hangs off a registration; the
// product reference is optional and denormalized.
type SaleRepo struct{ DB *sql.DB }

func NewSaleRepo(db *sql.DB) *SaleRepo { return &SaleRepo{DB: db} }

const saleCols = "id, registration_id, product_id, product_name, quantity, unit_price, total_amount, payment_method, sale_date, created_at"

// Create inserts a sale and populates the generated fields on s.
func (r *SaleRepo) Create(ctx context.Context, s *model.Sale) error {
	return r.DB.QueryRowContext(ctx,
		`INSERT INTO sales (registration_id, product_id, product_name, quantity, unit_price, total_amount, payment_method, sale_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		s.RegistrationID, s.ProductID, s.ProductName, s.Quantity, s.UnitPrice, s.TotalAmount, s.PaymentMethod, s.SaleDate,
	).Scan(&s.ID, &s.CreatedAt)
}

// List returns sales, optionally filtered by registration (0 = no filter),
// newest sale date first.
func (r *SaleRepo) List(ctx context.Context, registrationID uint64) ([]model.Sale, error) {
	query := "SELECT " + saleCols + " FROM sales"
	args := []any{}
	if registrationID != 0 {
		query += " WHERE registration_id = $1"
		args = append(args, registrationID)
	}
	query += " ORDER BY sale_date DESC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Sale{}
	for rows.Next() {
		var s model.Sale
		var productID sql.NullInt64
		if err := rows.Scan(&s.ID, &s.RegistrationID, &productID, &s.ProductName, &s.Quantity, &s.UnitPrice, &s.TotalAmount, &s.PaymentMethod, &s.SaleDate, &s.CreatedAt); err != nil {
			return nil, err
		}
		if productID.Valid {
			v := uint64(productID.Int64)
			s.ProductID = &v
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
