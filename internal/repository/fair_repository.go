package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/agroferia/agroferia-backend/internal/model"
)

// FairRepo persists fairs.  current_capacity only moves inside the
// registration-approval transaction (see RegistrationRepo.Approve).
type FairRepo struct{ DB *sql.DB }

func NewFairRepo(db *sql.DB) *FairRepo { return &FairRepo{DB: db} }

const fairCols = "id, name, location, address, start_date, end_date, max_capacity, current_capacity, status, product_categories, requirements, created_at, updated_at"

// Create inserts a fair and populates the generated fields on f.
func (r *FairRepo) Create(ctx context.Context, f *model.Fair) error {
	return r.DB.QueryRowContext(ctx,
		`INSERT INTO fairs (name, location, address, start_date, end_date, max_capacity, current_capacity, status, product_categories, requirements)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, created_at, updated_at`,
		f.Name, f.Location, f.Address, f.StartDate, f.EndDate, f.MaxCapacity, f.CurrentCapacity, f.Status,
		jsonbList(f.ProductCategories), jsonbList(f.Requirements),
	).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
}

// GetByID fetches a fair by id.
func (r *FairRepo) GetByID(ctx context.Context, id uint64) (model.Fair, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+fairCols+" FROM fairs WHERE id = $1 LIMIT 1", id)
	f, err := scanFair(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Fair{}, ErrNotFound
	}
	return f, err
}

// List returns fairs ordered by start date, soonest first.  An optional
// status filters the result.
func (r *FairRepo) List(ctx context.Context, status string) ([]model.Fair, error) {
	query := "SELECT " + fairCols + " FROM fairs"
	args := []any{}
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += " ORDER BY start_date ASC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Fair{}
	for rows.Next() {
		f, err := scanFair(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// UpdateStatus moves a fair through its scheduled -> active -> closed
// lifecycle.
func (r *FairRepo) UpdateStatus(ctx context.Context, id uint64, status string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE fairs SET status = $1, updated_at = now() WHERE id = $2", status, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return ErrNotFound
	}
	return err
}

func scanFair(s rowScanner) (model.Fair, error) {
	var f model.Fair
	var categories, requirements []byte
	err := s.Scan(&f.ID, &f.Name, &f.Location, &f.Address, &f.StartDate, &f.EndDate,
		&f.MaxCapacity, &f.CurrentCapacity, &f.Status, &categories, &requirements, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return model.Fair{}, err
	}
	f.ProductCategories = scanList(categories)
	f.Requirements = scanList(requirements)
	return f, nil
}
