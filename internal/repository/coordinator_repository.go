package repository

import (
	"context"
	"database/sql"

	"github.com/agroferia/agroferia-backend/internal/model"
)

// CoordinatorRepo persists coordinator-to-fair assignments.
type CoordinatorRepo struct{ DB *sql.DB }

func NewCoordinatorRepo(db *sql.DB) *CoordinatorRepo { return &CoordinatorRepo{DB: db} }

// Assign links a coordinator user to a fair.  The (user_id, fair_id) unique
// constraint turns a repeated assignment into ErrDuplicate.
func (r *CoordinatorRepo) Assign(ctx context.Context, c *model.FairCoordinator) error {
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO fair_coordinators (user_id, fair_id, assigned_date)
		 VALUES ($1, $2, now()) RETURNING id, assigned_date`,
		c.UserID, c.FairID,
	).Scan(&c.ID, &c.AssignedDate)
	return translateUnique(err)
}

// ListByFair returns the coordinators assigned to a fair.
func (r *CoordinatorRepo) ListByFair(ctx context.Context, fairID uint64) ([]model.FairCoordinator, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, user_id, fair_id, assigned_date FROM fair_coordinators
		 WHERE fair_id = $1 ORDER BY assigned_date ASC`, fairID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.FairCoordinator{}
	for rows.Next() {
		var c model.FairCoordinator
		if err := rows.Scan(&c.ID, &c.UserID, &c.FairID, &c.AssignedDate); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
