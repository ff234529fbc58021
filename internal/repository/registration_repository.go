package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/agroferia/agroferia-backend/internal/model"
)

// RegistrationRepo persists producer-to-fair registrations.  Approval is the
// one multi-statement write in the service and runs in a transaction: the
// registration row and the fair's capacity counters are locked, the status
// flips, and current_capacity moves together or not at all.
type RegistrationRepo struct{ DB *sql.DB }

func NewRegistrationRepo(db *sql.DB) *RegistrationRepo { return &RegistrationRepo{DB: db} }

var (
	// ErrFairFull means the fair has no remaining capacity for approval.
	ErrFairFull = errors.New("la feria no tiene cupos disponibles")
	// ErrAlreadyDecided means the registration left the pending state.
	ErrAlreadyDecided = errors.New("la inscripción ya fue procesada")
)

const registrationCols = "id, fair_id, producer_id, products_to_sell, estimated_quantity, status, assigned_spot, created_at, updated_at"

// Create inserts a registration and populates the generated fields.  The
// (fair_id, producer_id) unique constraint turns a second registration for
// the same fair into ErrDuplicate.
func (r *RegistrationRepo) Create(ctx context.Context, reg *model.Registration) error {
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO registrations (fair_id, producer_id, products_to_sell, estimated_quantity, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		reg.FairID, reg.ProducerID, jsonbList(reg.ProductsToSell), reg.EstimatedQuantity, reg.Status,
	).Scan(&reg.ID, &reg.CreatedAt, &reg.UpdatedAt)
	return translateUnique(err)
}

// GetByID fetches a registration by id.
func (r *RegistrationRepo) GetByID(ctx context.Context, id uint64) (model.Registration, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+registrationCols+" FROM registrations WHERE id = $1 LIMIT 1", id)
	reg, err := scanRegistration(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Registration{}, ErrNotFound
	}
	return reg, err
}

// List returns registrations, optionally filtered by fair and/or producer
// (0 = no filter), newest first.
func (r *RegistrationRepo) List(ctx context.Context, fairID, producerID uint64) ([]model.Registration, error) {
	query := "SELECT " + registrationCols + " FROM registrations WHERE 1=1"
	args := []any{}
	if fairID != 0 {
		args = append(args, fairID)
		query += " AND fair_id = $1"
	}
	if producerID != 0 {
		args = append(args, producerID)
		if len(args) == 1 {
			query += " AND producer_id = $1"
		} else {
			query += " AND producer_id = $2"
		}
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Registration{}
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, reg)
	}
	return out, rows.Err()
}

// ApprovedInfo carries the joined names the approval event needs so
// downstream consumers do not have to query the primary database.
type ApprovedInfo struct {
	Registration model.Registration
	FairName     string
	ProducerName string
}

// Approve flips a pending registration to approved inside one transaction:
// lock the registration, lock the fair, verify current_capacity <
// max_capacity, assign the spot and bump the counter.  Returns ErrFairFull
// when the fair is at capacity and ErrAlreadyDecided when the registration
// is not pending.
func (r *RegistrationRepo) Approve(ctx context.Context, id uint64, spot string) (ApprovedInfo, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return ApprovedInfo{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var info ApprovedInfo
	row := tx.QueryRowContext(ctx,
		"SELECT "+registrationCols+" FROM registrations WHERE id = $1 FOR UPDATE", id)
	reg, err := scanRegistration(row)
	if errors.Is(err, sql.ErrNoRows) {
		return ApprovedInfo{}, ErrNotFound
	}
	if err != nil {
		return ApprovedInfo{}, err
	}
	if reg.Status != model.RegistrationPending {
		return ApprovedInfo{}, ErrAlreadyDecided
	}

	var maxCap, curCap int
	err = tx.QueryRowContext(ctx,
		"SELECT max_capacity, current_capacity FROM fairs WHERE id = $1 FOR UPDATE",
		reg.FairID).Scan(&maxCap, &curCap)
	if errors.Is(err, sql.ErrNoRows) {
		return ApprovedInfo{}, ErrNotFound
	}
	if err != nil {
		return ApprovedInfo{}, err
	}
	if curCap >= maxCap {
		return ApprovedInfo{}, ErrFairFull
	}

	err = tx.QueryRowContext(ctx,
		`UPDATE registrations SET status = $1, assigned_spot = $2, updated_at = now()
		 WHERE id = $3 RETURNING updated_at`,
		model.RegistrationApproved, spot, id).Scan(&reg.UpdatedAt)
	if err != nil {
		return ApprovedInfo{}, err
	}
	reg.Status = model.RegistrationApproved
	reg.AssignedSpot = &spot

	if _, err := tx.ExecContext(ctx,
		"UPDATE fairs SET current_capacity = current_capacity + 1, updated_at = now() WHERE id = $1",
		reg.FairID); err != nil {
		return ApprovedInfo{}, err
	}

	if err := tx.QueryRowContext(ctx,
		"SELECT name FROM fairs WHERE id = $1", reg.FairID).Scan(&info.FairName); err != nil {
		return ApprovedInfo{}, err
	}
	if err := tx.QueryRowContext(ctx,
		"SELECT name FROM producers WHERE id = $1", reg.ProducerID).Scan(&info.ProducerName); err != nil {
		return ApprovedInfo{}, err
	}

	if err := tx.Commit(); err != nil {
		return ApprovedInfo{}, err
	}
	info.Registration = reg
	return info, nil
}

// Reject flips a pending registration to rejected.
func (r *RegistrationRepo) Reject(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE registrations SET status = $1, updated_at = now()
		 WHERE id = $2 AND status = $3`,
		model.RegistrationRejected, id, model.RegistrationPending)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Distinguish missing from already-decided for the handler.
		if _, gerr := r.GetByID(ctx, id); gerr != nil {
			return gerr
		}
		return ErrAlreadyDecided
	}
	return nil
}

func scanRegistration(s rowScanner) (model.Registration, error) {
	var reg model.Registration
	var products []byte
	var spot sql.NullString
	err := s.Scan(&reg.ID, &reg.FairID, &reg.ProducerID, &products, &reg.EstimatedQuantity, &reg.Status, &spot, &reg.CreatedAt, &reg.UpdatedAt)
	if err != nil {
		return model.Registration{}, err
	}
	reg.ProductsToSell = scanList(products)
	if spot.Valid {
		v := spot.String
		reg.AssignedSpot = &v
	}
	return reg, nil
}
