package repository

import (
	"context"
	"database/sql"

	"github.com/agroferia/agroferia-backend/internal/model"
)

// HelpRepo persists technical help requests.
type HelpRepo struct{ DB *sql.DB }

func NewHelpRepo(db *sql.DB) *HelpRepo { return &HelpRepo{DB: db} }

const helpCols = "id, user_id, subject, description, urgency, attachments, status, created_at, updated_at"

// Create inserts a help request and populates the generated fields.
func (r *HelpRepo) Create(ctx context.Context, h *model.TechnicalHelpRequest) error {
	return r.DB.QueryRowContext(ctx,
		`INSERT INTO technical_help_requests (user_id, subject, description, urgency, attachments, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		h.UserID, h.Subject, h.Description, h.Urgency, jsonbList(h.Attachments), h.Status,
	).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
}

// List returns help requests ordered by urgency rank (critical > high >
// medium > low) and within each rank newest first.  The rank is a fixed
// CASE so the order is a stable total order over the two keys.
func (r *HelpRepo) List(ctx context.Context) ([]model.TechnicalHelpRequest, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+helpCols+` FROM technical_help_requests
		 ORDER BY CASE urgency
		     WHEN 'critical' THEN 0
		     WHEN 'high'     THEN 1
		     WHEN 'medium'   THEN 2
		     ELSE 3
		 END, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.TechnicalHelpRequest{}
	for rows.Next() {
		var h model.TechnicalHelpRequest
		var attachments []byte
		if err := rows.Scan(&h.ID, &h.UserID, &h.Subject, &h.Description, &h.Urgency, &attachments, &h.Status, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		h.Attachments = scanList(attachments)
		out = append(out, h)
	}
	return out, rows.Err()
}

// UpdateStatus moves a request through pending -> in_progress -> resolved.
func (r *HelpRepo) UpdateStatus(ctx context.Context, id uint64, status string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE technical_help_requests SET status = $1, updated_at = now() WHERE id = $2", status, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return ErrNotFound
	}
	return err
}

// CountByUrgency returns how many open (non-resolved) requests exist per
// urgency level for the statistics endpoint.
func (r *HelpRepo) CountByUrgency(ctx context.Context) (map[string]int, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT urgency, COUNT(*) FROM technical_help_requests
		 WHERE status <> 'resolved' GROUP BY urgency`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var urgency string
		var n int
		if err := rows.Scan(&urgency, &n); err != nil {
			return nil, err
		}
		out[urgency] = n
	}
	return out, rows.Err()
}
