package repository

import (
	"context"
	"database/sql"

	"github.com/agroferia/agroferia-backend/internal/model"
)

// ReportRepo persists content reports.
type ReportRepo struct{ DB *sql.DB }

func NewReportRepo(db *sql.DB) *ReportRepo { return &ReportRepo{DB: db} }

const reportCols = "id, user_id, content_type, description, location, photo_file, status, created_at, updated_at"

// Create inserts a content report and populates the generated fields.
func (r *ReportRepo) Create(ctx context.Context, rep *model.ContentReport) error {
	return r.DB.QueryRowContext(ctx,
		`INSERT INTO content_reports (user_id, content_type, description, location, photo_file, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		rep.UserID, rep.ContentType, rep.Description, rep.Location, rep.PhotoFile, rep.Status,
	).Scan(&rep.ID, &rep.CreatedAt, &rep.UpdatedAt)
}

// List returns all reports, newest first.
func (r *ReportRepo) List(ctx context.Context) ([]model.ContentReport, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+reportCols+" FROM content_reports ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.ContentReport{}
	for rows.Next() {
		var rep model.ContentReport
		var photo sql.NullString
		if err := rows.Scan(&rep.ID, &rep.UserID, &rep.ContentType, &rep.Description, &rep.Location, &photo, &rep.Status, &rep.CreatedAt, &rep.UpdatedAt); err != nil {
			return nil, err
		}
		if photo.Valid {
			v := photo.String
			rep.PhotoFile = &v
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}

// UpdateStatus moves a report through pending -> reviewed -> resolved.
func (r *ReportRepo) UpdateStatus(ctx context.Context, id uint64, status string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE content_reports SET status = $1, updated_at = now() WHERE id = $2", status, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return ErrNotFound
	}
	return err
}
