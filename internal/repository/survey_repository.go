package repository

import (
	"context"
	"database/sql"

	"github.com/agroferia/agroferia-backend/internal/model"
)

// SurveyRepo persists fair surveys.  One survey per (user, fair): the pre-
// insert existence check gives a friendly message, the unique constraint is
// what actually holds under concurrent submission.
type SurveyRepo struct{ DB *sql.DB }

func NewSurveyRepo(db *sql.DB) *SurveyRepo { return &SurveyRepo{DB: db} }

const surveyCols = "id, user_id, fair_id, satisfaction, organization, sales_volume, comments, would_recommend, created_at"

// Exists reports whether the user already submitted a survey for the fair.
func (r *SurveyRepo) Exists(ctx context.Context, userID, fairID uint64) (bool, error) {
	var one int
	err := r.DB.QueryRowContext(ctx,
		"SELECT 1 FROM fair_surveys WHERE user_id = $1 AND fair_id = $2 LIMIT 1",
		userID, fairID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	return err == nil, err
}

// Create inserts a survey.  A concurrent duplicate slips past Exists and is
// converted from the constraint violation into ErrDuplicate here.
func (r *SurveyRepo) Create(ctx context.Context, s *model.FairSurvey) error {
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO fair_surveys (user_id, fair_id, satisfaction, organization, sales_volume, comments, would_recommend)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		s.UserID, s.FairID, s.Satisfaction, s.Organization, s.SalesVolume, s.Comments, s.WouldRecommend,
	).Scan(&s.ID, &s.CreatedAt)
	return translateUnique(err)
}

// ListByFair returns all surveys for a fair, newest first.
func (r *SurveyRepo) ListByFair(ctx context.Context, fairID uint64) ([]model.FairSurvey, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+surveyCols+" FROM fair_surveys WHERE fair_id = $1 ORDER BY created_at DESC", fairID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.FairSurvey{}
	for rows.Next() {
		var s model.FairSurvey
		if err := rows.Scan(&s.ID, &s.UserID, &s.FairID, &s.Satisfaction, &s.Organization, &s.SalesVolume, &s.Comments, &s.WouldRecommend, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// SatisfactionScores returns the satisfaction column for a fair, feeding the
// NPS computation in the handler.
func (r *SurveyRepo) SatisfactionScores(ctx context.Context, fairID uint64) ([]int, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT satisfaction FROM fair_surveys WHERE fair_id = $1", fairID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []int{}
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}
