package repository

import (
	"context"
	"database/sql"

	"github.com/agroferia/agroferia-backend/internal/model"
)

// PostSaleRepo persists post-sale reports filed by producers after a fair.
type PostSaleRepo struct{ DB *sql.DB }

func NewPostSaleRepo(db *sql.DB) *PostSaleRepo { return &PostSaleRepo{DB: db} }

const postSaleCols = "id, user_id, fair_id, total_sales, products_sold, leftover_percent, comments, created_at"

// Create inserts a post-sale report and populates the generated fields.
func (r *PostSaleRepo) Create(ctx context.Context, p *model.PostSaleReport) error {
	return r.DB.QueryRowContext(ctx,
		`INSERT INTO post_sale_reports (user_id, fair_id, total_sales, products_sold, leftover_percent, comments)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		p.UserID, p.FairID, p.TotalSales, jsonbList(p.ProductsSold), p.LeftoverPercent, p.Comments,
	).Scan(&p.ID, &p.CreatedAt)
}

// ListByFair returns the reports for a fair, newest first.  fairID = 0
// lists everything.
func (r *PostSaleRepo) ListByFair(ctx context.Context, fairID uint64) ([]model.PostSaleReport, error) {
	query := "SELECT " + postSaleCols + " FROM post_sale_reports"
	args := []any{}
	if fairID != 0 {
		query += " WHERE fair_id = $1"
		args = append(args, fairID)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.PostSaleReport{}
	for rows.Next() {
		var p model.PostSaleReport
		var products []byte
		if err := rows.Scan(&p.ID, &p.UserID, &p.FairID, &p.TotalSales, &products, &p.LeftoverPercent, &p.Comments, &p.CreatedAt); err != nil {
			return nil, err
		}
		p.ProductsSold = scanList(products)
		out = append(out, p)
	}
	return out, rows.Err()
}

// PostSaleStats aggregates the reports of one fair.
type PostSaleStats struct {
	Reports         int     `json:"reports"`
	TotalSales      float64 `json:"totalSales"`
	AvgLeftover     float64 `json:"avgLeftoverPercent"`
	AvgSalesPerUser float64 `json:"avgSalesPerReport"`
}

// Stats computes the aggregate figures for a fair.  With no reports all
// figures are zero; the averages guard against division by zero.
func (r *PostSaleRepo) Stats(ctx context.Context, fairID uint64) (PostSaleStats, error) {
	var st PostSaleStats
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(total_sales), 0), COALESCE(AVG(leftover_percent), 0)
		 FROM post_sale_reports WHERE fair_id = $1`, fairID).
		Scan(&st.Reports, &st.TotalSales, &st.AvgLeftover)
	if err != nil {
		return PostSaleStats{}, err
	}
	if st.Reports > 0 {
		st.AvgSalesPerUser = st.TotalSales / float64(st.Reports)
	}
	return st, nil
}
