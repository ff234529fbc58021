package model

import "time"

// FairSurvey mirrors the fair_surveys table.  One survey per (user, fair);
// the pair is unique at the schema level and duplicates surface as a
// Conflict.  Satisfaction runs 1-10 and feeds the NPS statistics endpoint.
type FairSurvey struct {
	ID             uint64    `json:"id"`             // fair_surveys.id
	UserID         uint64    `json:"userId"`         // fair_surveys.user_id
	FairID         uint64    `json:"fairId"`         // fair_surveys.fair_id
	Satisfaction   int       `json:"satisfaction"`   // fair_surveys.satisfaction (1-10)
	Organization   int       `json:"organization"`   // fair_surveys.organization (1-10)
	SalesVolume    string    `json:"salesVolume"`    // fair_surveys.sales_volume (free text)
	Comments       string    `json:"comments"`       // fair_surveys.comments
	WouldRecommend bool      `json:"wouldRecommend"` // fair_surveys.would_recommend
	CreatedAt      time.Time `json:"createdAt"`      // fair_surveys.created_at
}

// PostSaleReport mirrors the post_sale_reports table.  Producers file one
// after a fair closes to report totals and leftovers.
type PostSaleReport struct {
	ID              uint64    `json:"id"`              // post_sale_reports.id
	UserID          uint64    `json:"userId"`          // post_sale_reports.user_id
	FairID          uint64    `json:"fairId"`          // post_sale_reports.fair_id
	TotalSales      float64   `json:"totalSales"`      // post_sale_reports.total_sales
	ProductsSold    []string  `json:"productsSold"`    // post_sale_reports.products_sold (JSONB list)
	LeftoverPercent float64   `json:"leftoverPercent"` // post_sale_reports.leftover_percent
	Comments        string    `json:"comments"`        // post_sale_reports.comments
	CreatedAt       time.Time `json:"createdAt"`       // post_sale_reports.created_at
}
