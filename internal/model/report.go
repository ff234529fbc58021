package model

import "time"

// Urgency levels for technical help requests, from most to least pressing.
// Listings order by this rank and then by recency.
const (
	UrgencyCritical = "critical"
	UrgencyHigh     = "high"
	UrgencyMedium   = "medium"
	UrgencyLow      = "low"
)

// ContentReport mirrors the content_reports table.  Reports are filed by any
// authenticated user about problematic content; an optional photo is stored
// on disk and referenced by file name.
type ContentReport struct {
	ID          uint64    `json:"id"`          // content_reports.id
	UserID      uint64    `json:"userId"`      // content_reports.user_id
	ContentType string    `json:"contentType"` // content_reports.content_type
	Description string    `json:"description"` // content_reports.description
	Location    string    `json:"location"`    // content_reports.location
	PhotoFile   *string   `json:"photoFile"`   // content_reports.photo_file (nullable stored name)
	Status      string    `json:"status"`      // content_reports.status (pending|reviewed|resolved)
	CreatedAt   time.Time `json:"createdAt"`   // content_reports.created_at
	UpdatedAt   time.Time `json:"updatedAt"`   // content_reports.updated_at
}

// TechnicalHelpRequest mirrors the technical_help_requests table.  Producers
// open requests with an urgency level; attachments are stored on disk and
// their generated names kept as a JSONB list.
type TechnicalHelpRequest struct {
	ID          uint64    `json:"id"`          // technical_help_requests.id
	UserID      uint64    `json:"userId"`      // technical_help_requests.user_id
	Subject     string    `json:"subject"`     // technical_help_requests.subject
	Description string    `json:"description"` // technical_help_requests.description
	Urgency     string    `json:"urgency"`     // technical_help_requests.urgency (critical|high|medium|low)
	Attachments []string  `json:"attachments"` // technical_help_requests.attachments (JSONB list)
	Status      string    `json:"status"`      // technical_help_requests.status (pending|in_progress|resolved)
	CreatedAt   time.Time `json:"createdAt"`   // technical_help_requests.created_at
	UpdatedAt   time.Time `json:"updatedAt"`   // technical_help_requests.updated_at
}
