package model

import "time"

// Fair statuses follow the scheduled -> active -> closed lifecycle.
const (
	FairScheduled = "scheduled"
	FairActive    = "active"
	FairClosed    = "closed"
)

// Fair mirrors the fairs table.  CurrentCapacity counts approved
// registrations and must never exceed MaxCapacity; the check happens inside
// the registration-approval transaction rather than as a table constraint.
type Fair struct {
	ID                uint64    `json:"id"`                // fairs.id
	Name              string    `json:"name"`              // fairs.name
	Location          string    `json:"location"`          // fairs.location
	Address           string    `json:"address"`           // fairs.address
	StartDate         time.Time `json:"startDate"`         // fairs.start_date
	EndDate           time.Time `json:"endDate"`           // fairs.end_date
	MaxCapacity       int       `json:"maxCapacity"`       // fairs.max_capacity (defaults to 50)
	CurrentCapacity   int       `json:"currentCapacity"`   // fairs.current_capacity
	Status            string    `json:"status"`            // fairs.status (scheduled|active|closed)
	ProductCategories []string  `json:"productCategories"` // fairs.product_categories (JSONB list)
	Requirements      []string  `json:"requirements"`      // fairs.requirements (JSONB list)
	CreatedAt         time.Time `json:"createdAt"`         // fairs.created_at
	UpdatedAt         time.Time `json:"updatedAt"`         // fairs.updated_at
}
