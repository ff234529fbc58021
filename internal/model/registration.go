package model

import "time"

// Registration statuses.
const (
	RegistrationPending  = "pending"
	RegistrationApproved = "approved"
	RegistrationRejected = "rejected"
)

// Registration links a producer to a fair.  ProductsToSell is a JSONB list
// of product names.  AssignedSpot is set when a coordinator approves the
// registration.  One registration per (producer, fair) is enforced by a
// unique constraint.
type Registration struct {
	ID                uint64    `json:"id"`                // registrations.id
	FairID            uint64    `json:"fairId"`            // registrations.fair_id
	ProducerID        uint64    `json:"producerId"`        // registrations.producer_id
	ProductsToSell    []string  `json:"productsToSell"`    // registrations.products_to_sell (JSONB list)
	EstimatedQuantity float64   `json:"estimatedQuantity"` // registrations.estimated_quantity
	Status            string    `json:"status"`            // registrations.status (pending|approved|rejected)
	AssignedSpot      *string   `json:"assignedSpot"`      // registrations.assigned_spot (nullable)
	CreatedAt         time.Time `json:"createdAt"`         // registrations.created_at
	UpdatedAt         time.Time `json:"updatedAt"`         // registrations.updated_at
}
