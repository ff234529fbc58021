package model

import "time"

// Producer mirrors the producers table.  ProductType holds the list of
// product categories the producer works with; it is stored as JSONB.
type Producer struct {
	ID             uint64    `json:"id"`             // producers.id
	UserID         *uint64   `json:"userId"`         // producers.user_id (nullable back-reference)
	Name           string    `json:"name"`           // producers.name
	DocumentType   string    `json:"documentType"`   // producers.document_type
	DocumentNumber string    `json:"documentNumber"` // producers.document_number (unique per type)
	Phone          string    `json:"phone"`          // producers.phone
	Email          string    `json:"email"`          // producers.email
	FarmName       string    `json:"farmName"`       // producers.farm_name
	FarmSize       float64   `json:"farmSize"`       // producers.farm_size (hectares)
	ProductType    []string  `json:"productType"`    // producers.product_type (JSONB list)
	CreatedAt      time.Time `json:"createdAt"`      // producers.created_at
	UpdatedAt      time.Time `json:"updatedAt"`      // producers.updated_at
}
