package model

import "time"

// Product mirrors the products table.  Products belong to a producer and
// feed the sales listing.
type Product struct {
	ID         uint64    `json:"id"`         // products.id
	ProducerID uint64    `json:"producerId"` // products.producer_id
	Name       string    `json:"name"`       // products.name
	Quantity   float64   `json:"quantity"`   // products.quantity
	Unit       string    `json:"unit"`       // products.unit (kg, unidad, litro...)
	UnitPrice  float64   `json:"unitPrice"`  // products.unit_price
	Category   string    `json:"category"`   // products.category
	Status     string    `json:"status"`     // products.status (available|sold_out)
	CreatedAt  time.Time `json:"createdAt"`  // products.created_at
	UpdatedAt  time.Time `json:"updatedAt"`  // products.updated_at
}
