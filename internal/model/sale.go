package model

import "time"

// Sale mirrors the sales table.  A sale hangs off a registration; ProductID
// is an optional denormalized reference to the catalog product, never the
// parent.  TotalAmount is recomputed as Quantity * UnitPrice when the client
// omits it.
type Sale struct {
	ID             uint64    `json:"id"`             // sales.id
	RegistrationID uint64    `json:"registrationId"` // sales.registration_id
	ProductID      *uint64   `json:"productId"`      // sales.product_id (nullable reference)
	ProductName    string    `json:"productName"`    // sales.product_name
	Quantity       float64   `json:"quantity"`       // sales.quantity
	UnitPrice      float64   `json:"unitPrice"`      // sales.unit_price
	TotalAmount    float64   `json:"totalAmount"`    // sales.total_amount
	PaymentMethod  string    `json:"paymentMethod"`  // sales.payment_method (efectivo|tarjeta|transferencia)
	SaleDate       time.Time `json:"saleDate"`       // sales.sale_date
	CreatedAt      time.Time `json:"createdAt"`      // sales.created_at
}
