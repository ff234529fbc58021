// Package queue defines message payloads exchanged over the message broker.
package queue

// RegistrationApprovedEvent is published when a coordinator approves a
// producer's registration for a fair.  It carries enough information for
// downstream consumers to log or notify without querying the primary
// database.
type RegistrationApprovedEvent struct {
	RegistrationID uint64   `json:"registration_id"`
	FairID         uint64   `json:"fair_id"`
	FairName       string   `json:"fair_name"`
	ProducerID     uint64   `json:"producer_id"`
	ProducerName   string   `json:"producer_name"`
	AssignedSpot   string   `json:"assigned_spot"`
	Products       []string `json:"products"`
	ApprovedAt     string   `json:"approved_at"`
}
