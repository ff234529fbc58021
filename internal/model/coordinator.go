package model

import "time"

// FairCoordinator assigns a coordinator user to a fair.  The (user, fair)
// pair is unique; assigning twice yields a Conflict.
type FairCoordinator struct {
	ID           uint64    `json:"id"`           // fair_coordinators.id
	UserID       uint64    `json:"userId"`       // fair_coordinators.user_id
	FairID       uint64    `json:"fairId"`       // fair_coordinators.fair_id
	AssignedDate time.Time `json:"assignedDate"` // fair_coordinators.assigned_date
}
