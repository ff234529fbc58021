package model

import "time"

// Roles recognized by the access gate.  The role is carried in the JWT and
// checked by the RequireRole middleware before privileged operations.
const (
	RoleAdmin       = "admin"
	RoleCoordinator = "coordinator"
	RoleProducer    = "producer"
	RoleUser        = "user"
)

// User mirrors the users table.  A user may optionally be linked to a
// Producer profile via producers.user_id.
type User struct {
	ID        uint64    `json:"id"`        // users.id
	Username  string    `json:"username"`  // users.username (unique)
	Email     string    `json:"email"`     // users.email (unique)
	FullName  string    `json:"fullName"`  // users.full_name
	Phone     string    `json:"phone"`     // users.phone
	Role      string    `json:"role"`      // users.role (admin|coordinator|producer|user)
	Status    string    `json:"status"`    // users.status (active|inactive)
	CreatedAt time.Time `json:"createdAt"` // users.created_at
	UpdatedAt time.Time `json:"updatedAt"` // users.updated_at
}
