package entities

import "time"

// UserRole is the capability set an actor operates with.
type UserRole string

const (
	UserRoleAdmin      UserRole = "ADMIN"
	UserRoleTechnician UserRole = "TECHNICIAN"
)

func (r UserRole) Valid() bool {
	return r == UserRoleAdmin || r == UserRoleTechnician
}

// User is a shop employee persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Actor is the already-authenticated identity a usecase authorizes against.
// It is threaded explicitly into every gated operation; the core never reads
// identity from ambient state.
type Actor struct {
	ID   string
	Role UserRole
}

func (a Actor) IsAdmin() bool {
	return a.Role == UserRoleAdmin
}

// CanManageOrder reports whether the actor may mutate the given order: admins
// always, technicians only on their own assignments.
func (a Actor) CanManageOrder(o RepairOrder) bool {
	return a.IsAdmin() || (a.Role == UserRoleTechnician && a.ID == o.TechnicianID)
}
