package model

// Role determines which portal's views are reachable for a user.
type Role string

const (
	RoleBiller        Role = "biller"
	RolePracticeAdmin Role = "practice-admin"
	RoleProvider      Role = "provider"
	RoleStaff         Role = "staff"
	RolePatient       Role = "patient"
)

// Valid reports whether r is one of the known portal roles.
func (r Role) Valid() bool {
	switch r {
	case RoleBiller, RolePracticeAdmin, RoleProvider, RoleStaff, RolePatient:
		return true
	}
	return false
}

type User struct {
	Base
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	PracticeID string `json:"practice_id"`
}

type Practice struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	NPI     string `json:"npi"`
}
