package model

import "time"

type StaffStatus string

const (
	StaffStatusActive   StaffStatus = "active"
	StaffStatusInactive StaffStatus = "inactive"
)

// Credential is a license or certification held by a staff member.
type Credential struct {
	Name      string    `json:"name"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Staff struct {
	Base
	PracticeID  string       `json:"practice_id"`
	Name        string       `json:"name"`
	Role        string       `json:"role"`
	Department  string       `json:"department"`
	Email       string       `json:"email,omitempty"`
	Phone       string       `json:"phone,omitempty"`
	Status      StaffStatus  `json:"status"`
	Credentials []Credential `json:"credentials,omitempty"`
}
