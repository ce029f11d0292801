package model

import "time"

type Insurance struct {
	Payer    string `json:"payer"`
	PlanName string `json:"plan_name"`
	MemberID string `json:"member_id"`
	GroupNum string `json:"group_number,omitempty"`
}

type Patient struct {
	Base
	PracticeID  string     `json:"practice_id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	DateOfBirth time.Time  `json:"date_of_birth"`
	Gender      string     `json:"gender,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	Email       string     `json:"email,omitempty"`
	Address     string     `json:"address,omitempty"`
	Insurance   *Insurance `json:"insurance,omitempty"`

	// Ordered clinical sequences; order is meaningful and preserved.
	MedicalHistory []string `json:"medical_history,omitempty"`
	Medications    []string `json:"medications,omitempty"`
	Allergies      []string `json:"allergies,omitempty"`

	// IsRestricted gates visibility in patient-facing views.
	IsRestricted bool `json:"is_restricted"`
}

func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}
