package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type ClaimStatus string

// Canonical claim statuses are lowercase. Seed data and request payloads may
// carry mixed casing ("Paid", "Denied"); NormalizeClaimStatus folds those to
// the canonical form so all comparisons are exact.
const (
	ClaimStatusPending   ClaimStatus = "pending"
	ClaimStatusSubmitted ClaimStatus = "submitted"
	ClaimStatusApproved  ClaimStatus = "approved"
	ClaimStatusDenied    ClaimStatus = "denied"
	ClaimStatusPaid      ClaimStatus = "paid"
)

func NormalizeClaimStatus(s string) ClaimStatus {
	return ClaimStatus(strings.ToLower(strings.TrimSpace(s)))
}

func (s ClaimStatus) Valid() bool {
	switch s {
	case ClaimStatusPending, ClaimStatusSubmitted, ClaimStatusApproved, ClaimStatusDenied, ClaimStatusPaid:
		return true
	}
	return false
}

type Claim struct {
	Base
	PracticeID  string      `json:"practice_id"`
	PatientID   uuid.UUID   `json:"patient_id"`
	PatientName string      `json:"patient_name"`
	ServiceDate time.Time   `json:"service_date"`
	Amount      float64     `json:"amount"`
	Status      ClaimStatus `json:"status"`
	CPT         string      `json:"cpt"`
	Diagnosis   string      `json:"diagnosis"`
	Payer       string      `json:"payer"`
}

type ClaimFilters struct {
	PracticeID string      `form:"practice_id"`
	Status     ClaimStatus `form:"status"`
	Payer      string      `form:"payer"`
}
