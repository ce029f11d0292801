package clearance

import (
	"github.com/brightwell-health/portal/internal/model"
	"github.com/brightwell-health/portal/internal/store"
)

// Item is one worklist row: an unresolved claim joined with its patient's
// insurance state.
type Item struct {
	Claim            model.Claim      `json:"claim"`
	PatientName      string           `json:"patient_name"`
	Insurance        *model.Insurance `json:"insurance,omitempty"`
	MissingInsurance bool             `json:"missing_insurance"`
}

// Service backs the financial-clearance view: claims still awaiting payer
// resolution, flagged when the patient has no insurance on file.
type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// Worklist returns pending and submitted claims for the practice. Unknown
// patient references are not errors; the row just carries no insurance.
func (s *Service) Worklist(practiceID string) []Item {
	var items []Item
	for _, c := range s.store.ClaimsForPractice(practiceID) {
		if c.Status != model.ClaimStatusPending && c.Status != model.ClaimStatusSubmitted {
			continue
		}

		item := Item{Claim: c, PatientName: c.PatientName}
		if p, ok := s.store.PatientByID(c.PatientID); ok {
			item.Insurance = p.Insurance
			item.MissingInsurance = p.Insurance == nil
		} else {
			item.MissingInsurance = true
		}
		items = append(items, item)
	}
	return items
}
