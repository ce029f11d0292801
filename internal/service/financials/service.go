package financials

import (
	"sort"

	"github.com/google/uuid"

	"github.com/brightwell-health/portal/internal/model"
	"github.com/brightwell-health/portal/internal/store"
)

// ProviderSummary aggregates one provider's activity: appointment volume and
// the billed/collected totals of claims for their patients.
type ProviderSummary struct {
	ProviderID     uuid.UUID `json:"provider_id"`
	ProviderName   string    `json:"provider_name"`
	Completed      int       `json:"completed_appointments"`
	Scheduled      int       `json:"scheduled_appointments"`
	TotalBilled    float64   `json:"total_billed"`
	TotalCollected float64   `json:"total_collected"`
}

// Service backs the provider-financials view.
type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// ProviderSummaries aggregates per provider within the practice. Claims are
// attributed to the provider who saw the patient; patients without an
// appointment in scope contribute to no provider.
func (s *Service) ProviderSummaries(practiceID string) []ProviderSummary {
	appointments := s.store.AppointmentsForPractice(practiceID)
	claims := s.store.ClaimsForPractice(practiceID)

	byProvider := make(map[uuid.UUID]*ProviderSummary)
	patientProvider := make(map[uuid.UUID]uuid.UUID)

	for _, a := range appointments {
		sum, ok := byProvider[a.ProviderID]
		if !ok {
			sum = &ProviderSummary{ProviderID: a.ProviderID, ProviderName: a.ProviderName}
			byProvider[a.ProviderID] = sum
		}
		switch a.Status {
		case model.AppointmentStatusCompleted:
			sum.Completed++
		case model.AppointmentStatusScheduled, model.AppointmentStatusCheckedIn, model.AppointmentStatusInProgress:
			sum.Scheduled++
		}
		patientProvider[a.PatientID] = a.ProviderID
	}

	for _, c := range claims {
		pid, ok := patientProvider[c.PatientID]
		if !ok {
			continue
		}
		sum := byProvider[pid]
		sum.TotalBilled += c.Amount
		if c.Status == model.ClaimStatusPaid {
			sum.TotalCollected += c.Amount
		}
	}

	out := make([]ProviderSummary, 0, len(byProvider))
	for _, sum := range byProvider {
		out = append(out, *sum)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ProviderName < out[j].ProviderName
	})
	return out
}
