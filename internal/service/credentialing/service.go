package credentialing

import (
	"time"

	"github.com/brightwell-health/portal/internal/model"
	"github.com/brightwell-health/portal/internal/store"
)

// ExpiringSoonWindow is how far out a credential counts as expiring.
const ExpiringSoonWindow = 30 * 24 * time.Hour

type CredentialState string

const (
	CredentialCurrent  CredentialState = "current"
	CredentialExpiring CredentialState = "expiring"
	CredentialExpired  CredentialState = "expired"
)

// Entry is one roster row: a staff member's credential with its computed
// state.
type Entry struct {
	StaffID    string            `json:"staff_id"`
	Name       string            `json:"name"`
	Role       string            `json:"role"`
	Department string            `json:"department"`
	Status     model.StaffStatus `json:"status"`
	Credential model.Credential  `json:"credential"`
	State      CredentialState   `json:"state"`
}

// Buckets counts credentials by expiry state.
type Buckets struct {
	Expired  int `json:"expired"`
	Expiring int `json:"expiring"`
	Current  int `json:"current"`
}

// Service backs the staff credentialing/eligibility view.
type Service struct {
	store *store.Store
	now   func() time.Time
}

func NewService(st *store.Store) *Service {
	return &Service{store: st, now: time.Now}
}

func classify(c model.Credential, now time.Time) CredentialState {
	switch {
	case !c.ExpiresAt.After(now):
		return CredentialExpired
	case c.ExpiresAt.Before(now.Add(ExpiringSoonWindow)):
		return CredentialExpiring
	default:
		return CredentialCurrent
	}
}

// Roster flattens staff credentials into per-credential rows. activeOnly
// drops inactive staff.
func (s *Service) Roster(practiceID string, activeOnly bool) []Entry {
	now := s.now()
	var entries []Entry
	for _, m := range s.store.StaffForPractice(practiceID) {
		if activeOnly && m.Status != model.StaffStatusActive {
			continue
		}
		for _, c := range m.Credentials {
			entries = append(entries, Entry{
				StaffID:    m.ID.String(),
				Name:       m.Name,
				Role:       m.Role,
				Department: m.Department,
				Status:     m.Status,
				Credential: c,
				State:      classify(c, now),
			})
		}
	}
	return entries
}

// ExpiryBuckets summarizes credential states across the practice, active
// staff only.
func (s *Service) ExpiryBuckets(practiceID string) Buckets {
	var b Buckets
	for _, e := range s.Roster(practiceID, true) {
		switch e.State {
		case CredentialExpired:
			b.Expired++
		case CredentialExpiring:
			b.Expiring++
		default:
			b.Current++
		}
	}
	return b
}
