package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightwell-health/portal/internal/model"
)

func TestDemoSeedIntegrity(t *testing.T) {
	seed := DemoSeed()

	practiceIDs := make(map[string]bool)
	for _, p := range seed.Practices {
		practiceIDs[p.ID] = true
	}
	require.True(t, practiceIDs["p1"])
	require.True(t, practiceIDs["p2"])

	roles := make(map[model.Role]bool)
	for _, u := range seed.Users {
		assert.True(t, u.Role.Valid(), "user %s has invalid role %q", u.Name, u.Role)
		assert.True(t, practiceIDs[u.PracticeID], "user %s references unknown practice", u.Name)
		roles[u.Role] = true
	}
	for _, r := range []model.Role{model.RoleBiller, model.RolePracticeAdmin, model.RoleProvider, model.RoleStaff, model.RolePatient} {
		assert.True(t, roles[r], "no seed user with role %s", r)
	}

	patientIDs := make(map[string]bool)
	restricted := 0
	for _, p := range seed.Patients {
		assert.True(t, practiceIDs[p.PracticeID], "patient %s references unknown practice", p.LastName)
		patientIDs[p.ID.String()] = true
		if p.IsRestricted {
			restricted++
		}
	}
	assert.Equal(t, 1, restricted, "exactly one restricted chart expected")

	for _, c := range seed.Claims {
		assert.True(t, practiceIDs[c.PracticeID])
		assert.True(t, patientIDs[c.PatientID.String()], "claim %s references unknown patient", c.ID)
		assert.Positive(t, c.Amount)
	}

	for _, a := range seed.Appointments {
		assert.True(t, practiceIDs[a.PracticeID])
		assert.True(t, a.EndTime.After(a.StartTime), "appointment %s has inverted times", a.ID)
	}

	for _, m := range seed.Staff {
		assert.True(t, practiceIDs[m.PracticeID])
		assert.NotEmpty(t, m.Credentials, "staff %s should carry credentials", m.Name)
	}

	for _, r := range seed.Rooms {
		assert.True(t, practiceIDs[r.PracticeID])
		if r.Status == model.RoomStatusOccupied {
			assert.NotEmpty(t, r.OccupantName)
		}
	}
}

func TestDemoSeedLoadsCleanly(t *testing.T) {
	s := New(DemoSeed(), nil, nil)

	// Seed statuses carry mixed casing; after load everything is canonical.
	for _, c := range s.ClaimsForPractice(model.PracticeAll) {
		switch c.Status {
		case model.ClaimStatusPending, model.ClaimStatusSubmitted,
			model.ClaimStatusApproved, model.ClaimStatusDenied, model.ClaimStatusPaid:
		default:
			t.Fatalf("claim %s carries non-canonical status %q", c.ID, c.Status)
		}
	}

	assert.Equal(t, model.PracticeAll, s.CurrentPracticeID())
	_, ok := s.CurrentUser()
	assert.False(t, ok, "no user selected at startup")
}
