package billing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightwell-health/portal/internal/model"
	"github.com/brightwell-health/portal/internal/store"
)

func billingSeed() store.Seed {
	pat := uuid.New()
	return store.Seed{
		Practices: []model.Practice{{ID: "p1", Name: "One"}, {ID: "p2", Name: "Two"}},
		Patients: []model.Patient{
			{Base: model.Base{ID: pat}, PracticeID: "p1", FirstName: "Ann", LastName: "Lee"},
		},
		Claims: []model.Claim{
			{Base: model.Base{ID: uuid.New()}, PracticeID: "p1", PatientID: pat, Amount: 100, Status: "Paid", Payer: "Aetna"},
			{Base: model.Base{ID: uuid.New()}, PracticeID: "p1", PatientID: pat, Amount: 300, Status: "DENIED", Payer: "Medicare"},
			{Base: model.Base{ID: uuid.New()}, PracticeID: "p2", PatientID: pat, Amount: 250, Status: model.ClaimStatusPending, Payer: "Aetna"},
		},
	}
}

func TestListClaimsStatusFilterIsCaseInsensitive(t *testing.T) {
	st := store.New(billingSeed(), nil, nil)
	svc := NewService(st, nil, nil)

	for _, status := range []string{"paid", "Paid", "PAID", " paid "} {
		got := svc.ListClaims("p1", status)
		require.Len(t, got, 1, "status %q should match the paid claim", status)
		assert.Equal(t, model.ClaimStatusPaid, got[0].Status)
	}

	assert.Len(t, svc.ListClaims("p1", ""), 2)
	assert.Empty(t, svc.ListClaims("p1", "submitted"))
}

func TestListClaimsAllPractices(t *testing.T) {
	st := store.New(billingSeed(), nil, nil)
	svc := NewService(st, nil, nil)

	assert.Len(t, svc.ListClaims(model.PracticeAll, ""), 3)
	assert.Len(t, svc.ListClaims(model.PracticeAll, "pending"), 1)
}

func TestReportRates(t *testing.T) {
	st := store.New(billingSeed(), nil, nil)
	svc := NewService(st, nil, nil)

	// p1: one paid, one denied out of two claims.
	report := svc.Report("p1")
	assert.Equal(t, 2, report.TotalClaims)
	assert.InDelta(t, 400.0, report.TotalBilled, 0.001)
	assert.InDelta(t, 100.0, report.TotalCollected, 0.001)
	assert.InDelta(t, 50.0, report.CollectionRate, 0.001)
	assert.InDelta(t, 50.0, report.DenialRate, 0.001)
	// Denied and paid claims are settled; nothing outstanding.
	assert.InDelta(t, 0.0, report.Outstanding, 0.001)
	assert.InDelta(t, 100.0, report.ByPayer["Aetna"], 0.001)
	assert.InDelta(t, 300.0, report.ByPayer["Medicare"], 0.001)
}

func TestReportEmptyPractice(t *testing.T) {
	st := store.New(billingSeed(), nil, nil)
	svc := NewService(st, nil, nil)

	report := svc.Report("no-such-practice")
	assert.Equal(t, 0, report.TotalClaims)
	assert.Zero(t, report.CollectionRate)
	assert.Zero(t, report.DenialRate)
}

func TestReportIsCachedPerPractice(t *testing.T) {
	st := store.New(billingSeed(), nil, nil)
	svc := NewService(st, nil, nil)

	first := svc.Report("p1")
	second := svc.Report("p1")
	assert.Same(t, first, second, "repeat reads within the TTL hit the cache")

	other := svc.Report("p2")
	assert.NotSame(t, first, other)
	assert.Equal(t, 1, other.TotalClaims)
}
