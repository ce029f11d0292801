package clearance

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightwell-health/portal/internal/model"
	"github.com/brightwell-health/portal/internal/store"
)

func clearanceSeed() store.Seed {
	insured := uuid.MustParse("20000000-0000-0000-0000-000000000001")
	uninsured := uuid.MustParse("20000000-0000-0000-0000-000000000002")
	return store.Seed{
		Practices: []model.Practice{{ID: "p1", Name: "One"}},
		Patients: []model.Patient{
			{Base: model.Base{ID: insured}, PracticeID: "p1", FirstName: "Ann", LastName: "Lee",
				Insurance: &model.Insurance{Payer: "Aetna", MemberID: "A1"}},
			{Base: model.Base{ID: uninsured}, PracticeID: "p1", FirstName: "Bob", LastName: "Ray"},
		},
		Claims: []model.Claim{
			{Base: model.Base{ID: uuid.New()}, PracticeID: "p1", PatientID: insured, PatientName: "Ann Lee", Amount: 100, Status: model.ClaimStatusPending},
			{Base: model.Base{ID: uuid.New()}, PracticeID: "p1", PatientID: uninsured, PatientName: "Bob Ray", Amount: 200, Status: model.ClaimStatusSubmitted},
			{Base: model.Base{ID: uuid.New()}, PracticeID: "p1", PatientID: insured, PatientName: "Ann Lee", Amount: 300, Status: model.ClaimStatusPaid},
			{Base: model.Base{ID: uuid.New()}, PracticeID: "p1", PatientID: uuid.New(), PatientName: "Ghost", Amount: 50, Status: model.ClaimStatusPending},
		},
	}
}

func TestWorklistKeepsOnlyUnresolvedClaims(t *testing.T) {
	svc := NewService(store.New(clearanceSeed(), nil, nil))

	items := svc.Worklist("p1")
	require.Len(t, items, 3, "paid claims stay off the worklist")
	for _, it := range items {
		assert.Contains(t, []model.ClaimStatus{model.ClaimStatusPending, model.ClaimStatusSubmitted}, it.Claim.Status)
	}
}

func TestWorklistFlagsMissingInsurance(t *testing.T) {
	svc := NewService(store.New(clearanceSeed(), nil, nil))

	byName := make(map[string]Item)
	for _, it := range svc.Worklist("p1") {
		byName[it.PatientName] = it
	}

	require.Contains(t, byName, "Ann Lee")
	assert.False(t, byName["Ann Lee"].MissingInsurance)
	require.NotNil(t, byName["Ann Lee"].Insurance)
	assert.Equal(t, "Aetna", byName["Ann Lee"].Insurance.Payer)

	require.Contains(t, byName, "Bob Ray")
	assert.True(t, byName["Bob Ray"].MissingInsurance)
	assert.Nil(t, byName["Bob Ray"].Insurance)

	// An orphaned patient reference is flagged, not an error.
	require.Contains(t, byName, "Ghost")
	assert.True(t, byName["Ghost"].MissingInsurance)
}

func TestWorklistEmptyForUnknownPractice(t *testing.T) {
	svc := NewService(store.New(clearanceSeed(), nil, nil))
	assert.Empty(t, svc.Worklist("nope"))
}
