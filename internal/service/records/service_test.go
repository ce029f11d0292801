package records

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightwell-health/portal/internal/model"
	"github.com/brightwell-health/portal/internal/store"
	"github.com/brightwell-health/portal/pkg/errors"
)

var (
	openPatientID       = uuid.MustParse("10000000-0000-0000-0000-000000000001")
	restrictedPatientID = uuid.MustParse("10000000-0000-0000-0000-000000000002")
)

func recordsSeed() store.Seed {
	return store.Seed{
		Practices: []model.Practice{{ID: "p1", Name: "One"}},
		Patients: []model.Patient{
			{Base: model.Base{ID: openPatientID}, PracticeID: "p1", FirstName: "Ann", LastName: "Lee"},
			{Base: model.Base{ID: restrictedPatientID}, PracticeID: "p1", FirstName: "Rob", LastName: "Kay", IsRestricted: true},
		},
		Appointments: []model.Appointment{
			{Base: model.Base{ID: uuid.New()}, PracticeID: "p1", PatientID: openPatientID, Status: model.AppointmentStatusScheduled},
		},
		Claims: []model.Claim{
			{Base: model.Base{ID: uuid.New()}, PracticeID: "p1", PatientID: openPatientID, Amount: 120, Status: model.ClaimStatusPending},
			{Base: model.Base{ID: uuid.New()}, PracticeID: "p1", PatientID: restrictedPatientID, Amount: 80, Status: model.ClaimStatusPaid},
		},
	}
}

func TestListPatientsHidesRestrictedFromPatients(t *testing.T) {
	svc := NewService(store.New(recordsSeed(), nil, nil))

	visible := svc.ListPatients("p1", model.RolePatient)
	require.Len(t, visible, 1)
	assert.Equal(t, openPatientID, visible[0].ID)

	for _, role := range []model.Role{model.RoleProvider, model.RoleBiller, model.RolePracticeAdmin, model.RoleStaff} {
		assert.Len(t, svc.ListPatients("p1", role), 2, "role %s sees all charts", role)
	}
}

func TestChartAggregatesPatientRecords(t *testing.T) {
	svc := NewService(store.New(recordsSeed(), nil, nil))

	chart, err := svc.Chart(openPatientID, model.RoleProvider)
	require.NoError(t, err)
	assert.Equal(t, "Ann", chart.Patient.FirstName)
	assert.Len(t, chart.Appointments, 1)
	assert.Len(t, chart.Claims, 1)
}

func TestRestrictedChartReportsNotFoundToPatientRole(t *testing.T) {
	svc := NewService(store.New(recordsSeed(), nil, nil))

	// The patient role gets the same answer as for a nonexistent chart, so
	// the response does not leak that the chart exists.
	_, err := svc.Chart(restrictedPatientID, model.RolePatient)
	require.Error(t, err)
	appErr, ok := errors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)

	chart, err := svc.Chart(restrictedPatientID, model.RoleProvider)
	require.NoError(t, err)
	assert.True(t, chart.Patient.IsRestricted)
}

func TestChartUnknownPatient(t *testing.T) {
	svc := NewService(store.New(recordsSeed(), nil, nil))

	_, err := svc.Chart(uuid.New(), model.RoleProvider)
	require.Error(t, err)
	appErr, ok := errors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}
