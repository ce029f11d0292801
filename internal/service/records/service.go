package records

import (
	"github.com/google/uuid"

	"github.com/brightwell-health/portal/internal/model"
	"github.com/brightwell-health/portal/internal/store"
	"github.com/brightwell-health/portal/pkg/errors"
)

// Chart is a patient's full record view: demographics plus their
// appointments and claims.
type Chart struct {
	Patient      model.Patient       `json:"patient"`
	Appointments []model.Appointment `json:"appointments"`
	Claims       []model.Claim       `json:"claims"`
}

// Service backs the patient-records views. Restricted charts are invisible
// to the patient role; clinical and administrative roles see everything.
type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// ListPatients returns the practice's patients visible to the viewer role.
func (s *Service) ListPatients(practiceID string, viewer model.Role) []model.Patient {
	patients := s.store.PatientsForPractice(practiceID)
	if viewer != model.RolePatient {
		return patients
	}

	var out []model.Patient
	for _, p := range patients {
		if !p.IsRestricted {
			out = append(out, p)
		}
	}
	return out
}

// Chart assembles the record view for one patient. A restricted chart read
// by the patient role reports not-found rather than acknowledging the chart
// exists.
func (s *Service) Chart(patientID uuid.UUID, viewer model.Role) (*Chart, error) {
	p, ok := s.store.PatientByID(patientID)
	if !ok {
		return nil, errors.NotFound("patient", nil)
	}
	if p.IsRestricted && viewer == model.RolePatient {
		return nil, errors.NotFound("patient", nil)
	}

	chart := &Chart{Patient: p}
	for _, a := range s.store.AppointmentsForPractice(model.PracticeAll) {
		if a.PatientID == patientID {
			chart.Appointments = append(chart.Appointments, a)
		}
	}
	for _, c := range s.store.ClaimsForPractice(model.PracticeAll) {
		if c.PatientID == patientID {
			chart.Claims = append(chart.Claims, c)
		}
	}
	return chart, nil
}
