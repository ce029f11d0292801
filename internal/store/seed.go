package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/brightwell-health/portal/internal/model"
)

// Seed supplies the initial mock collections. The demo dataset below is the
// only supplier in this repository; tests build smaller ones by hand.
type Seed struct {
	Users         []model.User
	Practices     []model.Practice
	Patients      []model.Patient
	Claims        []model.Claim
	Appointments  []model.Appointment
	Staff         []model.Staff
	Rooms         []model.Room
	Announcements []model.Announcement
}

func base(id string) model.Base {
	now := time.Now()
	return model.Base{ID: uuid.MustParse(id), CreatedAt: now, UpdatedAt: now}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DemoSeed returns the demonstration dataset: two practices, one user per
// role, and enough patients, claims, appointments, staff and rooms to make
// every portal view non-trivial.
func DemoSeed() Seed {
	maria := base("6b2a7a3e-0001-4c61-9b3e-111111111111")
	james := base("6b2a7a3e-0002-4c61-9b3e-222222222222")
	priya := base("6b2a7a3e-0003-4c61-9b3e-333333333333")
	robert := base("6b2a7a3e-0004-4c61-9b3e-444444444444")

	drChen := base("7c3b8b4f-0001-4d72-8c4f-aaaaaaaaaaa1")
	drOkafor := base("7c3b8b4f-0002-4d72-8c4f-aaaaaaaaaaa2")

	expOld := date(2025, time.March, 1)
	expSoon := date(2026, time.September, 15)
	expFar := date(2028, time.January, 1)

	rm3Appt := uuid.MustParse("9e5d0d61-0003-4f94-8e61-ccccccccccc3")

	return Seed{
		Practices: []model.Practice{
			{ID: "p1", Name: "Lakeside Family Medicine", Address: "410 Shoreline Dr, Madison, WI 53703", Phone: "608-555-0141", NPI: "1558392047"},
			{ID: "p2", Name: "Cedar Grove Internal Medicine", Address: "88 Cedar Grove Ave, Middleton, WI 53562", Phone: "608-555-0198", NPI: "1770245816"},
		},
		Users: []model.User{
			{Base: base("5a1f6c2d-0001-4b50-8a2d-000000000001"), Name: "Dana Whitfield", Email: "dana.whitfield@brightwell.example", Role: model.RoleBiller, PracticeID: "p1"},
			{Base: base("5a1f6c2d-0002-4b50-8a2d-000000000002"), Name: "Luis Herrera", Email: "luis.herrera@brightwell.example", Role: model.RolePracticeAdmin, PracticeID: "p1"},
			{Base: base("5a1f6c2d-0003-4b50-8a2d-000000000003"), Name: "Dr. Emily Chen", Email: "emily.chen@brightwell.example", Role: model.RoleProvider, PracticeID: "p1"},
			{Base: base("5a1f6c2d-0004-4b50-8a2d-000000000004"), Name: "Grace Udo", Email: "grace.udo@brightwell.example", Role: model.RoleStaff, PracticeID: "p2"},
			{Base: base("5a1f6c2d-0005-4b50-8a2d-000000000005"), Name: "Maria Alvarez", Email: "maria.alvarez@mail.example", Role: model.RolePatient, PracticeID: "p1"},
		},
		Patients: []model.Patient{
			{
				Base:           maria,
				PracticeID:     "p1",
				FirstName:      "Maria",
				LastName:       "Alvarez",
				DateOfBirth:    date(1987, time.June, 12),
				Gender:         "female",
				Phone:          "608-555-0112",
				Email:          "maria.alvarez@mail.example",
				Address:        "22 Birch Ln, Madison, WI 53711",
				Insurance:      &model.Insurance{Payer: "Aetna", PlanName: "Open Access PPO", MemberID: "W204815566", GroupNum: "GRP-7741"},
				MedicalHistory: []string{"Hypertension (2019)", "Gestational diabetes (2021)"},
				Medications:    []string{"Lisinopril 10mg daily", "Prenatal multivitamin"},
				Allergies:      []string{"Penicillin"},
			},
			{
				Base:           james,
				PracticeID:     "p1",
				FirstName:      "James",
				LastName:       "Okonkwo",
				DateOfBirth:    date(1962, time.November, 3),
				Gender:         "male",
				Phone:          "608-555-0177",
				Address:        "905 Willow Ct, Madison, WI 53704",
				Insurance:      &model.Insurance{Payer: "Medicare", PlanName: "Part B", MemberID: "3QH5-TE9-XA44"},
				MedicalHistory: []string{"Type 2 diabetes (2008)", "CABG (2016)", "Chronic kidney disease stage 2 (2022)"},
				Medications:    []string{"Metformin 1000mg BID", "Atorvastatin 40mg daily", "Aspirin 81mg daily"},
			},
			{
				Base:        priya,
				PracticeID:  "p2",
				FirstName:   "Priya",
				LastName:    "Raman",
				DateOfBirth: date(1995, time.February, 27),
				Gender:      "female",
				Phone:       "608-555-0133",
				Email:       "p.raman@mail.example",
				Insurance:   &model.Insurance{Payer: "UnitedHealthcare", PlanName: "Choice Plus", MemberID: "UHC90218374", GroupNum: "GRP-2203"},
				Allergies:   []string{"Sulfa drugs", "Latex"},
			},
			{
				// Restricted chart: hidden from patient-facing views.
				Base:           robert,
				PracticeID:     "p2",
				FirstName:      "Robert",
				LastName:       "Kaczmarek",
				DateOfBirth:    date(1978, time.August, 19),
				Gender:         "male",
				MedicalHistory: []string{"Major depressive disorder (2015)"},
				Medications:    []string{"Sertraline 100mg daily"},
				IsRestricted:   true,
			},
		},
		Claims: []model.Claim{
			// Mixed status casing is deliberate; the store normalizes on load.
			{Base: base("8d4c9c50-0001-4e83-9d50-bbbbbbbbbbb1"), PracticeID: "p1", PatientID: maria.ID, PatientName: "Maria Alvarez", ServiceDate: date(2026, time.July, 14), Amount: 240.00, Status: "Paid", CPT: "99214", Diagnosis: "I10", Payer: "Aetna"},
			{Base: base("8d4c9c50-0002-4e83-9d50-bbbbbbbbbbb2"), PracticeID: "p1", PatientID: james.ID, PatientName: "James Okonkwo", ServiceDate: date(2026, time.July, 21), Amount: 485.50, Status: "Denied", CPT: "93000", Diagnosis: "E11.9", Payer: "Medicare"},
			{Base: base("8d4c9c50-0003-4e83-9d50-bbbbbbbbbbb3"), PracticeID: "p1", PatientID: james.ID, PatientName: "James Okonkwo", ServiceDate: date(2026, time.August, 4), Amount: 130.00, Status: model.ClaimStatusPending, CPT: "80053", Diagnosis: "N18.2", Payer: "Medicare"},
			{Base: base("8d4c9c50-0004-4e83-9d50-bbbbbbbbbbb4"), PracticeID: "p1", PatientID: maria.ID, PatientName: "Maria Alvarez", ServiceDate: date(2026, time.August, 11), Amount: 95.00, Status: model.ClaimStatusSubmitted, CPT: "36415", Diagnosis: "Z00.00", Payer: "Aetna"},
			{Base: base("8d4c9c50-0005-4e83-9d50-bbbbbbbbbbb5"), PracticeID: "p2", PatientID: priya.ID, PatientName: "Priya Raman", ServiceDate: date(2026, time.July, 30), Amount: 310.25, Status: model.ClaimStatusApproved, CPT: "99395", Diagnosis: "Z00.00", Payer: "UnitedHealthcare"},
			{Base: base("8d4c9c50-0006-4e83-9d50-bbbbbbbbbbb6"), PracticeID: "p2", PatientID: robert.ID, PatientName: "Robert Kaczmarek", ServiceDate: date(2026, time.August, 18), Amount: 175.00, Status: model.ClaimStatusPending, CPT: "90834", Diagnosis: "F33.1", Payer: "Self-pay"},
		},
		Appointments: []model.Appointment{
			{Base: base("9e5d0d61-0001-4f94-8e61-ccccccccccc1"), PracticeID: "p1", PatientID: maria.ID, PatientName: "Maria Alvarez", ProviderID: drChen.ID, ProviderName: "Dr. Emily Chen", StartTime: date(2026, time.August, 24).Add(14 * time.Hour), EndTime: date(2026, time.August, 24).Add(14*time.Hour + 30*time.Minute), Type: "follow-up", Status: model.AppointmentStatusCompleted},
			{Base: base("9e5d0d61-0002-4f94-8e61-ccccccccccc2"), PracticeID: "p1", PatientID: james.ID, PatientName: "James Okonkwo", ProviderID: drChen.ID, ProviderName: "Dr. Emily Chen", StartTime: date(2026, time.August, 31).Add(9 * time.Hour), EndTime: date(2026, time.August, 31).Add(9*time.Hour + 45*time.Minute), Type: "annual-physical", Status: model.AppointmentStatusScheduled},
			{Base: model.Base{ID: rm3Appt, CreatedAt: time.Now(), UpdatedAt: time.Now()}, PracticeID: "p2", PatientID: priya.ID, PatientName: "Priya Raman", ProviderID: drOkafor.ID, ProviderName: "Dr. Sam Okafor", StartTime: date(2026, time.August, 30).Add(10 * time.Hour), EndTime: date(2026, time.August, 30).Add(10*time.Hour + 30*time.Minute), Type: "new-patient", Status: model.AppointmentStatusInProgress},
			{Base: base("9e5d0d61-0004-4f94-8e61-ccccccccccc4"), PracticeID: "p2", PatientID: robert.ID, PatientName: "Robert Kaczmarek", ProviderID: drOkafor.ID, ProviderName: "Dr. Sam Okafor", StartTime: date(2026, time.August, 27).Add(16 * time.Hour), EndTime: date(2026, time.August, 27).Add(17 * time.Hour), Type: "therapy", Status: model.AppointmentStatusCancelled},
		},
		Staff: []model.Staff{
			{Base: drChen, PracticeID: "p1", Name: "Dr. Emily Chen", Role: "Physician", Department: "Family Medicine", Email: "emily.chen@brightwell.example", Status: model.StaffStatusActive,
				Credentials: []model.Credential{
					{Name: "WI Medical License", IssuedAt: date(2018, time.July, 1), ExpiresAt: expFar},
					{Name: "DEA Registration", IssuedAt: date(2023, time.October, 1), ExpiresAt: expSoon},
				}},
			{Base: base("7c3b8b4f-0003-4d72-8c4f-aaaaaaaaaaa3"), PracticeID: "p1", Name: "Noah Bergstrom", Role: "Medical Assistant", Department: "Clinical Support", Status: model.StaffStatusActive,
				Credentials: []model.Credential{
					{Name: "CMA Certification", IssuedAt: date(2022, time.March, 1), ExpiresAt: expOld},
				}},
			{Base: drOkafor, PracticeID: "p2", Name: "Dr. Sam Okafor", Role: "Physician", Department: "Internal Medicine", Email: "sam.okafor@brightwell.example", Status: model.StaffStatusActive,
				Credentials: []model.Credential{
					{Name: "WI Medical License", IssuedAt: date(2015, time.July, 1), ExpiresAt: expFar},
				}},
			{Base: base("7c3b8b4f-0004-4d72-8c4f-aaaaaaaaaaa4"), PracticeID: "p2", Name: "Helen Marsh", Role: "RN", Department: "Nursing", Status: model.StaffStatusInactive,
				Credentials: []model.Credential{
					{Name: "RN License", IssuedAt: date(2010, time.May, 1), ExpiresAt: expOld},
				}},
		},
		Rooms: []model.Room{
			{Base: base("af6e1e72-0001-4aa5-9f72-ddddddddddd1"), PracticeID: "p1", Name: "Exam 1", Status: model.RoomStatusAvailable},
			{Base: base("af6e1e72-0002-4aa5-9f72-ddddddddddd2"), PracticeID: "p1", Name: "Exam 2", Status: model.RoomStatusCleaning},
			{Base: base("af6e1e72-0003-4aa5-9f72-ddddddddddd3"), PracticeID: "p2", Name: "Exam A", Status: model.RoomStatusOccupied, OccupantName: "Priya Raman", AppointmentID: &rm3Appt},
			{Base: base("af6e1e72-0004-4aa5-9f72-ddddddddddd4"), PracticeID: "p2", Name: "Procedure", Status: model.RoomStatusMaintenance},
		},
		Announcements: []model.Announcement{
			{Base: base("bf7f2f83-0001-4bb6-af83-eeeeeeeeeee1"), Title: "Flu shot clinic", Message: "Walk-in flu vaccinations available every Saturday in September.", Type: model.AnnouncementInfo, IsActive: true},
			{Base: base("bf7f2f83-0002-4bb6-af83-eeeeeeeeeee2"), Title: "Portal maintenance", Message: "The portal will be unavailable Sunday 02:00-04:00 CT.", Type: model.AnnouncementWarning, IsActive: true, ExpiresAt: func() *time.Time { t := date(2026, time.September, 7); return &t }()},
		},
	}
}
