package model

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled  AppointmentStatus = "scheduled"
	AppointmentStatusCheckedIn  AppointmentStatus = "checked-in"
	AppointmentStatusInProgress AppointmentStatus = "in-progress"
	AppointmentStatusCompleted  AppointmentStatus = "completed"
	AppointmentStatusCancelled  AppointmentStatus = "cancelled"
)

type Appointment struct {
	Base
	PracticeID   string            `json:"practice_id"`
	PatientID    uuid.UUID         `json:"patient_id"`
	PatientName  string            `json:"patient_name"`
	ProviderID   uuid.UUID         `json:"provider_id"`
	ProviderName string            `json:"provider_name"`
	StartTime    time.Time         `json:"start_time"`
	EndTime      time.Time         `json:"end_time"`
	Type         string            `json:"type"`
	Status       AppointmentStatus `json:"status"`
}
