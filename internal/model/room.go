package model

import "github.com/google/uuid"

type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusCleaning    RoomStatus = "cleaning"
	RoomStatusMaintenance RoomStatus = "maintenance"
)

type Room struct {
	Base
	PracticeID    string     `json:"practice_id"`
	Name          string     `json:"name"`
	Status        RoomStatus `json:"status"`
	OccupantName  string     `json:"occupant_name,omitempty"`
	AppointmentID *uuid.UUID `json:"appointment_id,omitempty"`
}
