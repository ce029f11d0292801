package rooms

import (
	"github.com/brightwell-health/portal/internal/model"
	"github.com/brightwell-health/portal/internal/store"
)

// Occupancy summarizes the room board by status.
type Occupancy struct {
	Total       int `json:"total"`
	Available   int `json:"available"`
	Occupied    int `json:"occupied"`
	Cleaning    int `json:"cleaning"`
	Maintenance int `json:"maintenance"`
}

// Service backs the practice-admin room board.
type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

func (s *Service) Board(practiceID string) []model.Room {
	return s.store.RoomsForPractice(practiceID)
}

func (s *Service) Occupancy(practiceID string) Occupancy {
	var o Occupancy
	for _, r := range s.store.RoomsForPractice(practiceID) {
		o.Total++
		switch r.Status {
		case model.RoomStatusAvailable:
			o.Available++
		case model.RoomStatusOccupied:
			o.Occupied++
		case model.RoomStatusCleaning:
			o.Cleaning++
		case model.RoomStatusMaintenance:
			o.Maintenance++
		}
	}
	return o
}
