package model

import (
	"time"

	"github.com/google/uuid"
)

// Base contains common fields for all models
type Base struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PracticeAll is the sentinel practice id that disables practice filtering.
// Every other practice id filters collections to exact match.
const PracticeAll = "all"

// MatchesPractice reports whether an entity scoped to entityPID is visible
// under the selected practice id.
func MatchesPractice(selected, entityPID string) bool {
	return selected == PracticeAll || selected == entityPID
}
