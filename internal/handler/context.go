package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/brightwell-health/portal/internal/model"
	"github.com/brightwell-health/portal/internal/store"
)

// EffectivePracticeID resolves the practice scope for a view: an explicit
// practice_id query wins, otherwise the store's current selection applies.
func EffectivePracticeID(c *gin.Context, st *store.Store) string {
	if pid := c.Query("practice_id"); pid != "" {
		return pid
	}
	return st.CurrentPracticeID()
}

// ViewerRole resolves the current user's role. An unknown or unset selection
// yields the patient role, the most restricted view.
func ViewerRole(st *store.Store) model.Role {
	if u, ok := st.CurrentUser(); ok {
		return u.Role
	}
	return model.RolePatient
}
