package portal

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brightwell-health/portal/internal/model"
	"github.com/brightwell-health/portal/internal/store"
)

// Descriptor tells the client which portal and views the current role can
// reach.
type Descriptor struct {
	Portal string   `json:"portal"`
	Views  []string `json:"views"`
}

// portals maps each role to its reachable views.
var portals = map[model.Role]Descriptor{
	model.RoleBiller:        {Portal: "biller", Views: []string{"claims", "claims-report", "clearance"}},
	model.RolePracticeAdmin: {Portal: "practice-admin", Views: []string{"rooms", "credentialing", "announcements", "patients"}},
	model.RoleProvider:      {Portal: "provider", Views: []string{"patients", "financials", "announcements"}},
	model.RoleStaff:         {Portal: "staff", Views: []string{"credentialing", "rooms", "announcements"}},
	model.RolePatient:       {Portal: "patient", Views: []string{"patients", "announcements"}},
}

type Handler struct {
	store *store.Store
}

func NewHandler(st *store.Store) *Handler {
	return &Handler{store: st}
}

// GetPortal resolves the portal for the currently selected user. With no
// selection the client stays on portal selection.
func (h *Handler) GetPortal(c *gin.Context) {
	user, ok := h.store.CurrentUser()
	if !ok {
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": gin.H{
			"portal": "selection",
			"views":  []string{},
		}})
		return
	}

	desc := portals[user.Role]
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": gin.H{
		"portal": desc.Portal,
		"views":  desc.Views,
		"user":   user,
	}})
}

// ListUsers supports the portal-selection screen.
func (h *Handler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": h.store.Users()})
}

// ListPractices supports the practice switcher.
func (h *Handler) ListPractices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": h.store.Practices()})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	portal := r.Group("/portal")
	{
		portal.GET("", h.GetPortal)
		portal.GET("/users", h.ListUsers)
		portal.GET("/practices", h.ListPractices)
	}
}
