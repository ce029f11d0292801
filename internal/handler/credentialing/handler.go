package credentialing

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brightwell-health/portal/internal/handler"
	"github.com/brightwell-health/portal/internal/service/credentialing"
	"github.com/brightwell-health/portal/internal/store"
)

type Handler struct {
	service *credentialing.Service
	store   *store.Store
}

func NewHandler(service *credentialing.Service, st *store.Store) *Handler {
	return &Handler{service: service, store: st}
}

func (h *Handler) GetRoster(c *gin.Context) {
	practiceID := handler.EffectivePracticeID(c, h.store)
	activeOnly := c.Query("active_only") == "true"

	entries := h.service.Roster(practiceID, activeOnly)
	if entries == nil {
		entries = []credentialing.Entry{}
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": entries})
}

func (h *Handler) GetSummary(c *gin.Context) {
	practiceID := handler.EffectivePracticeID(c, h.store)
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": h.service.ExpiryBuckets(practiceID)})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	cred := r.Group("/credentialing")
	{
		cred.GET("", h.GetRoster)
		cred.GET("/summary", h.GetSummary)
	}
}
