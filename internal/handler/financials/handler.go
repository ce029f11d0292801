package financials

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brightwell-health/portal/internal/handler"
	"github.com/brightwell-health/portal/internal/service/financials"
	"github.com/brightwell-health/portal/internal/store"
)

type Handler struct {
	service *financials.Service
	store   *store.Store
}

func NewHandler(service *financials.Service, st *store.Store) *Handler {
	return &Handler{service: service, store: st}
}

func (h *Handler) GetProviderSummaries(c *gin.Context) {
	practiceID := handler.EffectivePracticeID(c, h.store)

	summaries := h.service.ProviderSummaries(practiceID)
	if summaries == nil {
		summaries = []financials.ProviderSummary{}
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": summaries})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/financials/providers", h.GetProviderSummaries)
}
