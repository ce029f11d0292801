package clearance

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brightwell-health/portal/internal/handler"
	"github.com/brightwell-health/portal/internal/service/clearance"
	"github.com/brightwell-health/portal/internal/store"
)

type Handler struct {
	service *clearance.Service
	store   *store.Store
}

func NewHandler(service *clearance.Service, st *store.Store) *Handler {
	return &Handler{service: service, store: st}
}

func (h *Handler) GetWorklist(c *gin.Context) {
	practiceID := handler.EffectivePracticeID(c, h.store)

	items := h.service.Worklist(practiceID)
	if items == nil {
		items = []clearance.Item{}
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": items})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/clearance", h.GetWorklist)
}
