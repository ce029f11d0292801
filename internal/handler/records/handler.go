package records

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/brightwell-health/portal/internal/handler"
	"github.com/brightwell-health/portal/internal/model"
	"github.com/brightwell-health/portal/internal/service/records"
	"github.com/brightwell-health/portal/internal/store"
	"github.com/brightwell-health/portal/pkg/httputil"
)

type Handler struct {
	service *records.Service
	store   *store.Store
}

func NewHandler(service *records.Service, st *store.Store) *Handler {
	return &Handler{service: service, store: st}
}

func (h *Handler) ListPatients(c *gin.Context) {
	practiceID := handler.EffectivePracticeID(c, h.store)
	viewer := handler.ViewerRole(h.store)

	patients := h.service.ListPatients(practiceID, viewer)
	if patients == nil {
		patients = []model.Patient{}
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": patients})
}

func (h *Handler) GetChart(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid patient ID"})
		return
	}

	chart, err := h.service.Chart(id, handler.ViewerRole(h.store))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": chart})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	patients := r.Group("/patients")
	{
		patients.GET("", h.ListPatients)
		patients.GET("/:id", h.GetChart)
	}
}
