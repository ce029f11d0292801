package billing

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brightwell-health/portal/internal/handler"
	"github.com/brightwell-health/portal/internal/model"
	"github.com/brightwell-health/portal/internal/service/billing"
	"github.com/brightwell-health/portal/internal/store"
)

type Handler struct {
	service *billing.Service
	store   *store.Store
}

func NewHandler(service *billing.Service, st *store.Store) *Handler {
	return &Handler{service: service, store: st}
}

func (h *Handler) ListClaims(c *gin.Context) {
	practiceID := handler.EffectivePracticeID(c, h.store)

	status := c.Query("status")
	if status != "" && !model.NormalizeClaimStatus(status).Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid claim status"})
		return
	}

	claims := h.service.ListClaims(practiceID, status)
	if claims == nil {
		claims = []model.Claim{}
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": claims})
}

func (h *Handler) GetReport(c *gin.Context) {
	practiceID := handler.EffectivePracticeID(c, h.store)
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": h.service.Report(practiceID)})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	claims := r.Group("/claims")
	{
		claims.GET("", h.ListClaims)
		claims.GET("/report", h.GetReport)
	}
}
