package announcement

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/brightwell-health/portal/internal/model"
	"github.com/brightwell-health/portal/internal/service/announcement"
	"github.com/brightwell-health/portal/pkg/httputil"
)

type Handler struct {
	service *announcement.Service
}

func NewHandler(service *announcement.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListActive(c *gin.Context) {
	active := h.service.Active(time.Now())
	if active == nil {
		active = []model.Announcement{}
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": active})
}

func (h *Handler) Publish(c *gin.Context) {
	var req model.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	a, err := h.service.Publish(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": a})
}

func (h *Handler) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid announcement ID"})
		return
	}

	if err := h.service.Deactivate(id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	announcements := r.Group("/announcements")
	{
		announcements.GET("", h.ListActive)
		announcements.POST("", h.Publish)
		announcements.DELETE("/:id", h.Deactivate)
	}
}
