package rooms

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brightwell-health/portal/internal/handler"
	"github.com/brightwell-health/portal/internal/model"
	"github.com/brightwell-health/portal/internal/service/rooms"
	"github.com/brightwell-health/portal/internal/store"
)

type Handler struct {
	service *rooms.Service
	store   *store.Store
}

func NewHandler(service *rooms.Service, st *store.Store) *Handler {
	return &Handler{service: service, store: st}
}

func (h *Handler) GetBoard(c *gin.Context) {
	practiceID := handler.EffectivePracticeID(c, h.store)

	board := h.service.Board(practiceID)
	if board == nil {
		board = []model.Room{}
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": board})
}

func (h *Handler) GetOccupancy(c *gin.Context) {
	practiceID := handler.EffectivePracticeID(c, h.store)
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": h.service.Occupancy(practiceID)})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	rooms := r.Group("/rooms")
	{
		rooms.GET("", h.GetBoard)
		rooms.GET("/occupancy", h.GetOccupancy)
	}
}
