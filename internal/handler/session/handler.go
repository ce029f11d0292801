package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/brightwell-health/portal/internal/model"
	"github.com/brightwell-health/portal/internal/session"
	"github.com/brightwell-health/portal/internal/store"
)

type Handler struct {
	store      *store.Store
	controller *session.Controller
}

func NewHandler(st *store.Store, controller *session.Controller) *Handler {
	return &Handler{store: st, controller: controller}
}

// GetState returns the session/UI snapshot the client renders from.
func (h *Handler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": gin.H{
		"session": h.store.State(),
		"idle":    h.controller.State(),
	}})
}

// SelectUser sets the session user. The id is not checked against the user
// collection; an unknown selection yields empty views downstream.
func (h *Handler) SelectUser(c *gin.Context) {
	var req model.SelectUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	id, err := uuid.Parse(req.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid user ID"})
		return
	}

	h.store.SetCurrentUser(id)
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": h.store.State()})
}

func (h *Handler) SelectPractice(c *gin.Context) {
	var req model.SelectPracticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	h.store.SetCurrentPractice(req.PracticeID)
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": h.store.State()})
}

// Activity is the explicit activity ping; most activity arrives implicitly
// through the activity middleware.
func (h *Handler) Activity(c *gin.Context) {
	h.controller.Activity()
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// StaySignedIn confirms the idle warning.
func (h *Handler) StaySignedIn(c *gin.Context) {
	h.controller.StaySignedIn()
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": h.store.State()})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	sess := r.Group("/session")
	{
		sess.GET("", h.GetState)
		sess.POST("/user", h.SelectUser)
		sess.POST("/practice", h.SelectPractice)
		sess.POST("/activity", h.Activity)
		sess.POST("/stay", h.StaySignedIn)
	}
}
