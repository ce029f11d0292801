package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brightwell-health/portal/internal/model"
	"github.com/brightwell-health/portal/internal/presenter"
	"github.com/brightwell-health/portal/internal/store"
	"github.com/brightwell-health/portal/pkg/metrics"
)

type Handler struct {
	store   *store.Store
	toast   *presenter.ToastPresenter
	modal   *presenter.ModalPresenter
	metrics *metrics.Metrics
}

func NewHandler(st *store.Store, toast *presenter.ToastPresenter, modal *presenter.ModalPresenter, m *metrics.Metrics) *Handler {
	return &Handler{store: st, toast: toast, modal: modal, metrics: m}
}

// GetSurfaces returns what the overlay surfaces currently render.
func (h *Handler) GetSurfaces(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": gin.H{
		"modal": h.modal.View(),
		"toast": h.toast.Current(),
	}})
}

func (h *Handler) ShowToast(c *gin.Context) {
	var req model.ShowToastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	h.store.ShowToast(req.Message, model.ToastType(req.Type))
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// DismissToast is the manual clear; idempotent.
func (h *Handler) DismissToast(c *gin.Context) {
	h.store.ClearToast()
	if h.metrics != nil {
		h.metrics.ToastsDismissed.WithLabelValues(metrics.DismissManual).Inc()
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *Handler) OpenModal(c *gin.Context) {
	var req model.OpenModalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	h.store.OpenModal(model.ModalContent{Title: req.Title, Body: req.Body})
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// CloseModal is safe to call when no modal is open.
func (h *Handler) CloseModal(c *gin.Context) {
	h.store.CloseModal()
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	ui := r.Group("/ui")
	{
		ui.GET("", h.GetSurfaces)
		ui.POST("/toast", h.ShowToast)
		ui.DELETE("/toast", h.DismissToast)
		ui.POST("/modal", h.OpenModal)
		ui.DELETE("/modal", h.CloseModal)
	}
}
