package model

import "time"

// OverlayKind identifies which interruption surface, if any, is visible.
// Modeling the general modal and the idle warning as one tagged union keeps
// "at most one overlay at a time" structural rather than a convention.
type OverlayKind string

const (
	OverlayNone        OverlayKind = "none"
	OverlayModal       OverlayKind = "modal"
	OverlayIdleWarning OverlayKind = "idle-warning"
)

type ModalContent struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type Overlay struct {
	Kind  OverlayKind   `json:"kind"`
	Modal *ModalContent `json:"modal,omitempty"`
}

type ToastType string

const (
	ToastInfo    ToastType = "info"
	ToastWarning ToastType = "warning"
	ToastSuccess ToastType = "success"
	ToastError   ToastType = "error"
)

type Toast struct {
	Message string    `json:"message"`
	Type    ToastType `json:"type"`
	ShownAt time.Time `json:"shown_at"`
}

type ShowToastRequest struct {
	Message string `json:"message" binding:"required,max=500"`
	Type    string `json:"type" binding:"omitempty,oneof=info warning success error"`
}

type OpenModalRequest struct {
	Title string `json:"title" binding:"required,max=200"`
	Body  string `json:"body" binding:"required,max=4000"`
}

type SelectUserRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type SelectPracticeRequest struct {
	PracticeID string `json:"practice_id" binding:"required,max=64"`
}
