package model

import "time"

type AnnouncementType string

const (
	AnnouncementInfo    AnnouncementType = "info"
	AnnouncementWarning AnnouncementType = "warning"
	AnnouncementSuccess AnnouncementType = "success"
	AnnouncementError   AnnouncementType = "error"
)

type Announcement struct {
	Base
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      AnnouncementType `json:"type"`
	ExpiresAt *time.Time       `json:"expires_at,omitempty"`
	IsActive  bool             `json:"is_active"`
}

// Visible reports whether the announcement should be shown at the given time.
func (a *Announcement) Visible(now time.Time) bool {
	if !a.IsActive {
		return false
	}
	if a.ExpiresAt != nil && !now.Before(*a.ExpiresAt) {
		return false
	}
	return true
}

type CreateAnnouncementRequest struct {
	Title     string     `json:"title" binding:"required,max=200"`
	Message   string     `json:"message" binding:"required,max=2000"`
	Type      string     `json:"type" binding:"required,oneof=info warning success error"`
	ExpiresAt *time.Time `json:"expires_at"`
}
