package messaging

import (
	"context"
)

// Topics carried by the broker. The toast topic is the out-of-band entry
// point for code that has no store handle.
const (
	TopicToast          = "ui.toast"
	TopicSessionExpired = "session.expired"
	TopicAnnouncement   = "announcement.published"
)

// Broker defines the interface for message brokers
type Broker interface {
	Publish(ctx context.Context, topic string, payload []byte) error
	Subscribe(ctx context.Context, topic string, handler func([]byte) error) error
	Close() error
}

// ToastEvent is the payload on TopicToast.
type ToastEvent struct {
	Message string `json:"message" validate:"required,max=500"`
	Type    string `json:"type" validate:"omitempty,oneof=info warning success error"`
}

// SessionExpiredEvent is the payload on TopicSessionExpired.
type SessionExpiredEvent struct {
	UserID    string `json:"user_id"`
	ExpiredAt string `json:"expired_at"`
}

// AnnouncementEvent is the payload on TopicAnnouncement.
type AnnouncementEvent struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
}
