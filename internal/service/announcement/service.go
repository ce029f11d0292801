package announcement

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/brightwell-health/portal/internal/model"
	"github.com/brightwell-health/portal/internal/store"
	"github.com/brightwell-health/portal/pkg/errors"
	"github.com/brightwell-health/portal/pkg/logger"
	"github.com/brightwell-health/portal/pkg/messaging"
)

// Service manages practice announcements. Publishing raises a toast through
// the broadcast path, so the announcement pipeline never needs a direct
// handle on UI actions.
type Service struct {
	store  *store.Store
	broker messaging.Broker
	logger *logger.Logger
}

func NewService(st *store.Store, broker messaging.Broker, log *logger.Logger) *Service {
	return &Service{store: st, broker: broker, logger: log}
}

// Active returns announcements visible at the given time.
func (s *Service) Active(now time.Time) []model.Announcement {
	var out []model.Announcement
	for _, a := range s.store.Announcements() {
		if a.Visible(now) {
			out = append(out, a)
		}
	}
	return out
}

// Publish creates an announcement, broadcasts it and requests a toast.
func (s *Service) Publish(ctx context.Context, req *model.CreateAnnouncementRequest) (*model.Announcement, error) {
	if req.ExpiresAt != nil && !req.ExpiresAt.After(time.Now()) {
		return nil, errors.BadRequest("expires_at must be in the future", nil)
	}

	a := s.store.AddAnnouncement(model.Announcement{
		Title:     req.Title,
		Message:   req.Message,
		Type:      model.AnnouncementType(req.Type),
		ExpiresAt: req.ExpiresAt,
		IsActive:  true,
	})

	if s.broker != nil {
		s.broadcast(ctx, a)
	}
	return &a, nil
}

// Deactivate hides an announcement.
func (s *Service) Deactivate(id uuid.UUID) error {
	if !s.store.DeactivateAnnouncement(id) {
		return errors.NotFound("announcement", nil)
	}
	return nil
}

func (s *Service) broadcast(ctx context.Context, a model.Announcement) {
	evt, err := json.Marshal(messaging.AnnouncementEvent{
		ID:    a.ID.String(),
		Title: a.Title,
		Type:  string(a.Type),
	})
	if err == nil {
		err = s.broker.Publish(ctx, messaging.TopicAnnouncement, evt)
	}
	if err != nil && s.logger != nil {
		s.logger.Error(err, "failed to broadcast announcement")
	}

	toast, err := json.Marshal(messaging.ToastEvent{
		Message: fmt.Sprintf("New announcement: %s", a.Title),
		Type:    toastType(a.Type),
	})
	if err == nil {
		err = s.broker.Publish(ctx, messaging.TopicToast, toast)
	}
	if err != nil && s.logger != nil {
		s.logger.Error(err, "failed to request announcement toast")
	}
}

func toastType(t model.AnnouncementType) string {
	switch t {
	case model.AnnouncementWarning, model.AnnouncementError:
		return string(t)
	default:
		return "info"
	}
}
