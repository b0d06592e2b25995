package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskforge/todo-system/internal/api/metrics"
	"github.com/taskforge/todo-system/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis) used to suppress
// duplicate notification sends.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, userID int64, kind string, at time.Time) (bool, error)
	Mark(ctx context.Context, userID int64, kind string, at time.Time) error
}

type notificationService struct {
	sender ports.NotificationSender
	dedup  DedupChecker
	log    zerolog.Logger
}

// NewNotificationService returns a NotificationService that deduplicates
// deliveries before handing them to the sender.
func NewNotificationService(sender ports.NotificationSender, dedup DedupChecker, log zerolog.Logger) ports.NotificationService {
	return &notificationService{sender: sender, dedup: dedup, log: log}
}

// Deliver sends a single notification. Duplicates are skipped silently;
// when the dedup store itself fails, the failure is logged and delivery
// proceeds.
func (s *notificationService) Deliver(ctx context.Context, n ports.Notification) error {
	isDup, err := s.dedup.IsDuplicate(ctx, n.UserID, string(n.Kind), n.At)
	if err != nil {
		s.log.Warn().Err(err).Int64("user_id", n.UserID).Msg("dedup check failed, delivering anyway")
	} else if isDup {
		metrics.NotificationsTotal.WithLabelValues(string(n.Kind), "duplicate").Inc()
		s.log.Debug().Int64("user_id", n.UserID).Str("kind", string(n.Kind)).Msg("duplicate notification skipped")
		return nil
	}

	if markErr := s.dedup.Mark(ctx, n.UserID, string(n.Kind), n.At); markErr != nil {
		s.log.Warn().Err(markErr).Int64("user_id", n.UserID).Msg("failed to set dedup key")
	}

	if err := s.sender.Send(ctx, n); err != nil {
		metrics.NotificationsTotal.WithLabelValues(string(n.Kind), "error").Inc()
		return fmt.Errorf("deliver notification: %w", err)
	}

	metrics.NotificationsTotal.WithLabelValues(string(n.Kind), "sent").Inc()
	s.log.Info().Int64("user_id", n.UserID).Str("kind", string(n.Kind)).Msg("notification delivered")
	return nil
}
