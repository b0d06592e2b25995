package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/taskforge/todo-system/internal/core/ports"
)

// LogSender is the development stand-in for the outbound mail boundary:
// it records the would-be email instead of talking to an SMTP relay.
type LogSender struct {
	log zerolog.Logger
}

func NewLogSender(log zerolog.Logger) *LogSender {
	return &LogSender{log: log}
}

// Send satisfies ports.NotificationSender.
func (s *LogSender) Send(_ context.Context, n ports.Notification) error {
	s.log.Info().
		Int64("user_id", n.UserID).
		Str("email", n.Email).
		Str("kind", string(n.Kind)).
		Time("at", n.At).
		Msg("notification email sent")
	return nil
}
