package notifier

import (
	"context"

	"github.com/amoylab/phongtro/internal/apiserver/database"
	"go.uber.org/zap"
)

// NoopNotifier only logs; notifications stay readable through the API
type NoopNotifier struct {
	logger *zap.Logger
}

func NewNoopNotifier(logger *zap.Logger) *NoopNotifier {
	return &NoopNotifier{logger: logger.Named("notifier.noop")}
}

func (n *NoopNotifier) Publish(_ context.Context, notification *database.Notification) error {
	n.logger.Debug("notification published",
		zap.Uint("notification_id", notification.ID),
		zap.Uint("user_id", notification.UserID),
		zap.String("type", notification.Type))
	return nil
}

func (n *NoopNotifier) Close() error {
	return nil
}
