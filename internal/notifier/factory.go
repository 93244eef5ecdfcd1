package notifier

import (
	"context"
	"fmt"

	"github.com/amoylab/phongtro/internal/common/config"
	"go.uber.org/zap"
)

// Type represents the type of notifier
type Type string

const (
	TypeNoop  Type = "noop"
	TypeRedis Type = "redis"
)

// NewNotifier creates a new notifier based on the configuration
func NewNotifier(ctx context.Context, logger *zap.Logger, cfg *config.NotifierConfig) (Notifier, error) {
	switch Type(cfg.Type) {
	case "", TypeNoop:
		return NewNoopNotifier(logger), nil
	case TypeRedis:
		return NewRedisNotifier(ctx, logger, &cfg.Redis)
	default:
		return nil, fmt.Errorf("unknown notifier type: %s", cfg.Type)
	}
}
