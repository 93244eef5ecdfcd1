package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/amoylab/phongtro/internal/apiserver/database"
	"github.com/amoylab/phongtro/internal/common/config"
	"github.com/amoylab/phongtro/pkg/utils"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	ClusterTypeSingle   = "single"
	ClusterTypeSentinel = "sentinel"
	ClusterTypeCluster  = "cluster"

	DefaultStream = "phongtro:notifications"
	DefaultMaxLen = 10000
)

// RedisNotifier implements Notifier using Redis streams
type RedisNotifier struct {
	logger *zap.Logger
	client redis.UniversalClient
	stream string
	maxLen int64
}

// NewRedisNotifier creates a new Redis-based notifier
func NewRedisNotifier(ctx context.Context, logger *zap.Logger, cfg *config.RedisConfig) (*RedisNotifier, error) {
	opts := &redis.UniversalOptions{
		Addrs:    utils.SplitByMultipleDelimiters(cfg.Addr, ";", ","),
		Username: cfg.Username,
		Password: cfg.Password,
	}
	if cfg.ClusterType == ClusterTypeSentinel {
		opts.MasterName = cfg.MasterName
	}
	if cfg.ClusterType != ClusterTypeCluster {
		// can not set db in cluster mode
		opts.DB = cfg.DB
	}
	client := redis.NewUniversalClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	stream := cfg.Stream
	if stream == "" {
		stream = DefaultStream
	}
	maxLen := cfg.MaxLen
	if maxLen <= 0 {
		maxLen = DefaultMaxLen
	}
	return &RedisNotifier{
		logger: logger.Named("notifier.redis"),
		client: client,
		stream: stream,
		maxLen: maxLen,
	}, nil
}

// Publish appends the notification to the stream, trimming it to roughly maxLen entries
func (r *RedisNotifier) Publish(ctx context.Context, n *database.Notification) error {
	data, err := json.Marshal(NewEvent(n))
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	id, err := r.client.XAdd(ctx, &redis.XAddArgs{
		Stream: r.stream,
		MaxLen: r.maxLen,
		Approx: true,
		Values: map[string]any{
			"user_id": strconv.FormatUint(uint64(n.UserID), 10),
			"type":    n.Type,
			"payload": string(data),
		},
	}).Result()
	if err != nil {
		return fmt.Errorf("failed to add message to stream: %w", err)
	}

	r.logger.Debug("notification published", zap.String("stream", r.stream), zap.String("message_id", id))
	return nil
}

func (r *RedisNotifier) Close() error {
	return r.client.Close()
}
