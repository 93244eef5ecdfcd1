package notifier

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/amoylab/phongtro/internal/apiserver/database"
	"github.com/amoylab/phongtro/internal/common/config"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewNotifier(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	n, err := NewNotifier(ctx, logger, &config.NotifierConfig{})
	require.NoError(t, err)
	assert.IsType(t, &NoopNotifier{}, n)
	assert.NoError(t, n.Publish(ctx, &database.Notification{ID: 1, UserID: 2}))
	assert.NoError(t, n.Close())

	_, err = NewNotifier(ctx, logger, &config.NotifierConfig{Type: "kafka"})
	assert.Error(t, err)

	_, err = NewNotifier(ctx, logger, &config.NotifierConfig{Type: "redis", Redis: config.RedisConfig{Addr: "127.0.0.1:1"}})
	assert.Error(t, err)
}

func TestRedisNotifier_Publish(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	n, err := NewNotifier(ctx, zap.NewNop(), &config.NotifierConfig{
		Type:  "redis",
		Redis: config.RedisConfig{ClusterType: ClusterTypeSingle, Addr: mr.Addr(), Stream: "test:notifications"},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = n.Close() })

	created := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, n.Publish(ctx, &database.Notification{
		ID: 7, UserID: 42, Type: "invoice", Title: "Hoá đơn mới", Content: "3.425.000 VND", RelatedID: 3, CreatedAt: created,
	}))

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	msgs, err := client.XRange(ctx, "test:notifications", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "42", msgs[0].Values["user_id"])
	assert.Equal(t, "invoice", msgs[0].Values["type"])

	var ev Event
	require.NoError(t, json.Unmarshal([]byte(msgs[0].Values["payload"].(string)), &ev))
	assert.Equal(t, uint(7), ev.ID)
	assert.Equal(t, uint(3), ev.RelatedID)
	assert.Equal(t, "Hoá đơn mới", ev.Title)
	assert.True(t, created.Equal(ev.CreatedAt))
}

func TestRedisNotifier_Defaults(t *testing.T) {
	mr := miniredis.RunT(t)
	n, err := NewRedisNotifier(context.Background(), zap.NewNop(), &config.RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	defer n.Close()
	assert.Equal(t, DefaultStream, n.stream)
	assert.Equal(t, int64(DefaultMaxLen), n.maxLen)
}
