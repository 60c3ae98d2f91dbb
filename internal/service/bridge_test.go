package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kim-Emmanuel/granger/pkg/logger"
	"github.com/Kim-Emmanuel/granger/pkg/redis"
)

func setupBridge(t *testing.T) (*miniredis.Miniredis, *RedisSink, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	log := logger.NewNop()
	client, err := redis.NewClient("redis://"+mr.Addr(), "test", log.Logger)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return mr, NewRedisSink(client, log), client
}

func TestRedisSink_Send(t *testing.T) {
	_, sink, client := setupBridge(t)
	ctx := context.Background()

	err := sink.Send(ctx, "button_click", map[string]interface{}{
		"label":    "Join Now",
		"location": "Hero",
	})
	require.NoError(t, err)

	entries, err := client.LRange(ctx, client.KeyBuilder.KeyBridgeEvents(), 0, -1)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	var got bridgeEvent
	require.NoError(t, json.Unmarshal([]byte(entries[0]), &got))
	assert.Equal(t, "button_click", got.Event)
	assert.Equal(t, "Join Now", got.Payload["label"])
	assert.NotZero(t, got.Timestamp)

	count, err := client.Get(ctx, client.KeyBuilder.KeyBridgeEventCount("button_click"))
	require.NoError(t, err)
	assert.Equal(t, "1", count)
}

func TestRedisSink_ListIsCapped(t *testing.T) {
	_, sink, client := setupBridge(t)
	ctx := context.Background()

	for i := 0; i < bridgeEventCap+25; i++ {
		require.NoError(t, sink.Send(ctx, fmt.Sprintf("event_%d", i), nil))
	}

	entries, err := client.LRange(ctx, client.KeyBuilder.KeyBridgeEvents(), 0, -1)
	require.NoError(t, err)
	assert.Len(t, entries, bridgeEventCap)

	// Newest first
	var head bridgeEvent
	require.NoError(t, json.Unmarshal([]byte(entries[0]), &head))
	assert.Equal(t, fmt.Sprintf("event_%d", bridgeEventCap+24), head.Event)
}

func TestRedisSink_SendFailsWhenRedisDown(t *testing.T) {
	mr, sink, _ := setupBridge(t)
	mr.Close()

	err := sink.Send(context.Background(), "section_view", nil)
	assert.Error(t, err, "sink reports the failure; the caller swallows it")
}

func TestNoopSink(t *testing.T) {
	var sink NoopSink
	assert.NoError(t, sink.Send(context.Background(), "anything", nil))
}
