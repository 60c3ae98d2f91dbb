package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/Kim-Emmanuel/granger/pkg/logger"
	"github.com/Kim-Emmanuel/granger/pkg/redis"
)

// bridgeEventCap bounds the mirrored event list, matching the local log cap
const bridgeEventCap = 100

// Sink receives a normalized copy of every tracked event. Implementations
// must be best effort: a failing sink never affects local tracking.
type Sink interface {
	Send(ctx context.Context, eventName string, payload map[string]interface{}) error
}

// NormalizeEventName converts a display name ("Button Click") to the bridge
// form ("button_click")
func NormalizeEventName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// NoopSink is used when no bridge is configured
type NoopSink struct{}

// Send discards the event
func (NoopSink) Send(_ context.Context, _ string, _ map[string]interface{}) error {
	return nil
}

// RedisSink mirrors normalized events into Redis: a capped list of recent
// events plus a per-name counter
type RedisSink struct {
	client *redis.Client
	log    *logger.Logger
}

// NewRedisSink creates a Redis-backed bridge sink
func NewRedisSink(client *redis.Client, log *logger.Logger) *RedisSink {
	return &RedisSink{client: client, log: log}
}

type bridgeEvent struct {
	Event     string                 `json:"event"`
	Timestamp int64                  `json:"timestamp"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
}

// Send pushes the event onto the mirrored list and bumps its counter
func (s *RedisSink) Send(ctx context.Context, eventName string, payload map[string]interface{}) error {
	body, err := json.Marshal(bridgeEvent{
		Event:     eventName,
		Timestamp: time.Now().UnixMilli(),
		Payload:   payload,
	})
	if err != nil {
		return err
	}

	listKey := s.client.KeyBuilder.KeyBridgeEvents()
	if err := s.client.LPush(ctx, listKey, body); err != nil {
		return err
	}
	if err := s.client.LTrim(ctx, listKey, 0, bridgeEventCap-1); err != nil {
		return err
	}

	if _, err := s.client.Incr(ctx, s.client.KeyBuilder.KeyBridgeEventCount(eventName)); err != nil {
		return err
	}

	return nil
}
