package redis

import "fmt"

// Bridge key templates
const (
	KeyBridgeEvents     = "bridge:events"          // capped list of normalized events
	KeyBridgeEventCount = "bridge:events:count:%s" // per-event-name counter
)

// KeyBuilder provides environment-aware Redis key building
type KeyBuilder struct {
	prefix string
}

// NewKeyBuilder creates a key builder with an environment-based prefix so
// staging and production can share one Redis without colliding
func NewKeyBuilder(environment string) *KeyBuilder {
	prefix := "prod"
	if environment == "development" || environment == "staging" || environment == "test" {
		prefix = "staging"
	}

	return &KeyBuilder{prefix: prefix}
}

// BuildKey constructs a Redis key with the environment prefix
func (kb *KeyBuilder) BuildKey(key string) string {
	return fmt.Sprintf("%s:%s", kb.prefix, key)
}

// GetPrefix returns the current environment prefix
func (kb *KeyBuilder) GetPrefix() string {
	return kb.prefix
}

// KeyBridgeEvents is the capped list holding mirrored events
func (kb *KeyBuilder) KeyBridgeEvents() string {
	return kb.BuildKey(KeyBridgeEvents)
}

// KeyBridgeEventCount is the per-name counter for a normalized event
func (kb *KeyBuilder) KeyBridgeEventCount(eventName string) string {
	return kb.BuildKey(fmt.Sprintf(KeyBridgeEventCount, eventName))
}
