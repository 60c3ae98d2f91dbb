package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewKeyBuilder(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		wantPrefix  string
	}{
		{name: "production", environment: "production", wantPrefix: "prod"},
		{name: "development", environment: "development", wantPrefix: "staging"},
		{name: "staging", environment: "staging", wantPrefix: "staging"},
		{name: "test", environment: "test", wantPrefix: "staging"},
		{name: "unknown defaults to prod", environment: "something-else", wantPrefix: "prod"},
		{name: "empty defaults to prod", environment: "", wantPrefix: "prod"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kb := NewKeyBuilder(tt.environment)
			assert.Equal(t, tt.wantPrefix, kb.GetPrefix())
		})
	}
}

func TestKeyBuilder_BridgeKeys(t *testing.T) {
	kb := NewKeyBuilder("production")

	assert.Equal(t, "prod:bridge:events", kb.KeyBridgeEvents())
	assert.Equal(t, "prod:bridge:events:count:button_click", kb.KeyBridgeEventCount("button_click"))
	assert.Equal(t, "prod:custom", kb.BuildKey("custom"))
}
