package container

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kim-Emmanuel/granger/internal/config"
	"github.com/Kim-Emmanuel/granger/pkg/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:        "8080",
		LogLevel:    "info",
		Environment: "test",
		GeminiModel: "gemini-2.5-flash",
	}
}

func TestNew_WithoutRedis(t *testing.T) {
	c, err := New(testConfig(), logger.NewNop())
	require.NoError(t, err)
	defer c.Close()

	assert.False(t, c.HasBridge())
	assert.NotNil(t, c.Analytics)
	assert.NotNil(t, c.Content)
	assert.NotNil(t, c.Coach)
	assert.NotNil(t, c.Auth)
}

func TestNew_WithRedisBridge(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	cfg := testConfig()
	cfg.RedisURL = "redis://" + mr.Addr()

	c, err := New(cfg, logger.NewNop())
	require.NoError(t, err)
	defer c.Close()

	assert.True(t, c.HasBridge())
}

func TestNew_UnreachableRedisDegradesGracefully(t *testing.T) {
	cfg := testConfig()
	cfg.RedisURL = "redis://127.0.0.1:1" // nothing listens here

	c, err := New(cfg, logger.NewNop())
	require.NoError(t, err, "a dead bridge must not block startup")
	defer c.Close()

	assert.False(t, c.HasBridge())
	assert.NotNil(t, c.Analytics)
}
