package container

import (
	"github.com/Kim-Emmanuel/granger/internal/config"
	"github.com/Kim-Emmanuel/granger/internal/service"
	"github.com/Kim-Emmanuel/granger/pkg/logger"
	"github.com/Kim-Emmanuel/granger/pkg/redis"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *logger.Logger
	RedisClient *redis.Client

	Analytics service.AnalyticsService
	Content   service.ContentService
	Coach     service.CoachService
	Auth      service.AuthService
}

// New creates a new dependency injection container
func New(cfg *config.Config, log *logger.Logger) (*Container, error) {
	// The analytics bridge is optional: without Redis every event still
	// lands in the local log, just nothing is mirrored out
	var redisClient *redis.Client
	var sink service.Sink = service.NoopSink{}

	if cfg.RedisURL != "" {
		client, err := redis.NewClient(cfg.RedisURL, cfg.Environment, log.Logger)
		if err != nil {
			log.WithError(err).Warn("Failed to initialize Redis client, analytics bridge disabled")
		} else {
			redisClient = client
			sink = service.NewRedisSink(client, log)
			log.Info("Analytics bridge initialized")
		}
	} else {
		log.Info("Redis URL not configured, analytics bridge disabled")
	}

	return &Container{
		Config:      cfg,
		Logger:      log,
		RedisClient: redisClient,
		Analytics:   service.NewAnalyticsService(sink, log),
		Content:     service.NewContentService(log),
		Coach:       service.NewCoachService(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL, log),
		Auth:        service.NewAuthService(cfg.AdminPassword, cfg.AdminJWTSecret, log),
	}, nil
}

// GetConfig returns the configuration
func (c *Container) GetConfig() *config.Config {
	return c.Config
}

// GetLogger returns the logger
func (c *Container) GetLogger() *logger.Logger {
	return c.Logger
}

// HasBridge returns true if the analytics bridge is connected
func (c *Container) HasBridge() bool {
	return c.RedisClient != nil
}

// Close releases held resources
func (c *Container) Close() error {
	if c.RedisClient != nil {
		return c.RedisClient.Close()
	}
	return nil
}
