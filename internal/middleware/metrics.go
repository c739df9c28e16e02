package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Domain counters. Views and likes are also persisted per story; these exist
// so dashboards don't need to poll the database.
var (
	StoryViews = promauto.NewCounter(prometheus.CounterOpts{
		Name: "icons_story_views_total",
		Help: "Story view counter increments served.",
	})
	StoryLikes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "icons_story_likes_total",
		Help: "Story like actions served.",
	})
	StorySubmissions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "icons_story_submissions_total",
		Help: "Stories submitted for review.",
	})
	ModerationActions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "icons_moderation_actions_total",
		Help: "Admin moderation actions by type.",
	}, []string{"action"})
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "icons_redis_errors_total",
		Help: "Redis command errors by command name.",
	}, []string{"command"})
)

// InitMetrics creates the Prometheus HTTP middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware wraps the fiberprometheus middleware as a fiber.Handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
