package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis command failures by command name.
var RedisErrors = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "recipehub_redis_errors_total",
		Help: "Total number of Redis command errors.",
	},
	[]string{"command"},
)

// ShoppingListDownloads counts rendered shopping list exports.
var ShoppingListDownloads = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "recipehub_shopping_list_downloads_total",
		Help: "Total number of shopping list text exports.",
	},
)

// InitMetrics creates the Prometheus HTTP middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware wraps the fiberprometheus middleware as a fiber.Handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
