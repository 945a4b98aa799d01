package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rationshop-api/internal/infrastructure/metrics"
	"github.com/jhoicas/rationshop-api/pkg/logger"
)

// RequestLogger writes one line per request. Bodies are never logged.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP()).
			Msg("request")
		return err
	}
}

// Observe records request count and latency, labelled by route pattern to keep
// cardinality bounded.
func Observe(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		endpoint := c.Route().Path
		if endpoint == "" || endpoint == "/" && c.Path() != "/" {
			endpoint = "unmatched"
		}
		m.HTTPRequestsTotal.WithLabelValues(c.Method(), endpoint, strconv.Itoa(c.Response().StatusCode())).Inc()
		m.HTTPRequestDuration.WithLabelValues(c.Method(), endpoint).Observe(time.Since(start).Seconds())
		return err
	}
}
