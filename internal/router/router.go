// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/ilnabucco/restaurant-reservation/internal/handler"
	"github.com/ilnabucco/restaurant-reservation/internal/metrics"
)

// RegisterOps registers the operational endpoints: the health probe
// and the Prometheus scrape target. Neither requires authentication.
func RegisterOps(e *echo.Echo, collector *metrics.Collector) {
	e.GET("/healthz", handler.Health)
	e.GET("/metrics", collector.Handler())
}
