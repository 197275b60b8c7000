// Package metrics collects and exposes Prometheus metrics for the
// HTTP API.
package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the Prometheus instruments for the API.
type Collector struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	reg      *prometheus.Registry
}

// NewCollector creates a Collector with its own registry, so tests
// can instantiate it repeatedly without duplicate-registration
// panics.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "restaurant_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "restaurant_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		reg: reg,
	}
	reg.MustRegister(c.requests, c.latency)
	return c
}

// Middleware records a counter increment and a latency observation
// per request, labelled with the registered route pattern rather than
// the raw path so that /api/reservations/:id stays one series.
func (c *Collector) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ec echo.Context) error {
			start := time.Now()
			err := next(ec)
			if err != nil {
				ec.Error(err)
			}
			route := ec.Path()
			method := ec.Request().Method
			c.requests.WithLabelValues(method, route,
				strconv.Itoa(ec.Response().Status)).Inc()
			c.latency.WithLabelValues(method, route).
				Observe(time.Since(start).Seconds())
			return nil
		}
	}
}

// Handler exposes the registry in the Prometheus text format, wrapped
// for Echo.
func (c *Collector) Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{}))
}
