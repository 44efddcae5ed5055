package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "renewal_http_request_duration_seconds",
		Help:    "Latency of renewal API requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	RequestTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "renewal_http_requests_total",
		Help: "Total renewal API requests served",
	}, []string{"method", "route", "status"})
)

var initOnce sync.Once

func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestDuration, RequestTotal)
	})
}

// Middleware records latency and count per matched route. Unmatched paths
// are grouped under "unmatched" to keep label cardinality bounded.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			status := strconv.Itoa(c.Response().Status)

			RequestDuration.WithLabelValues(c.Request().Method, route, status).Observe(time.Since(start).Seconds())
			RequestTotal.WithLabelValues(c.Request().Method, route, status).Inc()
			return nil
		}
	}
}
