package router

import (
	"customerRenewal/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetEvaluationRoutes registers the evaluation endpoints. rateLimit guards
// only the route that calls the remote classifier and may be nil when no
// limiter is configured.
func SetEvaluationRoutes(api *echo.Group, handler *rest.EvaluationHandler, rateLimit echo.MiddlewareFunc) {
	var limited []echo.MiddlewareFunc
	if rateLimit != nil {
		limited = append(limited, rateLimit)
	}

	api.POST("/evaluations", handler.Evaluate, limited...)
	api.POST("/scores", handler.Score)
}

func SetHistoryRoutes(api *echo.Group, handler *rest.EvaluationHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	api.GET("/evaluations", handler.List, authRequired, adminOnly)
	api.GET("/evaluations/:id", handler.Get, authRequired, adminOnly)
}

func SetOpsRoutes(e *echo.Echo, health *rest.HealthHandler) {
	e.GET("/healthz", health.Healthz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
