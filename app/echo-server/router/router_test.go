package router

import (
	"customerRenewal/business/evaluation"
	"customerRenewal/internal/rest"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

const record = `{
	"industry": "Retail",
	"region": "West",
	"channel": "email",
	"company_size": "Medium",
	"tenure_months": 6,
	"is_current_customer": 1,
	"total_tickets_last_6mo": 2,
	"avg_response_time_hours": 3.5,
	"emails_sent_last_30d": 10,
	"emails_opened_last_30d": 4,
	"emails_clicked_last_30d": 1,
	"past_positive_replies": 0,
	"last_interaction_days_ago": 10,
	"tag_high_priority": 0,
	"tag_new_lead": 0
}`

func rejectAll(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.NoContent(http.StatusTooManyRequests)
	}
}

func TestSetEvaluationRoutes_RateLimitsOnlyClassifierRoute(t *testing.T) {
	handler := rest.NewEvaluationHandler(evaluation.NewEvaluationService(nil, nil), 0)

	e := echo.New()
	SetEvaluationRoutes(e.Group("/api/v1"), handler, rejectAll)

	tests := []struct {
		path string
		want int
	}{
		{"/api/v1/evaluations", http.StatusTooManyRequests},
		{"/api/v1/scores", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(record))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestSetEvaluationRoutes_NoLimiter(t *testing.T) {
	handler := rest.NewEvaluationHandler(evaluation.NewEvaluationService(nil, nil), 0)

	e := echo.New()
	SetEvaluationRoutes(e.Group("/api/v1"), handler, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/scores", strings.NewReader(record))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
