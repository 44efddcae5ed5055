package rest

import (
	"context"
	"customerRenewal/domain"
	"customerRenewal/pkg/logger"
	"customerRenewal/pkg/utils"
	"errors"
	"net/http"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	EvaluationHandler struct {
		validate          *validator.Validate
		evaluationService EvaluationService
		timeout           time.Duration
	}

	EvaluationService interface {
		Evaluate(ctx context.Context, record domain.FeatureRecord) (domain.Evaluation, error)
		Assess(record domain.FeatureRecord) domain.LocalAssessment
		GetEvaluation(ctx context.Context, id string) (domain.EvaluationRecord, error)
		ListEvaluations(ctx context.Context, limit int) ([]domain.EvaluationRecord, error)
	}

	HistoryQuery struct {
		Limit int `query:"limit" validate:"gte=0,lte=100"`
	}

	ResponseError struct {
		Message string `json:"message"`
	}
)

// NewEvaluationHandler builds the handler. timeout bounds a single evaluation
// including the remote classifier call; zero leaves it to the request context.
func NewEvaluationHandler(svc EvaluationService, timeout time.Duration) *EvaluationHandler {
	return &EvaluationHandler{
		validate:          validator.New(),
		evaluationService: svc,
		timeout:           timeout,
	}
}

// POST /api/v1/evaluations
func (h *EvaluationHandler) Evaluate(c echo.Context) error {
	record, err := h.bindRecord(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx := c.Request().Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	ev, err := h.evaluationService.Evaluate(ctx, record)
	if err != nil {
		logger.Error("Evaluation aborted", "error", err)
		return c.JSON(http.StatusServiceUnavailable, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(ev))
}

// POST /api/v1/scores
func (h *EvaluationHandler) Score(c echo.Context) error {
	record, err := h.bindRecord(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.evaluationService.Assess(record)))
}

// GET /api/v1/evaluations?limit=20
func (h *EvaluationHandler) List(c echo.Context) error {
	var q HistoryQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	records, err := h.evaluationService.ListEvaluations(c.Request().Context(), q.Limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(records))
}

// GET /api/v1/evaluations/:id
func (h *EvaluationHandler) Get(c echo.Context) error {
	rec, err := h.evaluationService.GetEvaluation(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrEvaluationNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(rec))
}

func (h *EvaluationHandler) bindRecord(c echo.Context) (domain.FeatureRecord, error) {
	return utils.DecodeFeatureRecord(c.Request().Body, h.validate)
}
