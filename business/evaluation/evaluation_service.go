package evaluation

import (
	"context"
	"customerRenewal/business/recommendation"
	"customerRenewal/business/scoring"
	"customerRenewal/domain"
	"customerRenewal/pkg/logger"
	"customerRenewal/pkg/metrics"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type Predictor interface {
	Predict(ctx context.Context, record domain.FeatureRecord) (int, error)
}

type EvaluationRepository interface {
	Save(ctx context.Context, rec domain.EvaluationRecord) error
	FindByID(ctx context.Context, id string) (domain.EvaluationRecord, error)
	FindRecent(ctx context.Context, limit int) ([]domain.EvaluationRecord, error)
}

type EvaluationService struct {
	predictor Predictor
	history   EvaluationRepository
	now       func() time.Time
}

// NewEvaluationService builds the service. history may be nil, in which case
// evaluations are not recorded and the history lookups report not found.
func NewEvaluationService(predictor Predictor, history EvaluationRepository) *EvaluationService {
	return &EvaluationService{
		predictor: predictor,
		history:   history,
		now:       time.Now,
	}
}

func (s *EvaluationService) HistoryEnabled() bool {
	return s.history != nil
}

// Assess runs the local scorer and recommendation selector. It never fails.
func (s *EvaluationService) Assess(record domain.FeatureRecord) domain.LocalAssessment {
	breakdown := scoring.Breakdown(record)

	return domain.LocalAssessment{
		Score:           breakdown.Score,
		Confidence:      scoring.Confidence(breakdown.Score),
		Breakdown:       breakdown,
		Recommendations: recommendation.RecommendDetailed(record, breakdown.Score),
	}
}

// Evaluate produces the remote verdict, the local score and the
// recommendations for one record. A classifier failure is reported inside
// the returned Evaluation and never suppresses the local results.
func (s *EvaluationService) Evaluate(ctx context.Context, record domain.FeatureRecord) (domain.Evaluation, error) {
	if err := ctx.Err(); err != nil {
		return domain.Evaluation{}, fmt.Errorf("context error: %w", err)
	}

	ev := domain.Evaluation{
		ID:              uuid.NewString(),
		EvaluatedAt:     s.now().UTC(),
		Record:          record,
		LocalAssessment: s.Assess(record),
	}
	metrics.LocalScore.Observe(float64(ev.Score))

	ev.Prediction = s.predict(ctx, ev.ID, record)

	logger.Info("evaluation completed",
		"evaluation_id", ev.ID,
		"industry", record.Industry,
		"local_score", ev.Score,
		"prediction_failed", ev.Prediction.Failed(),
		"recommendations", len(ev.Recommendations),
	)

	if s.history != nil {
		if err := s.record(ctx, ev); err != nil {
			logger.Error("failed to record evaluation", "evaluation_id", ev.ID, "error", err)
		}
	}

	return ev, nil
}

func (s *EvaluationService) predict(ctx context.Context, evaluationID string, record domain.FeatureRecord) domain.Prediction {
	start := time.Now()
	verdict, err := s.predictor.Predict(ctx, record)
	metrics.PredictionLatency.Observe(time.Since(start).Seconds())

	if err != nil {
		predErr := domain.NewPredictionError(err)
		metrics.PredictionErrors.WithLabelValues(predErr.Kind).Inc()
		metrics.EvaluationsTotal.WithLabelValues("failed").Inc()
		logger.Error("prediction failed",
			"evaluation_id", evaluationID,
			"kind", predErr.Kind,
			"error", err,
		)
		return domain.Prediction{Error: predErr}
	}

	label := VerdictLabel(verdict)
	if verdict == domain.VerdictLikely {
		metrics.EvaluationsTotal.WithLabelValues("likely").Inc()
	} else {
		metrics.EvaluationsTotal.WithLabelValues("unlikely").Inc()
	}

	return domain.Prediction{Verdict: &verdict, Label: label}
}

func VerdictLabel(verdict int) string {
	if verdict == domain.VerdictLikely {
		return "YES! This customer is LIKELY to renew."
	}
	return "No — Customer is UNLIKELY to renew."
}

func (s *EvaluationService) record(ctx context.Context, ev domain.Evaluation) error {
	recordJSON, err := json.Marshal(ev.Record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	recsJSON, err := json.Marshal(ev.Recommendations)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	rec := domain.EvaluationRecord{
		ID:              ev.ID,
		EvaluatedAt:     ev.EvaluatedAt,
		Industry:        string(ev.Record.Industry),
		Verdict:         ev.Prediction.Verdict,
		LocalScore:      ev.Score,
		Confidence:      ev.Confidence,
		Record:          recordJSON,
		Recommendations: recsJSON,
	}
	if ev.Prediction.Error != nil {
		rec.PredictionError = ev.Prediction.Error.Kind
	}

	return s.history.Save(ctx, rec)
}

func (s *EvaluationService) GetEvaluation(ctx context.Context, id string) (domain.EvaluationRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.EvaluationRecord{}, fmt.Errorf("context error: %w", err)
	}
	if s.history == nil {
		return domain.EvaluationRecord{}, domain.ErrEvaluationNotFound
	}
	if _, err := uuid.Parse(id); err != nil {
		return domain.EvaluationRecord{}, domain.ErrEvaluationNotFound
	}

	return s.history.FindByID(ctx, id)
}

func (s *EvaluationService) ListEvaluations(ctx context.Context, limit int) ([]domain.EvaluationRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if s.history == nil {
		return []domain.EvaluationRecord{}, nil
	}

	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	return s.history.FindRecent(ctx, limit)
}
