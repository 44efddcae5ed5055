package domain

import (
	"time"

	"gorm.io/datatypes"
)

const (
	VerdictUnlikely = 0
	VerdictLikely   = 1
)

const (
	ConfidenceHigh   = "High Confidence"
	ConfidenceMedium = "Medium Confidence"
	ConfidenceLow    = "Low Confidence"
)

// Prediction is the remote classifier's part of an evaluation. Exactly one of
// Verdict or Error is set.
type Prediction struct {
	Verdict *int             `json:"verdict,omitempty"`
	Label   string           `json:"label,omitempty"`
	Error   *PredictionError `json:"error,omitempty"`
}

type PredictionError struct {
	Kind       string `json:"kind"`
	Message    string `json:"message"`
	RawPayload string `json:"raw_payload,omitempty"`
}

func (p Prediction) Failed() bool { return p.Error != nil }

type ScoreContribution struct {
	Rule  string `json:"rule"`
	Delta int    `json:"delta"`
}

type ScoreBreakdown struct {
	Raw           int                 `json:"raw"`
	Score         int                 `json:"score"`
	Contributions []ScoreContribution `json:"contributions"`
}

type Recommendation struct {
	RuleID string `json:"rule_id"`
	Group  string `json:"group"`
	Text   string `json:"text"`
}

// LocalAssessment is everything computed in-process for a record.
type LocalAssessment struct {
	Score           int              `json:"local_score"`
	Confidence      string           `json:"confidence"`
	Breakdown       ScoreBreakdown   `json:"breakdown"`
	Recommendations []Recommendation `json:"recommendations"`
}

func (a LocalAssessment) RecommendationTexts() []string {
	out := make([]string, 0, len(a.Recommendations))
	for _, r := range a.Recommendations {
		out = append(out, r.Text)
	}
	return out
}

type Evaluation struct {
	ID          string        `json:"id"`
	EvaluatedAt time.Time     `json:"evaluated_at"`
	Record      FeatureRecord `json:"record"`
	Prediction  Prediction    `json:"prediction"`
	LocalAssessment
}

// EvaluationRecord is the persisted form of an Evaluation.
type EvaluationRecord struct {
	ID              string         `gorm:"column:id;primaryKey" json:"id"`
	EvaluatedAt     time.Time      `gorm:"column:evaluated_at;not null;index" json:"evaluated_at"`
	Industry        string         `gorm:"column:industry;not null" json:"industry"`
	Verdict         *int           `gorm:"column:verdict" json:"verdict"`
	PredictionError string         `gorm:"column:prediction_error" json:"prediction_error,omitempty"`
	LocalScore      int            `gorm:"column:local_score;not null" json:"local_score"`
	Confidence      string         `gorm:"column:confidence;not null" json:"confidence"`
	Record          datatypes.JSON `gorm:"column:record;type:jsonb" json:"record"`
	Recommendations datatypes.JSON `gorm:"column:recommendations;type:jsonb" json:"recommendations"`
	CreatedAt       time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (EvaluationRecord) TableName() string {
	return "evaluations"
}
