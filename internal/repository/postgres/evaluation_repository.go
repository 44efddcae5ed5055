package postgres

import (
	"context"
	"customerRenewal/business/evaluation"
	"customerRenewal/domain"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type EvaluationRepository struct {
	DB *gorm.DB
}

var _ evaluation.EvaluationRepository = (*EvaluationRepository)(nil)

func NewEvaluationRepository(db *gorm.DB) *EvaluationRepository {
	return &EvaluationRepository{
		DB: db,
	}
}

func (r *EvaluationRepository) Save(ctx context.Context, rec domain.EvaluationRecord) error {
	if err := r.DB.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("failed to insert evaluation: %w", err)
	}

	return nil
}

func (r *EvaluationRepository) FindByID(ctx context.Context, id string) (domain.EvaluationRecord, error) {
	var rec domain.EvaluationRecord

	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.EvaluationRecord{}, domain.ErrEvaluationNotFound
	}
	if err != nil {
		return domain.EvaluationRecord{}, fmt.Errorf("failed to query evaluation: %w", err)
	}

	return rec, nil
}

// FindRecent returns the newest evaluations first.
func (r *EvaluationRepository) FindRecent(ctx context.Context, limit int) ([]domain.EvaluationRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var recs []domain.EvaluationRecord
	if err := r.DB.WithContext(ctx).
		Order("evaluated_at DESC").
		Limit(limit).
		Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to query evaluations: %w", err)
	}

	return recs, nil
}
