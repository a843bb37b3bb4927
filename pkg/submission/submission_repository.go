package submission

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/domain"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/entities"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/internal/database"
)

type (
	SubmissionRepository interface {
		Create(ctx context.Context, submission *entities.Submission) error
		GetByID(ctx context.Context, id uuid.UUID) (*entities.Submission, error)
		ListByStatus(ctx context.Context, status string) ([]entities.Submission, error)
		UpdateStatus(ctx context.Context, id uuid.UUID, status string, reviewedBy uuid.UUID, reviewNotes string) error
		UpdateLLMValidation(ctx context.Context, id uuid.UUID, result entities.LLMValidation) error
		CountByStatus(ctx context.Context, status string) (int64, error)
	}

	submissionRepository struct {
		db *gorm.DB
	}
)

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

// conn joins the transaction carried by ctx when there is one.
func (r *submissionRepository) conn(ctx context.Context) *gorm.DB {
	return database.Resolve(ctx, r.db).WithContext(ctx)
}

func (r *submissionRepository) Create(ctx context.Context, submission *entities.Submission) error {
	return r.conn(ctx).Create(submission).Error
}

func (r *submissionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Submission, error) {
	var submission entities.Submission
	if err := r.conn(ctx).Where("id = ?", id).First(&submission).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSubmissionNotFound
		}
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) ListByStatus(ctx context.Context, status string) ([]entities.Submission, error) {
	var submissions []entities.Submission
	if err := r.conn(ctx).
		Where("status = ?", status).
		Order("created_at desc").
		Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *submissionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string, reviewedBy uuid.UUID, reviewNotes string) error {
	now := time.Now()
	return r.conn(ctx).Model(&entities.Submission{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       status,
			"reviewed_by":  reviewedBy,
			"reviewed_at":  now,
			"review_notes": reviewNotes,
		}).Error
}

func (r *submissionRepository) UpdateLLMValidation(ctx context.Context, id uuid.UUID, result entities.LLMValidation) error {
	return r.conn(ctx).Model(&entities.Submission{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"llm_validation": result}).Error
}

func (r *submissionRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.conn(ctx).Model(&entities.Submission{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
