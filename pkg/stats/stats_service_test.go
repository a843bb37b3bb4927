package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/domain"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/entities"
)

type stubBrandRepository struct {
	activeCount int64
	countErr    error
}

func (s *stubBrandRepository) List(context.Context, domain.BrandFilters) ([]entities.MilkBrand, error) {
	return nil, nil
}

func (s *stubBrandRepository) GetByID(context.Context, uuid.UUID) (*entities.MilkBrand, error) {
	return nil, domain.ErrBrandNotFound
}

func (s *stubBrandRepository) Create(context.Context, *entities.MilkBrand) error { return nil }

func (s *stubBrandRepository) UpdateFields(context.Context, uuid.UUID, map[string]interface{}) error {
	return nil
}

func (s *stubBrandRepository) SoftDelete(context.Context, uuid.UUID) error { return nil }

func (s *stubBrandRepository) CountActive(context.Context) (int64, error) {
	return s.activeCount, s.countErr
}

type stubSubmissionRepository struct {
	pendingCount int64
}

func (s *stubSubmissionRepository) Create(context.Context, *entities.Submission) error { return nil }

func (s *stubSubmissionRepository) GetByID(context.Context, uuid.UUID) (*entities.Submission, error) {
	return nil, domain.ErrSubmissionNotFound
}

func (s *stubSubmissionRepository) ListByStatus(context.Context, string) ([]entities.Submission, error) {
	return nil, nil
}

func (s *stubSubmissionRepository) UpdateStatus(context.Context, uuid.UUID, string, uuid.UUID, string) error {
	return nil
}

func (s *stubSubmissionRepository) UpdateLLMValidation(context.Context, uuid.UUID, entities.LLMValidation) error {
	return nil
}

func (s *stubSubmissionRepository) CountByStatus(_ context.Context, status string) (int64, error) {
	if status != entities.SubmissionStatusPending {
		return 0, nil
	}
	return s.pendingCount, nil
}

type stubUserRepository struct {
	userCount int64
}

func (s *stubUserRepository) GetByID(context.Context, uuid.UUID) (*entities.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepository) GetByOpenID(context.Context, string) (*entities.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepository) Upsert(context.Context, *entities.User) error { return nil }

func (s *stubUserRepository) Count(context.Context) (int64, error) { return s.userCount, nil }

func TestGetStatsComposesCounts(t *testing.T) {
	service := NewStatsService(
		&stubBrandRepository{activeCount: 42},
		&stubSubmissionRepository{pendingCount: 3},
		&stubUserRepository{userCount: 128},
	)

	stats, err := service.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.StatsResponse{
		TotalBrands:        42,
		PendingSubmissions: 3,
		TotalUsers:         128,
	}, stats)
}

func TestGetStatsPropagatesCountError(t *testing.T) {
	countErr := errors.New("connection refused")
	service := NewStatsService(
		&stubBrandRepository{countErr: countErr},
		&stubSubmissionRepository{},
		&stubUserRepository{},
	)

	_, err := service.Get(context.Background())
	assert.ErrorIs(t, err, countErr)
}
