package stats

import (
	"context"

	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/domain"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/entities"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/pkg/brand"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/pkg/submission"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/pkg/user"
)

type (
	StatsService interface {
		Get(ctx context.Context) (domain.StatsResponse, error)
	}

	statsService struct {
		brandRepository      brand.BrandRepository
		submissionRepository submission.SubmissionRepository
		userRepository       user.UserRepository
	}
)

func NewStatsService(
	brandRepository brand.BrandRepository,
	submissionRepository submission.SubmissionRepository,
	userRepository user.UserRepository,
) StatsService {
	return &statsService{
		brandRepository:      brandRepository,
		submissionRepository: submissionRepository,
		userRepository:       userRepository,
	}
}

// Get computes every count fresh; nothing here is cached.
func (s *statsService) Get(ctx context.Context) (domain.StatsResponse, error) {
	totalBrands, err := s.brandRepository.CountActive(ctx)
	if err != nil {
		return domain.StatsResponse{}, err
	}
	pending, err := s.submissionRepository.CountByStatus(ctx, entities.SubmissionStatusPending)
	if err != nil {
		return domain.StatsResponse{}, err
	}
	totalUsers, err := s.userRepository.Count(ctx)
	if err != nil {
		return domain.StatsResponse{}, err
	}

	return domain.StatsResponse{
		TotalBrands:        totalBrands,
		PendingSubmissions: pending,
		TotalUsers:         totalUsers,
	}, nil
}
