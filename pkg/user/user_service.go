package user

import (
	"context"

	"github.com/google/uuid"

	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/domain"
	"github.com/Lanhyun1508/taiwan-fresh-milk-guide/entities"
)

type (
	UserService interface {
		Me(ctx context.Context, userID string) (domain.MeResponse, error)
		Upsert(ctx context.Context, req domain.UpsertUserRequest) (*entities.User, error)
	}

	userService struct {
		userRepository UserRepository
	}
)

func NewUserService(userRepository UserRepository) UserService {
	return &userService{userRepository: userRepository}
}

func (s *userService) Me(ctx context.Context, userID string) (domain.MeResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return domain.MeResponse{}, domain.ErrParseUUID
	}

	user, err := s.userRepository.GetByID(ctx, id)
	if err != nil {
		return domain.MeResponse{}, err
	}

	return domain.MeResponse{
		ID:           user.ID.String(),
		OpenID:       user.OpenID,
		Name:         user.Name,
		Email:        user.Email,
		LoginMethod:  user.LoginMethod,
		Role:         user.Role,
		LastSignedIn: user.LastSignedIn,
	}, nil
}

func (s *userService) Upsert(ctx context.Context, req domain.UpsertUserRequest) (*entities.User, error) {
	user := &entities.User{
		ID:          uuid.New(),
		OpenID:      req.OpenID,
		Name:        req.Name,
		Email:       req.Email,
		LoginMethod: req.LoginMethod,
		Role:        entities.RoleUser,
	}
	if err := s.userRepository.Upsert(ctx, user); err != nil {
		return nil, err
	}
	return s.userRepository.GetByOpenID(ctx, req.OpenID)
}
