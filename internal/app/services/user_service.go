package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/enrollment/internal/app/models"
	"github.com/yigit/enrollment/internal/app/models/dto"
	"github.com/yigit/enrollment/internal/app/repositories"
	"github.com/yigit/enrollment/internal/pkg/apperrors"
	"github.com/yigit/enrollment/internal/pkg/helpers"
)

// UserService defines the interface for user operations
type UserService interface {
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	GetUserByNetID(ctx context.Context, netID string) (*models.User, error)
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)
	UpdateUser(ctx context.Context, netID string, req *dto.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, netID string) (*models.User, error)
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	userRepo *repositories.UserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo *repositories.UserRepository, logger zerolog.Logger) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetAllUsers retrieves every user with its courses
func (s *userServiceImpl) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return users, nil
}

// GetUserByNetID retrieves a single user
func (s *userServiceImpl) GetUserByNetID(ctx context.Context, netID string) (*models.User, error) {
	user, err := s.userRepo.FindByNetID(ctx, netID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error getting user: %w", err)
	}
	return user, nil
}

// CreateUser creates a user. A missing netID yields the empty-string identity.
func (s *userServiceImpl) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	netID := helpers.StringOrDefault(req.NetID, "")

	user, err := s.userRepo.Create(ctx, netID)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info().Str("netID", user.NetID).Msg("User created")
	return user, nil
}

// UpdateUser changes the user's netID when one is supplied; otherwise the
// user is returned unchanged.
func (s *userServiceImpl) UpdateUser(ctx context.Context, netID string, req *dto.UpdateUserRequest) (*models.User, error) {
	if req.NetID == nil {
		return s.GetUserByNetID(ctx, netID)
	}

	user, err := s.userRepo.UpdateNetID(ctx, netID, *req.NetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating user: %w", err)
	}

	if user.NetID != netID {
		s.logger.Info().Str("netID", netID).Str("newNetID", user.NetID).Msg("User netID changed")
	}
	return user, nil
}

// DeleteUser removes a user and releases its seats in every enrolled course
func (s *userServiceImpl) DeleteUser(ctx context.Context, netID string) (*models.User, error) {
	user, err := s.userRepo.Delete(ctx, netID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error deleting user: %w", err)
	}

	s.logger.Info().Str("netID", netID).Int("courses", len(user.Courses)).Msg("User deleted")
	return user, nil
}
