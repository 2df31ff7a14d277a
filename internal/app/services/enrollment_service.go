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
)

// EnrollmentService defines the interface for joining and dropping courses
type EnrollmentService interface {
	RequireUser(ctx context.Context, netID string) error
	JoinCourse(ctx context.Context, netID string, req *dto.EnrollmentRequest) (*models.User, error)
	DropCourse(ctx context.Context, netID string, req *dto.EnrollmentRequest) (*models.User, error)
}

// enrollmentServiceImpl implements EnrollmentService
type enrollmentServiceImpl struct {
	userRepo       *repositories.UserRepository
	enrollmentRepo *repositories.EnrollmentRepository
	logger         zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(
	userRepo *repositories.UserRepository,
	enrollmentRepo *repositories.EnrollmentRepository,
	logger zerolog.Logger,
) EnrollmentService {
	return &enrollmentServiceImpl{
		userRepo:       userRepo,
		enrollmentRepo: enrollmentRepo,
		logger:         logger,
	}
}

// RequireUser fails with ErrUserNotFound when netID names no user
func (s *enrollmentServiceImpl) RequireUser(ctx context.Context, netID string) error {
	if _, err := s.userRepo.FindByNetID(ctx, netID); err != nil {
		return wrapEnrollmentError("error checking user", err)
	}
	return nil
}

// courseIDFrom resolves the target course of a request. The user is checked
// first, so a request without courseID reports a missing user before a
// missing course.
func (s *enrollmentServiceImpl) courseIDFrom(ctx context.Context, netID string, req *dto.EnrollmentRequest) (int64, error) {
	if req.CourseID != nil {
		return *req.CourseID, nil
	}
	if err := s.RequireUser(ctx, netID); err != nil {
		return 0, err
	}
	return 0, apperrors.ErrCourseNotFound
}

// JoinCourse enrolls the user in the course. Joining twice is a no-op.
func (s *enrollmentServiceImpl) JoinCourse(ctx context.Context, netID string, req *dto.EnrollmentRequest) (*models.User, error) {
	courseID, err := s.courseIDFrom(ctx, netID, req)
	if err != nil {
		return nil, wrapEnrollmentError("error joining course", err)
	}

	user, err := s.enrollmentRepo.Add(ctx, netID, courseID)
	if err != nil {
		return nil, wrapEnrollmentError("error joining course", err)
	}

	s.logger.Info().Str("netID", netID).Int64("courseID", courseID).Msg("User joined course")
	return user, nil
}

// DropCourse removes the user from the course
func (s *enrollmentServiceImpl) DropCourse(ctx context.Context, netID string, req *dto.EnrollmentRequest) (*models.User, error) {
	courseID, err := s.courseIDFrom(ctx, netID, req)
	if err != nil {
		return nil, wrapEnrollmentError("error dropping course", err)
	}

	user, err := s.enrollmentRepo.Remove(ctx, netID, courseID)
	if err != nil {
		return nil, wrapEnrollmentError("error dropping course", err)
	}

	s.logger.Info().Str("netID", netID).Int64("courseID", courseID).Msg("User dropped course")
	return user, nil
}

func wrapEnrollmentError(msg string, err error) error {
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		return err
	}
	return fmt.Errorf("%s: %w", msg, err)
}
