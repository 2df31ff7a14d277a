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

// CourseService defines the interface for course operations
type CourseService interface {
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	GetCourseByID(ctx context.Context, courseID int64) (*models.Course, error)
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error)
	UpdateCourse(ctx context.Context, courseID int64, req *dto.UpdateCourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, courseID int64) (*models.Course, error)
}

// courseServiceImpl implements CourseService
type courseServiceImpl struct {
	courseRepo   *repositories.CourseRepository
	applyUpdates bool
	logger       zerolog.Logger
}

// NewCourseService creates a new CourseService. When applyUpdates is false,
// UpdateCourse reads the request but commits the course unchanged.
func NewCourseService(courseRepo *repositories.CourseRepository, applyUpdates bool, logger zerolog.Logger) CourseService {
	return &courseServiceImpl{
		courseRepo:   courseRepo,
		applyUpdates: applyUpdates,
		logger:       logger,
	}
}

// GetAllCourses retrieves every course
func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	return courses, nil
}

// GetCourseByID retrieves a single course
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, courseID int64) (*models.Course, error) {
	course, err := s.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error getting course: %w", err)
	}
	return course, nil
}

// CreateCourse creates a course. Enrolled defaults to 0; other absent fields
// are left for the store to assign or reject.
func (s *courseServiceImpl) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	course, err := s.courseRepo.Create(ctx, repositories.CreateCourseParams{
		CourseID:   req.CourseID,
		CourseName: req.CourseName,
		Capacity:   req.Capacity,
		Enrolled:   helpers.Int64OrDefault(req.Enrolled, 0),
	})
	if err != nil {
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	s.logger.Info().Int64("courseID", course.CourseID).Str("courseName", course.CourseName).Msg("Course created")
	return course, nil
}

// UpdateCourse persists the course. Request fields are only applied when
// updates are enabled.
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, courseID int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	if s.applyUpdates {
		if req.CourseName != nil {
			course.CourseName = *req.CourseName
		}
		course.Capacity = helpers.Int64OrDefault(req.Capacity, course.Capacity)
		course.Enrolled = helpers.Int64OrDefault(req.Enrolled, course.Enrolled)
	} else if req.CourseName != nil || req.Capacity != nil || req.Enrolled != nil {
		s.logger.Debug().Int64("courseID", courseID).Msg("Course update fields ignored")
	}

	updated, err := s.courseRepo.Update(ctx, course)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating course: %w", err)
	}
	return updated, nil
}

// DeleteCourse removes a course together with its enrollments
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, courseID int64) (*models.Course, error) {
	course, err := s.courseRepo.Delete(ctx, courseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error deleting course: %w", err)
	}

	s.logger.Info().Int64("courseID", courseID).Msg("Course deleted")
	return course, nil
}
