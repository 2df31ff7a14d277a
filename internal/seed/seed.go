package seed

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/enrollment/internal/app/models"
	appRepos "github.com/yigit/enrollment/internal/app/repositories"
	"github.com/yigit/enrollment/internal/pkg/apperrors"
	"gopkg.in/yaml.v3"
)

// Fixtures is the layout of a seed file
type Fixtures struct {
	Users       []string               `yaml:"users"`
	Courses     []CourseFixture        `yaml:"courses"`
	Enrollments []appModels.Enrollment `yaml:"enrollments"`
}

// CourseFixture describes one course to create
type CourseFixture struct {
	CourseID   int64  `yaml:"courseID"`
	CourseName string `yaml:"courseName"`
	Capacity   int64  `yaml:"capacity"`
}

// LoadFixtures reads and parses a seed file
func LoadFixtures(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var fixtures Fixtures
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &fixtures, nil
}

// CreateDefaultData creates the users, courses and enrollments of the seed
// file. Records that already exist are skipped, so seeding is repeatable.
// Courses start with enrolled at 0 and are counted up by the enrollments.
func CreateDefaultData(ctx context.Context, repos *appRepos.Repositories, path string, lgr zerolog.Logger) error {
	if path == "" {
		return nil
	}

	fixtures, err := LoadFixtures(path)
	if err != nil {
		return err
	}

	lgr.Info().Str("file", path).Msg("Checking/Creating default data (Users/Courses/Enrollments)...")
	var finalErr error

	for _, netID := range fixtures.Users {
		if _, err := repos.UserRepository.Create(ctx, netID); err != nil && !errors.Is(err, apperrors.ErrUserAlreadyExists) {
			lgr.Error().Err(err).Str("netID", netID).Msg("Error creating seed user")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, c := range fixtures.Courses {
		c := c
		_, err := repos.CourseRepository.Create(ctx, appRepos.CreateCourseParams{
			CourseID:   &c.CourseID,
			CourseName: &c.CourseName,
			Capacity:   &c.Capacity,
		})
		if err != nil && !errors.Is(err, apperrors.ErrCourseAlreadyExists) {
			lgr.Error().Err(err).Int64("courseID", c.CourseID).Msg("Error creating seed course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, e := range fixtures.Enrollments {
		if _, err := repos.EnrollmentRepository.Add(ctx, e.NetID, e.CourseID); err != nil {
			lgr.Error().Err(err).Str("netID", e.NetID).Int64("courseID", e.CourseID).Msg("Error creating seed enrollment")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().
			Int("users", len(fixtures.Users)).
			Int("courses", len(fixtures.Courses)).
			Int("enrollments", len(fixtures.Enrollments)).
			Msg("Default data ready")
	}
	return finalErr
}
