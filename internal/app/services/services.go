package services

import (
	"github.com/rs/zerolog"
	"github.com/yigit/enrollment/internal/app/repositories"
)

// Services holds every service the controllers depend on
type Services struct {
	UserService       UserService
	CourseService     CourseService
	EnrollmentService EnrollmentService
}

// Options tunes service behavior from configuration
type Options struct {
	ApplyCourseUpdates bool
}

// NewServices wires the services onto the repositories
func NewServices(repos *repositories.Repositories, opts Options, logger zerolog.Logger) *Services {
	return &Services{
		UserService:       NewUserService(repos.UserRepository, logger),
		CourseService:     NewCourseService(repos.CourseRepository, opts.ApplyCourseUpdates, logger),
		EnrollmentService: NewEnrollmentService(repos.UserRepository, repos.EnrollmentRepository, logger),
	}
}
