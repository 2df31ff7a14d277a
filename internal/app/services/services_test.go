package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/enrollment/internal/app/migrations"
	"github.com/yigit/enrollment/internal/app/models"
	"github.com/yigit/enrollment/internal/app/models/dto"
	"github.com/yigit/enrollment/internal/app/repositories"
	"github.com/yigit/enrollment/internal/config"
	"github.com/yigit/enrollment/internal/db"
	"github.com/yigit/enrollment/internal/pkg/apperrors"
)

func newTestServices(t *testing.T, opts Options) *Services {
	t.Helper()
	cfg := &config.Config{}
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.Path = filepath.Join(t.TempDir(), "services.db")

	database, err := db.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	require.NoError(t, migrations.NewMigrator(database).Migrate(context.Background()))

	return NewServices(repositories.NewRepositories(database), opts, zerolog.Nop())
}

func strPtr(s string) *string { return &s }
func int64Ptr(i int64) *int64 { return &i }

func seedCourse(t *testing.T, svc *Services) {
	t.Helper()
	_, err := svc.CourseService.CreateCourse(context.Background(), &dto.CreateCourseRequest{
		CourseID:   int64Ptr(1),
		CourseName: strPtr("CS101"),
		Capacity:   int64Ptr(30),
	})
	require.NoError(t, err)
}

func TestCourseService_UpdateIgnoresFieldsByDefault(t *testing.T) {
	svc := newTestServices(t, Options{})
	ctx := context.Background()
	seedCourse(t, svc)

	course, err := svc.CourseService.UpdateCourse(ctx, 1, &dto.UpdateCourseRequest{
		CourseName: strPtr("CS102"),
		Capacity:   int64Ptr(99),
		Enrolled:   int64Ptr(5),
	})
	require.NoError(t, err)
	assert.Equal(t, "CS101", course.CourseName)
	assert.Equal(t, int64(30), course.Capacity)
	assert.Equal(t, int64(0), course.Enrolled)

	stored, err := svc.CourseService.GetCourseByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, course, stored)
}

func TestCourseService_UpdateAppliesFieldsWhenEnabled(t *testing.T) {
	svc := newTestServices(t, Options{ApplyCourseUpdates: true})
	ctx := context.Background()
	seedCourse(t, svc)

	course, err := svc.CourseService.UpdateCourse(ctx, 1, &dto.UpdateCourseRequest{CourseName: strPtr("CS102")})
	require.NoError(t, err)
	assert.Equal(t, "CS102", course.CourseName)
	assert.Equal(t, int64(30), course.Capacity, "absent fields keep their value")
}

func TestCourseService_UpdateMissingCourse(t *testing.T) {
	svc := newTestServices(t, Options{})

	_, err := svc.CourseService.UpdateCourse(context.Background(), 404, &dto.UpdateCourseRequest{})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestUserService_CreateAndUpdate(t *testing.T) {
	svc := newTestServices(t, Options{})
	ctx := context.Background()

	blank, err := svc.UserService.CreateUser(ctx, &dto.CreateUserRequest{})
	require.NoError(t, err)
	assert.Equal(t, "", blank.NetID, "missing netID yields the empty identity")

	_, err = svc.UserService.CreateUser(ctx, &dto.CreateUserRequest{NetID: strPtr("abc1")})
	require.NoError(t, err)

	unchanged, err := svc.UserService.UpdateUser(ctx, "abc1", &dto.UpdateUserRequest{})
	require.NoError(t, err)
	assert.Equal(t, "abc1", unchanged.NetID)

	renamed, err := svc.UserService.UpdateUser(ctx, "abc1", &dto.UpdateUserRequest{NetID: strPtr("def2")})
	require.NoError(t, err)
	assert.Equal(t, "def2", renamed.NetID)

	_, err = svc.UserService.UpdateUser(ctx, "abc1", &dto.UpdateUserRequest{})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	_, err = svc.UserService.CreateUser(ctx, &dto.CreateUserRequest{NetID: strPtr("def2")})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUserAlreadyExists)
}

func hasCourse(user *models.User, courseID int64) bool {
	for _, c := range user.Courses {
		if c.CourseID == courseID {
			return true
		}
	}
	return false
}

func TestEnrollmentService_MissingCourseID(t *testing.T) {
	svc := newTestServices(t, Options{})
	ctx := context.Background()
	seedCourse(t, svc)
	_, err := svc.UserService.CreateUser(ctx, &dto.CreateUserRequest{NetID: strPtr("abc1")})
	require.NoError(t, err)

	_, err = svc.EnrollmentService.JoinCourse(ctx, "ghost", &dto.EnrollmentRequest{})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	_, err = svc.EnrollmentService.JoinCourse(ctx, "abc1", &dto.EnrollmentRequest{})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)

	_, err = svc.EnrollmentService.DropCourse(ctx, "abc1", &dto.EnrollmentRequest{})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestEnrollmentService_RequireUser(t *testing.T) {
	svc := newTestServices(t, Options{})
	ctx := context.Background()
	_, err := svc.UserService.CreateUser(ctx, &dto.CreateUserRequest{NetID: strPtr("abc1")})
	require.NoError(t, err)

	assert.NoError(t, svc.EnrollmentService.RequireUser(ctx, "abc1"))
	assert.ErrorIs(t, svc.EnrollmentService.RequireUser(ctx, "ghost"), apperrors.ErrUserNotFound)
}

func TestEnrollmentService_JoinThenDrop(t *testing.T) {
	svc := newTestServices(t, Options{})
	ctx := context.Background()
	seedCourse(t, svc)
	_, err := svc.UserService.CreateUser(ctx, &dto.CreateUserRequest{NetID: strPtr("abc1")})
	require.NoError(t, err)

	user, err := svc.EnrollmentService.JoinCourse(ctx, "abc1", &dto.EnrollmentRequest{CourseID: int64Ptr(1)})
	require.NoError(t, err)
	require.Len(t, user.Courses, 1)
	assert.Equal(t, int64(1), user.Courses[0].Enrolled)

	user, err = svc.EnrollmentService.DropCourse(ctx, "abc1", &dto.EnrollmentRequest{CourseID: int64Ptr(1)})
	require.NoError(t, err)
	assert.Empty(t, user.Courses)
	assert.False(t, hasCourse(user, 1))

	_, err = svc.EnrollmentService.DropCourse(ctx, "abc1", &dto.EnrollmentRequest{CourseID: int64Ptr(1)})
	assert.ErrorIs(t, err, apperrors.ErrEnrollmentNotFound)

	course, err := svc.CourseService.GetCourseByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), course.Enrolled)
}

func TestUserService_DeleteReleasesSeats(t *testing.T) {
	svc := newTestServices(t, Options{})
	ctx := context.Background()
	seedCourse(t, svc)
	_, err := svc.UserService.CreateUser(ctx, &dto.CreateUserRequest{NetID: strPtr("abc1")})
	require.NoError(t, err)
	_, err = svc.EnrollmentService.JoinCourse(ctx, "abc1", &dto.EnrollmentRequest{CourseID: int64Ptr(1)})
	require.NoError(t, err)

	deleted, err := svc.UserService.DeleteUser(ctx, "abc1")
	require.NoError(t, err)
	require.Len(t, deleted.Courses, 1)
	assert.Equal(t, int64(0), deleted.Courses[0].Enrolled)

	users, err := svc.UserService.GetAllUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	_, err = svc.UserService.DeleteUser(ctx, "abc1")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
