package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/enrollment/internal/app/models"
	"github.com/yigit/enrollment/internal/db"
)

// Table and column identifiers. They are quoted because "user" is reserved in
// PostgreSQL and the camel-case column names must survive case folding.
const (
	userTable        = `"user"`
	courseTable      = "course"
	associationTable = "association"

	colNetID      = `"netID"`
	colCourseID   = `"courseID"`
	colCourseName = `"courseName"`
	colCapacity   = "capacity"
	colEnrolled   = "enrolled"

	colAssocNetID    = `"user_netID"`
	colAssocCourseID = `"course_courseID"`
)

var courseColumns = []string{colCourseID, colCourseName, colCapacity, colEnrolled}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	CourseRepository     *CourseRepository
	EnrollmentRepository *EnrollmentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.DB) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(database),
		CourseRepository:     NewCourseRepository(database),
		EnrollmentRepository: NewEnrollmentRepository(database),
	}
}

// baseRepository carries the lookups shared by every repository so they can
// run either directly on the pool or inside a caller's transaction.
type baseRepository struct {
	db *db.DB
	sb squirrel.StatementBuilderType
}

func newBaseRepository(database *db.DB) baseRepository {
	return baseRepository{db: database, sb: database.Builder()}
}

func (r *baseRepository) exec(ctx context.Context, q db.Querier, b squirrel.Sqlizer) (sql.Result, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	r.db.Trace(query, args)
	return q.ExecContext(ctx, query, args...)
}

func (r *baseRepository) query(ctx context.Context, q db.Querier, b squirrel.Sqlizer) (*sql.Rows, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	r.db.Trace(query, args)
	return q.QueryContext(ctx, query, args...)
}

func (r *baseRepository) queryRow(ctx context.Context, q db.Querier, b squirrel.Sqlizer) (*sql.Row, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	r.db.Trace(query, args)
	return q.QueryRowContext(ctx, query, args...), nil
}

// rowScanner is implemented by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCourse(row rowScanner) (*models.Course, error) {
	course := &models.Course{}
	if err := row.Scan(&course.CourseID, &course.CourseName, &course.Capacity, &course.Enrolled); err != nil {
		return nil, err
	}
	return course, nil
}

// qualified prefixes each column with a table alias
func qualified(alias string, columns ...string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}

// adjustEnrolled adds delta to the enrolled counter of every listed course
func (r *baseRepository) adjustEnrolled(ctx context.Context, q db.Querier, delta int, courseIDs ...int64) error {
	if len(courseIDs) == 0 {
		return nil
	}

	expr := fmt.Sprintf("%s + %d", colEnrolled, delta)
	if delta < 0 {
		expr = fmt.Sprintf("%s - %d", colEnrolled, -delta)
	}

	_, err := r.exec(ctx, q, r.sb.Update(courseTable).
		Set(colEnrolled, squirrel.Expr(expr)).
		Where(squirrel.Eq{colCourseID: courseIDs}))
	if err != nil {
		return fmt.Errorf("error adjusting enrolled count: %w", err)
	}
	return nil
}
