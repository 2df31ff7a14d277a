package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/enrollment/internal/app/models"
	"github.com/yigit/enrollment/internal/config"
	"github.com/yigit/enrollment/internal/db"
	"github.com/yigit/enrollment/internal/pkg/apperrors"
	"github.com/yigit/enrollment/internal/pkg/dberrors"
	"github.com/yigit/enrollment/internal/pkg/helpers"
	"github.com/yigit/enrollment/internal/pkg/logger"
)

// CreateCourseParams carries the optional fields of a new course.
// Nil CourseID lets the store assign one; nil CourseName/Capacity are written
// as NULL and rejected by the schema.
type CreateCourseParams struct {
	CourseID   *int64
	CourseName *string
	Capacity   *int64
	Enrolled   int64
}

// CourseRepository handles course database operations
type CourseRepository struct {
	baseRepository
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(database *db.DB) *CourseRepository {
	return &CourseRepository{baseRepository: newBaseRepository(database)}
}

// findCourse loads a course through q, mapping a miss to ErrCourseNotFound
func (r *baseRepository) findCourse(ctx context.Context, q db.Querier, courseID int64) (*models.Course, error) {
	row, err := r.queryRow(ctx, q, r.sb.Select(courseColumns...).
		From(courseTable).
		Where(squirrel.Eq{colCourseID: courseID}).
		Limit(1))
	if err != nil {
		return nil, err
	}

	course, err := scanCourse(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}
	return course, nil
}

// FindByID retrieves a course by its primary key
func (r *CourseRepository) FindByID(ctx context.Context, courseID int64) (*models.Course, error) {
	return r.findCourse(ctx, r.db, courseID)
}

// List retrieves all courses ordered by courseID
func (r *CourseRepository) List(ctx context.Context) ([]*models.Course, error) {
	rows, err := r.query(ctx, r.db, r.sb.Select(courseColumns...).
		From(courseTable).
		OrderBy(colCourseID+" ASC"))
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list courses query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning course row during list")
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}
	return courses, nil
}

// Create inserts a new course and returns it as stored
func (r *CourseRepository) Create(ctx context.Context, params CreateCourseParams) (*models.Course, error) {
	columns := []string{colCourseName, colCapacity, colEnrolled}
	values := []interface{}{
		helpers.GetNullString(params.CourseName),
		helpers.GetNullInt64(params.Capacity),
		params.Enrolled,
	}
	if params.CourseID != nil {
		columns = append([]string{colCourseID}, columns...)
		values = append([]interface{}{*params.CourseID}, values...)
	}

	var course *models.Course
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		row, err := r.queryRow(ctx, tx, r.sb.Insert(courseTable).
			Columns(columns...).
			Values(values...).
			Suffix("RETURNING " + colCourseID))
		if err != nil {
			return err
		}

		var id int64
		if err := row.Scan(&id); err != nil {
			if dberrors.IsUniqueViolation(err) {
				return fmt.Errorf("%w: %v", apperrors.ErrCourseAlreadyExists, err)
			}
			return fmt.Errorf("error creating course: %w", err)
		}

		if params.CourseID != nil {
			if sync := courseSequenceSync(r.db.Driver(), r.sb); sync != nil {
				if _, err := r.exec(ctx, tx, sync); err != nil {
					return fmt.Errorf("error syncing course ID sequence: %w", err)
				}
			}
		}

		course, err = r.findCourse(ctx, tx, id)
		return err
	})
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create course query")
		return nil, err
	}

	return course, nil
}

// courseSequenceSync moves the PostgreSQL identity sequence up to the highest
// stored courseID so generated IDs never collide with explicit ones. SQLite
// derives new rowids from the current maximum and needs nothing.
func courseSequenceSync(driver string, sb squirrel.StatementBuilderType) squirrel.Sqlizer {
	if driver != config.DriverPostgres {
		return nil
	}
	return sb.Select(fmt.Sprintf(
		"setval(pg_get_serial_sequence('%s', 'courseID'), (SELECT MAX(%s) FROM %s))",
		courseTable, colCourseID, courseTable))
}

// Update writes every field of course back to the store
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) (*models.Course, error) {
	var updated *models.Course
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		result, err := r.exec(ctx, tx, r.sb.Update(courseTable).
			SetMap(map[string]interface{}{
				colCourseName: course.CourseName,
				colCapacity:   course.Capacity,
				colEnrolled:   course.Enrolled,
			}).
			Where(squirrel.Eq{colCourseID: course.CourseID}))
		if err != nil {
			return fmt.Errorf("error updating course: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("error reading affected rows: %w", err)
		}
		if affected == 0 {
			return apperrors.ErrCourseNotFound
		}

		updated, err = r.findCourse(ctx, tx, course.CourseID)
		return err
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrCourseNotFound) {
			logger.Error().Err(err).Int64("courseID", course.CourseID).Msg("Error executing update course query")
		}
		return nil, err
	}

	return updated, nil
}

// Delete removes a course and every enrollment in it, returning the course as it was
func (r *CourseRepository) Delete(ctx context.Context, courseID int64) (*models.Course, error) {
	var course *models.Course
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		course, err = r.findCourse(ctx, tx, courseID)
		if err != nil {
			return err
		}

		if _, err := r.exec(ctx, tx, r.sb.Delete(associationTable).
			Where(squirrel.Eq{colAssocCourseID: courseID})); err != nil {
			return fmt.Errorf("error deleting course enrollments: %w", err)
		}

		if _, err := r.exec(ctx, tx, r.sb.Delete(courseTable).
			Where(squirrel.Eq{colCourseID: courseID})); err != nil {
			return fmt.Errorf("error deleting course: %w", err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrCourseNotFound) {
			logger.Error().Err(err).Int64("courseID", courseID).Msg("Error executing delete course query")
		}
		return nil, err
	}

	return course, nil
}
