package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/enrollment/internal/app/models"
	"github.com/yigit/enrollment/internal/db"
	"github.com/yigit/enrollment/internal/pkg/apperrors"
	"github.com/yigit/enrollment/internal/pkg/dberrors"
	"github.com/yigit/enrollment/internal/pkg/logger"
)

// UserRepository handles user database operations
type UserRepository struct {
	baseRepository
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(database *db.DB) *UserRepository {
	return &UserRepository{baseRepository: newBaseRepository(database)}
}

// userExists reports whether a user row with netID exists
func (r *baseRepository) userExists(ctx context.Context, q db.Querier, netID string) (bool, error) {
	row, err := r.queryRow(ctx, q, r.sb.Select("COUNT(*)").
		From(userTable).
		Where(squirrel.Eq{colNetID: netID}))
	if err != nil {
		return false, err
	}

	var count int
	if err := row.Scan(&count); err != nil {
		logger.Error().Err(err).Str("netID", netID).Msg("Error checking user existence")
		return false, fmt.Errorf("error checking user existence: %w", err)
	}
	return count > 0, nil
}

// coursesOfUser returns the courses netID is enrolled in, ordered by courseID
func (r *baseRepository) coursesOfUser(ctx context.Context, q db.Querier, netID string) ([]*models.Course, error) {
	rows, err := r.query(ctx, q, r.sb.Select(qualified("c", courseColumns...)...).
		From(courseTable+" c").
		Join(fmt.Sprintf("%s a ON a.%s = c.%s", associationTable, colAssocCourseID, colCourseID)).
		Where(squirrel.Eq{"a." + colAssocNetID: netID}).
		OrderBy("c." + colCourseID + " ASC"))
	if err != nil {
		return nil, fmt.Errorf("error querying user courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning user course row: %w", err)
		}
		courses = append(courses, course)
	}
	return courses, rows.Err()
}

// loadUser loads a user with its courses through q, mapping a miss to ErrUserNotFound
func (r *baseRepository) loadUser(ctx context.Context, q db.Querier, netID string) (*models.User, error) {
	exists, err := r.userExists(ctx, q, netID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrUserNotFound
	}

	courses, err := r.coursesOfUser(ctx, q, netID)
	if err != nil {
		logger.Error().Err(err).Str("netID", netID).Msg("Error loading user courses")
		return nil, err
	}

	return &models.User{NetID: netID, Courses: courses}, nil
}

// FindByNetID retrieves a user and its courses by netID
func (r *UserRepository) FindByNetID(ctx context.Context, netID string) (*models.User, error) {
	return r.loadUser(ctx, r.db, netID)
}

// List retrieves all users with their courses, ordered by netID
func (r *UserRepository) List(ctx context.Context) ([]*models.User, error) {
	rows, err := r.query(ctx, r.db, r.sb.Select(colNetID).
		From(userTable).
		OrderBy(colNetID+" ASC"))
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list users query")
		return nil, fmt.Errorf("error querying users: %w", err)
	}

	users := []*models.User{}
	byNetID := make(map[string]*models.User)
	for rows.Next() {
		user := &models.User{Courses: []*models.Course{}}
		if err := rows.Scan(&user.NetID); err != nil {
			rows.Close()
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
		byNetID[user.NetID] = user
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	// One pass over every enrollment instead of a query per user
	columns := append([]string{"a." + colAssocNetID}, qualified("c", courseColumns...)...)
	enrollments, err := r.query(ctx, r.db, r.sb.Select(columns...).
		From(associationTable+" a").
		Join(fmt.Sprintf("%s c ON c.%s = a.%s", courseTable, colCourseID, colAssocCourseID)).
		OrderBy("c." + colCourseID + " ASC"))
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list enrollments query")
		return nil, fmt.Errorf("error querying enrollments: %w", err)
	}
	defer enrollments.Close()

	for enrollments.Next() {
		var netID string
		course := &models.Course{}
		if err := enrollments.Scan(&netID, &course.CourseID, &course.CourseName, &course.Capacity, &course.Enrolled); err != nil {
			return nil, fmt.Errorf("error scanning enrollment row: %w", err)
		}
		if user, ok := byNetID[netID]; ok {
			user.Courses = append(user.Courses, course)
		}
	}
	if err := enrollments.Err(); err != nil {
		return nil, fmt.Errorf("error iterating enrollment rows: %w", err)
	}

	return users, nil
}

// Create inserts a new user. Duplicate netIDs are rejected by the primary key.
func (r *UserRepository) Create(ctx context.Context, netID string) (*models.User, error) {
	if _, err := r.exec(ctx, r.db, r.sb.Insert(userTable).
		Columns(colNetID).
		Values(netID)); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrUserAlreadyExists, err)
		}
		logger.Error().Err(err).Str("netID", netID).Msg("Error executing create user query")
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return &models.User{NetID: netID, Courses: []*models.Course{}}, nil
}

// UpdateNetID re-keys a user. The new row is inserted, the user's enrollments
// are moved to it and the old row is removed, all in one transaction.
func (r *UserRepository) UpdateNetID(ctx context.Context, netID, newNetID string) (*models.User, error) {
	var user *models.User
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		user, err = r.loadUser(ctx, tx, netID)
		if err != nil || newNetID == netID {
			return err
		}

		if _, err := r.exec(ctx, tx, r.sb.Insert(userTable).
			Columns(colNetID).
			Values(newNetID)); err != nil {
			if dberrors.IsUniqueViolation(err) {
				return fmt.Errorf("%w: %v", apperrors.ErrUserAlreadyExists, err)
			}
			return fmt.Errorf("error inserting renamed user: %w", err)
		}

		if _, err := r.exec(ctx, tx, r.sb.Update(associationTable).
			Set(colAssocNetID, newNetID).
			Where(squirrel.Eq{colAssocNetID: netID})); err != nil {
			return fmt.Errorf("error moving user enrollments: %w", err)
		}

		if _, err := r.exec(ctx, tx, r.sb.Delete(userTable).
			Where(squirrel.Eq{colNetID: netID})); err != nil {
			return fmt.Errorf("error removing old user row: %w", err)
		}

		user, err = r.loadUser(ctx, tx, newNetID)
		return err
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			logger.Error().Err(err).Str("netID", netID).Str("newNetID", newNetID).Msg("Error updating user netID")
		}
		return nil, err
	}

	return user, nil
}

// Delete removes a user. Every course the user was enrolled in has its
// enrolled counter decremented and the user's association rows are deleted
// explicitly before the user row. The returned user reflects the
// decremented counters.
func (r *UserRepository) Delete(ctx context.Context, netID string) (*models.User, error) {
	var user *models.User
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		user, err = r.loadUser(ctx, tx, netID)
		if err != nil {
			return err
		}

		courseIDs := make([]int64, 0, len(user.Courses))
		for _, c := range user.Courses {
			courseIDs = append(courseIDs, c.CourseID)
		}
		if err := r.adjustEnrolled(ctx, tx, -1, courseIDs...); err != nil {
			return err
		}

		if _, err := r.exec(ctx, tx, r.sb.Delete(associationTable).
			Where(squirrel.Eq{colAssocNetID: netID})); err != nil {
			return fmt.Errorf("error deleting user enrollments: %w", err)
		}

		if _, err := r.exec(ctx, tx, r.sb.Delete(userTable).
			Where(squirrel.Eq{colNetID: netID})); err != nil {
			return fmt.Errorf("error deleting user: %w", err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			logger.Error().Err(err).Str("netID", netID).Msg("Error executing delete user query")
		}
		return nil, err
	}

	for _, c := range user.Courses {
		c.Enrolled--
	}
	return user, nil
}
