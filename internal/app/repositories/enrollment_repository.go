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
	"github.com/yigit/enrollment/internal/pkg/logger"
)

// EnrollmentRepository manages the user/course association
type EnrollmentRepository struct {
	baseRepository
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(database *db.DB) *EnrollmentRepository {
	return &EnrollmentRepository{baseRepository: newBaseRepository(database)}
}

// Add enrolls netID in courseID and returns the user with its courses.
// Joining a course twice leaves both the association and the counter unchanged.
func (r *EnrollmentRepository) Add(ctx context.Context, netID string, courseID int64) (*models.User, error) {
	var user *models.User
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if err := r.requireUserAndCourse(ctx, tx, netID, courseID); err != nil {
			return err
		}

		result, err := r.exec(ctx, tx, r.sb.Insert(associationTable).
			Columns(colAssocNetID, colAssocCourseID).
			Values(netID, courseID).
			Suffix("ON CONFLICT DO NOTHING"))
		if err != nil {
			return fmt.Errorf("error inserting enrollment: %w", err)
		}

		inserted, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("error reading affected rows: %w", err)
		}
		if inserted > 0 {
			if err := r.adjustEnrolled(ctx, tx, 1, courseID); err != nil {
				return err
			}
		}

		user, err = r.loadUser(ctx, tx, netID)
		return err
	})
	if err != nil {
		r.logFailure(err, "Error adding enrollment", netID, courseID)
		return nil, err
	}

	return user, nil
}

// Remove drops netID from courseID and returns the user with its remaining courses
func (r *EnrollmentRepository) Remove(ctx context.Context, netID string, courseID int64) (*models.User, error) {
	var user *models.User
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if err := r.requireUserAndCourse(ctx, tx, netID, courseID); err != nil {
			return err
		}

		result, err := r.exec(ctx, tx, r.sb.Delete(associationTable).
			Where(squirrel.Eq{
				colAssocNetID:    netID,
				colAssocCourseID: courseID,
			}))
		if err != nil {
			return fmt.Errorf("error deleting enrollment: %w", err)
		}

		removed, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("error reading affected rows: %w", err)
		}
		if removed == 0 {
			return apperrors.ErrEnrollmentNotFound
		}
		if err := r.adjustEnrolled(ctx, tx, -1, courseID); err != nil {
			return err
		}

		user, err = r.loadUser(ctx, tx, netID)
		return err
	})
	if err != nil {
		r.logFailure(err, "Error removing enrollment", netID, courseID)
		return nil, err
	}

	return user, nil
}

// requireUserAndCourse checks the user first so a missing user wins over a missing course
func (r *EnrollmentRepository) requireUserAndCourse(ctx context.Context, q db.Querier, netID string, courseID int64) error {
	exists, err := r.userExists(ctx, q, netID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrUserNotFound
	}

	_, err = r.findCourse(ctx, q, courseID)
	return err
}

func (r *EnrollmentRepository) logFailure(err error, msg, netID string, courseID int64) {
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		return
	}
	logger.Error().Err(err).Str("netID", netID).Int64("courseID", courseID).Msg(msg)
}
