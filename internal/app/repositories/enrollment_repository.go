package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

// EnrollmentRepository handles enrollment database operations
type EnrollmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func (r *EnrollmentRepository) byCourseQuery(courseID int64) squirrel.SelectBuilder {
	return r.sb.Select("id", "course_id", "student_id", "status", "created_at", "enrollment_date").
		From("enrollments").
		Where(squirrel.Eq{"course_id": courseID}).
		OrderBy("id")
}

// ListEnrollments returns the enrollments of one course
func (r *EnrollmentRepository) ListEnrollments(ctx context.Context, courseID int64) ([]models.Enrollment, error) {
	sql, args, err := r.byCourseQuery(courseID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list enrollments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error executing list enrollments query")
		return nil, fmt.Errorf("error listing enrollments for course %d: %w", courseID, err)
	}
	defer rows.Close()

	var enrollments []models.Enrollment
	for rows.Next() {
		var e models.Enrollment
		if err := rows.Scan(&e.ID, &e.CourseID, &e.StudentID, &e.Status, &e.CreatedAt, &e.Date); err != nil {
			return nil, fmt.Errorf("error scanning enrollment row: %w", err)
		}
		enrollments = append(enrollments, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating enrollment rows: %w", err)
	}

	return keepValid("enrollment", enrollments), nil
}

// Create inserts an enrollment and sets its ID
func (r *EnrollmentRepository) Create(ctx context.Context, e *models.Enrollment) error {
	sql, args, err := r.sb.Insert("enrollments").
		Columns("course_id", "student_id", "status", "created_at", "enrollment_date").
		Values(e.CourseID, e.StudentID, e.Status, e.CreatedAt, e.Date).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create enrollment query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&e.ID); err != nil {
		return fmt.Errorf("error creating enrollment: %w", err)
	}
	return nil
}
