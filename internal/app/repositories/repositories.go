package repositories

import (
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

// Repositories holds all the repository instances
type Repositories struct {
	CourseRepository     *CourseRepository
	EnrollmentRepository *EnrollmentRepository
	UserRepository       *UserRepository
	MessageRepository    *MessageRepository
	ReviewRepository     *ReviewRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CourseRepository:     NewCourseRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
		UserRepository:       NewUserRepository(db),
		MessageRepository:    NewMessageRepository(db),
		ReviewRepository:     NewReviewRepository(db),
	}
}

func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

type validatable interface {
	Validate() error
}

// keepValid drops rows that fail validation so aggregation only sees
// well-formed records. Dropped rows are logged with their reason.
func keepValid[T validatable](kind string, rows []T) []T {
	valid := rows[:0]
	for _, row := range rows {
		if err := row.Validate(); err != nil {
			logger.Warn().Err(err).Str("record", kind).Msg("Skipping malformed row")
			continue
		}
		valid = append(valid, row)
	}
	return valid
}
