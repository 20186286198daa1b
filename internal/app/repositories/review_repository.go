package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

// ReviewRepository handles review database operations
type ReviewRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewReviewRepository creates a new ReviewRepository
func NewReviewRepository(db *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func (r *ReviewRepository) listQuery() squirrel.SelectBuilder {
	return r.sb.Select("id", "user_id", "author_name", "rating", "comment", "created_at").
		From("reviews").
		OrderBy("created_at DESC", "id DESC")
}

// ListReviews returns every review, newest first
func (r *ReviewRepository) ListReviews(ctx context.Context) ([]models.Review, error) {
	sql, args, err := r.listQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list reviews query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list reviews query")
		return nil, fmt.Errorf("error listing reviews: %w", err)
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var rv models.Review
		if err := rows.Scan(&rv.ID, &rv.UserID, &rv.AuthorName, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning review row: %w", err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating review rows: %w", err)
	}

	return reviews, nil
}

// CreateReview stores review and fills in its server-assigned fields
func (r *ReviewRepository) CreateReview(ctx context.Context, review *models.Review) error {
	sql, args, err := r.sb.Insert("reviews").
		Columns("user_id", "author_name", "rating", "comment").
		Values(review.UserID, review.AuthorName, review.Rating, review.Comment).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create review query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&review.ID, &review.CreatedAt); err != nil {
		logger.Error().Err(err).Msg("Error executing create review query")
		return fmt.Errorf("error creating review: %w", err)
	}
	return nil
}
