package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

// MessageRepository handles contact message database operations
type MessageRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func (r *MessageRepository) listQuery() squirrel.SelectBuilder {
	return r.sb.Select("id", "name", "email", "subject", "body", "is_read", "created_at").
		From("messages").
		OrderBy("created_at DESC")
}

// ListMessages returns every message, newest first
func (r *MessageRepository) ListMessages(ctx context.Context) ([]models.Message, error) {
	sql, args, err := r.listQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list messages query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list messages query")
		return nil, fmt.Errorf("error listing messages: %w", err)
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Body, &m.Read, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning message row: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating message rows: %w", err)
	}

	return messages, nil
}

// Create inserts a message and sets its ID
func (r *MessageRepository) Create(ctx context.Context, m *models.Message) error {
	sql, args, err := r.sb.Insert("messages").
		Columns("name", "email", "subject", "body", "is_read").
		Values(m.Name, m.Email, m.Subject, m.Body, m.Read).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create message query: %w", err)
	}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&m.ID, &m.CreatedAt); err != nil {
		return fmt.Errorf("error creating message: %w", err)
	}
	return nil
}
