package postgres

import (
	"context"
	"fmt"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type messageRepo struct {
	db *pgxpool.Pool
}

func NewMessageRepository(db *pgxpool.Pool) domain.MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) Create(ctx context.Context, msg *domain.Message) error {
	query := `INSERT INTO messages (id, content, contact, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.db.Exec(ctx, query, msg.ID, msg.Content, msg.Contact, msg.CreatedAt.String())
	return err
}

func (r *messageRepo) Fetch(ctx context.Context) ([]domain.Message, error) {
	rows, err := r.db.Query(ctx, `SELECT id, content, contact, created_at FROM messages ORDER BY created_at DESC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []domain.Message{}
	for rows.Next() {
		var msg domain.Message
		var createdAt string
		if err := rows.Scan(&msg.ID, &msg.Content, &msg.Contact, &createdAt); err != nil {
			return nil, err
		}
		if msg.CreatedAt, err = domain.ParseTimestamp(createdAt); err != nil {
			return nil, fmt.Errorf("message %s: %w", msg.ID, err)
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}
