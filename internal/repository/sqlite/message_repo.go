package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"go-jobboard-backend/internal/domain"
)

type messageRepo struct {
	db *sql.DB
}

func NewMessageRepository(db *sql.DB) domain.MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) Create(ctx context.Context, msg *domain.Message) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO messages (id, content, contact, created_at) VALUES (?, ?, ?, ?)`,
		msg.ID, msg.Content, msg.Contact, msg.CreatedAt.String())
	return err
}

func (r *messageRepo) Fetch(ctx context.Context) ([]domain.Message, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, content, contact, created_at FROM messages ORDER BY created_at DESC, id ASC`)
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
