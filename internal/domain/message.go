package domain

import "context"

// MaxMessageLength bounds Message.Content, counted in characters.
const MaxMessageLength = 300

type Message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Contact   string    `json:"contact"`
	CreatedAt Timestamp `json:"createdAt,omitzero"`
}

type MessageDraft struct {
	Content string `json:"content" validate:"required,max=300"`
	Contact string `json:"contact" validate:"required"`
}

type MessageRepository interface {
	Create(ctx context.Context, msg *Message) error
	Fetch(ctx context.Context) ([]Message, error)
}

type MessageUsecase interface {
	PostMessage(ctx context.Context, draft *MessageDraft) (*Message, error)
	ListMessages(ctx context.Context) ([]Message, error)
}
