package hybrid

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type RemoteMessages interface {
	ListMessages(ctx context.Context) ([]domain.Message, error)
	PostMessage(ctx context.Context, draft domain.MessageDraft) (*domain.CreateResult, error)
}

// MessageBoard reads and posts "leave a message" entries. There is no local
// copy of messages, so a failed read yields an empty list.
type MessageBoard struct {
	remote RemoteMessages
	bus    Publisher
	logger *slog.Logger
}

func NewMessageBoard(remote RemoteMessages, bus Publisher, logger *slog.Logger) *MessageBoard {
	if logger == nil {
		logger = slog.Default()
	}
	return &MessageBoard{remote: remote, bus: bus, logger: logger}
}

func (b *MessageBoard) List(ctx context.Context) []domain.Message {
	messages, err := b.remote.ListMessages(ctx)
	if err != nil {
		b.logger.Warn("Failed to fetch messages from API, returning empty list", "error", err)
		return []domain.Message{}
	}
	if messages == nil {
		return []domain.Message{}
	}
	return messages
}

// Post validates locally, then propagates any transport failure.
func (b *MessageBoard) Post(ctx context.Context, draft domain.MessageDraft) (*domain.Message, error) {
	draft.Content = strings.TrimSpace(draft.Content)
	draft.Contact = strings.TrimSpace(draft.Contact)
	if draft.Content == "" || draft.Contact == "" {
		return nil, apperror.Validation("Missing content or contact")
	}
	if utf8.RuneCountInString(draft.Content) > domain.MaxMessageLength {
		return nil, apperror.Validation("Content must be at most 300 characters")
	}

	result, err := b.remote.PostMessage(ctx, draft)
	if err != nil {
		return nil, err
	}

	msg := &domain.Message{
		ID:        result.ID,
		Content:   draft.Content,
		Contact:   draft.Contact,
		CreatedAt: result.CreatedAt,
	}
	if b.bus != nil {
		b.bus.Publish(domain.EventJobPosted, *msg)
	}
	return msg, nil
}
