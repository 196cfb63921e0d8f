package usecase

import (
	"context"
	"log/slog"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/nanoid"
	"go-jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type messageUsecase struct {
	messageRepo domain.MessageRepository
	validate    *validator.Validate
	logger      *slog.Logger
	now         func() time.Time
	newID       func() string
}

func NewMessageUsecase(messageRepo domain.MessageRepository, logger *slog.Logger) domain.MessageUsecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &messageUsecase{
		messageRepo: messageRepo,
		validate:    validation.New(),
		logger:      logger,
		now:         time.Now,
		newID:       func() string { return nanoid.Lower() },
	}
}

// PostMessage always stamps the server time; callers cannot backdate messages.
func (u *messageUsecase) PostMessage(ctx context.Context, draft *domain.MessageDraft) (*domain.Message, error) {
	if err := u.validate.Struct(draft); err != nil {
		if _, missing := validation.FirstMissingField(err); missing {
			return nil, apperror.Validation("Missing content or contact")
		}
		return nil, apperror.Validation(validation.FormatValidationErrors(err)[0])
	}

	msg := &domain.Message{
		ID:        u.newID(),
		Content:   draft.Content,
		Contact:   draft.Contact,
		CreatedAt: domain.NewTimestamp(u.now()),
	}
	if err := u.messageRepo.Create(ctx, msg); err != nil {
		u.logger.ErrorContext(ctx, "Failed to store message", "request_id", domain.RequestIDFrom(ctx), "error", err)
		return nil, apperror.Internal(err)
	}
	return msg, nil
}

func (u *messageUsecase) ListMessages(ctx context.Context) ([]domain.Message, error) {
	messages, err := u.messageRepo.Fetch(ctx)
	if err != nil {
		u.logger.ErrorContext(ctx, "Failed to fetch messages", "request_id", domain.RequestIDFrom(ctx), "error", err)
		return nil, apperror.Internal(err)
	}
	return messages, nil
}
