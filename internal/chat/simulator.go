// Package chat simulates a conversation with the recruiter of a job. The
// recruiter side is scripted: a welcome when a conversation is opened and a
// keyword-based reply to every message the user sends.
package chat

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/kvstore"
)

const (
	WelcomeDelay   = time.Second
	ReplyDelay     = 1500 * time.Millisecond
	ReplyJitterMax = time.Second
)

const (
	welcomeFormat = "你好！我对你的背景很感兴趣，我们可以聊聊关于“%s”这个职位吗？"
	greetingReply = "你好，很高兴和你沟通！"
	salaryReply   = "关于薪资待遇，我们可以在面试时详细沟通。"
	genericReply  = "已收到您的消息，我会尽快回复您。"
)

// Scheduler runs f once after d on another goroutine.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

type timerScheduler struct{}

func (timerScheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

type Publisher interface {
	Publish(event string, payload any) int
}

type Options struct {
	Store     kvstore.Store
	Bus       Publisher
	Scheduler Scheduler
	Logger    *slog.Logger
	Now       func() time.Time
	// Jitter returns the extra reply delay, in [0, ReplyJitterMax).
	Jitter func() time.Duration
}

// Simulator owns the chat_histories map in the store. All writes go through
// one mutex because scheduled replies land on timer goroutines.
type Simulator struct {
	store     kvstore.Store
	bus       Publisher
	scheduler Scheduler
	logger    *slog.Logger
	now       func() time.Time
	jitter    func() time.Duration

	mu     sync.Mutex
	lastID int64
}

func NewSimulator(opts Options) *Simulator {
	s := &Simulator{
		store:     opts.Store,
		bus:       opts.Bus,
		scheduler: opts.Scheduler,
		logger:    opts.Logger,
		now:       opts.Now,
		jitter:    opts.Jitter,
	}
	if s.store == nil {
		s.store = kvstore.NewMemory()
	}
	if s.scheduler == nil {
		s.scheduler = timerScheduler{}
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.jitter == nil {
		s.jitter = func() time.Duration { return rand.N(ReplyJitterMax) }
	}
	return s
}

// History returns the messages of one conversation in append order.
func (s *Simulator) History(ctx context.Context, chatID string) ([]domain.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return append([]domain.ChatMessage{}, all[chatID]...), nil
}

// Open returns the existing history. An empty conversation gets the
// recruiter welcome for jobTitle after WelcomeDelay.
func (s *Simulator) Open(ctx context.Context, chatID, jobTitle string) ([]domain.ChatMessage, error) {
	history, err := s.History(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		s.schedule(chatID, WelcomeDelay, fmt.Sprintf(welcomeFormat, jobTitle))
	}
	return history, nil
}

// Send appends a message from senderID and returns it.
func (s *Simulator) Send(ctx context.Context, chatID, senderID, content string) (domain.ChatMessage, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.ChatMessage{}, fmt.Errorf("chat: empty message")
	}

	s.mu.Lock()
	msg := domain.ChatMessage{
		ID:       s.nextID(),
		ChatID:   chatID,
		SenderID: senderID,
		Content:  content,
	}
	msg.Timestamp = msg.ID
	s.mu.Unlock()

	if _, err := s.Save(ctx, msg); err != nil {
		return domain.ChatMessage{}, err
	}
	return msg, nil
}

// Save appends msg unless a message with the same id is already stored, and
// reports whether it was appended. Messages from anyone but the recruiter
// trigger a scripted reply.
func (s *Simulator) Save(ctx context.Context, msg domain.ChatMessage) (bool, error) {
	s.mu.Lock()
	all, err := s.load(ctx)
	if err != nil {
		s.mu.Unlock()
		return false, err
	}
	for _, existing := range all[msg.ChatID] {
		if existing.ID == msg.ID {
			s.mu.Unlock()
			return false, nil
		}
	}
	all[msg.ChatID] = append(all[msg.ChatID], msg)
	if msg.ID > s.lastID {
		s.lastID = msg.ID
	}
	err = kvstore.SetJSON(ctx, s.store, domain.ChatStorageKey, all)
	s.mu.Unlock()
	if err != nil {
		return false, err
	}

	if s.bus != nil {
		s.bus.Publish(domain.EventChatMessage, msg)
	}
	if !msg.FromRecruiter() {
		s.schedule(msg.ChatID, ReplyDelay+s.jitter(), Reply(msg.Content))
	}
	return true, nil
}

// Reply picks the scripted recruiter answer for content.
func Reply(content string) string {
	lower := strings.ToLower(content)
	switch {
	case strings.Contains(content, "你好") || strings.Contains(lower, "hello"):
		return greetingReply
	case strings.Contains(content, "薪资") || strings.Contains(content, "工资"):
		return salaryReply
	default:
		return genericReply
	}
}

func (s *Simulator) schedule(chatID string, delay time.Duration, content string) {
	s.scheduler.AfterFunc(delay, func() {
		s.mu.Lock()
		id := s.nextID()
		s.mu.Unlock()

		msg := domain.ChatMessage{
			ID:        id,
			ChatID:    chatID,
			SenderID:  domain.RecruiterID,
			Content:   content,
			Timestamp: id,
		}
		if _, err := s.Save(context.Background(), msg); err != nil {
			s.logger.Error("Failed to save recruiter reply", "chat_id", chatID, "error", err)
		}
	})
}

// nextID is the current epoch millisecond, bumped past the last id handed
// out so two messages in the same millisecond stay distinct. Callers hold mu.
func (s *Simulator) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Simulator) load(ctx context.Context) (map[string][]domain.ChatMessage, error) {
	all := map[string][]domain.ChatMessage{}
	if _, err := kvstore.GetJSON(ctx, s.store, domain.ChatStorageKey, &all); err != nil {
		return nil, err
	}
	if all == nil {
		all = map[string][]domain.ChatMessage{}
	}
	return all, nil
}
