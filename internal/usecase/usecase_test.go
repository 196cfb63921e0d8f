package usecase_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Repositories
type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) Fetch(ctx context.Context) ([]domain.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

type MockMessageRepo struct {
	mock.Mock
}

func (m *MockMessageRepo) Create(ctx context.Context, msg *domain.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *MockMessageRepo) Fetch(ctx context.Context) ([]domain.Message, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Message), args.Error(1)
}

type MockSchemaRepo struct {
	mock.Mock
}

func (m *MockSchemaRepo) Migrate(ctx context.Context, seed []domain.Job) (bool, error) {
	args := m.Called(ctx, seed)
	return args.Bool(0), args.Error(1)
}

func fullDraft() *domain.JobDraft {
	return &domain.JobDraft{
		Title:       "钢筋工",
		Company:     "中建八局",
		Location:    "北京",
		Salary:      "350元/天",
		Type:        "建筑工",
		Description: "绑扎钢筋",
		Duration:    "60天",
	}
}

func TestCreateJobValidation(t *testing.T) {
	repo := new(MockJobRepo)
	uc := usecase.NewJobUsecase(repo, nil)

	t.Run("Should report salary when only salary is missing", func(t *testing.T) {
		draft := fullDraft()
		draft.Salary = ""
		_, err := uc.CreateJob(context.Background(), draft)
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
		assert.Equal(t, "Missing required field: salary", err.Error())
	})

	t.Run("Should report the first missing field in order", func(t *testing.T) {
		_, err := uc.CreateJob(context.Background(), &domain.JobDraft{Company: "x", Duration: "y"})
		assert.Equal(t, "Missing required field: title", err.Error())

		_, err = uc.CreateJob(context.Background(), &domain.JobDraft{Title: "a", Company: "b", Location: "c", Salary: "d", Type: "e"})
		assert.Equal(t, "Missing required field: description", err.Error())
	})

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateJob(t *testing.T) {
	t.Run("Should assign id and createdAt", func(t *testing.T) {
		repo := new(MockJobRepo)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Job")).Return(nil)
		uc := usecase.NewJobUsecase(repo, nil)

		job, err := uc.CreateJob(context.Background(), fullDraft())
		require.NoError(t, err)
		assert.NotEmpty(t, job.ID)
		assert.False(t, job.CreatedAt.IsZero())
		assert.Equal(t, "钢筋工", job.Title)
		repo.AssertExpectations(t)
	})

	t.Run("Should keep a supplied createdAt", func(t *testing.T) {
		repo := new(MockJobRepo)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)
		uc := usecase.NewJobUsecase(repo, nil)

		draft := fullDraft()
		ts, err := domain.ParseTimestamp("2024-03-01T10:00:00.000Z")
		require.NoError(t, err)
		draft.CreatedAt = ts

		job, err := uc.CreateJob(context.Background(), draft)
		require.NoError(t, err)
		assert.Equal(t, "2024-03-01T10:00:00.000Z", job.CreatedAt.String())
	})

	t.Run("Should surface store failures as internal", func(t *testing.T) {
		repo := new(MockJobRepo)
		repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("disk full"))
		uc := usecase.NewJobUsecase(repo, nil)

		_, err := uc.CreateJob(context.Background(), fullDraft())
		assert.True(t, apperror.IsKind(err, apperror.KindInternal))
		assert.ErrorContains(t, errors.Unwrap(err), "disk full")
	})
}

func TestStoreFailureLogsRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))
	ctx := context.WithValue(context.Background(), domain.KeyRequestID, "req-42")

	jobs := new(MockJobRepo)
	jobs.On("Fetch", mock.Anything).Return(nil, errors.New("connection reset"))
	_, err := usecase.NewJobUsecase(jobs, log).ListJobs(ctx)
	require.Error(t, err)

	messages := new(MockMessageRepo)
	messages.On("Create", mock.Anything, mock.Anything).Return(errors.New("disk full"))
	_, err = usecase.NewMessageUsecase(messages, log).PostMessage(ctx, &domain.MessageDraft{Content: "招焊工", Contact: "138"})
	require.Error(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		assert.Equal(t, "req-42", entry["request_id"])
		assert.Equal(t, "ERROR", entry["level"])
	}
	assert.Contains(t, lines[0], "connection reset")
	assert.Contains(t, lines[1], "disk full")
}

func TestPostMessageValidation(t *testing.T) {
	repo := new(MockMessageRepo)
	uc := usecase.NewMessageUsecase(repo, nil)

	_, err := uc.PostMessage(context.Background(), &domain.MessageDraft{Content: "招焊工"})
	assert.Equal(t, "Missing content or contact", err.Error())

	_, err = uc.PostMessage(context.Background(), &domain.MessageDraft{Content: strings.Repeat("长", 301), Contact: "138"})
	assert.Equal(t, "Content must be at most 300 characters", err.Error())

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	msg, err := uc.PostMessage(context.Background(), &domain.MessageDraft{Content: strings.Repeat("长", 300), Contact: "138"})
	require.NoError(t, err)
	assert.NotEmpty(t, msg.ID)
	assert.False(t, msg.CreatedAt.IsZero())
}

func TestBootstrapCachesSuccess(t *testing.T) {
	repo := new(MockSchemaRepo)
	repo.On("Migrate", mock.Anything, mock.Anything).Return(false, errors.New("locked")).Once()
	repo.On("Migrate", mock.Anything, mock.Anything).Return(true, nil).Once()
	uc := usecase.NewBootstrapUsecase(repo, func() []domain.Job { return nil }, nil)

	assert.Error(t, uc.Ensure(context.Background()))
	assert.NoError(t, uc.Ensure(context.Background()))
	assert.NoError(t, uc.Ensure(context.Background()))

	repo.AssertNumberOfCalls(t, "Migrate", 2)
}

func TestHealth(t *testing.T) {
	down := func(context.Context) error { return errors.New("unreachable") }
	up := func(context.Context) error { return nil }

	status, ok := usecase.NewHealthUsecase(map[string]usecase.Pinger{"database": up}).Check(context.Background())
	assert.True(t, ok)
	assert.Equal(t, map[string]string{"status": "ok", "database": "up"}, status)

	status, ok = usecase.NewHealthUsecase(map[string]usecase.Pinger{"database": up, "redis": down}).Check(context.Background())
	assert.False(t, ok)
	assert.Equal(t, "degraded", status["status"])
	assert.Equal(t, "down", status["redis"])
}
