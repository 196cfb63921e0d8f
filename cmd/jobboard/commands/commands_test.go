package commands

import (
	"bytes"
	"context"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go-jobboard-backend/config"
	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/repository/sqlite"
	"go-jobboard-backend/internal/seed"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/database"
	"go-jobboard-backend/pkg/kvstore"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewSQLiteConnection(context.Background(), filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	router := v1.NewRouter(v1.RouterDeps{
		JobUC:       usecase.NewJobUsecase(sqlite.NewJobRepository(db), nil),
		MessageUC:   usecase.NewMessageUsecase(sqlite.NewMessageRepository(db), nil),
		CatalogUC:   usecase.NewCatalogUsecase(seed.JobTypes, seed.Locations),
		BootstrapUC: usecase.NewBootstrapUsecase(sqlite.NewSchemaRepository(db), seed.Jobs, nil),
		HealthUC:    usecase.NewHealthUsecase(nil),
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func newTestApp(baseURL string) *App {
	cfg := &config.Config{APIBaseURL: baseURL, APITimeout: 2 * time.Second}
	return NewApp(cfg, kvstore.NewMemory(), nil)
}

func run(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd(app)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestModeCommands(t *testing.T) {
	app := newTestApp("http://127.0.0.1:1")

	out, err := run(t, app, "mode", "get")
	require.NoError(t, err)
	assert.Equal(t, "local\n", out)

	_, err = run(t, app, "mode", "set", "api")
	require.NoError(t, err)
	out, _ = run(t, app, "mode", "get")
	assert.Equal(t, "api\n", out)

	_, err = run(t, app, "mode", "set", "cloud")
	assert.Error(t, err)

	out, err = run(t, app, "mode", "toggle")
	require.NoError(t, err)
	assert.Contains(t, out, "local")
}

func TestJobsListLocal(t *testing.T) {
	app := newTestApp("http://127.0.0.1:1")

	out, err := run(t, app, "jobs", "list", "--type", "焊工")
	require.NoError(t, err)
	for _, job := range seed.Jobs() {
		if job.Type == "焊工" {
			assert.Contains(t, out, job.Title)
		} else {
			assert.NotContains(t, out, "["+job.ID+"]")
		}
	}
}

func TestJobsPostValidatesLocally(t *testing.T) {
	app := newTestApp("http://127.0.0.1:1")

	_, err := run(t, app, "jobs", "post", "--title", "电工", "--company", "某公司", "--location", "上海",
		"--type", "建筑工", "--salary", "300元/天", "--duration", "30天", "--description", "太短")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Description must be at least 10 characters")
	assert.Equal(t, len(seed.Jobs()), app.MockJobs.Len())
}

func TestAPIRoundTrip(t *testing.T) {
	srv := newAPIServer(t)
	app := newTestApp(srv.URL)
	_, err := run(t, app, "mode", "set", "api")
	require.NoError(t, err)

	out, err := run(t, app, "jobs", "post",
		"--title", "钢筋工（急招）", "--company", "中建一局", "--location", "成都",
		"--type", "建筑工", "--salary", "380元/天", "--duration", "60天",
		"--description", "负责钢筋绑扎与安装，提供住宿。")
	require.NoError(t, err)
	assert.Contains(t, out, "Posted job")
	assert.NotContains(t, out, "Saved locally only")

	out, err = run(t, app, "jobs", "list", "--keyword", "钢筋")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "["), out)
	assert.Contains(t, strings.SplitN(out, "\n", 2)[0], "钢筋工（急招）")

	out, err = run(t, app, "messages", "post", "招聘电焊工两名", "--contact", "13800000000")
	require.NoError(t, err)
	assert.Contains(t, out, "Posted message")

	out, err = run(t, app, "messages", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "招聘电焊工两名")

	out, err = run(t, app, "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "焊工")
}

func TestAPIDownFallsBackToMockList(t *testing.T) {
	app := newTestApp("http://127.0.0.1:1")
	_, err := run(t, app, "mode", "set", "api")
	require.NoError(t, err)

	out, err := run(t, app, "jobs", "list")
	require.NoError(t, err)
	assert.Contains(t, out, seed.Jobs()[0].Title)

	out, err = run(t, app, "messages", "list")
	require.NoError(t, err)
	assert.Equal(t, "No messages\n", out)
}

func TestLogin(t *testing.T) {
	app := newTestApp("http://127.0.0.1:1")

	first, err := run(t, app, "login", "--nick", "老李")
	require.NoError(t, err)
	assert.Contains(t, first, "老李 (user_")

	second, err := run(t, app, "login", "--nick", "someone")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
