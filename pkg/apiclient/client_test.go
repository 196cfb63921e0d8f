package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListJobs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/jobs", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":"a1","title":"焊工","createdAt":1700000000000},{"id":"b2","title":"铆工","createdAt":"2024-01-02T03:04:05Z"}]`))
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL + "/"})
	jobs, err := c.ListJobs(context.Background())

	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "a1", jobs[0].ID)
	assert.Equal(t, int64(1700000000000), jobs[0].CreatedAt.UnixMilli())
	assert.Equal(t, "2024-01-02T03:04:05.000Z", jobs[1].CreatedAt.String())
}

func TestCreateJobSendsDraft(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var draft domain.JobDraft
		require.NoError(t, json.NewDecoder(r.Body).Decode(&draft))
		assert.Equal(t, "电焊工", draft.Title)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true,"id":"xyz","createdAt":"2024-05-01T00:00:00.000Z"}`))
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL})
	res, err := c.CreateJob(context.Background(), domain.JobDraft{Title: "电焊工"})

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "xyz", res.ID)
	assert.Equal(t, "2024-05-01T00:00:00.000Z", res.CreatedAt.String())
}

func TestErrorStatusIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Missing required field: salary"}`))
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL})
	_, err := c.CreateJob(context.Background(), domain.JobDraft{})

	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindTransport, appErr.Kind)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.Contains(t, appErr.Message, "Missing required field: salary")
}

func TestNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := New(Options{BaseURL: url})
	_, err := c.ListJobs(context.Background())

	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindTransport))
}

func TestBreakerOpensAfterRepeatedFailures(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL})
	for i := 0; i < 5; i++ {
		_, err := c.ListJobs(context.Background())
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindTransport))
	}

	assert.Equal(t, int32(3), hits.Load())
}

func TestClientErrorsDoNotTripBreaker(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL})
	for i := 0; i < 5; i++ {
		_, _ = c.PostMessage(context.Background(), domain.MessageDraft{})
	}

	assert.Equal(t, int32(5), hits.Load())
}
