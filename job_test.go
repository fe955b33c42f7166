package renamed

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusSequenceServer(t *testing.T, responses []JobStatusResponse) (*httptest.Server, *int32) {
	t.Helper()
	var calls int32
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		idx := int(n) - 1
		if idx >= len(responses) {
			idx = len(responses) - 1
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(responses[idx])
	}))
	return server, &calls
}

func TestWaitPollsUntilCompleted(t *testing.T) {
	result := &PdfSplitResult{
		Documents: []SplitDocument{{Index: 0, Filename: "part-1.pdf", Pages: "1-3", DownloadURL: "https://files.example/part-1.pdf"}},
	}
	progress25 := 25
	progress80 := 80
	server, calls := statusSequenceServer(t, []JobStatusResponse{
		{JobID: "job-42", Status: JobStatusPending},
		{JobID: "job-42", Status: JobStatusProcessing, Progress: &progress25},
		{JobID: "job-42", Status: JobStatusProcessing, Progress: &progress80},
		{JobID: "job-42", Status: JobStatusCompleted, Result: result},
	})
	defer server.Close()

	client := newTestHTTPClient(server.URL)
	job := newAsyncJob(client, server.URL+"/pdf-split/status/job-42").WithPollInterval(0)

	var seen []JobStatus
	got, err := job.Wait(func(status *JobStatusResponse) {
		seen = append(seen, status.Status)
	})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, result.Documents, got.Documents)
	assert.Equal(t, int32(4), atomic.LoadInt32(calls))
	assert.Equal(t, []JobStatus{JobStatusPending, JobStatusProcessing, JobStatusProcessing, JobStatusCompleted}, seen)
}

func TestWaitFailedJobReturnsJobError(t *testing.T) {
	server, _ := statusSequenceServer(t, []JobStatusResponse{
		{JobID: "j1", Status: JobStatusFailed, Error: "boom"},
	})
	defer server.Close()

	client := newTestHTTPClient(server.URL)
	job := newAsyncJob(client, server.URL+"/pdf-split/status/j1")

	_, err := job.Wait(nil)
	var jobErr *JobError
	require.ErrorAs(t, err, &jobErr)
	assert.Equal(t, "boom", jobErr.Message)
	assert.Equal(t, "j1", jobErr.JobID)
}

func TestWaitFailedJobWithoutMessage(t *testing.T) {
	server, _ := statusSequenceServer(t, []JobStatusResponse{
		{JobID: "j1", Status: JobStatusFailed},
	})
	defer server.Close()

	client := newTestHTTPClient(server.URL)
	_, err := newAsyncJob(client, server.URL+"/status/j1").Wait(nil)

	var jobErr *JobError
	require.ErrorAs(t, err, &jobErr)
	assert.Equal(t, "Job failed", jobErr.Message)
}

func TestWaitExhaustsPollBudget(t *testing.T) {
	server, calls := statusSequenceServer(t, []JobStatusResponse{
		{JobID: "job-stuck", Status: JobStatusProcessing},
	})
	defer server.Close()

	client := newTestHTTPClient(server.URL)
	job := newAsyncJob(client, server.URL+"/status/job-stuck").
		WithPollInterval(0).
		WithMaxAttempts(3)

	_, err := job.Wait(nil)
	var jobErr *JobError
	require.ErrorAs(t, err, &jobErr)
	assert.Equal(t, "Job polling timeout exceeded", jobErr.Message)
	assert.Equal(t, "job-stuck", jobErr.JobID)
	assert.Equal(t, int32(3), atomic.LoadInt32(calls))
}

func TestWaitCompletedWithoutResult(t *testing.T) {
	server, _ := statusSequenceServer(t, []JobStatusResponse{
		{JobID: "j9", Status: JobStatusCompleted},
	})
	defer server.Close()

	client := newTestHTTPClient(server.URL)
	_, err := newAsyncJob(client, server.URL+"/status/j9").Wait(nil)

	var jobErr *JobError
	require.ErrorAs(t, err, &jobErr)
	assert.Equal(t, "Job completed but no result returned", jobErr.Message)
	assert.Equal(t, "j9", jobErr.JobID)
}

func TestWaitStopsOnStatusError(t *testing.T) {
	var calls int32
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "Invalid API key"}`))
	}))
	defer server.Close()

	client := newTestHTTPClient(server.URL)
	_, err := newAsyncJob(client, server.URL+"/status/j1").WithPollInterval(0).Wait(nil)

	var authErr *AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "a status error must stop polling immediately")
}

func TestWaitRecoversProgressCallbackPanic(t *testing.T) {
	result := &PdfSplitResult{Documents: []SplitDocument{{Filename: "a.pdf"}}}
	server, _ := statusSequenceServer(t, []JobStatusResponse{
		{JobID: "j1", Status: JobStatusProcessing},
		{JobID: "j1", Status: JobStatusCompleted, Result: result},
	})
	defer server.Close()

	client := newTestHTTPClient(server.URL)
	job := newAsyncJob(client, server.URL+"/status/j1").WithPollInterval(0)

	got, err := job.Wait(func(status *JobStatusResponse) {
		panic("callback exploded")
	})
	require.NoError(t, err)
	assert.Equal(t, result.Documents, got.Documents)
}

func TestWaitContextCancelledDuringSleep(t *testing.T) {
	server, _ := statusSequenceServer(t, []JobStatusResponse{
		{JobID: "j1", Status: JobStatusProcessing},
	})
	defer server.Close()

	client := newTestHTTPClient(server.URL)
	job := newAsyncJob(client, server.URL+"/status/j1").WithPollInterval(time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	_, err := job.WaitContext(ctx, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Less(t, time.Since(start), 5*time.Second, "cancellation must interrupt the poll sleep")
}

func TestJobIDFromStatusURL(t *testing.T) {
	client := newTestHTTPClient("https://api.example")
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.renamed.to/api/v1/pdf-split/status/abc123", "abc123"},
		{"https://www.renamed.to/api/v1/pdf-split/status/abc123/", "abc123"},
		{"https://www.renamed.to/api/v1/pdf-split/status/abc123?token=x", "abc123"},
	}
	for _, tt := range tests {
		job := newAsyncJob(client, tt.url)
		assert.Equal(t, tt.want, job.JobID(), tt.url)
	}
}

func TestClientJobReconstructsHandle(t *testing.T) {
	result := &PdfSplitResult{Documents: []SplitDocument{{Filename: "a.pdf"}}}
	server, _ := statusSequenceServer(t, []JobStatusResponse{
		{JobID: "job-persisted", Status: JobStatusCompleted, Result: result},
	})
	defer server.Close()

	client := newTestClient(t, server.URL)
	job := client.Job(server.URL + "/pdf-split/status/job-persisted")
	assert.Equal(t, "job-persisted", job.JobID())

	got, err := job.Wait(nil)
	require.NoError(t, err)
	assert.Equal(t, result.Documents, got.Documents)
}

func TestJobPollingDefaultsAndOverrides(t *testing.T) {
	client := newTestHTTPClient("https://api.example")
	client.cfg.PollInterval = 0
	client.cfg.MaxPollAttempts = 0

	job := newAsyncJob(client, "https://api.example/status/j1")
	assert.Equal(t, defaultPollInterval, job.pollInterval)
	assert.Equal(t, defaultMaxPollAttempts, job.maxAttempts)

	job.WithPollInterval(250 * time.Millisecond).WithMaxAttempts(7)
	assert.Equal(t, 250*time.Millisecond, job.pollInterval)
	assert.Equal(t, 7, job.maxAttempts)
}
