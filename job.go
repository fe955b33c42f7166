package renamed

import (
	"context"
	"time"
)

// ProgressCallback is invoked with a fresh status snapshot after each poll
// during Wait. Callbacks run synchronously on the polling goroutine; a panic
// inside one is recovered and logged without disturbing the poll loop.
type ProgressCallback func(*JobStatusResponse)

// AsyncJob tracks a long-running server-side job via its status URL.
//
// AsyncJob borrows the client's HTTP executor: any number of jobs may poll
// concurrently over the same client. Polling parameters can be adjusted with
// WithPollInterval and WithMaxAttempts before the first Status or Wait call.
type AsyncJob struct {
	httpClient   *httpClient
	statusURL    string
	pollInterval time.Duration
	maxAttempts  int
}

func newAsyncJob(httpClient *httpClient, statusURL string) *AsyncJob {
	interval := httpClient.cfg.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	attempts := httpClient.cfg.MaxPollAttempts
	if attempts <= 0 {
		attempts = defaultMaxPollAttempts
	}
	return &AsyncJob{
		httpClient:   httpClient,
		statusURL:    statusURL,
		pollInterval: interval,
		maxAttempts:  attempts,
	}
}

// WithPollInterval overrides the delay between status checks.
func (j *AsyncJob) WithPollInterval(interval time.Duration) *AsyncJob {
	j.pollInterval = interval
	return j
}

// WithMaxAttempts overrides the poll budget.
func (j *AsyncJob) WithMaxAttempts(attempts int) *AsyncJob {
	j.maxAttempts = attempts
	return j
}

// StatusURL returns the endpoint polled by this job.
func (j *AsyncJob) StatusURL() string {
	return j.statusURL
}

// JobID derives the job identifier from the status URL. Diagnostic only.
func (j *AsyncJob) JobID() string {
	return lastPathSegment(j.statusURL)
}

// Status performs a single status check.
func (j *AsyncJob) Status() (*JobStatusResponse, error) {
	return j.StatusWithContext(context.Background())
}

// StatusWithContext performs a single status check with a caller-supplied context.
func (j *AsyncJob) StatusWithContext(ctx context.Context) (*JobStatusResponse, error) {
	var status JobStatusResponse
	if err := j.httpClient.getWithContext(ctx, j.statusURL, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Wait polls until the job reaches a terminal status or the poll budget is
// exhausted, invoking onProgress (if non-nil) after every status check.
func (j *AsyncJob) Wait(onProgress ProgressCallback) (*PdfSplitResult, error) {
	return j.WaitContext(context.Background(), onProgress)
}

// WaitContext is Wait with cooperative cancellation. Cancelling the context
// aborts promptly, including mid-sleep between polls.
func (j *AsyncJob) WaitContext(ctx context.Context, onProgress ProgressCallback) (*PdfSplitResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	lastJobID := ""
	for attempt := 0; attempt < j.maxAttempts; attempt++ {
		status, err := j.StatusWithContext(ctx)
		if err != nil {
			return nil, err
		}
		if status.JobID != "" {
			lastJobID = status.JobID
		}

		j.logStatus(status)
		j.invokeProgress(onProgress, status)

		switch status.Status {
		case JobStatusCompleted:
			if status.Result == nil {
				return nil, &JobError{Message: "Job completed but no result returned", JobID: status.JobID}
			}
			return status.Result, nil
		case JobStatusFailed:
			msg := status.Error
			if msg == "" {
				msg = "Job failed"
			}
			return nil, &JobError{Message: msg, JobID: status.JobID}
		}

		if err := j.httpClient.sleepWithContext(ctx, j.pollInterval); err != nil {
			return nil, err
		}
	}

	return nil, &JobError{Message: "Job polling timeout exceeded", JobID: lastJobID}
}

func (j *AsyncJob) logStatus(status *JobStatusResponse) {
	if status.Progress != nil {
		j.httpClient.logf("job %s: %s (%d%%)", status.JobID, status.Status, *status.Progress)
		return
	}
	j.httpClient.logf("job %s: %s", status.JobID, status.Status)
}

func (j *AsyncJob) invokeProgress(onProgress ProgressCallback, status *JobStatusResponse) {
	if onProgress == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			j.httpClient.logf("progress callback panic: %v", r)
		}
	}()
	onProgress(status)
}
