package renamed

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestAPIErrorClassification(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       []byte
		wantType   string
	}{
		{
			name:       "Unauthorized",
			statusCode: http.StatusUnauthorized,
			body:       []byte(`{"error": "Invalid API key"}`),
			wantType:   "*renamed.AuthenticationError",
		},
		{
			name:       "PaymentRequired",
			statusCode: http.StatusPaymentRequired,
			body:       []byte(`{"error": "Insufficient credits"}`),
			wantType:   "*renamed.InsufficientCreditsError",
		},
		{
			name:       "BadRequest",
			statusCode: http.StatusBadRequest,
			body:       []byte(`{"error": "Unsupported file type"}`),
			wantType:   "*renamed.ValidationError",
		},
		{
			name:       "UnprocessableEntity",
			statusCode: http.StatusUnprocessableEntity,
			body:       []byte(`{"error": "Missing file"}`),
			wantType:   "*renamed.ValidationError",
		},
		{
			name:       "TooManyRequests",
			statusCode: http.StatusTooManyRequests,
			body:       []byte(`{"error": "Rate limit exceeded"}`),
			wantType:   "*renamed.RateLimitError",
		},
		{
			name:       "ServiceUnavailable",
			statusCode: http.StatusServiceUnavailable,
			body:       []byte(`{"error": "Maintenance"}`),
			wantType:   "*renamed.APIError",
		},
		{
			name:       "Teapot",
			statusCode: 418,
			body:       []byte(`I'm a teapot`),
			wantType:   "*renamed.APIError",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := apiErrorFromResponse(tt.statusCode, tt.body, http.Header{})
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if got := fmt.Sprintf("%T", err); got != tt.wantType {
				t.Fatalf("apiErrorFromResponse(%d) = %s, want %s", tt.statusCode, got, tt.wantType)
			}
		})
	}
}

func TestValidationErrorCarriesDetails(t *testing.T) {
	body := []byte(`{"error": "Invalid request", "field": "file", "reason": "too large"}`)
	err := apiErrorFromResponse(http.StatusUnprocessableEntity, body, http.Header{})

	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected validation error, got %T", err)
	}
	if valErr.Message != "Invalid request" {
		t.Fatalf("unexpected message: %s", valErr.Message)
	}
	if valErr.Details["field"] != "file" || valErr.Details["reason"] != "too large" {
		t.Fatalf("expected structured details, got %v", valErr.Details)
	}
}

func TestRateLimitRetryAfterFromBody(t *testing.T) {
	body := []byte(`{"error": "Rate limit exceeded", "retryAfter": 30}`)
	err := apiErrorFromResponse(http.StatusTooManyRequests, body, http.Header{})

	var rateErr *RateLimitError
	if !errors.As(err, &rateErr) {
		t.Fatalf("expected rate limit error, got %T", err)
	}
	if rateErr.RetryAfter == nil || *rateErr.RetryAfter != 30*time.Second {
		t.Fatalf("expected 30s retry-after, got %v", rateErr.RetryAfter)
	}
}

func TestRateLimitRetryAfterFromHeader(t *testing.T) {
	headers := http.Header{}
	headers.Set("Retry-After", "7")
	err := apiErrorFromResponse(http.StatusTooManyRequests, []byte(`{"error": "slow down"}`), headers)

	var rateErr *RateLimitError
	if !errors.As(err, &rateErr) {
		t.Fatalf("expected rate limit error, got %T", err)
	}
	if rateErr.RetryAfter == nil || *rateErr.RetryAfter != 7*time.Second {
		t.Fatalf("expected 7s retry-after, got %v", rateErr.RetryAfter)
	}
}

func TestRateLimitRetryAfterAbsentStaysNil(t *testing.T) {
	err := apiErrorFromResponse(http.StatusTooManyRequests, []byte(`{"error": "slow down"}`), http.Header{})

	var rateErr *RateLimitError
	if !errors.As(err, &rateErr) {
		t.Fatalf("expected rate limit error, got %T", err)
	}
	if rateErr.RetryAfter != nil {
		t.Fatalf("expected nil retry-after, got %v", rateErr.RetryAfter)
	}
}

func TestErrorMessageExtraction(t *testing.T) {
	tests := []struct {
		name string
		body []byte
		want string
	}{
		{name: "ErrorKey", body: []byte(`{"error": "boom"}`), want: "boom"},
		{name: "DetailKey", body: []byte(`{"detail": "bad input"}`), want: "bad input"},
		{name: "MessageKey", body: []byte(`{"message": "nope"}`), want: "nope"},
		{name: "PlainText", body: []byte(`gateway timeout`), want: "gateway timeout"},
		{name: "EmptyBody", body: nil, want: "HTTP 500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := extractErrorDetail(500, tt.body)
			if got != tt.want {
				t.Fatalf("extractErrorDetail = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestJobErrorString(t *testing.T) {
	err := &JobError{Message: "boom", JobID: "j1"}
	if err.Error() != "job j1: boom" {
		t.Fatalf("unexpected error string: %s", err.Error())
	}
	bare := &JobError{Message: "Job polling timeout exceeded"}
	if bare.Error() != "Job polling timeout exceeded" {
		t.Fatalf("unexpected error string: %s", bare.Error())
	}
}
