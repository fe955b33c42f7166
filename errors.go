package renamed

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

var ErrMissingAPIKey = errors.New("API key is required. Provide it or set RENAMED_API_KEY")

// APIError represents an error returned by the renamed.to API.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
	Details    map[string]any
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("renamed api error (%d): %s", e.StatusCode, e.Message)
}

// AuthenticationError indicates the API key was rejected (HTTP 401).
type AuthenticationError struct{ *APIError }

// InsufficientCreditsError indicates the account has no credits left (HTTP 402).
type InsufficientCreditsError struct{ *APIError }

// ValidationError indicates a malformed request or payload (HTTP 400/422).
// Details carries the structured fields of the error response.
type ValidationError struct{ *APIError }

// RateLimitError indicates too many requests (HTTP 429). RetryAfter is set
// when the response carried a retryAfter field or Retry-After header.
type RateLimitError struct {
	*APIError
	RetryAfter *time.Duration
}

// NetworkError indicates a transport-level failure after retries were exhausted.
type NetworkError struct {
	Message string
	Err     error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("network error: %s: %v", e.Message, e.Err)
	}
	return "network error: " + e.Message
}

func (e *NetworkError) Unwrap() error { return e.Err }

// TimeoutError indicates a single request exceeded its deadline.
type TimeoutError struct {
	Message string
	Err     error
}

func (e *TimeoutError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("timeout: %s: %v", e.Message, e.Err)
	}
	return "timeout: " + e.Message
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// JobError indicates an asynchronous job failed, completed without a result,
// or exhausted its polling budget. JobID is set when known.
type JobError struct {
	Message string
	JobID   string
}

func (e *JobError) Error() string {
	if e.JobID != "" {
		return fmt.Sprintf("job %s: %s", e.JobID, e.Message)
	}
	return e.Message
}

// SerializationError indicates a response body did not parse as the expected shape.
type SerializationError struct {
	Message string
	Err     error
}

func (e *SerializationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode response: %s: %v", e.Message, e.Err)
	}
	return "decode response: " + e.Message
}

func (e *SerializationError) Unwrap() error { return e.Err }

// FileError indicates a local file could not be read while preparing an upload.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("read file %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("read upload: %v", e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// apiErrorFromResponse maps an HTTP status code and optional JSON body to a typed error.
func apiErrorFromResponse(status int, body []byte, headers http.Header) error {
	message, details := extractErrorDetail(status, body)

	base := &APIError{
		StatusCode: status,
		Message:    message,
		Body:       body,
		Details:    details,
	}

	switch status {
	case http.StatusUnauthorized:
		return &AuthenticationError{APIError: base}
	case http.StatusPaymentRequired:
		return &InsufficientCreditsError{APIError: base}
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return &ValidationError{APIError: base}
	case http.StatusTooManyRequests:
		return &RateLimitError{APIError: base, RetryAfter: retryAfterHint(details, headers)}
	default:
		return base
	}
}

func extractErrorDetail(status int, body []byte) (string, map[string]any) {
	details := map[string]any{}
	if len(body) == 0 {
		return fmt.Sprintf("HTTP %d", status), details
	}
	raw := strings.TrimSpace(string(body))

	var parsed map[string]any
	if err := json.Unmarshal(body, &parsed); err == nil {
		details = parsed
		if msg := findDetailString(parsed); msg != "" {
			return msg, details
		}
	}
	if raw != "" {
		return raw, details
	}
	return fmt.Sprintf("HTTP %d", status), details
}

func findDetailString(parsed map[string]any) string {
	for _, key := range []string{"error", "detail", "message"} {
		if v, ok := parsed[key]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

// retryAfterHint prefers the retryAfter field of the error body (seconds)
// and falls back to the Retry-After header.
func retryAfterHint(details map[string]any, headers http.Header) *time.Duration {
	if details != nil {
		if raw, ok := details["retryAfter"]; ok {
			if seconds, ok := raw.(float64); ok && seconds > 0 {
				d := time.Duration(seconds * float64(time.Second))
				return &d
			}
		}
	}
	return parseRetryAfter(headers)
}

func parseRetryAfter(headers http.Header) *time.Duration {
	if headers == nil {
		return nil
	}
	val := headers.Get("Retry-After")
	if val == "" {
		return nil
	}
	if seconds, err := strconv.Atoi(val); err == nil {
		d := time.Duration(seconds) * time.Second
		return &d
	}
	if t, err := http.ParseTime(val); err == nil {
		d := time.Until(t)
		return &d
	}
	return nil
}
