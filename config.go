package renamed

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Logger is the minimal logging interface supported by the SDK.
type Logger interface {
	Printf(format string, v ...any)
}

// RequestHook allows callers to inspect or mutate requests before they are sent.
type RequestHook func(*http.Request)

// ResponseHook allows callers to inspect responses (raw bytes included).
type ResponseHook func(*http.Response, []byte)

// Config holds SDK configuration.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration

	// MaxRetries is the number of retries after the initial attempt for
	// transport-level failures. Responses are never retried.
	MaxRetries int

	// RetryBackoffBase is the unit delay doubled before each retry.
	RetryBackoffBase time.Duration

	// PollInterval and MaxPollAttempts are the defaults applied to async
	// jobs created by this client.
	PollInterval    time.Duration
	MaxPollAttempts int

	Debug bool

	ExtraHeaders http.Header
	ProxyURL     *url.URL

	// HTTPClient overrides the built-in transport when set.
	HTTPClient *http.Client

	RequestIDHeader  string
	DefaultRequestID string
	AutoRequestID    bool

	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration

	Logger        Logger
	RedactHeaders []string

	BeforeRequest []RequestHook
	AfterResponse []ResponseHook
}

// ConfigParams provides optional overrides for building a Config.
type ConfigParams struct {
	APIKey         string
	BaseURL        string
	Timeout        time.Duration
	TimeoutSeconds float64

	// MaxRetries overrides the retry count when set; &0 disables retries.
	MaxRetries *int

	Debug *bool
	ExtraHeaders   http.Header
	ProxyURL       string
	HTTPClient     *http.Client

	RequestID       string
	AutoRequestID   *bool
	RequestIDHeader string

	RetryBackoffBase time.Duration
	PollInterval     time.Duration
	MaxPollAttempts  int

	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration

	Logger        Logger
	RedactHeaders []string

	BeforeRequest []RequestHook
	AfterResponse []ResponseHook
}

const (
	defaultBaseURL          = "https://www.renamed.to/api/v1"
	defaultTimeout          = 30 * time.Second
	defaultMaxRetries       = 2
	defaultRetryBackoffBase = 100 * time.Millisecond
	defaultPollInterval     = 2 * time.Second
	defaultMaxPollAttempts  = 150 // 5 minutes at 2s intervals
	defaultMaxIdleConns     = 100
	defaultMaxIdlePerHost   = 10
	defaultIdleConnTimeout  = 90 * time.Second
	defaultRequestIDHeader  = "X-Request-ID"
)

// LoadConfig builds a Config from parameters or environment variables.
// Environment fallbacks:
//
//	RENAMED_API_KEY, RENAMED_BASE_URL, RENAMED_TIMEOUT, RENAMED_MAX_RETRIES,
//	RENAMED_DEBUG, RENAMED_PROXY, RENAMED_EXTRA_HEADERS, RENAMED_REQUEST_ID,
//	RENAMED_AUTO_REQUEST_ID, RENAMED_REQUEST_ID_HEADER,
//	RENAMED_RETRY_BACKOFF_MS, RENAMED_POLL_INTERVAL,
//	RENAMED_MAX_POLL_ATTEMPTS, RENAMED_MAX_IDLE_CONNS,
//	RENAMED_MAX_IDLE_CONNS_PER_HOST, RENAMED_IDLE_CONN_TIMEOUT.
func LoadConfig(apiKey, baseURL string, timeoutSeconds float64, maxRetries int) (Config, error) {
	params := ConfigParams{
		APIKey:         apiKey,
		BaseURL:        baseURL,
		TimeoutSeconds: timeoutSeconds,
	}
	// 0 keeps the default here; use ConfigParams for an explicit zero.
	if maxRetries != 0 {
		params.MaxRetries = &maxRetries
	}
	return LoadConfigWithParams(params)
}

// LoadConfigWithParams is an extended constructor that accepts structured options.
func LoadConfigWithParams(params ConfigParams) (Config, error) {
	envIdleTimeout, err := parseEnvDuration("RENAMED_IDLE_CONN_TIMEOUT", time.Second)
	if err != nil {
		return Config{}, err
	}

	envMaxRetries, envMaxRetriesSet, err := parseEnvInt("RENAMED_MAX_RETRIES")
	if err != nil {
		return Config{}, err
	}
	envMaxPollAttempts, envMaxPollAttemptsSet, err := parseEnvInt("RENAMED_MAX_POLL_ATTEMPTS")
	if err != nil {
		return Config{}, err
	}
	envMaxIdleConns, envMaxIdleConnsSet, err := parseEnvInt("RENAMED_MAX_IDLE_CONNS")
	if err != nil {
		return Config{}, err
	}
	envMaxIdlePerHost, envMaxIdlePerHostSet, err := parseEnvInt("RENAMED_MAX_IDLE_CONNS_PER_HOST")
	if err != nil {
		return Config{}, err
	}

	maxRetries := defaultMaxRetries
	if envMaxRetriesSet {
		maxRetries = envMaxRetries
	}
	if params.MaxRetries != nil {
		maxRetries = *params.MaxRetries
	}

	maxPollAttempts := defaultMaxPollAttempts
	if envMaxPollAttemptsSet {
		maxPollAttempts = envMaxPollAttempts
	}
	if params.MaxPollAttempts != 0 {
		maxPollAttempts = params.MaxPollAttempts
	}

	maxIdleConns := defaultMaxIdleConns
	if envMaxIdleConnsSet {
		maxIdleConns = envMaxIdleConns
	}
	if params.MaxIdleConns != 0 {
		maxIdleConns = params.MaxIdleConns
	}

	maxIdlePerHost := defaultMaxIdlePerHost
	if envMaxIdlePerHostSet {
		maxIdlePerHost = envMaxIdlePerHost
	}
	if params.MaxIdleConnsPerHost != 0 {
		maxIdlePerHost = params.MaxIdleConnsPerHost
	}

	cfg := Config{
		APIKey:              firstNonEmpty(params.APIKey, os.Getenv("RENAMED_API_KEY")),
		BaseURL:             strings.TrimSuffix(firstNonEmpty(params.BaseURL, os.Getenv("RENAMED_BASE_URL"), defaultBaseURL), "/"),
		MaxRetries:          maxRetries,
		RetryBackoffBase:    defaultRetryBackoffBase,
		PollInterval:        defaultPollInterval,
		MaxPollAttempts:     maxPollAttempts,
		ExtraHeaders:        cloneHeaders(params.ExtraHeaders),
		HTTPClient:          params.HTTPClient,
		RequestIDHeader:     firstNonEmpty(params.RequestIDHeader, os.Getenv("RENAMED_REQUEST_ID_HEADER"), defaultRequestIDHeader),
		DefaultRequestID:    firstNonEmpty(params.RequestID, os.Getenv("RENAMED_REQUEST_ID")),
		MaxIdleConns:        maxIdleConns,
		MaxIdleConnsPerHost: maxIdlePerHost,
		IdleConnTimeout:     firstNonZeroDuration(params.IdleConnTimeout, envIdleTimeout, defaultIdleConnTimeout),
		Logger:              params.Logger,
		RedactHeaders:       params.RedactHeaders,
		BeforeRequest:       params.BeforeRequest,
		AfterResponse:       params.AfterResponse,
		AutoRequestID:       true,
	}

	if cfg.ExtraHeaders == nil {
		cfg.ExtraHeaders = http.Header{}
	}
	if cfg.RedactHeaders == nil {
		cfg.RedactHeaders = []string{"Authorization", "X-Request-ID"}
	}

	if params.Debug != nil {
		cfg.Debug = *params.Debug
	} else if env := os.Getenv("RENAMED_DEBUG"); env != "" {
		val, err := strconv.ParseBool(env)
		if err != nil {
			return Config{}, fmt.Errorf("parse RENAMED_DEBUG: %w", err)
		}
		cfg.Debug = val
	}

	if params.Timeout > 0 {
		cfg.Timeout = params.Timeout
	} else if params.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(params.TimeoutSeconds * float64(time.Second))
	} else if envTimeout, err := parseEnvDuration("RENAMED_TIMEOUT", time.Second); err != nil {
		return Config{}, err
	} else if envTimeout > 0 {
		cfg.Timeout = envTimeout
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Timeout < 0 {
		return Config{}, fmt.Errorf("timeout must be non-negative")
	}

	if env := os.Getenv("RENAMED_EXTRA_HEADERS"); env != "" {
		envHeaders, err := parseHeadersEnv(env)
		if err != nil {
			return Config{}, err
		}
		for k, vals := range envHeaders {
			for _, v := range vals {
				cfg.ExtraHeaders.Add(k, v)
			}
		}
	}

	proxyURL := params.ProxyURL
	if proxyURL == "" {
		proxyURL = os.Getenv("RENAMED_PROXY")
	}
	if proxyURL != "" {
		parsed, err := url.Parse(proxyURL)
		if err != nil {
			return Config{}, fmt.Errorf("parse RENAMED_PROXY: %w", err)
		}
		cfg.ProxyURL = parsed
	}

	if params.AutoRequestID != nil {
		cfg.AutoRequestID = *params.AutoRequestID
	} else if env := os.Getenv("RENAMED_AUTO_REQUEST_ID"); env != "" {
		val, err := strconv.ParseBool(env)
		if err != nil {
			return Config{}, fmt.Errorf("parse RENAMED_AUTO_REQUEST_ID: %w", err)
		}
		cfg.AutoRequestID = val
	}

	if params.RetryBackoffBase > 0 {
		cfg.RetryBackoffBase = params.RetryBackoffBase
	} else if val, err := parseEnvDuration("RENAMED_RETRY_BACKOFF_MS", time.Millisecond); err != nil {
		return Config{}, err
	} else if val > 0 {
		cfg.RetryBackoffBase = val
	}

	if params.PollInterval > 0 {
		cfg.PollInterval = params.PollInterval
	} else if val, err := parseEnvDuration("RENAMED_POLL_INTERVAL", time.Second); err != nil {
		return Config{}, err
	} else if val > 0 {
		cfg.PollInterval = val
	}

	if cfg.APIKey == "" {
		return Config{}, ErrMissingAPIKey
	}
	if cfg.MaxRetries < 0 {
		return Config{}, fmt.Errorf("max retries must be >= 0")
	}
	if cfg.RetryBackoffBase <= 0 {
		return Config{}, fmt.Errorf("retry backoff base must be positive")
	}
	if cfg.PollInterval <= 0 {
		return Config{}, fmt.Errorf("poll interval must be positive")
	}
	if cfg.MaxPollAttempts <= 0 {
		return Config{}, fmt.Errorf("max poll attempts must be positive")
	}
	if cfg.MaxIdleConns < 0 {
		return Config{}, fmt.Errorf("max idle conns must be >= 0")
	}
	if cfg.MaxIdleConnsPerHost < 0 {
		return Config{}, fmt.Errorf("max idle conns per host must be >= 0")
	}
	if cfg.IdleConnTimeout < 0 {
		return Config{}, fmt.Errorf("idle connection timeout must be non-negative")
	}

	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstNonZeroDuration(values ...time.Duration) time.Duration {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}

func parseEnvInt(env string) (int, bool, error) {
	val, ok := os.LookupEnv(env)
	if !ok || val == "" {
		return 0, false, nil
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return 0, true, fmt.Errorf("parse %s: %w", env, err)
	}
	return parsed, true, nil
}

func parseEnvDuration(env string, numericUnit time.Duration) (time.Duration, error) {
	val := os.Getenv(env)
	if val == "" {
		return 0, nil
	}
	if duration, err := time.ParseDuration(val); err == nil {
		return duration, nil
	}
	seconds, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", env, err)
	}
	return time.Duration(seconds * float64(numericUnit)), nil
}

func parseHeadersEnv(val string) (http.Header, error) {
	headers := http.Header{}
	if val == "" {
		return headers, nil
	}
	for _, entry := range strings.FieldsFunc(val, func(r rune) bool { return r == ';' || r == ',' || r == '\n' }) {
		if entry == "" {
			continue
		}
		sep := ":"
		if strings.Contains(entry, "=") {
			sep = "="
		}
		parts := strings.SplitN(entry, sep, 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid header entry %q", entry)
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if key == "" || value == "" {
			return nil, fmt.Errorf("invalid header entry %q", entry)
		}
		headers.Add(key, value)
	}
	return headers, nil
}

func cloneHeaders(h http.Header) http.Header {
	if h == nil {
		return http.Header{}
	}
	clone := http.Header{}
	for k, vals := range h {
		clone[k] = append([]string(nil), vals...)
	}
	return clone
}
