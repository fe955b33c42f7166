package renamed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

type httpClient struct {
	client    *http.Client
	cfg       Config
	auth      Auth
	logger    Logger
	redactMap map[string]struct{}
}

func newHTTPClient(cfg Config, auth Auth) *httpClient {
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.RetryBackoffBase == 0 {
		cfg.RetryBackoffBase = defaultRetryBackoffBase
	}
	if cfg.RequestIDHeader == "" {
		cfg.RequestIDHeader = defaultRequestIDHeader
	}
	if cfg.MaxIdleConns == 0 {
		cfg.MaxIdleConns = defaultMaxIdleConns
	}
	if cfg.MaxIdleConnsPerHost == 0 {
		cfg.MaxIdleConnsPerHost = defaultMaxIdlePerHost
	}
	if cfg.IdleConnTimeout == 0 {
		cfg.IdleConnTimeout = defaultIdleConnTimeout
	}
	if cfg.RedactHeaders == nil {
		cfg.RedactHeaders = []string{"Authorization", defaultRequestIDHeader}
	}

	client := cfg.HTTPClient
	if client == nil {
		transport := &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        cfg.MaxIdleConns,
			MaxIdleConnsPerHost: cfg.MaxIdleConnsPerHost,
			IdleConnTimeout:     cfg.IdleConnTimeout,
		}
		if cfg.ProxyURL != nil {
			transport.Proxy = http.ProxyURL(cfg.ProxyURL)
		}
		client = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		}
	}

	logger := cfg.Logger
	if cfg.Debug && logger == nil {
		logger = log.New(os.Stdout, "renamed-sdk ", log.LstdFlags)
	}

	redactions := map[string]struct{}{}
	for _, h := range cfg.RedactHeaders {
		redactions[strings.ToLower(h)] = struct{}{}
	}

	return &httpClient{
		cfg:       cfg,
		auth:      auth,
		client:    client,
		logger:    logger,
		redactMap: redactions,
	}
}

func (c *httpClient) close() {
	if t, ok := c.client.Transport.(interface{ CloseIdleConnections() }); ok {
		t.CloseIdleConnections()
	}
}

// resolveURL leaves absolute URLs untouched (job status URLs arrive fully
// qualified) and joins relative paths to the base with a single slash.
func (c *httpClient) resolveURL(path string, query map[string]string) (string, error) {
	full := path
	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		base := strings.TrimSuffix(c.cfg.BaseURL, "/")
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		full = base + path
	}
	if len(query) == 0 {
		return full, nil
	}
	u, err := url.Parse(full)
	if err != nil {
		return "", err
	}
	q := u.Query()
	for k, v := range query {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// doRequest performs one logical request. The body is buffered once so every
// attempt resends identical bytes. Only transport-level failures are retried;
// any received response, whatever its status, ends the loop.
func (c *httpClient) doRequest(ctx context.Context, method, path string, headers http.Header, body io.Reader, query map[string]string) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	fullURL, err := c.resolveURL(path, query)
	if err != nil {
		return nil, err
	}

	var bodyBytes []byte
	if body != nil {
		if b, ok := body.(*bytes.Buffer); ok {
			bodyBytes = b.Bytes()
		} else {
			bodyBytes, err = io.ReadAll(body)
			if err != nil {
				return nil, fmt.Errorf("read request body: %w", err)
			}
		}
	}

	var lastErr error
	maxAttempts := c.cfg.MaxRetries + 1

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var bodyReader io.Reader
		if bodyBytes != nil {
			bodyReader = bytes.NewReader(bodyBytes)
		}

		req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
		if err != nil {
			return nil, err
		}

		c.applyHeaders(req, headers)
		c.attachRequestID(req)
		c.runRequestHooks(req)
		c.logRequest(req, attempt)

		start := time.Now()
		resp, err := c.client.Do(req)
		duration := time.Since(start)

		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			if errors.Is(err, context.Canceled) {
				return nil, err
			}
			lastErr = err
			if attempt+1 >= maxAttempts {
				break
			}
			delay := c.backoffDuration(attempt)
			c.logf("retrying after error (attempt %d/%d, waiting %s): %v", attempt+1, maxAttempts, delay, err)
			if err := c.sleepWithContext(ctx, delay); err != nil {
				return nil, err
			}
			continue
		}

		respBody, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			return nil, &NetworkError{Message: "read response", Err: readErr}
		}

		c.logResponse(req, resp, duration)
		c.runResponseHooks(resp, respBody)

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return respBody, nil
		}

		return nil, apiErrorFromResponse(resp.StatusCode, respBody, resp.Header)
	}

	return nil, wrapTransportErr(lastErr)
}

// wrapTransportErr classifies an exhausted transport failure.
func wrapTransportErr(err error) error {
	if err == nil {
		return &NetworkError{Message: "request failed"}
	}
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		return &TimeoutError{Message: "request timed out", Err: err}
	}
	return &NetworkError{Message: "request failed", Err: err}
}

// backoffDuration returns the delay after failed attempt number `attempt`
// (0-indexed): RetryBackoffBase * 2^attempt.
func (c *httpClient) backoffDuration(attempt int) time.Duration {
	return c.cfg.RetryBackoffBase * (1 << attempt)
}

func (c *httpClient) sleepWithContext(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (c *httpClient) logf(format string, args ...any) {
	if c.logger == nil || !c.cfg.Debug {
		return
	}
	c.logger.Printf(format, args...)
}

func (c *httpClient) logRequest(req *http.Request, attempt int) {
	if c.logger == nil || !c.cfg.Debug {
		return
	}
	c.logger.Printf("[request] %s %s attempt=%d headers=%v", req.Method, extractPath(req.URL.String()), attempt+1, c.redactedHeaders(req.Header))
}

func (c *httpClient) logResponse(req *http.Request, resp *http.Response, duration time.Duration) {
	if c.logger == nil || !c.cfg.Debug {
		return
	}
	c.logger.Printf("[response] %s %s status=%d duration=%dms", req.Method, extractPath(req.URL.String()), resp.StatusCode, duration.Milliseconds())
}

// redactedHeaders clones h for logging. Authorization is always rewritten to
// the masked key; RedactHeaders adds further headers to blank out.
func (c *httpClient) redactedHeaders(h http.Header) http.Header {
	cloned := cloneHeaders(h)
	for k := range cloned {
		if strings.EqualFold(k, "Authorization") {
			cloned.Set(k, "Bearer "+maskAPIKey(c.auth.key()))
			continue
		}
		if _, ok := c.redactMap[strings.ToLower(k)]; ok {
			cloned.Set(k, "[redacted]")
		}
	}
	return cloned
}

func (c *httpClient) applyHeaders(req *http.Request, headers http.Header) {
	for k, vals := range c.auth.Headers() {
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}
	for k, vals := range c.cfg.ExtraHeaders {
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}
	for k, vals := range headers {
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}
}

func (c *httpClient) attachRequestID(req *http.Request) {
	if c.cfg.RequestIDHeader == "" {
		return
	}
	if req.Header.Get(c.cfg.RequestIDHeader) != "" {
		return
	}
	switch {
	case c.cfg.DefaultRequestID != "":
		req.Header.Set(c.cfg.RequestIDHeader, c.cfg.DefaultRequestID)
	case c.cfg.AutoRequestID:
		req.Header.Set(c.cfg.RequestIDHeader, "renamed-"+uuid.NewString())
	}
}

func (c *httpClient) runRequestHooks(req *http.Request) {
	for i, hook := range c.cfg.BeforeRequest {
		func() {
			defer func() {
				if r := recover(); r != nil {
					c.logf("request hook[%d] panic: %v", i, r)
				}
			}()
			hook(req)
		}()
	}
}

func (c *httpClient) runResponseHooks(resp *http.Response, body []byte) {
	for i, hook := range c.cfg.AfterResponse {
		func() {
			defer func() {
				if r := recover(); r != nil {
					c.logf("response hook[%d] panic: %v", i, r)
				}
			}()
			hook(resp, body)
		}()
	}
}

func decodeJSON(data []byte, out any) error {
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &SerializationError{Message: "unexpected response shape", Err: err}
	}
	return nil
}

func (c *httpClient) get(path string, query map[string]string, out any) error {
	return c.getWithContext(context.Background(), path, query, out)
}

func (c *httpClient) getWithContext(ctx context.Context, path string, query map[string]string, out any) error {
	data, err := c.doRequest(ctx, http.MethodGet, path, http.Header{}, nil, query)
	if err != nil {
		return err
	}
	return decodeJSON(data, out)
}

func (c *httpClient) getBytes(path string, query map[string]string) ([]byte, error) {
	return c.getBytesWithContext(context.Background(), path, query)
}

func (c *httpClient) getBytesWithContext(ctx context.Context, path string, query map[string]string) ([]byte, error) {
	return c.doRequest(ctx, http.MethodGet, path, http.Header{}, nil, query)
}

// postUpload sends a multipart form with the file under the "file" field and
// option values as plain fields. The whole form is buffered up front so the
// retry loop can resend it.
func (c *httpClient) postUpload(ctx context.Context, path string, upload FileUpload, fields map[string]string, out any) error {
	content, filename, mimeType, err := upload.read()
	if err != nil {
		return err
	}

	c.logf("upload %s (%s, %s)", filename, formatBytes(int64(len(content))), mimeType)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	h.Set("Content-Type", mimeType)
	part, err := writer.CreatePart(h)
	if err != nil {
		return err
	}
	if _, err := part.Write(content); err != nil {
		return err
	}

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return err
		}
	}

	if err := writer.Close(); err != nil {
		return err
	}

	headers := http.Header{}
	headers.Set("Content-Type", writer.FormDataContentType())
	data, err := c.doRequest(ctx, http.MethodPost, path, headers, body, nil)
	if err != nil {
		return err
	}
	return decodeJSON(data, out)
}
