package renamed

import (
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Skipf("unable to start test server listener: %v", err)
	}
	server := httptest.NewUnstartedServer(handler)
	server.Listener = ln
	server.Start()
	return server
}

func testConfig(baseURL string) Config {
	return Config{
		APIKey:           "rt_test_key_1234",
		BaseURL:          baseURL,
		Timeout:          time.Second,
		RetryBackoffBase: time.Millisecond,
		PollInterval:     time.Millisecond,
		MaxPollAttempts:  defaultMaxPollAttempts,
	}
}

func newTestHTTPClient(baseURL string) *httpClient {
	cfg := testConfig(baseURL)
	return newHTTPClient(cfg, newAuth(cfg))
}

// roundTripperFunc adapts a function to http.RoundTripper for transport-level
// failure injection.
type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
