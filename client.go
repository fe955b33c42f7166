package renamed

// RenamedClient is the main entrypoint.
type RenamedClient struct {
	Config Config
	auth   Auth
	http   *httpClient

	Documents *DocumentsAPI
	Account   *AccountAPI
}

// NewClient constructs a RenamedClient using parameters or environment fallbacks.
func NewClient(apiKey, baseURL string, timeoutSeconds float64, maxRetries int) (*RenamedClient, error) {
	cfg, err := LoadConfig(apiKey, baseURL, timeoutSeconds, maxRetries)
	if err != nil {
		return nil, err
	}
	return NewClientWithConfig(cfg)
}

// NewClientWithParams constructs a RenamedClient from structured configuration parameters.
func NewClientWithParams(params ConfigParams) (*RenamedClient, error) {
	cfg, err := LoadConfigWithParams(params)
	if err != nil {
		return nil, err
	}
	return NewClientWithConfig(cfg)
}

// NewClientWithConfig builds a RenamedClient from a fully parsed Config.
func NewClientWithConfig(cfg Config) (*RenamedClient, error) {
	auth := newAuth(cfg)
	httpClient := newHTTPClient(cfg, auth)

	return &RenamedClient{
		Config:    cfg,
		auth:      auth,
		http:      httpClient,
		Documents: newDocumentsAPI(cfg, httpClient),
		Account:   newAccountAPI(httpClient),
	}, nil
}

// Job reconstructs an AsyncJob from a previously obtained status URL, e.g.
// one persisted across process restarts.
func (c *RenamedClient) Job(statusURL string) *AsyncJob {
	return newAsyncJob(c.http, statusURL)
}

// Close releases HTTP resources.
func (c *RenamedClient) Close() {
	if c == nil || c.http == nil {
		return
	}
	c.http.close()
}
