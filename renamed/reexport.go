package renamed

import root "github.com/renamed-to/renamed-golang"

type (
	// Core client/config.
	RenamedClient = root.RenamedClient
	Config        = root.Config
	ConfigParams  = root.ConfigParams
	Logger        = root.Logger

	RequestHook  = root.RequestHook
	ResponseHook = root.ResponseHook

	// API surfaces.
	Auth         = root.Auth
	DocumentsAPI = root.DocumentsAPI
	AccountAPI   = root.AccountAPI

	// Jobs.
	AsyncJob         = root.AsyncJob
	ProgressCallback = root.ProgressCallback
	JobStatus        = root.JobStatus

	// Models/results.
	RenameResult      = root.RenameResult
	RenameOptions     = root.RenameOptions
	SplitMode         = root.SplitMode
	PdfSplitOptions   = root.PdfSplitOptions
	SplitDocument     = root.SplitDocument
	PdfSplitResult    = root.PdfSplitResult
	JobStatusResponse = root.JobStatusResponse
	ExtractOptions    = root.ExtractOptions
	ExtractResult     = root.ExtractResult
	User              = root.User
	Team              = root.Team

	// File uploads.
	FileUpload = root.FileUpload

	// Errors.
	APIError                 = root.APIError
	AuthenticationError      = root.AuthenticationError
	InsufficientCreditsError = root.InsufficientCreditsError
	ValidationError          = root.ValidationError
	RateLimitError           = root.RateLimitError
	NetworkError             = root.NetworkError
	TimeoutError             = root.TimeoutError
	JobError                 = root.JobError
	SerializationError       = root.SerializationError
	FileError                = root.FileError
)

const (
	SplitModeAuto  = root.SplitModeAuto
	SplitModePages = root.SplitModePages
	SplitModeBlank = root.SplitModeBlank

	JobStatusPending    = root.JobStatusPending
	JobStatusProcessing = root.JobStatusProcessing
	JobStatusCompleted  = root.JobStatusCompleted
	JobStatusFailed     = root.JobStatusFailed
)

var ErrMissingAPIKey = root.ErrMissingAPIKey

func NewClient(apiKey, baseURL string, timeoutSeconds float64, maxRetries int) (*RenamedClient, error) {
	return root.NewClient(apiKey, baseURL, timeoutSeconds, maxRetries)
}

func NewClientWithParams(params ConfigParams) (*RenamedClient, error) {
	return root.NewClientWithParams(params)
}

func NewClientWithConfig(cfg Config) (*RenamedClient, error) {
	return root.NewClientWithConfig(cfg)
}

func LoadConfig(apiKey, baseURL string, timeoutSeconds float64, maxRetries int) (Config, error) {
	return root.LoadConfig(apiKey, baseURL, timeoutSeconds, maxRetries)
}

func LoadConfigWithParams(params ConfigParams) (Config, error) {
	return root.LoadConfigWithParams(params)
}
