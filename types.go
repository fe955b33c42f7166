package renamed

// RenameResult is the outcome of a rename operation.
type RenameResult struct {
	OriginalFilename  string  `json:"originalFilename"`
	SuggestedFilename string  `json:"suggestedFilename"`
	FolderPath        string  `json:"folderPath,omitempty"`
	Confidence        float64 `json:"confidence"`
}

// RenameOptions configures the rename operation.
type RenameOptions struct {
	// Template is a custom template for filename generation.
	Template string
}

// SplitMode selects how a PDF is split into documents.
type SplitMode string

const (
	// SplitModeAuto uses AI to detect document boundaries.
	SplitModeAuto SplitMode = "auto"
	// SplitModePages splits every N pages.
	SplitModePages SplitMode = "pages"
	// SplitModeBlank splits at blank pages.
	SplitModeBlank SplitMode = "blank"
)

// PdfSplitOptions configures the PDF split operation.
type PdfSplitOptions struct {
	Mode SplitMode

	// PagesPerSplit is the number of pages per document in pages mode.
	PagesPerSplit int
}

// JobStatus is the wire status of an asynchronous job.
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

func (s JobStatus) String() string {
	return string(s)
}

// IsTerminal reports whether no further status transition can occur.
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// SplitDocument is a single document produced by a PDF split.
type SplitDocument struct {
	Index       int    `json:"index"`
	Filename    string `json:"filename"`
	Pages       string `json:"pages"`
	DownloadURL string `json:"downloadUrl"`
	Size        int64  `json:"size"`
}

// PdfSplitResult is the final payload of a PDF split job.
type PdfSplitResult struct {
	OriginalFilename string          `json:"originalFilename"`
	Documents        []SplitDocument `json:"documents"`
	TotalPages       int             `json:"totalPages"`
}

// JobStatusResponse is a point-in-time snapshot of an asynchronous job.
// Result is present only when Status is JobStatusCompleted.
type JobStatusResponse struct {
	JobID    string          `json:"jobId"`
	Status   JobStatus       `json:"status"`
	Progress *int            `json:"progress,omitempty"`
	Error    string          `json:"error,omitempty"`
	Result   *PdfSplitResult `json:"result,omitempty"`
}

// ExtractOptions configures structured data extraction.
type ExtractOptions struct {
	// Schema is a JSON schema describing the fields to extract.
	Schema map[string]any

	// Prompt is a natural language description of what to extract.
	Prompt string
}

// ExtractResult is the outcome of a data extraction.
type ExtractResult struct {
	Data       map[string]any `json:"data"`
	Confidence float64        `json:"confidence"`
}

// Team holds team metadata on a user profile.
type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// User is the authenticated user profile, including remaining credits.
type User struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	Credits int    `json:"credits,omitempty"`
	Team    *Team  `json:"team,omitempty"`
}

// submissionResponse is returned by endpoints that start an async job.
type submissionResponse struct {
	StatusURL string `json:"statusUrl"`
}
