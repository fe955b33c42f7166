package renamed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
)

// DocumentsAPI groups the document-processing operations.
type DocumentsAPI struct {
	cfg        Config
	httpClient *httpClient
}

func newDocumentsAPI(cfg Config, httpClient *httpClient) *DocumentsAPI {
	return &DocumentsAPI{cfg: cfg, httpClient: httpClient}
}

// Rename uploads a file and returns an AI-suggested filename.
func (d *DocumentsAPI) Rename(file string, opts *RenameOptions) (*RenameResult, error) {
	return d.RenameWithContext(context.Background(), file, opts)
}

// RenameWithContext uploads a file for renaming with a caller-supplied context.
func (d *DocumentsAPI) RenameWithContext(ctx context.Context, file string, opts *RenameOptions) (*RenameResult, error) {
	return d.rename(ctx, FileUpload{Path: file}, opts)
}

// RenameReader renames a document read from r. A filename is required so the
// service can infer the format.
func (d *DocumentsAPI) RenameReader(r io.Reader, filename string, opts *RenameOptions) (*RenameResult, error) {
	return d.RenameReaderWithContext(context.Background(), r, filename, opts)
}

// RenameReaderWithContext is RenameReader with a caller-supplied context.
func (d *DocumentsAPI) RenameReaderWithContext(ctx context.Context, r io.Reader, filename string, opts *RenameOptions) (*RenameResult, error) {
	return d.rename(ctx, FileUpload{Reader: r, Filename: filename}, opts)
}

func (d *DocumentsAPI) rename(ctx context.Context, upload FileUpload, opts *RenameOptions) (*RenameResult, error) {
	fields := map[string]string{}
	if opts != nil && opts.Template != "" {
		fields["template"] = opts.Template
	}
	var result RenameResult
	if err := d.httpClient.postUpload(ctx, "/rename", upload, fields, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// PDFSplit submits a PDF for splitting and returns an AsyncJob handle for
// the server-side work.
func (d *DocumentsAPI) PDFSplit(file string, opts *PdfSplitOptions) (*AsyncJob, error) {
	return d.PDFSplitWithContext(context.Background(), file, opts)
}

// PDFSplitWithContext submits a PDF split with a caller-supplied context.
func (d *DocumentsAPI) PDFSplitWithContext(ctx context.Context, file string, opts *PdfSplitOptions) (*AsyncJob, error) {
	return d.pdfSplit(ctx, FileUpload{Path: file}, opts)
}

// PDFSplitReader submits a PDF read from r for splitting.
func (d *DocumentsAPI) PDFSplitReader(r io.Reader, filename string, opts *PdfSplitOptions) (*AsyncJob, error) {
	return d.PDFSplitReaderWithContext(context.Background(), r, filename, opts)
}

// PDFSplitReaderWithContext is PDFSplitReader with a caller-supplied context.
func (d *DocumentsAPI) PDFSplitReaderWithContext(ctx context.Context, r io.Reader, filename string, opts *PdfSplitOptions) (*AsyncJob, error) {
	return d.pdfSplit(ctx, FileUpload{Reader: r, Filename: filename}, opts)
}

func (d *DocumentsAPI) pdfSplit(ctx context.Context, upload FileUpload, opts *PdfSplitOptions) (*AsyncJob, error) {
	fields := map[string]string{}
	if opts != nil {
		if opts.Mode != "" {
			fields["mode"] = string(opts.Mode)
		}
		if opts.PagesPerSplit > 0 {
			fields["pagesPerSplit"] = fmt.Sprintf("%d", opts.PagesPerSplit)
		}
	}

	var resp submissionResponse
	if err := d.httpClient.postUpload(ctx, "/pdf-split", upload, fields, &resp); err != nil {
		return nil, err
	}
	if resp.StatusURL == "" {
		return nil, &SerializationError{Message: "submission response missing statusUrl"}
	}
	return newAsyncJob(d.httpClient, resp.StatusURL), nil
}

// Extract pulls structured data out of a document, driven by a prompt, a
// JSON schema, or both.
func (d *DocumentsAPI) Extract(file string, opts *ExtractOptions) (*ExtractResult, error) {
	return d.ExtractWithContext(context.Background(), file, opts)
}

// ExtractWithContext extracts structured data with a caller-supplied context.
func (d *DocumentsAPI) ExtractWithContext(ctx context.Context, file string, opts *ExtractOptions) (*ExtractResult, error) {
	return d.extract(ctx, FileUpload{Path: file}, opts)
}

// ExtractReader extracts structured data from a document read from r.
func (d *DocumentsAPI) ExtractReader(r io.Reader, filename string, opts *ExtractOptions) (*ExtractResult, error) {
	return d.ExtractReaderWithContext(context.Background(), r, filename, opts)
}

// ExtractReaderWithContext is ExtractReader with a caller-supplied context.
func (d *DocumentsAPI) ExtractReaderWithContext(ctx context.Context, r io.Reader, filename string, opts *ExtractOptions) (*ExtractResult, error) {
	return d.extract(ctx, FileUpload{Reader: r, Filename: filename}, opts)
}

func (d *DocumentsAPI) extract(ctx context.Context, upload FileUpload, opts *ExtractOptions) (*ExtractResult, error) {
	fields := map[string]string{}
	if opts != nil {
		if opts.Prompt != "" {
			fields["prompt"] = opts.Prompt
		}
		if opts.Schema != nil {
			schemaJSON, err := json.Marshal(opts.Schema)
			if err != nil {
				return nil, fmt.Errorf("encode schema: %w", err)
			}
			fields["schema"] = string(schemaJSON)
		}
	}

	var result ExtractResult
	if err := d.httpClient.postUpload(ctx, "/extract", upload, fields, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Download fetches a produced document (e.g. a split part) from its
// download URL with authentication.
func (d *DocumentsAPI) Download(url string) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("download url cannot be empty")
	}
	return d.httpClient.getBytes(url, nil)
}

// DownloadWithContext is Download with a caller-supplied context.
func (d *DocumentsAPI) DownloadWithContext(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("download url cannot be empty")
	}
	return d.httpClient.getBytesWithContext(ctx, url, nil)
}
