package renamed

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

// FileUpload represents a document to upload. Exactly one of Path or Reader
// must be provided. Filename is required with a Reader and optional with a
// Path (defaults to the basename).
type FileUpload struct {
	Path     string
	Reader   io.Reader
	Filename string
	MimeType string

	// Optional validation; when set to >0, files larger than this are rejected.
	MaxBytes int64
}

// read buffers the full file content so the request can be resent on retry,
// and resolves the effective filename and MIME type.
func (f FileUpload) read() ([]byte, string, string, error) {
	content, filename, err := f.load()
	if err != nil {
		return nil, "", "", err
	}
	if len(content) == 0 {
		return nil, "", "", &FileError{Path: f.Path, Err: fmt.Errorf("file is empty")}
	}
	if f.MaxBytes > 0 && int64(len(content)) > f.MaxBytes {
		return nil, "", "", &FileError{Path: f.Path, Err: fmt.Errorf("file exceeds max size of %d bytes", f.MaxBytes)}
	}

	mimeType := f.MimeType
	if mimeType == "" {
		mimeType = mimetype.Detect(content).String()
	}
	return content, filename, mimeType, nil
}

func (f FileUpload) load() ([]byte, string, error) {
	switch {
	case f.Reader != nil:
		content, err := io.ReadAll(f.Reader)
		if err != nil {
			return nil, "", &FileError{Err: err}
		}
		filename := f.Filename
		if filename == "" {
			filename = "upload"
		}
		return content, filename, nil

	case f.Path != "":
		file, err := os.Open(f.Path)
		if err != nil {
			return nil, "", &FileError{Path: f.Path, Err: err}
		}
		defer file.Close()

		info, err := file.Stat()
		if err != nil {
			return nil, "", &FileError{Path: f.Path, Err: err}
		}
		if info.IsDir() {
			return nil, "", &FileError{Path: f.Path, Err: fmt.Errorf("is a directory")}
		}

		content, err := io.ReadAll(file)
		if err != nil {
			return nil, "", &FileError{Path: f.Path, Err: err}
		}
		filename := f.Filename
		if filename == "" {
			filename = filepath.Base(f.Path)
		}
		return content, filename, nil

	default:
		return nil, "", &FileError{Err: fmt.Errorf("file upload requires Path or Reader")}
	}
}
