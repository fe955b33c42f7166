package renamed

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileUploadFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "invoice.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4 content"), 0o600); err != nil {
		t.Fatal(err)
	}

	content, filename, mimeType, err := FileUpload{Path: path}.read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(content) != "%PDF-1.4 content" {
		t.Fatalf("unexpected content: %q", content)
	}
	if filename != "invoice.pdf" {
		t.Fatalf("unexpected filename: %s", filename)
	}
	if !strings.HasPrefix(mimeType, "application/pdf") {
		t.Fatalf("expected PDF mime type, got %s", mimeType)
	}
}

func TestFileUploadFromReader(t *testing.T) {
	content, filename, _, err := FileUpload{Reader: strings.NewReader("plain text body")}.read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(content) != "plain text body" {
		t.Fatalf("unexpected content: %q", content)
	}
	if filename != "upload" {
		t.Fatalf("expected default filename, got %s", filename)
	}
}

func TestFileUploadExplicitMimeType(t *testing.T) {
	_, _, mimeType, err := FileUpload{
		Reader:   strings.NewReader("data"),
		MimeType: "application/x-custom",
	}.read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if mimeType != "application/x-custom" {
		t.Fatalf("explicit mime type not honored: %s", mimeType)
	}
}

func TestFileUploadErrors(t *testing.T) {
	dir := t.TempDir()
	emptyPath := filepath.Join(dir, "empty.pdf")
	if err := os.WriteFile(emptyPath, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	bigPath := filepath.Join(dir, "big.pdf")
	if err := os.WriteFile(bigPath, []byte("0123456789"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		upload FileUpload
	}{
		{name: "MissingFile", upload: FileUpload{Path: filepath.Join(dir, "nope.pdf")}},
		{name: "Directory", upload: FileUpload{Path: dir}},
		{name: "EmptyFile", upload: FileUpload{Path: emptyPath}},
		{name: "TooLarge", upload: FileUpload{Path: bigPath, MaxBytes: 5}},
		{name: "NoSource", upload: FileUpload{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := tt.upload.read()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var fileErr *FileError
			if !errors.As(err, &fileErr) {
				t.Fatalf("expected *FileError, got %T", err)
			}
		})
	}
}
