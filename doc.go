// Package renamed is the official Go SDK for the renamed.to API.
//
// # Installation
//
//	go get github.com/renamed-to/renamed-golang
//
// # Quick Start
//
// Create a client and rename a document:
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//		"os"
//
//		renamed "github.com/renamed-to/renamed-golang"
//	)
//
//	func main() {
//		client, err := renamed.NewClient(
//			os.Getenv("RENAMED_API_KEY"),
//			"", // baseURL (optional)
//			0,  // timeout (0 = default 30s)
//			0,  // retries (0 = default 2)
//		)
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer client.Close()
//
//		result, err := client.Documents.Rename("invoice.pdf", nil)
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println(result.SuggestedFilename)
//	}
//
// PDF splitting runs asynchronously on the server. It returns an AsyncJob
// that is polled until completion:
//
//	job, err := client.Documents.PDFSplit("multi-page.pdf", &renamed.PdfSplitOptions{
//		Mode: renamed.SplitModeAuto,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := job.Wait(func(status *renamed.JobStatusResponse) {
//		if status.Progress != nil {
//			fmt.Printf("progress: %d%%\n", *status.Progress)
//		}
//	})
//
// # Core Features
//
//   - AI filename suggestion for documents and images
//   - PDF splitting with async job polling and progress callbacks
//   - Structured data extraction via prompt or JSON schema
//   - Automatic retry of transport failures with exponential backoff
//   - Context-aware operations for cancellation support
//   - Request/response hooks for monitoring
//   - Debug logging with credential masking
//
// # Environment Variables
//
//   - RENAMED_API_KEY: Your renamed.to API key
//   - RENAMED_BASE_URL: Optional API base URL (defaults to https://www.renamed.to/api/v1)
//   - RENAMED_TIMEOUT: Optional request timeout (defaults to 30s)
//   - RENAMED_MAX_RETRIES: Optional max retries (defaults to 2)
//   - RENAMED_DEBUG: Enable debug logging
//
// # Links
//
//   - API Docs: https://www.renamed.to/docs
//   - Website: https://www.renamed.to
package renamed
