package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	renamed "github.com/renamed-to/renamed-golang"
)

func newSplitCommand() *cobra.Command {
	var mode string
	var pagesPerSplit int
	var outputDir string

	cmd := &cobra.Command{
		Use:   "split <file.pdf>",
		Short: "Split a multi-document PDF into separate files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			defer client.Close()

			job, err := client.Documents.PDFSplitWithContext(cmd.Context(), args[0], &renamed.PdfSplitOptions{
				Mode:          renamed.SplitMode(mode),
				PagesPerSplit: pagesPerSplit,
			})
			if err != nil {
				return err
			}

			result, err := job.WaitContext(cmd.Context(), func(status *renamed.JobStatusResponse) {
				if status.Progress != nil {
					fmt.Printf("\rprogress: %d%%", *status.Progress)
				}
			})
			if err != nil {
				fmt.Println()
				return err
			}
			fmt.Printf("\nsplit into %d documents (%d pages total)\n", len(result.Documents), result.TotalPages)

			if err := os.MkdirAll(outputDir, 0o755); err != nil {
				return err
			}
			for _, doc := range result.Documents {
				content, err := client.Documents.DownloadWithContext(cmd.Context(), doc.DownloadURL)
				if err != nil {
					return err
				}
				target := filepath.Join(outputDir, doc.Filename)
				if err := os.WriteFile(target, content, 0o644); err != nil {
					return err
				}
				fmt.Printf("wrote %s (pages %s)\n", target, doc.Pages)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", string(renamed.SplitModeAuto), "split mode: auto, pages or blank")
	cmd.Flags().IntVar(&pagesPerSplit, "pages-per-split", 0, "pages per document in pages mode")
	cmd.Flags().StringVar(&outputDir, "output-dir", "./output", "directory for split documents")
	return cmd
}
