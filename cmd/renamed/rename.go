package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	renamed "github.com/renamed-to/renamed-golang"
)

func renameOnDisk(path, suggested string) error {
	target := filepath.Join(filepath.Dir(path), suggested)
	return os.Rename(path, target)
}

func newRenameCommand() *cobra.Command {
	var template string
	var apply bool

	cmd := &cobra.Command{
		Use:   "rename <file>",
		Short: "Suggest an AI-generated filename for a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			defer client.Close()

			var opts *renamed.RenameOptions
			if template != "" {
				opts = &renamed.RenameOptions{Template: template}
			}

			result, err := client.Documents.RenameWithContext(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}

			fmt.Printf("%s -> %s (confidence %.2f)\n", result.OriginalFilename, result.SuggestedFilename, result.Confidence)
			if result.FolderPath != "" {
				fmt.Printf("suggested folder: %s\n", result.FolderPath)
			}
			if apply {
				if err := renameOnDisk(args[0], result.SuggestedFilename); err != nil {
					return err
				}
				fmt.Println("renamed on disk")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&template, "template", "", "custom filename template")
	cmd.Flags().BoolVar(&apply, "apply", false, "rename the local file to the suggestion")
	return cmd
}
