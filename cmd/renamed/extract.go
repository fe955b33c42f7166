package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	renamed "github.com/renamed-to/renamed-golang"
)

func newExtractCommand() *cobra.Command {
	var prompt string
	var schemaFile string

	cmd := &cobra.Command{
		Use:   "extract <file>",
		Short: "Extract structured data from a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if prompt == "" && schemaFile == "" {
				return fmt.Errorf("provide --prompt, --schema, or both")
			}

			opts := &renamed.ExtractOptions{Prompt: prompt}
			if schemaFile != "" {
				raw, err := os.ReadFile(schemaFile)
				if err != nil {
					return err
				}
				if err := json.Unmarshal(raw, &opts.Schema); err != nil {
					return fmt.Errorf("parse schema %s: %w", schemaFile, err)
				}
			}

			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			defer client.Close()

			result, err := client.Documents.ExtractWithContext(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(result.Data, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			fmt.Fprintf(os.Stderr, "confidence: %.2f\n", result.Confidence)
			return nil
		},
	}

	cmd.Flags().StringVar(&prompt, "prompt", "", "natural language description of the fields to extract")
	cmd.Flags().StringVar(&schemaFile, "schema", "", "path to a JSON schema file")
	return cmd
}
