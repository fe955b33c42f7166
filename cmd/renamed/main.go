package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	renamed "github.com/renamed-to/renamed-golang"
)

const version = "0.1.0"

func main() {
	// Optional .env for local development; real deployments use the environment.
	_ = godotenv.Load()

	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "renamed",
		Short: "renamed.to CLI - AI document renaming, splitting and extraction",
		Long: `renamed is a command line interface for the renamed.to API.

It uploads documents for AI-powered filename suggestion, splits multi-document
PDFs, extracts structured data, and reports account credits.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().String("api-key", "", "API key (defaults to RENAMED_API_KEY)")
	rootCmd.PersistentFlags().String("base-url", "", "API base URL (defaults to RENAMED_BASE_URL)")
	rootCmd.PersistentFlags().Float64("timeout", 0, "request timeout in seconds")
	rootCmd.PersistentFlags().Int("retries", 2, "max retries for transport failures (0 disables)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(newRenameCommand())
	rootCmd.AddCommand(newSplitCommand())
	rootCmd.AddCommand(newExtractCommand())
	rootCmd.AddCommand(newUserCommand())

	return rootCmd
}

func newClient(cmd *cobra.Command) (*renamed.RenamedClient, error) {
	apiKey, _ := cmd.Flags().GetString("api-key")
	baseURL, _ := cmd.Flags().GetString("base-url")
	timeout, _ := cmd.Flags().GetFloat64("timeout")
	retries, _ := cmd.Flags().GetInt("retries")
	debug, _ := cmd.Flags().GetBool("debug")

	params := renamed.ConfigParams{
		APIKey:         apiKey,
		BaseURL:        baseURL,
		TimeoutSeconds: timeout,
		Debug:          &debug,
	}
	if cmd.Flags().Changed("retries") {
		params.MaxRetries = &retries
	}
	return renamed.NewClientWithParams(params)
}
