package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"vacancy-utils/internal/config"
	"vacancy-utils/internal/ingest"
	"vacancy-utils/internal/logging"
	"vacancy-utils/internal/pipeline"
	"vacancy-utils/pkg/models"
)

var (
	cfgPath     string
	content     string
	contentFile string
	sourceType  string
	payloadPath string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "vacancyctl",
	Short: "Run the vacancy need-analysis pipeline from the command line",
	Long: `vacancyctl runs the deterministic extraction, validation and enrichment
pipeline over a single vacancy source and prints the result as JSON.

A failed pipeline stage is part of the result, not an invocation error:
the process exits 0 with the failure recorded in the result's "error"
field. A nonzero exit means the invocation itself was malformed.`,
	RunE:          runAnalyze,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.Flags().StringVar(&content, "content", "", "vacancy text, or the URL when --source-type=url")
	rootCmd.Flags().StringVar(&contentFile, "content-file", "", "read the vacancy content from a file instead of --content")
	rootCmd.Flags().StringVar(&sourceType, "source-type", "text", "source kind: url, pdf, docx or text")
	rootCmd.Flags().StringVar(&payloadPath, "payload", "", "JSON file with the required field paths (array of strings)")
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable pipeline logging")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := logging.InitializeLogging(cfg); err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}
	defer logging.CloseLogging()
	if !verbose {
		// Keep stdout clean for the result JSON.
		logging.GetGlobalLogger().SetLevel(logging.ErrorLevel)
	}

	text, err := resolveContentFlag()
	if err != nil {
		return err
	}

	requiredPaths := models.DefaultRequiredPaths
	if payloadPath != "" {
		requiredPaths, err = loadRequiredPaths(payloadPath)
		if err != nil {
			return err
		}
	}

	raw := models.RawInput{
		SourceType: models.SourceType(strings.ToLower(strings.TrimSpace(sourceType))),
		Content:    text,
	}

	pipe := pipeline.New()

	var result models.PipelineResult
	resolved, err := ingest.NewResolver(cfg).Resolve(context.Background(), raw)
	if err != nil {
		// Resolution failures are pipeline data, same as stage failures.
		result = pipe.RunDegraded(err, requiredPaths)
	} else {
		result = pipe.Run(resolved, requiredPaths)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func resolveContentFlag() (string, error) {
	switch {
	case content != "" && contentFile != "":
		return "", fmt.Errorf("--content and --content-file are mutually exclusive")
	case contentFile != "":
		data, err := os.ReadFile(contentFile)
		if err != nil {
			return "", fmt.Errorf("reading content file: %w", err)
		}
		return string(data), nil
	case content != "":
		return content, nil
	}
	return "", fmt.Errorf("either --content or --content-file is required")
}

// loadRequiredPaths reads the required paths payload. Both a bare JSON
// array and an object with a "required_paths" key are accepted.
func loadRequiredPaths(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading payload file: %w", err)
	}

	var paths []string
	if err := json.Unmarshal(data, &paths); err == nil {
		return paths, nil
	}

	var wrapped struct {
		RequiredPaths []string `json:"required_paths"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("parsing payload file %s: %w", path, err)
	}
	if wrapped.RequiredPaths == nil {
		return nil, fmt.Errorf("payload file %s carries no required paths", path)
	}
	return wrapped.RequiredPaths, nil
}
