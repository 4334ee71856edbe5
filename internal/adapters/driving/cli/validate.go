package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/semwerk/semspec/internal/logger"
)

var validateMode string

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate documentation pages and graph documents",
	Long: `Validates each file. Markdown pages are parsed and run through
segment validation; YAML files are decoded as graph documents and run
through the matching graph validator. Findings are enumerated in full,
never short-circuited.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateMode, "mode", "", "Validation mode: strict or loose (default strict)")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	total := 0
	for _, path := range args {
		n, err := validateFile(cmd, path)
		if err != nil {
			// Structural failures abort the document, not the run.
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %v\n", styleError.Render("error"), path, err)
			total++
			continue
		}
		total += n
	}

	if total > 0 {
		return fmt.Errorf("validation failed with %d finding(s)", total)
	}
	return nil
}

// validateFile dispatches on file extension: markdown pages go through
// the parser, everything else is decoded as a graph document.
func validateFile(cmd *cobra.Command, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	switch filepath.Ext(path) {
	case ".md", ".markdown":
		logger.Debug("validating page %s", path)
		doc, err := parserSvc.Parse(context.Background(), string(data))
		if err != nil {
			return 0, err
		}
		findings := parserSvc.Validate(doc, configuredMode(validateMode))
		return printFindings(cmd.OutOrStdout(), path, findings), nil
	default:
		logger.Debug("validating graph document %s", path)
		return validateGraphBytes(cmd, path, data)
	}
}
