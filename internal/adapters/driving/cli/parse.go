package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/semwerk/semspec/internal/logger"
)

var parseJSON bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a documentation page into segments",
	Long: `Parses frontmatter and segment markers. Structural marker failures
abort the parse; missing specs do not (run "semspec validate" to judge
the document).`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "Emit the parsed document as JSON")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	text, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	logger.Section("parse")
	doc, err := parserSvc.Parse(context.Background(), string(text))
	if err != nil {
		return fmt.Errorf("parse %s: %w", args[0], err)
	}
	logger.Debug("parsed %d segment(s), %d spec(s)", len(doc.Segments), len(doc.Frontmatter.Specs))

	if parseJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}

	cmd.Println(styleHeading.Render(args[0]))
	for _, seg := range doc.Segments {
		line := fmt.Sprintf("  %s [%d:%d]", seg.ID, seg.StartByte, seg.EndByte)
		if seg.Spec == nil {
			line += " " + styleSubtle.Render("(no spec)")
		} else {
			line += " " + styleSubtle.Render(seg.Spec.Type)
		}
		cmd.Println(line)
	}
	return nil
}
