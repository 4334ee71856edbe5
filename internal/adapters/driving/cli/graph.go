package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/semwerk/semspec/internal/core/domain"
	"github.com/semwerk/semspec/internal/logger"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Validate and inspect cross-document graphs",
}

var graphValidateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate journey, concept and linkage documents",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGraphValidate,
}

var graphTreeCmd = &cobra.Command{
	Use:   "tree [concepts-file] [root-id]",
	Short: "Print the concept hierarchy under a root",
	Args:  cobra.ExactArgs(2),
	RunE:  runGraphTree,
}

var graphLinkageCmd = &cobra.Command{
	Use:   "linkage [files...]",
	Short: "Merge linkage documents and check bidirectional consistency",
	Long: `Loads every linkage document into the link registry, then checks the
merged index: each asset referenced from code must have a reverse entry,
and each code link must correspond to a symbol key.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGraphLinkage,
}

func init() {
	graphCmd.AddCommand(graphValidateCmd)
	graphCmd.AddCommand(graphTreeCmd)
	graphCmd.AddCommand(graphLinkageCmd)
	rootCmd.AddCommand(graphCmd)
}

func runGraphValidate(cmd *cobra.Command, args []string) error {
	total := 0
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		n, err := validateGraphBytes(cmd, path, data)
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %v\n", styleError.Render("error"), path, err)
			total++
			continue
		}
		total += n
	}

	if total > 0 {
		return fmt.Errorf("graph validation failed with %d finding(s)", total)
	}
	return nil
}

// validateGraphBytes decodes one graph document and dispatches to the
// validator matching its kind.
func validateGraphBytes(cmd *cobra.Command, path string, data []byte) (int, error) {
	doc, err := codec.DecodeGraph(data)
	if err != nil {
		return 0, err
	}
	logger.Debug("decoded %s document (version %s)", doc.Kind, doc.Version)

	var findings []domain.Finding
	switch doc.Kind {
	case domain.KindJourney:
		findings = graphSvc.ValidateJourney(doc.Journey)
	case domain.KindConcepts:
		findings = graphSvc.ValidateConcepts(doc.Concepts)
	case domain.KindLinkage:
		findings = graphSvc.ValidateLinkage(doc.Linkage)
	default:
		// Project and version envelopes carry no graph payload to check.
	}

	if schemaValidator != nil {
		if fields, err := codec.Decode(data); err == nil {
			findings = append(findings, schemaValidator.ValidateEnvelope(doc.Kind, fields)...)
		}
	}

	return printFindings(cmd.OutOrStdout(), path, findings), nil
}

func runGraphTree(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	doc, err := codec.DecodeGraph(data)
	if err != nil {
		return err
	}
	if doc.Kind != domain.KindConcepts {
		return fmt.Errorf("%s is a %s document, expected %s", args[0], doc.Kind, domain.KindConcepts)
	}

	tree, ok := graphSvc.ConceptHierarchy(doc.Concepts, args[1])
	if !ok {
		return fmt.Errorf("concept %q: %w", args[1], domain.ErrNotFound)
	}

	printConceptTree(cmd, tree, 0)
	return nil
}

// printConceptTree renders the hierarchy with an explicit stack to
// match the work-list style of its construction.
func printConceptTree(cmd *cobra.Command, tree *domain.ConceptTree, level int) {
	type frame struct {
		node  *domain.ConceptTree
		level int
	}
	stack := []frame{{node: tree, level: level}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		label := f.node.Concept.ID
		if f.node.Concept.Name != "" {
			label += " " + styleSubtle.Render("("+f.node.Concept.Name+")")
		}
		cmd.Println(strings.Repeat("  ", f.level) + label)

		for i := len(f.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: f.node.Children[i], level: f.level + 1})
		}
	}
}

func runGraphLinkage(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		doc, err := codec.DecodeGraph(data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if doc.Kind != domain.KindLinkage {
			return fmt.Errorf("%s is a %s document, expected %s", path, doc.Kind, domain.KindLinkage)
		}
		if err := linkRegistry.Add(ctx, *doc.Linkage); err != nil {
			return fmt.Errorf("register %s: %w", path, err)
		}
		logger.Debug("registered linkage from %s", path)
	}

	merged, err := linkRegistry.Snapshot(ctx)
	if err != nil {
		return err
	}

	findings := graphSvc.ValidateLinkage(&merged)
	if n := printFindings(cmd.OutOrStdout(), "merged linkage", findings); n > 0 {
		return fmt.Errorf("linkage check failed with %d finding(s)", n)
	}
	return nil
}
