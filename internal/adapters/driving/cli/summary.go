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

var summaryProject string

var summaryCmd = &cobra.Command{
	Use:   "summary [files...]",
	Short: "Aggregate segment metadata across pages",
	Long: `Parses each page and folds segment metadata into page summaries,
then into one project summary: concept and audience unions, token
budgets, token-weighted average boost and the combined checksum.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().StringVar(&summaryProject, "project", "", "Project id for the combined summary")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	var pages []domain.PageSummary

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		doc, err := parserSvc.Parse(context.Background(), string(data))
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}

		page := aggregateSvc.AggregatePage(doc)
		logger.Debug("page %s: %d retrieval tokens, boost %.3f", path, page.RetrievalTokens, page.AvgBoost)
		printPageSummary(cmd, path, page)
		pages = append(pages, page)
	}

	project := summaryProject
	if project == "" {
		project = resolveContext("", "").Project
	}

	total := aggregateSvc.AggregateProject(project, pages)
	cmd.Println(styleHeading.Render("project summary"))
	printSummaryBody(cmd, total.Concepts, total.AudienceRoles, total.RetrievalTokens, total.GenerationTokens, total.AvgBoost, total.Checksum)
	return nil
}

func printPageSummary(cmd *cobra.Command, path string, page domain.PageSummary) {
	cmd.Println(styleHeading.Render(path))
	printSummaryBody(cmd, page.Concepts, page.AudienceRoles, page.RetrievalTokens, page.GenerationTokens, page.AvgBoost, page.Checksum)
}

func printSummaryBody(cmd *cobra.Command, concepts, roles []string, retrieval int, generation *int, boost float64, checksum string) {
	if len(concepts) > 0 {
		cmd.Printf("  concepts:  %s\n", strings.Join(concepts, ", "))
	}
	if len(roles) > 0 {
		cmd.Printf("  audience:  %s\n", strings.Join(roles, ", "))
	}
	cmd.Printf("  retrieval: %d tokens\n", retrieval)
	if generation != nil {
		cmd.Printf("  generate:  %d tokens\n", *generation)
	}
	cmd.Printf("  boost:     %.3f\n", boost)
	if checksum != "" {
		cmd.Printf("  checksum:  %s\n", shortChecksum(checksum))
	}
}

func shortChecksum(sum string) string {
	if len(sum) > 16 {
		sum = sum[:16] + "…"
	}
	return styleSubtle.Render(sum)
}
