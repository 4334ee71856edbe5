package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/semwerk/semspec/internal/core/domain"
)

var navVersion string

var navCmd = &cobra.Command{
	Use:   "nav",
	Short: "Inspect navigation configurations",
}

var navFlattenCmd = &cobra.Command{
	Use:   "flatten [file]",
	Short: "Flatten a navigation tree with level and path metadata",
	Args:  cobra.ExactArgs(1),
	RunE:  runNavFlatten,
}

var navCrumbsCmd = &cobra.Command{
	Use:   "crumbs [file] [item-id]",
	Short: "Print the breadcrumb chain for an item",
	Args:  cobra.ExactArgs(2),
	RunE:  runNavCrumbs,
}

func init() {
	navFlattenCmd.Flags().StringVar(&navVersion, "version", "", "Filter the tree for a version before flattening")
	navCmd.AddCommand(navFlattenCmd)
	navCmd.AddCommand(navCrumbsCmd)
	rootCmd.AddCommand(navCmd)
}

func loadNavTree(path string) (domain.NavigationTree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.NavigationTree{}, err
	}
	tree, err := codec.DecodeNavigation(data)
	if err != nil {
		return domain.NavigationTree{}, fmt.Errorf("%s: %w", path, err)
	}
	return navSvc.BuildTree(*tree), nil
}

func runNavFlatten(cmd *cobra.Command, args []string) error {
	tree, err := loadNavTree(args[0])
	if err != nil {
		return err
	}

	if navVersion != "" {
		tree = navSvc.FilterByVersion(tree, navVersion)
	}

	for _, item := range navSvc.FlattenTree(tree) {
		indent := strings.Repeat("  ", item.Level)
		line := indent + item.ID
		if item.Title != "" {
			line += " " + styleSubtle.Render(item.Title)
		}
		line += " " + styleSubtle.Render("["+strings.Join(item.Path, "/")+"]")
		cmd.Println(line)
	}
	return nil
}

func runNavCrumbs(cmd *cobra.Command, args []string) error {
	tree, err := loadNavTree(args[0])
	if err != nil {
		return err
	}

	crumbs, ok := navSvc.Breadcrumbs(tree, args[1])
	if !ok {
		return fmt.Errorf("navigation item %q: %w", args[1], domain.ErrNotFound)
	}

	titles := make([]string, len(crumbs))
	for i, crumb := range crumbs {
		titles[i] = crumb.Title
		if titles[i] == "" {
			titles[i] = crumb.ID
		}
	}
	cmd.Println(strings.Join(titles, " > "))
	return nil
}
