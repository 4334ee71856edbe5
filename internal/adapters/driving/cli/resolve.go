package cli

import (
	"github.com/spf13/cobra"
)

var (
	resolveProject  string
	resolveDocument string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [ref]",
	Short: "Resolve a segment reference against the ambient context",
	Long: `Parses a segment reference ("[@project/]document#segment" or bare
"#segment"), fills missing components from --project/--document or the
configured defaults, and prints the canonical string.`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&resolveProject, "project", "", "Ambient project id")
	resolveCmd.Flags().StringVar(&resolveDocument, "document", "", "Ambient document id")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	ref, err := resolverSvc.ParseSegmentRef(args[0])
	if err != nil {
		return err
	}

	resolved, err := resolverSvc.Resolve(ref, resolveContext(resolveProject, resolveDocument))
	if err != nil {
		return err
	}

	cmd.Println(resolved.Canonical())
	return nil
}
