// Package cli implements the semspec command surface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/semwerk/semspec/internal/adapters/driven/checksum/blake3"
	configfile "github.com/semwerk/semspec/internal/adapters/driven/config/file"
	"github.com/semwerk/semspec/internal/adapters/driven/codec/yamlcodec"
	"github.com/semwerk/semspec/internal/adapters/driven/registry/memory"
	"github.com/semwerk/semspec/internal/core/domain"
	"github.com/semwerk/semspec/internal/core/ports/driven"
	"github.com/semwerk/semspec/internal/core/services"
	"github.com/semwerk/semspec/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Persistent flags.
var (
	flagVerbose   bool
	flagConfigDir string
)

// Wired services, shared by the commands.
var (
	configStore  driven.ConfigStore
	codec        *yamlcodec.Codec
	parserSvc    *services.Parser
	resolverSvc  *services.Resolver
	navSvc       *services.NavigationBuilder
	graphSvc     *services.GraphValidator
	aggregateSvc *services.Aggregator
	linkRegistry driven.LinkRegistry

	// schemaValidator is the optional envelope schema hook. Nil unless a
	// schema collaborator is installed; the structural checks stand alone.
	schemaValidator driven.SchemaValidator
)

var rootCmd = &cobra.Command{
	Use:   "semspec",
	Short: "Parse and validate documentation graphs",
	Long: `semspec parses segmented documentation pages and cross-validates
the documentation graph: journeys, concepts, code/doc linkage and
navigation configurations.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(flagVerbose)
		return wireServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "Config directory (default ~/.semspec)")
}

// wireServices builds the adapter and service graph once per invocation.
func wireServices() error {
	store, err := configfile.NewConfigStore(flagConfigDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	configStore = store

	codec = yamlcodec.New()
	checksummer := blake3.New()

	opts := []services.ParserOption{services.WithChecksummer(checksummer)}
	tokens := services.MarkerTokens{
		Start: configStore.GetString(driven.ConfigMarkerStartToken),
		End:   configStore.GetString(driven.ConfigMarkerEndToken),
	}
	if tokens.Start != "" && tokens.End != "" {
		logger.Debug("using configured marker tokens %q / %q", tokens.Start, tokens.End)
		opts = append(opts, services.WithMarkerTokens(tokens))
	}

	parserSvc = services.NewParser(codec, opts...)
	resolverSvc = services.NewResolver()
	navSvc = services.NewNavigationBuilder()
	graphSvc = services.NewGraphValidator()
	aggregateSvc = services.NewAggregator(checksummer)
	linkRegistry = memory.NewLinkRegistry()

	return nil
}

// configuredMode reads the validation mode from config, defaulting to
// strict, with a per-command flag override.
func configuredMode(flagMode string) domain.ValidationMode {
	mode := flagMode
	if mode == "" {
		mode = configStore.GetString(driven.ConfigValidationMode)
	}
	if mode == string(domain.ModeLoose) {
		return domain.ModeLoose
	}
	return domain.ModeStrict
}

// resolveContext builds the ambient context from flags and config.
func resolveContext(project, document string) domain.ResolveContext {
	rctx := domain.ResolveContext{Project: project, Document: document}
	if rctx.Project == "" {
		rctx.Project = configStore.GetString(driven.ConfigDefaultProject)
	}
	if rctx.Document == "" {
		rctx.Document = configStore.GetString(driven.ConfigDefaultDocument)
	}
	return rctx
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
