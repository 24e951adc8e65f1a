// Command anthromorph serves the anthrobot morphology taxonomy over
// JSON-RPC (stdio or HTTP) and provides local inspection commands for
// the taxonomy documents and tool surface.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"anthromorph/internal/source"
	"anthromorph/pkg/olog"
)

var (
	configPath   string
	taxonomyPath string
)

var rootCmd = &cobra.Command{
	Use:   "anthromorph",
	Short: "Deterministic anthrobot morphology engine",
	Long: `anthromorph maps anthrobot morphology parameters (shape, cilia pattern,
size, life stage, swarm composition) onto validated visual specifications
drawn from a closed taxonomy, and serves them as JSON-RPC tools.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// resolveSource prefers an explicit --taxonomy file over the
// ANTHROMORPH_* environment factory.
func resolveSource(ctx context.Context) (source.Source, error) {
	if taxonomyPath != "" {
		return source.NewFS(taxonomyPath)
	}
	return source.Open(ctx)
}

func loadTaxonomy(ctx context.Context) (*olog.Taxonomy, source.Source, error) {
	src, err := resolveSource(ctx)
	if err != nil {
		return nil, nil, err
	}
	tax, err := source.Load(ctx, src)
	if err != nil {
		return nil, nil, err
	}
	return tax, src, nil
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")
	rootCmd.PersistentFlags().StringVar(&taxonomyPath, "taxonomy", "", "path to a taxonomy YAML file (overrides ANTHROMORPH_TAXONOMY_SOURCE)")

	rootCmd.AddCommand(serveCmd, checkCmd, showCmd, toolsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "anthromorph: %v\n", err)
		os.Exit(1)
	}
}
