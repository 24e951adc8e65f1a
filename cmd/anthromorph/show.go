package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"anthromorph/internal/render"
	"anthromorph/pkg/olog"
)

var showRaw bool

var documents = map[string]func(*olog.Taxonomy) string{
	"morphotypes":    render.Morphotypes,
	"movement":       render.MovementVocabulary,
	"stages":         render.LifeCycleStages,
	"imaging":        render.ImagingAesthetics,
	"scale":          render.ScaleReferences,
	"intentionality": render.IntentionalityPrinciples,
	"composition":    render.CompositionDomains,
	"attribution":    render.ResearchAttribution,
}

func documentNames() []string {
	names := make([]string, 0, len(documents))
	for name := range documents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var showCmd = &cobra.Command{
	Use:   "show <document>",
	Short: "Render a taxonomy document to the terminal",
	Long: "Render one of the taxonomy documents as markdown.\n\nDocuments: " +
		strings.Join(documentNames(), ", "),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		renderDoc, ok := documents[args[0]]
		if !ok {
			return fmt.Errorf("unknown document %q (expected one of: %s)", args[0], strings.Join(documentNames(), ", "))
		}
		tax, _, err := loadTaxonomy(cmd.Context())
		if err != nil {
			return err
		}
		markdown := renderDoc(tax)
		if showRaw {
			fmt.Fprintln(cmd.OutOrStdout(), markdown)
			return nil
		}
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
		if err != nil {
			return fmt.Errorf("terminal renderer: %w", err)
		}
		styled, err := renderer.Render(markdown)
		if err != nil {
			return fmt.Errorf("render %s: %w", args[0], err)
		}
		fmt.Fprint(cmd.OutOrStdout(), styled)
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "print plain markdown without terminal styling")
}
