package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Load and validate the configured taxonomy source",
	RunE: func(cmd *cobra.Command, _ []string) error {
		tax, src, err := loadTaxonomy(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "source:      %s (%s)\n", src.Description(), src.Driver())
		fmt.Fprintf(out, "version:     %s\n", tax.Version)
		fmt.Fprintf(out, "morphotypes: %d\n", len(tax.Types))
		fmt.Fprintf(out, "movements:   %d\n", len(tax.MovementTypes))
		fmt.Fprintf(out, "life stages: %d\n", len(tax.LifeStages))
		fmt.Fprintf(out, "behaviors:   %d\n", len(tax.Behaviors))
		fmt.Fprintln(out, "taxonomy ok")
		return nil
	},
}
