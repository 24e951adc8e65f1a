package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"anthromorph/internal/core"
	"anthromorph/internal/server"
)

var toolsJSON bool

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools the server exposes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		tax, _, err := loadTaxonomy(cmd.Context())
		if err != nil {
			return err
		}
		registry := server.NewRegistry(core.NewService(tax))
		tools := registry.List()
		out := cmd.OutOrStdout()
		if toolsJSON {
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			return encoder.Encode(tools)
		}
		for _, tool := range tools {
			fmt.Fprintf(out, "%-34s %s\n", tool.Name, tool.Description)
		}
		return nil
	},
}

func init() {
	toolsCmd.Flags().BoolVar(&toolsJSON, "json", false, "emit the tool list as JSON, schemas included")
}
