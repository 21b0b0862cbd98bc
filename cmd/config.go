package cmd

import (
	"fmt"

	"commsctl/pkg/catalog"
	"commsctl/pkg/config"
	"commsctl/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage commsctl configuration",
	Long:  "View or edit your local configuration settings (like the default catalog path and the weekly lecture slot).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		setCatalog, _ := cmd.Flags().GetString("set-catalog")
		if setCatalog != "" {
			// Validate the file before committing the setting
			cat, err := catalog.Load(setCatalog)
			if err != nil {
				return fmt.Errorf("could not load catalog at %s: %w", setCatalog, err)
			}

			cfg.CatalogPath = setCatalog
			if err := config.Save(cfg); err != nil {
				return err
			}

			fmt.Printf("✅ Catalog path successfully saved: %s (%d lectures)\n", setCatalog, len(cat.Lectures))
			return nil
		}

		// If no flags are given, launch the interactive TUI flow
		return tui.RunConfigTUI(resolveCatalogPath(""))
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringP("set-catalog", "s", "", "Set the default catalog file path")
}
