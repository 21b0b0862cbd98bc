package cmd

import (
	"commsctl/pkg/tui"

	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive TUI",
	Long:  `Launch the Text User Interface to browse the lecture catalog, render listings, check links, and export the lecture plan interactively.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogFlag, _ := cmd.Flags().GetString("catalog")
		return tui.RunTUI(resolveCatalogPath(catalogFlag))
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
	interactiveCmd.Flags().StringP("catalog", "c", "", "Path to the catalog JSON file")
}
