package cmd

import (
	"fmt"
	"os"

	"commsctl/pkg/config"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "commsctl",
	Short: "A CLI and TUI for the digital-communications lecture catalog",
	Long: `commsctl manages the lecture-notebook catalog of the undergraduate
digital-communications course: render the README listing, verify the slide
and notebook links, and export the weekly lecture plan to an .ics file.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// resolveCatalogPath picks the catalog file: the command flag wins, then the
// saved config, then catalog.json in the working directory.
func resolveCatalogPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg, err := config.Load(); err == nil && cfg.CatalogPath != "" {
		return cfg.CatalogPath
	}
	return "catalog.json"
}
