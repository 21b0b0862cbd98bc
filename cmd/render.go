package cmd

import (
	"fmt"
	"os"

	"commsctl/pkg/catalog"

	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the lecture catalog as Markdown",
	Long:  `Render the lecture catalog as the two-tier Markdown listing used in the course README, to stdout or to a file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogFlag, _ := cmd.Flags().GetString("catalog")
		output, _ := cmd.Flags().GetString("output")

		cat, err := catalog.Load(resolveCatalogPath(catalogFlag))
		if err != nil {
			return err
		}

		if output == "" {
			return cat.RenderMarkdown(os.Stdout)
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		if err := cat.RenderMarkdown(file); err != nil {
			return fmt.Errorf("failed to render markdown: %w", err)
		}

		fmt.Printf("Successfully rendered %d lectures to %s\n", len(cat.Lectures), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("catalog", "c", "", "Path to the catalog JSON file")
	renderCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
}
