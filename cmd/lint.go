package cmd

import (
	"fmt"

	"commsctl/pkg/catalog"

	"github.com/spf13/cobra"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Report catalog numbering and link irregularities",
	Long: `Scan the catalog for things a human should look at: duplicate lecture
numbers, numbering that goes backwards, and entries missing one of their links.
Findings are informational; the catalog still renders.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogFlag, _ := cmd.Flags().GetString("catalog")
		strict, _ := cmd.Flags().GetBool("strict")

		cat, err := catalog.Load(resolveCatalogPath(catalogFlag))
		if err != nil {
			return err
		}

		findings := cat.Lint()
		if len(findings) == 0 {
			fmt.Printf("Catalog is clean: %d lectures, no findings.\n", len(cat.Lectures))
			return nil
		}

		for _, f := range findings {
			if f.Index >= 0 {
				fmt.Printf("entry %d: %s\n", f.Index+1, f.Message)
			} else {
				fmt.Printf("catalog: %s\n", f.Message)
			}
		}

		if strict {
			return fmt.Errorf("%d finding(s)", len(findings))
		}

		fmt.Printf("\n%d finding(s).\n", len(findings))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().StringP("catalog", "c", "", "Path to the catalog JSON file")
	lintCmd.Flags().Bool("strict", false, "Exit with an error when there are findings")
}
