package cmd

import (
	"fmt"

	"commsctl/pkg/catalog"
	"commsctl/pkg/checker"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that all catalog links resolve",
	Long: `Fetch every slides and notebook URL in the catalog and report broken links.
Results are cached for 12 hours; pass --no-cache to reprobe everything.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogFlag, _ := cmd.Flags().GetString("catalog")
		noCache, _ := cmd.Flags().GetBool("no-cache")

		cat, err := catalog.Load(resolveCatalogPath(catalogFlag))
		if err != nil {
			return err
		}

		if len(cat.Lectures) == 0 {
			fmt.Println("Catalog has no lectures, nothing to check.")
			return nil
		}

		client := checker.NewClient()
		client.NoCache = noCache

		var results []checker.Result

		_ = spinner.New().
			Title(fmt.Sprintf("Checking links for %d lectures...", len(cat.Lectures))).
			Action(func() {
				for _, e := range cat.Lectures {
					results = append(results, client.CheckEntry(e))
				}
			}).
			Run()

		broken := 0
		for _, r := range results {
			if r.OK() {
				fmt.Printf("ok      %s\n", r.Lecture)
				continue
			}
			broken++
			fmt.Printf("BROKEN  %s\n", r.Lecture)
			printBrokenLink("slides", r.Slides)
			printBrokenLink("notebook", r.Notebook)
		}

		if broken > 0 {
			return fmt.Errorf("%d of %d lectures have broken links", broken, len(cat.Lectures))
		}

		fmt.Printf("All links healthy across %d lectures.\n", len(cat.Lectures))
		return nil
	},
}

func printBrokenLink(kind string, s *checker.LinkStatus) {
	if s == nil || s.OK() {
		return
	}
	if s.Err != "" {
		fmt.Printf("        %s: %s (%s)\n", kind, s.URL, s.Err)
	} else {
		fmt.Printf("        %s: %s (status %d)\n", kind, s.URL, s.StatusCode)
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringP("catalog", "c", "", "Path to the catalog JSON file")
	checkCmd.Flags().Bool("no-cache", false, "Ignore cached results and reprobe every link")
}
