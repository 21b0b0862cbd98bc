package tui

import (
	"fmt"

	"commsctl/pkg/catalog"
	"commsctl/pkg/checker"

	"github.com/charmbracelet/huh/spinner"
)

// RunCheckTUI probes every link in the catalog and prints a per-lecture report.
func RunCheckTUI(catalogPath string) error {
	cat, err := catalog.Load(catalogPath)
	if err != nil {
		return err
	}

	if len(cat.Lectures) == 0 {
		fmt.Println(errorStyle.Render("The catalog has no lectures yet!"))
		return nil
	}

	client := checker.NewClient()
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
	fmt.Println(accentStyle.Render(fmt.Sprintf("\n--- Link Check: %s ---", cat.Course)))
	for _, r := range results {
		if r.OK() {
			fmt.Printf("✅ %s\n", r.Lecture)
			continue
		}
		broken++
		fmt.Println(errorStyle.Render(fmt.Sprintf("❌ %s", r.Lecture)))
		printLinkStatus("slides", r.Slides)
		printLinkStatus("notebook", r.Notebook)
	}

	if broken == 0 {
		fmt.Println(accentStyle.Render("\nAll catalog links are healthy."))
	} else {
		fmt.Println(errorStyle.Render(fmt.Sprintf("\n%d lecture(s) have broken links.", broken)))
	}

	return nil
}

func printLinkStatus(kind string, s *checker.LinkStatus) {
	if s == nil || s.OK() {
		return
	}
	if s.Err != "" {
		fmt.Printf("   %s: %s (%s)\n", kind, s.URL, s.Err)
	} else {
		fmt.Printf("   %s: %s (status %d)\n", kind, s.URL, s.StatusCode)
	}
}
