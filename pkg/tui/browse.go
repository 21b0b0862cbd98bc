package tui

import (
	"fmt"
	"strings"

	"commsctl/pkg/catalog"

	"github.com/charmbracelet/huh"
)

// RunBrowseTUI lets the user pick lectures from the catalog and inspect their
// links and prerequisites one at a time.
func RunBrowseTUI(catalogPath string) error {
	cat, err := catalog.Load(catalogPath)
	if err != nil {
		return err
	}

	if len(cat.Lectures) == 0 {
		fmt.Println(errorStyle.Render("The catalog has no lectures yet!"))
		return nil
	}

	for {
		var selected int

		options := make([]huh.Option[int], 0, len(cat.Lectures)+1)
		for i, e := range cat.Lectures {
			options = append(options, huh.NewOption(fmt.Sprintf("%d. %s", e.Order, e.Title), i))
		}
		options = append(options, huh.NewOption("Back to Main Menu", -1))

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[int]().
					Title(fmt.Sprintf("%s Lectures", cat.Course)).
					Description("Enter = show details. Start typing to filter.").
					Options(options...).
					Value(&selected).
					Height(12),
			),
		).WithTheme(GetTheme())

		if err := form.Run(); err != nil {
			return err
		}

		if selected < 0 {
			return nil
		}

		printLecture(cat.Lectures[selected])
	}
}

func printLecture(e catalog.LectureEntry) {
	fmt.Println(accentStyle.Render(fmt.Sprintf("\n--- Lecture %d: %s ---", e.Order, e.Title)))
	if e.SlidesURL != "" {
		fmt.Printf("Slides:   %s\n", e.SlidesURL)
	}
	if e.NotebookURL != "" {
		fmt.Printf("Notebook: %s\n", e.NotebookURL)
	}
	if len(e.Topics) > 0 {
		fmt.Printf("Topics:   %s\n", strings.Join(catalog.DisplayTopics(e), ", "))
	}
	if e.Note != "" {
		fmt.Println(errorStyle.Render(fmt.Sprintf("Important: %s", e.Note)))
	}
	fmt.Println()
}
