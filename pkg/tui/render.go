package tui

import (
	"fmt"
	"os"
	"strings"

	"commsctl/pkg/catalog"
	"commsctl/pkg/config"

	"github.com/charmbracelet/huh"
)

// RunRenderTUI runs the interactive flow for selecting lectures and writing
// the Markdown listing for them.
func RunRenderTUI(catalogPath string) error {
	fmt.Println(accentStyle.Render("Welcome to the commsctl Markdown renderer!"))

	cfg, _ := config.Load()

	cat, err := catalog.Load(catalogPath)
	if err != nil {
		return err
	}

	if len(cat.Lectures) == 0 {
		fmt.Println(errorStyle.Render("The catalog has no lectures yet!"))
		return nil
	}

	savedMap := make(map[string]bool)
	if cfg != nil {
		for _, title := range cfg.SavedLectures {
			savedMap[title] = true
		}
	}

	var lectureOptions []huh.Option[int]
	for i, e := range cat.Lectures {
		opt := huh.NewOption(fmt.Sprintf("%d. %s", e.Order, e.Title), i)

		// If user has saved lectures, strictly select only those by default.
		// Otherwise, pre-select the whole catalog.
		if len(savedMap) > 0 {
			if savedMap[e.Title] {
				opt = opt.Selected(true)
			}
		} else {
			opt = opt.Selected(true)
		}
		lectureOptions = append(lectureOptions, opt)
	}

	var selectedIdx []int
	var outputFile string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[int]().
				Title("Select lectures to include").
				Description("Space = toggle, Enter = confirm").
				Options(lectureOptions...).
				Value(&selectedIdx).
				Filterable(true).
				Height(10),

			huh.NewInput().
				Title("Output file name").
				Value(&outputFile).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("file name cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	// Defaults
	outputFile = "lectures.md"

	if err := form.Run(); err != nil {
		return err
	}

	if len(selectedIdx) == 0 {
		fmt.Println(errorStyle.Render("No lectures selected!"))
		return nil
	}

	if !strings.HasSuffix(outputFile, ".md") {
		outputFile += ".md"
	}

	subset := &catalog.Catalog{Course: cat.Course}
	picked := make(map[int]bool)
	for _, i := range selectedIdx {
		picked[i] = true
	}
	// Keep catalog presentation order regardless of selection order
	for i, e := range cat.Lectures {
		if picked[i] {
			subset.Lectures = append(subset.Lectures, e)
		}
	}

	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := subset.RenderMarkdown(file); err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\nSuccess! Wrote %d lectures to %s", len(subset.Lectures), outputFile)))

	return nil
}
