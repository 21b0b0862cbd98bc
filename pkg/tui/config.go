package tui

import (
	"fmt"
	"strings"

	"commsctl/pkg/catalog"
	"commsctl/pkg/config"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI(catalogPath string) error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Catalog File Path", "catalog"),
						huh.NewOption("Set Saved Lectures", "lectures"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		if action == "back" {
			return nil
		}

		if action == "theme" {
			err = runSetThemeTUI(cfg)
		} else if action == "catalog" {
			err = runSetCatalogPathTUI(cfg)
		} else if action == "lectures" {
			err = runSetSavedLecturesTUI(cfg, catalogPath)
		} else if action == "view" {
			fmt.Println(accentStyle.Render("\n--- Current Configuration (~/.commsctl.json) ---"))
			if cfg.CatalogPath == "" {
				fmt.Println("Catalog Path: Not set (using catalog.json)")
			} else {
				fmt.Printf("Catalog Path: %s\n", cfg.CatalogPath)
			}

			fmt.Printf("Semester Start: %s\n", cfg.SemesterStart)
			fmt.Printf("Lecture Slot: %s (%d min)\n", cfg.LectureTime, cfg.LectureMinutes)
			fmt.Printf("Room: %s\n", cfg.Room)
			fmt.Printf("Saved Lectures: %d\n", len(cfg.SavedLectures))
			fmt.Printf("Accent Color: %s\n", cfg.AccentColor)
			fmt.Println()
		}

		if err != nil {
			return err
		}
	}
}

func runSetCatalogPathTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Enter the path to your catalog file").
				Description("This will be saved to your local config as the default catalog.").
				Placeholder("e.g. catalog.json or ~/course/catalog.json").
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "" {
		fmt.Println("Operation cancelled: No path provided.")
		return nil
	}

	// Validate by loading it before committing the setting
	cat, err := catalog.Load(input)
	if err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("❌ Could not load catalog at %s: %v", input, err)))
		return nil
	}

	cfg.CatalogPath = input
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Catalog path saved: %s (%d lectures)\n", input, len(cat.Lectures))))
	return nil
}

func runSetSavedLecturesTUI(cfg *config.AppConfig, catalogPath string) error {
	cat, err := catalog.Load(catalogPath)
	if err != nil {
		return err
	}

	if len(cat.Lectures) == 0 {
		fmt.Println(errorStyle.Render("The catalog has no lectures to save!"))
		return nil
	}

	existingMap := make(map[string]bool)
	for _, title := range cfg.SavedLectures {
		existingMap[title] = true
	}

	var lectureOptions []huh.Option[string]
	for _, e := range cat.Lectures {
		opt := huh.NewOption(fmt.Sprintf("%d. %s", e.Order, e.Title), e.Title)
		if existingMap[e.Title] {
			opt = opt.Selected(true)
		}
		lectureOptions = append(lectureOptions, opt)
	}

	var selected []string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select your lectures of interest").
				Description("Only these will be pre-selected in the Markdown renderer.\nSpace = toggle, Enter = confirm.").
				Options(lectureOptions...).
				Value(&selected).
				Filterable(true).
				Height(12),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.SavedLectures = selected
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Successfully saved %d lectures.\n", len(selected))))
	return nil
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an Accent Color for commsctl").
				Description("Select a curated Charm style or choose Custom to enter your own Hex.").
				Options(
					huh.NewOption(fmt.Sprintf("%s Carrier Blue", colorBlock("39")), "39"),
					huh.NewOption(fmt.Sprintf("%s Sakura Pink", colorBlock("205")), "205"),
					huh.NewOption(fmt.Sprintf("%s Spectrum Purple", colorBlock("99")), "99"),
					huh.NewOption(fmt.Sprintf("%s Matrix Green", colorBlock("42")), "42"),
					huh.NewOption("✨ Custom Hex Code", "custom"),
				).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "custom" {
		var hexInput string
		hexForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Enter a Hex Color Code").
					Description("Include the `#` symbol. Example: #FF00FF").
					Placeholder("#").
					Value(&hexInput).
					Validate(func(str string) error {
						if len(str) != 7 || !strings.HasPrefix(str, "#") {
							return fmt.Errorf("must be a valid 6-character hex code starting with #")
						}
						return nil
					}),
			),
		).WithTheme(GetTheme())

		if err := hexForm.Run(); err != nil {
			return err
		}
		cfg.AccentColor = hexInput
	} else {
		cfg.AccentColor = input
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Beautiful! The theme color is now saved.\n"))
	return nil
}
