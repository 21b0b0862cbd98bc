package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"commsctl/pkg/catalog"
	"commsctl/pkg/config"
	"commsctl/pkg/exporter"

	"github.com/charmbracelet/huh"
)

// RunPlanTUI collects the semester slot settings and exports the weekly
// lecture plan to an ICS file.
func RunPlanTUI(catalogPath string) error {
	cat, err := catalog.Load(catalogPath)
	if err != nil {
		return err
	}

	if len(cat.Lectures) == 0 {
		fmt.Println(errorStyle.Render("The catalog has no lectures yet!"))
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	startDate := cfg.SemesterStart
	slot := cfg.LectureTime
	room := cfg.Room
	outputFile := "lectures.ics"

	if slot == "" {
		slot = "10:15"
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("First lecture date").
				Description("Format: YYYY-MM-DD. One lecture per week from here.").
				Placeholder("2026-03-04").
				Value(&startDate).
				Validate(func(s string) error {
					if _, err := time.Parse("2006-01-02", s); err != nil {
						return fmt.Errorf("must be a date like 2026-03-04")
					}
					return nil
				}),

			huh.NewInput().
				Title("Lecture time").
				Description("Weekly slot, 24h format HH:MM.").
				Value(&slot).
				Validate(func(s string) error {
					if _, err := time.Parse("15:04", s); err != nil {
						return fmt.Errorf("must be a time like 10:15")
					}
					return nil
				}),

			huh.NewInput().
				Title("Room (optional)").
				Value(&room),

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

	if err := form.Run(); err != nil {
		return err
	}

	if !strings.HasSuffix(outputFile, ".ics") {
		outputFile += ".ics"
	}

	// Remember the plan settings for next time
	cfg.SemesterStart = startDate
	cfg.LectureTime = slot
	cfg.Room = room
	if err := config.Save(cfg); err != nil {
		return err
	}

	start, err := cfg.FirstLecture()
	if err != nil {
		return err
	}

	minutes := cfg.LectureMinutes
	if minutes <= 0 {
		minutes = 90
	}

	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	plan := exporter.Plan{
		Start:    start,
		Duration: time.Duration(minutes) * time.Minute,
		Room:     room,
	}
	if err := exporter.GeneratePlanICS(cat, plan, file); err != nil {
		return fmt.Errorf("failed to generate ICS: %w", err)
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\nSuccess! Exported a %d-week lecture plan to %s", len(cat.Lectures), outputFile)))

	return nil
}
