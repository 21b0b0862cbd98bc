package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"commsctl/pkg/catalog"
	"commsctl/pkg/config"
	"commsctl/pkg/exporter"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the weekly lecture plan to an ICS file",
	Long: `Export the catalog as a weekly lecture plan in iCalendar format, one event
per lecture starting from the semester start date. Flags override the values
saved in your config.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogFlag, _ := cmd.Flags().GetString("catalog")
		output, _ := cmd.Flags().GetString("output")
		start, _ := cmd.Flags().GetString("start")
		slot, _ := cmd.Flags().GetString("time")
		room, _ := cmd.Flags().GetString("room")
		minutes, _ := cmd.Flags().GetInt("minutes")

		cat, err := catalog.Load(resolveCatalogPath(catalogFlag))
		if err != nil {
			return err
		}

		if len(cat.Lectures) == 0 {
			return fmt.Errorf("catalog has no lectures to schedule")
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		// Flags win over saved config
		if start != "" {
			cfg.SemesterStart = start
		}
		if slot != "" {
			cfg.LectureTime = slot
		}
		if room != "" {
			cfg.Room = room
		}
		if minutes > 0 {
			cfg.LectureMinutes = minutes
		}

		firstLecture, err := cfg.FirstLecture()
		if err != nil {
			return err
		}

		duration := 90 * time.Minute
		if cfg.LectureMinutes > 0 {
			duration = time.Duration(cfg.LectureMinutes) * time.Minute
		}

		if !strings.HasSuffix(output, ".ics") {
			output += ".ics"
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		plan := exporter.Plan{
			Start:    firstLecture,
			Duration: duration,
			Room:     cfg.Room,
		}
		if err := exporter.GeneratePlanICS(cat, plan, file); err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		fmt.Printf("Successfully exported a %d-week lecture plan to %s\n", len(cat.Lectures), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("catalog", "c", "", "Path to the catalog JSON file")
	exportCmd.Flags().StringP("output", "o", "lectures.ics", "Output file path")
	exportCmd.Flags().String("start", "", "First lecture date (YYYY-MM-DD)")
	exportCmd.Flags().String("time", "", "Weekly lecture time (HH:MM)")
	exportCmd.Flags().String("room", "", "Lecture room")
	exportCmd.Flags().Int("minutes", 0, "Lecture length in minutes (default 90)")
}
