package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	CatalogPath    string   `json:"catalog_path,omitempty"`
	SemesterStart  string   `json:"semester_start,omitempty"` // first lecture day, YYYY-MM-DD
	LectureTime    string   `json:"lecture_time,omitempty"`   // weekly slot, HH:MM
	LectureMinutes int      `json:"lecture_minutes,omitempty"`
	Timezone       string   `json:"timezone,omitempty"` // IANA name, empty means local time
	Room           string   `json:"room,omitempty"`
	SavedLectures  []string `json:"saved_lectures,omitempty"` // lecture titles pre-selected in the TUI
	AccentColor    string   `json:"accent_color,omitempty"`
}

// getConfigPath returns the absolute path to ~/.commsctl.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".commsctl.json"), nil
}

// Load reads the application configuration from disk.
// Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, just return an empty default configuration
		if os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Location resolves the configured timezone, defaulting to local time.
func (c *AppConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q in config: %w", c.Timezone, err)
	}
	return loc, nil
}

// FirstLecture combines SemesterStart and LectureTime into the start instant
// of the first lecture in the configured timezone.
func (c *AppConfig) FirstLecture() (time.Time, error) {
	if c.SemesterStart == "" {
		return time.Time{}, fmt.Errorf("semester start date is not configured")
	}

	loc, err := c.Location()
	if err != nil {
		return time.Time{}, err
	}

	slot := c.LectureTime
	if slot == "" {
		slot = "10:15"
	}

	start, err := time.ParseInLocation("2006-01-02 15:04", c.SemesterStart+" "+slot, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("could not parse semester start %q with lecture time %q: %w", c.SemesterStart, slot, err)
	}

	return start, nil
}
