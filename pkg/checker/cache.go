package checker

import (
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"commsctl/pkg/catalog"
)

// cacheDuration determines how long link-check results are kept before reprobing
const cacheDuration = 12 * time.Hour

func cacheKey(e catalog.LectureEntry) string {
	sum := sha1.Sum([]byte(e.Title + "|" + e.SlidesURL + "|" + e.NotebookURL))
	return fmt.Sprintf("%x", sum[:8])
}

func getCachePath(e catalog.LectureEntry) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}

	cacheDir := filepath.Join(homeDir, ".commsctl_cache")
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("could not create cache directory: %w", err)
	}

	return filepath.Join(cacheDir, cacheKey(e)+".json"), nil
}

// readCache returns an unexpired cached result for this entry, if any
func readCache(e catalog.LectureEntry) (Result, bool) {
	path, err := getCachePath(e)
	if err != nil {
		return Result{}, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, false
	}

	var result Result
	if err := json.Unmarshal(data, &result); err != nil {
		return Result{}, false
	}

	if time.Since(result.CheckedAt) > cacheDuration {
		return Result{}, false
	}

	return result, true
}

// writeCache saves the link-check result to disk
func writeCache(e catalog.LectureEntry, result Result) {
	path, err := getCachePath(e)
	if err != nil {
		return
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return
	}

	_ = os.WriteFile(path, data, 0644)
}
