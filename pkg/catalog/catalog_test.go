package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validCatalogJSON = `{
	"course": "Digital Communications",
	"lectures": [
		{
			"order": 1,
			"title": "Modulation Mapping",
			"slides_url": "https://nbviewer.example.org/slides/mod_mapping.ipynb",
			"notebook_url": "https://github.example.org/notebooks/mod_mapping.ipynb",
			"topics": ["constellations", "modulation mapping"]
		},
		{
			"order": 2,
			"title": "Pulse Shaping",
			"slides_url": "https://nbviewer.example.org/slides/pulse_shaping.ipynb",
			"notebook_url": "https://github.example.org/notebooks/pulse_shaping.ipynb",
			"note": "requires the comms directory"
		}
	]
}`

func TestParseValidCatalog(t *testing.T) {
	cat, err := Parse(strings.NewReader(validCatalogJSON))
	if err != nil {
		t.Fatalf("Parse failed on valid catalog: %v", err)
	}

	if cat.Course != "Digital Communications" {
		t.Errorf("expected course 'Digital Communications', got %q", cat.Course)
	}
	if len(cat.Lectures) != 2 {
		t.Fatalf("expected 2 lectures, got %d", len(cat.Lectures))
	}

	first := cat.Lectures[0]
	if first.Order != 1 || first.Title != "Modulation Mapping" {
		t.Errorf("first entry not preserved: %+v", first)
	}
	if first.SlidesURL != "https://nbviewer.example.org/slides/mod_mapping.ipynb" {
		t.Errorf("slides URL not preserved: %s", first.SlidesURL)
	}
	if first.NotebookURL != "https://github.example.org/notebooks/mod_mapping.ipynb" {
		t.Errorf("notebook URL not preserved: %s", first.NotebookURL)
	}

	second := cat.Lectures[1]
	if second.Note != "requires the comms directory" {
		t.Errorf("expected prerequisite note to survive loading, got %q", second.Note)
	}
}

func TestParseEmptyCatalog(t *testing.T) {
	cat, err := Parse(strings.NewReader(`{"course": "Digital Communications", "lectures": []}`))
	if err != nil {
		t.Fatalf("a catalog with zero entries must load cleanly, got: %v", err)
	}
	if len(cat.Lectures) != 0 {
		t.Errorf("expected 0 lectures, got %d", len(cat.Lectures))
	}
}

func TestParseMissingTitle(t *testing.T) {
	src := `{"course": "DC", "lectures": [{"order": 1, "slides_url": "https://example.org/a"}]}`

	_, err := Parse(strings.NewReader(src))
	if err == nil {
		t.Fatalf("expected MalformedEntryError for entry without title, got nil")
	}

	var malformed *MalformedEntryError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected *MalformedEntryError, got %T: %v", err, err)
	}
	if malformed.Index != 0 {
		t.Errorf("expected index 0 in error, got %d", malformed.Index)
	}
}

func TestParseMissingBothURLs(t *testing.T) {
	src := `{"course": "DC", "lectures": [{"order": 1, "title": "Matched Filtering"}]}`

	_, err := Parse(strings.NewReader(src))

	var malformed *MalformedEntryError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected *MalformedEntryError for entry without any URL, got %T: %v", err, err)
	}
	if malformed.Title != "Matched Filtering" {
		t.Errorf("expected entry title in error, got %q", malformed.Title)
	}
}

func TestParseSingleURLIsEnough(t *testing.T) {
	src := `{"course": "DC", "lectures": [{"order": 1, "title": "PSD Estimation", "notebook_url": "https://example.org/psd.ipynb"}]}`

	if _, err := Parse(strings.NewReader(src)); err != nil {
		t.Errorf("an entry with only one of the two URLs must be valid, got: %v", err)
	}
}

func TestParseInvalidJSON(t *testing.T) {
	_, err := Parse(strings.NewReader("not json { at all"))
	if err == nil {
		t.Errorf("expected error when parsing invalid JSON, got nil")
	}
}

func TestLoadFromFile(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "commsctl-catalog-test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	path := filepath.Join(tempDir, "catalog.json")
	if err := os.WriteFile(path, []byte(validCatalogJSON), 0644); err != nil {
		t.Fatalf("failed to write catalog file: %v", err)
	}

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cat.Lectures) != 2 {
		t.Errorf("expected 2 lectures from file, got %d", len(cat.Lectures))
	}

	// Missing file must surface an error, not an empty catalog
	if _, err := Load(filepath.Join(tempDir, "nope.json")); err == nil {
		t.Errorf("expected error when loading a missing catalog file")
	}
}
