package catalog

import (
	"strings"
	"testing"
)

func TestLintCleanCatalog(t *testing.T) {
	cat := &Catalog{
		Course: "Digital Communications",
		Lectures: []LectureEntry{
			{Order: 1, Title: "A", SlidesURL: "https://example.org/s/a", NotebookURL: "https://example.org/n/a"},
			{Order: 2, Title: "B", SlidesURL: "https://example.org/s/b", NotebookURL: "https://example.org/n/b"},
		},
	}

	if findings := cat.Lint(); len(findings) != 0 {
		t.Errorf("expected no findings for a clean catalog, got %v", findings)
	}
}

func TestLintDuplicateNumber(t *testing.T) {
	cat := &Catalog{
		Course: "DC",
		Lectures: []LectureEntry{
			{Order: 3, Title: "Matched Filtering", SlidesURL: "https://example.org/s/mf", NotebookURL: "https://example.org/n/mf"},
			{Order: 3, Title: "Nyquist Pulses", SlidesURL: "https://example.org/s/np", NotebookURL: "https://example.org/n/np"},
		},
	}

	findings := cat.Lint()
	if len(findings) != 1 {
		t.Fatalf("expected exactly 1 finding for the duplicate number, got %d: %v", len(findings), findings)
	}
	if findings[0].Index != 1 {
		t.Errorf("expected the finding to point at the second entry, got index %d", findings[0].Index)
	}
	if !strings.Contains(findings[0].Message, "lecture number 3") {
		t.Errorf("finding message should name the duplicated number, got %q", findings[0].Message)
	}
}

func TestLintNonMonotonicNumber(t *testing.T) {
	cat := &Catalog{
		Course: "DC",
		Lectures: []LectureEntry{
			{Order: 4, Title: "Nyquist Pulses", SlidesURL: "https://example.org/s/np", NotebookURL: "https://example.org/n/np"},
			{Order: 2, Title: "Pulse Shaping", SlidesURL: "https://example.org/s/ps", NotebookURL: "https://example.org/n/ps"},
		},
	}

	findings := cat.Lint()
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding for decreasing numbering, got %d: %v", len(findings), findings)
	}
	if !strings.Contains(findings[0].Message, "numbered 2") {
		t.Errorf("finding should describe the decrease, got %q", findings[0].Message)
	}
}

func TestLintMissingLinks(t *testing.T) {
	cat := &Catalog{
		Course: "DC",
		Lectures: []LectureEntry{
			{Order: 1, Title: "PSD Estimation", NotebookURL: "https://example.org/n/psd"},
		},
	}

	findings := cat.Lint()
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding for the missing slides link, got %d: %v", len(findings), findings)
	}
	if !strings.Contains(findings[0].Message, "no slides link") {
		t.Errorf("unexpected finding message: %q", findings[0].Message)
	}
}

func TestLintMissingCourseName(t *testing.T) {
	cat := &Catalog{}

	findings := cat.Lint()
	if len(findings) != 1 || findings[0].Index != -1 {
		t.Errorf("expected a single catalog-level finding, got %v", findings)
	}
}
