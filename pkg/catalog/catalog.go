package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// MalformedEntryError reports a catalog entry that is missing a required field.
// Loading refuses the whole catalog rather than silently dropping the entry.
type MalformedEntryError struct {
	Index  int    // zero-based position in the lectures list
	Title  string // may be empty when the title itself is missing
	Reason string
}

func (e *MalformedEntryError) Error() string {
	if e.Title == "" {
		return fmt.Sprintf("malformed catalog entry at index %d: %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("malformed catalog entry %q (index %d): %s", e.Title, e.Index, e.Reason)
}

// Parse decodes and validates a catalog from JSON.
func Parse(r io.Reader) (*Catalog, error) {
	var cat Catalog
	dec := json.NewDecoder(r)
	if err := dec.Decode(&cat); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}

	if err := cat.validate(); err != nil {
		return nil, err
	}

	return &cat, nil
}

// Load reads and validates the catalog file at path.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	cat, err := Parse(f)
	if err != nil {
		return nil, err
	}

	return cat, nil
}

// validate checks the per-entry invariants: a title and at least one URL.
// An empty lectures list is a valid catalog.
func (c *Catalog) validate() error {
	for i, e := range c.Lectures {
		if e.Title == "" {
			return &MalformedEntryError{Index: i, Reason: "missing title"}
		}
		if !e.HasAnyURL() {
			return &MalformedEntryError{Index: i, Title: e.Title, Reason: "entry has neither a slides URL nor a notebook URL"}
		}
		if e.Order <= 0 {
			return &MalformedEntryError{Index: i, Title: e.Title, Reason: fmt.Sprintf("order must be a positive integer, got %d", e.Order)}
		}
	}
	return nil
}
