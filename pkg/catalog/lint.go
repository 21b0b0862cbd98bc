package catalog

import "fmt"

// Finding describes a catalog irregularity worth a human look. Findings never
// block rendering; the data model tolerates duplicate and out-of-sequence
// numbering, but an author usually wants to know about it.
type Finding struct {
	Index   int // zero-based entry index, -1 for catalog-level findings
	Message string
}

// Lint scans the catalog for numbering anomalies and incomplete link sets.
func (c *Catalog) Lint() []Finding {
	var findings []Finding

	if c.Course == "" {
		findings = append(findings, Finding{Index: -1, Message: "catalog has no course name"})
	}

	seen := make(map[int]string)
	prev := 0

	for i, e := range c.Lectures {
		if other, dup := seen[e.Order]; dup {
			findings = append(findings, Finding{
				Index:   i,
				Message: fmt.Sprintf("lecture number %d is used by both %q and %q", e.Order, other, e.Title),
			})
		} else {
			seen[e.Order] = e.Title
		}

		if e.Order < prev {
			findings = append(findings, Finding{
				Index:   i,
				Message: fmt.Sprintf("%q is numbered %d but follows a lecture numbered %d", e.Title, e.Order, prev),
			})
		}
		if e.Order > prev {
			prev = e.Order
		}

		if e.SlidesURL == "" {
			findings = append(findings, Finding{Index: i, Message: fmt.Sprintf("%q has no slides link", e.Title)})
		}
		if e.NotebookURL == "" {
			findings = append(findings, Finding{Index: i, Message: fmt.Sprintf("%q has no notebook link", e.Title)})
		}
	}

	return findings
}
