package catalog

// LectureEntry represents a single lecture notebook in the course catalog
type LectureEntry struct {
	Order       int      `json:"order"`                  // position in the course sequence, duplicates tolerated
	Title       string   `json:"title"`                  // e.g. "Modulation Mapping"
	SlidesURL   string   `json:"slides_url,omitempty"`   // rendered slide view of the notebook
	NotebookURL string   `json:"notebook_url,omitempty"` // raw/downloadable notebook
	Note        string   `json:"note,omitempty"`         // prerequisite note, e.g. "requires the comms directory"
	Topics      []string `json:"topics,omitempty"`       // lowercase topic tags
}

// Catalog is the ordered listing of lecture notebooks for one course.
// Entries are kept in authored order; Order values are presentation labels,
// not an enforced sequence.
type Catalog struct {
	Course   string         `json:"course"`
	Lectures []LectureEntry `json:"lectures"`
}

// HasAnyURL reports whether the entry carries at least one link.
func (e LectureEntry) HasAnyURL() bool {
	return e.SlidesURL != "" || e.NotebookURL != ""
}
