package catalog

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RenderMarkdown writes the catalog as the two-tier Markdown listing used in
// the course README: a numbered item per lecture with nested link bullets and
// an optional nested "Important" note. Entries are emitted in the order given,
// keeping their own numbering even when it duplicates or skips values.
func (c *Catalog) RenderMarkdown(w io.Writer) error {
	var b strings.Builder

	course := c.Course
	if course == "" {
		course = "Course"
	}
	b.WriteString(fmt.Sprintf("# %s Lecture Notebooks\n\n", course))

	for _, e := range c.Lectures {
		b.WriteString(fmt.Sprintf("%d. **%s**\n", e.Order, e.Title))
		if e.SlidesURL != "" {
			b.WriteString(fmt.Sprintf("   * [Slides](%s)\n", e.SlidesURL))
		}
		if e.NotebookURL != "" {
			b.WriteString(fmt.Sprintf("   * [Notebook](%s)\n", e.NotebookURL))
		}
		if len(e.Topics) > 0 {
			b.WriteString(fmt.Sprintf("   * Topics: %s\n", strings.Join(DisplayTopics(e), ", ")))
		}
		if e.Note != "" {
			b.WriteString(fmt.Sprintf("   * **Important**: %s\n", e.Note))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Markdown renders the catalog listing to a string.
func (c *Catalog) Markdown() string {
	var b strings.Builder
	_ = c.RenderMarkdown(&b)
	return b.String()
}

// DisplayTopics returns the entry's topic tags title-cased for display.
// Tags are authored lowercase in the catalog file.
func DisplayTopics(e LectureEntry) []string {
	caser := cases.Title(language.English)
	out := make([]string, len(e.Topics))
	for i, t := range e.Topics {
		out[i] = caser.String(t)
	}
	return out
}
