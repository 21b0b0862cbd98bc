package exporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"commsctl/pkg/catalog"

	ics "github.com/arran4/golang-ical"
)

// Plan describes how catalog entries map onto calendar slots: one lecture per
// week starting at Start, each lasting Duration, in catalog order.
type Plan struct {
	Start    time.Time
	Duration time.Duration
	Room     string
}

// GeneratePlanICS writes the lecture plan for the catalog as an iCalendar stream.
func GeneratePlanICS(cat *catalog.Catalog, plan Plan, w io.Writer) error {
	if plan.Start.IsZero() {
		return fmt.Errorf("lecture plan has no start time")
	}
	if plan.Duration <= 0 {
		plan.Duration = 90 * time.Minute
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	for i, e := range cat.Lectures {
		startTime := plan.Start.AddDate(0, 0, 7*i)
		endTime := startTime.Add(plan.Duration)

		event := cal.AddEvent(fmt.Sprintf("%s-%d", startTime.Format("20060102T150405Z"), i))
		event.SetCreatedTime(time.Now())
		event.SetDtStampTime(time.Now())
		event.SetModifiedAt(time.Now())
		event.SetStartAt(startTime)
		event.SetEndAt(endTime)
		event.SetSummary(fmt.Sprintf("Lecture %d: %s", e.Order, e.Title))
		if plan.Room != "" {
			event.SetLocation(plan.Room)
		}
		event.SetDescription(describeLecture(e))
	}

	return cal.SerializeTo(w)
}

func describeLecture(e catalog.LectureEntry) string {
	var parts []string
	if e.SlidesURL != "" {
		parts = append(parts, fmt.Sprintf("Slides: %s", e.SlidesURL))
	}
	if e.NotebookURL != "" {
		parts = append(parts, fmt.Sprintf("Notebook: %s", e.NotebookURL))
	}
	if len(e.Topics) > 0 {
		parts = append(parts, fmt.Sprintf("Topics: %s", strings.Join(catalog.DisplayTopics(e), ", ")))
	}
	if e.Note != "" {
		parts = append(parts, fmt.Sprintf("Important: %s", e.Note))
	}
	return strings.Join(parts, "\n")
}
