package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/darasahq/darasa/internal/domain"
)

// FormatLessonList renders lessons as an aligned table.
func FormatLessonList(lessons []*domain.Lesson) string {
	headers := []string{"ID", "TITLE", "SUBJECT", "DATE", "STATUS"}
	rows := make([][]string, 0, len(lessons))
	for _, l := range lessons {
		date := ""
		if l.LessonDate != nil {
			date = l.LessonDate.Format("2006-01-02")
		}
		rows = append(rows, []string{
			Dim(shortID(l.ID)),
			l.Title,
			l.Subject,
			date,
			StatusIndicator(l.Status),
		})
	}
	return RenderTable(headers, rows)
}

// FormatLessonDetail renders one lesson with its content list.
func FormatLessonDetail(l *domain.Lesson) string {
	var b strings.Builder

	b.WriteString(Header(l.Title))
	b.WriteString("\n")
	if l.Subject != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Subject:"), l.Subject))
	}
	if l.LessonDate != nil {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Date:"), l.LessonDate.Format("2006-01-02")))
	}
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Status:"), StatusIndicator(l.Status)))
	if l.Description != "" {
		b.WriteString(fmt.Sprintf("\n%s\n", l.Description))
	}

	if len(l.Content) > 0 {
		b.WriteString("\n")
		headers := []string{"#", "PUB", "TYPE", "TITLE", "MIN"}
		rows := make([][]string, 0, len(l.Content))
		for _, item := range l.Content {
			mins := ""
			if item.EstimatedMinutes > 0 {
				mins = fmt.Sprintf("%d", item.EstimatedMinutes)
			}
			rows = append(rows, []string{
				fmt.Sprintf("%d", item.SequenceOrder),
				PublishedMark(item.IsPublished),
				Dim(string(item.ContentType)),
				item.Title,
				mins,
			})
		}
		b.WriteString(RenderTable(headers, rows))
	}

	return b.String()
}

// FormatSavedAt renders a note save timestamp for status lines.
func FormatSavedAt(t time.Time) string {
	return Dim("saved " + t.Local().Format("15:04:05"))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
