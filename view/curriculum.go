package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ai8v/coursepage/domain"
)

// LessonView is one curriculum row.
type LessonView struct {
	Title    string
	Duration string
	Preview  bool
	Icon     string
}

// SectionView is one accordion section with its aggregate meta line.
type SectionView struct {
	Title       string
	LessonCount int
	Minutes     int
	Meta        string
	Open        bool
	Lessons     []LessonView
}

// CurriculumView is the whole curriculum block.
type CurriculumView struct {
	SectionCount int
	TotalLessons int
	DurationText string
	Summary      string
	Sections     []SectionView
}

// ParseDuration converts an MM:SS string to seconds. Unparsable numeric
// components count as zero, matching the tolerance for malformed data.
func ParseDuration(d string) int {
	if d == "" {
		return 0
	}
	parts := strings.Split(d, ":")
	minutes, _ := strconv.Atoi(parts[0])
	seconds := 0
	if len(parts) > 1 {
		seconds, _ = strconv.Atoi(parts[1])
	}
	return minutes*60 + seconds
}

// FormatTotalDuration renders total seconds as "Xh Ym total". Hours are
// omitted when zero; minutes are ceiling-rounded from the remainder.
func FormatTotalDuration(totalSec int) string {
	hours := totalSec / 3600
	mins := ceilDiv(totalSec%3600, 60)
	if hours > 0 {
		return fmt.Sprintf("%dh %dm total", hours, mins)
	}
	return fmt.Sprintf("%dm total", mins)
}

// BuildCurriculum aggregates the curriculum into a view model. Returns nil
// when the course has no curriculum so the section is omitted entirely.
func BuildCurriculum(course *domain.Course) *CurriculumView {
	if len(course.Curriculum) == 0 {
		return nil
	}

	totalLessons := 0
	totalSec := 0
	sections := make([]SectionView, 0, len(course.Curriculum))

	for i, section := range course.Curriculum {
		sectionSec := 0
		lessons := make([]LessonView, 0, len(section.Lessons))
		for _, lesson := range section.Lessons {
			sectionSec += ParseDuration(lesson.Duration)
			icon := "bi bi-lock-fill"
			if lesson.Preview {
				icon = "bi bi-play-circle-fill"
			}
			lessons = append(lessons, LessonView{
				Title:    lesson.Title,
				Duration: lesson.Duration,
				Preview:  lesson.Preview,
				Icon:     icon,
			})
		}

		minutes := ceilDiv(sectionSec, 60)
		sections = append(sections, SectionView{
			Title:       section.Title,
			LessonCount: len(section.Lessons),
			Minutes:     minutes,
			Meta:        fmt.Sprintf("%d lessons • %d min", len(section.Lessons), minutes),
			Open:        i == 0,
			Lessons:     lessons,
		})

		totalLessons += len(section.Lessons)
		totalSec += sectionSec
	}

	durationText := FormatTotalDuration(totalSec)
	return &CurriculumView{
		SectionCount: len(course.Curriculum),
		TotalLessons: totalLessons,
		DurationText: durationText,
		Summary: fmt.Sprintf("%d sections • %d lessons • %s",
			len(course.Curriculum), totalLessons, durationText),
		Sections: sections,
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
