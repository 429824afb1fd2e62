package view

import (
	"testing"

	"github.com/ai8v/coursepage/domain"
)

func TestParseDuration(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"05:30", 330},
		{"12:00", 720},
		{"08:45", 525},
		{"90", 5400},
		{"", 0},
		{"oops", 0},
		{"ab:cd", 0},
	}
	for _, tc := range cases {
		if got := ParseDuration(tc.in); got != tc.want {
			t.Fatalf("ParseDuration(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFormatTotalDuration(t *testing.T) {
	cases := []struct {
		sec  int
		want string
	}{
		{1575, "27m total"}, // 26m15s rounds up
		{1560, "26m total"},
		{3675, "1h 2m total"}, // 1h 1m15s rounds up
		{7200, "2h 0m total"},
		{0, "0m total"},
	}
	for _, tc := range cases {
		if got := FormatTotalDuration(tc.sec); got != tc.want {
			t.Fatalf("FormatTotalDuration(%d) = %q, want %q", tc.sec, got, tc.want)
		}
	}
}

func TestBuildCurriculumEmpty(t *testing.T) {
	if cv := BuildCurriculum(&domain.Course{}); cv != nil {
		t.Fatalf("expected nil curriculum view, got %+v", cv)
	}
}

func TestBuildCurriculum(t *testing.T) {
	course := &domain.Course{
		Curriculum: []domain.Section{
			{
				Title: "Getting Started",
				Lessons: []domain.Lesson{
					{Title: "Intro", Duration: "05:30", Preview: true},
					{Title: "Setup", Duration: "12:00"},
				},
			},
			{
				Title: "Deep Dive",
				Lessons: []domain.Lesson{
					{Title: "Internals", Duration: "08:45"},
				},
			},
		},
	}

	cv := BuildCurriculum(course)
	if cv == nil {
		t.Fatal("expected curriculum view")
	}
	if cv.SectionCount != 2 || cv.TotalLessons != 3 {
		t.Fatalf("unexpected totals: %+v", cv)
	}
	// 330 + 720 + 525 = 1575s
	if cv.DurationText != "27m total" {
		t.Fatalf("unexpected duration text: %q", cv.DurationText)
	}
	if cv.Summary != "2 sections • 3 lessons • 27m total" {
		t.Fatalf("unexpected summary: %q", cv.Summary)
	}

	first := cv.Sections[0]
	if !first.Open || cv.Sections[1].Open {
		t.Fatalf("only the first section opens by default: %+v", cv.Sections)
	}
	// 330 + 720 = 1050s => 17m30s, rounded up
	if first.Meta != "2 lessons • 18 min" {
		t.Fatalf("unexpected section meta: %q", first.Meta)
	}
	if first.Lessons[0].Icon != "bi bi-play-circle-fill" {
		t.Fatalf("preview lesson gets the play icon: %+v", first.Lessons[0])
	}
	if first.Lessons[1].Icon != "bi bi-lock-fill" {
		t.Fatalf("locked lesson gets the lock icon: %+v", first.Lessons[1])
	}
}
