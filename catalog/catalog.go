// Package catalog holds the static course catalog and the identifier lookup.
package catalog

import (
	"regexp"
	"strconv"

	"github.com/ai8v/coursepage/domain"
)

// Meta carries the white-label site settings shared by every page.
type Meta struct {
	Tagline          string
	Description      string
	DescriptionShort string
	OGImage          string
	SupportEmail     string
	FoundingYear     string
	WhatsAppDefault  string
	LogoPath         string
	LegalLastUpdated string

	// Chat widget white-labeling; empty values fall back to the
	// built-in defaults in the chat package.
	ChatBotName        string
	ChatWelcomeMessage string
	ChatPlaceholder    string
	ChatErrorMessage   string
}

// Category describes a catalog category.
type Category struct {
	Color string
}

// Catalog is the full static course data set.
type Catalog struct {
	Courses        []domain.Course
	Categories     map[string]Category
	WhatsAppNumber string
	BrandName      string
	Domain         string
	Meta           Meta
}

var idPattern = regexp.MustCompile(`^[0-9]+$`)

// Resolve validates a raw course identifier and looks the course up.
// Valid input is a non-empty string of decimal digits with value >= 1;
// anything else returns (nil, false) without attempting a lookup.
func (c *Catalog) Resolve(rawID string) (*domain.Course, bool) {
	if rawID == "" || !idPattern.MatchString(rawID) {
		return nil, false
	}
	id, err := strconv.Atoi(rawID)
	if err != nil || id < 1 {
		return nil, false
	}
	// Linear scan; the catalog is small enough that an index buys nothing.
	for i := range c.Courses {
		if c.Courses[i].ID == id {
			return &c.Courses[i], true
		}
	}
	return nil, false
}

// deriveLessonCounts recomputes each course's lessons field from its
// curriculum so the cached count can never diverge from the sections.
func deriveLessonCounts(courses []domain.Course) {
	for i := range courses {
		if len(courses[i].Curriculum) == 0 {
			continue
		}
		total := 0
		for _, section := range courses[i].Curriculum {
			total += len(section.Lessons)
		}
		courses[i].Lessons = total
	}
}
