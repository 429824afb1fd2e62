// Package domain defines the core domain models for the course page service.
package domain

// Course is one catalog entry. Courses are immutable for the lifetime of a
// page view; the catalog owns them and hands out read-only pointers.
type Course struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	Category      string    `json:"category"`
	Level         string    `json:"level"`
	Price         float64   `json:"price"`
	OriginalPrice float64   `json:"originalPrice,omitempty"`
	Students      int       `json:"students"`
	Lessons       int       `json:"lessons"`
	Rating        float64   `json:"rating"`
	Date          string    `json:"date"` // ISO date (YYYY-MM-DD)
	Language      string    `json:"language,omitempty"`
	Description   string    `json:"description"`
	Image         string    `json:"image"`
	Instructor    string    `json:"instructor"`
	Tags          []string  `json:"tags,omitempty"`
	DriveURL      string    `json:"driveUrl,omitempty"`
	Objectives    []string  `json:"learningObjectives,omitempty"`
	Curriculum    []Section `json:"curriculum,omitempty"`
	FAQ           []FAQItem `json:"faq,omitempty"`
}

// Section is one curriculum section with its ordered lessons.
type Section struct {
	Title   string   `json:"title"`
	Lessons []Lesson `json:"lessons,omitempty"`
}

// Lesson is a single curriculum entry. Duration is MM:SS text; unparsable
// components count as zero when aggregating.
type Lesson struct {
	Title    string `json:"title"`
	Duration string `json:"duration,omitempty"`
	Preview  bool   `json:"preview"`
}

// FAQItem is one question/answer pair.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// RatingAggregate is the live rating summary fetched per page view.
// It is transient and never persisted.
type RatingAggregate struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
	Error   bool    `json:"error,omitempty"`
}
