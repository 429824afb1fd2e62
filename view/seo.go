package view

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ai8v/coursepage/catalog"
	"github.com/ai8v/coursepage/domain"
)

// PageMeta is everything that goes into the document head.
type PageMeta struct {
	Title       string
	Description string
	Canonical   string
	OGURL       string
	OGTitle     string
	OGDesc      string
	OGImage     string
	OGSiteName  string
	TwTitle     string
	TwDesc      string
	TwImage     string
	Hreflang    string
	Robots      string
}

// PageURL is the canonical URL of a course page.
func PageURL(cat *catalog.Catalog, courseID int) string {
	return "https://" + cat.Domain + "/course/course-details/?id=" + strconv.Itoa(courseID)
}

// BuildPageMeta derives the head metadata for a course page.
func BuildPageMeta(cat *catalog.Catalog, course *domain.Course) PageMeta {
	base := "https://" + cat.Domain
	pageURL := PageURL(cat, course.ID)
	title := course.Title + " — " + cat.BrandName
	desc := course.Description + " " + cat.Meta.DescriptionShort
	image := base + "/assets/img/" + course.Image

	return PageMeta{
		Title:       title,
		Description: desc,
		Canonical:   pageURL,
		OGURL:       pageURL,
		OGTitle:     title,
		OGDesc:      desc,
		OGImage:     image,
		OGSiteName:  cat.BrandName,
		TwTitle:     title,
		TwDesc:      desc,
		TwImage:     image,
		Hreflang:    pageURL,
	}
}

// NotFoundMeta is the head metadata for the missing-course page. The page is
// marked non-indexable; this is the only user-visible error path.
func NotFoundMeta(brand string) PageMeta {
	return PageMeta{
		Title:  "Course Not Found | " + brand,
		Robots: "noindex, nofollow",
	}
}

// CourseSchema builds the schema.org Course document. The aggregateRating
// block is deliberately absent: it is merged in later by
// PatchAggregateRating once the live aggregate arrives, so first render
// never waits on the ratings service.
func CourseSchema(cat *catalog.Catalog, course *domain.Course) map[string]interface{} {
	base := "https://" + cat.Domain
	language := course.Language
	if language == "" {
		language = "en"
	}
	return map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "Course",
		"name":        course.Title,
		"description": course.Description,
		"url":         PageURL(cat, course.ID),
		"provider": map[string]interface{}{
			"@type": "Organization",
			"name":  cat.BrandName,
			"url":   base,
		},
		"educationalLevel": course.Level,
		"inLanguage":       language,
		"offers": map[string]interface{}{
			"@type":         "Offer",
			"price":         course.Price,
			"priceCurrency": "USD",
			"availability":  "https://schema.org/InStock",
		},
	}
}

// BreadcrumbSchema builds the schema.org BreadcrumbList document.
func BreadcrumbSchema(cat *catalog.Catalog, course *domain.Course) map[string]interface{} {
	base := "https://" + cat.Domain
	return map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "BreadcrumbList",
		"itemListElement": []interface{}{
			map[string]interface{}{"@type": "ListItem", "position": 1, "name": "Home", "item": base + "/"},
			map[string]interface{}{"@type": "ListItem", "position": 2, "name": "Courses", "item": base + "/course/"},
			map[string]interface{}{"@type": "ListItem", "position": 3, "name": course.Title, "item": PageURL(cat, course.ID)},
		},
	}
}

// FAQSchema builds the schema.org FAQPage document, or nil when the course
// has no FAQ entries.
func FAQSchema(course *domain.Course) map[string]interface{} {
	if len(course.FAQ) == 0 {
		return nil
	}
	entities := make([]interface{}, 0, len(course.FAQ))
	for _, item := range course.FAQ {
		entities = append(entities, map[string]interface{}{
			"@type":          "Question",
			"name":           item.Question,
			"acceptedAnswer": map[string]interface{}{"@type": "Answer", "text": item.Answer},
		})
	}
	return map[string]interface{}{
		"@context":   "https://schema.org",
		"@type":      "FAQPage",
		"mainEntity": entities,
	}
}

// BuildSchemas serializes the structured-data documents for one page.
// Order is fixed: Course, BreadcrumbList, then FAQPage when present.
func BuildSchemas(cat *catalog.Catalog, course *domain.Course) ([]string, error) {
	docs := []map[string]interface{}{
		CourseSchema(cat, course),
		BreadcrumbSchema(cat, course),
	}
	if faq := FAQSchema(course); faq != nil {
		docs = append(docs, faq)
	}

	out := make([]string, 0, len(docs))
	for _, doc := range docs {
		b, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal schema: %w", err)
		}
		out = append(out, string(b))
	}
	return out, nil
}

// PatchAggregateRating merges an aggregateRating block into a serialized
// Course document: parse, mutate, re-stringify. The rating value is fixed to
// one decimal with explicit best/worst bounds of 5/1.
func PatchAggregateRating(doc []byte, average float64, count int) ([]byte, error) {
	var schema map[string]interface{}
	if err := json.Unmarshal(doc, &schema); err != nil {
		return nil, fmt.Errorf("failed to parse course schema: %w", err)
	}
	schema["aggregateRating"] = map[string]interface{}{
		"@type":       "AggregateRating",
		"ratingValue": fmt.Sprintf("%.1f", average),
		"bestRating":  "5",
		"worstRating": "1",
		"ratingCount": strconv.Itoa(count),
	}
	out, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize course schema: %w", err)
	}
	return out, nil
}
