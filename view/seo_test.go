package view

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/ai8v/coursepage/catalog"
	"github.com/ai8v/coursepage/domain"
)

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		BrandName:      "Ai8V | Mind & Machine",
		Domain:         "ai8v.com",
		WhatsAppNumber: "201556450850",
	}
}

func TestPageURL(t *testing.T) {
	got := PageURL(testCatalog(), 2)
	want := "https://ai8v.com/course/course-details/?id=2"
	if got != want {
		t.Fatalf("PageURL = %q, want %q", got, want)
	}
}

func TestBuildSchemasOrderAndContent(t *testing.T) {
	course := &domain.Course{
		ID:          1,
		Title:       "DataMap Pro",
		Description: "Mapping mastery.",
		Level:       "Beginner",
		Price:       49,
		FAQ:         []domain.FAQItem{{Question: "Q", Answer: "A"}},
	}

	schemas, err := BuildSchemas(testCatalog(), course)
	if err != nil {
		t.Fatalf("BuildSchemas failed: %v", err)
	}
	if len(schemas) != 3 {
		t.Fatalf("expected 3 schemas, got %d", len(schemas))
	}

	var courseDoc map[string]interface{}
	if err := json.Unmarshal([]byte(schemas[0]), &courseDoc); err != nil {
		t.Fatalf("decode course schema: %v", err)
	}
	if courseDoc["@type"] != "Course" {
		t.Fatalf("first schema must be Course, got %v", courseDoc["@type"])
	}
	if _, ok := courseDoc["aggregateRating"]; ok {
		t.Fatalf("first render must not carry aggregateRating: %v", courseDoc)
	}
	if !strings.Contains(schemas[1], "BreadcrumbList") {
		t.Fatalf("second schema must be BreadcrumbList: %s", schemas[1])
	}
	if !strings.Contains(schemas[2], "FAQPage") {
		t.Fatalf("third schema must be FAQPage: %s", schemas[2])
	}
}

func TestBuildSchemasSkipsEmptyFAQ(t *testing.T) {
	schemas, err := BuildSchemas(testCatalog(), &domain.Course{ID: 1, Title: "T"})
	if err != nil {
		t.Fatalf("BuildSchemas failed: %v", err)
	}
	if len(schemas) != 2 {
		t.Fatalf("expected 2 schemas without FAQ, got %d", len(schemas))
	}
}

func TestPatchAggregateRating(t *testing.T) {
	schemas, err := BuildSchemas(testCatalog(), &domain.Course{ID: 1, Title: "T"})
	if err != nil {
		t.Fatalf("BuildSchemas failed: %v", err)
	}

	patched, err := PatchAggregateRating([]byte(schemas[0]), 4.5, 12)
	if err != nil {
		t.Fatalf("PatchAggregateRating failed: %v", err)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(patched, &doc); err != nil {
		t.Fatalf("decode patched schema: %v", err)
	}
	agg, ok := doc["aggregateRating"].(map[string]interface{})
	if !ok {
		t.Fatalf("missing aggregateRating: %s", patched)
	}
	if agg["ratingValue"] != "4.5" || agg["ratingCount"] != "12" {
		t.Fatalf("unexpected aggregate: %+v", agg)
	}
	if agg["bestRating"] != "5" || agg["worstRating"] != "1" {
		t.Fatalf("unexpected bounds: %+v", agg)
	}
	// The rest of the document survives the round trip.
	if doc["name"] != "T" {
		t.Fatalf("patched document lost fields: %s", patched)
	}
}

func TestNotFoundMeta(t *testing.T) {
	meta := NotFoundMeta("Ai8V | Mind & Machine")
	if meta.Robots != "noindex, nofollow" {
		t.Fatalf("missing-course page must be non-indexable: %+v", meta)
	}
	if meta.Title != "Course Not Found | Ai8V | Mind & Machine" {
		t.Fatalf("unexpected title: %q", meta.Title)
	}
}
