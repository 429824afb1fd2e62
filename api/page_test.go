package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestHealth(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t, "http://localhost:0", "http://localhost:0")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Health(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCoursePage(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t, "http://localhost:0", "http://localhost:0")

	req := httptest.NewRequest(http.MethodGet, "/course/course-details?id=1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CoursePage(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "DataMap Pro") {
		t.Fatalf("course title missing from page")
	}
	if !strings.Contains(body, `id="jsonld-details-0"`) {
		t.Fatalf("structured data missing from page")
	}
	// First render never carries the live aggregate.
	if strings.Contains(body, "aggregateRating") {
		t.Fatalf("aggregateRating must not appear before the live fetch")
	}
	if !strings.Contains(body, "chat-widget") {
		t.Fatalf("chat widget missing from page")
	}
}

func TestCoursePageNotFound(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t, "http://localhost:0", "http://localhost:0")

	for _, raw := range []string{"999", "0", "abc", ""} {
		req := httptest.NewRequest(http.MethodGet, "/course/course-details?id="+raw, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		if err := h.CoursePage(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusNotFound {
			t.Fatalf("id %q: expected 404, got %d", raw, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "noindex, nofollow") {
			t.Fatalf("missing-course page must be non-indexable")
		}
	}
}
