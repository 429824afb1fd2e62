package view

import (
	"strings"
	"testing"

	"github.com/ai8v/coursepage/domain"
)

func TestBuildActionsFree(t *testing.T) {
	actions := BuildActions(testCatalog(), &domain.Course{
		ID: 1, Title: "DataMap Pro", Price: 0,
		DriveURL: "https://drive.google.com/drive/folders/abc",
	})
	if len(actions) != 1 {
		t.Fatalf("expected single action, got %d", len(actions))
	}
	if actions[0].Kind != "start" || !actions[0].External {
		t.Fatalf("unexpected action: %+v", actions[0])
	}
	if actions[0].Href != "https://drive.google.com/drive/folders/abc" {
		t.Fatalf("unexpected href: %q", actions[0].Href)
	}
}

func TestBuildActionsFreeWithoutDrive(t *testing.T) {
	actions := BuildActions(testCatalog(), &domain.Course{ID: 1, Title: "T", Price: 0})
	if actions[0].Href != "#" || actions[0].External {
		t.Fatalf("missing drive link must degrade to #: %+v", actions[0])
	}
}

func TestBuildActionsPaid(t *testing.T) {
	actions := BuildActions(testCatalog(), &domain.Course{ID: 2, Title: "CourseBase", Price: 399})
	if len(actions) != 2 {
		t.Fatalf("expected buy + enter actions, got %d", len(actions))
	}
	if actions[0].Kind != "buy" || actions[0].Label != "Buy Now — $399.00" {
		t.Fatalf("unexpected buy action: %+v", actions[0])
	}
	if !strings.HasPrefix(actions[0].Href, "https://wa.me/201556450850?text=") {
		t.Fatalf("unexpected purchase link: %q", actions[0].Href)
	}
	if actions[1].Kind != "enter" || actions[1].Href != "/course/paid/2" {
		t.Fatalf("unexpected enter action: %+v", actions[1])
	}
}

func TestBuildWhatsAppLink(t *testing.T) {
	link := BuildWhatsAppLink(testCatalog(), &domain.Course{Title: "CourseBase", Price: 399})
	if !strings.Contains(link, "CourseBase") {
		t.Fatalf("title missing from link: %q", link)
	}
	// The pre-filled message is URL-encoded as a query value.
	if !strings.Contains(link, "%24399.00") {
		t.Fatalf("encoded price missing from link: %q", link)
	}
	if strings.Contains(link, " ") {
		t.Fatalf("link must not contain raw spaces: %q", link)
	}
}

func TestSanitizeURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://example.com/x", "https://example.com/x"},
		{"http://example.com", "http://example.com"},
		{"  https://example.com  ", "https://example.com"},
		{"javascript:alert(1)", ""},
		{"ftp://example.com", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := SanitizeURL(tc.in); got != tc.want {
			t.Fatalf("SanitizeURL(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate("2025-01-15"); got != "January 15, 2025" {
		t.Fatalf("unexpected date: %q", got)
	}
	if got := FormatDate("not-a-date"); got != "not-a-date" {
		t.Fatalf("unparsable input comes back unchanged: %q", got)
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{950, "950"},
		{1250, "1,250"},
		{12500, "12,500"},
		{1234567, "1,234,567"},
	}
	for _, tc := range cases {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Fatalf("FormatNumber(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRatingTexts(t *testing.T) {
	if got := RatingAverageText(4.46); got != "4.5" {
		t.Fatalf("unexpected average text: %q", got)
	}
	if got := RatingAverageText(0); got != "—" {
		t.Fatalf("zero average renders the placeholder: %q", got)
	}
	if got := RatingCountText(0); got != "No ratings yet — be the first!" {
		t.Fatalf("unexpected empty count text: %q", got)
	}
	if got := RatingCountText(1); got != "1 rating" {
		t.Fatalf("unexpected singular text: %q", got)
	}
	if got := RatingCountText(1250); got != "1,250 ratings" {
		t.Fatalf("unexpected plural text: %q", got)
	}
}

func TestBuildPage(t *testing.T) {
	course := &domain.Course{
		ID: 1, Title: "DataMap Pro", Price: 49, OriginalPrice: 99,
		Rating: 4.8, Date: "2025-01-15",
		FAQ: []domain.FAQItem{{Question: "Q", Answer: "A"}},
	}
	pv, err := BuildPage(testCatalog(), course, 300)
	if err != nil {
		t.Fatalf("BuildPage failed: %v", err)
	}
	if pv.Chat.MaxMessageLen != 300 {
		t.Fatalf("chat bound must flow through to the widget: %+v", pv.Chat)
	}
	if len(pv.Breadcrumb) != 3 || !pv.Breadcrumb[2].Active {
		t.Fatalf("unexpected breadcrumb: %+v", pv.Breadcrumb)
	}
	if pv.RatingText != "4.8" {
		t.Fatalf("initial rating text comes from the catalog value: %q", pv.RatingText)
	}
	if pv.Updated != "January 15, 2025" {
		t.Fatalf("unexpected updated text: %q", pv.Updated)
	}
	if len(pv.Schemas) != 3 {
		t.Fatalf("expected 3 schemas, got %d", len(pv.Schemas))
	}
	if pv.Curriculum != nil {
		t.Fatalf("no curriculum data must omit the section: %+v", pv.Curriculum)
	}
}
