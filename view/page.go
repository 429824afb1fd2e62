package view

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ai8v/coursepage/catalog"
	"github.com/ai8v/coursepage/domain"
)

// ActionView is one call-to-action button in the sidebar.
type ActionView struct {
	Kind      string // "start", "buy", "enter"
	Label     string
	Href      string
	External  bool
	AriaLabel string
	Icon      string
}

// MetaRow is one icon/label/value row in the sidebar meta list.
type MetaRow struct {
	Icon  string
	Label string
	Value string
}

// Crumb is one breadcrumb entry.
type Crumb struct {
	Label  string
	Href   string
	Active bool
}

// PageView is the fully assembled course page, ready for the renderer.
type PageView struct {
	Course     *domain.Course
	Meta       PageMeta
	Breadcrumb []Crumb
	Price      PriceView
	Actions    []ActionView
	MetaRows   []MetaRow
	Objectives []string
	Curriculum *CurriculumView
	FAQ        []domain.FAQItem
	Schemas    []string // serialized JSON-LD documents, Course first
	RatingText string   // initial inline rating value, patched live later
	Updated    string
	Chat       ChatWidgetView
}

// BuildPage assembles the complete view model for one course.
// chatMaxMessageLen is the configured chat input bound; zero means default.
func BuildPage(cat *catalog.Catalog, course *domain.Course, chatMaxMessageLen int) (PageView, error) {
	meta := BuildPageMeta(cat, course)

	schemas, err := BuildSchemas(cat, course)
	if err != nil {
		return PageView{}, fmt.Errorf("failed to build structured data: %w", err)
	}

	return PageView{
		Course: course,
		Meta:   meta,
		Breadcrumb: []Crumb{
			{Label: "Home", Href: "/"},
			{Label: "Courses", Href: "/course/"},
			{Label: course.Title, Active: true},
		},
		Price:      BuildPrice(course),
		Actions:    BuildActions(cat, course),
		MetaRows:   BuildMetaRows(course),
		Objectives: course.Objectives,
		Curriculum: BuildCurriculum(course),
		FAQ:        course.FAQ,
		Schemas:    schemas,
		RatingText: fmt.Sprintf("%.1f", course.Rating),
		Updated:    FormatDate(course.Date),
		Chat:       BuildChatWidget(cat, course, chatMaxMessageLen),
	}, nil
}

// BuildActions selects the sidebar affordances: a free course gets a single
// "start learning" link, a paid course gets the purchase link plus the
// already-purchased entry path.
func BuildActions(cat *catalog.Catalog, course *domain.Course) []ActionView {
	if course.Price == 0 {
		drive := SanitizeURL(course.DriveURL)
		href := drive
		if href == "" {
			href = "#"
		}
		return []ActionView{{
			Kind:      "start",
			Label:     "Start Learning Now",
			Href:      href,
			External:  drive != "",
			AriaLabel: "Start learning " + course.Title + " for free",
			Icon:      "bi bi-play-circle-fill",
		}}
	}

	price := fmt.Sprintf("$%.2f", course.Price)
	return []ActionView{
		{
			Kind:      "buy",
			Label:     "Buy Now — " + price,
			Href:      SanitizeURL(BuildWhatsAppLink(cat, course)),
			External:  true,
			AriaLabel: fmt.Sprintf("Buy %s for %s via WhatsApp", course.Title, price),
			Icon:      "bi bi-whatsapp",
		},
		{
			Kind:      "enter",
			Label:     "Already Purchased? Enter Course",
			Href:      "/course/paid/" + strconv.Itoa(course.ID),
			AriaLabel: "Access course — sign in to enter",
			Icon:      "bi bi-box-arrow-in-right",
		},
	}
}

// BuildWhatsAppLink builds the wa.me purchase link with the pre-filled
// message carrying the course title and formatted price.
func BuildWhatsAppLink(cat *catalog.Catalog, course *domain.Course) string {
	price := "Free"
	if course.Price > 0 {
		price = fmt.Sprintf("$%.2f", course.Price)
	}
	message := "Hello, I want to purchase the course \"" + course.Title + "\" — Price: " + price
	return "https://wa.me/" + cat.WhatsAppNumber + "?text=" + url.QueryEscape(message)
}

// BuildMetaRows builds the sidebar meta list. The live rating row is
// rendered separately since it is patched after the aggregate arrives.
func BuildMetaRows(course *domain.Course) []MetaRow {
	return []MetaRow{
		{Icon: "bi-person-fill", Label: "Instructor", Value: course.Instructor},
		{Icon: "bi-tag-fill", Label: "Category", Value: course.Category},
		{Icon: "bi-bar-chart-fill", Label: "Level", Value: course.Level},
		{Icon: "bi-people-fill", Label: "Students", Value: FormatNumber(course.Students)},
		{Icon: "bi-book-fill", Label: "Lessons", Value: strconv.Itoa(course.Lessons)},
	}
}

// SanitizeURL accepts only http/https URLs; everything else comes back empty.
func SanitizeURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	return u.String()
}

// FormatDate renders an ISO date as a long US English date. The original
// string comes back unchanged when it does not parse.
func FormatDate(dateStr string) string {
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return dateStr
	}
	return t.Format("January 2, 2006")
}

// FormatNumber renders an integer with comma grouping.
func FormatNumber(n int) string {
	s := strconv.Itoa(n)
	if n < 0 || len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// RatingAverageText renders the rating average to one decimal, or the em
// dash placeholder when no average is known.
func RatingAverageText(avg float64) string {
	if avg > 0 {
		return fmt.Sprintf("%.1f", avg)
	}
	return "—"
}

// RatingCountText renders the textual rating count.
func RatingCountText(count int) string {
	if count <= 0 {
		return "No ratings yet — be the first!"
	}
	if count == 1 {
		return "1 rating"
	}
	return FormatNumber(count) + " ratings"
}
