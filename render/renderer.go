// Package render materializes view models into HTML. The assembler in the
// view package stays renderer-free so it can be tested without any markup.
package render

import (
	"fmt"
	"html/template"
	"io"

	"github.com/ai8v/coursepage/view"
)

// PageData is everything the course page template needs.
type PageData struct {
	View    view.PageView
	Schemas []template.JS
	Bubbles []view.BubbleView
}

// NotFoundData feeds the missing-course page.
type NotFoundData struct {
	Meta  view.PageMeta
	Brand string
}

// Renderer holds the parsed templates.
type Renderer struct {
	page     *template.Template
	notFound *template.Template
}

// New parses the built-in templates.
func New() (*Renderer, error) {
	page, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}
	notFound, err := template.New("notfound").Parse(notFoundTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse not-found template: %w", err)
	}
	return &Renderer{page: page, notFound: notFound}, nil
}

// Page renders the full course page.
func (r *Renderer) Page(w io.Writer, pv view.PageView, bubbles []view.BubbleView) error {
	data := PageData{View: pv, Bubbles: bubbles}
	// Schemas are JSON we marshalled ourselves; mark them safe so the
	// template engine does not re-encode them inside the script tags.
	for _, s := range pv.Schemas {
		data.Schemas = append(data.Schemas, template.JS(s))
	}
	return r.page.Execute(w, data)
}

// NotFound renders the noindex missing-course page.
func (r *Renderer) NotFound(w io.Writer, brand string) error {
	return r.notFound.Execute(w, NotFoundData{
		Meta:  view.NotFoundMeta(brand),
		Brand: brand,
	})
}
