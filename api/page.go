package api

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ai8v/coursepage/view"
)

// CoursePage renders the course details page. An invalid or unknown id gets
// the noindex not-found page instead of a JSON error; this route is the one
// human-facing surface the service has.
func (h *Handler) CoursePage(c echo.Context) error {
	course, ok := h.catalog.Resolve(c.QueryParam("id"))
	if !ok {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
		c.Response().WriteHeader(http.StatusNotFound)
		if err := h.renderer.NotFound(c.Response(), h.catalog.BrandName); err != nil {
			log.Printf("ERROR: failed to render not-found page: %v", err)
			return err
		}
		return nil
	}

	pv, err := view.BuildPage(h.catalog, course, h.config.ChatMaxMessageLen)
	if err != nil {
		log.Printf("ERROR: failed to assemble page for course %d: %v", course.ID, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to build page"})
	}

	// The stored transcript is rendered inline so a returning visitor sees
	// the conversation without a round trip.
	bubbles := view.BuildTranscript(pv.Chat, h.controller(course.ID).History(c.Request().Context()))

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	if err := h.renderer.Page(c.Response(), pv, bubbles); err != nil {
		log.Printf("ERROR: failed to render page for course %d: %v", course.ID, err)
		return err
	}
	return nil
}
