package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ai8v/coursepage/domain"
	"github.com/ai8v/coursepage/view"
)

// ratingDisplay is the pre-formatted text the page patches in live.
type ratingDisplay struct {
	Average   string `json:"average"`
	CountText string `json:"countText"`
}

// ratingPayload is the live-aggregate response for one course.
type ratingPayload struct {
	Average float64       `json:"average"`
	Count   int           `json:"count"`
	Error   bool          `json:"error,omitempty"`
	Display ratingDisplay `json:"display"`

	// CourseSchema is the Course JSON-LD document with the aggregate merged
	// in, present only when there is at least one rating.
	CourseSchema json.RawMessage `json:"courseSchema,omitempty"`
}

// GetRatings proxies the live rating aggregate. A ratings-service failure is
// not an error here: the page keeps its neutral placeholder and moves on.
func (h *Handler) GetRatings(c echo.Context) error {
	course, ok := h.catalog.Resolve(c.Param("course_id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "course not found"})
	}

	agg, err := h.ratings.Fetch(c.Request().Context(), course.ID)
	if err != nil || agg.Error {
		if err != nil {
			log.Printf("WARN: failed to fetch ratings for course %d: %v", course.ID, err)
		}
		return c.JSON(http.StatusOK, ratingPayload{
			Error: true,
			Display: ratingDisplay{
				Average:   view.RatingAverageText(0),
				CountText: "Could not load ratings.",
			},
		})
	}

	payload := ratingPayload{
		Average: agg.Average,
		Count:   agg.Count,
		Display: ratingDisplay{
			Average:   view.RatingAverageText(agg.Average),
			CountText: view.RatingCountText(agg.Count),
		},
	}

	if agg.Count > 0 {
		schemas, err := view.BuildSchemas(h.catalog, course)
		if err == nil {
			patched, perr := view.PatchAggregateRating([]byte(schemas[0]), agg.Average, agg.Count)
			if perr != nil {
				log.Printf("WARN: failed to patch course schema for course %d: %v", course.ID, perr)
			} else {
				payload.CourseSchema = patched
			}
		}
	}

	return c.JSON(http.StatusOK, payload)
}

// submitPayload is the submission outcome, with the refreshed aggregate on
// success so the page can repaint without a second request.
type submitPayload struct {
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Ratings *ratingPayload `json:"ratings,omitempty"`
}

// SubmitRating validates and forwards one rating, then re-fetches the
// aggregate.
func (h *Handler) SubmitRating(c echo.Context) error {
	course, ok := h.catalog.Resolve(c.Param("course_id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "course not found"})
	}

	var req domain.RatingSubmission
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.Value < 1 || req.Value > 5 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "rating value must be between 1 and 5"})
	}

	result, err := h.ratings.Submit(c.Request().Context(), course.ID, req.Value)
	if err != nil {
		log.Printf("ERROR: failed to submit rating for course %d: %v", course.ID, err)
		return c.JSON(http.StatusOK, submitPayload{
			Status:  "error",
			Message: "Something went wrong. Please try again.",
		})
	}

	if result.Status != "success" {
		message := result.Message
		if message == "" {
			message = "Something went wrong. Please try again."
		}
		return c.JSON(http.StatusOK, submitPayload{Status: "error", Message: message})
	}

	payload := submitPayload{Status: "success", Message: "Thank you for your rating!"}
	if agg, err := h.ratings.Fetch(c.Request().Context(), course.ID); err == nil && !agg.Error {
		payload.Ratings = &ratingPayload{
			Average: agg.Average,
			Count:   agg.Count,
			Display: ratingDisplay{
				Average:   view.RatingAverageText(agg.Average),
				CountText: view.RatingCountText(agg.Count),
			},
		}
	}
	return c.JSON(http.StatusOK, payload)
}
