package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ai8v/coursepage/domain"
)

// courseID tolerates both a JSON number and a digits string; the page posts
// a number, older callers quote it. Either way it is validated as raw text
// by the catalog lookup.
type courseID string

func (c *courseID) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*c = courseID(n.String())
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*c = courseID(s)
	return nil
}

// chatRequest is the inbound widget exchange body.
type chatRequest struct {
	CourseID courseID `json:"courseId"`
	Message  string   `json:"message"`
}

// chatPayload is the settled exchange outcome. An ignored submission (blank
// input, or an exchange already in flight) reports status "ignored" so the
// widget leaves the transcript untouched.
type chatPayload struct {
	Status  string `json:"status"`
	Reply   string `json:"reply,omitempty"`
	Message string `json:"message,omitempty"`
}

// ChatExchange runs one assistant exchange for a course.
func (h *Handler) ChatExchange(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	course, ok := h.catalog.Resolve(string(req.CourseID))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "course not found"})
	}

	res := h.controller(course.ID).Send(c.Request().Context(), req.Message)
	if !res.Sent {
		return c.JSON(http.StatusOK, chatPayload{Status: "ignored"})
	}
	if res.ErrorText != "" {
		return c.JSON(http.StatusOK, chatPayload{Status: "error", Message: res.ErrorText})
	}
	return c.JSON(http.StatusOK, chatPayload{Status: "success", Reply: res.Reply})
}

// ChatHistory returns the stored transcript for a course, mainly for the
// widget to rehydrate after a soft navigation.
func (h *Handler) ChatHistory(c echo.Context) error {
	course, ok := h.catalog.Resolve(c.Param("course_id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "course not found"})
	}
	history := h.controller(course.ID).History(c.Request().Context())
	if history == nil {
		history = []domain.ChatMessage{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"courseId": strconv.Itoa(course.ID),
		"messages": history,
	})
}
