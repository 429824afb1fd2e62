// Package api provides the HTTP handlers for the course page service.
package api

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/ai8v/coursepage/assistant"
	"github.com/ai8v/coursepage/catalog"
	"github.com/ai8v/coursepage/chat"
	"github.com/ai8v/coursepage/config"
	"github.com/ai8v/coursepage/ratings"
	"github.com/ai8v/coursepage/render"
	"github.com/ai8v/coursepage/store"
)

// Handler handles HTTP requests.
type Handler struct {
	catalog    *catalog.Catalog
	renderer   *render.Renderer
	ratings    *ratings.Client
	assistant  *assistant.Client
	guard      chat.Guard
	transcript store.TranscriptStore
	config     *config.Config

	mu          sync.Mutex
	controllers map[int]*chat.Controller
}

// NewHandler creates a new handler.
func NewHandler(cat *catalog.Catalog, renderer *render.Renderer, ratingsClient *ratings.Client,
	assistantClient *assistant.Client, guard chat.Guard, transcript store.TranscriptStore, cfg *config.Config) *Handler {
	return &Handler{
		catalog:     cat,
		renderer:    renderer,
		ratings:     ratingsClient,
		assistant:   assistantClient,
		guard:       guard,
		transcript:  transcript,
		config:      cfg,
		controllers: make(map[int]*chat.Controller),
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Page
	e.GET("/course/course-details", h.CoursePage)
	e.GET("/course/course-details/", h.CoursePage)

	// Widget APIs
	e.GET("/api/ratings/:course_id", h.GetRatings)
	e.POST("/api/ratings/:course_id", h.SubmitRating)
	e.POST("/api/chat", h.ChatExchange)
	e.GET("/api/chat/:course_id/history", h.ChatHistory)

	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "0.1.0",
	})
}

// controller returns the chat controller for a course, creating it on first
// use. One controller per course keeps the single-in-flight rule per page.
func (h *Handler) controller(courseID int) *chat.Controller {
	h.mu.Lock()
	defer h.mu.Unlock()
	if ctl, ok := h.controllers[courseID]; ok {
		return ctl
	}
	ctl := chat.NewController(courseID, h.transcript, h.assistant, h.guard, chat.Config{
		MaxMessageLen: h.config.ChatMaxMessageLen,
		Timeout:       h.config.AssistantTimeout,
		ErrorMessage:  h.catalog.Meta.ChatErrorMessage,
	})
	h.controllers[courseID] = ctl
	return ctl
}
