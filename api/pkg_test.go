package api

import (
	"testing"
	"time"

	"github.com/ai8v/coursepage/assistant"
	"github.com/ai8v/coursepage/catalog"
	"github.com/ai8v/coursepage/config"
	"github.com/ai8v/coursepage/ratings"
	"github.com/ai8v/coursepage/render"
	"github.com/ai8v/coursepage/tests/helpers"
)

func newTestHandler(t *testing.T, ratingsURL, assistantURL string) *Handler {
	t.Helper()

	renderer, err := render.New()
	if err != nil {
		t.Fatalf("failed to create renderer: %v", err)
	}

	cfg := &config.Config{
		ChatMaxMessageLen: 500,
		ChatMaxHistory:    20,
		AssistantTimeout:  time.Second,
	}

	return NewHandler(
		catalog.Default(),
		renderer,
		ratings.NewClient(ratingsURL),
		assistant.NewClient(assistantURL, "", cfg.AssistantTimeout),
		nil,
		helpers.NewTestSQLiteStore(t),
		cfg,
	)
}
