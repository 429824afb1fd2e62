// Package ratings provides the client for the ratings microservice.
package ratings

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/ai8v/coursepage/domain"
)

// Client is the ratings service client. Requests have no timeout of their
// own; they resolve or reject once, cancellation comes only from ctx.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new ratings client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// Fetch retrieves the live rating aggregate for a course.
func (c *Client) Fetch(ctx context.Context, courseID int) (*domain.RatingAggregate, error) {
	url := c.baseURL + "/ratings?course_id=" + strconv.Itoa(courseID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ratings API error [%d]: %s", resp.StatusCode, string(respBody))
	}

	var result domain.RatingAggregate
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &result, nil
}

// Submit sends one rating for a course. Value must already be validated to
// the 1-5 range by the caller.
func (c *Client) Submit(ctx context.Context, courseID, value int) (*domain.SubmitResult, error) {
	body, err := json.Marshal(map[string]int{
		"courseId": courseID,
		"value":    value,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/ratings", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ratings API error [%d]: %s", resp.StatusCode, string(respBody))
	}

	var result domain.SubmitResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &result, nil
}
