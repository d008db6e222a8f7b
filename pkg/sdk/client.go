package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client wraps calls to the noteapp backend
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Create a new note
func (c *Client) CreateNote(ctx context.Context, req *CreateNoteRequest) (*Note, error) {
	var out Note
	if err := c.doJSON(ctx, http.MethodPost, "/api/notes", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Modify an existing note by ID with a partial update
func (c *Client) ModifyNote(ctx context.Context, id uint, req *UpdateNoteRequest) (*Note, error) {
	path := fmt.Sprintf("/api/notes/%d", id)

	var out Note
	if err := c.doJSON(ctx, http.MethodPut, path, req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Delete an existing note by ID
func (c *Client) DeleteNote(ctx context.Context, id uint) error {
	path := fmt.Sprintf("/api/notes/%d", id)

	var out DeleteNoteResponse
	if err := c.doJSON(ctx, http.MethodDelete, path, nil, &out); err != nil {
		return err
	}

	if !out.Deleted {
		return fmt.Errorf("note %d was not deleted", id)
	}

	return nil
}

// Search notes by subject substring (case-insensitive)
func (c *Client) SearchNotes(ctx context.Context, subject string) ([]Note, error) {
	path := "/api/notes/search?subject=" + url.QueryEscape(subject)

	var out []Note
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// Get all notes
func (c *Client) GetNotes(ctx context.Context) ([]Note, error) {
	var out []Note
	if err := c.doJSON(ctx, http.MethodGet, "/api/notes", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// Get a note by ID
func (c *Client) GetNote(ctx context.Context, id uint) (*Note, error) {
	path := fmt.Sprintf("/api/notes/%d", id)

	var out Note
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Get the total number of notes
func (c *Client) CountNotes(ctx context.Context) (int64, error) {
	var out int64
	if err := c.doJSON(ctx, http.MethodGet, "/api/notes/count", nil, &out); err != nil {
		return 0, err
	}

	return out, nil
}

// Get the word count of a note's description
func (c *Client) GetWordCount(ctx context.Context, id uint) (int, error) {
	path := fmt.Sprintf("/api/notes/word-count/%d", id)

	var out int
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return 0, err
	}

	return out, nil
}

// Get the average description word count across all notes
func (c *Client) GetAverageNoteLength(ctx context.Context) (float64, error) {
	var out float64
	if err := c.doJSON(ctx, http.MethodGet, "/api/notes/average-length", nil, &out); err != nil {
		return 0, err
	}

	return out, nil
}

// Like a note by ID
func (c *Client) LikeNote(ctx context.Context, id uint) (*Note, error) {
	path := fmt.Sprintf("/api/notes/%d/like", id)

	var out Note
	if err := c.doJSON(ctx, http.MethodPost, path, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Unlike a note by ID
func (c *Client) UnlikeNote(ctx context.Context, id uint) (*Note, error) {
	path := fmt.Sprintf("/api/notes/%d/unlike", id)

	var out Note
	if err := c.doJSON(ctx, http.MethodDelete, path, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Get all notes with at least one like
func (c *Client) GetLikedNotes(ctx context.Context) ([]Note, error) {
	var out []Note
	if err := c.doJSON(ctx, http.MethodGet, "/api/notes/liked", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// Get the five most liked notes
func (c *Client) GetTopLikedNotes(ctx context.Context) ([]Note, error) {
	var out []Note
	if err := c.doJSON(ctx, http.MethodGet, "/api/notes/top-liked", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// Boost a note's like count by ten
func (c *Client) BoostLikes(ctx context.Context, id uint) (*LikeAdjustmentResponse, error) {
	path := fmt.Sprintf("/api/notes/%d/like-boost", id)

	var out LikeAdjustmentResponse
	if err := c.doJSON(ctx, http.MethodPost, path, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Reset a note's like count to zero
func (c *Client) ResetLikes(ctx context.Context, id uint) (*LikeAdjustmentResponse, error) {
	path := fmt.Sprintf("/api/notes/%d/like-reset", id)

	var out LikeAdjustmentResponse
	if err := c.doJSON(ctx, http.MethodDelete, path, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// doJSON is a helper to perform JSON requests to the backend
func (c *Client) doJSON(ctx context.Context, method, path string, in any, out any) error {
	// Create request body if input is provided
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(b)
	}

	// Create the request
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	// Perform the request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// On error, decode the structured error body if possible
		b, _ := io.ReadAll(resp.Body)

		var apiErr ErrorResponse
		if jsonErr := json.Unmarshal(b, &apiErr); jsonErr == nil && apiErr.Status != 0 {
			return fmt.Errorf("backend '%s %s' failed: %d %s: %s", method, path, apiErr.Status, apiErr.Error, apiErr.Message)
		}

		return fmt.Errorf("backend '%s %s' failed: %d: %s", method, path, resp.StatusCode, string(b))
	}

	// If no output expected, return early
	if out == nil {
		return nil
	}

	// Decode the response body into the output struct
	dec := json.NewDecoder(resp.Body)
	return dec.Decode(out)
}
