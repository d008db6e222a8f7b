package sdk

import (
	"time"
)

// Note represents a note record returned by the API
type Note struct {
	ID          uint      `json:"id"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	Likes       int       `json:"likes"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

/** Requests */

// CreateNoteRequest represents the request body for creating a new note
type CreateNoteRequest struct {
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Likes       int    `json:"likes,omitempty"`
}

// UpdateNoteRequest represents the request body for a partial note update.
// Nil fields leave the existing values unchanged; likes only apply when
// strictly positive.
type UpdateNoteRequest struct {
	Subject     *string `json:"subject,omitempty"`
	Description *string `json:"description,omitempty"`
	Likes       int     `json:"likes,omitempty"`
}

/** Responses */

// DeleteNoteResponse represents the response body after deleting a note
type DeleteNoteResponse struct {
	Deleted bool `json:"deleted"`
}

// LikeAdjustmentResponse represents the response body of a like boost or
// like reset
type LikeAdjustmentResponse struct {
	Message    string `json:"message"`
	TotalLikes int    `json:"TotalLikes"`
}

// ErrorResponse represents the structured error body returned on failures
type ErrorResponse struct {
	Timestamp string `json:"timestamp"`
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Path      string `json:"path"`
}
