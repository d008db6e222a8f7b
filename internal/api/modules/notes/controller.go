package notes_module

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/ethanbaker/noteapp/internal/stores/note"
	"github.com/ethanbaker/noteapp/pkg/sdk"
	"github.com/gin-gonic/gin"
)

// AddNote handles POST requests to create a new note
func AddNote(c *gin.Context) {
	// Parse request body
	var req sdk.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Bad Request", "Could not parse request body")
		return
	}

	n, err := GetService().AddNote(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, 0, err)
		return
	}

	c.JSON(http.StatusCreated, n)
}

// ModifyNote handles PUT requests to merge fields into an existing note
func ModifyNote(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	// Parse request body
	var patch sdk.UpdateNoteRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		errorResponse(c, http.StatusBadRequest, "Bad Request", "Could not parse request body")
		return
	}

	n, err := GetService().ModifyNote(c.Request.Context(), id, &patch)
	if err != nil {
		handleServiceError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, n)
}

// DeleteNote handles DELETE requests to remove a note
func DeleteNote(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := GetService().DeleteNote(c.Request.Context(), id); err != nil {
		handleServiceError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// SearchNotesBySubject handles GET requests to search notes by subject
func SearchNotesBySubject(c *gin.Context) {
	subject := c.Query("subject")

	notes, err := GetService().SearchNotesBySubject(c.Request.Context(), subject)
	if err != nil {
		handleServiceError(c, 0, err)
		return
	}

	c.JSON(http.StatusOK, notes)
}

// GetAllNotes handles GET requests to list every note
func GetAllNotes(c *gin.Context) {
	notes, err := GetService().GetAllNotes(c.Request.Context())
	if err != nil {
		handleServiceError(c, 0, err)
		return
	}

	c.JSON(http.StatusOK, notes)
}

// GetNoteByID handles GET requests for a single note
func GetNoteByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	n, err := GetService().GetNoteByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, n)
}

// CountTotalNotes handles GET requests for the total note count
func CountTotalNotes(c *gin.Context) {
	count, err := GetService().CountTotalNotes(c.Request.Context())
	if err != nil {
		handleServiceError(c, 0, err)
		return
	}

	c.JSON(http.StatusOK, count)
}

// GetWordCount handles GET requests for a note's description word count
func GetWordCount(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	count, err := GetService().GetWordCount(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, count)
}

// GetAverageNoteLength handles GET requests for the mean word count
// across all notes
func GetAverageNoteLength(c *gin.Context) {
	avg, err := GetService().GetAverageNoteLength(c.Request.Context())
	if err != nil {
		handleServiceError(c, 0, err)
		return
	}

	c.JSON(http.StatusOK, avg)
}

// LikeNote handles POST requests to like a note
func LikeNote(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	n, err := GetService().LikeNote(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, n)
}

// UnlikeNote handles DELETE requests to unlike a note
func UnlikeNote(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	n, err := GetService().UnlikeNote(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, n)
}

// GetLikedNotes handles GET requests for all notes with likes
func GetLikedNotes(c *gin.Context) {
	notes, err := GetService().GetLikedNotes(c.Request.Context())
	if err != nil {
		handleServiceError(c, 0, err)
		return
	}

	c.JSON(http.StatusOK, notes)
}

// GetTopLikedNotes handles GET requests for the five most liked notes
func GetTopLikedNotes(c *gin.Context) {
	notes, err := GetService().GetTopLikedNotes(c.Request.Context())
	if err != nil {
		handleServiceError(c, 0, err)
		return
	}

	c.JSON(http.StatusOK, notes)
}

// BoostLikes handles POST requests to boost a note's like count
func BoostLikes(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	n, err := GetService().BoostLikes(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Like Boost Activated!",
		"TotalLikes": n.Likes,
	})
}

// ResetLikes handles DELETE requests to reset a note's like count to zero
func ResetLikes(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	n, err := GetService().ResetLikes(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "All like resets",
		"TotalLikes": n.Likes,
	})
}

/** ---- HELPERS ---- */

// parseID reads the :id path parameter, writing a 400 response on failure
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "Bad Request",
			fmt.Sprintf("Invalid note ID: %s", c.Param("id")))
		return 0, false
	}

	return uint(id), true
}

// handleServiceError translates service failures into HTTP responses.
// A missing note becomes a 404; everything else is logged and becomes a 500.
func handleServiceError(c *gin.Context, id uint, err error) {
	if errors.Is(err, note.ErrNoteNotFound) {
		errorResponse(c, http.StatusNotFound, "Note Not Found",
			fmt.Sprintf("Note with ID %d not found", id))
		return
	}

	log.Printf("[NOTES]: %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	errorResponse(c, http.StatusInternalServerError, "Internal Server Error", err.Error())
}

// errorResponse writes the structured error body shared by all failure
// responses
func errorResponse(c *gin.Context, status int, label string, message string) {
	c.JSON(status, gin.H{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"status":    status,
		"error":     label,
		"message":   message,
		"path":      c.Request.URL.Path,
	})
}
