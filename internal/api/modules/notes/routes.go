package notes_module

import (
	"github.com/gin-gonic/gin"
)

// Register routes for the notes module
func RegisterRoutes(g *gin.RouterGroup) {
	// Create base group for note routes
	group := g.Group("/notes")

	// Collection routes
	group.POST("", AddNote)                            // Create a new note
	group.GET("", GetAllNotes)                         // List all notes
	group.GET("/search", SearchNotesBySubject)         // Search notes by subject
	group.GET("/count", CountTotalNotes)               // Total note count
	group.GET("/average-length", GetAverageNoteLength) // Mean word count across notes
	group.GET("/liked", GetLikedNotes)                 // All notes with likes
	group.GET("/top-liked", GetTopLikedNotes)          // Five most liked notes

	// Single note routes
	group.GET("/word-count/:id", GetWordCount) // Word count of one note
	group.GET("/:id", GetNoteByID)             // Get a note by ID
	group.PUT("/:id", ModifyNote)              // Merge fields into a note
	group.DELETE("/:id", DeleteNote)           // Delete a note

	// Like routes
	group.POST("/:id/like", LikeNote)           // Increment likes
	group.DELETE("/:id/unlike", UnlikeNote)     // Decrement likes (never below zero)
	group.POST("/:id/like-boost", BoostLikes)   // Add ten likes
	group.DELETE("/:id/like-reset", ResetLikes) // Force likes back to zero
}
