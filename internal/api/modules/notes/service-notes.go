package notes_module

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/ethanbaker/noteapp/internal/stores/note"
	"github.com/ethanbaker/noteapp/pkg/sdk"
	"github.com/ethanbaker/noteapp/pkg/utils"
	"github.com/go-sql-driver/mysql"
)

// topLikedLimit is the number of notes returned by the top-liked ranking
const topLikedLimit = 5

// likeBoostAmount is the fixed number of likes added by a boost
const likeBoostAmount = 10

// NotesService handles all business logic over notes
type NotesService struct {
	store note.Store
}

var notesService *NotesService

/** ---- INIT ---- */

// Init creates a new notes service backed by MySQL, falling back to an
// in-memory store when no database is configured
func Init(cfg *utils.Config) error {
	// Create MySQL config
	dbConfig := mysql.Config{
		User:      cfg.Get("MYSQL_USER"),
		Passwd:    cfg.Get("MYSQL_ROOT_PASSWORD"),
		Net:       "tcp",
		Addr:      fmt.Sprintf("%s:%s", cfg.Get("MYSQL_HOST"), cfg.Get("MYSQL_PORT")),
		DBName:    cfg.Get("MYSQL_DATABASE"),
		ParseTime: true,
	}

	// Create store
	var store note.Store
	if dbConfig.DBName != "" {
		// Create sql store
		sqlStore, err := note.NewMySqlStore(dbConfig.FormatDSN())
		if err != nil {
			return err
		}
		store = sqlStore
	} else {
		// Fallback to in-memory store
		log.Println("[NOTES]: Warning, MYSQL_DATABASE not set, using in-memory store (data will not persist across restarts)")
		store = note.NewInMemoryStore()
	}

	notesService = NewNotesService(store)
	return nil
}

// NewNotesService creates a notes service on top of the given store
func NewNotesService(store note.Store) *NotesService {
	return &NotesService{store: store}
}

// GetService returns the initialized notes service
func GetService() *NotesService {
	return notesService
}

/** ---- OPERATIONS ---- */

// AddNote stamps timestamps on a new note and persists it
func (s *NotesService) AddNote(ctx context.Context, req *sdk.CreateNoteRequest) (*note.Note, error) {
	now := time.Now().UTC()

	n := &note.Note{
		Subject:     req.Subject,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Likes default to zero unless the caller explicitly sets a positive count
	if req.Likes > 0 {
		n.Likes = req.Likes
	}

	return s.store.Insert(ctx, n)
}

// ModifyNote merges the supplied fields into an existing note
//
// Subject and description only overwrite when present in the patch. Likes
// only overwrite when strictly positive, so likes can never be zeroed
// through this path.
func (s *NotesService) ModifyNote(ctx context.Context, id uint, patch *sdk.UpdateNoteRequest) (*note.Note, error) {
	n, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Subject != nil {
		n.Subject = *patch.Subject
	}
	if patch.Description != nil {
		n.Description = *patch.Description
	}
	n.UpdatedAt = time.Now().UTC()
	if patch.Likes > 0 {
		n.Likes = patch.Likes
	}

	return s.store.Save(ctx, n)
}

// DeleteNote removes a note from the store
func (s *NotesService) DeleteNote(ctx context.Context, id uint) error {
	n, err := s.store.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, n); err != nil {
		return fmt.Errorf("unable to delete note: %w", err)
	}

	return nil
}

// SearchNotesBySubject finds notes whose subject contains the given text,
// case-insensitive. An empty result is not an error.
func (s *NotesService) SearchNotesBySubject(ctx context.Context, subject string) ([]note.Note, error) {
	notes, err := s.store.FindBySubjectContaining(ctx, subject)
	if err != nil {
		return nil, err
	}

	if len(notes) == 0 {
		log.Printf("[NOTES]: No notes found with subject containing: %s", subject)
	}

	return notes, nil
}

// GetNoteByID fetches a single note
func (s *NotesService) GetNoteByID(ctx context.Context, id uint) (*note.Note, error) {
	return s.store.FindByID(ctx, id)
}

// GetAllNotes fetches every note in the store
func (s *NotesService) GetAllNotes(ctx context.Context) ([]note.Note, error) {
	return s.store.FindAll(ctx)
}

// CountTotalNotes returns the total number of notes
func (s *NotesService) CountTotalNotes(ctx context.Context) (int64, error) {
	return s.store.Count(ctx)
}

// GetWordCount returns the number of whitespace-delimited words in a
// note's description
func (s *NotesService) GetWordCount(ctx context.Context, id uint) (int, error) {
	n, err := s.store.FindByID(ctx, id)
	if err != nil {
		return 0, err
	}

	return wordCount(n.Description), nil
}

// GetAverageNoteLength returns the mean word count across all notes,
// or 0.0 when the store is empty
func (s *NotesService) GetAverageNoteLength(ctx context.Context) (float64, error) {
	notes, err := s.store.FindAll(ctx)
	if err != nil {
		return 0, err
	}

	if len(notes) == 0 {
		return 0.0, nil
	}

	total := 0
	for _, n := range notes {
		total += wordCount(n.Description)
	}

	return float64(total) / float64(len(notes)), nil
}

// LikeNote increments a note's like count by one
func (s *NotesService) LikeNote(ctx context.Context, id uint) (*note.Note, error) {
	n, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	n.Likes++
	n.UpdatedAt = time.Now().UTC()

	return s.store.Save(ctx, n)
}

// UnlikeNote decrements a note's like count by one, never below zero
func (s *NotesService) UnlikeNote(ctx context.Context, id uint) (*note.Note, error) {
	n, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	n.Likes = max(n.Likes-1, 0)
	n.UpdatedAt = time.Now().UTC()

	return s.store.Save(ctx, n)
}

// GetLikedNotes returns all notes with at least one like
func (s *NotesService) GetLikedNotes(ctx context.Context) ([]note.Note, error) {
	return s.store.FindByLikesGreaterThan(ctx, 0)
}

// GetTopLikedNotes returns the five most liked notes in descending order.
// Ties keep store order, so the ranking is deterministic.
func (s *NotesService) GetTopLikedNotes(ctx context.Context) ([]note.Note, error) {
	notes, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].Likes > notes[j].Likes
	})

	if len(notes) > topLikedLimit {
		notes = notes[:topLikedLimit]
	}

	return notes, nil
}

// BoostLikes adds a fixed boost to a note's like count
//
// The updated timestamp is intentionally left alone here, matching the
// observed behavior of like boosts.
func (s *NotesService) BoostLikes(ctx context.Context, id uint) (*note.Note, error) {
	n, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	n.Likes += likeBoostAmount

	return s.store.Save(ctx, n)
}

// ResetLikes forces a note's like count back to zero
//
// Like BoostLikes, this does not touch the updated timestamp.
func (s *NotesService) ResetLikes(ctx context.Context, id uint) (*note.Note, error) {
	n, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	n.Likes = 0

	return s.store.Save(ctx, n)
}

// wordCount counts whitespace-delimited words, collapsing whitespace runs
func wordCount(description string) int {
	return len(strings.Fields(description))
}
