package note

import (
	"context"
	"strings"
	"sync"
)

// InMemoryStore keeps notes in memory (for one-off runs and tests)
//
// Iteration order follows insertion order so that scans are stable within
// a process lifetime.
type InMemoryStore struct {
	notes  map[uint]*Note
	order  []uint // insertion order of IDs
	nextID uint
	mu     sync.RWMutex
}

// NewInMemoryStore creates a new in-memory note store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		notes:  make(map[uint]*Note),
		order:  []uint{},
		nextID: 1,
	}
}

// Insert creates a new note record and returns it with its assigned ID
func (s *InMemoryStore) Insert(ctx context.Context, n *Note) (*Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n.ID = s.nextID
	s.nextID++

	copied := *n
	s.notes[copied.ID] = &copied
	s.order = append(s.order, copied.ID)

	return n, nil
}

// FindByID retrieves a note by ID
func (s *InMemoryStore) FindByID(ctx context.Context, id uint) (*Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, exists := s.notes[id]
	if !exists {
		return nil, ErrNoteNotFound
	}

	// Return a copy so callers cannot mutate stored state directly
	copied := *n
	return &copied, nil
}

// FindAll retrieves all notes in insertion order
func (s *InMemoryStore) FindAll(ctx context.Context) ([]Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notes := make([]Note, 0, len(s.order))
	for _, id := range s.order {
		notes = append(notes, *s.notes[id])
	}

	return notes, nil
}

// Save persists the current state of an existing note
func (s *InMemoryStore) Save(ctx context.Context, n *Note) (*Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.notes[n.ID]; !exists {
		return nil, ErrNoteNotFound
	}

	copied := *n
	s.notes[copied.ID] = &copied

	return n, nil
}

// Delete removes a note from the store
func (s *InMemoryStore) Delete(ctx context.Context, n *Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.notes[n.ID]; !exists {
		return ErrNoteNotFound
	}

	delete(s.notes, n.ID)
	for i, id := range s.order {
		if id == n.ID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return nil
}

// Count returns the total number of notes
func (s *InMemoryStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.notes)), nil
}

// FindBySubjectContaining retrieves all notes whose subject contains the
// given text, case-insensitive
func (s *InMemoryStore) FindBySubjectContaining(ctx context.Context, subject string) ([]Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(subject)

	notes := []Note{}
	for _, id := range s.order {
		n := s.notes[id]
		if strings.Contains(strings.ToLower(n.Subject), needle) {
			notes = append(notes, *n)
		}
	}

	return notes, nil
}

// FindByLikesGreaterThan retrieves all notes with more likes than the threshold
func (s *InMemoryStore) FindByLikesGreaterThan(ctx context.Context, threshold int) ([]Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notes := []Note{}
	for _, id := range s.order {
		n := s.notes[id]
		if n.Likes > threshold {
			notes = append(notes, *n)
		}
	}

	return notes, nil
}
