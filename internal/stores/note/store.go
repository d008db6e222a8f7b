package note

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// ErrNoteNotFound is returned when a note with the requested ID does not exist
var ErrNoteNotFound = errors.New("note not found")

// Store interface defines methods for note storage
type Store interface {
	Insert(ctx context.Context, n *Note) (*Note, error)
	FindByID(ctx context.Context, id uint) (*Note, error)
	FindAll(ctx context.Context) ([]Note, error)
	Save(ctx context.Context, n *Note) (*Note, error)
	Delete(ctx context.Context, n *Note) error
	Count(ctx context.Context) (int64, error)
	FindBySubjectContaining(ctx context.Context, subject string) ([]Note, error)
	FindByLikesGreaterThan(ctx context.Context, threshold int) ([]Note, error)
}

// MySqlStore handles note persistence using GORM
type MySqlStore struct {
	db *gorm.DB
}

// NewMySqlStore creates a new note store with GORM connection
func NewMySqlStore(databaseURL string) (*MySqlStore, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &MySqlStore{db: db}

	// Auto-migrate tables
	if err := db.AutoMigrate(&Note{}); err != nil {
		return nil, fmt.Errorf("failed to migrate tables: %w", err)
	}

	return store, nil
}

// Insert creates a new note record and returns it with its assigned ID
func (s *MySqlStore) Insert(ctx context.Context, n *Note) (*Note, error) {
	if err := s.db.WithContext(ctx).Create(n).Error; err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return n, nil
}

// FindByID retrieves a note by ID
func (s *MySqlStore) FindByID(ctx context.Context, id uint) (*Note, error) {
	var n Note
	result := s.db.WithContext(ctx).First(&n, "id = ?", id)

	if result.Error != nil {
		// Handle not found error
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		// Handle generic errors
		return nil, fmt.Errorf("failed to get note: %w", result.Error)
	}

	return &n, nil
}

// FindAll retrieves all notes ordered by ID
func (s *MySqlStore) FindAll(ctx context.Context) ([]Note, error) {
	var notes []Note
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&notes).Error; err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}

	return notes, nil
}

// Save persists the current state of an existing note
func (s *MySqlStore) Save(ctx context.Context, n *Note) (*Note, error) {
	if err := s.db.WithContext(ctx).Save(n).Error; err != nil {
		return nil, fmt.Errorf("failed to save note: %w", err)
	}

	return n, nil
}

// Delete removes a note from the database
func (s *MySqlStore) Delete(ctx context.Context, n *Note) error {
	if err := s.db.WithContext(ctx).Delete(n).Error; err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	return nil
}

// Count returns the total number of notes
func (s *MySqlStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&Note{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count notes: %w", err)
	}

	return count, nil
}

// FindBySubjectContaining retrieves all notes whose subject contains the
// given text, case-insensitive
func (s *MySqlStore) FindBySubjectContaining(ctx context.Context, subject string) ([]Note, error) {
	var notes []Note
	pattern := "%" + subject + "%"

	result := s.db.WithContext(ctx).
		Where("LOWER(subject) LIKE LOWER(?)", pattern).
		Order("id ASC").
		Find(&notes)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to search notes: %w", result.Error)
	}

	return notes, nil
}

// FindByLikesGreaterThan retrieves all notes with more likes than the threshold
func (s *MySqlStore) FindByLikesGreaterThan(ctx context.Context, threshold int) ([]Note, error) {
	var notes []Note
	result := s.db.WithContext(ctx).
		Where("likes > ?", threshold).
		Order("id ASC").
		Find(&notes)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to query liked notes: %w", result.Error)
	}

	return notes, nil
}

// GetDB returns the underlying GORM database connection
func (s *MySqlStore) GetDB() *gorm.DB {
	return s.db
}

// Close closes the database connection
func (s *MySqlStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB from gorm.DB: %w", err)
	}
	return sqlDB.Close()
}
