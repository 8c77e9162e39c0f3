package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tadeyemo32/persona-backend/models"
)

// ErrStoreUnavailable wraps any storage-layer I/O or serialization failure.
// Absence of a record is never reported through it.
var ErrStoreUnavailable = errors.New("history store unavailable")

// HistoryStore is the durable keyed store for enrichment history records.
// All mutation goes through Put, which also maintains the secondary index;
// nothing else touches the index.
type HistoryStore interface {
	// Get returns the record at the fingerprint, or (nil, nil) when absent.
	Get(fingerprint string) (*models.SearchHistoryEntry, error)

	// Put creates or overwrites the record at entry.ID and ensures the
	// secondary index contains entry.ID, as one atomic operation.
	Put(entry *models.SearchHistoryEntry) error

	// List returns every record reachable via the secondary index, in
	// store order. Presentation ordering is the caller's job.
	List() ([]models.SearchHistoryEntry, error)

	// ListByOwner returns the given user's records, newest first,
	// fingerprint ascending on equal timestamps.
	ListByOwner(userID string) ([]models.SearchHistoryEntry, error)
}

// GormHistoryStore persists history records in SQLite through GORM.
type GormHistoryStore struct {
	db *gorm.DB
}

func NewGormHistoryStore(db *gorm.DB) *GormHistoryStore {
	return &GormHistoryStore{db: db}
}

func (s *GormHistoryStore) Get(fingerprint string) (*models.SearchHistoryEntry, error) {
	var entry models.SearchHistoryEntry
	err := s.db.First(&entry, "id = ?", fingerprint).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %v", ErrStoreUnavailable, fingerprint, err)
	}
	return &entry, nil
}

func (s *GormHistoryStore) Put(entry *models.SearchHistoryEntry) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Record first, index second: a failure in between can only leave
		// a record whose index row is recoverable by rebuild, never a
		// dangling index entry. The conflict columns are spelled out so a
		// refresh replaces the whole row, created_at included.
		upsert := clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"query", "data", "created_at", "user_id"}),
		}
		if err := tx.Clauses(upsert).Create(entry).Error; err != nil {
			return err
		}
		idx := models.SearchIndexEntry{Fingerprint: entry.ID}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&idx).Error
	})
	if err != nil {
		return fmt.Errorf("%w: put %s: %v", ErrStoreUnavailable, entry.ID, err)
	}
	return nil
}

func (s *GormHistoryStore) List() ([]models.SearchHistoryEntry, error) {
	entries, err := s.listIndexed(s.db)
	if err != nil {
		return nil, fmt.Errorf("%w: list: %v", ErrStoreUnavailable, err)
	}
	return entries, nil
}

func (s *GormHistoryStore) ListByOwner(userID string) ([]models.SearchHistoryEntry, error) {
	q := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id ASC")
	entries, err := s.listIndexed(q)
	if err != nil {
		return nil, fmt.Errorf("%w: list for %s: %v", ErrStoreUnavailable, userID, err)
	}
	return entries, nil
}

// listIndexed fetches records whose fingerprint appears in the secondary
// index, so enumeration never depends on a full scan of the record table.
func (s *GormHistoryStore) listIndexed(q *gorm.DB) ([]models.SearchHistoryEntry, error) {
	var entries []models.SearchHistoryEntry
	sub := s.db.Model(&models.SearchIndexEntry{}).Select("fingerprint")
	err := q.Where("id IN (?)", sub).Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

var _ HistoryStore = (*GormHistoryStore)(nil)
