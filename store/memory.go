package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/sicko7947/carlist"
)

// MemoryStore implements carlist.RecordStore using in-memory storage (for testing)
type MemoryStore struct {
	records   map[string]map[string]*carlist.Record // ownerID -> recordID -> record
	publicURL carlist.PublicURLFunc
	mu        sync.RWMutex
}

// NewMemoryStore creates a new in-memory record store
func NewMemoryStore(publicURL carlist.PublicURLFunc) *MemoryStore {
	return &MemoryStore{
		records:   make(map[string]map[string]*carlist.Record),
		publicURL: publicURL,
	}
}

func (s *MemoryStore) ListByOwner(ctx context.Context, ownerID string) ([]*carlist.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := []*carlist.Record{}
	for _, record := range s.records[ownerID] {
		recordCopy := *record
		records = append(records, &recordCopy)
	}

	return records, nil
}

func (s *MemoryStore) Insert(ctx context.Context, record *carlist.Record) (*carlist.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *record
	stored.AttachmentURL = s.publicURL(record.RecordID)

	if s.records[record.OwnerID] == nil {
		s.records[record.OwnerID] = make(map[string]*carlist.Record)
	}
	s.records[record.OwnerID][record.RecordID] = &stored

	storedCopy := stored
	return &storedCopy, nil
}

func (s *MemoryStore) Update(ctx context.Context, record *carlist.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.records[record.OwnerID][record.RecordID]
	if !ok {
		return fmt.Errorf("failed to update record: %w", carlist.ErrNotFound)
	}

	existing.Name = record.Name
	existing.Category = record.Category
	existing.Variant = record.Variant
	existing.ContactEmail = record.ContactEmail
	existing.Description = record.Description

	return nil
}

func (s *MemoryStore) SetAttachmentURL(ctx context.Context, ownerID, recordID, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.records[ownerID][recordID]
	if !ok {
		return fmt.Errorf("failed to set attachment url: %w", carlist.ErrNotFound)
	}

	existing.AttachmentURL = url
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, ownerID, recordID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[ownerID][recordID]; !ok {
		return fmt.Errorf("failed to delete record: %w", carlist.ErrNotFound)
	}

	delete(s.records[ownerID], recordID)
	return nil
}
