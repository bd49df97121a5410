package store

import (
	"sync"
	"time"

	"github.com/neo-rakk/smala/internal/models"
)

// MemoryStore is a map-backed Store with the same replace-on-write and
// notification semantics as the database one. Used in tests.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]models.RoomDocument
	subs *subscribers
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs: make(map[string]models.RoomDocument),
		subs: newSubscribers(),
	}
}

func (s *MemoryStore) Read(key string) (*models.RoomDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[key]
	if !ok {
		return nil, nil
	}
	payload := make([]byte, len(doc.Payload))
	copy(payload, doc.Payload)
	doc.Payload = payload
	return &doc, nil
}

func (s *MemoryStore) Upsert(doc *models.RoomDocument) error {
	doc.UpdatedAt = time.Now()

	s.mu.Lock()
	stored := *doc
	stored.Payload = make([]byte, len(doc.Payload))
	copy(stored.Payload, doc.Payload)
	s.docs[doc.ID] = stored
	s.mu.Unlock()

	s.subs.notify(doc.ID, doc)
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	delete(s.docs, key)
	s.mu.Unlock()

	s.subs.notify(key, nil)
	return nil
}

func (s *MemoryStore) Subscribe(key string, fn func(*models.RoomDocument)) func() {
	return s.subs.add(key, fn)
}
