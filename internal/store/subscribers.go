package store

import (
	"sync"

	"github.com/neo-rakk/smala/internal/models"
)

// subscribers is the in-process change registry shared by the store
// implementations. Delivery is synchronous and best-effort: a callback
// runs on the writer's goroutine after the write succeeded.
type subscribers struct {
	mu   sync.Mutex
	next int
	subs map[string]map[int]func(*models.RoomDocument)
}

func newSubscribers() *subscribers {
	return &subscribers{subs: make(map[string]map[int]func(*models.RoomDocument))}
}

func (s *subscribers) add(key string, fn func(*models.RoomDocument)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.subs[key] == nil {
		s.subs[key] = make(map[int]func(*models.RoomDocument))
	}
	id := s.next
	s.next++
	s.subs[key][id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if fns, ok := s.subs[key]; ok {
			delete(fns, id)
			if len(fns) == 0 {
				delete(s.subs, key)
			}
		}
	}
}

func (s *subscribers) notify(key string, doc *models.RoomDocument) {
	s.mu.Lock()
	fns := make([]func(*models.RoomDocument), 0, len(s.subs[key]))
	for _, fn := range s.subs[key] {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(doc)
	}
}
