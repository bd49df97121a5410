package services

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/neo-rakk/smala/internal/game"
	"github.com/neo-rakk/smala/internal/models"
	"github.com/neo-rakk/smala/internal/store"

	"github.com/sirupsen/logrus"
)

// Scoreboard is where finished matches get recorded.
type Scoreboard interface {
	Append(teamName string, score int) (*models.LeaderboardEntry, error)
}

// GameService runs the dispatch pipeline: load the stored room, apply
// the reducer, persist the result. The store fans the new document out
// to subscribers; this service never talks to the hub directly.
type GameService struct {
	store   store.Store
	reducer *game.Reducer
	board   Scoreboard
	key     string

	// Serializes dispatches from this process. Cross-process writers
	// still race and resolve as last-write-wins at the store.
	mu sync.Mutex
}

func NewGameService(st store.Store, reducer *game.Reducer, board Scoreboard, key string) *GameService {
	return &GameService{store: st, reducer: reducer, board: board, key: key}
}

// GetState returns the current room, or nil when no game is stored.
func (s *GameService) GetState() (*game.Room, error) {
	doc, err := s.store.Read(s.key)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}

	var room game.Room
	if err := json.Unmarshal(doc.Payload, &room); err != nil {
		// A corrupt document should not take the show down; the next
		// dispatch starts over from a fresh room.
		logrus.WithError(err).WithField("key", s.key).Warn("game: stored payload is corrupt, ignoring")
		return nil, nil
	}
	return &room, nil
}

// DispatchRaw decodes a wire-form action and dispatches it. Unknown
// action types fall through as a no-op but the state is still written
// back, which is harmless.
func (s *GameService) DispatchRaw(actionType string, payload json.RawMessage) (*game.Room, error) {
	action, err := game.ParseAction(actionType, payload)
	if err != nil {
		return nil, err
	}
	return s.Dispatch(action)
}

// Dispatch applies one action and persists the outcome. A nil room
// result means the game was reset: the winner is recorded on the
// leaderboard when the match had finished, then the document is deleted.
func (s *GameService) Dispatch(action game.Action) (*game.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.GetState()
	if err != nil {
		return nil, err
	}

	next := s.reducer.Apply(current, action)
	if next == nil {
		if current != nil && current.State == game.StateFinished {
			name, score := current.Winner()
			if _, err := s.board.Append(name, score); err != nil {
				logrus.WithError(err).Warn("game: leaderboard append failed")
			}
		}
		if err := s.store.Delete(s.key); err != nil {
			return nil, err
		}
		return nil, nil
	}

	payload, err := json.Marshal(next)
	if err != nil {
		return nil, fmt.Errorf("encode room: %w", err)
	}
	doc := &models.RoomDocument{ID: s.key, Payload: payload, HostID: next.HostID}
	if err := s.store.Upsert(doc); err != nil {
		// Best-effort live show: keep the locally computed state and
		// accept divergence until the next successful write.
		logrus.WithError(err).Warn("game: state write failed, local state diverges")
	}
	return next, nil
}
