package usecase

import (
	"sync"

	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
	"github.com/rocketscienceinc/monopoly-backend/internal/eventlog"
)

// session is one live game. mu serializes every read and write of the game and its log.
type session struct {
	mu      sync.Mutex
	game    *entity.Game
	log     *eventlog.Log
	deleted bool
}

// Registry - the arena of live sessions addressed by game id.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*session),
	}
}

func (that *Registry) get(id string) (*session, bool) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	s, ok := that.sessions[id]
	return s, ok
}

// add - stores the session unless one is already registered under the id, and returns
// whichever is registered.
func (that *Registry) add(id string, s *session) *session {
	that.mu.Lock()
	defer that.mu.Unlock()

	if existing, ok := that.sessions[id]; ok {
		return existing
	}

	that.sessions[id] = s

	return s
}

func (that *Registry) remove(id string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.sessions, id)
}

func (that *Registry) Len() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.sessions)
}
