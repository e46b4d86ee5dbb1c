// internal/store/memory.go
//
// In-memory implementation of the game.Store interface.
// This is a lightweight persistence layer for ephemeral game sessions;
// state is lost when the process restarts.
//
// Characteristics:
//   - Stores *game.Session objects keyed by ID in a map.
//   - The map itself is guarded by an RWMutex.
//   - Each session additionally carries its own mutex, so Mutate calls
//     against the same session serialize while sessions with different
//     ids mutate fully in parallel. Turn/round advancement is not
//     commutative, which makes the per-id lock load-bearing.
//   - Save, Get, and Mutate only ever hand out clones, taken under the
//     session's lock. A caller polling state while another mutates the
//     same session never observes a half-applied guess, and nothing a
//     caller does to a returned session reaches the stored one.
//   - Typed KindNotFound errors for missing session ids.

package store

import (
	"context"
	"sync"

	"github.com/wordarena/go-server/internal/game"
)

// entry pairs a session with its mutation lock.
type entry struct {
	mu   sync.Mutex
	sess *game.Session
}

// Memory is an in-memory map-based game.Store implementation.
type Memory struct {
	mu       sync.RWMutex // guards sessions map
	sessions map[string]*entry
}

// NewMemory constructs an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{sessions: make(map[string]*entry)}
}

// Save registers a newly created session. The store keeps its own clone,
// so the caller's pointer never aliases live state.
func (m *Memory) Save(ctx context.Context, s *game.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = &entry{sess: s.Clone()}
	return nil
}

// Get looks up a session by ID and returns a clone taken under the
// session's lock.
func (m *Memory) Get(ctx context.Context, id string) (*game.Session, error) {
	m.mu.RLock()
	e, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, game.Errorf(game.KindNotFound, "game %q not found", id)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sess.Clone(), nil
}

// Mutate applies fn to the session under its exclusive lock and returns a
// clone of the result. If fn returns an error the error is passed through
// and nothing is persisted.
func (m *Memory) Mutate(ctx context.Context, id string, fn func(*game.Session) error) (*game.Session, error) {
	m.mu.RLock()
	e, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, game.Errorf(game.KindNotFound, "game %q not found", id)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if err := fn(e.sess); err != nil {
		return nil, err
	}
	return e.sess.Clone(), nil
}
