package tui

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// PlayerSession describes one connected SSH player.
type PlayerSession struct {
	ID     string
	User   string
	Remote string
	Since  time.Time
}

// SessionRegistry tracks active SSH sessions.
// Thread-safe for concurrent access.
type SessionRegistry struct {
	mu       sync.RWMutex
	seq      uint64
	sessions map[string]PlayerSession
}

// NewSessionRegistry creates a new session registry.
func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[string]PlayerSession),
	}
}

// Register adds a session and returns its ID.
func (r *SessionRegistry) Register(user, remote string, now time.Time) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	id := fmt.Sprintf("%s-%d", user, r.seq)
	r.sessions[id] = PlayerSession{ID: id, User: user, Remote: remote, Since: now}
	return id
}

// Unregister removes a session from the registry.
func (r *SessionRegistry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Count returns the number of registered sessions.
func (r *SessionRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// List returns the sessions, oldest first.
func (r *SessionRegistry) List() []PlayerSession {
	r.mu.RLock()
	out := make([]PlayerSession, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, s)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Since.Equal(out[j].Since) {
			return out[i].Since.Before(out[j].Since)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
