// Package session tracks which issued tokens are still live, so that logout
// actually invalidates a session instead of waiting out the JWT expiry.
package session

import (
	"sync"
)

// Registry is an in-process set of live session token IDs. It is the server
// side of the original's single persistent-storage entry: presence means
// signed in, absence means logged out.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]string // token ID → employee ID
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]string)}
}

// Add registers a freshly issued token.
func (r *Registry) Add(tokenID, employeeID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[tokenID] = employeeID
}

// Revoke removes a token; subsequent Alive checks fail even if the JWT
// itself has not expired.
func (r *Registry) Revoke(tokenID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, tokenID)
}

// Alive reports whether the token is still a live session.
func (r *Registry) Alive(tokenID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.sessions[tokenID]
	return ok
}
