// Package session keeps the in-memory table of active session tokens.
// Sessions live for the lifetime of the process and are lost on restart.
package session

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/slog"
)

const tokenBytes = 32

type entry struct {
	userID    string
	expiresAt time.Time
}

// Table maps opaque tokens to user ids with an expiry. All methods are safe
// for concurrent use; a single mutex is enough since operations are O(1).
type Table struct {
	mu       sync.Mutex
	sessions map[string]entry
	ttl      time.Duration
	now      func() time.Time
	log      *slog.Logger
}

func NewTable(ttl time.Duration, log *slog.Logger) *Table {
	return &Table{
		sessions: make(map[string]entry),
		ttl:      ttl,
		now:      time.Now,
		log:      log,
	}
}

// Create issues an unguessable token for the user and stores it with
// expiry = now + TTL. Collisions at this token size are negligible.
func (t *Table) Create(userID string) (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	token := base64.URLEncoding.EncodeToString(buf)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.sessions[token] = entry{
		userID:    userID,
		expiresAt: t.now().Add(t.ttl),
	}

	t.log.Debug("session created", slog.String("user_id", userID))
	return token, nil
}

// Lookup resolves a token to its user id. An expired entry is evicted and
// reported as absent; the eviction is permanent.
func (t *Table) Lookup(token string) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.sessions[token]
	if !ok {
		return "", false
	}
	if e.expiresAt.Before(t.now()) {
		delete(t.sessions, token)
		t.log.Debug("expired session evicted", slog.String("user_id", e.userID))
		return "", false
	}
	return e.userID, true
}

// Invalidate removes the token and reports whether it was present.
func (t *Table) Invalidate(token string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.sessions[token]; !ok {
		return false
	}
	delete(t.sessions, token)
	return true
}
