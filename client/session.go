// Package client is the typed SDK for the FreshPress API. It owns the
// persisted session token, request construction against the /api/v1 base
// path, error normalization, and the order-draft editing model used by the
// admin CLI.
package client

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Session holds the bearer token proving an authenticated identity. The
// token is persisted to a single file so it survives process restarts, and
// cleared on logout. Construct one at startup and pass it to New; nothing
// in this package keeps ambient global state.
type Session struct {
	mu    sync.Mutex
	path  string
	token string
}

// DefaultTokenPath returns the per-user token location (~/.freshpress/token).
func DefaultTokenPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("session: resolve home: %w", err)
	}
	return filepath.Join(home, ".freshpress", "token"), nil
}

// NewSession creates a session backed by the token file at path and loads
// any previously persisted token. A missing file means no session.
func NewSession(path string) (*Session, error) {
	s := &Session{path: path}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("session: read token file: %w", err)
	}

	s.token = strings.TrimSpace(string(raw))
	return s, nil
}

// SetToken stores token as the current credential and persists it.
// All subsequent requests through a Client holding this session carry it.
func (s *Session) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("session: create token dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("session: write token file: %w", err)
	}

	s.token = token
	return nil
}

// Token returns the current token, or "" when unauthenticated.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Clear erases the in-memory and persisted token. Subsequent requests are
// unauthenticated.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("session: remove token file: %w", err)
	}
	return nil
}
