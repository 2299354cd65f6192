package session

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt"
)

// Store holds one account's auth state: the bearer token plus the identity
// fields handed back at login. It satisfies the gateway's Session interface,
// so a 401 from the gateway clears it automatically.
//
// A Store is safe for concurrent use; live-search sessions read the token
// from the event loop while handlers may clear it.
type Store struct {
	mu    sync.RWMutex
	token string
	email string
	role  string
}

// New creates an empty, unauthenticated store
func New() *Store {
	return &Store{}
}

// FromRequest hydrates a store from the request's Authorization header.
// An absent or malformed header yields an empty store, not an error:
// unauthenticated browsing is the common case.
func FromRequest(r *http.Request) *Store {
	s := New()
	header := r.Header.Get("Authorization")
	if header == "" {
		return s
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return s
	}
	s.SetAuth(strings.TrimSpace(parts[1]), "", "")
	return s
}

// SetAuth stores a fresh token and identity after login or registration
func (s *Store) SetAuth(token, email, role string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.email = email
	s.role = role
}

// Token returns the stored bearer token, or "" when unauthenticated or the
// token has expired. An expired token is discarded on read so no request
// goes out with credentials the gateway is guaranteed to reject.
func (s *Store) Token() string {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()
	if token == "" {
		return ""
	}
	if tokenExpired(token) {
		s.Clear()
		return ""
	}
	return token
}

// Clear drops all auth state
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.email = ""
	s.role = ""
}

// Email returns the stored account email
func (s *Store) Email() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.email
}

// Role returns the stored account role
func (s *Store) Role() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role
}

// Authenticated reports whether a usable token is present
func (s *Store) Authenticated() bool {
	return s.Token() != ""
}

// tokenExpired checks the exp claim without verifying the signature.
// Verification is the gateway's job; this only avoids sending tokens that
// are already past their expiry. Tokens that don't parse as JWTs or carry
// no exp claim are passed through and left for the gateway to judge.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return false
	}
	return time.Now().After(time.Unix(int64(exp), 0))
}
