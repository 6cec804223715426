// Package session provides the per-identity scratch space used to
// carry short-lived interaction state (drafted postcard subjects,
// pending confirmations) across the otherwise stateless
// request/response cycle. The store is bounded and TTL-evicted, so
// abandoned sessions cannot accumulate for the life of the process.
package session

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Session is a small mutable key/value scratch space for one identity.
type Session struct {
	mu     sync.Mutex
	values map[string]string
}

// Get returns the value for a key, leaving it in place.
func (s *Session) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

// Set stores a value for a key.
func (s *Session) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Pop returns and removes the value for a key.
func (s *Session) Pop(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	if ok {
		delete(s.values, key)
	}
	return v, ok
}

// Store hands out sessions keyed by user ID, evicting the least
// recently used entry past capacity and any entry idle past the TTL.
type Store struct {
	mu  sync.Mutex
	lru *expirable.LRU[string, *Session]
}

// NewStore creates a session store with the given capacity and idle TTL.
func NewStore(capacity int, ttl time.Duration) *Store {
	return &Store{
		lru: expirable.NewLRU[string, *Session](capacity, nil, ttl),
	}
}

// Load returns the session for a user, creating it if absent or
// expired.
func (st *Store) Load(userID string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	if s, ok := st.lru.Get(userID); ok {
		return s
	}
	s := &Session{values: make(map[string]string)}
	st.lru.Add(userID, s)
	return s
}

// Drop discards a user's session outright.
func (st *Store) Drop(userID string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.lru.Remove(userID)
}
