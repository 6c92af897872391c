// sessions/memory.go
package sessions

import (
	"sync"
	"time"
)

// MemoryStore keeps sessions in process memory. A restart or scale-out
// silently logs every panel user out: acceptable for a single instance;
// use the Redis store otherwise.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]Session),
		now:      time.Now,
	}
}

func (s *MemoryStore) Create(username, role string, allowedStudios []string) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	s.sessions[token] = Session{
		Token:          token,
		Username:       username,
		Role:           role,
		AllowedStudios: append([]string(nil), allowedStudios...),
		ExpiresAt:      s.now().Add(TTL),
	}
	s.mu.Unlock()
	return token, nil
}

// Validate expires lazily: an entry past its deadline is evicted on the
// lookup that finds it.
func (s *MemoryStore) Validate(token string) (*Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.now().After(sess.ExpiresAt) {
		s.Destroy(token)
		return nil, false
	}
	copy := sess
	return &copy, true
}

func (s *MemoryStore) Destroy(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// Sweep evicts every expired entry and returns how many it removed. Only
// removes what Validate would already reject.
func (s *MemoryStore) Sweep() int {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for token, sess := range s.sessions {
		if now.After(sess.ExpiresAt) {
			delete(s.sessions, token)
			removed++
		}
	}
	return removed
}
