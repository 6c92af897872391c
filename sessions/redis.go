// sessions/redis.go
package sessions

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore shares sessions across instances. Each session is a JSON blob
// under session:<token> with a TTL matching the absolute expiry, so Redis
// does the eviction for us.
type RedisStore struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisStore(url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to reach redis: %w", err)
	}
	return &RedisStore{client: client, now: time.Now}, nil
}

func sessionKey(token string) string {
	return "session:" + token
}

func (s *RedisStore) Create(username, role string, allowedStudios []string) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}
	sess := Session{
		Token:          token,
		Username:       username,
		Role:           role,
		AllowedStudios: allowedStudios,
		ExpiresAt:      s.now().Add(TTL),
	}
	raw, err := json.Marshal(sess)
	if err != nil {
		return "", fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.client.Set(context.Background(), sessionKey(token), raw, TTL).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return token, nil
}

func (s *RedisStore) Validate(token string) (*Session, bool) {
	if token == "" {
		return nil, false
	}
	raw, err := s.client.Get(context.Background(), sessionKey(token)).Result()
	if err != nil {
		return nil, false
	}
	var sess Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, false
	}
	// The TTL normally handles expiry; the absolute deadline is still
	// checked so a clock-skewed Redis cannot extend a session.
	if s.now().After(sess.ExpiresAt) {
		s.Destroy(token)
		return nil, false
	}
	sess.Token = token
	return &sess, true
}

func (s *RedisStore) Destroy(token string) {
	s.client.Del(context.Background(), sessionKey(token))
}
