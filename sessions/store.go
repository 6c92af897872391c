// sessions/store.go
package sessions

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// TTL is the absolute session lifetime. There is no sliding renewal: a
// session dies 24h after login no matter how active it is.
const TTL = 24 * time.Hour

// Session is the server-side record behind a panel cookie.
type Session struct {
	Token          string    `json:"-"`
	Username       string    `json:"username"`
	Role           string    `json:"role"`
	AllowedStudios []string  `json:"allowedStudios"`
	ExpiresAt      time.Time `json:"expiresAt"`
}

// Store tracks authenticated panel sessions. Implementations must treat
// unknown, malformed and expired tokens identically (all validate as
// absent), and Destroy must be a no-op for tokens it has never seen.
type Store interface {
	Create(username, role string, allowedStudios []string) (string, error)
	Validate(token string) (*Session, bool)
	Destroy(token string)
}

func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
