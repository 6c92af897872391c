package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"game-showcase-system/models"
	"game-showcase-system/sessions"
)

// CanAct must be true iff the role is admin, or allowedStudios carries the
// wildcard, or the owner name is an exact member: checked across the full
// cross product of roles, allow-lists and owners.
func TestCanActPermissionSymmetry(t *testing.T) {
	roles := []string{models.RoleAdmin, models.RoleUser}
	allowLists := [][]string{
		nil,
		{},
		{"Studio A"},
		{"Studio B"},
		{"Studio A", "Studio B"},
		{models.StudioWildcard},
		{"Studio A", models.StudioWildcard},
		{"studio a"}, // case matters: no normalization
		{"Studio"},   // no prefix matching
	}
	owners := []string{"Studio A", "Studio B", "Studio C", "studio a", ""}

	for _, role := range roles {
		for _, allowed := range allowLists {
			for _, owner := range owners {
				sess := &sessions.Session{Username: "u", Role: role, AllowedStudios: allowed}

				expected := role == models.RoleAdmin
				if !expected {
					for _, a := range allowed {
						if a == models.StudioWildcard || a == owner {
							expected = true
							break
						}
					}
				}

				name := fmt.Sprintf("role=%s allowed=%v owner=%q", role, allowed, owner)
				assert.Equal(t, expected, CanAct(sess, owner), name)
			}
		}
	}
}

func TestCanActNilSession(t *testing.T) {
	assert.False(t, CanAct(nil, "Studio A"))
}
