// services/permissions.go
package services

import (
	"game-showcase-system/models"
	"game-showcase-system/sessions"
)

// CanAct decides whether a session may act on a resource owned by the
// named studio: admins always, then the "*" wildcard, then an exact name
// match against allowedStudios. No normalization, no prefix matching, and
// no check that the studio exists: an orphaned owner name is only
// reachable by admins and wildcard users anyway.
func CanAct(sess *sessions.Session, studioName string) bool {
	if sess == nil {
		return false
	}
	if sess.Role == models.RoleAdmin {
		return true
	}
	for _, allowed := range sess.AllowedStudios {
		if allowed == models.StudioWildcard || allowed == studioName {
			return true
		}
	}
	return false
}
