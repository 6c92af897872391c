// models/notification.go
package models

import "time"

// Notification is a site-wide announcement tied to a game (distinct from a
// GameEvent, which lives inside the game record).
type Notification struct {
	ID             string `json:"id"`
	GameID         string `json:"gameId" validate:"required"`
	Title          string `json:"title" validate:"required"`
	Description    string `json:"description"`
	CountdownTo    string `json:"countdownTo,omitempty"` // ISO date
	YoutubeVideoID string `json:"youtubeVideoId,omitempty"`
	Link           string `json:"link,omitempty"`
	Active         bool   `json:"active"`
}

// IsLive reports whether the announcement belongs on the public site:
// active, and the countdown target is absent or still in the future. An
// unparseable countdown date counts as expired.
func (n Notification) IsLive(now time.Time) bool {
	if !n.Active {
		return false
	}
	if n.CountdownTo == "" {
		return true
	}
	target, ok := parseISODate(n.CountdownTo)
	if !ok {
		return false
	}
	return target.After(now)
}

func parseISODate(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
