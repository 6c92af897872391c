package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotificationIsLive(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(48 * time.Hour).Format(time.RFC3339)
	past := now.Add(-48 * time.Hour).Format(time.RFC3339)

	tests := []struct {
		name  string
		notif Notification
		want  bool
	}{
		{"active with future countdown", Notification{Active: true, CountdownTo: future}, true},
		{"active with past countdown", Notification{Active: true, CountdownTo: past}, false},
		{"inactive with future countdown", Notification{Active: false, CountdownTo: future}, false},
		{"active without countdown", Notification{Active: true}, true},
		{"inactive without countdown", Notification{Active: false}, false},
		{"active with date-only countdown ahead", Notification{Active: true, CountdownTo: "2026-04-01"}, true},
		{"active with unparseable countdown", Notification{Active: true, CountdownTo: "soon™"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.notif.IsLive(now))
		})
	}
}
