// models/game.go
package models

import (
	"sort"
	"strings"
)

const (
	GameStatusComingSoon    = "coming-soon"
	GameStatusPlayable      = "playable"
	GameStatusBeta          = "beta"
	GameStatusInDevelopment = "in-development"
)

const (
	EventTypeCountdown    = "countdown"
	EventTypeEvent        = "event"
	EventTypeAnnouncement = "announcement"
)

type SpotifyAlbum struct {
	Name      string `json:"name"`
	SpotifyID string `json:"spotifyId"`
}

// GameEvent is embedded in a Game, not a standalone collection.
type GameEvent struct {
	ID            string `json:"id"`
	Type          string `json:"type" validate:"required,oneof=countdown event announcement"`
	Title         string `json:"title" validate:"required"`
	Description   string `json:"description,omitempty"`
	StartDate     string `json:"startDate,omitempty"`
	EndDate       string `json:"endDate,omitempty"`
	Color         string `json:"color"`
	Icon          string `json:"icon,omitempty"`
	ShowOnCard    bool   `json:"showOnCard,omitempty"`
	ShowOnHero    bool   `json:"showOnHero,omitempty"`
	ShowCountdown bool   `json:"showCountdown,omitempty"`
	Active        bool   `json:"active"`
	Priority      int    `json:"priority,omitempty"`
}

type Game struct {
	ID          string `json:"id"`
	Name        string `json:"name" validate:"required"`
	Logo        string `json:"logo"`
	Description string `json:"description"`

	// OwnedBy joins on Studio.Name (not Studio.ID): exact string match.
	OwnedBy string `json:"ownedBy" validate:"required"`

	Status string   `json:"status" validate:"required,oneof=coming-soon playable beta in-development"`
	Genres []string `json:"genres"`

	// LegacyGenre is the old comma-separated field. It only survives in
	// records written before the genres list existed; every read path
	// migrates it away.
	LegacyGenre string `json:"genre,omitempty"`

	YoutubeVideoID string         `json:"youtubeVideoId,omitempty"`
	Thumbnails     []string       `json:"thumbnails,omitempty"`
	SpotifyAlbums  []SpotifyAlbum `json:"spotifyAlbums,omitempty"`
	Link           string         `json:"link,omitempty"`
	Order          *int           `json:"order,omitempty"`
	Visible        *bool          `json:"visible,omitempty"`
	Events         []GameEvent    `json:"events,omitempty" validate:"dive"`
}

// MigrateGenres converts the legacy comma-separated genre field into the
// genres list: split on comma, trim, drop empties, remove the old field.
// Idempotent: a record that has already been migrated is left untouched.
// Reports whether the record changed.
func (g *Game) MigrateGenres() bool {
	if g.LegacyGenre == "" {
		return false
	}
	if len(g.Genres) == 0 {
		var genres []string
		for _, part := range strings.Split(g.LegacyGenre, ",") {
			if p := strings.TrimSpace(part); p != "" {
				genres = append(genres, p)
			}
		}
		g.Genres = genres
	}
	g.LegacyGenre = ""
	return true
}

// MigrateGames runs the genre migration over a whole collection in place.
func MigrateGames(games []Game) {
	for i := range games {
		games[i].MigrateGenres()
	}
}

// SortEventsByPriority orders events by priority descending: higher
// priority wins display precedence on the card and hero.
func (g *Game) SortEventsByPriority() {
	sort.SliceStable(g.Events, func(i, j int) bool {
		return g.Events[i].Priority > g.Events[j].Priority
	})
}
