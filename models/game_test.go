package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateGenresSplitsTrimsAndDropsEmpties(t *testing.T) {
	g := Game{ID: "game-1", Name: "Old", OwnedBy: "Emberworks", Status: GameStatusPlayable, LegacyGenre: " Action, RPG ,, Racing "}

	changed := g.MigrateGenres()

	assert.True(t, changed)
	assert.Equal(t, []string{"Action", "RPG", "Racing"}, g.Genres)
	assert.Empty(t, g.LegacyGenre)
}

func TestMigrateGenresIsIdempotent(t *testing.T) {
	g := Game{ID: "game-1", Name: "Old", LegacyGenre: "Action,RPG"}

	g.MigrateGenres()
	once := g

	changed := g.MigrateGenres()

	assert.False(t, changed)
	assert.Equal(t, once, g)
}

func TestMigratedGameNeverSerializesLegacyField(t *testing.T) {
	g := Game{ID: "game-1", Name: "Old", LegacyGenre: "Action"}
	g.MigrateGenres()

	raw, err := json.Marshal(g)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.NotContains(t, fields, "genre")
	assert.Contains(t, fields, "genres")
}

func TestMigrateGenresKeepsExistingGenresList(t *testing.T) {
	// A record carrying both fields keeps the list; only the legacy
	// field is dropped.
	g := Game{Genres: []string{"Racing"}, LegacyGenre: "Action,RPG"}

	g.MigrateGenres()

	assert.Equal(t, []string{"Racing"}, g.Genres)
	assert.Empty(t, g.LegacyGenre)
}

func TestMigrateGenresNoopWithoutLegacyField(t *testing.T) {
	g := Game{Genres: []string{"Racing"}}
	assert.False(t, g.MigrateGenres())
	assert.Equal(t, []string{"Racing"}, g.Genres)
}

func TestSortEventsByPriority(t *testing.T) {
	g := Game{Events: []GameEvent{
		{ID: "low", Priority: 1},
		{ID: "high", Priority: 10},
		{ID: "none"},
		{ID: "mid", Priority: 5},
	}}

	g.SortEventsByPriority()

	ids := make([]string, len(g.Events))
	for i, e := range g.Events {
		ids[i] = e.ID
	}
	assert.Equal(t, []string{"high", "mid", "low", "none"}, ids)
}
