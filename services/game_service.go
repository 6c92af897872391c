// services/game_service.go
package services

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"game-showcase-system/middleware"
	"game-showcase-system/models"
	"game-showcase-system/store"
)

type GameService struct {
	KV       *store.KV
	Validate *validator.Validate
}

func NewGameService(kv *store.KV) *GameService {
	return &GameService{KV: kv, Validate: validator.New()}
}

// PublicList returns every game for the public site: legacy genre
// migration applied, ordered by the explicit order field (unset sorts
// last) with locale-aware name ties, events sorted for display.
func (s *GameService) PublicList(c *fiber.Ctx) error {
	games, _, err := store.LoadCollection(s.KV, store.KeyGames, store.DefaultGames())
	if err != nil {
		return fail(c, err)
	}
	models.MigrateGames(games)
	for i := range games {
		games[i].SortEventsByPriority()
	}

	col := collate.New(language.English)
	sort.SliceStable(games, func(i, j int) bool {
		oi, oj := orderOf(games[i]), orderOf(games[j])
		if oi != oj {
			return oi < oj
		}
		return col.CompareString(games[i].Name, games[j].Name) < 0
	})
	return c.JSON(games)
}

func orderOf(g models.Game) int {
	if g.Order == nil {
		return math.MaxInt
	}
	return *g.Order
}

// List returns the full collection for the panel, migration applied.
func (s *GameService) List(c *fiber.Ctx) error {
	games, _, err := store.LoadCollection(s.KV, store.KeyGames, store.DefaultGames())
	if err != nil {
		return fail(c, err)
	}
	models.MigrateGames(games)
	return c.JSON(games)
}

func (s *GameService) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	games, _, err := store.LoadCollection(s.KV, store.KeyGames, store.DefaultGames())
	if err != nil {
		return fail(c, err)
	}
	for i := range games {
		if games[i].ID == id {
			games[i].MigrateGenres()
			return c.JSON(games[i])
		}
	}
	return fail(c, errNotFound("game not found"))
}

// Create adds a game. The caller needs permission on the owning studio,
// and the studio must exist so no orphaned owner names enter the
// collection through the API.
func (s *GameService) Create(c *fiber.Ctx) error {
	sess := middleware.SessionFrom(c)

	var game models.Game
	if err := json.Unmarshal(c.Body(), &game); err != nil {
		return fail(c, errBadRequest("invalid request body"))
	}
	game.MigrateGenres()
	if err := s.Validate.Struct(&game); err != nil {
		return fail(c, errBadRequest(err.Error()))
	}
	if !CanAct(sess, game.OwnedBy) {
		return fail(c, errForbidden("no permission for studio "+game.OwnedBy))
	}
	if ok, err := s.studioExists(game.OwnedBy); err != nil {
		return fail(c, err)
	} else if !ok {
		return fail(c, errBadRequest("unknown studio: "+game.OwnedBy))
	}
	if game.ID == "" {
		game.ID = fmt.Sprintf("game-%d", time.Now().UnixMilli())
	}

	_, err := store.Update(s.KV, store.KeyGames, store.DefaultGames(), func(games *[]models.Game) error {
		for _, g := range *games {
			if g.ID == game.ID {
				return errBadRequest("game id already exists: " + game.ID)
			}
		}
		*games = append(*games, game)
		return nil
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(game)
}

// Update merges the request body into the stored record. The id is
// immutable, and moving a game to another studio needs permission on both
// the current and the proposed owner.
func (s *GameService) Update(c *fiber.Ctx) error {
	sess := middleware.SessionFrom(c)
	id := c.Params("id")

	body := c.Body()
	var probe models.Game
	if err := json.Unmarshal(body, &probe); err != nil {
		return fail(c, errBadRequest("invalid request body"))
	}

	var updated models.Game
	_, err := store.Update(s.KV, store.KeyGames, store.DefaultGames(), func(games *[]models.Game) error {
		idx := -1
		for i := range *games {
			if (*games)[i].ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return errNotFound("game not found")
		}

		current := (*games)[idx]
		if !CanAct(sess, current.OwnedBy) {
			return errForbidden("no permission for studio " + current.OwnedBy)
		}

		merged := current
		if err := json.Unmarshal(body, &merged); err != nil {
			return errBadRequest("invalid request body")
		}
		merged.ID = current.ID

		if merged.OwnedBy != current.OwnedBy {
			if !CanAct(sess, merged.OwnedBy) {
				return errForbidden("no permission for studio " + merged.OwnedBy)
			}
			ok, err := s.studioExists(merged.OwnedBy)
			if err != nil {
				return err
			}
			if !ok {
				return errBadRequest("unknown studio: " + merged.OwnedBy)
			}
		}

		merged.MigrateGenres()
		if err := s.Validate.Struct(&merged); err != nil {
			return errBadRequest(err.Error())
		}

		(*games)[idx] = merged
		updated = merged
		return nil
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(updated)
}

func (s *GameService) Delete(c *fiber.Ctx) error {
	sess := middleware.SessionFrom(c)
	id := c.Params("id")

	_, err := store.Update(s.KV, store.KeyGames, store.DefaultGames(), func(games *[]models.Game) error {
		for i := range *games {
			if (*games)[i].ID != id {
				continue
			}
			if !CanAct(sess, (*games)[i].OwnedBy) {
				return errForbidden("no permission for studio " + (*games)[i].OwnedBy)
			}
			*games = append((*games)[:i], (*games)[i+1:]...)
			return nil
		}
		return errNotFound("game not found")
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "game deleted", "id": id})
}

func (s *GameService) studioExists(name string) (bool, error) {
	studios, _, err := store.LoadCollection(s.KV, store.KeyStudios, store.DefaultStudios())
	if err != nil {
		return false, err
	}
	for _, st := range studios {
		if st.Name == name {
			return true, nil
		}
	}
	return false, nil
}
