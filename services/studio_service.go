// services/studio_service.go
package services

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"game-showcase-system/models"
	"game-showcase-system/store"
)

// StudioService reads are open to both surfaces; mutations are admin-only
// because studio names are the access-control join key for everything
// else.
type StudioService struct {
	KV       *store.KV
	Validate *validator.Validate
}

func NewStudioService(kv *store.KV) *StudioService {
	return &StudioService{KV: kv, Validate: validator.New()}
}

// List returns all studios, unfiltered, on both the public and the panel
// surface.
func (s *StudioService) List(c *fiber.Ctx) error {
	studios, _, err := store.LoadCollection(s.KV, store.KeyStudios, store.DefaultStudios())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(studios)
}

func (s *StudioService) Create(c *fiber.Ctx) error {
	var studio models.Studio
	if err := json.Unmarshal(c.Body(), &studio); err != nil {
		return fail(c, errBadRequest("invalid request body"))
	}
	if err := s.Validate.Struct(&studio); err != nil {
		return fail(c, errBadRequest(err.Error()))
	}

	created := studio
	_, err := store.Update(s.KV, store.KeyStudios, store.DefaultStudios(), func(studios *[]models.Studio) error {
		for _, st := range *studios {
			if st.Name == created.Name {
				return errBadRequest("studio name already exists: " + created.Name)
			}
		}
		if created.ID == "" {
			created.ID = studioID(created.Name, *studios)
		} else {
			for _, st := range *studios {
				if st.ID == created.ID {
					return errBadRequest("studio id already exists: " + created.ID)
				}
			}
		}
		*studios = append(*studios, created)
		return nil
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update merges the body into the record. Renaming a studio rewrites
// every Game.ownedBy and User.allowedStudios reference so the name join
// stays intact: the rename is not atomic across collections, but each
// collection save still goes through the usual compare-and-swap.
func (s *StudioService) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	body := c.Body()
	var probe models.Studio
	if err := json.Unmarshal(body, &probe); err != nil {
		return fail(c, errBadRequest("invalid request body"))
	}

	var updated models.Studio
	var oldName string
	_, err := store.Update(s.KV, store.KeyStudios, store.DefaultStudios(), func(studios *[]models.Studio) error {
		idx := -1
		for i := range *studios {
			if (*studios)[i].ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return errNotFound("studio not found")
		}

		current := (*studios)[idx]
		merged := current
		if err := json.Unmarshal(body, &merged); err != nil {
			return errBadRequest("invalid request body")
		}
		merged.ID = current.ID
		if merged.Name != current.Name {
			for i := range *studios {
				if i != idx && (*studios)[i].Name == merged.Name {
					return errBadRequest("studio name already exists: " + merged.Name)
				}
			}
		}
		if err := s.Validate.Struct(&merged); err != nil {
			return errBadRequest(err.Error())
		}

		oldName = current.Name
		(*studios)[idx] = merged
		updated = merged
		return nil
	})
	if err != nil {
		return fail(c, err)
	}

	if oldName != updated.Name {
		if err := s.renameReferences(oldName, updated.Name); err != nil {
			return fail(c, err)
		}
	}
	return c.JSON(updated)
}

// Delete refuses to remove a studio that still owns games: the same
// referenced-record guard the games themselves get.
func (s *StudioService) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	games, _, err := store.LoadCollection(s.KV, store.KeyGames, store.DefaultGames())
	if err != nil {
		return fail(c, err)
	}

	_, err = store.Update(s.KV, store.KeyStudios, store.DefaultStudios(), func(studios *[]models.Studio) error {
		for i := range *studios {
			if (*studios)[i].ID != id {
				continue
			}
			for _, g := range games {
				if g.OwnedBy == (*studios)[i].Name {
					return errBadRequest("cannot delete studio: still owns games")
				}
			}
			*studios = append((*studios)[:i], (*studios)[i+1:]...)
			return nil
		}
		return errNotFound("studio not found")
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "studio deleted", "id": id})
}

func (s *StudioService) renameReferences(oldName, newName string) error {
	_, err := store.Update(s.KV, store.KeyGames, store.DefaultGames(), func(games *[]models.Game) error {
		for i := range *games {
			if (*games)[i].OwnedBy == oldName {
				(*games)[i].OwnedBy = newName
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	_, err = store.Update(s.KV, store.KeyUsers, store.DefaultUsers(), func(users *[]models.User) error {
		for i := range *users {
			for j, allowed := range (*users)[i].AllowedStudios {
				if allowed == oldName {
					(*users)[i].AllowedStudios[j] = newName
				}
			}
		}
		return nil
	})
	return err
}

// studioID derives a stable slug id from the name, with a short random
// suffix when the slug is already taken.
func studioID(name string, existing []models.Studio) string {
	id := slug.Make(name)
	for _, st := range existing {
		if st.ID == id {
			return id + "-" + uuid.NewString()[:8]
		}
	}
	return id
}
