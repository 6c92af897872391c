// services/notification_service.go
package services

import (
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"game-showcase-system/middleware"
	"game-showcase-system/models"
	"game-showcase-system/store"
)

type NotificationService struct {
	KV       *store.KV
	Validate *validator.Validate
}

func NewNotificationService(kv *store.KV) *NotificationService {
	return &NotificationService{KV: kv, Validate: validator.New()}
}

// PublicList serves /api/announcements on the public site: only active
// records whose countdown target is absent or still ahead.
func (s *NotificationService) PublicList(c *fiber.Ctx) error {
	notifs, _, err := store.LoadCollection(s.KV, store.KeyNotifications, store.DefaultNotifications())
	if err != nil {
		return fail(c, err)
	}
	now := time.Now()
	live := make([]models.Notification, 0, len(notifs))
	for _, n := range notifs {
		if n.IsLive(now) {
			live = append(live, n)
		}
	}
	return c.JSON(live)
}

// List returns everything, unfiltered, for the panel.
func (s *NotificationService) List(c *fiber.Ctx) error {
	notifs, _, err := store.LoadCollection(s.KV, store.KeyNotifications, store.DefaultNotifications())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(notifs)
}

// Create requires permission on the studio owning the announced game.
func (s *NotificationService) Create(c *fiber.Ctx) error {
	sess := middleware.SessionFrom(c)

	var notif models.Notification
	if err := json.Unmarshal(c.Body(), &notif); err != nil {
		return fail(c, errBadRequest("invalid request body"))
	}
	if err := s.Validate.Struct(&notif); err != nil {
		return fail(c, errBadRequest(err.Error()))
	}

	owner, ok, err := s.gameOwner(notif.GameID)
	if err != nil {
		return fail(c, err)
	}
	if !ok {
		return fail(c, errBadRequest("unknown game: "+notif.GameID))
	}
	if !CanAct(sess, owner) {
		return fail(c, errForbidden("no permission for studio "+owner))
	}
	if notif.ID == "" {
		notif.ID = "notif-" + uuid.NewString()
	}

	_, err = store.Update(s.KV, store.KeyNotifications, store.DefaultNotifications(), func(notifs *[]models.Notification) error {
		for _, n := range *notifs {
			if n.ID == notif.ID {
				return errBadRequest("notification id already exists: " + notif.ID)
			}
		}
		*notifs = append(*notifs, notif)
		return nil
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(notif)
}

// Update merges the body into the stored record. Re-pointing gameId at a
// game owned by a different studio needs permission on both sides.
func (s *NotificationService) Update(c *fiber.Ctx) error {
	sess := middleware.SessionFrom(c)
	id := c.Params("id")

	body := c.Body()
	var probe models.Notification
	if err := json.Unmarshal(body, &probe); err != nil {
		return fail(c, errBadRequest("invalid request body"))
	}

	var updated models.Notification
	_, err := store.Update(s.KV, store.KeyNotifications, store.DefaultNotifications(), func(notifs *[]models.Notification) error {
		idx := -1
		for i := range *notifs {
			if (*notifs)[i].ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return errNotFound("notification not found")
		}

		current := (*notifs)[idx]
		// A notification can outlive its game. The orphan has no owner,
		// so only the role and wildcard checks can let the edit through.
		owner, _, err := s.gameOwner(current.GameID)
		if err != nil {
			return err
		}
		if !CanAct(sess, owner) {
			return errForbidden("no permission for studio " + owner)
		}

		merged := current
		if err := json.Unmarshal(body, &merged); err != nil {
			return errBadRequest("invalid request body")
		}
		merged.ID = current.ID

		if merged.GameID != current.GameID {
			newOwner, ok, err := s.gameOwner(merged.GameID)
			if err != nil {
				return err
			}
			if !ok {
				return errBadRequest("unknown game: " + merged.GameID)
			}
			if !CanAct(sess, newOwner) {
				return errForbidden("no permission for studio " + newOwner)
			}
		}
		if err := s.Validate.Struct(&merged); err != nil {
			return errBadRequest(err.Error())
		}

		(*notifs)[idx] = merged
		updated = merged
		return nil
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(updated)
}

func (s *NotificationService) Delete(c *fiber.Ctx) error {
	sess := middleware.SessionFrom(c)
	id := c.Params("id")

	_, err := store.Update(s.KV, store.KeyNotifications, store.DefaultNotifications(), func(notifs *[]models.Notification) error {
		for i := range *notifs {
			if (*notifs)[i].ID != id {
				continue
			}
			// Orphans (game since deleted) stay deletable under the
			// plain policy: admins and wildcard users pass.
			owner, _, err := s.gameOwner((*notifs)[i].GameID)
			if err != nil {
				return err
			}
			if !CanAct(sess, owner) {
				return errForbidden("no permission for studio " + owner)
			}
			*notifs = append((*notifs)[:i], (*notifs)[i+1:]...)
			return nil
		}
		return errNotFound("notification not found")
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "notification deleted", "id": id})
}

// gameOwner resolves the studio name behind a game id. ok is false when
// no such game exists; callers decide whether that is an input error
// (create, re-pointing) or an orphan left behind by a deleted game.
func (s *NotificationService) gameOwner(gameID string) (string, bool, error) {
	games, _, err := store.LoadCollection(s.KV, store.KeyGames, store.DefaultGames())
	if err != nil {
		return "", false, err
	}
	for _, g := range games {
		if g.ID == gameID {
			return g.OwnedBy, true, nil
		}
	}
	return "", false, nil
}
