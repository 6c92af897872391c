// services/config_service.go
package services

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"game-showcase-system/models"
	"game-showcase-system/store"
)

// ConfigService manages the SiteConfig singleton. Unlike the list
// collections it has no forced default: an absent record simply means no
// special countdown, so reads never seed anything.
type ConfigService struct {
	KV *store.KV
}

func NewConfigService(kv *store.KV) *ConfigService {
	return &ConfigService{KV: kv}
}

func (s *ConfigService) Get(c *fiber.Ctx) error {
	cfg, _, ok, err := store.Get[models.SiteConfig](s.KV, store.KeyConfig)
	if err != nil {
		return fail(c, err)
	}
	if !ok {
		return c.JSON(models.SiteConfig{})
	}
	return c.JSON(cfg)
}

func (s *ConfigService) Put(c *fiber.Ctx) error {
	var cfg models.SiteConfig
	if err := json.Unmarshal(c.Body(), &cfg); err != nil {
		return fail(c, errBadRequest("invalid request body"))
	}

	// Last write wins for the singleton, but still through the version
	// check so a save never lands on top of a concurrent one unseen.
	var saveErr error
	for attempt := 0; attempt < 3; attempt++ {
		_, version, _, err := store.Get[models.SiteConfig](s.KV, store.KeyConfig)
		if err != nil {
			return fail(c, err)
		}
		saveErr = store.SaveCollection(s.KV, store.KeyConfig, cfg, version)
		if saveErr == nil {
			return c.JSON(cfg)
		}
		if !errors.Is(saveErr, store.ErrVersionConflict) {
			break
		}
	}
	return fail(c, saveErr)
}
