// services/media_service.go
package services

import (
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/gosimple/unidecode"

	"game-showcase-system/utils"
)

// MediaService lists and stores the site's media assets: Cloudflare R2
// when configured, the local media directory otherwise.
type MediaService struct {
	Dir string
	R2  *utils.R2Client
}

func NewMediaService(dir string, r2 *utils.R2Client) *MediaService {
	return &MediaService{Dir: dir, R2: r2}
}

// List returns the known media asset paths the panel pickers offer.
func (s *MediaService) List(c *fiber.Ctx) error {
	if s.R2 != nil {
		keys, err := s.R2.List("media/")
		if err != nil {
			return fail(c, err)
		}
		paths := make([]string, 0, len(keys))
		for _, key := range keys {
			paths = append(paths, "/"+key)
		}
		return c.JSON(paths)
	}

	files, err := utils.ListFiles(s.Dir)
	if err != nil {
		return fail(c, err)
	}
	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, "/media/"+f)
	}
	return c.JSON(paths)
}

// Upload stores a new asset under a sanitized, collision-free name and
// returns the path clients should reference.
func (s *MediaService) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return fail(c, errBadRequest("file is required"))
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	base := slug.Make(unidecode.Unidecode(strings.TrimSuffix(fileHeader.Filename, ext)))
	if base == "" {
		base = "asset"
	}
	name := base + "-" + uuid.NewString()[:8] + ext

	if s.R2 != nil {
		url, err := s.R2.Upload(fileHeader, "media/"+name)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"path": url})
	}

	if err := utils.SaveUpload(fileHeader, filepath.Join(s.Dir, name)); err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"path": "/media/" + name})
}
