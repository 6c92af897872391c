// services/user_service.go
package services

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"game-showcase-system/middleware"
	"game-showcase-system/models"
	"game-showcase-system/store"
)

// UserService is admin-only; the route layer enforces the role before any
// of these run. Passwords are bcrypt-hashed on the way in and stripped
// from every response on the way out.
type UserService struct {
	KV       *store.KV
	Validate *validator.Validate
}

func NewUserService(kv *store.KV) *UserService {
	return &UserService{KV: kv, Validate: validator.New()}
}

func (s *UserService) List(c *fiber.Ctx) error {
	users, _, err := store.LoadCollection(s.KV, store.KeyUsers, store.DefaultUsers())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SanitizeUsers(users))
}

func (s *UserService) Get(c *fiber.Ctx) error {
	username := c.Params("username")
	users, _, err := store.LoadCollection(s.KV, store.KeyUsers, store.DefaultUsers())
	if err != nil {
		return fail(c, err)
	}
	for _, u := range users {
		if u.Username == username {
			return c.JSON(u.Sanitized())
		}
	}
	return fail(c, errNotFound("user not found"))
}

func (s *UserService) Create(c *fiber.Ctx) error {
	var user models.User
	if err := json.Unmarshal(c.Body(), &user); err != nil {
		return fail(c, errBadRequest("invalid request body"))
	}
	if err := s.Validate.Struct(&user); err != nil {
		return fail(c, errBadRequest(err.Error()))
	}
	if user.Password == "" {
		return fail(c, errBadRequest("password is required"))
	}
	hashed, err := hashPassword(user.Password)
	if err != nil {
		return fail(c, err)
	}
	user.Password = hashed
	if user.AllowedStudios == nil {
		user.AllowedStudios = []string{}
	}

	_, err = store.Update(s.KV, store.KeyUsers, store.DefaultUsers(), func(users *[]models.User) error {
		for _, u := range *users {
			if u.Username == user.Username {
				return errBadRequest("username already exists: " + user.Username)
			}
		}
		*users = append(*users, user)
		return nil
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user.Sanitized())
}

// Update merges the body into the record. The username is the identity
// and never changes; an empty password in the body keeps the stored one.
func (s *UserService) Update(c *fiber.Ctx) error {
	username := c.Params("username")
	body := c.Body()
	var probe models.User
	if err := json.Unmarshal(body, &probe); err != nil {
		return fail(c, errBadRequest("invalid request body"))
	}

	var updated models.User
	_, err := store.Update(s.KV, store.KeyUsers, store.DefaultUsers(), func(users *[]models.User) error {
		idx := -1
		for i := range *users {
			if (*users)[i].Username == username {
				idx = i
				break
			}
		}
		if idx == -1 {
			return errNotFound("user not found")
		}

		current := (*users)[idx]
		merged := current
		if err := json.Unmarshal(body, &merged); err != nil {
			return errBadRequest("invalid request body")
		}
		merged.Username = current.Username

		if merged.Password == "" || merged.Password == current.Password {
			merged.Password = current.Password
		} else {
			hashed, err := hashPassword(merged.Password)
			if err != nil {
				return err
			}
			merged.Password = hashed
		}
		if err := s.Validate.Struct(&merged); err != nil {
			return errBadRequest(err.Error())
		}

		(*users)[idx] = merged
		updated = merged
		return nil
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(updated.Sanitized())
}

// Delete removes an account. Deleting yourself is always refused so a
// panel cannot lock out its last admin by accident.
func (s *UserService) Delete(c *fiber.Ctx) error {
	sess := middleware.SessionFrom(c)
	username := c.Params("username")

	if sess.Username == username {
		return fail(c, errBadRequest("cannot delete your own account"))
	}

	_, err := store.Update(s.KV, store.KeyUsers, store.DefaultUsers(), func(users *[]models.User) error {
		for i := range *users {
			if (*users)[i].Username == username {
				*users = append((*users)[:i], (*users)[i+1:]...)
				return nil
			}
		}
		return errNotFound("user not found")
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "user deleted", "username": username})
}
