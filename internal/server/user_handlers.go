package server

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"recipehub/internal/models"
	"recipehub/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetAllUsers handles GET /api/users
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	ctx := c.Context()
	page := parsePagination(c, defaultPageLimit)
	viewerID, _ := s.optionalUserID(c)

	users, err := s.userService.ListUsers(ctx, viewerID, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(users)
}

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	user, err := s.userService.GetUserByID(c.Context(), userID, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(user)
}

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	viewerID, _ := s.optionalUserID(c)

	user, err := s.userService.GetUserByID(c.Context(), id, viewerID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(user)
}

// UpdateMyProfile handles PUT /api/users/me
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID:    userID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(user)
}

// UpdateAvatar handles PUT /api/users/me/avatar. The avatar arrives as
// a base64 data URI and is stored under the media root.
func (s *Server) UpdateAvatar(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Avatar string `json:"avatar"`
	}
	if err := c.BodyParser(&req); err != nil || req.Avatar == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Avatar image is required"))
	}

	path, err := s.saveDataURI(req.Avatar, "avatars")
	if err != nil {
		return respondError(c, err)
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID: userID,
		Avatar: path,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"avatar": user.Avatar})
}

// DeleteAvatar handles DELETE /api/users/me/avatar
func (s *Server) DeleteAvatar(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	user, err := s.userRepo.GetByID(c.Context(), userID, userID)
	if err != nil {
		return respondError(c, err)
	}

	user.Avatar = ""
	if err := s.userRepo.Update(c.Context(), user); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ChangePassword handles POST /api/users/set_password
func (s *Server) ChangePassword(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Current and new passwords are required"))
	}

	if err := s.userService.ChangePassword(c.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Subscribe handles POST /api/users/:id/subscribe
func (s *Server) Subscribe(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	authorID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if _, err := s.relationService.Add(c.Context(), models.RelationSubscription, userID, authorID); err != nil {
		return respondError(c, err)
	}

	author, err := s.userService.GetUserByID(c.Context(), authorID, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(author)
}

// Unsubscribe handles DELETE /api/users/:id/subscribe
func (s *Server) Unsubscribe(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	authorID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.relationService.Remove(c.Context(), models.RelationSubscription, userID, authorID); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetSubscriptions handles GET /api/users/subscriptions
func (s *Server) GetSubscriptions(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	recipesLimit := c.QueryInt("recipes_limit", 0)
	if recipesLimit < 0 {
		recipesLimit = 0
	}

	authors, err := s.userService.GetSubscriptions(c.Context(), userID, recipesLimit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(authors)
}

// saveDataURI decodes a base64 data URI and writes it under the media
// root, returning the stored relative path.
func (s *Server) saveDataURI(dataURI, subdir string) (string, error) {
	payload := dataURI
	ext := "png"
	if strings.HasPrefix(dataURI, "data:") {
		parts := strings.SplitN(dataURI, ",", 2)
		if len(parts) != 2 {
			return "", models.NewValidationError("Invalid image data")
		}
		payload = parts[1]
		if strings.Contains(parts[0], "image/jpeg") {
			ext = "jpg"
		}
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", models.NewValidationError("Invalid base64 image data")
	}

	dir := filepath.Join(s.config.MediaRoot, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", models.NewInternalError(err)
	}

	name := fmt.Sprintf("%s.%s", uuid.New().String(), ext)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", models.NewInternalError(err)
	}

	return filepath.Join(subdir, name), nil
}
