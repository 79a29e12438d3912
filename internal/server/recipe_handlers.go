package server

import (
	"fmt"

	"recipehub/internal/middleware"
	"recipehub/internal/models"
	"recipehub/internal/repository"
	"recipehub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// recipeRequest is the shared create/update payload.
type recipeRequest struct {
	Name        string                    `json:"name"`
	Image       string                    `json:"image"`
	Text        string                    `json:"text"`
	CookingTime int                       `json:"cooking_time"`
	Ingredients []service.CompositionLine `json:"ingredients"`
}

// GetRecipes handles GET /api/recipes with optional filters:
// author, is_favorited, is_in_shopping_cart. The relation filters are
// meaningless without a viewer, so they are ignored for anonymous
// requests.
func (s *Server) GetRecipes(c *fiber.Ctx) error {
	ctx := c.Context()
	page := parsePagination(c, defaultPageLimit)
	viewerID, _ := s.optionalUserID(c)

	filter := repository.RecipeFilter{}
	if authorID := c.QueryInt("author", 0); authorID > 0 {
		filter.AuthorID = uint(authorID)
	}
	if viewerID != 0 {
		if c.QueryInt("is_favorited", 0) == 1 {
			filter.FavoritedBy = viewerID
		}
		if c.QueryInt("is_in_shopping_cart", 0) == 1 {
			filter.InCartOf = viewerID
		}
	}

	recipes, count, err := s.recipeService.ListRecipes(ctx, service.ListRecipesInput{
		Filter:   filter,
		ViewerID: viewerID,
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"count":   count,
		"results": recipes,
	})
}

// GetRecipe handles GET /api/recipes/:id
func (s *Server) GetRecipe(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	viewerID, _ := s.optionalUserID(c)

	recipe, err := s.recipeService.GetRecipe(c.Context(), id, viewerID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(recipe)
}

// CreateRecipe handles POST /api/recipes
func (s *Server) CreateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req recipeRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	image, err := s.storeRecipeImage(req.Image)
	if err != nil {
		return respondError(c, err)
	}

	recipe, err := s.recipeService.CreateRecipe(c.Context(), service.CreateRecipeInput{
		AuthorID:    userID,
		Name:        req.Name,
		Image:       image,
		Text:        req.Text,
		CookingTime: req.CookingTime,
		Ingredients: req.Ingredients,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(recipe)
}

// UpdateRecipe handles PUT /api/recipes/:id
func (s *Server) UpdateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	recipeID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req recipeRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	image, err := s.storeRecipeImage(req.Image)
	if err != nil {
		return respondError(c, err)
	}

	recipe, err := s.recipeService.UpdateRecipe(c.Context(), service.UpdateRecipeInput{
		UserID:      userID,
		RecipeID:    recipeID,
		Name:        req.Name,
		Image:       image,
		Text:        req.Text,
		CookingTime: req.CookingTime,
		Ingredients: req.Ingredients,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(recipe)
}

// DeleteRecipe handles DELETE /api/recipes/:id
func (s *Server) DeleteRecipe(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	recipeID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.recipeService.DeleteRecipe(c.Context(), userID, recipeID); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// AddFavorite handles POST /api/recipes/:id/favorite
func (s *Server) AddFavorite(c *fiber.Ctx) error {
	return s.addRecipeRelation(c, models.RelationFavorite)
}

// RemoveFavorite handles DELETE /api/recipes/:id/favorite
func (s *Server) RemoveFavorite(c *fiber.Ctx) error {
	return s.removeRecipeRelation(c, models.RelationFavorite)
}

// AddToCart handles POST /api/recipes/:id/shopping_cart
func (s *Server) AddToCart(c *fiber.Ctx) error {
	return s.addRecipeRelation(c, models.RelationShoppingCart)
}

// RemoveFromCart handles DELETE /api/recipes/:id/shopping_cart
func (s *Server) RemoveFromCart(c *fiber.Ctx) error {
	return s.removeRecipeRelation(c, models.RelationShoppingCart)
}

func (s *Server) addRecipeRelation(c *fiber.Ctx, kind models.RelationKind) error {
	userID := c.Locals("userID").(uint)
	recipeID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if _, err := s.relationService.Add(c.Context(), kind, userID, recipeID); err != nil {
		return respondError(c, err)
	}

	recipe, err := s.recipeService.GetRecipe(c.Context(), recipeID, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(recipe)
}

func (s *Server) removeRecipeRelation(c *fiber.Ctx, kind models.RelationKind) error {
	userID := c.Locals("userID").(uint)
	recipeID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.relationService.Remove(c.Context(), kind, userID, recipeID); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetCartCount handles GET /api/recipes/shopping_cart/count
func (s *Server) GetCartCount(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	count, err := s.relationService.CartCount(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"count": count})
}

// DownloadShoppingCart handles GET /api/recipes/download_shopping_cart.
// Totals are computed fresh on every request from the cart's current
// contents.
func (s *Server) DownloadShoppingCart(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	items, err := s.shoppingListService.Aggregate(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	middleware.ShoppingListDownloads.Inc()

	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="shopping_list.txt"`)
	return c.SendString(s.shoppingListService.RenderText(items))
}

// GetRecipeShortLink handles GET /api/recipes/:id/get-link
func (s *Server) GetRecipeShortLink(c *fiber.Ctx) error {
	viewerID, _ := s.optionalUserID(c)
	if !s.flags.Enabled("short_links", viewerID) {
		return respondError(c, models.NewNotFoundMessageError("Short links are not available"))
	}

	recipeID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	// Confirm the recipe exists before minting a link for it.
	if _, err := s.recipeService.GetRecipe(c.Context(), recipeID, 0); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"short-link": fmt.Sprintf("%s/s/%d", c.BaseURL(), recipeID),
	})
}

// ResolveShortLink handles GET /s/:id by redirecting to the recipe page.
func (s *Server) ResolveShortLink(c *fiber.Ctx) error {
	recipeID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if _, err := s.recipeService.GetRecipe(c.Context(), recipeID, 0); err != nil {
		return respondError(c, err)
	}

	return c.Redirect(fmt.Sprintf("/recipes/%d", recipeID), fiber.StatusFound)
}

// storeRecipeImage persists an inline data URI and returns its stored
// path; plain values (already-uploaded paths or empty) pass through.
func (s *Server) storeRecipeImage(image string) (string, error) {
	if image == "" || len(image) < 5 || image[:5] != "data:" {
		return image, nil
	}
	return s.saveDataURI(image, "recipes")
}
