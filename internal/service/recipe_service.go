package service

import (
	"context"

	"recipehub/internal/models"
	"recipehub/internal/repository"
	"recipehub/internal/validation"
)

type RecipeService struct {
	recipeRepo  repository.RecipeRepository
	composition *CompositionService
}

type CreateRecipeInput struct {
	AuthorID    uint
	Name        string
	Image       string
	Text        string
	CookingTime int
	Ingredients []CompositionLine
}

type UpdateRecipeInput struct {
	UserID      uint
	RecipeID    uint
	Name        string
	Image       string
	Text        string
	CookingTime int
	Ingredients []CompositionLine
}

type ListRecipesInput struct {
	Filter   repository.RecipeFilter
	ViewerID uint
	Limit    int
	Offset   int
}

func NewRecipeService(recipeRepo repository.RecipeRepository, composition *CompositionService) *RecipeService {
	return &RecipeService{recipeRepo: recipeRepo, composition: composition}
}

func (s *RecipeService) validateFields(name, text string, cookingTime int) error {
	if err := validation.ValidateRecipeName(name); err != nil {
		return err
	}
	if text == "" {
		return models.NewValidationError("Recipe text is required")
	}
	return validation.ValidateCookingTime(cookingTime)
}

func (s *RecipeService) CreateRecipe(ctx context.Context, in CreateRecipeInput) (*models.Recipe, error) {
	if err := s.validateFields(in.Name, in.Text, in.CookingTime); err != nil {
		return nil, err
	}
	lines, err := s.composition.Validate(ctx, in.Ingredients)
	if err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		AuthorID:    in.AuthorID,
		Name:        in.Name,
		Image:       in.Image,
		Text:        in.Text,
		CookingTime: in.CookingTime,
		Ingredients: lines,
	}
	if err := s.recipeRepo.Create(ctx, recipe); err != nil {
		return nil, err
	}
	return s.recipeRepo.GetByID(ctx, recipe.ID, in.AuthorID)
}

func (s *RecipeService) GetRecipe(ctx context.Context, id, viewerID uint) (*models.Recipe, error) {
	return s.recipeRepo.GetByID(ctx, id, viewerID)
}

func (s *RecipeService) ListRecipes(ctx context.Context, in ListRecipesInput) ([]*models.Recipe, int64, error) {
	recipes, err := s.recipeRepo.List(ctx, in.Filter, in.ViewerID, in.Limit, in.Offset)
	if err != nil {
		return nil, 0, err
	}
	count, err := s.recipeRepo.Count(ctx, in.Filter)
	if err != nil {
		return nil, 0, err
	}
	return recipes, count, nil
}

// UpdateRecipe replaces the recipe's fields and its whole ingredient
// list. Only the author may update; the composition is validated in
// full before anything is written.
func (s *RecipeService) UpdateRecipe(ctx context.Context, in UpdateRecipeInput) (*models.Recipe, error) {
	recipe, err := s.recipeRepo.GetByID(ctx, in.RecipeID, in.UserID)
	if err != nil {
		return nil, err
	}
	if recipe.AuthorID != in.UserID {
		return nil, models.NewForbiddenError("Only the author can update this recipe")
	}

	if err := s.validateFields(in.Name, in.Text, in.CookingTime); err != nil {
		return nil, err
	}
	lines, err := s.composition.Validate(ctx, in.Ingredients)
	if err != nil {
		return nil, err
	}

	recipe.Name = in.Name
	recipe.Text = in.Text
	recipe.CookingTime = in.CookingTime
	if in.Image != "" {
		recipe.Image = in.Image
	}
	// Lines are swapped by ReplaceComposition; keep Save away from the
	// association so old rows cannot be upserted back.
	recipe.Ingredients = nil
	if err := s.recipeRepo.Update(ctx, recipe); err != nil {
		return nil, err
	}
	if err := s.recipeRepo.ReplaceComposition(ctx, in.RecipeID, lines); err != nil {
		return nil, err
	}
	return s.recipeRepo.GetByID(ctx, in.RecipeID, in.UserID)
}

func (s *RecipeService) DeleteRecipe(ctx context.Context, userID, recipeID uint) error {
	recipe, err := s.recipeRepo.GetByID(ctx, recipeID, userID)
	if err != nil {
		return err
	}
	if recipe.AuthorID != userID {
		return models.NewForbiddenError("Only the author can delete this recipe")
	}
	return s.recipeRepo.Delete(ctx, recipeID)
}
