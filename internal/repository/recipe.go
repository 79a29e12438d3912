package repository

import (
	"context"
	"errors"

	"recipehub/internal/models"

	"gorm.io/gorm"
)

// RecipeFilter narrows recipe listings. Zero values mean "no filter".
type RecipeFilter struct {
	AuthorID    uint
	FavoritedBy uint
	InCartOf    uint
}

// RecipeRepository defines the interface for recipe data operations
type RecipeRepository interface {
	Create(ctx context.Context, recipe *models.Recipe) error
	GetByID(ctx context.Context, id uint, viewerID uint) (*models.Recipe, error)
	List(ctx context.Context, filter RecipeFilter, viewerID uint, limit, offset int) ([]*models.Recipe, error)
	Count(ctx context.Context, filter RecipeFilter) (int64, error)
	Update(ctx context.Context, recipe *models.Recipe) error
	ReplaceComposition(ctx context.Context, recipeID uint, lines []models.RecipeIngredient) error
	Delete(ctx context.Context, id uint) error
}

// recipeRepository implements RecipeRepository
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// applyRecipeDetails annotates recipes with is_favorited and
// is_in_shopping_cart for the viewing user. Both flags are computed per
// query, never stored; anonymous viewers (viewerID 0) always see false.
func (r *recipeRepository) applyRecipeDetails(db *gorm.DB, viewerID uint) *gorm.DB {
	if viewerID == 0 {
		return db.Select("recipes.*, FALSE AS is_favorited, FALSE AS is_in_shopping_cart")
	}
	return db.Select(
		"recipes.*, "+
			"EXISTS(SELECT 1 FROM favorites f WHERE f.recipe_id = recipes.id AND f.user_id = ?) AS is_favorited, "+
			"EXISTS(SELECT 1 FROM shopping_cart_items sc WHERE sc.recipe_id = recipes.id AND sc.user_id = ?) AS is_in_shopping_cart",
		viewerID, viewerID,
	)
}

func (r *recipeRepository) applyFilter(db *gorm.DB, filter RecipeFilter) *gorm.DB {
	if filter.AuthorID != 0 {
		db = db.Where("recipes.author_id = ?", filter.AuthorID)
	}
	if filter.FavoritedBy != 0 {
		db = db.Joins("JOIN favorites ff ON ff.recipe_id = recipes.id AND ff.user_id = ?", filter.FavoritedBy)
	}
	if filter.InCartOf != 0 {
		db = db.Joins("JOIN shopping_cart_items cc ON cc.recipe_id = recipes.id AND cc.user_id = ?", filter.InCartOf)
	}
	return db
}

func (r *recipeRepository) Create(ctx context.Context, recipe *models.Recipe) error {
	if err := r.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return models.NewStoreFailureError(err)
	}
	return nil
}

func (r *recipeRepository) GetByID(ctx context.Context, id uint, viewerID uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.applyRecipeDetails(r.db.WithContext(ctx), viewerID).
		Preload("Author").
		Preload("Ingredients.Ingredient").
		First(&recipe, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Recipe", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &recipe, nil
}

func (r *recipeRepository) List(ctx context.Context, filter RecipeFilter, viewerID uint, limit, offset int) ([]*models.Recipe, error) {
	var recipes []*models.Recipe
	q := r.applyRecipeDetails(r.db.WithContext(ctx), viewerID)
	q = r.applyFilter(q, filter)
	err := q.
		Preload("Author").
		Preload("Ingredients.Ingredient").
		Order("recipes.created_at DESC, recipes.id DESC").
		Limit(limit).
		Offset(offset).
		Find(&recipes).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return recipes, nil
}

func (r *recipeRepository) Count(ctx context.Context, filter RecipeFilter) (int64, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&models.Recipe{})
	q = r.applyFilter(q, filter)
	if err := q.Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *recipeRepository) Update(ctx context.Context, recipe *models.Recipe) error {
	if err := r.db.WithContext(ctx).Save(recipe).Error; err != nil {
		return models.NewStoreFailureError(err)
	}
	return nil
}

// ReplaceComposition swaps the recipe's entire ingredient list for the
// given lines in one transaction. Either every old line is gone and
// every new line is in, or the previous composition is untouched.
func (r *recipeRepository) ReplaceComposition(ctx context.Context, recipeID uint, lines []models.RecipeIngredient) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		for i := range lines {
			lines[i].ID = 0
			lines[i].RecipeID = recipeID
		}
		if len(lines) > 0 {
			if err := tx.Create(&lines).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.NewStoreFailureError(err)
	}
	return nil
}

// Delete removes the recipe; dependent ingredient lines, favorites and
// cart items go with it via the store's cascade policy.
func (r *recipeRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Recipe{}, id)
	if res.Error != nil {
		return models.NewStoreFailureError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Recipe", id)
	}
	return nil
}
