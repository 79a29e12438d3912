package repository

import (
	"context"

	"recipehub/internal/models"

	"gorm.io/gorm"
)

// ShoppingListRepository computes the merged ingredient totals for a
// user's shopping cart.
type ShoppingListRepository interface {
	Aggregate(ctx context.Context, userID uint) ([]models.ShoppingListItem, error)
}

// shoppingListRepository implements ShoppingListRepository
type shoppingListRepository struct {
	db *gorm.DB
}

// NewShoppingListRepository creates a new shopping list repository
func NewShoppingListRepository(db *gorm.DB) ShoppingListRepository {
	return &shoppingListRepository{db: db}
}

// Aggregate sums the amounts of each ingredient across every recipe in
// the user's cart. Ingredients are merged by (name, measurement unit)
// and returned sorted by name, so rendering the list is a straight
// pass over the rows. An empty cart yields an empty slice, not an
// error.
func (r *shoppingListRepository) Aggregate(ctx context.Context, userID uint) ([]models.ShoppingListItem, error) {
	var items []models.ShoppingListItem
	err := r.db.WithContext(ctx).
		Table("recipe_ingredients").
		Select("ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, SUM(recipe_ingredients.amount) AS total_amount").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Joins("JOIN shopping_cart_items ON shopping_cart_items.recipe_id = recipe_ingredients.recipe_id").
		Where("shopping_cart_items.user_id = ?", userID).
		Group("ingredients.name, ingredients.measurement_unit").
		Order("ingredients.name ASC").
		Scan(&items).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return items, nil
}
