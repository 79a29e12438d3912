package repository

import (
	"context"
	"errors"

	"recipehub/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IngredientRepository defines the interface for ingredient catalog operations
type IngredientRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Ingredient, error)
	List(ctx context.Context, namePrefix string) ([]models.Ingredient, error)
	ExistingIDs(ctx context.Context, ids []uint) (map[uint]bool, error)
	Import(ctx context.Context, ingredients []models.Ingredient) (int64, error)
}

// ingredientRepository implements IngredientRepository
type ingredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository creates a new ingredient repository
func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) GetByID(ctx context.Context, id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := r.db.WithContext(ctx).First(&ingredient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Ingredient", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &ingredient, nil
}

// List returns ingredients ordered by name, optionally restricted to a
// case-insensitive name prefix.
func (r *ingredientRepository) List(ctx context.Context, namePrefix string) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	q := r.db.WithContext(ctx).Order("name ASC")
	if namePrefix != "" {
		q = q.Where("lower(name) LIKE lower(?)", namePrefix+"%")
	}
	if err := q.Find(&ingredients).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ingredients, nil
}

// ExistingIDs reports which of the given ingredient IDs are present in
// the catalog.
func (r *ingredientRepository) ExistingIDs(ctx context.Context, ids []uint) (map[uint]bool, error) {
	existing := make(map[uint]bool, len(ids))
	if len(ids) == 0 {
		return existing, nil
	}

	var found []uint
	err := r.db.WithContext(ctx).
		Model(&models.Ingredient{}).
		Where("id IN ?", ids).
		Pluck("id", &found).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	for _, id := range found {
		existing[id] = true
	}
	return existing, nil
}

// Import bulk-inserts catalog entries, skipping names that already
// exist. Returns the number of rows actually inserted.
func (r *ingredientRepository) Import(ctx context.Context, ingredients []models.Ingredient) (int64, error) {
	if len(ingredients) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&ingredients)
	if res.Error != nil {
		return 0, models.NewInternalError(res.Error)
	}
	return res.RowsAffected, nil
}
