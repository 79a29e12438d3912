package seed

import (
	"fmt"

	"recipehub/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BuiltInIngredient is a permanent catalog entry.
type BuiltInIngredient struct {
	Name string
	Unit string
}

// BuiltInIngredients defines the baseline ingredient catalog every
// deployment starts with. A fuller catalog comes from the bulk import
// command.
var BuiltInIngredients = []BuiltInIngredient{
	{Name: "salt", Unit: "g"},
	{Name: "sugar", Unit: "g"},
	{Name: "black pepper", Unit: "g"},
	{Name: "flour", Unit: "g"},
	{Name: "butter", Unit: "g"},
	{Name: "olive oil", Unit: "ml"},
	{Name: "sunflower oil", Unit: "ml"},
	{Name: "milk", Unit: "ml"},
	{Name: "water", Unit: "ml"},
	{Name: "egg", Unit: "pcs"},
	{Name: "onion", Unit: "pcs"},
	{Name: "garlic", Unit: "cloves"},
	{Name: "carrot", Unit: "pcs"},
	{Name: "potato", Unit: "pcs"},
	{Name: "tomato", Unit: "pcs"},
	{Name: "chicken breast", Unit: "g"},
	{Name: "ground beef", Unit: "g"},
	{Name: "rice", Unit: "g"},
	{Name: "pasta", Unit: "g"},
	{Name: "cheese", Unit: "g"},
	{Name: "sour cream", Unit: "g"},
	{Name: "lemon", Unit: "pcs"},
	{Name: "parsley", Unit: "g"},
	{Name: "dill", Unit: "g"},
	{Name: "bay leaf", Unit: "pcs"},
}

// Ingredients seeds the baseline catalog. Safe to run repeatedly:
// existing names keep their IDs and only the unit is refreshed.
func Ingredients(db *gorm.DB) error {
	for _, item := range BuiltInIngredients {
		ingredient := models.Ingredient{
			Name:            item.Name,
			MeasurementUnit: item.Unit,
		}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"measurement_unit"}),
		}).Create(&ingredient).Error; err != nil {
			return fmt.Errorf("seed built-in ingredient %s: %w", item.Name, err)
		}
	}
	return nil
}
