package models

import (
	"time"
)

// Cooking time bounds in minutes. The validator rejects values outside
// the range before they reach the store; the check constraint is the
// backstop.
const (
	CookingTimeMin = 1
	CookingTimeMax = 1440
)

// Recipe is a published recipe owned by exactly one author. Its
// ingredient lines are replaced wholesale on every update, never
// patched incrementally.
type Recipe struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	AuthorID    uint      `gorm:"not null;index" json:"author_id"`
	Name        string    `gorm:"size:128;not null" json:"name"`
	Image       string    `gorm:"size:500" json:"image"`
	Text        string    `gorm:"type:text;not null" json:"text"`
	CookingTime int       `gorm:"not null;check:cooking_time >= 1" json:"cooking_time"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// IsFavorited and IsInShoppingCart are not persisted; computed at
	// query time for the viewing user and always false for anonymous
	// viewers.
	IsFavorited      bool `gorm:"->" json:"is_favorited"`
	IsInShoppingCart bool `gorm:"->" json:"is_in_shopping_cart"`

	// Relationships
	Author      User               `gorm:"foreignKey:AuthorID" json:"author"`
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients,omitempty"`
}

// RecipeIngredient links one Recipe to one Ingredient with an amount.
// A recipe cannot list the same ingredient twice.
type RecipeIngredient struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	RecipeID     uint `gorm:"not null;uniqueIndex:idx_recipe_ingredient" json:"recipe_id"`
	IngredientID uint `gorm:"not null;uniqueIndex:idx_recipe_ingredient" json:"ingredient_id"`
	Amount       int  `gorm:"not null;check:amount >= 1" json:"amount"`

	// Relationships
	Recipe     Recipe     `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Ingredient Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient"`
}

// TableName specifies the table name for GORM
func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}
