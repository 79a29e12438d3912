package models

import (
	"time"
)

// Favorite marks a recipe as favorited by a user.
// The combination of UserID and RecipeID must be unique.
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_favorite_user_recipe" json:"user_id"`
	RecipeID  uint      `gorm:"not null;uniqueIndex:idx_favorite_user_recipe" json:"recipe_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	User   User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Recipe Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
}

// ShoppingCartItem marks a recipe as added to a user's shopping cart.
// The combination of UserID and RecipeID must be unique.
type ShoppingCartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_recipe" json:"user_id"`
	RecipeID  uint      `gorm:"not null;uniqueIndex:idx_cart_user_recipe" json:"recipe_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	User   User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Recipe Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
}

// RelationKind identifies one of the three edge relation types handled
// by the relation toggle service.
type RelationKind string

const (
	// RelationFavorite is the user→recipe favorite edge.
	RelationFavorite RelationKind = "favorite"
	// RelationShoppingCart is the user→recipe shopping cart edge.
	RelationShoppingCart RelationKind = "shopping_cart"
	// RelationSubscription is the user→author follow edge.
	RelationSubscription RelationKind = "subscription"
)

// RelationEdge is the kind-agnostic view of a created edge returned by
// the toggle service.
type RelationEdge struct {
	ID       uint         `json:"id"`
	Kind     RelationKind `json:"kind"`
	UserID   uint         `json:"user_id"`
	TargetID uint         `json:"target_id"`
}

// ShoppingListItem is one aggregated row of a user's shopping list:
// every cart recipe's lines for the same ingredient summed together.
// Never persisted; produced by the aggregation query.
type ShoppingListItem struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	TotalAmount     int    `json:"total_amount"`
}
