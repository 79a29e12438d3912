package service

import (
	"context"
	"fmt"
	"strings"

	"recipehub/internal/models"
	"recipehub/internal/repository"
)

// ShoppingListService turns a user's cart into a merged shopping list.
type ShoppingListService struct {
	listRepo repository.ShoppingListRepository
}

func NewShoppingListService(listRepo repository.ShoppingListRepository) *ShoppingListService {
	return &ShoppingListService{listRepo: listRepo}
}

// Aggregate returns the merged totals for everything in the user's
// cart, one row per ingredient, sorted by name.
func (s *ShoppingListService) Aggregate(ctx context.Context, userID uint) ([]models.ShoppingListItem, error) {
	return s.listRepo.Aggregate(ctx, userID)
}

// RenderText formats aggregated items as the downloadable plain-text
// list. An empty cart still renders the header line.
func (s *ShoppingListService) RenderText(items []models.ShoppingListItem) string {
	var b strings.Builder
	b.WriteString("Shopping list:\n")
	for _, item := range items {
		fmt.Fprintf(&b, "%s - %d %s\n", item.Name, item.TotalAmount, item.MeasurementUnit)
	}
	return b.String()
}
