package service

import (
	"context"

	"recipehub/internal/models"
	"recipehub/internal/repository"
)

// CompositionLine is one requested ingredient line of a recipe.
type CompositionLine struct {
	IngredientID uint `json:"id"`
	Amount       int  `json:"amount"`
}

// CompositionService validates a recipe's requested ingredient list
// against the catalog before any of it reaches the store.
type CompositionService struct {
	ingredientRepo repository.IngredientRepository
}

func NewCompositionService(ingredientRepo repository.IngredientRepository) *CompositionService {
	return &CompositionService{ingredientRepo: ingredientRepo}
}

// Validate checks the lines in their given order and returns them as
// storable rows, order preserved. The first offending line decides the
// error: a non-positive amount or a repeated ingredient is reported
// before the catalog is consulted, unknown ingredients after.
func (s *CompositionService) Validate(ctx context.Context, lines []CompositionLine) ([]models.RecipeIngredient, error) {
	if len(lines) == 0 {
		return nil, models.NewEmptyCompositionError()
	}

	seen := make(map[uint]bool, len(lines))
	ids := make([]uint, 0, len(lines))
	for _, line := range lines {
		if line.Amount < 1 {
			return nil, models.NewNonPositiveAmountError(line.IngredientID, line.Amount)
		}
		if seen[line.IngredientID] {
			return nil, models.NewDuplicateIngredientError(line.IngredientID)
		}
		seen[line.IngredientID] = true
		ids = append(ids, line.IngredientID)
	}

	existing, err := s.ingredientRepo.ExistingIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if !existing[id] {
			return nil, models.NewUnknownIngredientError(id)
		}
	}

	rows := make([]models.RecipeIngredient, len(lines))
	for i, line := range lines {
		rows[i] = models.RecipeIngredient{
			IngredientID: line.IngredientID,
			Amount:       line.Amount,
		}
	}
	return rows, nil
}
