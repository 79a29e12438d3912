package validation

import (
	"fmt"
	"strings"

	"recipehub/internal/models"
)

const recipeNameMaxLength = 128

// ValidateRecipeName checks that a recipe name is present and within bounds.
func ValidateRecipeName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return models.NewValidationError("recipe name is required")
	}
	if len(trimmed) > recipeNameMaxLength {
		return models.NewValidationError(fmt.Sprintf("recipe name must not exceed %d characters", recipeNameMaxLength))
	}
	return nil
}

// ValidateCookingTime checks the cooking time is within [1, 1440] minutes.
func ValidateCookingTime(minutes int) error {
	if minutes < models.CookingTimeMin {
		return models.NewValidationError(fmt.Sprintf("cooking time must be at least %d minute", models.CookingTimeMin))
	}
	if minutes > models.CookingTimeMax {
		return models.NewValidationError(fmt.Sprintf("cooking time must not exceed %d minutes", models.CookingTimeMax))
	}
	return nil
}
