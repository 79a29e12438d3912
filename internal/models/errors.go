package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes surfaced to API clients. Each failure kind keeps a
// stable code so the UI can render distinct messages.
const (
	CodeAlreadyExists       = "ALREADY_EXISTS"
	CodeNotFound            = "NOT_FOUND"
	CodeInvalidTarget       = "INVALID_TARGET"
	CodeEmptyComposition    = "EMPTY_COMPOSITION"
	CodeDuplicateIngredient = "DUPLICATE_INGREDIENT"
	CodeUnknownIngredient   = "UNKNOWN_INGREDIENT"
	CodeNonPositiveAmount   = "NON_POSITIVE_AMOUNT"
	CodeValidation          = "VALIDATION_ERROR"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeForbidden           = "FORBIDDEN"
	CodeStoreFailure        = "STORE_TRANSACTION_FAILURE"
	CodeInternal            = "INTERNAL_ERROR"
)

// ErrorResponse represents a standardized API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors
func NewAlreadyExistsError(message string) *AppError {
	return &AppError{
		Code:    CodeAlreadyExists,
		Message: message,
	}
}

func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewNotFoundMessageError(message string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: message,
	}
}

func NewInvalidTargetError(message string) *AppError {
	return &AppError{
		Code:    CodeInvalidTarget,
		Message: message,
	}
}

func NewEmptyCompositionError() *AppError {
	return &AppError{
		Code:    CodeEmptyComposition,
		Message: "At least one ingredient is required",
	}
}

func NewDuplicateIngredientError(ingredientID uint) *AppError {
	return &AppError{
		Code:    CodeDuplicateIngredient,
		Message: fmt.Sprintf("Ingredient %d is listed more than once", ingredientID),
	}
}

func NewUnknownIngredientError(ingredientID uint) *AppError {
	return &AppError{
		Code:    CodeUnknownIngredient,
		Message: fmt.Sprintf("Ingredient %d does not exist", ingredientID),
	}
}

func NewNonPositiveAmountError(ingredientID uint, amount int) *AppError {
	return &AppError{
		Code:    CodeNonPositiveAmount,
		Message: fmt.Sprintf("Amount for ingredient %d must be greater than 0, got %d", ingredientID, amount),
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: message,
	}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{
		Code:    CodeForbidden,
		Message: message,
	}
}

func NewStoreFailureError(err error) *AppError {
	return &AppError{
		Code:    CodeStoreFailure,
		Message: "Store transaction failed",
		Err:     err,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}

// RespondWithError creates a standardized error response
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	var response ErrorResponse

	if appErr, ok := err.(*AppError); ok {
		response = ErrorResponse{
			Error: appErr.Message,
			Code:  appErr.Code,
		}
		if appErr.Err != nil {
			response.Details = appErr.Err.Error()
		}
	} else {
		response = ErrorResponse{
			Error: err.Error(),
		}
	}

	return c.Status(status).JSON(response)
}
