// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"recipehub/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint, viewerID uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	List(ctx context.Context, viewerID uint, limit, offset int) ([]models.User, error)
	GetSubscribedAuthors(ctx context.Context, userID uint) ([]models.User, error)
	CountRecipes(ctx context.Context, authorID uint) (int64, error)
}

// userRepository implements UserRepository
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// applyUserDetails annotates users with the is_subscribed flag for the
// viewing user. Anonymous viewers (viewerID 0) always see false.
func (r *userRepository) applyUserDetails(db *gorm.DB, viewerID uint) *gorm.DB {
	if viewerID == 0 {
		return db.Select("users.*, FALSE AS is_subscribed")
	}
	return db.Select(
		"users.*, EXISTS(SELECT 1 FROM subscriptions s WHERE s.author_id = users.id AND s.user_id = ?) AS is_subscribed",
		viewerID,
	)
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewAlreadyExistsError("A user with this email or username already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id uint, viewerID uint) (*models.User, error) {
	var user models.User
	err := r.applyUserDetails(r.db.WithContext(ctx), viewerID).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewAlreadyExistsError("A user with this email or username already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userRepository) List(ctx context.Context, viewerID uint, limit, offset int) ([]models.User, error) {
	var users []models.User
	err := r.applyUserDetails(r.db.WithContext(ctx), viewerID).
		Order("users.id ASC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

// GetSubscribedAuthors returns every author the user follows with
// their recipes preloaded. A preload limit would cap the whole batch
// query rather than each author, so per-author trimming is left to the
// caller.
func (r *userRepository) GetSubscribedAuthors(ctx context.Context, userID uint) ([]models.User, error) {
	var authors []models.User
	err := r.db.WithContext(ctx).
		Select("users.*, TRUE AS is_subscribed").
		Joins("JOIN subscriptions s ON s.author_id = users.id").
		Where("s.user_id = ?", userID).
		Order("s.id ASC").
		Preload("Recipes", func(db *gorm.DB) *gorm.DB {
			return db.Order("recipes.id ASC")
		}).
		Find(&authors).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return authors, nil
}

func (r *userRepository) CountRecipes(ctx context.Context, authorID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Where("author_id = ?", authorID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
