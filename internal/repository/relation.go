package repository

import (
	"context"
	"errors"
	"fmt"

	"recipehub/internal/models"

	"gorm.io/gorm"
)

// ErrDuplicateEdge is returned by Create when the store's uniqueness
// constraint rejects a second edge for the same (user, target) pair.
// The service layer translates it into the user-facing conflict error,
// so a lost race between the pre-check and the insert still reports
// "already exists" rather than an internal failure.
var ErrDuplicateEdge = errors.New("relation edge already exists")

// RelationRepository persists the three uniqueness-constrained edge
// kinds (favorite, shopping cart, subscription) behind one interface.
// The per-kind variation is confined to edgeRow below.
type RelationRepository interface {
	Exists(ctx context.Context, kind models.RelationKind, userID, targetID uint) (bool, error)
	Create(ctx context.Context, kind models.RelationKind, userID, targetID uint) (*models.RelationEdge, error)
	Delete(ctx context.Context, kind models.RelationKind, userID, targetID uint) (bool, error)
	Count(ctx context.Context, kind models.RelationKind, userID uint) (int64, error)
}

// relationRepository implements RelationRepository
type relationRepository struct {
	db *gorm.DB
}

// NewRelationRepository creates a new relation repository
func NewRelationRepository(db *gorm.DB) RelationRepository {
	return &relationRepository{db: db}
}

// edgeRow returns a fresh edge model for the kind, plus the column
// holding the target side of the pair.
func edgeRow(kind models.RelationKind, userID, targetID uint) (interface{}, string, error) {
	switch kind {
	case models.RelationFavorite:
		return &models.Favorite{UserID: userID, RecipeID: targetID}, "recipe_id", nil
	case models.RelationShoppingCart:
		return &models.ShoppingCartItem{UserID: userID, RecipeID: targetID}, "recipe_id", nil
	case models.RelationSubscription:
		return &models.Subscription{UserID: userID, AuthorID: targetID}, "author_id", nil
	default:
		return nil, "", fmt.Errorf("unknown relation kind %q", kind)
	}
}

func (r *relationRepository) Exists(ctx context.Context, kind models.RelationKind, userID, targetID uint) (bool, error) {
	row, targetCol, err := edgeRow(kind, userID, targetID)
	if err != nil {
		return false, models.NewInternalError(err)
	}

	var count int64
	err = r.db.WithContext(ctx).
		Model(row).
		Where(fmt.Sprintf("user_id = ? AND %s = ?", targetCol), userID, targetID).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *relationRepository) Create(ctx context.Context, kind models.RelationKind, userID, targetID uint) (*models.RelationEdge, error) {
	row, _, err := edgeRow(kind, userID, targetID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEdge
		}
		return nil, models.NewStoreFailureError(err)
	}

	edge := &models.RelationEdge{Kind: kind, UserID: userID, TargetID: targetID}
	switch e := row.(type) {
	case *models.Favorite:
		edge.ID = e.ID
	case *models.ShoppingCartItem:
		edge.ID = e.ID
	case *models.Subscription:
		edge.ID = e.ID
	}
	return edge, nil
}

// Delete removes the edge and reports whether a row was actually deleted.
func (r *relationRepository) Delete(ctx context.Context, kind models.RelationKind, userID, targetID uint) (bool, error) {
	row, targetCol, err := edgeRow(kind, userID, targetID)
	if err != nil {
		return false, models.NewInternalError(err)
	}

	res := r.db.WithContext(ctx).
		Where(fmt.Sprintf("user_id = ? AND %s = ?", targetCol), userID, targetID).
		Delete(row)
	if res.Error != nil {
		return false, models.NewStoreFailureError(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *relationRepository) Count(ctx context.Context, kind models.RelationKind, userID uint) (int64, error) {
	row, _, err := edgeRow(kind, 0, 0)
	if err != nil {
		return 0, models.NewInternalError(err)
	}

	var count int64
	err = r.db.WithContext(ctx).
		Model(row).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
