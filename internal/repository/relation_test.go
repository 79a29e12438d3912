package repository

import (
	"context"
	"testing"

	"recipehub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelationRepository_FavoriteLifecycle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRelationRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "reader")
	author := createTestUser(t, db, "author")
	recipe := createTestRecipe(t, db, author.ID, "Borscht")

	t.Run("Create", func(t *testing.T) {
		edge, err := repo.Create(ctx, models.RelationFavorite, user.ID, recipe.ID)
		require.NoError(t, err)
		assert.NotZero(t, edge.ID)
		assert.Equal(t, models.RelationFavorite, edge.Kind)
		assert.Equal(t, user.ID, edge.UserID)
		assert.Equal(t, recipe.ID, edge.TargetID)

		exists, err := repo.Exists(ctx, models.RelationFavorite, user.ID, recipe.ID)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Duplicate create hits the unique index", func(t *testing.T) {
		_, err := repo.Create(ctx, models.RelationFavorite, user.ID, recipe.ID)
		assert.ErrorIs(t, err, ErrDuplicateEdge)
	})

	t.Run("Delete", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, models.RelationFavorite, user.ID, recipe.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		exists, err := repo.Exists(ctx, models.RelationFavorite, user.ID, recipe.ID)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Delete absent edge reports false", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, models.RelationFavorite, user.ID, recipe.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("Create after delete succeeds again", func(t *testing.T) {
		_, err := repo.Create(ctx, models.RelationFavorite, user.ID, recipe.ID)
		assert.NoError(t, err)
	})
}

func TestRelationRepository_KindsAreIndependent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRelationRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "reader")
	author := createTestUser(t, db, "author")
	recipe := createTestRecipe(t, db, author.ID, "Pelmeni")

	_, err := repo.Create(ctx, models.RelationFavorite, user.ID, recipe.ID)
	require.NoError(t, err)

	// Same (user, recipe) pair under a different kind is a fresh edge.
	_, err = repo.Create(ctx, models.RelationShoppingCart, user.ID, recipe.ID)
	require.NoError(t, err)

	exists, err := repo.Exists(ctx, models.RelationShoppingCart, user.ID, recipe.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	deleted, err := repo.Delete(ctx, models.RelationFavorite, user.ID, recipe.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	exists, err = repo.Exists(ctx, models.RelationShoppingCart, user.ID, recipe.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRelationRepository_Subscription(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRelationRepository(db)
	ctx := context.Background()

	follower := createTestUser(t, db, "follower")
	author := createTestUser(t, db, "chef")

	_, err := repo.Create(ctx, models.RelationSubscription, follower.ID, author.ID)
	require.NoError(t, err)

	var sub models.Subscription
	require.NoError(t, db.First(&sub).Error)
	assert.Equal(t, follower.ID, sub.UserID)
	assert.Equal(t, author.ID, sub.AuthorID)

	// Reverse direction is a distinct edge.
	_, err = repo.Create(ctx, models.RelationSubscription, author.ID, follower.ID)
	assert.NoError(t, err)
}

func TestRelationRepository_Count(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRelationRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "shopper")
	other := createTestUser(t, db, "other")
	author := createTestUser(t, db, "author")
	r1 := createTestRecipe(t, db, author.ID, "Soup")
	r2 := createTestRecipe(t, db, author.ID, "Salad")

	count, err := repo.Count(ctx, models.RelationShoppingCart, user.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = repo.Create(ctx, models.RelationShoppingCart, user.ID, r1.ID)
	require.NoError(t, err)
	_, err = repo.Create(ctx, models.RelationShoppingCart, user.ID, r2.ID)
	require.NoError(t, err)
	_, err = repo.Create(ctx, models.RelationShoppingCart, other.ID, r1.ID)
	require.NoError(t, err)

	count, err = repo.Count(ctx, models.RelationShoppingCart, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestRelationRepository_UnknownKind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRelationRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, models.RelationKind("bookmark"), 1, 2)
	assert.Error(t, err)

	_, err = repo.Exists(ctx, models.RelationKind("bookmark"), 1, 2)
	assert.Error(t, err)
}
