package service

import (
	"context"

	"recipehub/internal/models"
	"recipehub/internal/repository"
)

// relationRepoStub is a stub for repository.RelationRepository.
type relationRepoStub struct {
	existsFn func(context.Context, models.RelationKind, uint, uint) (bool, error)
	createFn func(context.Context, models.RelationKind, uint, uint) (*models.RelationEdge, error)
	deleteFn func(context.Context, models.RelationKind, uint, uint) (bool, error)
	countFn  func(context.Context, models.RelationKind, uint) (int64, error)
}

func (s *relationRepoStub) Exists(ctx context.Context, kind models.RelationKind, userID, targetID uint) (bool, error) {
	return s.existsFn(ctx, kind, userID, targetID)
}
func (s *relationRepoStub) Create(ctx context.Context, kind models.RelationKind, userID, targetID uint) (*models.RelationEdge, error) {
	return s.createFn(ctx, kind, userID, targetID)
}
func (s *relationRepoStub) Delete(ctx context.Context, kind models.RelationKind, userID, targetID uint) (bool, error) {
	return s.deleteFn(ctx, kind, userID, targetID)
}
func (s *relationRepoStub) Count(ctx context.Context, kind models.RelationKind, userID uint) (int64, error) {
	return s.countFn(ctx, kind, userID)
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn               func(context.Context, *models.User) error
	getByIDFn              func(context.Context, uint, uint) (*models.User, error)
	getByEmailFn           func(context.Context, string) (*models.User, error)
	getByUsernameFn        func(context.Context, string) (*models.User, error)
	updateFn               func(context.Context, *models.User) error
	listFn                 func(context.Context, uint, int, int) ([]models.User, error)
	getSubscribedAuthorsFn func(context.Context, uint) ([]models.User, error)
	countRecipesFn         func(context.Context, uint) (int64, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id, viewerID uint) (*models.User, error) {
	return s.getByIDFn(ctx, id, viewerID)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) List(ctx context.Context, viewerID uint, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, viewerID, limit, offset)
}
func (s *userRepoStub) GetSubscribedAuthors(ctx context.Context, userID uint) ([]models.User, error) {
	return s.getSubscribedAuthorsFn(ctx, userID)
}
func (s *userRepoStub) CountRecipes(ctx context.Context, authorID uint) (int64, error) {
	return s.countRecipesFn(ctx, authorID)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		getByIDFn:       func(_ context.Context, id, _ uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		updateFn:        func(_ context.Context, _ *models.User) error { return nil },
		listFn:          func(_ context.Context, _ uint, _, _ int) ([]models.User, error) { return nil, nil },
		getSubscribedAuthorsFn: func(_ context.Context, _ uint) ([]models.User, error) {
			return nil, nil
		},
		countRecipesFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

// recipeRepoStub is a stub for repository.RecipeRepository.
type recipeRepoStub struct {
	createFn             func(context.Context, *models.Recipe) error
	getByIDFn            func(context.Context, uint, uint) (*models.Recipe, error)
	listFn               func(context.Context, repository.RecipeFilter, uint, int, int) ([]*models.Recipe, error)
	countFn              func(context.Context, repository.RecipeFilter) (int64, error)
	updateFn             func(context.Context, *models.Recipe) error
	replaceCompositionFn func(context.Context, uint, []models.RecipeIngredient) error
	deleteFn             func(context.Context, uint) error
}

func (s *recipeRepoStub) Create(ctx context.Context, recipe *models.Recipe) error {
	return s.createFn(ctx, recipe)
}
func (s *recipeRepoStub) GetByID(ctx context.Context, id, viewerID uint) (*models.Recipe, error) {
	return s.getByIDFn(ctx, id, viewerID)
}
func (s *recipeRepoStub) List(ctx context.Context, filter repository.RecipeFilter, viewerID uint, limit, offset int) ([]*models.Recipe, error) {
	return s.listFn(ctx, filter, viewerID, limit, offset)
}
func (s *recipeRepoStub) Count(ctx context.Context, filter repository.RecipeFilter) (int64, error) {
	return s.countFn(ctx, filter)
}
func (s *recipeRepoStub) Update(ctx context.Context, recipe *models.Recipe) error {
	return s.updateFn(ctx, recipe)
}
func (s *recipeRepoStub) ReplaceComposition(ctx context.Context, recipeID uint, lines []models.RecipeIngredient) error {
	return s.replaceCompositionFn(ctx, recipeID, lines)
}
func (s *recipeRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopRecipeRepo() *recipeRepoStub {
	return &recipeRepoStub{
		createFn: func(_ context.Context, _ *models.Recipe) error { return nil },
		getByIDFn: func(_ context.Context, id, _ uint) (*models.Recipe, error) {
			return &models.Recipe{ID: id}, nil
		},
		listFn: func(_ context.Context, _ repository.RecipeFilter, _ uint, _, _ int) ([]*models.Recipe, error) {
			return nil, nil
		},
		countFn:              func(_ context.Context, _ repository.RecipeFilter) (int64, error) { return 0, nil },
		updateFn:             func(_ context.Context, _ *models.Recipe) error { return nil },
		replaceCompositionFn: func(_ context.Context, _ uint, _ []models.RecipeIngredient) error { return nil },
		deleteFn:             func(_ context.Context, _ uint) error { return nil },
	}
}

// ingredientRepoStub is a stub for repository.IngredientRepository.
type ingredientRepoStub struct {
	getByIDFn     func(context.Context, uint) (*models.Ingredient, error)
	listFn        func(context.Context, string) ([]models.Ingredient, error)
	existingIDsFn func(context.Context, []uint) (map[uint]bool, error)
	importFn      func(context.Context, []models.Ingredient) (int64, error)
}

func (s *ingredientRepoStub) GetByID(ctx context.Context, id uint) (*models.Ingredient, error) {
	return s.getByIDFn(ctx, id)
}
func (s *ingredientRepoStub) List(ctx context.Context, namePrefix string) ([]models.Ingredient, error) {
	return s.listFn(ctx, namePrefix)
}
func (s *ingredientRepoStub) ExistingIDs(ctx context.Context, ids []uint) (map[uint]bool, error) {
	return s.existingIDsFn(ctx, ids)
}
func (s *ingredientRepoStub) Import(ctx context.Context, ingredients []models.Ingredient) (int64, error) {
	return s.importFn(ctx, ingredients)
}

// allKnownIngredients accepts every requested ID.
func allKnownIngredients() *ingredientRepoStub {
	return &ingredientRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.Ingredient, error) {
			return &models.Ingredient{ID: id}, nil
		},
		listFn: func(_ context.Context, _ string) ([]models.Ingredient, error) { return nil, nil },
		existingIDsFn: func(_ context.Context, ids []uint) (map[uint]bool, error) {
			existing := make(map[uint]bool, len(ids))
			for _, id := range ids {
				existing[id] = true
			}
			return existing, nil
		},
		importFn: func(_ context.Context, _ []models.Ingredient) (int64, error) { return 0, nil },
	}
}

// shoppingListRepoStub is a stub for repository.ShoppingListRepository.
type shoppingListRepoStub struct {
	aggregateFn func(context.Context, uint) ([]models.ShoppingListItem, error)
}

func (s *shoppingListRepoStub) Aggregate(ctx context.Context, userID uint) ([]models.ShoppingListItem, error) {
	return s.aggregateFn(ctx, userID)
}
