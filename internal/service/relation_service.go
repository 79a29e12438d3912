package service

import (
	"context"
	"errors"
	"fmt"

	"recipehub/internal/models"
	"recipehub/internal/repository"
)

// kindRules carries the per-kind behavior of the relation toggle:
// how to confirm the target exists, what a duplicate add and a missing
// remove are called, and whether self-edges are rejected.
type kindRules struct {
	targetNoun    string
	conflictMsg   string
	missingMsg    string
	selfForbidden bool
}

var relationRules = map[models.RelationKind]kindRules{
	models.RelationFavorite: {
		targetNoun:  "recipe",
		conflictMsg: "Recipe is already in favorites",
		missingMsg:  "Recipe is not in favorites",
	},
	models.RelationShoppingCart: {
		targetNoun:  "recipe",
		conflictMsg: "Recipe is already in the shopping cart",
		missingMsg:  "Recipe is not in the shopping cart",
	},
	models.RelationSubscription: {
		targetNoun:    "user",
		conflictMsg:   "Already subscribed to this author",
		missingMsg:    "Not subscribed to this author",
		selfForbidden: true,
	},
}

// RelationService toggles the three edge kinds (favorite, shopping
// cart, subscription) with uniform semantics: adding an existing edge
// is a conflict, removing an absent one is not found, and the store's
// uniqueness constraint settles races.
type RelationService struct {
	relationRepo repository.RelationRepository
	userRepo     repository.UserRepository
	recipeRepo   repository.RecipeRepository
}

func NewRelationService(
	relationRepo repository.RelationRepository,
	userRepo repository.UserRepository,
	recipeRepo repository.RecipeRepository,
) *RelationService {
	return &RelationService{
		relationRepo: relationRepo,
		userRepo:     userRepo,
		recipeRepo:   recipeRepo,
	}
}

func (s *RelationService) rules(kind models.RelationKind) (kindRules, error) {
	r, ok := relationRules[kind]
	if !ok {
		return kindRules{}, models.NewInternalError(fmt.Errorf("unknown relation kind %q", kind))
	}
	return r, nil
}

// ensureTarget verifies the edge's target row exists, yielding the
// not-found error of the target's own repository when it doesn't.
func (s *RelationService) ensureTarget(ctx context.Context, kind models.RelationKind, targetID uint) error {
	switch kind {
	case models.RelationSubscription:
		_, err := s.userRepo.GetByID(ctx, targetID, 0)
		return err
	default:
		_, err := s.recipeRepo.GetByID(ctx, targetID, 0)
		return err
	}
}

// Add creates the edge. Two concurrent adds of the same edge both pass
// the duplicate pre-check, so the unique index is authoritative: the
// loser's constraint violation is reported as the same conflict a
// sequential duplicate gets.
func (s *RelationService) Add(ctx context.Context, kind models.RelationKind, userID, targetID uint) (*models.RelationEdge, error) {
	rules, err := s.rules(kind)
	if err != nil {
		return nil, err
	}
	if rules.selfForbidden && userID == targetID {
		return nil, models.NewInvalidTargetError("Cannot subscribe to yourself")
	}
	if err := s.ensureTarget(ctx, kind, targetID); err != nil {
		return nil, err
	}

	edge, err := s.relationRepo.Create(ctx, kind, userID, targetID)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEdge) {
			return nil, models.NewAlreadyExistsError(rules.conflictMsg)
		}
		return nil, err
	}
	return edge, nil
}

// Remove deletes the edge; removing an edge that was never added (or
// was already removed) is not found, never a silent no-op.
func (s *RelationService) Remove(ctx context.Context, kind models.RelationKind, userID, targetID uint) error {
	rules, err := s.rules(kind)
	if err != nil {
		return err
	}
	if rules.selfForbidden && userID == targetID {
		return models.NewInvalidTargetError("Cannot unsubscribe from yourself")
	}
	if err := s.ensureTarget(ctx, kind, targetID); err != nil {
		return err
	}

	deleted, err := s.relationRepo.Delete(ctx, kind, userID, targetID)
	if err != nil {
		return err
	}
	if !deleted {
		return models.NewNotFoundMessageError(rules.missingMsg)
	}
	return nil
}

// CartCount returns how many recipes are in the user's shopping cart.
func (s *RelationService) CartCount(ctx context.Context, userID uint) (int64, error) {
	return s.relationRepo.Count(ctx, models.RelationShoppingCart, userID)
}
