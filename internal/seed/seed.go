// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"recipehub/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumRecipes  int
	ShouldClean bool
}

// Run populates the database with demo users, recipes and relations.
// All seeded users share the password "password123".
func Run(db *gorm.DB, opts Options) error {
	if opts.NumUsers <= 0 {
		opts.NumUsers = 20
	}
	if opts.NumRecipes <= 0 {
		opts.NumRecipes = opts.NumUsers * 3
	}

	if opts.ShouldClean {
		if err := clean(db); err != nil {
			return fmt.Errorf("clean tables: %w", err)
		}
	}

	if err := Ingredients(db); err != nil {
		return fmt.Errorf("seed ingredients: %w", err)
	}

	// One hash for every demo account keeps seeding fast; bcrypt is the
	// bottleneck otherwise.
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	f := NewFactory(db)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		u, err := f.CreateUser(string(hash))
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		users = append(users, u)
	}
	log.Printf("Seeded %d users", len(users))

	var ingredients []models.Ingredient
	if err := db.Find(&ingredients).Error; err != nil {
		return fmt.Errorf("load ingredients: %w", err)
	}

	recipes := make([]*models.Recipe, 0, opts.NumRecipes)
	for i := 0; i < opts.NumRecipes; i++ {
		author := users[rand.Intn(len(users))]
		r, err := f.CreateRecipe(author, ingredients)
		if err != nil {
			return fmt.Errorf("create recipe: %w", err)
		}
		recipes = append(recipes, r)
	}
	log.Printf("Seeded %d recipes", len(recipes))

	if err := seedRelations(db, users, recipes); err != nil {
		return fmt.Errorf("seed relations: %w", err)
	}

	return nil
}

// seedRelations sprinkles favorites, cart items and subscriptions over
// the seeded users. Unique indexes make retried pairs harmless, so
// duplicates from the random picks are simply skipped.
func seedRelations(db *gorm.DB, users []*models.User, recipes []*models.Recipe) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	var favorites, carts, subs int
	for _, u := range users {
		for i := 0; i < r.Intn(6); i++ {
			recipe := recipes[r.Intn(len(recipes))]
			res := db.Where(models.Favorite{UserID: u.ID, RecipeID: recipe.ID}).
				FirstOrCreate(&models.Favorite{UserID: u.ID, RecipeID: recipe.ID})
			if res.Error != nil {
				return res.Error
			}
			favorites += int(res.RowsAffected)
		}
		for i := 0; i < r.Intn(4); i++ {
			recipe := recipes[r.Intn(len(recipes))]
			res := db.Where(models.ShoppingCartItem{UserID: u.ID, RecipeID: recipe.ID}).
				FirstOrCreate(&models.ShoppingCartItem{UserID: u.ID, RecipeID: recipe.ID})
			if res.Error != nil {
				return res.Error
			}
			carts += int(res.RowsAffected)
		}
		for i := 0; i < r.Intn(4); i++ {
			author := users[r.Intn(len(users))]
			if author.ID == u.ID {
				continue
			}
			res := db.Where(models.Subscription{UserID: u.ID, AuthorID: author.ID}).
				FirstOrCreate(&models.Subscription{UserID: u.ID, AuthorID: author.ID})
			if res.Error != nil {
				return res.Error
			}
			subs += int(res.RowsAffected)
		}
	}

	log.Printf("Seeded %d favorites, %d cart items, %d subscriptions", favorites, carts, subs)
	return nil
}

func clean(db *gorm.DB) error {
	// Children before parents so foreign keys never block the wipe.
	tables := []interface{}{
		&models.Favorite{},
		&models.ShoppingCartItem{},
		&models.Subscription{},
		&models.RecipeIngredient{},
		&models.Recipe{},
		&models.User{},
	}
	for _, table := range tables {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
			return err
		}
	}
	return nil
}
