package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"recipehub/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db, r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// CreateUser persists a demo user with a pre-computed password hash.
func (f *Factory) CreateUser(passwordHash string) (*models.User, error) {
	first := gofakeit.FirstName()
	last := gofakeit.LastName()
	username := strings.ToLower(fmt.Sprintf("%s_%s%d", first, last, f.r.Intn(10000)))

	user := &models.User{
		Username:  username,
		Email:     fmt.Sprintf("%s@example.com", username),
		Password:  passwordHash,
		FirstName: first,
		LastName:  last,
		Avatar:    fmt.Sprintf("https://picsum.photos/seed/%s/256/256", gofakeit.UUID()),
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateRecipe persists a recipe for the author with 2-5 distinct
// catalog ingredients and a realistic created_at spread over the last
// 90 days.
func (f *Factory) CreateRecipe(author *models.User, catalog []models.Ingredient) (*models.Recipe, error) {
	recipe := f.BuildRecipe(author)
	if err := f.db.Create(recipe).Error; err != nil {
		return nil, err
	}

	lines := f.buildComposition(recipe.ID, catalog)
	if len(lines) > 0 {
		if err := f.db.Create(&lines).Error; err != nil {
			return nil, err
		}
	}
	return recipe, nil
}

// BuildRecipe constructs a recipe struct without persisting it.
func (f *Factory) BuildRecipe(author *models.User) *models.Recipe {
	dish := gofakeit.Dinner()
	steps := make([]string, 0, 4)
	for i := 0; i < 3+f.r.Intn(2); i++ {
		steps = append(steps, gofakeit.Sentence(8+f.r.Intn(6)))
	}

	daysBack := f.r.Intn(90)
	hoursBack := f.r.Intn(24)
	createdAt := time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	return &models.Recipe{
		AuthorID:    author.ID,
		Name:        dish,
		Image:       fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID()),
		Text:        strings.Join(steps, "\n"),
		CookingTime: 5 + f.r.Intn(176),
		CreatedAt:   createdAt,
	}
}

func (f *Factory) buildComposition(recipeID uint, catalog []models.Ingredient) []models.RecipeIngredient {
	if len(catalog) == 0 {
		return nil
	}

	count := 2 + f.r.Intn(4)
	if count > len(catalog) {
		count = len(catalog)
	}

	lines := make([]models.RecipeIngredient, 0, count)
	for _, idx := range f.r.Perm(len(catalog))[:count] {
		lines = append(lines, models.RecipeIngredient{
			RecipeID:     recipeID,
			IngredientID: catalog[idx].ID,
			Amount:       1 + f.r.Intn(500),
		})
	}
	return lines
}
