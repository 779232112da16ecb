package migration

import (
	"DishAndMovie/entities"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

// Models lists every table in dependency order: parents before the rows
// that reference them.
func Models() []any {
	return []any{
		&entities.User{},
		&entities.Origin{},
		&entities.Genre{},
		&entities.Ingredient{},
		&entities.Movie{},
		&entities.MovieGenre{},
		&entities.Review{},
		&entities.Recipe{},
		&entities.RecipeIngredient{},
		&entities.MealPlan{},
	}
}

func Migrate(db *gorm.DB) error {
	for _, model := range Models() {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("error migrating %T: %w", model, err)
		}
	}

	log.Info("database migration complete")
	return nil
}
