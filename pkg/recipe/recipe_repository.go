package recipe

import (
	"DishAndMovie/domain"
	"DishAndMovie/entities"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	RecipeRepository interface {
		GetRecipes(ctx context.Context, p domain.Pagination) ([]entities.Recipe, error)
		CountRecipes(ctx context.Context) (int64, error)
		GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error)
		GetRecipesByOrigin(ctx context.Context, originID uint) ([]entities.Recipe, error)
		GetMoviesByOrigin(ctx context.Context, originID uint) ([]entities.Movie, error)
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		DeleteRecipe(ctx context.Context, id uint) error

		// Ingredient associations
		GetRecipeIngredients(ctx context.Context, recipeID uint) ([]entities.RecipeIngredient, error)
		GetRecipeIngredient(ctx context.Context, recipeID, ingredientID uint) (*entities.RecipeIngredient, error)
		CreateRecipeIngredient(ctx context.Context, ri *entities.RecipeIngredient) error
		DeleteRecipeIngredient(ctx context.Context, recipeID, ingredientID uint) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{
		db: db,
	}
}

func (r *recipeRepository) GetRecipes(ctx context.Context, p domain.Pagination) ([]entities.Recipe, error) {
	var recipes []entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Origin").
		Order("id ASC").
		Offset(p.Skip).
		Limit(p.PerPage).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) CountRecipes(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Recipe{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Preload("Origin").Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipesByOrigin(ctx context.Context, originID uint) ([]entities.Recipe, error) {
	var recipes []entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Origin").
		Where("origin_id = ?", originID).
		Order("id ASC").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetMoviesByOrigin(ctx context.Context, originID uint) ([]entities.Movie, error) {
	var movies []entities.Movie
	if err := r.db.WithContext(ctx).
		Where("origin_id = ?", originID).
		Order("id ASC").
		Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(recipe).Error
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(recipe).Error
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&entities.Recipe{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *recipeRepository) GetRecipeIngredients(ctx context.Context, recipeID uint) ([]entities.RecipeIngredient, error) {
	var items []entities.RecipeIngredient
	if err := r.db.WithContext(ctx).
		Preload("Ingredient").
		Where("recipe_id = ?", recipeID).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *recipeRepository) GetRecipeIngredient(ctx context.Context, recipeID, ingredientID uint) (*entities.RecipeIngredient, error) {
	var item entities.RecipeIngredient
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ? AND ingredient_id = ?", recipeID, ingredientID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *recipeRepository) CreateRecipeIngredient(ctx context.Context, ri *entities.RecipeIngredient) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(ri).Error
}

func (r *recipeRepository) DeleteRecipeIngredient(ctx context.Context, recipeID, ingredientID uint) error {
	return r.db.WithContext(ctx).
		Where("recipe_id = ? AND ingredient_id = ?", recipeID, ingredientID).
		Delete(&entities.RecipeIngredient{}).Error
}
