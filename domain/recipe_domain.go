package domain

import "errors"

var (
	MessageSuccessGetRecipes           = "success get recipes"
	MessageSuccessGetRecipeIngredients = "success get recipe ingredients"
	MessageSuccessCreateRecipe         = "recipe created successfully"
	MessageSuccessUpdateRecipe         = "recipe updated successfully"
	MessageSuccessDeleteRecipe         = "recipe deleted successfully"
	MessageSuccessAddIngredient        = "ingredient added to recipe"
	MessageSuccessRemoveIngredient     = "ingredient removed from recipe"
	MessageRecipeNotFound              = "recipe not found"
	MessageRecipeNameRequired          = "recipe name is required"
	MessageIngredientAlreadyExists     = "ingredient already exists in this recipe"
	MessageQuantityPositive            = "quantity must be greater than zero"
	MessageFailedCreateRecipe          = "error adding recipe"
	MessageFailedUpdateRecipe          = "error updating recipe"
	MessageFailedDeleteRecipe          = "error deleting recipe"
	MessageFailedAddIngredient         = "error adding ingredient to recipe"

	ErrRecipeNotFound = errors.New("recipe not found")
)

type (
	RecipeRequest struct {
		ID       uint   `json:"id" form:"id"`
		Name     string `json:"name" form:"name" validate:"required,max=255"`
		OriginID uint   `json:"origin_id" form:"origin_id" validate:"required"`
	}

	RecipeIngredientRequest struct {
		IngredientID uint    `json:"ingredient_id" form:"ingredient_id" validate:"required"`
		Quantity     float64 `json:"quantity" form:"quantity" validate:"gt=0"`
	}

	Recipe struct {
		ID                   uint           `json:"id"`
		Name                 string         `json:"name"`
		OriginID             uint           `json:"origin_id"`
		OriginCountry        string         `json:"origin_country"`
		MoviesFromSameOrigin []MovieSummary `json:"movies_from_same_origin,omitempty"`
	}

	RecipeSummary struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}

	// RecipeIngredient is an ingredient as used by one recipe: Quantity and
	// UsageUnit come from the association, the rest from the ingredient.
	RecipeIngredient struct {
		IngredientID    uint    `json:"ingredient_id"`
		Name            string  `json:"name"`
		BaseUnit        string  `json:"base_unit"`
		CaloriesPerUnit int     `json:"calories_per_unit"`
		Quantity        float64 `json:"quantity"`
		UsageUnit       string  `json:"unit"`
	}
)
