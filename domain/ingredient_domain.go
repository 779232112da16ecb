package domain

import "errors"

var (
	MessageSuccessGetIngredients   = "success get ingredients"
	MessageSuccessCreateIngredient = "ingredient created successfully"
	MessageSuccessUpdateIngredient = "ingredient updated successfully"
	MessageSuccessDeleteIngredient = "ingredient deleted successfully"
	MessageIngredientNotFound      = "ingredient not found"
	MessageIngredientNameRequired  = "ingredient name is required"
	MessageFailedCreateIngredient  = "an error occurred while adding the ingredient"
	MessageFailedUpdateIngredient  = "an error occurred while updating the ingredient"
	MessageFailedDeleteIngredient  = "an error occurred while deleting the ingredient"

	ErrIngredientNotFound = errors.New("ingredient not found")
)

type (
	IngredientRequest struct {
		ID              uint   `json:"id" form:"id"`
		Name            string `json:"name" form:"name" validate:"required,max=100"`
		Unit            string `json:"unit" form:"unit" validate:"max=50"`
		CaloriesPerUnit int    `json:"calories_per_unit" form:"calories_per_unit" validate:"gte=0"`
	}

	Ingredient struct {
		ID              uint   `json:"id"`
		Name            string `json:"name"`
		Unit            string `json:"unit"`
		CaloriesPerUnit int    `json:"calories_per_unit"`
	}
)
