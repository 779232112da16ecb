package domain

import "errors"

var (
	MessageSuccessGetMealPlans   = "success get meal plans"
	MessageSuccessCreateMealPlan = "meal plan created successfully"
	MessageSuccessUpdateMealPlan = "meal plan updated successfully"
	MessageSuccessDeleteMealPlan = "meal plan deleted successfully"
	MessageMealPlanNotFound      = "meal plan not found"
	MessageMealPlanNameRequired  = "meal plan name is required"
	MessageMealPlanDateInvalid   = "meal plan date must be formatted as YYYY-MM-DD"
	MessageFailedCreateMealPlan  = "an error occurred while adding the meal plan"
	MessageFailedUpdateMealPlan  = "an error occurred while updating the meal plan"
	MessageFailedDeleteMealPlan  = "an error occurred while deleting the meal plan"

	ErrMealPlanNotFound = errors.New("meal plan not found")
)

type (
	MealPlanRequest struct {
		ID   uint   `json:"id" form:"id"`
		Name string `json:"name" form:"name" validate:"required,max=255"`
		Date string `json:"date" form:"date" validate:"required,datetime=2006-01-02"`
	}

	MealPlan struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
		Date string `json:"date"`
	}
)
