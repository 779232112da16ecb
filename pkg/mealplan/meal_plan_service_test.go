package mealplan

import (
	"DishAndMovie/domain"
	"DishAndMovie/internal/testutil"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMealPlanService(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	svc := NewMealPlanService(NewMealPlanRepository(db))

	res := svc.AddMealPlan(ctx, domain.MealPlanRequest{Name: "Movie night", Date: "2024-03-01"})
	require.Equal(t, domain.StatusCreated, res.Status)

	plan, err := svc.FindMealPlan(ctx, res.CreatedID)
	require.NoError(t, err)
	assert.Equal(t, &domain.MealPlan{ID: res.CreatedID, Name: "Movie night", Date: "2024-03-01"}, plan)

	res = svc.UpdateMealPlan(ctx, plan.ID, domain.MealPlanRequest{ID: plan.ID, Name: "Brunch", Date: "2024-03-02"})
	require.Equal(t, domain.StatusUpdated, res.Status)

	updated, err := svc.FindMealPlan(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, &domain.MealPlan{ID: plan.ID, Name: "Brunch", Date: "2024-03-02"}, updated)

	plans, err := svc.ListMealPlans(ctx, domain.NewPagination(0, 3))
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "2024-03-02", plans[0].Date)

	require.Equal(t, domain.StatusDeleted, svc.DeleteMealPlan(ctx, plan.ID).Status)
	_, err = svc.FindMealPlan(ctx, plan.ID)
	assert.ErrorIs(t, err, domain.ErrMealPlanNotFound)
}

func TestMealPlanService_RejectsBadInput(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	svc := NewMealPlanService(NewMealPlanRepository(db))

	res := svc.AddMealPlan(ctx, domain.MealPlanRequest{Name: "Lunch", Date: "03/01/2024"})
	assert.True(t, res.IsValidationError())
	assert.Equal(t, []string{domain.MessageMealPlanDateInvalid}, res.Messages)

	res = svc.AddMealPlan(ctx, domain.MealPlanRequest{Name: " ", Date: "2024-03-01"})
	assert.Equal(t, []string{domain.MessageMealPlanNameRequired}, res.Messages)

	assert.Equal(t, domain.StatusNotFound, svc.DeleteMealPlan(ctx, 5).Status)
}
