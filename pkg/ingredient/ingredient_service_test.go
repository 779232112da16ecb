package ingredient

import (
	"DishAndMovie/domain"
	"DishAndMovie/entities"
	"DishAndMovie/internal/testutil"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngredientService_CRUD(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	svc := NewIngredientService(NewIngredientRepository(db))

	res := svc.AddIngredient(ctx, domain.IngredientRequest{Name: "Rice", Unit: "g", CaloriesPerUnit: 4})
	require.Equal(t, domain.StatusCreated, res.Status)
	id := res.CreatedID

	found, err := svc.FindIngredient(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.Ingredient{ID: id, Name: "Rice", Unit: "g", CaloriesPerUnit: 4}, *found)

	res = svc.UpdateIngredient(ctx, id, domain.IngredientRequest{ID: id, Name: "Brown rice", Unit: "cup", CaloriesPerUnit: 216})
	require.Equal(t, domain.StatusUpdated, res.Status)

	found, err = svc.FindIngredient(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "cup", found.Unit)
	assert.Equal(t, 216, found.CaloriesPerUnit)

	assert.Equal(t, domain.StatusNotFound, svc.UpdateIngredient(ctx, id+1, domain.IngredientRequest{ID: id + 1, Name: "x"}).Status)
	assert.True(t, svc.UpdateIngredient(ctx, id, domain.IngredientRequest{ID: id}).IsValidationError())
}

func TestIngredientService_DeleteDetachesFromRecipes(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	svc := NewIngredientService(NewIngredientRepository(db))

	o := testutil.CreateOrigin(t, db, "India")
	r := testutil.CreateRecipe(t, db, "Dal", o.ID)
	i := testutil.CreateIngredient(t, db, "Lentils", "g", 3)
	require.NoError(t, db.Create(&entities.RecipeIngredient{RecipeID: r.ID, IngredientID: i.ID, Quantity: 200, Unit: "g"}).Error)

	require.Equal(t, domain.StatusDeleted, svc.DeleteIngredient(ctx, i.ID).Status)

	var links, recipes int64
	require.NoError(t, db.Model(&entities.RecipeIngredient{}).Count(&links).Error)
	require.NoError(t, db.Model(&entities.Recipe{}).Count(&recipes).Error)
	assert.Zero(t, links)
	assert.EqualValues(t, 1, recipes)
}
