package origin

import (
	"DishAndMovie/domain"
	"DishAndMovie/entities"
	"DishAndMovie/internal/testutil"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOriginService_CRUD(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	svc := NewOriginService(NewOriginRepository(db))

	res := svc.AddOrigin(ctx, domain.OriginRequest{Country: "  Japan "})
	require.Equal(t, domain.StatusCreated, res.Status)
	require.NotZero(t, res.CreatedID)

	found, err := svc.FindOrigin(ctx, res.CreatedID)
	require.NoError(t, err)
	assert.Equal(t, "Japan", found.Country)

	res = svc.UpdateOrigin(ctx, found.ID, domain.OriginRequest{ID: found.ID, Country: "Korea"})
	assert.Equal(t, domain.StatusUpdated, res.Status)

	found, err = svc.FindOrigin(ctx, found.ID)
	require.NoError(t, err)
	assert.Equal(t, "Korea", found.Country)

	res = svc.DeleteOrigin(ctx, found.ID)
	assert.Equal(t, domain.StatusDeleted, res.Status)

	_, err = svc.FindOrigin(ctx, found.ID)
	assert.ErrorIs(t, err, domain.ErrOriginNotFound)
}

func TestOriginService_Validation(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	svc := NewOriginService(NewOriginRepository(db))

	res := svc.AddOrigin(ctx, domain.OriginRequest{Country: "   "})
	assert.True(t, res.IsValidationError())
	assert.Equal(t, []string{domain.MessageOriginCountryRequired}, res.Messages)

	total, err := svc.CountOrigins(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestOriginService_NotFound(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	svc := NewOriginService(NewOriginRepository(db))

	assert.Equal(t, domain.StatusNotFound, svc.UpdateOrigin(ctx, 42, domain.OriginRequest{ID: 42, Country: "X"}).Status)
	assert.Equal(t, domain.StatusNotFound, svc.DeleteOrigin(ctx, 42).Status)

	o := testutil.CreateOrigin(t, db, "Italy")
	assert.Equal(t, domain.StatusDeleted, svc.DeleteOrigin(ctx, o.ID).Status)
	assert.Equal(t, domain.StatusNotFound, svc.DeleteOrigin(ctx, o.ID).Status)
}

func TestOriginService_ListIsOrderedAndPaged(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	svc := NewOriginService(NewOriginRepository(db))

	for _, c := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		testutil.CreateOrigin(t, db, c)
	}

	total, err := svc.CountOrigins(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 7, total)

	page := domain.NewPageInfo(total, 3, 5)
	origins, err := svc.ListOrigins(ctx, page.Pagination())
	require.NoError(t, err)
	require.Len(t, origins, 1)
	assert.Equal(t, "G", origins[0].Country)

	origins, err = svc.ListOrigins(ctx, domain.NewPagination(2, 2))
	require.NoError(t, err)
	require.Len(t, origins, 2)
	assert.Equal(t, "C", origins[0].Country)
	assert.Equal(t, "D", origins[1].Country)
}

func TestOriginService_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	svc := NewOriginService(NewOriginRepository(db))

	o := testutil.CreateOrigin(t, db, "France")
	other := testutil.CreateOrigin(t, db, "Spain")
	g := testutil.CreateGenre(t, db, "Drama")
	ing := testutil.CreateIngredient(t, db, "Butter", "g", 7)
	u := testutil.CreateUser(t, db, "a@example.com", "password1")

	m1 := testutil.CreateMovie(t, db, "Amelie", o.ID)
	m2 := testutil.CreateMovie(t, db, "La Haine", o.ID)
	keep := testutil.CreateMovie(t, db, "Volver", other.ID)
	for _, name := range []string{"Crepe", "Ratatouille", "Quiche"} {
		r := testutil.CreateRecipe(t, db, name, o.ID)
		require.NoError(t, db.Create(&entities.RecipeIngredient{RecipeID: r.ID, IngredientID: ing.ID, Quantity: 1, Unit: "g"}).Error)
	}
	require.NoError(t, db.Create(&entities.MovieGenre{MovieID: m1.ID, GenreID: g.ID}).Error)
	testutil.CreateReview(t, db, m1.ID, u.ID, 5)
	testutil.CreateReview(t, db, m2.ID, u.ID, 3)
	testutil.CreateReview(t, db, keep.ID, u.ID, 4)

	res := svc.DeleteOrigin(ctx, o.ID)
	require.Equal(t, domain.StatusDeleted, res.Status)

	var count int64
	require.NoError(t, db.Model(&entities.Movie{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
	require.NoError(t, db.Model(&entities.Recipe{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&entities.RecipeIngredient{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&entities.MovieGenre{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&entities.Review{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// shared rows survive
	require.NoError(t, db.Model(&entities.Genre{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
	require.NoError(t, db.Model(&entities.Ingredient{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
