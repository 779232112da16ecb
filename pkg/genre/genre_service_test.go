package genre

import (
	"DishAndMovie/domain"
	"DishAndMovie/entities"
	"DishAndMovie/internal/testutil"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenreService_AddFindUpdate(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	svc := NewGenreService(NewGenreRepository(db))

	res := svc.AddGenre(ctx, domain.GenreRequest{Name: "Thriller"})
	require.Equal(t, domain.StatusCreated, res.Status)

	res = svc.UpdateGenre(ctx, res.CreatedID, domain.GenreRequest{ID: res.CreatedID, Name: "Horror"})
	require.Equal(t, domain.StatusUpdated, res.Status)

	genres, err := svc.ListGenres(ctx, domain.NewPagination(0, 10))
	require.NoError(t, err)
	require.Len(t, genres, 1)
	assert.Equal(t, "Horror", genres[0].Name)

	assert.True(t, svc.AddGenre(ctx, domain.GenreRequest{Name: ""}).IsValidationError())
	_, err = svc.FindGenre(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrGenreNotFound)
}

func TestGenreService_DeleteUnlinksMovies(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	svc := NewGenreService(NewGenreRepository(db))

	o := testutil.CreateOrigin(t, db, "USA")
	m := testutil.CreateMovie(t, db, "Heat", o.ID)
	g := testutil.CreateGenre(t, db, "Crime")
	require.NoError(t, db.Create(&entities.MovieGenre{MovieID: m.ID, GenreID: g.ID}).Error)

	res := svc.DeleteGenre(ctx, g.ID)
	require.Equal(t, domain.StatusDeleted, res.Status)

	var links, movies int64
	require.NoError(t, db.Model(&entities.MovieGenre{}).Count(&links).Error)
	require.NoError(t, db.Model(&entities.Movie{}).Count(&movies).Error)
	assert.Zero(t, links)
	assert.EqualValues(t, 1, movies)

	assert.Equal(t, domain.StatusNotFound, svc.DeleteGenre(ctx, g.ID).Status)
}
