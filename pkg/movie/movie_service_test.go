package movie

import (
	"DishAndMovie/domain"
	"DishAndMovie/entities"
	"DishAndMovie/internal/testutil"
	"DishAndMovie/pkg/origin"
	"context"
	"fmt"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeStorage struct {
	saved   []string
	deleted []string
}

func (f *fakeStorage) Save(_ context.Context, file *multipart.FileHeader, subFolder string) (string, error) {
	if file == nil || file.Size == 0 {
		return "", nil
	}
	locator := fmt.Sprintf("/uploads/%s/%d_%s", subFolder, len(f.saved)+1, file.Filename)
	f.saved = append(f.saved, locator)
	return locator, nil
}

func (f *fakeStorage) Delete(_ context.Context, locator string) {
	if locator != "" {
		f.deleted = append(f.deleted, locator)
	}
}

func newService(t *testing.T) (MovieService, *gorm.DB, *fakeStorage) {
	t.Helper()
	db := testutil.NewTestDB(t)
	files := &fakeStorage{}
	return NewMovieService(NewMovieRepository(db), origin.NewOriginRepository(db), files), db, files
}

func TestMovieService_AddWithGenres(t *testing.T) {
	ctx := context.Background()
	svc, db, _ := newService(t)

	o := testutil.CreateOrigin(t, db, "Japan")
	g1 := testutil.CreateGenre(t, db, "Drama")
	g2 := testutil.CreateGenre(t, db, "Fantasy")
	testutil.CreateRecipe(t, db, "Ramen", o.ID)

	res := svc.AddMovie(ctx, domain.MovieRequest{
		Title:       "  Spirited Away ",
		ReleaseDate: "2001-07-20",
		Director:    "Miyazaki",
		OriginID:    o.ID,
		GenreIDs:    []uint{g2.ID, g1.ID, 999, g1.ID},
	})
	require.Equal(t, domain.StatusCreated, res.Status)
	assert.Equal(t, []string{
		domain.MessageSuccessCreateMovie,
		fmt.Sprintf(domain.MessageGenresIgnored, []uint{999}),
	}, res.Messages)

	m, err := svc.FindMovie(ctx, res.CreatedID)
	require.NoError(t, err)
	assert.Equal(t, "Spirited Away", m.Title)
	assert.Equal(t, "2001-07-20", m.ReleaseDate)
	assert.Equal(t, "Japan", m.OriginCountry)
	assert.Equal(t, []uint{g1.ID, g2.ID}, m.GenreIDs)
	assert.Equal(t, []string{"Drama", "Fantasy"}, m.GenreNames)
	require.Len(t, m.RecipesFromSameOrigin, 1)
	assert.Equal(t, "Ramen", m.RecipesFromSameOrigin[0].Name)
}

func TestMovieService_AddRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	svc, db, _ := newService(t)
	o := testutil.CreateOrigin(t, db, "France")

	res := svc.AddMovie(ctx, domain.MovieRequest{Title: " ", ReleaseDate: "2000-01-01", OriginID: o.ID})
	assert.True(t, res.IsValidationError())
	assert.Equal(t, []string{domain.MessageMovieTitleRequired}, res.Messages)

	res = svc.AddMovie(ctx, domain.MovieRequest{Title: "Amelie", ReleaseDate: "April 2001", OriginID: o.ID})
	assert.Equal(t, []string{domain.MessageMovieDateInvalid}, res.Messages)

	res = svc.AddMovie(ctx, domain.MovieRequest{Title: "Amelie", ReleaseDate: "2001-04-25", OriginID: o.ID + 10})
	assert.Equal(t, domain.StatusNotFound, res.Status)

	var count int64
	require.NoError(t, db.Model(&entities.Movie{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestMovieService_UpdateGenresAndPoster(t *testing.T) {
	ctx := context.Background()
	svc, db, files := newService(t)

	o := testutil.CreateOrigin(t, db, "Korea")
	g1 := testutil.CreateGenre(t, db, "Thriller")
	g2 := testutil.CreateGenre(t, db, "Comedy")

	poster := &multipart.FileHeader{Filename: "poster.png", Size: 3}
	res := svc.AddMovie(ctx, domain.MovieRequest{
		Title: "Parasite", ReleaseDate: "2019-05-30", OriginID: o.ID,
		GenreIDs: []uint{g1.ID}, Poster: poster,
	})
	require.Equal(t, domain.StatusCreated, res.Status)
	id := res.CreatedID

	m, err := svc.FindMovie(ctx, id)
	require.NoError(t, err)
	first := m.PosterURL
	assert.Equal(t, files.saved[0], first)

	res = svc.UpdateMovie(ctx, id, domain.MovieRequest{
		ID: id, Title: "Parasite", ReleaseDate: "2019-05-30", OriginID: o.ID,
	})
	require.Equal(t, domain.StatusUpdated, res.Status)
	m, err = svc.FindMovie(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []uint{g1.ID}, m.GenreIDs)
	assert.Equal(t, first, m.PosterURL)

	res = svc.UpdateMovie(ctx, id, domain.MovieRequest{
		ID: id, Title: "Parasite", ReleaseDate: "2019-05-30", OriginID: o.ID,
		GenreIDs: []uint{g2.ID}, Poster: &multipart.FileHeader{Filename: "new.png", Size: 5},
	})
	require.Equal(t, domain.StatusUpdated, res.Status)
	m, err = svc.FindMovie(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []uint{g2.ID}, m.GenreIDs)
	assert.Equal(t, files.saved[1], m.PosterURL)
	assert.Equal(t, []string{first}, files.deleted)

	res = svc.UpdateMovie(ctx, id, domain.MovieRequest{
		ID: id, Title: "Parasite", ReleaseDate: "2019-05-30", OriginID: o.ID,
		GenreIDs: []uint{}, RemoveImage: true,
	})
	require.Equal(t, domain.StatusUpdated, res.Status)
	m, err = svc.FindMovie(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, m.GenreIDs)
	assert.Empty(t, m.PosterURL)
	assert.Equal(t, []string{first, files.saved[1]}, files.deleted)

	assert.Equal(t, domain.StatusNotFound, svc.UpdateMovie(ctx, id+1, domain.MovieRequest{
		ID: id + 1, Title: "x", ReleaseDate: "2019-05-30", OriginID: o.ID,
	}).Status)
}

func TestMovieService_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	svc, db, files := newService(t)

	o := testutil.CreateOrigin(t, db, "Italy")
	g := testutil.CreateGenre(t, db, "Western")
	u := testutil.CreateUser(t, db, "a@example.com", "secret123")
	m := testutil.CreateMovie(t, db, "The Good, the Bad and the Ugly", o.ID)
	other := testutil.CreateMovie(t, db, "Cinema Paradiso", o.ID)
	require.NoError(t, db.Create(&entities.MovieGenre{MovieID: m.ID, GenreID: g.ID}).Error)
	require.NoError(t, db.Model(&entities.Movie{}).Where("id = ?", m.ID).Update("poster_url", "/uploads/movies/p.png").Error)
	testutil.CreateReview(t, db, m.ID, u.ID, 5)
	testutil.CreateReview(t, db, other.ID, u.ID, 4)

	require.Equal(t, domain.StatusDeleted, svc.DeleteMovie(ctx, m.ID).Status)
	assert.Equal(t, []string{"/uploads/movies/p.png"}, files.deleted)

	var links, reviews, genres int64
	require.NoError(t, db.Model(&entities.MovieGenre{}).Count(&links).Error)
	require.NoError(t, db.Model(&entities.Review{}).Count(&reviews).Error)
	require.NoError(t, db.Model(&entities.Genre{}).Count(&genres).Error)
	assert.Zero(t, links)
	assert.EqualValues(t, 1, reviews)
	assert.EqualValues(t, 1, genres)

	assert.Equal(t, domain.StatusNotFound, svc.DeleteMovie(ctx, m.ID).Status)

	movies, err := svc.GetMoviesByOrigin(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Cinema Paradiso", movies[0].Title)
}

func TestMovieService_AddAndFindKeepsEveryField(t *testing.T) {
	ctx := context.Background()
	svc, db, files := newService(t)
	o := testutil.CreateOrigin(t, db, "Italy")

	res := svc.AddMovie(ctx, domain.MovieRequest{
		Title:       "La Dolce Vita",
		Description: "A week in Rome with a gossip journalist.",
		ReleaseDate: "1960-02-05",
		PosterURL:   "https://img.example.com/dolce.jpg",
		Director:    " Federico Fellini ",
		OriginID:    o.ID,
	})
	require.Equal(t, domain.StatusCreated, res.Status)
	assert.Empty(t, files.saved)

	m, err := svc.FindMovie(ctx, res.CreatedID)
	require.NoError(t, err)
	assert.Equal(t, res.CreatedID, m.ID)
	assert.Equal(t, "La Dolce Vita", m.Title)
	assert.Equal(t, "A week in Rome with a gossip journalist.", m.Description)
	assert.Equal(t, "1960-02-05", m.ReleaseDate)
	assert.Equal(t, "https://img.example.com/dolce.jpg", m.PosterURL)
	assert.Equal(t, "Federico Fellini", m.Director)
	assert.Equal(t, o.ID, m.OriginID)
	assert.Equal(t, "Italy", m.OriginCountry)
	assert.Empty(t, m.GenreIDs)
}
