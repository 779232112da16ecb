package domain

import (
	"errors"
	"mime/multipart"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

var (
	MessageSuccessGetMovies   = "success get movies"
	MessageSuccessCreateMovie = "movie created successfully"
	MessageSuccessUpdateMovie = "movie updated successfully"
	MessageSuccessDeleteMovie = "movie deleted successfully"
	MessageMovieNotFound      = "movie not found"
	MessageMovieTitleRequired = "movie title is required"
	MessageMovieTitleTooLong  = "movie title cannot exceed 255 characters"
	MessageMovieDateInvalid   = "release date must be formatted as YYYY-MM-DD"
	MessageGenresIgnored      = "ignored unknown genre ids: %v"
	MessageFailedCreateMovie  = "an error occurred while creating the movie"
	MessageFailedUpdateMovie  = "error updating movie"
	MessageFailedDeleteMovie  = "error deleting movie"
	MessageFailedStorePoster  = "failed to store poster image"

	ErrMovieNotFound = errors.New("movie not found")
)

type (
	// MovieRequest is bound from JSON or from a multipart form. A nil
	// GenreIDs leaves the genre set untouched on update.
	MovieRequest struct {
		ID          uint   `json:"id" form:"id"`
		Title       string `json:"title" form:"title" validate:"required,max=255"`
		Description string `json:"description" form:"description"`
		ReleaseDate string `json:"release_date" form:"release_date" validate:"required,datetime=2006-01-02"`
		PosterURL   string `json:"poster_url" form:"poster_url"`
		Director    string `json:"director" form:"director" validate:"max=255"`
		OriginID    uint   `json:"origin_id" form:"origin_id" validate:"required"`
		GenreIDs    []uint `json:"genre_ids" form:"genre_ids"`
		RemoveImage bool   `json:"remove_image" form:"remove_image"`

		Poster *multipart.FileHeader `json:"-" form:"-"`
	}

	Movie struct {
		ID                    uint            `json:"id"`
		Title                 string          `json:"title"`
		Description           string          `json:"description"`
		ReleaseDate           string          `json:"release_date"`
		PosterURL             string          `json:"poster_url"`
		Director              string          `json:"director"`
		OriginID              uint            `json:"origin_id"`
		OriginCountry         string          `json:"origin_country"`
		GenreIDs              []uint          `json:"genre_ids"`
		GenreNames            []string        `json:"genre_names"`
		RecipesFromSameOrigin []RecipeSummary `json:"recipes_from_same_origin,omitempty"`
	}

	MovieSummary struct {
		ID          uint   `json:"id"`
		Title       string `json:"title"`
		ReleaseDate string `json:"release_date"`
		PosterURL   string `json:"poster_url"`
	}
)
