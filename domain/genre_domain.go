package domain

import "errors"

var (
	MessageSuccessGetGenres   = "success get genres"
	MessageSuccessCreateGenre = "genre added successfully"
	MessageSuccessUpdateGenre = "genre updated successfully"
	MessageSuccessDeleteGenre = "genre deleted successfully"
	MessageGenreNotFound      = "genre not found"
	MessageGenreNameRequired  = "genre name is required"
	MessageFailedCreateGenre  = "an error occurred while adding the genre"
	MessageFailedUpdateGenre  = "an error occurred while updating the genre"
	MessageFailedDeleteGenre  = "an error occurred while deleting the genre"

	ErrGenreNotFound = errors.New("genre not found")
)

type (
	GenreRequest struct {
		ID   uint   `json:"id" form:"id"`
		Name string `json:"name" form:"name" validate:"required,max=100"`
	}

	Genre struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
)
