package handlers

import (
	"DishAndMovie/domain"
	"DishAndMovie/internal/api/presenters"
	"DishAndMovie/internal/middleware"
	"DishAndMovie/internal/utils"
	"DishAndMovie/pkg/genre"
	"DishAndMovie/pkg/movie"
	"DishAndMovie/pkg/origin"
	"DishAndMovie/pkg/review"
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const moviePages = "MoviesPage"

type (
	MoviePageHandler interface {
		List(c *fiber.Ctx) error
		Details(c *fiber.Ctx) error
		New(c *fiber.Ctx) error
		Add(c *fiber.Ctx) error
		Edit(c *fiber.Ctx) error
		Update(c *fiber.Ctx) error
		ConfirmDelete(c *fiber.Ctx) error
		Delete(c *fiber.Ctx) error

		Reviews(c *fiber.Ctx) error
		NewReview(c *fiber.Ctx) error
		AddReview(c *fiber.Ctx) error
		ConfirmDeleteReview(c *fiber.Ctx) error
		DeleteReview(c *fiber.Ctx) error
	}

	moviePageHandler struct {
		movieService  movie.MovieService
		reviewService review.ReviewService
		originService origin.OriginService
		genreService  genre.GenreService
		validator     *validator.Validate
	}
)

func NewMoviePageHandler(
	movieService movie.MovieService,
	reviewService review.ReviewService,
	originService origin.OriginService,
	genreService genre.GenreService,
	validator *validator.Validate,
) MoviePageHandler {
	return &moviePageHandler{
		movieService:  movieService,
		reviewService: reviewService,
		originService: originService,
		genreService:  genreService,
		validator:     validator,
	}
}

func (h *moviePageHandler) List(c *fiber.Ctx) error {
	total, err := h.movieService.CountMovies(c.Context())
	if err != nil {
		return pageFailed(c, err)
	}

	page := pageInfo(c, total)
	movies, err := h.movieService.ListMovies(c.Context(), page.Pagination())
	if err != nil {
		return pageFailed(c, err)
	}

	return presenters.Render(c, "movie/list", fiber.Map{
		"Title":   "Movies",
		"Movies":  movies,
		"Page":    page,
		"PageURL": pagePath(moviePages, "List"),
	})
}

func (h *moviePageHandler) Details(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return badPageID(c)
	}

	m, err := h.movieService.FindMovie(c.Context(), id)
	if err != nil {
		return pageFindFailed(c, err, domain.ErrMovieNotFound, domain.MessageMovieNotFound)
	}

	return presenters.Render(c, "movie/details", fiber.Map{
		"Title": m.Title,
		"Movie": m,
	})
}

// formData loads the origin and genre choices for the movie form.
func (h *moviePageHandler) formData(ctx context.Context, title, action string, form domain.MovieRequest) (fiber.Map, error) {
	originTotal, err := h.originService.CountOrigins(ctx)
	if err != nil {
		return nil, err
	}
	origins, err := h.originService.ListOrigins(ctx, domain.NewPagination(0, int(originTotal)))
	if err != nil {
		return nil, err
	}
	genreTotal, err := h.genreService.CountGenres(ctx)
	if err != nil {
		return nil, err
	}
	genres, err := h.genreService.ListGenres(ctx, domain.NewPagination(0, int(genreTotal)))
	if err != nil {
		return nil, err
	}

	return fiber.Map{
		"Title":   title,
		"Action":  action,
		"Form":    form,
		"Origins": origins,
		"Genres":  genres,
	}, nil
}

func (h *moviePageHandler) render(c *fiber.Ctx, title, action string, form domain.MovieRequest, messages []string) error {
	data, err := h.formData(c.Context(), title, action, form)
	if err != nil {
		return pageFailed(c, err)
	}
	if messages != nil {
		return renderForm(c, "movie/form", data, messages)
	}
	return presenters.Render(c, "movie/form", data)
}

// bindMovieForm reads the multipart form. The form always submits the full
// genre selection, so an empty selection clears the movie's genres.
func (h *moviePageHandler) bindMovieForm(c *fiber.Ctx) (domain.MovieRequest, []string) {
	req := domain.MovieRequest{}
	messages := bindForm(c, h.validator, &req)
	if req.GenreIDs == nil {
		req.GenreIDs = []uint{}
	}
	if file, err := c.FormFile("poster"); err == nil {
		req.Poster = file
	}
	return req, messages
}

func (h *moviePageHandler) New(c *fiber.Ctx) error {
	return h.render(c, "New Movie", pagePath(moviePages, "Add"), domain.MovieRequest{}, nil)
}

func (h *moviePageHandler) Add(c *fiber.Ctx) error {
	action := pagePath(moviePages, "Add")
	req, messages := h.bindMovieForm(c)
	if messages != nil {
		return h.render(c, "New Movie", action, req, messages)
	}

	res := h.movieService.AddMovie(c.Context(), req)
	if res.IsValidationError() {
		return h.render(c, "New Movie", action, req, res.Messages)
	}
	return presenters.PageResult(c, res, pagePath(moviePages, "List"))
}

func (h *moviePageHandler) Edit(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return badPageID(c)
	}

	m, err := h.movieService.FindMovie(c.Context(), id)
	if err != nil {
		return pageFindFailed(c, err, domain.ErrMovieNotFound, domain.MessageMovieNotFound)
	}

	form := domain.MovieRequest{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		ReleaseDate: m.ReleaseDate,
		PosterURL:   m.PosterURL,
		Director:    m.Director,
		OriginID:    m.OriginID,
		GenreIDs:    m.GenreIDs,
	}
	return h.render(c, "Edit Movie", pagePath(moviePages, "Update", id), form, nil)
}

func (h *moviePageHandler) Update(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return badPageID(c)
	}

	action := pagePath(moviePages, "Update", id)
	req, messages := h.bindMovieForm(c)
	if messages != nil {
		return h.render(c, "Edit Movie", action, req, messages)
	}
	if req.ID != id {
		return presenters.RenderError(c, fiber.StatusBadRequest, domain.MessageIDMismatch)
	}

	res := h.movieService.UpdateMovie(c.Context(), id, req)
	if res.IsValidationError() {
		return h.render(c, "Edit Movie", action, req, res.Messages)
	}
	return presenters.PageResult(c, res, pagePath(moviePages, "Details", id))
}

func (h *moviePageHandler) ConfirmDelete(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return badPageID(c)
	}

	m, err := h.movieService.FindMovie(c.Context(), id)
	if err != nil {
		return pageFindFailed(c, err, domain.ErrMovieNotFound, domain.MessageMovieNotFound)
	}

	return presenters.Render(c, "movie/confirm_delete", fiber.Map{
		"Title":  "Delete Movie",
		"Movie":  m,
		"Action": pagePath(moviePages, "Delete", id),
	})
}

func (h *moviePageHandler) Delete(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return badPageID(c)
	}

	res := h.movieService.DeleteMovie(c.Context(), id)
	return presenters.PageResult(c, res, pagePath(moviePages, "List"))
}

func (h *moviePageHandler) Reviews(c *fiber.Ctx) error {
	movieID, err := utils.ParseID(c, "movieId")
	if err != nil {
		return badPageID(c)
	}

	m, err := h.movieService.FindMovie(c.Context(), movieID)
	if err != nil {
		return pageFindFailed(c, err, domain.ErrMovieNotFound, domain.MessageMovieNotFound)
	}
	reviews, err := h.reviewService.ListReviewsByMovie(c.Context(), movieID)
	if err != nil {
		return pageFailed(c, err)
	}

	return presenters.Render(c, "movie/reviews", fiber.Map{
		"Title":   "Reviews: " + m.Title,
		"Movie":   m,
		"Reviews": reviews,
	})
}

func (h *moviePageHandler) reviewFormData(m *domain.Movie, form domain.ReviewRequest) fiber.Map {
	return fiber.Map{
		"Title":   "Review " + m.Title,
		"Movie":   m,
		"Form":    form,
		"Ratings": []int{domain.MinRating, 2, 3, 4, domain.MaxRating},
		"Action":  pagePath(moviePages, "AddReview", m.ID),
	}
}

func (h *moviePageHandler) NewReview(c *fiber.Ctx) error {
	movieID, err := utils.ParseID(c, "movieId")
	if err != nil {
		return badPageID(c)
	}

	m, err := h.movieService.FindMovie(c.Context(), movieID)
	if err != nil {
		return pageFindFailed(c, err, domain.ErrMovieNotFound, domain.MessageMovieNotFound)
	}

	return presenters.Render(c, "movie/review_form", h.reviewFormData(m, domain.ReviewRequest{Rating: domain.MaxRating}))
}

func (h *moviePageHandler) AddReview(c *fiber.Ctx) error {
	movieID, err := utils.ParseID(c, "movieId")
	if err != nil {
		return badPageID(c)
	}
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return presenters.RenderError(c, fiber.StatusUnauthorized, domain.MesaageUserNotAllowed)
	}

	m, err := h.movieService.FindMovie(c.Context(), movieID)
	if err != nil {
		return pageFindFailed(c, err, domain.ErrMovieNotFound, domain.MessageMovieNotFound)
	}

	req := domain.ReviewRequest{}
	if messages := bindForm(c, h.validator, &req); messages != nil {
		return renderForm(c, "movie/review_form", h.reviewFormData(m, req), messages)
	}

	res := h.reviewService.AddReview(c.Context(), movieID, userID, req)
	return formResult(c, res, "movie/review_form", h.reviewFormData(m, req), pagePath(moviePages, "Reviews", movieID))
}

func (h *moviePageHandler) ConfirmDeleteReview(c *fiber.Ctx) error {
	movieID, err := utils.ParseID(c, "movieId")
	if err != nil {
		return badPageID(c)
	}
	reviewID, err := utils.ParseID(c, "reviewId")
	if err != nil {
		return badPageID(c)
	}

	r, err := h.reviewService.FindReview(c.Context(), reviewID)
	if err != nil {
		return pageFindFailed(c, err, domain.ErrReviewNotFound, domain.MessageReviewNotFound)
	}

	return presenters.Render(c, "movie/confirm_delete_review", fiber.Map{
		"Title":   "Delete Review",
		"Review":  r,
		"MovieID": movieID,
		"Action":  pagePath(moviePages, "DeleteReview", movieID, reviewID),
	})
}

func (h *moviePageHandler) DeleteReview(c *fiber.Ctx) error {
	movieID, err := utils.ParseID(c, "movieId")
	if err != nil {
		return badPageID(c)
	}
	reviewID, err := utils.ParseID(c, "reviewId")
	if err != nil {
		return badPageID(c)
	}

	res := h.reviewService.DeleteReview(c.Context(), reviewID, middleware.CurrentActor(c))
	return presenters.PageResult(c, res, pagePath(moviePages, "Reviews", movieID))
}
