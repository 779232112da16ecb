package handlers

import (
	"DishAndMovie/domain"
	"DishAndMovie/internal/api/presenters"
	"DishAndMovie/internal/middleware"
	"DishAndMovie/internal/utils"
	"DishAndMovie/pkg/movie"
	"DishAndMovie/pkg/review"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MovieHandler interface {
		ListMovies(c *fiber.Ctx) error
		FindMovie(c *fiber.Ctx) error
		AddMovie(c *fiber.Ctx) error
		UpdateMovie(c *fiber.Ctx) error
		DeleteMovie(c *fiber.Ctx) error

		ListReviews(c *fiber.Ctx) error
		AddReview(c *fiber.Ctx) error
		UpdateReview(c *fiber.Ctx) error
		DeleteReview(c *fiber.Ctx) error
	}

	movieHandler struct {
		movieService  movie.MovieService
		reviewService review.ReviewService
		validator     *validator.Validate
	}
)

func NewMovieHandler(movieService movie.MovieService, reviewService review.ReviewService, validator *validator.Validate) MovieHandler {
	return &movieHandler{
		movieService:  movieService,
		reviewService: reviewService,
		validator:     validator,
	}
}

// bindMovie accepts JSON or multipart bodies. The poster, when present,
// arrives as the multipart file field "poster".
func (h *movieHandler) bindMovie(c *fiber.Ctx, failMessage string) (*domain.MovieRequest, bool, error) {
	req := new(domain.MovieRequest)
	if handled, err := bindRequest(c, h.validator, req, failMessage); handled {
		return nil, true, err
	}
	if file, err := c.FormFile("poster"); err == nil {
		req.Poster = file
	}
	return req, false, nil
}

func (h *movieHandler) ListMovies(c *fiber.Ctx) error {
	total, err := h.movieService.CountMovies(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
	}

	movies, err := h.movieService.ListMovies(c.Context(), apiPagination(c, total))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
	}

	return presenters.SuccessResponse(c, movies, fiber.StatusOK, domain.MessageSuccessGetMovies)
}

func (h *movieHandler) FindMovie(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return invalidID(c)
	}

	res, err := h.movieService.FindMovie(c.Context(), id)
	if err != nil {
		return findFailed(c, err, domain.ErrMovieNotFound, domain.MessageMovieNotFound)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMovies)
}

func (h *movieHandler) AddMovie(c *fiber.Ctx) error {
	req, handled, err := h.bindMovie(c, domain.MessageFailedCreateMovie)
	if handled {
		return err
	}

	res := h.movieService.AddMovie(c.Context(), *req)
	return presenters.ServiceResult(c, res, "/api/Movies/FindMovie")
}

func (h *movieHandler) UpdateMovie(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return invalidID(c)
	}

	req, handled, err := h.bindMovie(c, domain.MessageFailedUpdateMovie)
	if handled {
		return err
	}
	if req.ID != id {
		return idMismatch(c)
	}

	res := h.movieService.UpdateMovie(c.Context(), id, *req)
	return presenters.ServiceResult(c, res, "")
}

func (h *movieHandler) DeleteMovie(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return invalidID(c)
	}

	res := h.movieService.DeleteMovie(c.Context(), id)
	return presenters.ServiceResult(c, res, "")
}

func (h *movieHandler) ListReviews(c *fiber.Ctx) error {
	movieID, err := utils.ParseID(c, "movieId")
	if err != nil {
		return invalidID(c)
	}

	reviews, err := h.reviewService.ListReviewsByMovie(c.Context(), movieID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
	}

	return presenters.SuccessResponse(c, reviews, fiber.StatusOK, domain.MessageSuccessGetReviews)
}

func (h *movieHandler) AddReview(c *fiber.Ctx) error {
	movieID, err := utils.ParseID(c, "movieId")
	if err != nil {
		return invalidID(c)
	}
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MesaageUserNotAllowed, domain.ErrUserNotAllowed)
	}

	req := new(domain.ReviewRequest)
	if handled, err := bindRequest(c, h.validator, req, domain.MessageFailedCreateReview); handled {
		return err
	}

	res := h.reviewService.AddReview(c.Context(), movieID, userID, *req)
	return presenters.ServiceResult(c, res, "")
}

func (h *movieHandler) UpdateReview(c *fiber.Ctx) error {
	movieID, err := utils.ParseID(c, "movieId")
	if err != nil {
		return invalidID(c)
	}
	reviewID, err := utils.ParseID(c, "reviewId")
	if err != nil {
		return invalidID(c)
	}

	req := new(domain.ReviewRequest)
	if handled, err := bindRequest(c, h.validator, req, domain.MessageFailedUpdateReview); handled {
		return err
	}

	res := h.reviewService.UpdateReview(c.Context(), movieID, reviewID, middleware.CurrentActor(c), *req)
	return presenters.ServiceResult(c, res, "")
}

func (h *movieHandler) DeleteReview(c *fiber.Ctx) error {
	reviewID, err := utils.ParseID(c, "reviewId")
	if err != nil {
		return invalidID(c)
	}

	res := h.reviewService.DeleteReview(c.Context(), reviewID, middleware.CurrentActor(c))
	return presenters.ServiceResult(c, res, "")
}
