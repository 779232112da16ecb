package handlers

import (
	"DishAndMovie/domain"
	"DishAndMovie/internal/api/presenters"
	"DishAndMovie/internal/utils"
	"DishAndMovie/pkg/movie"
	"DishAndMovie/pkg/origin"
	"DishAndMovie/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	OriginHandler interface {
		ListOrigins(c *fiber.Ctx) error
		FindOrigin(c *fiber.Ctx) error
		AddOrigin(c *fiber.Ctx) error
		UpdateOrigin(c *fiber.Ctx) error
		DeleteOrigin(c *fiber.Ctx) error
		GetMoviesByOrigin(c *fiber.Ctx) error
		GetRecipesByOrigin(c *fiber.Ctx) error
	}

	originHandler struct {
		originService origin.OriginService
		movieService  movie.MovieService
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewOriginHandler(
	originService origin.OriginService,
	movieService movie.MovieService,
	recipeService recipe.RecipeService,
	validator *validator.Validate,
) OriginHandler {
	return &originHandler{
		originService: originService,
		movieService:  movieService,
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *originHandler) ListOrigins(c *fiber.Ctx) error {
	total, err := h.originService.CountOrigins(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
	}

	origins, err := h.originService.ListOrigins(c.Context(), apiPagination(c, total))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
	}

	return presenters.SuccessResponse(c, origins, fiber.StatusOK, domain.MessageSuccessGetOrigins)
}

func (h *originHandler) FindOrigin(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return invalidID(c)
	}

	res, err := h.originService.FindOrigin(c.Context(), id)
	if err != nil {
		return findFailed(c, err, domain.ErrOriginNotFound, domain.MessageOriginNotFound)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOrigins)
}

func (h *originHandler) AddOrigin(c *fiber.Ctx) error {
	req := new(domain.OriginRequest)
	if handled, err := bindRequest(c, h.validator, req, domain.MessageFailedCreateOrigin); handled {
		return err
	}

	res := h.originService.AddOrigin(c.Context(), *req)
	return presenters.ServiceResult(c, res, "/api/Origin/FindOrigin")
}

func (h *originHandler) UpdateOrigin(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return invalidID(c)
	}

	req := new(domain.OriginRequest)
	if handled, err := bindRequest(c, h.validator, req, domain.MessageFailedUpdateOrigin); handled {
		return err
	}
	if req.ID != id {
		return idMismatch(c)
	}

	res := h.originService.UpdateOrigin(c.Context(), id, *req)
	return presenters.ServiceResult(c, res, "")
}

func (h *originHandler) DeleteOrigin(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return invalidID(c)
	}

	res := h.originService.DeleteOrigin(c.Context(), id)
	return presenters.ServiceResult(c, res, "")
}

func (h *originHandler) GetMoviesByOrigin(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "originId")
	if err != nil {
		return invalidID(c)
	}

	movies, err := h.movieService.GetMoviesByOrigin(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
	}

	return presenters.SuccessResponse(c, movies, fiber.StatusOK, domain.MessageSuccessGetMovies)
}

func (h *originHandler) GetRecipesByOrigin(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "originId")
	if err != nil {
		return invalidID(c)
	}

	recipes, err := h.recipeService.GetRecipesByOrigin(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
	}

	return presenters.SuccessResponse(c, recipes, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}
