package handlers

import (
	"DishAndMovie/domain"
	"DishAndMovie/internal/api/presenters"
	"DishAndMovie/internal/utils"
	"DishAndMovie/pkg/genre"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	GenreHandler interface {
		ListGenres(c *fiber.Ctx) error
		FindGenre(c *fiber.Ctx) error
		AddGenre(c *fiber.Ctx) error
		UpdateGenre(c *fiber.Ctx) error
		DeleteGenre(c *fiber.Ctx) error
	}

	genreHandler struct {
		genreService genre.GenreService
		validator    *validator.Validate
	}
)

func NewGenreHandler(genreService genre.GenreService, validator *validator.Validate) GenreHandler {
	return &genreHandler{
		genreService: genreService,
		validator:    validator,
	}
}

func (h *genreHandler) ListGenres(c *fiber.Ctx) error {
	total, err := h.genreService.CountGenres(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
	}

	items, err := h.genreService.ListGenres(c.Context(), apiPagination(c, total))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetGenres)
}

func (h *genreHandler) FindGenre(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return invalidID(c)
	}

	res, err := h.genreService.FindGenre(c.Context(), id)
	if err != nil {
		return findFailed(c, err, domain.ErrGenreNotFound, domain.MessageGenreNotFound)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetGenres)
}

func (h *genreHandler) AddGenre(c *fiber.Ctx) error {
	req := new(domain.GenreRequest)
	if handled, err := bindRequest(c, h.validator, req, domain.MessageFailedCreateGenre); handled {
		return err
	}

	res := h.genreService.AddGenre(c.Context(), *req)
	return presenters.ServiceResult(c, res, "/api/Genre/FindGenre")
}

func (h *genreHandler) UpdateGenre(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return invalidID(c)
	}

	req := new(domain.GenreRequest)
	if handled, err := bindRequest(c, h.validator, req, domain.MessageFailedUpdateGenre); handled {
		return err
	}
	if req.ID != id {
		return idMismatch(c)
	}

	return presenters.ServiceResult(c, h.genreService.UpdateGenre(c.Context(), id, *req), "")
}

func (h *genreHandler) DeleteGenre(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return invalidID(c)
	}

	return presenters.ServiceResult(c, h.genreService.DeleteGenre(c.Context(), id), "")
}
