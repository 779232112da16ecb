package handlers

import (
	"DishAndMovie/domain"
	"DishAndMovie/internal/api/presenters"
	"DishAndMovie/internal/utils"
	"DishAndMovie/pkg/genre"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const genrePages = "GenrePage"

type (
	GenrePageHandler interface {
		List(c *fiber.Ctx) error
		Details(c *fiber.Ctx) error
		New(c *fiber.Ctx) error
		Add(c *fiber.Ctx) error
		Edit(c *fiber.Ctx) error
		Update(c *fiber.Ctx) error
		ConfirmDelete(c *fiber.Ctx) error
		Delete(c *fiber.Ctx) error
	}

	genrePageHandler struct {
		genreService genre.GenreService
		validator    *validator.Validate
	}
)

func NewGenrePageHandler(genreService genre.GenreService, validator *validator.Validate) GenrePageHandler {
	return &genrePageHandler{
		genreService: genreService,
		validator:    validator,
	}
}

func (h *genrePageHandler) List(c *fiber.Ctx) error {
	total, err := h.genreService.CountGenres(c.Context())
	if err != nil {
		return pageFailed(c, err)
	}

	page := pageInfo(c, total)
	items, err := h.genreService.ListGenres(c.Context(), page.Pagination())
	if err != nil {
		return pageFailed(c, err)
	}

	return presenters.Render(c, "genre/list", fiber.Map{
		"Title":   "Genres",
		"Items":   items,
		"Page":    page,
		"PageURL": pagePath(genrePages, "List"),
	})
}

func (h *genrePageHandler) Details(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return badPageID(c)
	}

	item, err := h.genreService.FindGenre(c.Context(), id)
	if err != nil {
		return pageFindFailed(c, err, domain.ErrGenreNotFound, domain.MessageGenreNotFound)
	}

	return presenters.Render(c, "genre/details", fiber.Map{
		"Title": "Genre",
		"Item":  item,
	})
}

func (h *genrePageHandler) formData(title, action string, form domain.GenreRequest) fiber.Map {
	return fiber.Map{
		"Title":  title,
		"Action": action,
		"Form":   form,
	}
}

func (h *genrePageHandler) New(c *fiber.Ctx) error {
	return presenters.Render(c, "genre/form", h.formData("New Genre", pagePath(genrePages, "Add"), domain.GenreRequest{}))
}

func (h *genrePageHandler) Add(c *fiber.Ctx) error {
	req := domain.GenreRequest{}
	messages := bindForm(c, h.validator, &req)
	data := h.formData("New Genre", pagePath(genrePages, "Add"), req)
	if messages != nil {
		return renderForm(c, "genre/form", data, messages)
	}

	res := h.genreService.AddGenre(c.Context(), req)
	return formResult(c, res, "genre/form", data, pagePath(genrePages, "List"))
}

func (h *genrePageHandler) Edit(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return badPageID(c)
	}

	item, err := h.genreService.FindGenre(c.Context(), id)
	if err != nil {
		return pageFindFailed(c, err, domain.ErrGenreNotFound, domain.MessageGenreNotFound)
	}

	form := domain.GenreRequest{ID: item.ID, Name: item.Name}
	return presenters.Render(c, "genre/form", h.formData("Edit Genre", pagePath(genrePages, "Update", id), form))
}

func (h *genrePageHandler) Update(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return badPageID(c)
	}

	req := domain.GenreRequest{}
	messages := bindForm(c, h.validator, &req)
	data := h.formData("Edit Genre", pagePath(genrePages, "Update", id), req)
	if messages != nil {
		return renderForm(c, "genre/form", data, messages)
	}
	if req.ID != id {
		return presenters.RenderError(c, fiber.StatusBadRequest, domain.MessageIDMismatch)
	}

	res := h.genreService.UpdateGenre(c.Context(), id, req)
	return formResult(c, res, "genre/form", data, pagePath(genrePages, "Details", id))
}

func (h *genrePageHandler) ConfirmDelete(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return badPageID(c)
	}

	item, err := h.genreService.FindGenre(c.Context(), id)
	if err != nil {
		return pageFindFailed(c, err, domain.ErrGenreNotFound, domain.MessageGenreNotFound)
	}

	return presenters.Render(c, "genre/confirm_delete", fiber.Map{
		"Title":  "Delete Genre",
		"Item":   item,
		"Action": pagePath(genrePages, "Delete", id),
	})
}

func (h *genrePageHandler) Delete(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return badPageID(c)
	}

	res := h.genreService.DeleteGenre(c.Context(), id)
	return presenters.PageResult(c, res, pagePath(genrePages, "List"))
}
