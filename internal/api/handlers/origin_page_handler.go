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

const originPages = "OriginPage"

type (
	OriginPageHandler interface {
		List(c *fiber.Ctx) error
		Details(c *fiber.Ctx) error
		New(c *fiber.Ctx) error
		Add(c *fiber.Ctx) error
		Edit(c *fiber.Ctx) error
		Update(c *fiber.Ctx) error
		ConfirmDelete(c *fiber.Ctx) error
		Delete(c *fiber.Ctx) error
	}

	originPageHandler struct {
		originService origin.OriginService
		movieService  movie.MovieService
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewOriginPageHandler(
	originService origin.OriginService,
	movieService movie.MovieService,
	recipeService recipe.RecipeService,
	validator *validator.Validate,
) OriginPageHandler {
	return &originPageHandler{
		originService: originService,
		movieService:  movieService,
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *originPageHandler) List(c *fiber.Ctx) error {
	total, err := h.originService.CountOrigins(c.Context())
	if err != nil {
		return pageFailed(c, err)
	}

	page := pageInfo(c, total)
	origins, err := h.originService.ListOrigins(c.Context(), page.Pagination())
	if err != nil {
		return pageFailed(c, err)
	}

	return presenters.Render(c, "origin/list", fiber.Map{
		"Title":   "Origins",
		"Origins": origins,
		"Page":    page,
		"PageURL": pagePath(originPages, "List"),
	})
}

func (h *originPageHandler) Details(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return badPageID(c)
	}

	o, err := h.originService.FindOrigin(c.Context(), id)
	if err != nil {
		return pageFindFailed(c, err, domain.ErrOriginNotFound, domain.MessageOriginNotFound)
	}
	movies, err := h.movieService.GetMoviesByOrigin(c.Context(), id)
	if err != nil {
		return pageFailed(c, err)
	}
	recipes, err := h.recipeService.GetRecipesByOrigin(c.Context(), id)
	if err != nil {
		return pageFailed(c, err)
	}

	return presenters.Render(c, "origin/details", fiber.Map{
		"Title":   o.Country,
		"Origin":  o,
		"Movies":  movies,
		"Recipes": recipes,
	})
}

func (h *originPageHandler) formData(title, action string, form domain.OriginRequest) fiber.Map {
	return fiber.Map{
		"Title":  title,
		"Action": action,
		"Form":   form,
	}
}

func (h *originPageHandler) New(c *fiber.Ctx) error {
	return presenters.Render(c, "origin/form", h.formData("New Origin", pagePath(originPages, "Add"), domain.OriginRequest{}))
}

func (h *originPageHandler) Add(c *fiber.Ctx) error {
	req := domain.OriginRequest{}
	messages := bindForm(c, h.validator, &req)
	data := h.formData("New Origin", pagePath(originPages, "Add"), req)
	if messages != nil {
		return renderForm(c, "origin/form", data, messages)
	}

	res := h.originService.AddOrigin(c.Context(), req)
	return formResult(c, res, "origin/form", data, pagePath(originPages, "List"))
}

func (h *originPageHandler) Edit(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return badPageID(c)
	}

	o, err := h.originService.FindOrigin(c.Context(), id)
	if err != nil {
		return pageFindFailed(c, err, domain.ErrOriginNotFound, domain.MessageOriginNotFound)
	}

	form := domain.OriginRequest{ID: o.ID, Country: o.Country}
	return presenters.Render(c, "origin/form", h.formData("Edit Origin", pagePath(originPages, "Update", id), form))
}

func (h *originPageHandler) Update(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return badPageID(c)
	}

	req := domain.OriginRequest{}
	messages := bindForm(c, h.validator, &req)
	data := h.formData("Edit Origin", pagePath(originPages, "Update", id), req)
	if messages != nil {
		return renderForm(c, "origin/form", data, messages)
	}
	if req.ID != id {
		return presenters.RenderError(c, fiber.StatusBadRequest, domain.MessageIDMismatch)
	}

	res := h.originService.UpdateOrigin(c.Context(), id, req)
	return formResult(c, res, "origin/form", data, pagePath(originPages, "Details", id))
}

func (h *originPageHandler) ConfirmDelete(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return badPageID(c)
	}

	o, err := h.originService.FindOrigin(c.Context(), id)
	if err != nil {
		return pageFindFailed(c, err, domain.ErrOriginNotFound, domain.MessageOriginNotFound)
	}

	return presenters.Render(c, "origin/confirm_delete", fiber.Map{
		"Title":  "Delete Origin",
		"Origin": o,
		"Action": pagePath(originPages, "Delete", id),
	})
}

func (h *originPageHandler) Delete(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return badPageID(c)
	}

	res := h.originService.DeleteOrigin(c.Context(), id)
	return presenters.PageResult(c, res, pagePath(originPages, "List"))
}
