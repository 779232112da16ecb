package handlers

import (
	"DishAndMovie/domain"
	"DishAndMovie/internal/api/presenters"
	"DishAndMovie/internal/utils"
	"DishAndMovie/pkg/ingredient"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const ingredientPages = "IngredientPage"

type (
	IngredientPageHandler interface {
		List(c *fiber.Ctx) error
		Details(c *fiber.Ctx) error
		New(c *fiber.Ctx) error
		Add(c *fiber.Ctx) error
		Edit(c *fiber.Ctx) error
		Update(c *fiber.Ctx) error
		ConfirmDelete(c *fiber.Ctx) error
		Delete(c *fiber.Ctx) error
	}

	ingredientPageHandler struct {
		ingredientService ingredient.IngredientService
		validator         *validator.Validate
	}
)

func NewIngredientPageHandler(ingredientService ingredient.IngredientService, validator *validator.Validate) IngredientPageHandler {
	return &ingredientPageHandler{
		ingredientService: ingredientService,
		validator:         validator,
	}
}

func (h *ingredientPageHandler) List(c *fiber.Ctx) error {
	total, err := h.ingredientService.CountIngredients(c.Context())
	if err != nil {
		return pageFailed(c, err)
	}

	page := pageInfo(c, total)
	items, err := h.ingredientService.ListIngredients(c.Context(), page.Pagination())
	if err != nil {
		return pageFailed(c, err)
	}

	return presenters.Render(c, "ingredient/list", fiber.Map{
		"Title":   "Ingredients",
		"Items":   items,
		"Page":    page,
		"PageURL": pagePath(ingredientPages, "List"),
	})
}

func (h *ingredientPageHandler) Details(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return badPageID(c)
	}

	item, err := h.ingredientService.FindIngredient(c.Context(), id)
	if err != nil {
		return pageFindFailed(c, err, domain.ErrIngredientNotFound, domain.MessageIngredientNotFound)
	}

	return presenters.Render(c, "ingredient/details", fiber.Map{
		"Title": "Ingredient",
		"Item":  item,
	})
}

func (h *ingredientPageHandler) formData(title, action string, form domain.IngredientRequest) fiber.Map {
	return fiber.Map{
		"Title":  title,
		"Action": action,
		"Form":   form,
	}
}

func (h *ingredientPageHandler) New(c *fiber.Ctx) error {
	return presenters.Render(c, "ingredient/form", h.formData("New Ingredient", pagePath(ingredientPages, "Add"), domain.IngredientRequest{}))
}

func (h *ingredientPageHandler) Add(c *fiber.Ctx) error {
	req := domain.IngredientRequest{}
	messages := bindForm(c, h.validator, &req)
	data := h.formData("New Ingredient", pagePath(ingredientPages, "Add"), req)
	if messages != nil {
		return renderForm(c, "ingredient/form", data, messages)
	}

	res := h.ingredientService.AddIngredient(c.Context(), req)
	return formResult(c, res, "ingredient/form", data, pagePath(ingredientPages, "List"))
}

func (h *ingredientPageHandler) Edit(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return badPageID(c)
	}

	item, err := h.ingredientService.FindIngredient(c.Context(), id)
	if err != nil {
		return pageFindFailed(c, err, domain.ErrIngredientNotFound, domain.MessageIngredientNotFound)
	}

	form := domain.IngredientRequest{ID: item.ID, Name: item.Name, Unit: item.Unit, CaloriesPerUnit: item.CaloriesPerUnit}
	return presenters.Render(c, "ingredient/form", h.formData("Edit Ingredient", pagePath(ingredientPages, "Update", id), form))
}

func (h *ingredientPageHandler) Update(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return badPageID(c)
	}

	req := domain.IngredientRequest{}
	messages := bindForm(c, h.validator, &req)
	data := h.formData("Edit Ingredient", pagePath(ingredientPages, "Update", id), req)
	if messages != nil {
		return renderForm(c, "ingredient/form", data, messages)
	}
	if req.ID != id {
		return presenters.RenderError(c, fiber.StatusBadRequest, domain.MessageIDMismatch)
	}

	res := h.ingredientService.UpdateIngredient(c.Context(), id, req)
	return formResult(c, res, "ingredient/form", data, pagePath(ingredientPages, "Details", id))
}

func (h *ingredientPageHandler) ConfirmDelete(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return badPageID(c)
	}

	item, err := h.ingredientService.FindIngredient(c.Context(), id)
	if err != nil {
		return pageFindFailed(c, err, domain.ErrIngredientNotFound, domain.MessageIngredientNotFound)
	}

	return presenters.Render(c, "ingredient/confirm_delete", fiber.Map{
		"Title":  "Delete Ingredient",
		"Item":   item,
		"Action": pagePath(ingredientPages, "Delete", id),
	})
}

func (h *ingredientPageHandler) Delete(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return badPageID(c)
	}

	res := h.ingredientService.DeleteIngredient(c.Context(), id)
	return presenters.PageResult(c, res, pagePath(ingredientPages, "List"))
}
