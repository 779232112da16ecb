package handlers

import (
	"DishAndMovie/domain"
	"DishAndMovie/internal/api/presenters"
	"DishAndMovie/internal/utils"
	"DishAndMovie/pkg/ingredient"
	"DishAndMovie/pkg/origin"
	"DishAndMovie/pkg/recipe"
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const recipePages = "RecipePage"

type (
	RecipePageHandler interface {
		List(c *fiber.Ctx) error
		Details(c *fiber.Ctx) error
		New(c *fiber.Ctx) error
		Add(c *fiber.Ctx) error
		Edit(c *fiber.Ctx) error
		Update(c *fiber.Ctx) error
		ConfirmDelete(c *fiber.Ctx) error
		Delete(c *fiber.Ctx) error

		AddIngredient(c *fiber.Ctx) error
		RemoveIngredient(c *fiber.Ctx) error
	}

	recipePageHandler struct {
		recipeService     recipe.RecipeService
		originService     origin.OriginService
		ingredientService ingredient.IngredientService
		validator         *validator.Validate
	}
)

func NewRecipePageHandler(
	recipeService recipe.RecipeService,
	originService origin.OriginService,
	ingredientService ingredient.IngredientService,
	validator *validator.Validate,
) RecipePageHandler {
	return &recipePageHandler{
		recipeService:     recipeService,
		originService:     originService,
		ingredientService: ingredientService,
		validator:         validator,
	}
}

func (h *recipePageHandler) List(c *fiber.Ctx) error {
	total, err := h.recipeService.CountRecipes(c.Context())
	if err != nil {
		return pageFailed(c, err)
	}

	page := pageInfo(c, total)
	recipes, err := h.recipeService.ListRecipes(c.Context(), page.Pagination())
	if err != nil {
		return pageFailed(c, err)
	}

	return presenters.Render(c, "recipe/list", fiber.Map{
		"Title":   "Recipes",
		"Recipes": recipes,
		"Page":    page,
		"PageURL": pagePath(recipePages, "List"),
	})
}

func (h *recipePageHandler) detailsData(ctx context.Context, id uint) (fiber.Map, error) {
	r, err := h.recipeService.FindRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	used, err := h.recipeService.ListIngredientsForRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	total, err := h.ingredientService.CountIngredients(ctx)
	if err != nil {
		return nil, err
	}
	all, err := h.ingredientService.ListIngredients(ctx, domain.NewPagination(0, int(total)))
	if err != nil {
		return nil, err
	}

	return fiber.Map{
		"Title":       r.Name,
		"Recipe":      r,
		"Ingredients": used,
		"Choices":     all,
		"AddAction":   pagePath(recipePages, "AddIngredient", id),
	}, nil
}

func (h *recipePageHandler) Details(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return badPageID(c)
	}

	data, err := h.detailsData(c.Context(), id)
	if err != nil {
		return pageFindFailed(c, err, domain.ErrRecipeNotFound, domain.MessageRecipeNotFound)
	}

	return presenters.Render(c, "recipe/details", data)
}

func (h *recipePageHandler) formData(ctx context.Context, title, action string, form domain.RecipeRequest) (fiber.Map, error) {
	total, err := h.originService.CountOrigins(ctx)
	if err != nil {
		return nil, err
	}
	origins, err := h.originService.ListOrigins(ctx, domain.NewPagination(0, int(total)))
	if err != nil {
		return nil, err
	}

	return fiber.Map{
		"Title":   title,
		"Action":  action,
		"Form":    form,
		"Origins": origins,
	}, nil
}

func (h *recipePageHandler) render(c *fiber.Ctx, title, action string, form domain.RecipeRequest, messages []string) error {
	data, err := h.formData(c.Context(), title, action, form)
	if err != nil {
		return pageFailed(c, err)
	}
	if messages != nil {
		return renderForm(c, "recipe/form", data, messages)
	}
	return presenters.Render(c, "recipe/form", data)
}

func (h *recipePageHandler) New(c *fiber.Ctx) error {
	return h.render(c, "New Recipe", pagePath(recipePages, "Add"), domain.RecipeRequest{}, nil)
}

func (h *recipePageHandler) Add(c *fiber.Ctx) error {
	action := pagePath(recipePages, "Add")
	req := domain.RecipeRequest{}
	if messages := bindForm(c, h.validator, &req); messages != nil {
		return h.render(c, "New Recipe", action, req, messages)
	}

	res := h.recipeService.AddRecipe(c.Context(), req)
	if res.IsValidationError() {
		return h.render(c, "New Recipe", action, req, res.Messages)
	}
	return presenters.PageResult(c, res, pagePath(recipePages, "List"))
}

func (h *recipePageHandler) Edit(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return badPageID(c)
	}

	r, err := h.recipeService.FindRecipe(c.Context(), id)
	if err != nil {
		return pageFindFailed(c, err, domain.ErrRecipeNotFound, domain.MessageRecipeNotFound)
	}

	form := domain.RecipeRequest{ID: r.ID, Name: r.Name, OriginID: r.OriginID}
	return h.render(c, "Edit Recipe", pagePath(recipePages, "Update", id), form, nil)
}

func (h *recipePageHandler) Update(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return badPageID(c)
	}

	action := pagePath(recipePages, "Update", id)
	req := domain.RecipeRequest{}
	if messages := bindForm(c, h.validator, &req); messages != nil {
		return h.render(c, "Edit Recipe", action, req, messages)
	}
	if req.ID != id {
		return presenters.RenderError(c, fiber.StatusBadRequest, domain.MessageIDMismatch)
	}

	res := h.recipeService.UpdateRecipe(c.Context(), id, req)
	if res.IsValidationError() {
		return h.render(c, "Edit Recipe", action, req, res.Messages)
	}
	return presenters.PageResult(c, res, pagePath(recipePages, "Details", id))
}

func (h *recipePageHandler) ConfirmDelete(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return badPageID(c)
	}

	r, err := h.recipeService.FindRecipe(c.Context(), id)
	if err != nil {
		return pageFindFailed(c, err, domain.ErrRecipeNotFound, domain.MessageRecipeNotFound)
	}

	return presenters.Render(c, "recipe/confirm_delete", fiber.Map{
		"Title":  "Delete Recipe",
		"Recipe": r,
		"Action": pagePath(recipePages, "Delete", id),
	})
}

func (h *recipePageHandler) Delete(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return badPageID(c)
	}

	res := h.recipeService.DeleteRecipe(c.Context(), id)
	return presenters.PageResult(c, res, pagePath(recipePages, "List"))
}

func (h *recipePageHandler) AddIngredient(c *fiber.Ctx) error {
	recipeID, err := utils.ParseID(c, "recipeId")
	if err != nil {
		return badPageID(c)
	}

	req := domain.RecipeIngredientRequest{}
	messages := bindForm(c, h.validator, &req)
	if messages == nil {
		res := h.recipeService.AddIngredientToRecipe(c.Context(), recipeID, req)
		if !res.IsValidationError() {
			return presenters.PageResult(c, res, pagePath(recipePages, "Details", recipeID))
		}
		messages = res.Messages
	}

	data, err := h.detailsData(c.Context(), recipeID)
	if err != nil {
		return pageFindFailed(c, err, domain.ErrRecipeNotFound, domain.MessageRecipeNotFound)
	}
	return renderForm(c, "recipe/details", data, messages)
}

func (h *recipePageHandler) RemoveIngredient(c *fiber.Ctx) error {
	recipeID, err := utils.ParseID(c, "recipeId")
	if err != nil {
		return badPageID(c)
	}
	ingredientID, err := utils.ParseID(c, "ingredientId")
	if err != nil {
		return badPageID(c)
	}

	res := h.recipeService.RemoveIngredientFromRecipe(c.Context(), recipeID, ingredientID)
	return presenters.PageResult(c, res, pagePath(recipePages, "Details", recipeID))
}
