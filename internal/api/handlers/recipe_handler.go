package handlers

import (
	"DishAndMovie/domain"
	"DishAndMovie/internal/api/presenters"
	"DishAndMovie/internal/utils"
	"DishAndMovie/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		ListRecipes(c *fiber.Ctx) error
		FindRecipe(c *fiber.Ctx) error
		AddRecipe(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error

		ListIngredients(c *fiber.Ctx) error
		AddIngredient(c *fiber.Ctx) error
		RemoveIngredient(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) ListRecipes(c *fiber.Ctx) error {
	total, err := h.recipeService.CountRecipes(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
	}

	res, err := h.recipeService.ListRecipes(c.Context(), apiPagination(c, total))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) FindRecipe(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return invalidID(c)
	}

	res, err := h.recipeService.FindRecipe(c.Context(), id)
	if err != nil {
		return findFailed(c, err, domain.ErrRecipeNotFound, domain.MessageRecipeNotFound)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) AddRecipe(c *fiber.Ctx) error {
	req := new(domain.RecipeRequest)
	if handled, err := bindRequest(c, h.validator, req, domain.MessageFailedCreateRecipe); handled {
		return err
	}

	res := h.recipeService.AddRecipe(c.Context(), *req)
	return presenters.ServiceResult(c, res, "/api/Recipe/FindRecipe")
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return invalidID(c)
	}

	req := new(domain.RecipeRequest)
	if handled, err := bindRequest(c, h.validator, req, domain.MessageFailedUpdateRecipe); handled {
		return err
	}
	if req.ID != id {
		return idMismatch(c)
	}

	res := h.recipeService.UpdateRecipe(c.Context(), id, *req)
	return presenters.ServiceResult(c, res, "")
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return invalidID(c)
	}

	res := h.recipeService.DeleteRecipe(c.Context(), id)
	return presenters.ServiceResult(c, res, "")
}

func (h *recipeHandler) ListIngredients(c *fiber.Ctx) error {
	recipeID, err := utils.ParseID(c, "recipeId")
	if err != nil {
		return invalidID(c)
	}

	res, err := h.recipeService.ListIngredientsForRecipe(c.Context(), recipeID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeIngredients)
}

func (h *recipeHandler) AddIngredient(c *fiber.Ctx) error {
	recipeID, err := utils.ParseID(c, "recipeId")
	if err != nil {
		return invalidID(c)
	}

	req := new(domain.RecipeIngredientRequest)
	if handled, err := bindRequest(c, h.validator, req, domain.MessageFailedAddIngredient); handled {
		return err
	}

	res := h.recipeService.AddIngredientToRecipe(c.Context(), recipeID, *req)
	return presenters.ServiceResult(c, res, "")
}

// RemoveIngredient always answers 204, whether or not the ingredient was
// attached.
func (h *recipeHandler) RemoveIngredient(c *fiber.Ctx) error {
	recipeID, err := utils.ParseID(c, "recipeId")
	if err != nil {
		return invalidID(c)
	}
	ingredientID, err := utils.ParseID(c, "ingredientId")
	if err != nil {
		return invalidID(c)
	}

	res := h.recipeService.RemoveIngredientFromRecipe(c.Context(), recipeID, ingredientID)
	return presenters.ServiceResult(c, res, "")
}
