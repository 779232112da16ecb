package handlers

import (
	"DishAndMovie/domain"
	"DishAndMovie/internal/api/presenters"
	"DishAndMovie/internal/utils"
	"DishAndMovie/pkg/ingredient"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	IngredientHandler interface {
		ListIngredients(c *fiber.Ctx) error
		FindIngredient(c *fiber.Ctx) error
		AddIngredient(c *fiber.Ctx) error
		UpdateIngredient(c *fiber.Ctx) error
		DeleteIngredient(c *fiber.Ctx) error
	}

	ingredientHandler struct {
		ingredientService ingredient.IngredientService
		validator         *validator.Validate
	}
)

func NewIngredientHandler(ingredientService ingredient.IngredientService, validator *validator.Validate) IngredientHandler {
	return &ingredientHandler{
		ingredientService: ingredientService,
		validator:         validator,
	}
}

func (h *ingredientHandler) ListIngredients(c *fiber.Ctx) error {
	total, err := h.ingredientService.CountIngredients(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
	}

	items, err := h.ingredientService.ListIngredients(c.Context(), apiPagination(c, total))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetIngredients)
}

func (h *ingredientHandler) FindIngredient(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return invalidID(c)
	}

	res, err := h.ingredientService.FindIngredient(c.Context(), id)
	if err != nil {
		return findFailed(c, err, domain.ErrIngredientNotFound, domain.MessageIngredientNotFound)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetIngredients)
}

func (h *ingredientHandler) AddIngredient(c *fiber.Ctx) error {
	req := new(domain.IngredientRequest)
	if handled, err := bindRequest(c, h.validator, req, domain.MessageFailedCreateIngredient); handled {
		return err
	}

	res := h.ingredientService.AddIngredient(c.Context(), *req)
	return presenters.ServiceResult(c, res, "/api/Ingredient/FindIngredient")
}

func (h *ingredientHandler) UpdateIngredient(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return invalidID(c)
	}

	req := new(domain.IngredientRequest)
	if handled, err := bindRequest(c, h.validator, req, domain.MessageFailedUpdateIngredient); handled {
		return err
	}
	if req.ID != id {
		return idMismatch(c)
	}

	return presenters.ServiceResult(c, h.ingredientService.UpdateIngredient(c.Context(), id, *req), "")
}

func (h *ingredientHandler) DeleteIngredient(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return invalidID(c)
	}

	return presenters.ServiceResult(c, h.ingredientService.DeleteIngredient(c.Context(), id), "")
}
