package handlers

import (
	"DishAndMovie/domain"
	"DishAndMovie/internal/api/presenters"
	"DishAndMovie/internal/utils"
	"DishAndMovie/pkg/mealplan"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MealPlanHandler interface {
		ListMealPlans(c *fiber.Ctx) error
		FindMealPlan(c *fiber.Ctx) error
		AddMealPlan(c *fiber.Ctx) error
		UpdateMealPlan(c *fiber.Ctx) error
		DeleteMealPlan(c *fiber.Ctx) error
	}

	mealPlanHandler struct {
		mealPlanService mealplan.MealPlanService
		validator       *validator.Validate
	}
)

func NewMealPlanHandler(mealPlanService mealplan.MealPlanService, validator *validator.Validate) MealPlanHandler {
	return &mealPlanHandler{
		mealPlanService: mealPlanService,
		validator:       validator,
	}
}

func (h *mealPlanHandler) ListMealPlans(c *fiber.Ctx) error {
	total, err := h.mealPlanService.CountMealPlans(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
	}

	items, err := h.mealPlanService.ListMealPlans(c.Context(), apiPagination(c, total))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetMealPlans)
}

func (h *mealPlanHandler) FindMealPlan(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return invalidID(c)
	}

	res, err := h.mealPlanService.FindMealPlan(c.Context(), id)
	if err != nil {
		return findFailed(c, err, domain.ErrMealPlanNotFound, domain.MessageMealPlanNotFound)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMealPlans)
}

func (h *mealPlanHandler) AddMealPlan(c *fiber.Ctx) error {
	req := new(domain.MealPlanRequest)
	if handled, err := bindRequest(c, h.validator, req, domain.MessageFailedCreateMealPlan); handled {
		return err
	}

	res := h.mealPlanService.AddMealPlan(c.Context(), *req)
	return presenters.ServiceResult(c, res, "/api/MealPlan/FindMealPlan")
}

func (h *mealPlanHandler) UpdateMealPlan(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return invalidID(c)
	}

	req := new(domain.MealPlanRequest)
	if handled, err := bindRequest(c, h.validator, req, domain.MessageFailedUpdateMealPlan); handled {
		return err
	}
	if req.ID != id {
		return idMismatch(c)
	}

	return presenters.ServiceResult(c, h.mealPlanService.UpdateMealPlan(c.Context(), id, *req), "")
}

func (h *mealPlanHandler) DeleteMealPlan(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return invalidID(c)
	}

	return presenters.ServiceResult(c, h.mealPlanService.DeleteMealPlan(c.Context(), id), "")
}
