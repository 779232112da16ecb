package handlers

import (
	"DishAndMovie/domain"
	"DishAndMovie/internal/api/presenters"
	"DishAndMovie/internal/utils"
	"DishAndMovie/pkg/mealplan"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const mealPlanPages = "MealPlanPage"

type (
	MealPlanPageHandler interface {
		List(c *fiber.Ctx) error
		Details(c *fiber.Ctx) error
		New(c *fiber.Ctx) error
		Add(c *fiber.Ctx) error
		Edit(c *fiber.Ctx) error
		Update(c *fiber.Ctx) error
		ConfirmDelete(c *fiber.Ctx) error
		Delete(c *fiber.Ctx) error
	}

	mealPlanPageHandler struct {
		mealPlanService mealplan.MealPlanService
		validator       *validator.Validate
	}
)

func NewMealPlanPageHandler(mealPlanService mealplan.MealPlanService, validator *validator.Validate) MealPlanPageHandler {
	return &mealPlanPageHandler{
		mealPlanService: mealPlanService,
		validator:       validator,
	}
}

func (h *mealPlanPageHandler) List(c *fiber.Ctx) error {
	total, err := h.mealPlanService.CountMealPlans(c.Context())
	if err != nil {
		return pageFailed(c, err)
	}

	page := pageInfo(c, total)
	items, err := h.mealPlanService.ListMealPlans(c.Context(), page.Pagination())
	if err != nil {
		return pageFailed(c, err)
	}

	return presenters.Render(c, "mealplan/list", fiber.Map{
		"Title":   "Meal Plans",
		"Items":   items,
		"Page":    page,
		"PageURL": pagePath(mealPlanPages, "List"),
	})
}

func (h *mealPlanPageHandler) Details(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return badPageID(c)
	}

	item, err := h.mealPlanService.FindMealPlan(c.Context(), id)
	if err != nil {
		return pageFindFailed(c, err, domain.ErrMealPlanNotFound, domain.MessageMealPlanNotFound)
	}

	return presenters.Render(c, "mealplan/details", fiber.Map{
		"Title": "Meal Plan",
		"Item":  item,
	})
}

func (h *mealPlanPageHandler) formData(title, action string, form domain.MealPlanRequest) fiber.Map {
	return fiber.Map{
		"Title":  title,
		"Action": action,
		"Form":   form,
	}
}

func (h *mealPlanPageHandler) New(c *fiber.Ctx) error {
	return presenters.Render(c, "mealplan/form", h.formData("New Meal Plan", pagePath(mealPlanPages, "Add"), domain.MealPlanRequest{}))
}

func (h *mealPlanPageHandler) Add(c *fiber.Ctx) error {
	req := domain.MealPlanRequest{}
	messages := bindForm(c, h.validator, &req)
	data := h.formData("New Meal Plan", pagePath(mealPlanPages, "Add"), req)
	if messages != nil {
		return renderForm(c, "mealplan/form", data, messages)
	}

	res := h.mealPlanService.AddMealPlan(c.Context(), req)
	return formResult(c, res, "mealplan/form", data, pagePath(mealPlanPages, "List"))
}

func (h *mealPlanPageHandler) Edit(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return badPageID(c)
	}

	item, err := h.mealPlanService.FindMealPlan(c.Context(), id)
	if err != nil {
		return pageFindFailed(c, err, domain.ErrMealPlanNotFound, domain.MessageMealPlanNotFound)
	}

	form := domain.MealPlanRequest{ID: item.ID, Name: item.Name, Date: item.Date}
	return presenters.Render(c, "mealplan/form", h.formData("Edit Meal Plan", pagePath(mealPlanPages, "Update", id), form))
}

func (h *mealPlanPageHandler) Update(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return badPageID(c)
	}

	req := domain.MealPlanRequest{}
	messages := bindForm(c, h.validator, &req)
	data := h.formData("Edit Meal Plan", pagePath(mealPlanPages, "Update", id), req)
	if messages != nil {
		return renderForm(c, "mealplan/form", data, messages)
	}
	if req.ID != id {
		return presenters.RenderError(c, fiber.StatusBadRequest, domain.MessageIDMismatch)
	}

	res := h.mealPlanService.UpdateMealPlan(c.Context(), id, req)
	return formResult(c, res, "mealplan/form", data, pagePath(mealPlanPages, "Details", id))
}

func (h *mealPlanPageHandler) ConfirmDelete(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return badPageID(c)
	}

	item, err := h.mealPlanService.FindMealPlan(c.Context(), id)
	if err != nil {
		return pageFindFailed(c, err, domain.ErrMealPlanNotFound, domain.MessageMealPlanNotFound)
	}

	return presenters.Render(c, "mealplan/confirm_delete", fiber.Map{
		"Title":  "Delete Meal Plan",
		"Item":   item,
		"Action": pagePath(mealPlanPages, "Delete", id),
	})
}

func (h *mealPlanPageHandler) Delete(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return badPageID(c)
	}

	res := h.mealPlanService.DeleteMealPlan(c.Context(), id)
	return presenters.PageResult(c, res, pagePath(mealPlanPages, "List"))
}
