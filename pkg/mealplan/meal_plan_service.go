package mealplan

import (
	"DishAndMovie/domain"
	"DishAndMovie/entities"
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type (
	MealPlanService interface {
		ListMealPlans(ctx context.Context, p domain.Pagination) ([]domain.MealPlan, error)
		CountMealPlans(ctx context.Context) (int64, error)
		FindMealPlan(ctx context.Context, id uint) (*domain.MealPlan, error)
		AddMealPlan(ctx context.Context, req domain.MealPlanRequest) domain.ServiceResponse
		UpdateMealPlan(ctx context.Context, id uint, req domain.MealPlanRequest) domain.ServiceResponse
		DeleteMealPlan(ctx context.Context, id uint) domain.ServiceResponse
	}

	mealPlanService struct {
		mealPlanRepository MealPlanRepository
	}
)

func NewMealPlanService(mealPlanRepository MealPlanRepository) MealPlanService {
	return &mealPlanService{
		mealPlanRepository: mealPlanRepository,
	}
}

func toMealPlan(p entities.MealPlan) domain.MealPlan {
	return domain.MealPlan{
		ID:   p.ID,
		Name: p.Name,
		Date: time.Time(p.Date).Format(domain.DateLayout),
	}
}

func parseRequest(req domain.MealPlanRequest) (string, datatypes.Date, *domain.ServiceResponse) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		res := domain.Invalid(domain.MessageMealPlanNameRequired)
		return "", datatypes.Date{}, &res
	}
	date, err := time.Parse(domain.DateLayout, req.Date)
	if err != nil {
		res := domain.Invalid(domain.MessageMealPlanDateInvalid)
		return "", datatypes.Date{}, &res
	}
	return name, datatypes.Date(date), nil
}

func (s *mealPlanService) ListMealPlans(ctx context.Context, p domain.Pagination) ([]domain.MealPlan, error) {
	plans, err := s.mealPlanRepository.GetMealPlans(ctx, p)
	if err != nil {
		return nil, err
	}

	result := make([]domain.MealPlan, 0, len(plans))
	for _, plan := range plans {
		result = append(result, toMealPlan(plan))
	}
	return result, nil
}

func (s *mealPlanService) CountMealPlans(ctx context.Context) (int64, error) {
	return s.mealPlanRepository.CountMealPlans(ctx)
}

func (s *mealPlanService) FindMealPlan(ctx context.Context, id uint) (*domain.MealPlan, error) {
	plan, err := s.mealPlanRepository.GetMealPlanByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMealPlanNotFound
		}
		return nil, err
	}
	res := toMealPlan(*plan)
	return &res, nil
}

func (s *mealPlanService) AddMealPlan(ctx context.Context, req domain.MealPlanRequest) domain.ServiceResponse {
	name, date, invalid := parseRequest(req)
	if invalid != nil {
		return *invalid
	}

	plan := entities.MealPlan{Name: name, Date: date}
	if err := s.mealPlanRepository.CreateMealPlan(ctx, &plan); err != nil {
		return domain.Failed(err, domain.MessageFailedCreateMealPlan)
	}
	return domain.Created(plan.ID, domain.MessageSuccessCreateMealPlan)
}

func (s *mealPlanService) UpdateMealPlan(ctx context.Context, id uint, req domain.MealPlanRequest) domain.ServiceResponse {
	name, date, invalid := parseRequest(req)
	if invalid != nil {
		return *invalid
	}

	plan, err := s.mealPlanRepository.GetMealPlanByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFound(domain.MessageMealPlanNotFound)
		}
		return domain.Failed(err, domain.MessageFailedUpdateMealPlan)
	}

	plan.Name = name
	plan.Date = date
	if err := s.mealPlanRepository.UpdateMealPlan(ctx, plan); err != nil {
		return domain.Failed(err, domain.MessageFailedUpdateMealPlan)
	}
	return domain.Updated(domain.MessageSuccessUpdateMealPlan)
}

func (s *mealPlanService) DeleteMealPlan(ctx context.Context, id uint) domain.ServiceResponse {
	if err := s.mealPlanRepository.DeleteMealPlan(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFound(domain.MessageMealPlanNotFound)
		}
		return domain.Failed(err, domain.MessageFailedDeleteMealPlan)
	}
	return domain.Deleted(domain.MessageSuccessDeleteMealPlan)
}
