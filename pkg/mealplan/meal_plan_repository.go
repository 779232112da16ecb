package mealplan

import (
	"DishAndMovie/domain"
	"DishAndMovie/entities"
	"context"

	"gorm.io/gorm"
)

type (
	MealPlanRepository interface {
		GetMealPlans(ctx context.Context, p domain.Pagination) ([]entities.MealPlan, error)
		CountMealPlans(ctx context.Context) (int64, error)
		GetMealPlanByID(ctx context.Context, id uint) (*entities.MealPlan, error)
		CreateMealPlan(ctx context.Context, plan *entities.MealPlan) error
		UpdateMealPlan(ctx context.Context, plan *entities.MealPlan) error
		DeleteMealPlan(ctx context.Context, id uint) error
	}

	mealPlanRepository struct {
		db *gorm.DB
	}
)

func NewMealPlanRepository(db *gorm.DB) MealPlanRepository {
	return &mealPlanRepository{
		db: db,
	}
}

func (r *mealPlanRepository) GetMealPlans(ctx context.Context, p domain.Pagination) ([]entities.MealPlan, error) {
	var plans []entities.MealPlan
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(p.Skip).
		Limit(p.PerPage).
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *mealPlanRepository) CountMealPlans(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.MealPlan{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *mealPlanRepository) GetMealPlanByID(ctx context.Context, id uint) (*entities.MealPlan, error) {
	var plan entities.MealPlan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *mealPlanRepository) CreateMealPlan(ctx context.Context, plan *entities.MealPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *mealPlanRepository) UpdateMealPlan(ctx context.Context, plan *entities.MealPlan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}

func (r *mealPlanRepository) DeleteMealPlan(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.MealPlan{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
