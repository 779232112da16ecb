package ingredient

import (
	"DishAndMovie/domain"
	"DishAndMovie/entities"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type (
	IngredientService interface {
		ListIngredients(ctx context.Context, p domain.Pagination) ([]domain.Ingredient, error)
		CountIngredients(ctx context.Context) (int64, error)
		FindIngredient(ctx context.Context, id uint) (*domain.Ingredient, error)
		AddIngredient(ctx context.Context, req domain.IngredientRequest) domain.ServiceResponse
		UpdateIngredient(ctx context.Context, id uint, req domain.IngredientRequest) domain.ServiceResponse
		DeleteIngredient(ctx context.Context, id uint) domain.ServiceResponse
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
	}
)

func NewIngredientService(ingredientRepository IngredientRepository) IngredientService {
	return &ingredientService{
		ingredientRepository: ingredientRepository,
	}
}

func toIngredient(i entities.Ingredient) domain.Ingredient {
	return domain.Ingredient{
		ID:              i.ID,
		Name:            i.Name,
		Unit:            i.Unit,
		CaloriesPerUnit: i.CaloriesPerUnit,
	}
}

func (s *ingredientService) ListIngredients(ctx context.Context, p domain.Pagination) ([]domain.Ingredient, error) {
	ingredients, err := s.ingredientRepository.GetIngredients(ctx, p)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Ingredient, 0, len(ingredients))
	for _, i := range ingredients {
		result = append(result, toIngredient(i))
	}
	return result, nil
}

func (s *ingredientService) CountIngredients(ctx context.Context) (int64, error) {
	return s.ingredientRepository.CountIngredients(ctx)
}

func (s *ingredientService) FindIngredient(ctx context.Context, id uint) (*domain.Ingredient, error) {
	i, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIngredientNotFound
		}
		return nil, err
	}
	res := toIngredient(*i)
	return &res, nil
}

func (s *ingredientService) AddIngredient(ctx context.Context, req domain.IngredientRequest) domain.ServiceResponse {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Invalid(domain.MessageIngredientNameRequired)
	}

	i := entities.Ingredient{
		Name:            name,
		Unit:            strings.TrimSpace(req.Unit),
		CaloriesPerUnit: req.CaloriesPerUnit,
	}
	if err := s.ingredientRepository.CreateIngredient(ctx, &i); err != nil {
		return domain.Failed(err, domain.MessageFailedCreateIngredient)
	}
	return domain.Created(i.ID, domain.MessageSuccessCreateIngredient)
}

func (s *ingredientService) UpdateIngredient(ctx context.Context, id uint, req domain.IngredientRequest) domain.ServiceResponse {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Invalid(domain.MessageIngredientNameRequired)
	}

	i, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFound(domain.MessageIngredientNotFound)
		}
		return domain.Failed(err, domain.MessageFailedUpdateIngredient)
	}

	i.Name = name
	i.Unit = strings.TrimSpace(req.Unit)
	i.CaloriesPerUnit = req.CaloriesPerUnit
	if err := s.ingredientRepository.UpdateIngredient(ctx, i); err != nil {
		return domain.Failed(err, domain.MessageFailedUpdateIngredient)
	}
	return domain.Updated(domain.MessageSuccessUpdateIngredient)
}

func (s *ingredientService) DeleteIngredient(ctx context.Context, id uint) domain.ServiceResponse {
	if err := s.ingredientRepository.DeleteIngredient(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFound(domain.MessageIngredientNotFound)
		}
		return domain.Failed(err, domain.MessageFailedDeleteIngredient)
	}
	return domain.Deleted(domain.MessageSuccessDeleteIngredient)
}
