package recipe

import (
	"DishAndMovie/domain"
	"DishAndMovie/entities"
	"DishAndMovie/pkg/ingredient"
	"DishAndMovie/pkg/origin"
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

type (
	RecipeService interface {
		ListRecipes(ctx context.Context, p domain.Pagination) ([]domain.Recipe, error)
		CountRecipes(ctx context.Context) (int64, error)
		FindRecipe(ctx context.Context, id uint) (*domain.Recipe, error)
		GetRecipesByOrigin(ctx context.Context, originID uint) ([]domain.Recipe, error)
		AddRecipe(ctx context.Context, req domain.RecipeRequest) domain.ServiceResponse
		UpdateRecipe(ctx context.Context, id uint, req domain.RecipeRequest) domain.ServiceResponse
		DeleteRecipe(ctx context.Context, id uint) domain.ServiceResponse

		ListIngredientsForRecipe(ctx context.Context, recipeID uint) ([]domain.RecipeIngredient, error)
		AddIngredientToRecipe(ctx context.Context, recipeID uint, req domain.RecipeIngredientRequest) domain.ServiceResponse
		RemoveIngredientFromRecipe(ctx context.Context, recipeID, ingredientID uint) domain.ServiceResponse
	}

	recipeService struct {
		recipeRepository     RecipeRepository
		originRepository     origin.OriginRepository
		ingredientRepository ingredient.IngredientRepository
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	originRepository origin.OriginRepository,
	ingredientRepository ingredient.IngredientRepository,
) RecipeService {
	return &recipeService{
		recipeRepository:     recipeRepository,
		originRepository:     originRepository,
		ingredientRepository: ingredientRepository,
	}
}

func toRecipe(r entities.Recipe) domain.Recipe {
	dto := domain.Recipe{
		ID:       r.ID,
		Name:     r.Name,
		OriginID: r.OriginID,
	}
	if r.Origin != nil {
		dto.OriginCountry = r.Origin.Country
	}
	return dto
}

func toRecipes(recipes []entities.Recipe) []domain.Recipe {
	result := make([]domain.Recipe, 0, len(recipes))
	for _, r := range recipes {
		result = append(result, toRecipe(r))
	}
	return result
}

func (s *recipeService) ListRecipes(ctx context.Context, p domain.Pagination) ([]domain.Recipe, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx, p)
	if err != nil {
		return nil, err
	}
	return toRecipes(recipes), nil
}

func (s *recipeService) CountRecipes(ctx context.Context) (int64, error) {
	return s.recipeRepository.CountRecipes(ctx)
}

func (s *recipeService) FindRecipe(ctx context.Context, id uint) (*domain.Recipe, error) {
	r, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	movies, err := s.recipeRepository.GetMoviesByOrigin(ctx, r.OriginID)
	if err != nil {
		return nil, err
	}

	res := toRecipe(*r)
	res.MoviesFromSameOrigin = make([]domain.MovieSummary, 0, len(movies))
	for _, m := range movies {
		res.MoviesFromSameOrigin = append(res.MoviesFromSameOrigin, domain.MovieSummary{
			ID:          m.ID,
			Title:       m.Title,
			ReleaseDate: time.Time(m.ReleaseDate).Format(domain.DateLayout),
			PosterURL:   m.PosterURL,
		})
	}
	return &res, nil
}

func (s *recipeService) GetRecipesByOrigin(ctx context.Context, originID uint) ([]domain.Recipe, error) {
	recipes, err := s.recipeRepository.GetRecipesByOrigin(ctx, originID)
	if err != nil {
		return nil, err
	}
	return toRecipes(recipes), nil
}

func (s *recipeService) validate(ctx context.Context, req domain.RecipeRequest) (string, *domain.ServiceResponse) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		res := domain.Invalid(domain.MessageRecipeNameRequired)
		return "", &res
	}
	if _, err := s.originRepository.GetOriginByID(ctx, req.OriginID); err != nil {
		res := domain.NotFound(domain.MessageOriginNotFound)
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			res = domain.Failed(err, domain.MessageFailedProcessRequest)
		}
		return "", &res
	}
	return name, nil
}

func (s *recipeService) AddRecipe(ctx context.Context, req domain.RecipeRequest) domain.ServiceResponse {
	name, invalid := s.validate(ctx, req)
	if invalid != nil {
		return *invalid
	}

	r := entities.Recipe{Name: name, OriginID: req.OriginID}
	if err := s.recipeRepository.CreateRecipe(ctx, &r); err != nil {
		return domain.Failed(err, domain.MessageFailedCreateRecipe)
	}
	return domain.Created(r.ID, domain.MessageSuccessCreateRecipe)
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id uint, req domain.RecipeRequest) domain.ServiceResponse {
	r, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFound(domain.MessageRecipeNotFound)
		}
		return domain.Failed(err, domain.MessageFailedUpdateRecipe)
	}

	name, invalid := s.validate(ctx, req)
	if invalid != nil {
		return *invalid
	}

	r.Name = name
	r.OriginID = req.OriginID
	r.Origin = nil
	if err := s.recipeRepository.UpdateRecipe(ctx, r); err != nil {
		return domain.Failed(err, domain.MessageFailedUpdateRecipe)
	}
	return domain.Updated(domain.MessageSuccessUpdateRecipe)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id uint) domain.ServiceResponse {
	if err := s.recipeRepository.DeleteRecipe(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFound(domain.MessageRecipeNotFound)
		}
		return domain.Failed(err, domain.MessageFailedDeleteRecipe)
	}
	return domain.Deleted(domain.MessageSuccessDeleteRecipe)
}

func (s *recipeService) ListIngredientsForRecipe(ctx context.Context, recipeID uint) ([]domain.RecipeIngredient, error) {
	items, err := s.recipeRepository.GetRecipeIngredients(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.RecipeIngredient, 0, len(items))
	for _, item := range items {
		ri := domain.RecipeIngredient{
			IngredientID: item.IngredientID,
			Quantity:     item.Quantity,
			UsageUnit:    item.Unit,
		}
		if item.Ingredient != nil {
			ri.Name = item.Ingredient.Name
			ri.BaseUnit = item.Ingredient.Unit
			ri.CaloriesPerUnit = item.Ingredient.CaloriesPerUnit
		}
		result = append(result, ri)
	}
	return result, nil
}

func (s *recipeService) AddIngredientToRecipe(ctx context.Context, recipeID uint, req domain.RecipeIngredientRequest) domain.ServiceResponse {
	if req.Quantity <= 0 {
		return domain.Invalid(domain.MessageQuantityPositive)
	}

	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFound(domain.MessageRecipeNotFound)
		}
		return domain.Failed(err, domain.MessageFailedAddIngredient)
	}

	ing, err := s.ingredientRepository.GetIngredientByID(ctx, req.IngredientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFound(domain.MessageIngredientNotFound)
		}
		return domain.Failed(err, domain.MessageFailedAddIngredient)
	}

	_, err = s.recipeRepository.GetRecipeIngredient(ctx, recipeID, req.IngredientID)
	if err == nil {
		return domain.Invalid(domain.MessageIngredientAlreadyExists)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Failed(err, domain.MessageFailedAddIngredient)
	}

	ri := entities.RecipeIngredient{
		RecipeID:     recipeID,
		IngredientID: ing.ID,
		Quantity:     req.Quantity,
		Unit:         ing.Unit,
	}
	if err := s.recipeRepository.CreateRecipeIngredient(ctx, &ri); err != nil {
		return domain.Failed(err, domain.MessageFailedAddIngredient)
	}
	return domain.Created(ri.ID, domain.MessageSuccessAddIngredient)
}

// RemoveIngredientFromRecipe reports Deleted whether or not the pair was
// linked.
func (s *recipeService) RemoveIngredientFromRecipe(ctx context.Context, recipeID, ingredientID uint) domain.ServiceResponse {
	if err := s.recipeRepository.DeleteRecipeIngredient(ctx, recipeID, ingredientID); err != nil {
		return domain.Failed(err, domain.MessageFailedProcessRequest)
	}
	return domain.Deleted(domain.MessageSuccessRemoveIngredient)
}
