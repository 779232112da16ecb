package origin

import (
	"DishAndMovie/domain"
	"DishAndMovie/entities"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type (
	OriginService interface {
		ListOrigins(ctx context.Context, p domain.Pagination) ([]domain.Origin, error)
		CountOrigins(ctx context.Context) (int64, error)
		FindOrigin(ctx context.Context, id uint) (*domain.Origin, error)
		AddOrigin(ctx context.Context, req domain.OriginRequest) domain.ServiceResponse
		UpdateOrigin(ctx context.Context, id uint, req domain.OriginRequest) domain.ServiceResponse
		DeleteOrigin(ctx context.Context, id uint) domain.ServiceResponse
	}

	originService struct {
		originRepository OriginRepository
	}
)

func NewOriginService(originRepository OriginRepository) OriginService {
	return &originService{
		originRepository: originRepository,
	}
}

func toOrigin(o entities.Origin) domain.Origin {
	return domain.Origin{ID: o.ID, Country: o.Country}
}

func (s *originService) ListOrigins(ctx context.Context, p domain.Pagination) ([]domain.Origin, error) {
	origins, err := s.originRepository.GetOrigins(ctx, p)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Origin, 0, len(origins))
	for _, o := range origins {
		result = append(result, toOrigin(o))
	}
	return result, nil
}

func (s *originService) CountOrigins(ctx context.Context) (int64, error) {
	return s.originRepository.CountOrigins(ctx)
}

func (s *originService) FindOrigin(ctx context.Context, id uint) (*domain.Origin, error) {
	o, err := s.originRepository.GetOriginByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOriginNotFound
		}
		return nil, err
	}
	res := toOrigin(*o)
	return &res, nil
}

func (s *originService) AddOrigin(ctx context.Context, req domain.OriginRequest) domain.ServiceResponse {
	country := strings.TrimSpace(req.Country)
	if country == "" {
		return domain.Invalid(domain.MessageOriginCountryRequired)
	}

	o := entities.Origin{Country: country}
	if err := s.originRepository.CreateOrigin(ctx, &o); err != nil {
		return domain.Failed(err, domain.MessageFailedCreateOrigin)
	}
	return domain.Created(o.ID, domain.MessageSuccessCreateOrigin)
}

func (s *originService) UpdateOrigin(ctx context.Context, id uint, req domain.OriginRequest) domain.ServiceResponse {
	country := strings.TrimSpace(req.Country)
	if country == "" {
		return domain.Invalid(domain.MessageOriginCountryRequired)
	}

	o, err := s.originRepository.GetOriginByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFound(domain.MessageOriginNotFound)
		}
		return domain.Failed(err, domain.MessageFailedUpdateOrigin)
	}

	o.Country = country
	if err := s.originRepository.UpdateOrigin(ctx, o); err != nil {
		return domain.Failed(err, domain.MessageFailedUpdateOrigin)
	}
	return domain.Updated(domain.MessageSuccessUpdateOrigin)
}

func (s *originService) DeleteOrigin(ctx context.Context, id uint) domain.ServiceResponse {
	if err := s.originRepository.DeleteOrigin(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFound(domain.MessageOriginNotFound)
		}
		return domain.Failed(err, domain.MessageFailedDeleteOrigin)
	}
	return domain.Deleted(domain.MessageSuccessDeleteOrigin)
}
