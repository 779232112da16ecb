package genre

import (
	"DishAndMovie/domain"
	"DishAndMovie/entities"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type (
	GenreService interface {
		ListGenres(ctx context.Context, p domain.Pagination) ([]domain.Genre, error)
		CountGenres(ctx context.Context) (int64, error)
		FindGenre(ctx context.Context, id uint) (*domain.Genre, error)
		AddGenre(ctx context.Context, req domain.GenreRequest) domain.ServiceResponse
		UpdateGenre(ctx context.Context, id uint, req domain.GenreRequest) domain.ServiceResponse
		DeleteGenre(ctx context.Context, id uint) domain.ServiceResponse
	}

	genreService struct {
		genreRepository GenreRepository
	}
)

func NewGenreService(genreRepository GenreRepository) GenreService {
	return &genreService{
		genreRepository: genreRepository,
	}
}

func (s *genreService) ListGenres(ctx context.Context, p domain.Pagination) ([]domain.Genre, error) {
	genres, err := s.genreRepository.GetGenres(ctx, p)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Genre, 0, len(genres))
	for _, g := range genres {
		result = append(result, domain.Genre{ID: g.ID, Name: g.Name})
	}
	return result, nil
}

func (s *genreService) CountGenres(ctx context.Context) (int64, error) {
	return s.genreRepository.CountGenres(ctx)
}

func (s *genreService) FindGenre(ctx context.Context, id uint) (*domain.Genre, error) {
	g, err := s.genreRepository.GetGenreByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGenreNotFound
		}
		return nil, err
	}
	return &domain.Genre{ID: g.ID, Name: g.Name}, nil
}

func (s *genreService) AddGenre(ctx context.Context, req domain.GenreRequest) domain.ServiceResponse {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Invalid(domain.MessageGenreNameRequired)
	}

	g := entities.Genre{Name: name}
	if err := s.genreRepository.CreateGenre(ctx, &g); err != nil {
		return domain.Failed(err, domain.MessageFailedCreateGenre)
	}
	return domain.Created(g.ID, domain.MessageSuccessCreateGenre)
}

func (s *genreService) UpdateGenre(ctx context.Context, id uint, req domain.GenreRequest) domain.ServiceResponse {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Invalid(domain.MessageGenreNameRequired)
	}

	g, err := s.genreRepository.GetGenreByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFound(domain.MessageGenreNotFound)
		}
		return domain.Failed(err, domain.MessageFailedUpdateGenre)
	}

	g.Name = name
	if err := s.genreRepository.UpdateGenre(ctx, g); err != nil {
		return domain.Failed(err, domain.MessageFailedUpdateGenre)
	}
	return domain.Updated(domain.MessageSuccessUpdateGenre)
}

func (s *genreService) DeleteGenre(ctx context.Context, id uint) domain.ServiceResponse {
	if err := s.genreRepository.DeleteGenre(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFound(domain.MessageGenreNotFound)
		}
		return domain.Failed(err, domain.MessageFailedDeleteGenre)
	}
	return domain.Deleted(domain.MessageSuccessDeleteGenre)
}
