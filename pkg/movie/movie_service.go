package movie

import (
	"DishAndMovie/domain"
	"DishAndMovie/entities"
	"DishAndMovie/internal/utils/storage"
	"DishAndMovie/pkg/origin"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type (
	MovieService interface {
		ListMovies(ctx context.Context, p domain.Pagination) ([]domain.Movie, error)
		CountMovies(ctx context.Context) (int64, error)
		FindMovie(ctx context.Context, id uint) (*domain.Movie, error)
		GetMoviesByOrigin(ctx context.Context, originID uint) ([]domain.Movie, error)
		AddMovie(ctx context.Context, req domain.MovieRequest) domain.ServiceResponse
		UpdateMovie(ctx context.Context, id uint, req domain.MovieRequest) domain.ServiceResponse
		DeleteMovie(ctx context.Context, id uint) domain.ServiceResponse
	}

	movieService struct {
		movieRepository  MovieRepository
		originRepository origin.OriginRepository
		storage          storage.FileStorage
	}
)

func NewMovieService(
	movieRepository MovieRepository,
	originRepository origin.OriginRepository,
	storage storage.FileStorage,
) MovieService {
	return &movieService{
		movieRepository:  movieRepository,
		originRepository: originRepository,
		storage:          storage,
	}
}

func toMovie(m entities.Movie) domain.Movie {
	dto := domain.Movie{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		ReleaseDate: time.Time(m.ReleaseDate).Format(domain.DateLayout),
		PosterURL:   m.PosterURL,
		Director:    m.Director,
		OriginID:    m.OriginID,
		GenreIDs:    []uint{},
		GenreNames:  []string{},
	}
	if m.Origin != nil {
		dto.OriginCountry = m.Origin.Country
	}

	links := slices.Clone(m.MovieGenres)
	slices.SortFunc(links, func(a, b entities.MovieGenre) int {
		return int(a.GenreID) - int(b.GenreID)
	})
	for _, mg := range links {
		dto.GenreIDs = append(dto.GenreIDs, mg.GenreID)
		if mg.Genre != nil {
			dto.GenreNames = append(dto.GenreNames, mg.Genre.Name)
		}
	}
	return dto
}

func toMovies(movies []entities.Movie) []domain.Movie {
	result := make([]domain.Movie, 0, len(movies))
	for _, m := range movies {
		result = append(result, toMovie(m))
	}
	return result
}

func (s *movieService) ListMovies(ctx context.Context, p domain.Pagination) ([]domain.Movie, error) {
	movies, err := s.movieRepository.GetMovies(ctx, p)
	if err != nil {
		return nil, err
	}
	return toMovies(movies), nil
}

func (s *movieService) CountMovies(ctx context.Context) (int64, error) {
	return s.movieRepository.CountMovies(ctx)
}

func (s *movieService) FindMovie(ctx context.Context, id uint) (*domain.Movie, error) {
	m, err := s.movieRepository.GetMovieByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, err
	}

	// Recipes are matched by origin at read time; nothing links them.
	recipes, err := s.movieRepository.GetRecipesByOrigin(ctx, m.OriginID)
	if err != nil {
		return nil, err
	}

	res := toMovie(*m)
	res.RecipesFromSameOrigin = make([]domain.RecipeSummary, 0, len(recipes))
	for _, r := range recipes {
		res.RecipesFromSameOrigin = append(res.RecipesFromSameOrigin, domain.RecipeSummary{ID: r.ID, Name: r.Name})
	}
	return &res, nil
}

func (s *movieService) GetMoviesByOrigin(ctx context.Context, originID uint) ([]domain.Movie, error) {
	movies, err := s.movieRepository.GetMoviesByOrigin(ctx, originID)
	if err != nil {
		return nil, err
	}
	return toMovies(movies), nil
}

// validate checks the scalar fields shared by add and update.
func (s *movieService) validate(ctx context.Context, req domain.MovieRequest) (string, datatypes.Date, *domain.ServiceResponse) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		res := domain.Invalid(domain.MessageMovieTitleRequired)
		return "", datatypes.Date{}, &res
	}
	if utf8.RuneCountInString(title) > 255 {
		res := domain.Invalid(domain.MessageMovieTitleTooLong)
		return "", datatypes.Date{}, &res
	}

	released, err := time.Parse(domain.DateLayout, req.ReleaseDate)
	if err != nil {
		res := domain.Invalid(domain.MessageMovieDateInvalid)
		return "", datatypes.Date{}, &res
	}

	if _, err := s.originRepository.GetOriginByID(ctx, req.OriginID); err != nil {
		res := domain.NotFound(domain.MessageOriginNotFound)
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			res = domain.Failed(err, domain.MessageFailedProcessRequest)
		}
		return "", datatypes.Date{}, &res
	}
	return title, datatypes.Date(released), nil
}

func withIgnoredGenres(res domain.ServiceResponse, ignored []uint) domain.ServiceResponse {
	if len(ignored) > 0 {
		res.Messages = append(res.Messages, fmt.Sprintf(domain.MessageGenresIgnored, ignored))
	}
	return res
}

func (s *movieService) AddMovie(ctx context.Context, req domain.MovieRequest) domain.ServiceResponse {
	title, released, invalid := s.validate(ctx, req)
	if invalid != nil {
		return *invalid
	}

	posterURL := req.PosterURL
	stored, err := s.storage.Save(ctx, req.Poster, storage.FolderMovies)
	if err != nil {
		return domain.Failed(err, domain.MessageFailedStorePoster)
	}
	if stored != "" {
		posterURL = stored
	}

	m := entities.Movie{
		Title:       title,
		Description: req.Description,
		ReleaseDate: released,
		PosterURL:   posterURL,
		Director:    strings.TrimSpace(req.Director),
		OriginID:    req.OriginID,
	}
	ignored, err := s.movieRepository.CreateMovie(ctx, &m, req.GenreIDs)
	if err != nil {
		s.storage.Delete(ctx, stored)
		return domain.Failed(err, domain.MessageFailedCreateMovie)
	}
	return withIgnoredGenres(domain.Created(m.ID, domain.MessageSuccessCreateMovie), ignored)
}

func (s *movieService) UpdateMovie(ctx context.Context, id uint, req domain.MovieRequest) domain.ServiceResponse {
	m, err := s.movieRepository.GetMovieByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFound(domain.MessageMovieNotFound)
		}
		return domain.Failed(err, domain.MessageFailedUpdateMovie)
	}

	title, released, invalid := s.validate(ctx, req)
	if invalid != nil {
		return *invalid
	}

	oldPoster := m.PosterURL
	switch {
	case req.RemoveImage:
		m.PosterURL = ""
	case req.Poster != nil && req.Poster.Size > 0:
		stored, err := s.storage.Save(ctx, req.Poster, storage.FolderMovies)
		if err != nil {
			return domain.Failed(err, domain.MessageFailedStorePoster)
		}
		m.PosterURL = stored
	case req.PosterURL != "":
		m.PosterURL = req.PosterURL
	}

	m.Title = title
	m.Description = req.Description
	m.ReleaseDate = released
	m.Director = strings.TrimSpace(req.Director)
	m.OriginID = req.OriginID
	m.Origin = nil
	m.MovieGenres = nil

	ignored, err := s.movieRepository.UpdateMovie(ctx, m, req.GenreIDs)
	if err != nil {
		if m.PosterURL != oldPoster {
			s.storage.Delete(ctx, m.PosterURL)
		}
		return domain.Failed(err, domain.MessageFailedUpdateMovie)
	}
	if oldPoster != "" && m.PosterURL != oldPoster {
		s.storage.Delete(ctx, oldPoster)
	}
	return withIgnoredGenres(domain.Updated(domain.MessageSuccessUpdateMovie), ignored)
}

func (s *movieService) DeleteMovie(ctx context.Context, id uint) domain.ServiceResponse {
	m, err := s.movieRepository.GetMovieByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFound(domain.MessageMovieNotFound)
		}
		return domain.Failed(err, domain.MessageFailedDeleteMovie)
	}

	if err := s.movieRepository.DeleteMovie(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFound(domain.MessageMovieNotFound)
		}
		return domain.Failed(err, domain.MessageFailedDeleteMovie)
	}
	s.storage.Delete(ctx, m.PosterURL)
	return domain.Deleted(domain.MessageSuccessDeleteMovie)
}
