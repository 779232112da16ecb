package movie

import (
	"DishAndMovie/domain"
	"DishAndMovie/entities"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	MovieRepository interface {
		GetMovies(ctx context.Context, p domain.Pagination) ([]entities.Movie, error)
		CountMovies(ctx context.Context) (int64, error)
		GetMovieByID(ctx context.Context, id uint) (*entities.Movie, error)
		GetMoviesByOrigin(ctx context.Context, originID uint) ([]entities.Movie, error)
		GetRecipesByOrigin(ctx context.Context, originID uint) ([]entities.Recipe, error)

		// CreateMovie and UpdateMovie return the requested genre ids that do
		// not exist; those are skipped rather than linked.
		CreateMovie(ctx context.Context, movie *entities.Movie, genreIDs []uint) ([]uint, error)
		UpdateMovie(ctx context.Context, movie *entities.Movie, genreIDs []uint) ([]uint, error)
		DeleteMovie(ctx context.Context, id uint) error
	}

	movieRepository struct {
		db *gorm.DB
	}
)

func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &movieRepository{
		db: db,
	}
}

func (r *movieRepository) withDetails(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Origin").
		Preload("MovieGenres.Genre")
}

func (r *movieRepository) GetMovies(ctx context.Context, p domain.Pagination) ([]entities.Movie, error) {
	var movies []entities.Movie
	if err := r.withDetails(ctx).
		Order("id ASC").
		Offset(p.Skip).
		Limit(p.PerPage).
		Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *movieRepository) CountMovies(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Movie{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *movieRepository) GetMovieByID(ctx context.Context, id uint) (*entities.Movie, error) {
	var movie entities.Movie
	if err := r.withDetails(ctx).Where("id = ?", id).First(&movie).Error; err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) GetMoviesByOrigin(ctx context.Context, originID uint) ([]entities.Movie, error) {
	var movies []entities.Movie
	if err := r.withDetails(ctx).
		Where("origin_id = ?", originID).
		Order("id ASC").
		Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *movieRepository) GetRecipesByOrigin(ctx context.Context, originID uint) ([]entities.Recipe, error) {
	var recipes []entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("origin_id = ?", originID).
		Order("id ASC").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *movieRepository) CreateMovie(ctx context.Context, movie *entities.Movie, genreIDs []uint) ([]uint, error) {
	var ignored []uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(movie).Error; err != nil {
			return err
		}
		var err error
		ignored, err = linkGenres(tx, movie.ID, genreIDs)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ignored, nil
}

func (r *movieRepository) UpdateMovie(ctx context.Context, movie *entities.Movie, genreIDs []uint) ([]uint, error) {
	var ignored []uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(movie).Error; err != nil {
			return err
		}
		if genreIDs == nil {
			return nil
		}
		if err := tx.Where("movie_id = ?", movie.ID).Delete(&entities.MovieGenre{}).Error; err != nil {
			return err
		}
		var err error
		ignored, err = linkGenres(tx, movie.ID, genreIDs)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ignored, nil
}

func (r *movieRepository) DeleteMovie(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("movie_id = ?", id).Delete(&entities.MovieGenre{}).Error; err != nil {
			return err
		}
		if err := tx.Where("movie_id = ?", id).Delete(&entities.Review{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&entities.Movie{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// linkGenres inserts one MovieGenre row per distinct requested id that
// exists and returns the ids that were skipped.
func linkGenres(tx *gorm.DB, movieID uint, genreIDs []uint) ([]uint, error) {
	if len(genreIDs) == 0 {
		return nil, nil
	}

	var found []uint
	if err := tx.Model(&entities.Genre{}).Where("id IN ?", genreIDs).Pluck("id", &found).Error; err != nil {
		return nil, err
	}
	exists := make(map[uint]bool, len(found))
	for _, id := range found {
		exists[id] = true
	}

	var (
		rows    []entities.MovieGenre
		ignored []uint
		seen    = make(map[uint]bool, len(genreIDs))
	)
	for _, id := range genreIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		if !exists[id] {
			ignored = append(ignored, id)
			continue
		}
		rows = append(rows, entities.MovieGenre{MovieID: movieID, GenreID: id})
	}

	if len(rows) > 0 {
		if err := tx.Omit(clause.Associations).Create(&rows).Error; err != nil {
			return nil, err
		}
	}
	return ignored, nil
}
