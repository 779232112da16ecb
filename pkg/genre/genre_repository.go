package genre

import (
	"DishAndMovie/domain"
	"DishAndMovie/entities"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	GenreRepository interface {
		GetGenres(ctx context.Context, p domain.Pagination) ([]entities.Genre, error)
		CountGenres(ctx context.Context) (int64, error)
		GetGenreByID(ctx context.Context, id uint) (*entities.Genre, error)
		CreateGenre(ctx context.Context, genre *entities.Genre) error
		UpdateGenre(ctx context.Context, genre *entities.Genre) error
		DeleteGenre(ctx context.Context, id uint) error
	}

	genreRepository struct {
		db *gorm.DB
	}
)

func NewGenreRepository(db *gorm.DB) GenreRepository {
	return &genreRepository{
		db: db,
	}
}

func (r *genreRepository) GetGenres(ctx context.Context, p domain.Pagination) ([]entities.Genre, error) {
	var genres []entities.Genre
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(p.Skip).
		Limit(p.PerPage).
		Find(&genres).Error; err != nil {
		return nil, err
	}
	return genres, nil
}

func (r *genreRepository) CountGenres(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Genre{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *genreRepository) GetGenreByID(ctx context.Context, id uint) (*entities.Genre, error) {
	var genre entities.Genre
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&genre).Error; err != nil {
		return nil, err
	}
	return &genre, nil
}

func (r *genreRepository) CreateGenre(ctx context.Context, genre *entities.Genre) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(genre).Error
}

func (r *genreRepository) UpdateGenre(ctx context.Context, genre *entities.Genre) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(genre).Error
}

func (r *genreRepository) DeleteGenre(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("genre_id = ?", id).Delete(&entities.MovieGenre{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&entities.Genre{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
