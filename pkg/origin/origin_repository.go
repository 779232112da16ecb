package origin

import (
	"DishAndMovie/domain"
	"DishAndMovie/entities"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	OriginRepository interface {
		GetOrigins(ctx context.Context, p domain.Pagination) ([]entities.Origin, error)
		CountOrigins(ctx context.Context) (int64, error)
		GetOriginByID(ctx context.Context, id uint) (*entities.Origin, error)
		CreateOrigin(ctx context.Context, origin *entities.Origin) error
		UpdateOrigin(ctx context.Context, origin *entities.Origin) error
		DeleteOrigin(ctx context.Context, id uint) error
	}

	originRepository struct {
		db *gorm.DB
	}
)

func NewOriginRepository(db *gorm.DB) OriginRepository {
	return &originRepository{
		db: db,
	}
}

func (r *originRepository) GetOrigins(ctx context.Context, p domain.Pagination) ([]entities.Origin, error) {
	var origins []entities.Origin
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(p.Skip).
		Limit(p.PerPage).
		Find(&origins).Error; err != nil {
		return nil, err
	}
	return origins, nil
}

func (r *originRepository) CountOrigins(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Origin{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *originRepository) GetOriginByID(ctx context.Context, id uint) (*entities.Origin, error) {
	var origin entities.Origin
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&origin).Error; err != nil {
		return nil, err
	}
	return &origin, nil
}

func (r *originRepository) CreateOrigin(ctx context.Context, origin *entities.Origin) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(origin).Error
}

func (r *originRepository) UpdateOrigin(ctx context.Context, origin *entities.Origin) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(origin).Error
}

// DeleteOrigin removes the origin together with every movie and recipe that
// references it, and their reviews, genre links and ingredient links.
func (r *originRepository) DeleteOrigin(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var movieIDs, recipeIDs []uint
		if err := tx.Model(&entities.Movie{}).Where("origin_id = ?", id).Pluck("id", &movieIDs).Error; err != nil {
			return err
		}
		if err := tx.Model(&entities.Recipe{}).Where("origin_id = ?", id).Pluck("id", &recipeIDs).Error; err != nil {
			return err
		}

		if len(recipeIDs) > 0 {
			if err := tx.Where("recipe_id IN ?", recipeIDs).Delete(&entities.RecipeIngredient{}).Error; err != nil {
				return err
			}
		}
		if len(movieIDs) > 0 {
			if err := tx.Where("movie_id IN ?", movieIDs).Delete(&entities.MovieGenre{}).Error; err != nil {
				return err
			}
			if err := tx.Where("movie_id IN ?", movieIDs).Delete(&entities.Review{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("origin_id = ?", id).Delete(&entities.Recipe{}).Error; err != nil {
			return err
		}
		if err := tx.Where("origin_id = ?", id).Delete(&entities.Movie{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&entities.Origin{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
