package review

import (
	"DishAndMovie/entities"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	ReviewRepository interface {
		GetReviewsByMovie(ctx context.Context, movieID uint) ([]entities.Review, error)
		GetReviewByID(ctx context.Context, id uint) (*entities.Review, error)
		CreateReview(ctx context.Context, review *entities.Review) error
		UpdateReviewContent(ctx context.Context, id uint, rating int, text string) error
		DeleteReview(ctx context.Context, id uint) error
	}

	reviewRepository struct {
		db *gorm.DB
	}
)

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

func (r *reviewRepository) GetReviewsByMovie(ctx context.Context, movieID uint) ([]entities.Review, error) {
	var reviews []entities.Review
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("movie_id = ?", movieID).
		Order("id ASC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) GetReviewByID(ctx context.Context, id uint) (*entities.Review, error) {
	var review entities.Review
	if err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) CreateReview(ctx context.Context, review *entities.Review) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(review).Error
}

// UpdateReviewContent writes rating and review_text only. Movie, author and
// date are never touched by an update.
func (r *reviewRepository) UpdateReviewContent(ctx context.Context, id uint, rating int, text string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Review{}).
		Where("id = ?", id).
		Select("rating", "review_text").
		Updates(entities.Review{Rating: rating, ReviewText: text}).Error
}

func (r *reviewRepository) DeleteReview(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Review{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
