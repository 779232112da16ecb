package review

import (
	"DishAndMovie/domain"
	"DishAndMovie/entities"
	"DishAndMovie/pkg/movie"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type (
	ReviewService interface {
		ListReviewsByMovie(ctx context.Context, movieID uint) ([]domain.Review, error)
		FindReview(ctx context.Context, id uint) (*domain.Review, error)
		AddReview(ctx context.Context, movieID, userID uint, req domain.ReviewRequest) domain.ServiceResponse
		UpdateReview(ctx context.Context, movieID, reviewID uint, actor domain.Actor, req domain.ReviewRequest) domain.ServiceResponse
		DeleteReview(ctx context.Context, id uint, actor domain.Actor) domain.ServiceResponse
	}

	reviewService struct {
		reviewRepository ReviewRepository
		movieRepository  movie.MovieRepository
		now              func() time.Time
	}
)

func NewReviewService(reviewRepository ReviewRepository, movieRepository movie.MovieRepository) ReviewService {
	return &reviewService{
		reviewRepository: reviewRepository,
		movieRepository:  movieRepository,
		now:              time.Now,
	}
}

func toReview(r entities.Review) domain.Review {
	dto := domain.Review{
		ID:         r.ID,
		MovieID:    r.MovieID,
		UserID:     r.UserID,
		Rating:     r.Rating,
		ReviewText: r.ReviewText,
		ReviewDate: r.ReviewDate,
	}
	if r.User != nil {
		dto.UserName = r.User.UserName
	}
	return dto
}

func validRating(rating int) bool {
	return rating >= domain.MinRating && rating <= domain.MaxRating
}

func (s *reviewService) ListReviewsByMovie(ctx context.Context, movieID uint) ([]domain.Review, error) {
	reviews, err := s.reviewRepository.GetReviewsByMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Review, 0, len(reviews))
	for _, r := range reviews {
		result = append(result, toReview(r))
	}
	return result, nil
}

func (s *reviewService) FindReview(ctx context.Context, id uint) (*domain.Review, error) {
	r, err := s.reviewRepository.GetReviewByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, err
	}
	res := toReview(*r)
	return &res, nil
}

// AddReview stamps the review date with the server clock.
func (s *reviewService) AddReview(ctx context.Context, movieID, userID uint, req domain.ReviewRequest) domain.ServiceResponse {
	if !validRating(req.Rating) {
		return domain.Invalid(domain.MessageReviewRatingRange)
	}

	if _, err := s.movieRepository.GetMovieByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFound(domain.MessageMovieNotFound)
		}
		return domain.Failed(err, domain.MessageFailedCreateReview)
	}

	r := entities.Review{
		MovieID:    movieID,
		UserID:     userID,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
		ReviewDate: s.now(),
	}
	if err := s.reviewRepository.CreateReview(ctx, &r); err != nil {
		return domain.Failed(err, domain.MessageFailedCreateReview)
	}
	return domain.Created(r.ID, domain.MessageSuccessCreateReview)
}

// UpdateReview changes rating and text of a review belonging to movieID.
// Only the author or an admin may do so.
func (s *reviewService) UpdateReview(ctx context.Context, movieID, reviewID uint, actor domain.Actor, req domain.ReviewRequest) domain.ServiceResponse {
	if !validRating(req.Rating) {
		return domain.Invalid(domain.MessageReviewRatingRange)
	}

	r, err := s.reviewRepository.GetReviewByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFound(domain.MessageReviewNotFound)
		}
		return domain.Failed(err, domain.MessageFailedUpdateReview)
	}
	if r.MovieID != movieID {
		return domain.NotFound(domain.MessageReviewNotFound)
	}
	if !actor.CanModify(r.UserID) {
		return domain.Forbidden(domain.MessageReviewNotAuthor)
	}

	if err := s.reviewRepository.UpdateReviewContent(ctx, reviewID, req.Rating, req.ReviewText); err != nil {
		return domain.Failed(err, domain.MessageFailedUpdateReview)
	}
	return domain.Updated(domain.MessageSuccessUpdateReview)
}

// DeleteReview removes a review by id whatever movie it belongs to. Only the
// author or an admin may do so.
func (s *reviewService) DeleteReview(ctx context.Context, id uint, actor domain.Actor) domain.ServiceResponse {
	r, err := s.reviewRepository.GetReviewByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFound(domain.MessageReviewNotFound)
		}
		return domain.Failed(err, domain.MessageFailedDeleteReview)
	}
	if !actor.CanModify(r.UserID) {
		return domain.Forbidden(domain.MessageReviewNotAuthor)
	}

	if err := s.reviewRepository.DeleteReview(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFound(domain.MessageReviewNotFound)
		}
		return domain.Failed(err, domain.MessageFailedDeleteReview)
	}
	return domain.Deleted(domain.MessageSuccessDeleteReview)
}
