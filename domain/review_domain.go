package domain

import (
	"errors"
	"time"
)

const (
	MinRating = 1
	MaxRating = 5
)

var (
	MessageSuccessGetReviews   = "success get reviews"
	MessageSuccessCreateReview = "review added successfully"
	MessageSuccessUpdateReview = "review updated successfully"
	MessageSuccessDeleteReview = "review deleted successfully"
	MessageReviewNotFound      = "review not found"
	MessageReviewRatingRange   = "rating must be between 1 and 5"
	MessageReviewNotAuthor     = "only the author or an admin can change this review"
	MessageFailedCreateReview  = "error adding review"
	MessageFailedUpdateReview  = "error updating review"
	MessageFailedDeleteReview  = "error deleting review"

	ErrReviewNotFound = errors.New("review not found")
)

type (
	// ReviewRequest carries only the client-editable fields. Movie, user and
	// date are supplied by the caller context.
	ReviewRequest struct {
		Rating     int    `json:"rating" form:"rating" validate:"required,min=1,max=5"`
		ReviewText string `json:"review_text" form:"review_text" validate:"max=4000"`
	}

	Review struct {
		ID         uint      `json:"id"`
		MovieID    uint      `json:"movie_id"`
		UserID     uint      `json:"user_id"`
		UserName   string    `json:"user_name,omitempty"`
		Rating     int       `json:"rating"`
		ReviewText string    `json:"review_text"`
		ReviewDate time.Time `json:"review_date"`
	}
)
