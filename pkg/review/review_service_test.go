package review

import (
	"DishAndMovie/domain"
	"DishAndMovie/internal/testutil"
	"DishAndMovie/pkg/movie"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewService(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	svc := NewReviewService(NewReviewRepository(db), movie.NewMovieRepository(db))
	fixed := time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)
	svc.(*reviewService).now = func() time.Time { return fixed }

	o := testutil.CreateOrigin(t, db, "UK")
	m := testutil.CreateMovie(t, db, "Paddington", o.ID)
	other := testutil.CreateMovie(t, db, "Brazil", o.ID)
	u := testutil.CreateUser(t, db, "reviewer@example.com", "secret123")
	author := domain.Actor{UserID: u.ID, Role: domain.RoleUser}

	res := svc.AddReview(ctx, m.ID, u.ID, domain.ReviewRequest{Rating: 4, ReviewText: "Marmalade"})
	require.Equal(t, domain.StatusCreated, res.Status)
	id := res.CreatedID

	r, err := svc.FindReview(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, m.ID, r.MovieID)
	assert.Equal(t, u.ID, r.UserID)
	assert.True(t, fixed.Equal(r.ReviewDate))

	assert.True(t, svc.AddReview(ctx, m.ID, u.ID, domain.ReviewRequest{Rating: 0}).IsValidationError())
	assert.True(t, svc.AddReview(ctx, m.ID, u.ID, domain.ReviewRequest{Rating: 6}).IsValidationError())
	assert.Equal(t, domain.StatusNotFound, svc.AddReview(ctx, 999, u.ID, domain.ReviewRequest{Rating: 3}).Status)

	assert.Equal(t, domain.StatusNotFound, svc.UpdateReview(ctx, other.ID, id, author, domain.ReviewRequest{Rating: 1}).Status)

	require.Equal(t, domain.StatusUpdated, svc.UpdateReview(ctx, m.ID, id, author, domain.ReviewRequest{Rating: 2, ReviewText: "Too sticky"}).Status)
	r, err = svc.FindReview(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Rating)
	assert.Equal(t, "Too sticky", r.ReviewText)
	assert.Equal(t, u.ID, r.UserID)
	assert.True(t, fixed.Equal(r.ReviewDate))

	reviews, err := svc.ListReviewsByMovie(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "reviewer@example.com", reviews[0].UserName)

	require.Equal(t, domain.StatusDeleted, svc.DeleteReview(ctx, id, author).Status)
	assert.Equal(t, domain.StatusNotFound, svc.DeleteReview(ctx, id, author).Status)
	_, err = svc.FindReview(ctx, id)
	assert.ErrorIs(t, err, domain.ErrReviewNotFound)
}

func TestReviewService_OnlyAuthorOrAdminMayChange(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	svc := NewReviewService(NewReviewRepository(db), movie.NewMovieRepository(db))

	o := testutil.CreateOrigin(t, db, "Canada")
	m := testutil.CreateMovie(t, db, "Arrival", o.ID)
	author := testutil.CreateUser(t, db, "author@example.com", "secret123")
	stranger := testutil.CreateUser(t, db, "stranger@example.com", "secret123")
	r := testutil.CreateReview(t, db, m.ID, author.ID, 5)

	intruder := domain.Actor{UserID: stranger.ID, Role: domain.RoleUser}
	admin := domain.Actor{UserID: stranger.ID, Role: domain.RoleAdmin}

	res := svc.UpdateReview(ctx, m.ID, r.ID, intruder, domain.ReviewRequest{Rating: 1})
	assert.True(t, res.IsForbidden())
	assert.Equal(t, []string{domain.MessageReviewNotAuthor}, res.Messages)
	assert.True(t, svc.DeleteReview(ctx, r.ID, intruder).IsForbidden())
	assert.True(t, svc.DeleteReview(ctx, r.ID, domain.Actor{}).IsForbidden())

	found, err := svc.FindReview(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, found.Rating)

	require.Equal(t, domain.StatusUpdated, svc.UpdateReview(ctx, m.ID, r.ID, admin, domain.ReviewRequest{Rating: 3}).Status)
	require.Equal(t, domain.StatusDeleted, svc.DeleteReview(ctx, r.ID, admin).Status)
	assert.Equal(t, domain.StatusNotFound, svc.DeleteReview(ctx, r.ID, admin).Status)
}
