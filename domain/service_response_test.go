package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceResponseJSON(t *testing.T) {
	body, err := json.Marshal(Created(7, "created"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"Created","created_id":7,"messages":["created"]}`, string(body))

	body, err = json.Marshal(Deleted())
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"Deleted","messages":[]}`, string(body))
}

func TestServiceResponseClassification(t *testing.T) {
	invalid := Invalid("name is required")
	assert.Equal(t, StatusError, invalid.Status)
	assert.True(t, invalid.IsValidationError())

	cause := errors.New("disk full")
	failed := Failed(cause, "error adding")
	assert.Equal(t, StatusError, failed.Status)
	assert.False(t, failed.IsValidationError())
	assert.ErrorIs(t, failed.Err, ErrPersistence)
	assert.ErrorIs(t, failed.Err, cause)
	assert.Equal(t, []string{"error adding: disk full"}, failed.Messages)

	assert.False(t, NotFound("missing").IsValidationError())
	assert.Equal(t, "NotFound", StatusNotFound.String())
}

func TestForbiddenIsNeitherValidationNorPersistence(t *testing.T) {
	res := Forbidden("nope")
	assert.Equal(t, StatusError, res.Status)
	assert.True(t, res.IsForbidden())
	assert.False(t, res.IsValidationError())
	assert.NotErrorIs(t, res.Err, ErrPersistence)
}

func TestActorCanModify(t *testing.T) {
	tests := []struct {
		name  string
		actor Actor
		owner uint
		want  bool
	}{
		{"author", Actor{UserID: 3, Role: RoleUser}, 3, true},
		{"other user", Actor{UserID: 4, Role: RoleUser}, 3, false},
		{"admin", Actor{UserID: 4, Role: RoleAdmin}, 3, true},
		{"anonymous", Actor{}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.actor.CanModify(tt.owner))
		})
	}
}
