package domain

import (
	"errors"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var (
	MesaageUserNotAllowed       = "user not allowed"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"
	MessageInvalidID            = "invalid id parameter"
	MessageIDMismatch           = "id in path does not match id in body"
	MessageFormTokenInvalid     = "form token missing or invalid, reload the page and try again"

	ErrValidation     = errors.New("validation failed")
	ErrPersistence    = errors.New("persistence failure")
	ErrInvalidID      = errors.New("invalid id")
	ErrIDMismatch     = errors.New("id mismatch")
	ErrUserNotAllowed = errors.New("user not allowed")
	ErrForbidden      = errors.New("forbidden")
	ErrTokenNotFound  = errors.New("failed to token not found")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")
)

// Actor is the signed-in user performing an operation.
type Actor struct {
	UserID uint
	Role   string
}

// CanModify reports whether the actor may change a row owned by ownerID.
func (a Actor) CanModify(ownerID uint) bool {
	if a.Role == RoleAdmin {
		return true
	}
	return a.UserID != 0 && a.UserID == ownerID
}
