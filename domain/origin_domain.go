package domain

import "errors"

var (
	MessageSuccessGetOrigins     = "success get origins"
	MessageSuccessCreateOrigin   = "origin created successfully"
	MessageSuccessUpdateOrigin   = "origin updated successfully"
	MessageSuccessDeleteOrigin   = "origin deleted successfully"
	MessageOriginNotFound        = "origin not found"
	MessageOriginCountryRequired = "origin country is required"
	MessageFailedCreateOrigin    = "an error occurred while adding the origin"
	MessageFailedUpdateOrigin    = "an error occurred while updating the origin"
	MessageFailedDeleteOrigin    = "an error occurred while deleting the origin"

	ErrOriginNotFound = errors.New("origin not found")
)

type (
	OriginRequest struct {
		ID      uint   `json:"id" form:"id"`
		Country string `json:"country" form:"country" validate:"required,max=100"`
	}

	Origin struct {
		ID      uint   `json:"id"`
		Country string `json:"country"`
	}
)
