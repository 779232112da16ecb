package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ServiceStatus is the outcome of a mutating service operation.
type ServiceStatus int

const (
	StatusNotFound ServiceStatus = iota
	StatusCreated
	StatusUpdated
	StatusDeleted
	StatusError
)

var serviceStatusNames = [...]string{"NotFound", "Created", "Updated", "Deleted", "Error"}

func (s ServiceStatus) String() string {
	if int(s) < 0 || int(s) >= len(serviceStatusNames) {
		return fmt.Sprintf("ServiceStatus(%d)", int(s))
	}
	return serviceStatusNames[s]
}

func (s ServiceStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// ServiceResponse is returned by every create, update and delete operation.
// CreatedID is only set for StatusCreated. Err classifies a StatusError
// result and is never serialized.
type ServiceResponse struct {
	Status    ServiceStatus `json:"status"`
	CreatedID uint          `json:"created_id,omitempty"`
	Messages  []string      `json:"messages"`
	Err       error         `json:"-"`
}

func messages(msgs []string) []string {
	if msgs == nil {
		return []string{}
	}
	return msgs
}

func Created(id uint, msgs ...string) ServiceResponse {
	return ServiceResponse{Status: StatusCreated, CreatedID: id, Messages: messages(msgs)}
}

func Updated(msgs ...string) ServiceResponse {
	return ServiceResponse{Status: StatusUpdated, Messages: messages(msgs)}
}

func Deleted(msgs ...string) ServiceResponse {
	return ServiceResponse{Status: StatusDeleted, Messages: messages(msgs)}
}

func NotFound(msgs ...string) ServiceResponse {
	return ServiceResponse{Status: StatusNotFound, Messages: messages(msgs)}
}

// Invalid reports a rejected request: a missing required field or a
// duplicate association.
func Invalid(msgs ...string) ServiceResponse {
	return ServiceResponse{Status: StatusError, Messages: messages(msgs), Err: ErrValidation}
}

// Forbidden reports an operation the actor is not allowed to perform.
func Forbidden(msgs ...string) ServiceResponse {
	return ServiceResponse{Status: StatusError, Messages: messages(msgs), Err: ErrForbidden}
}

// Failed reports a storage failure. The message is prefixed onto the
// underlying error text.
func Failed(err error, prefix string) ServiceResponse {
	return ServiceResponse{
		Status:   StatusError,
		Messages: []string{prefix + ": " + err.Error()},
		Err:      fmt.Errorf("%w: %w", ErrPersistence, err),
	}
}

func (r ServiceResponse) IsValidationError() bool {
	return r.Status == StatusError && errors.Is(r.Err, ErrValidation)
}

func (r ServiceResponse) IsForbidden() bool {
	return r.Status == StatusError && errors.Is(r.Err, ErrForbidden)
}
