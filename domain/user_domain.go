package domain

import "errors"

var (
	MessageSuccessGetUser  = "success get user"
	MessageSuccessRegister = "user registered successfully"
	MessageSuccessLogin    = "login successful"
	MessageSuccessLogout   = "logout successful"
	MessageFailedRegister  = "failed to register user"
	MessageFailedLogin     = "failed to login"

	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

type (
	RegisterRequest struct {
		Email    string `json:"email" form:"email" validate:"required,email"`
		UserName string `json:"user_name" form:"user_name" validate:"required,max=100"`
		Password string `json:"password" form:"password" validate:"required,min=8"`
	}

	LoginRequest struct {
		Email    string `json:"email" form:"email" validate:"required,email"`
		Password string `json:"password" form:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	User struct {
		ID       uint   `json:"id"`
		Email    string `json:"email"`
		UserName string `json:"user_name"`
		Role     string `json:"role"`
	}
)
