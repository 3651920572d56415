package auth

import "github.com/wishlane-app/wishlane-backend/internal/users"

// SignupRequest registers a new profile.
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	FullName string `json:"full_name" validate:"omitempty,max=120"`
}

// LoginRequest carries credentials for token issuance.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the bearer token plus the authenticated profile.
type LoginResponse struct {
	AccessToken string           `json:"token"`
	User        users.ProfileDTO `json:"user"`
}
