package models

import "time"

// SignUpRequest is the payload of POST /api/auth/signup.
type SignUpRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Name     string `json:"name" validate:"max=128"`
	Role     Role   `json:"role" validate:"omitempty,oneof=USER ADMIN"`
}

// LoginRequest is the payload of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// GoogleLoginRequest carries the authorization code obtained by the
// frontend from Google's consent screen.
type GoogleLoginRequest struct {
	Code string `json:"code" validate:"required"`
}

// AuthResponse is returned by every successful authentication call.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}
