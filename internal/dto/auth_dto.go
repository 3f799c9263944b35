package dto

import "github.com/google/uuid"

// SignupRequest represents the request to register a new account
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=100"`
	Username string `json:"username" binding:"required,min=2,max=50"`
}

// LoginRequest represents the request to authenticate
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthUserResponse is the identity summary returned by auth endpoints
type AuthUserResponse struct {
	UserID   uuid.UUID `json:"userId"`
	Email    string    `json:"email"`
	Username string    `json:"username"`
	IsAdmin  bool      `json:"isAdmin"`
}

// CSRFTokenResponse carries a freshly issued CSRF token
type CSRFTokenResponse struct {
	CSRFToken string `json:"csrfToken"`
}
