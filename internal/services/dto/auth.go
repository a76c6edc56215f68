package dto

import "kilimopesa_backend/internal/models"

// RegisterRequest carries the fields needed to create an unverified account.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=150,username"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// VerifyEmailRequest deliberately leaves the code format unchecked: clients
// sometimes paste codes with surrounding whitespace, so the service trims
// before comparing and reports a mismatch as an invalid code.
type VerifyEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

type ResendVerificationRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public projection of a user. The password hash,
// verification code and activation flag never leave the server.
type UserResponse struct {
	ID              string `json:"id"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	IsEmailVerified bool   `json:"is_email_verified"`
}

func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:              user.ID,
		Username:        user.Username,
		Email:           user.Email,
		IsEmailVerified: user.IsEmailVerified,
	}
}

// RegisterResponse acknowledges account creation without issuing a session.
type RegisterResponse struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Message  string `json:"message"`
}

// AuthResponse is returned by login and by successful email verification.
type AuthResponse struct {
	Message     string       `json:"message"`
	User        UserResponse `json:"user"`
	AccessToken string       `json:"access_token"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ResendVerificationResponse echoes the address the new code went to.
type ResendVerificationResponse struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}
