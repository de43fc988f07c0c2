package usecase

import (
	"context"

	"rental/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new user.
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the account and an access token.
type AuthOutput struct {
	AccessToken string
	User        *entity.User
}

// UserUsecase defines the interface for account operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
}
