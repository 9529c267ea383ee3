package service

import (
	"context"

	"microblog-backend/internal/domains/user/model"
)

type ServiceInterface interface {
	// Signup registers a new account
	Signup(ctx context.Context, req model.SignupRequest) (*model.UserDTO, error)

	// Login verifies credentials and issues tokens
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
}
