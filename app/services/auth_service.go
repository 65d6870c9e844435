package services

import (
	"errors"
	"fmt"

	"github.com/freshpress/freshpress/app/models"
	"github.com/freshpress/freshpress/app/repositories"
	"github.com/freshpress/freshpress/pkg/auth"
)

// ErrInvalidCredentials is returned when email/password do not match.
var ErrInvalidCredentials = errors.New("invalid email or password")

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	FullName string `json:"fullName" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse carries the session token and the identity it proves.
type AuthResponse struct {
	Token    string `json:"token"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	FullName string `json:"fullName"`
}

type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService() *AuthService {
	return &AuthService{users: repositories.NewUserRepository()}
}

// Register creates a new admin account and returns a signed token for it.
// Duplicate emails are rejected.
func (s *AuthService) Register(req RegisterRequest) (AuthResponse, error) {
	taken, err := s.users.ExistsByEmail(req.Email)
	if err != nil {
		return AuthResponse{}, fmt.Errorf("auth: check email: %w", err)
	}
	if taken {
		return AuthResponse{}, fmt.Errorf("email already registered: %s", req.Email)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return AuthResponse{}, fmt.Errorf("auth: hash password: %w", err)
	}

	user := models.User{
		FullName: req.FullName,
		Email:    req.Email,
		Password: hash,
		Role:     "ADMIN",
	}
	if err := s.users.Create(&user); err != nil {
		return AuthResponse{}, fmt.Errorf("auth: create user: %w", err)
	}

	return s.respond(user)
}

// Login verifies credentials and returns a signed token.
func (s *AuthService) Login(req LoginRequest) (AuthResponse, error) {
	user, err := s.users.FindByEmail(req.Email)
	if err != nil {
		return AuthResponse{}, ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return AuthResponse{}, ErrInvalidCredentials
	}

	return s.respond(user)
}

func (s *AuthService) respond(user models.User) (AuthResponse, error) {
	token, err := auth.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return AuthResponse{}, fmt.Errorf("auth: sign token: %w", err)
	}

	return AuthResponse{
		Token:    token,
		Email:    user.Email,
		Role:     user.Role,
		FullName: user.FullName,
	}, nil
}
