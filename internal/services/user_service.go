package services

import (
	"context"
	"fmt"

	"house-hunter-server/internal/auth"
	apperrors "house-hunter-server/internal/errors"
	"house-hunter-server/internal/models"
	"house-hunter-server/internal/repositories"
	"house-hunter-server/internal/validators"

	"golang.org/x/crypto/bcrypt"
)

// UserService handles registration and login.
type UserService interface {
	Register(ctx context.Context, user *models.User) error
	Login(ctx context.Context, email, password string) (*models.User, string, error)
}

type userService struct {
	repo      repositories.UserRepository
	validator validators.UserValidator
	jwtSecret string
}

func NewUserService(repo repositories.UserRepository, validator validators.UserValidator, jwtSecret string) UserService {
	return &userService{
		repo:      repo,
		validator: validator,
		jwtSecret: jwtSecret,
	}
}

func (s *userService) Register(ctx context.Context, user *models.User) error {
	if err := s.validator.ValidateRegister(user); err != nil {
		return err
	}

	existing, err := s.repo.FindByEmail(ctx, user.Email)
	if err != nil {
		return fmt.Errorf("failed to check email existence: %w", err)
	}
	if existing != nil {
		return apperrors.ErrDuplicateUser
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword)

	if user.UserRole == "" {
		user.UserRole = models.RoleTenant
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}

// Login verifies the credentials and issues a session token. Unknown email
// and wrong password produce the same error, so callers cannot probe which
// emails exist.
func (s *userService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	if err := s.validator.ValidateLogin(email, password); err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to query user: %w", err)
	}
	if user == nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user, s.jwtSecret)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return user, token, nil
}
