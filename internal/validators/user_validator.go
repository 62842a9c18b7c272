package validators

import (
	"regexp"

	apperrors "house-hunter-server/internal/errors"
	"house-hunter-server/internal/models"
)

type userValidator struct{}

func NewUserValidator() UserValidator {
	return &userValidator{}
}

func (v *userValidator) ValidateRegister(user *models.User) error {
	if user.FullName == "" || user.Email == "" || user.Password == "" {
		return apperrors.NewValidationError("full name, email, and password are required")
	}

	if len(user.FullName) < 2 || len(user.FullName) > 100 {
		return apperrors.NewValidationError("full name must be between 2 and 100 characters")
	}

	if len(user.Password) < 6 || len(user.Password) > 100 {
		return apperrors.NewValidationError("password must be between 6 and 100 characters")
	}

	if !isValidEmail(user.Email) {
		return apperrors.NewValidationError("invalid email format")
	}

	if user.UserRole != "" && user.UserRole != models.RoleOwner && user.UserRole != models.RoleTenant {
		return apperrors.NewValidationError("invalid user role")
	}

	if user.PhoneNumber != "" && len(user.PhoneNumber) > 15 {
		return apperrors.NewValidationError("phone number exceeds maximum length of 15 characters")
	}

	return nil
}

func (v *userValidator) ValidateLogin(email, password string) error {
	if email == "" || password == "" {
		return apperrors.NewValidationError("email and password are required")
	}

	if !isValidEmail(email) {
		return apperrors.NewValidationError("invalid email format")
	}

	return nil
}

func isValidEmail(email string) bool {
	regex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return regex.MatchString(email)
}
