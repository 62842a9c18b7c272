package validators

import (
	"testing"

	"house-hunter-server/internal/models"

	"github.com/stretchr/testify/assert"
)

func validUser() *models.User {
	return &models.User{
		FullName:    "Karim Uddin",
		Email:       "karim@example.com",
		Password:    "password123",
		UserRole:    models.RoleOwner,
		PhoneNumber: "01712345678",
	}
}

func TestValidateRegister(t *testing.T) {
	v := NewUserValidator()
	assert.NoError(t, v.ValidateRegister(validUser()))
}

func TestValidateRegister_MissingFields(t *testing.T) {
	v := NewUserValidator()

	user := validUser()
	user.Email = ""
	assert.Error(t, v.ValidateRegister(user))

	user = validUser()
	user.Password = ""
	assert.Error(t, v.ValidateRegister(user))

	user = validUser()
	user.FullName = ""
	assert.Error(t, v.ValidateRegister(user))
}

func TestValidateRegister_BadEmail(t *testing.T) {
	v := NewUserValidator()
	user := validUser()
	user.Email = "not-an-email"
	assert.Error(t, v.ValidateRegister(user))
}

func TestValidateRegister_ShortPassword(t *testing.T) {
	v := NewUserValidator()
	user := validUser()
	user.Password = "abc"
	assert.Error(t, v.ValidateRegister(user))
}

func TestValidateRegister_BadRole(t *testing.T) {
	v := NewUserValidator()
	user := validUser()
	user.UserRole = "admin"
	assert.Error(t, v.ValidateRegister(user))
}

func TestValidateLogin(t *testing.T) {
	v := NewUserValidator()
	assert.NoError(t, v.ValidateLogin("karim@example.com", "password123"))
	assert.Error(t, v.ValidateLogin("", "password123"))
	assert.Error(t, v.ValidateLogin("karim@example.com", ""))
	assert.Error(t, v.ValidateLogin("nope", "password123"))
}
