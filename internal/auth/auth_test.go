package auth

import (
	"testing"
	"time"

	"house-hunter-server/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func testUser() *models.User {
	return &models.User{
		FullName:     "Abdur Rahim",
		Email:        "rahim@example.com",
		ProfileImage: "https://img.example.com/rahim.png",
		UserRole:     models.RoleTenant,
		PhoneNumber:  "01712345678",
	}
}

func TestGenerateToken(t *testing.T) {
	tokenString, err := GenerateToken(testUser(), "secret")

	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	claims, err := ValidateToken(tokenString, "secret")
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, "Abdur Rahim", claims.FullName)
	assert.Equal(t, "rahim@example.com", claims.Email)
	assert.Equal(t, "https://img.example.com/rahim.png", claims.ProfileImage)
	assert.Equal(t, models.RoleTenant, claims.UserRole)
	assert.Equal(t, "01712345678", claims.PhoneNumber)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt.Time, 5*time.Second)
}

func TestGenerateToken_EmptySecret(t *testing.T) {
	_, err := GenerateToken(testUser(), "")
	assert.Error(t, err)
}

func TestGenerateToken_EmptyEmail(t *testing.T) {
	user := testUser()
	user.Email = ""
	_, err := GenerateToken(user, "secret")
	assert.Error(t, err)
}

func TestValidateToken_InvalidToken(t *testing.T) {
	_, err := ValidateToken("invalid.token.string", "secret")
	assert.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	tokenString, _ := GenerateToken(testUser(), "secret1")

	_, err := ValidateToken(tokenString, "secret2")
	assert.Error(t, err)
}

func TestValidateToken_ExpiredToken(t *testing.T) {
	claims := &Claims{
		Email: "rahim@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte("secret"))
	assert.NoError(t, err)

	_, err = ValidateToken(tokenString, "secret")
	assert.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateToken_TamperedToken(t *testing.T) {
	tokenString, _ := GenerateToken(testUser(), "secret")

	// flip a character in the payload segment
	tampered := []byte(tokenString)
	mid := len(tampered) / 2
	if tampered[mid] == 'a' {
		tampered[mid] = 'b'
	} else {
		tampered[mid] = 'a'
	}

	_, err := ValidateToken(string(tampered), "secret")
	assert.Error(t, err)
}
