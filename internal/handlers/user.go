package handlers

import (
	"net/http"

	apperrors "house-hunter-server/internal/errors"
	"house-hunter-server/internal/middleware"
	"house-hunter-server/internal/models"
	"house-hunter-server/internal/services"
	"house-hunter-server/pkg/config"
	"house-hunter-server/pkg/logger"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService services.UserService
	cfg         *config.Config
}

func NewUserHandler(userService services.UserService, cfg *config.Config) *UserHandler {
	return &UserHandler{
		userService: userService,
		cfg:         cfg,
	}
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *UserHandler) Register(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": err.Error()})
		return
	}

	if err := h.userService.Register(c.Request.Context(), &user); err != nil {
		appErr := apperrors.MapError(err)
		logger.GlobalLogger.Errorf("registration failed for %s: %s", user.Email, appErr.TechnicalMessage)
		c.JSON(appErr.HTTPStatus, gin.H{"error": true, "message": appErr.UserMessage})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"error": false, "message": apperrors.MsgRegistrationSuccess})
}

func (h *UserHandler) Login(c *gin.Context) {
	var creds LoginRequest
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	_, token, err := h.userService.Login(c.Request.Context(), creds.Email, creds.Password)
	if err != nil {
		appErr := apperrors.MapError(err)
		c.JSON(appErr.HTTPStatus, gin.H{"success": false, "message": appErr.UserMessage})
		return
	}

	h.setSessionCookie(c, token, 0)
	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

// Logout expires the session cookie. Clearing a cookie that was never set
// still succeeds.
func (h *UserHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// setSessionCookie writes the access-token cookie. Production uses
// Secure + SameSite=None so the cross-site client can send it; elsewhere
// the cookie stays same-site and plain HTTP works.
func (h *UserHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	sameSite := http.SameSiteStrictMode
	secure := false
	if h.cfg.IsProduction() {
		sameSite = http.SameSiteNoneMode
		secure = true
	}
	c.SetSameSite(sameSite)
	c.SetCookie(middleware.AccessTokenCookie, token, maxAge, "/", "", secure, true)
}
