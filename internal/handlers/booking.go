package handlers

import (
	"errors"
	"net/http"

	apperrors "house-hunter-server/internal/errors"
	"house-hunter-server/internal/middleware"
	"house-hunter-server/internal/models"
	"house-hunter-server/internal/services"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingService services.BookingService
}

func NewBookingHandler(bookingService services.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// AddBook creates a booking snapshot for the authenticated renter.
func (h *BookingHandler) AddBook(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": true, "message": apperrors.MsgUnauthorized})
		return
	}

	var booking models.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := h.bookingService.Create(c.Request.Context(), &booking, claims); err != nil {
		if errors.Is(err, apperrors.ErrBookingLimitExceeded) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": apperrors.MsgBookingLimitExceeded})
			return
		}
		appErr := apperrors.MapError(err)
		c.JSON(appErr.HTTPStatus, gin.H{"success": false, "error": appErr.UserMessage})
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// MyBooks lists the authenticated renter's bookings. The path email must
// match the verified identity.
func (h *BookingHandler) MyBooks(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": true, "message": apperrors.MsgUnauthorized})
		return
	}
	if c.Param("email") != claims.Email {
		c.JSON(http.StatusForbidden, gin.H{"error": true, "message": apperrors.MsgForbidden})
		return
	}

	bookings, err := h.bookingService.ByRenter(c.Request.Context(), claims.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}
