package handlers

import (
	"net/http"
	"strconv"

	apperrors "house-hunter-server/internal/errors"
	"house-hunter-server/internal/middleware"
	"house-hunter-server/internal/models"
	"house-hunter-server/internal/services"

	"github.com/gin-gonic/gin"
)

type HouseHandler struct {
	houseService services.HouseService
}

func NewHouseHandler(houseService services.HouseService) *HouseHandler {
	return &HouseHandler{houseService: houseService}
}

// AllHouses lists houses matching the optional query filters, newest
// first.
func (h *HouseHandler) AllHouses(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	query := &models.HouseQuery{
		Search:    c.Query("search"),
		Size:      c.Query("size"),
		Bedrooms:  c.Query("bedrooms"),
		City:      c.Query("city"),
		Available: c.Query("available"),
		Page:      page,
		Limit:     limit,
	}

	houses, err := h.houseService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, houses)
}

// MyHouses lists the authenticated owner's houses. The path email must
// match the verified identity.
func (h *HouseHandler) MyHouses(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": true, "message": apperrors.MsgUnauthorized})
		return
	}
	if c.Param("email") != claims.Email {
		c.JSON(http.StatusForbidden, gin.H{"error": true, "message": apperrors.MsgForbidden})
		return
	}

	houses, err := h.houseService.ByOwner(c.Request.Context(), claims.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, houses)
}

// SingleHouse returns the house or a JSON null when none matches.
func (h *HouseHandler) SingleHouse(c *gin.Context) {
	house, err := h.houseService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, house)
}

func (h *HouseHandler) AddHouse(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": true, "message": apperrors.MsgUnauthorized})
		return
	}

	var house models.House
	if err := c.ShouldBindJSON(&house); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": err.Error()})
		return
	}

	if err := h.houseService.Create(c.Request.Context(), &house, claims); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, house)
}

func (h *HouseHandler) EditHouse(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": true, "message": apperrors.MsgUnauthorized})
		return
	}

	var house models.House
	if err := c.ShouldBindJSON(&house); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": err.Error()})
		return
	}

	updated, err := h.houseService.Update(c.Request.Context(), c.Param("id"), &house, claims.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UpdateStatus marks a house booked.
func (h *HouseHandler) UpdateStatus(c *gin.Context) {
	updated, err := h.houseService.MarkBooked(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func respondError(c *gin.Context, err error) {
	appErr := apperrors.MapError(err)
	c.JSON(appErr.HTTPStatus, gin.H{"error": true, "message": appErr.UserMessage})
}
