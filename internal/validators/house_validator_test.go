package validators

import (
	"testing"

	"house-hunter-server/internal/models"

	"github.com/stretchr/testify/assert"
)

func validHouse() *models.House {
	return &models.House{
		Name:    "Lakeside Villa",
		Address: "12 Gulshan Ave",
		City:    "Dhaka",
		Rent:    "25000",
		Status:  models.StatusAvailable,
	}
}

func TestValidateCreate(t *testing.T) {
	v := NewHouseValidator()
	assert.NoError(t, v.ValidateCreate(validHouse()))
}

func TestValidateCreate_MissingFields(t *testing.T) {
	v := NewHouseValidator()

	house := validHouse()
	house.Name = ""
	assert.Error(t, v.ValidateCreate(house))

	house = validHouse()
	house.Rent = ""
	assert.Error(t, v.ValidateCreate(house))
}

func TestValidateCreate_BadStatus(t *testing.T) {
	v := NewHouseValidator()
	house := validHouse()
	house.Status = "pending"
	assert.Error(t, v.ValidateCreate(house))
}

func TestValidateQuery(t *testing.T) {
	v := NewHouseValidator()

	assert.NoError(t, v.ValidateQuery(&models.HouseQuery{Page: 2, Limit: 10}))
	assert.NoError(t, v.ValidateQuery(&models.HouseQuery{Available: models.StatusBooked}))
	assert.Error(t, v.ValidateQuery(&models.HouseQuery{Page: -1}))
	assert.Error(t, v.ValidateQuery(&models.HouseQuery{Available: "maybe"}))
}
