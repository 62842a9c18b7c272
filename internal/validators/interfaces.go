package validators

import (
	"house-hunter-server/internal/models"
)

type UserValidator interface {
	ValidateRegister(user *models.User) error
	ValidateLogin(email, password string) error
}

type HouseValidator interface {
	ValidateCreate(house *models.House) error
	ValidateUpdate(house *models.House) error
	ValidateQuery(query *models.HouseQuery) error
}
