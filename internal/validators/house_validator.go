package validators

import (
	apperrors "house-hunter-server/internal/errors"
	"house-hunter-server/internal/models"
)

// MaxPageSize caps the listing page size so a single request cannot pull
// the whole collection.
const MaxPageSize = 100

type houseValidator struct{}

func NewHouseValidator() HouseValidator {
	return &houseValidator{}
}

func (v *houseValidator) ValidateCreate(house *models.House) error {
	if house.Name == "" || house.Address == "" || house.City == "" {
		return apperrors.NewValidationError("name, address, and city are required")
	}
	if house.Rent == "" {
		return apperrors.NewValidationError("rent is required")
	}
	if house.Status != "" && house.Status != models.StatusAvailable && house.Status != models.StatusBooked {
		return apperrors.NewValidationError("invalid status")
	}
	return nil
}

func (v *houseValidator) ValidateUpdate(house *models.House) error {
	return v.ValidateCreate(house)
}

func (v *houseValidator) ValidateQuery(query *models.HouseQuery) error {
	if query.Page < 0 || query.Limit < 0 {
		return apperrors.NewValidationError("page and limit must be non-negative")
	}
	if query.Available != "" && query.Available != models.StatusAvailable && query.Available != models.StatusBooked {
		return apperrors.NewValidationError("invalid availability filter")
	}
	return nil
}
