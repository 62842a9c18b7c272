package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// House statuses
const (
	StatusAvailable = "available"
	StatusBooked    = "booked"
)

// House is a rental listing. The wire field names follow the client the
// service was built for (des, owner_name, R_* on bookings).
type House struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Address     string             `json:"address" bson:"address"`
	City        string             `json:"city" bson:"city"`
	Bedrooms    string             `json:"bedrooms" bson:"bedrooms"`
	Bathrooms   string             `json:"bathrooms" bson:"bathrooms"`
	Size        string             `json:"size" bson:"size"`
	Image       string             `json:"image" bson:"image"`
	Date        time.Time          `json:"date" bson:"date"`
	Rent        string             `json:"rent" bson:"rent"`
	Number      string             `json:"number" bson:"number"`
	Description string             `json:"des" bson:"des"`
	Email       string             `json:"email" bson:"email"`
	OwnerName   string             `json:"owner_name" bson:"owner_name"`
	Status      string             `json:"status" bson:"status"`
}

// HouseQuery carries the optional listing filters and pagination. All
// filters combine with AND semantics.
type HouseQuery struct {
	Search    string
	Size      string
	Bedrooms  string
	City      string
	Available string
	Page      int
	Limit     int
}
