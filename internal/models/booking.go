package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking snapshots the house fields at booking time, so the record
// survives later edits to the listing, plus the renter's contact details.
type Booking struct {
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
	RenterName  string             `json:"R_name" bson:"R_name"`
	RenterPhone string             `json:"R_number" bson:"R_number"`
	RenterEmail string             `json:"R_email" bson:"R_email"`
}

// SnapshotHouse copies the listing fields into the booking.
func (b *Booking) SnapshotHouse(h *House) {
	b.Name = h.Name
	b.Address = h.Address
	b.City = h.City
	b.Bedrooms = h.Bedrooms
	b.Bathrooms = h.Bathrooms
	b.Size = h.Size
	b.Image = h.Image
	b.Date = h.Date
	b.Rent = h.Rent
	b.Number = h.Number
	b.Description = h.Description
	b.Email = h.Email
	b.OwnerName = h.OwnerName
	b.Status = h.Status
}
