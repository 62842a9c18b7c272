package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles
const (
	RoleOwner  = "owner"
	RoleTenant = "tenant"
)

type User struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	FullName     string             `json:"fullName" bson:"fullName"`
	Email        string             `json:"email" bson:"email"`
	ProfileImage string             `json:"profileImage" bson:"profileImage"`
	Password     string             `json:"password,omitempty" bson:"password"`
	UserRole     string             `json:"userRole" bson:"userRole"`
	PhoneNumber  string             `json:"phoneNumber" bson:"phoneNumber"`
}

// PublicUser is the response shape for a user; the password hash never
// leaves the service layer.
type PublicUser struct {
	ID           primitive.ObjectID `json:"_id,omitempty"`
	FullName     string             `json:"fullName"`
	Email        string             `json:"email"`
	ProfileImage string             `json:"profileImage"`
	UserRole     string             `json:"userRole"`
	PhoneNumber  string             `json:"phoneNumber"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:           u.ID,
		FullName:     u.FullName,
		Email:        u.Email,
		ProfileImage: u.ProfileImage,
		UserRole:     u.UserRole,
		PhoneNumber:  u.PhoneNumber,
	}
}
