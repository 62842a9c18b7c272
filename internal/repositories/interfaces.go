package repositories

import (
	"context"
	"time"

	"house-hunter-server/internal/models"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type HouseRepository interface {
	Find(ctx context.Context, query *models.HouseQuery) ([]models.House, error)
	FindByOwner(ctx context.Context, email string) ([]models.House, error)
	FindByID(ctx context.Context, id string) (*models.House, error)
	Create(ctx context.Context, house *models.House) error
	Update(ctx context.Context, house *models.House) (*models.House, error)
	// MarkBooked flips status from available to booked with a conditional
	// update and returns the post-update document, or nil when no available
	// house matched.
	MarkBooked(ctx context.Context, id string) (*models.House, error)
}

type BookingRepository interface {
	// CreateWithCap inserts the booking only while the renter holds fewer
	// than max bookings; count and insert run in one transaction.
	CreateWithCap(ctx context.Context, booking *models.Booking, max int64) error
	FindByRenter(ctx context.Context, email string) ([]models.Booking, error)
	CountByRenter(ctx context.Context, email string) (int64, error)
}

type HouseCache interface {
	GetHouse(ctx context.Context, key string) (*models.House, error)
	SetHouse(ctx context.Context, key string, house *models.House, expiration time.Duration) error
	GetHouseList(ctx context.Context, key string) ([]models.House, error)
	SetHouseList(ctx context.Context, key string, houses []models.House, expiration time.Duration) error
	InvalidateHouse(ctx context.Context, id string) error
	InvalidateLists(ctx context.Context) error
}
