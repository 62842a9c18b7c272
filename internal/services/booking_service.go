package services

import (
	"context"
	"errors"

	"house-hunter-server/internal/auth"
	apperrors "house-hunter-server/internal/errors"
	"house-hunter-server/internal/models"
	"house-hunter-server/internal/repositories"
	"house-hunter-server/pkg/metrics"
)

// MaxBookingsPerRenter caps how many bookings a renter may hold at once.
const MaxBookingsPerRenter = 2

// BookingService creates booking snapshots and reads them back per renter.
type BookingService interface {
	Create(ctx context.Context, booking *models.Booking, renter *auth.Claims) error
	ByRenter(ctx context.Context, email string) ([]models.Booking, error)
}

type bookingService struct {
	repo repositories.BookingRepository
}

func NewBookingService(repo repositories.BookingRepository) BookingService {
	return &bookingService{repo: repo}
}

// Create inserts the booking under the per-renter cap. The renter identity
// comes from the verified token claims; the house fields arrive as the
// client's snapshot of the listing at booking time.
func (s *bookingService) Create(ctx context.Context, booking *models.Booking, renter *auth.Claims) error {
	if booking.Name == "" || booking.Address == "" {
		return apperrors.NewValidationError("house name and address are required")
	}

	booking.RenterName = renter.FullName
	booking.RenterEmail = renter.Email
	if booking.RenterPhone == "" {
		booking.RenterPhone = renter.PhoneNumber
	}

	err := s.repo.CreateWithCap(ctx, booking, MaxBookingsPerRenter)
	if errors.Is(err, apperrors.ErrBookingLimitExceeded) {
		metrics.BookingsRejectedTotal.Inc()
	}
	return err
}

func (s *bookingService) ByRenter(ctx context.Context, email string) ([]models.Booking, error) {
	return s.repo.FindByRenter(ctx, email)
}
