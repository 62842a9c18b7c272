package services

import (
	"context"
	"errors"
	"time"

	"house-hunter-server/internal/auth"
	apperrors "house-hunter-server/internal/errors"
	"house-hunter-server/internal/models"
	"house-hunter-server/internal/repositories"
	"house-hunter-server/internal/validators"
	"house-hunter-server/pkg/cache"
	"house-hunter-server/pkg/logger"
	"house-hunter-server/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	defaultPageSize = 20
	houseCacheTTL   = 10 * time.Minute
	listCacheTTL    = 5 * time.Minute
)

// HouseService handles listing CRUD with ownership checks and a Redis
// read-through cache.
type HouseService interface {
	List(ctx context.Context, query *models.HouseQuery) ([]models.House, error)
	ByOwner(ctx context.Context, email string) ([]models.House, error)
	Get(ctx context.Context, id string) (*models.House, error)
	Create(ctx context.Context, house *models.House, owner *auth.Claims) error
	Update(ctx context.Context, id string, house *models.House, ownerEmail string) (*models.House, error)
	MarkBooked(ctx context.Context, id string) (*models.House, error)
}

type houseService struct {
	repo      repositories.HouseRepository
	cache     repositories.HouseCache
	validator validators.HouseValidator
}

func NewHouseService(repo repositories.HouseRepository, houseCache repositories.HouseCache, validator validators.HouseValidator) HouseService {
	return &houseService{
		repo:      repo,
		cache:     houseCache,
		validator: validator,
	}
}

func (s *houseService) List(ctx context.Context, query *models.HouseQuery) ([]models.House, error) {
	if err := s.validator.ValidateQuery(query); err != nil {
		return nil, err
	}

	if query.Limit <= 0 {
		query.Limit = defaultPageSize
	}
	if query.Limit > validators.MaxPageSize {
		query.Limit = validators.MaxPageSize
	}

	key := cache.HouseListKey(query.Search, query.Size, query.Bedrooms, query.City, query.Available, query.Page, query.Limit)
	if cached, err := s.cache.GetHouseList(ctx, key); err != nil {
		logger.GlobalLogger.Errorf("house list cache read failed: %v", err)
	} else if cached != nil {
		metrics.CacheHitsTotal.Inc()
		return cached, nil
	}
	metrics.CacheMissesTotal.Inc()

	houses, err := s.repo.Find(ctx, query)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetHouseList(ctx, key, houses, listCacheTTL); err != nil {
		logger.GlobalLogger.Errorf("house list cache write failed: %v", err)
	}
	return houses, nil
}

func (s *houseService) ByOwner(ctx context.Context, email string) ([]models.House, error) {
	return s.repo.FindByOwner(ctx, email)
}

// Get returns nil without an error when no house matches; the route
// contract is a null body, not a 404.
func (s *houseService) Get(ctx context.Context, id string) (*models.House, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, apperrors.NewValidationError("invalid house id")
	}

	key := cache.HouseKey(id)
	if cached, err := s.cache.GetHouse(ctx, key); err != nil {
		logger.GlobalLogger.Errorf("house cache read failed: %v", err)
	} else if cached != nil {
		metrics.CacheHitsTotal.Inc()
		return cached, nil
	}
	metrics.CacheMissesTotal.Inc()

	house, err := s.repo.FindByID(ctx, id)
	if err != nil || house == nil {
		return house, err
	}

	if err := s.cache.SetHouse(ctx, key, house, houseCacheTTL); err != nil {
		logger.GlobalLogger.Errorf("house cache write failed: %v", err)
	}
	return house, nil
}

// Create inserts a listing. The owner identity comes from the verified
// token claims, never from the request body.
func (s *houseService) Create(ctx context.Context, house *models.House, owner *auth.Claims) error {
	house.Email = owner.Email
	house.OwnerName = owner.FullName
	if house.Status == "" {
		house.Status = models.StatusAvailable
	}

	if err := s.validator.ValidateCreate(house); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, house); err != nil {
		return err
	}
	s.invalidateLists(ctx)
	return nil
}

func (s *houseService) Update(ctx context.Context, id string, house *models.House, ownerEmail string) (*models.House, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.ErrHouseNotFound
	}
	if existing.Email != ownerEmail {
		return nil, apperrors.ErrNotOwner
	}

	if err := s.validator.ValidateUpdate(house); err != nil {
		return nil, err
	}

	house.ID = existing.ID
	house.Email = existing.Email
	house.OwnerName = existing.OwnerName

	updated, err := s.repo.Update(ctx, house)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperrors.ErrHouseNotFound
	}

	s.invalidateHouse(ctx, id)
	return updated, nil
}

// MarkBooked transitions a house to booked with a conditional update.
// Marking an already-booked house again is a no-op success.
func (s *houseService) MarkBooked(ctx context.Context, id string) (*models.House, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, apperrors.NewValidationError("invalid house id")
	}

	updated, err := s.repo.MarkBooked(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// either the house does not exist or it is already booked
		house, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if house == nil {
			return nil, apperrors.ErrHouseNotFound
		}
		if house.Status != models.StatusBooked {
			return nil, errors.New("house status changed concurrently")
		}
		return house, nil
	}

	s.invalidateHouse(ctx, id)
	return updated, nil
}

func (s *houseService) invalidateHouse(ctx context.Context, id string) {
	if err := s.cache.InvalidateHouse(ctx, id); err != nil {
		logger.GlobalLogger.Errorf("house cache invalidation failed: %v", err)
	}
	s.invalidateLists(ctx)
}

func (s *houseService) invalidateLists(ctx context.Context) {
	if err := s.cache.InvalidateLists(ctx); err != nil {
		logger.GlobalLogger.Errorf("house list cache invalidation failed: %v", err)
	}
}
