package services

import (
	"context"
	"testing"
	"time"

	"house-hunter-server/internal/auth"
	apperrors "house-hunter-server/internal/errors"
	"house-hunter-server/internal/models"
	"house-hunter-server/internal/validators"
	"house-hunter-server/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newHouseService(repo *fakeHouseRepo, cache *fakeHouseCache) HouseService {
	return NewHouseService(repo, cache, validators.NewHouseValidator())
}

func ownerClaims() *auth.Claims {
	return &auth.Claims{
		FullName: "Karim Uddin",
		Email:    "karim@example.com",
		UserRole: models.RoleOwner,
	}
}

func listing() *models.House {
	return &models.House{
		Name:     "Lakeside Villa",
		Address:  "12 Gulshan Ave",
		City:     "Dhaka",
		Bedrooms: "3",
		Rent:     "25000",
		Date:     time.Now(),
	}
}

func TestHouseList_NormalizesLimit(t *testing.T) {
	repo := newFakeHouseRepo()
	svc := newHouseService(repo, newFakeHouseCache())

	_, err := svc.List(context.Background(), &models.HouseQuery{})
	assert.NoError(t, err)
	assert.Equal(t, defaultPageSize, repo.lastQuery.Limit)

	_, err = svc.List(context.Background(), &models.HouseQuery{Limit: 100000})
	assert.NoError(t, err)
	assert.Equal(t, validators.MaxPageSize, repo.lastQuery.Limit)
}

func TestHouseList_ServedFromCacheOnSecondRead(t *testing.T) {
	repo := newFakeHouseRepo()
	repo.findRes = []models.House{*listing()}
	svc := newHouseService(repo, newFakeHouseCache())

	first, err := svc.List(context.Background(), &models.HouseQuery{City: "Dhaka"})
	assert.NoError(t, err)
	assert.Len(t, first, 1)

	repo.findRes = nil // a repo hit now would return nothing
	second, err := svc.List(context.Background(), &models.HouseQuery{City: "Dhaka"})
	assert.NoError(t, err)
	assert.Len(t, second, 1)
}

func TestHouseList_CountsCacheHitsAndMisses(t *testing.T) {
	repo := newFakeHouseRepo()
	repo.findRes = []models.House{*listing()}
	svc := newHouseService(repo, newFakeHouseCache())

	hits := testutil.ToFloat64(metrics.CacheHitsTotal)
	misses := testutil.ToFloat64(metrics.CacheMissesTotal)

	_, err := svc.List(context.Background(), &models.HouseQuery{City: "Dhaka"})
	assert.NoError(t, err)
	assert.Equal(t, misses+1, testutil.ToFloat64(metrics.CacheMissesTotal))
	assert.Equal(t, hits, testutil.ToFloat64(metrics.CacheHitsTotal))

	_, err = svc.List(context.Background(), &models.HouseQuery{City: "Dhaka"})
	assert.NoError(t, err)
	assert.Equal(t, hits+1, testutil.ToFloat64(metrics.CacheHitsTotal))
	assert.Equal(t, misses+1, testutil.ToFloat64(metrics.CacheMissesTotal))
}

func TestHouseGet_CountsCacheHitsAndMisses(t *testing.T) {
	repo := newFakeHouseRepo()
	house := listing()
	assert.NoError(t, repo.Create(context.Background(), house))
	svc := newHouseService(repo, newFakeHouseCache())

	hits := testutil.ToFloat64(metrics.CacheHitsTotal)
	misses := testutil.ToFloat64(metrics.CacheMissesTotal)

	_, err := svc.Get(context.Background(), house.ID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, misses+1, testutil.ToFloat64(metrics.CacheMissesTotal))

	_, err = svc.Get(context.Background(), house.ID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, hits+1, testutil.ToFloat64(metrics.CacheHitsTotal))
}

func TestHouseCreate_OwnerFromClaims(t *testing.T) {
	repo := newFakeHouseRepo()
	svc := newHouseService(repo, newFakeHouseCache())

	house := listing()
	house.Email = "spoofed@example.com"
	house.OwnerName = "Spoofed Owner"

	err := svc.Create(context.Background(), house, ownerClaims())
	assert.NoError(t, err)
	assert.Equal(t, "karim@example.com", house.Email)
	assert.Equal(t, "Karim Uddin", house.OwnerName)
	assert.Equal(t, models.StatusAvailable, house.Status)
}

func TestHouseGet_MissingReturnsNilWithoutError(t *testing.T) {
	svc := newHouseService(newFakeHouseRepo(), newFakeHouseCache())

	house, err := svc.Get(context.Background(), primitive.NewObjectID().Hex())
	assert.NoError(t, err)
	assert.Nil(t, house)
}

func TestHouseGet_InvalidID(t *testing.T) {
	svc := newHouseService(newFakeHouseRepo(), newFakeHouseCache())

	_, err := svc.Get(context.Background(), "not-a-hex-id")
	assert.Error(t, err)
}

func TestHouseUpdate_OwnershipEnforced(t *testing.T) {
	repo := newFakeHouseRepo()
	svc := newHouseService(repo, newFakeHouseCache())

	house := listing()
	house.Email = "karim@example.com"
	repo.add(house)

	edit := listing()
	edit.Name = "Renamed Villa"

	_, err := svc.Update(context.Background(), house.ID.Hex(), edit, "intruder@example.com")
	assert.ErrorIs(t, err, apperrors.ErrNotOwner)

	updated, err := svc.Update(context.Background(), house.ID.Hex(), edit, "karim@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "Renamed Villa", updated.Name)
	assert.Equal(t, "karim@example.com", updated.Email)
}

func TestHouseUpdate_NotFound(t *testing.T) {
	svc := newHouseService(newFakeHouseRepo(), newFakeHouseCache())

	_, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), listing(), "karim@example.com")
	assert.ErrorIs(t, err, apperrors.ErrHouseNotFound)
}

func TestMarkBooked(t *testing.T) {
	repo := newFakeHouseRepo()
	svc := newHouseService(repo, newFakeHouseCache())

	house := listing()
	house.Status = models.StatusAvailable
	repo.add(house)

	updated, err := svc.MarkBooked(context.Background(), house.ID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, models.StatusBooked, updated.Status)
}

func TestMarkBooked_Idempotent(t *testing.T) {
	repo := newFakeHouseRepo()
	svc := newHouseService(repo, newFakeHouseCache())

	house := listing()
	house.Status = models.StatusAvailable
	repo.add(house)

	_, err := svc.MarkBooked(context.Background(), house.ID.Hex())
	assert.NoError(t, err)

	// second call finds no available house but still reports booked
	again, err := svc.MarkBooked(context.Background(), house.ID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, models.StatusBooked, again.Status)
}

func TestMarkBooked_NotFound(t *testing.T) {
	svc := newHouseService(newFakeHouseRepo(), newFakeHouseCache())

	_, err := svc.MarkBooked(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, apperrors.ErrHouseNotFound)
}
