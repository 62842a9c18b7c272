package repositories

import (
	"context"
	"time"

	apperrors "house-hunter-server/internal/errors"
	"house-hunter-server/internal/models"
	"house-hunter-server/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type bookingRepository struct {
	collection *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) BookingRepository {
	return &bookingRepository{
		collection: db.Collection("bookings"),
	}
}

func (r *bookingRepository) CreateWithCap(ctx context.Context, booking *models.Booking, max int64) error {
	client := r.collection.Database().Client()
	session, err := client.StartSession()
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("start_session", "bookings").Inc()
		return err
	}
	defer session.EndSession(ctx)

	start := time.Now()
	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		count, err := r.collection.CountDocuments(sc, bson.M{"R_email": booking.RenterEmail})
		if err != nil {
			return nil, err
		}
		if count >= max {
			return nil, apperrors.ErrBookingLimitExceeded
		}

		booking.ID = primitive.NewObjectID()
		if _, err := r.collection.InsertOne(sc, booking); err != nil {
			return nil, err
		}
		return nil, nil
	})
	metrics.MongoOperationDuration.WithLabelValues("booking_txn", "bookings").Observe(time.Since(start).Seconds())
	if err != nil {
		if err != apperrors.ErrBookingLimitExceeded {
			metrics.MongoErrorsTotal.WithLabelValues("booking_txn", "bookings").Inc()
		}
		return err
	}
	return nil
}

func (r *bookingRepository) FindByRenter(ctx context.Context, email string) ([]models.Booking, error) {
	start := time.Now()
	cursor, err := r.collection.Find(ctx, bson.M{"R_email": email},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	metrics.MongoOperationDuration.WithLabelValues("find", "bookings").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", "bookings").Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", "bookings").Inc()
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) CountByRenter(ctx context.Context, email string) (int64, error) {
	start := time.Now()
	count, err := r.collection.CountDocuments(ctx, bson.M{"R_email": email})
	metrics.MongoOperationDuration.WithLabelValues("count_documents", "bookings").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("count_documents", "bookings").Inc()
		return 0, err
	}
	return count, nil
}
