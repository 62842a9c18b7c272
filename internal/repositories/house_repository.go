package repositories

import (
	"context"
	"regexp"
	"time"

	"house-hunter-server/internal/models"
	"house-hunter-server/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type houseRepository struct {
	collection *mongo.Collection
}

func NewHouseRepository(db *mongo.Database) HouseRepository {
	return &houseRepository{
		collection: db.Collection("houses"),
	}
}

// buildHouseFilter translates the optional listing filters into a Mongo
// query. Exact matches on bedrooms, city and status; case-insensitive
// substring matches on size and name.
func buildHouseFilter(query *models.HouseQuery) bson.M {
	filter := bson.M{}
	if query.Bedrooms != "" {
		filter["bedrooms"] = query.Bedrooms
	}
	if query.City != "" {
		filter["city"] = query.City
	}
	if query.Available != "" {
		filter["status"] = query.Available
	}
	if query.Size != "" {
		filter["size"] = bson.M{"$regex": regexp.QuoteMeta(query.Size), "$options": "i"}
	}
	if query.Search != "" {
		filter["name"] = bson.M{"$regex": regexp.QuoteMeta(query.Search), "$options": "i"}
	}
	return filter
}

// paginationOptions sorts by listing date descending and applies
// skip = (page-1)*limit. Limit is expected to be normalized by the caller.
func paginationOptions(query *models.HouseQuery) *options.FindOptions {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	if query.Limit > 0 {
		opts.SetLimit(int64(query.Limit))
		if query.Page > 1 {
			opts.SetSkip(int64((query.Page - 1) * query.Limit))
		}
	}
	return opts
}

func (r *houseRepository) Find(ctx context.Context, query *models.HouseQuery) ([]models.House, error) {
	start := time.Now()
	cursor, err := r.collection.Find(ctx, buildHouseFilter(query), paginationOptions(query))
	metrics.MongoOperationDuration.WithLabelValues("find", "houses").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", "houses").Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	houses := []models.House{}
	if err := cursor.All(ctx, &houses); err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", "houses").Inc()
		return nil, err
	}
	return houses, nil
}

func (r *houseRepository) FindByOwner(ctx context.Context, email string) ([]models.House, error) {
	start := time.Now()
	cursor, err := r.collection.Find(ctx, bson.M{"email": email},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	metrics.MongoOperationDuration.WithLabelValues("find", "houses").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", "houses").Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	houses := []models.House{}
	if err := cursor.All(ctx, &houses); err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", "houses").Inc()
		return nil, err
	}
	return houses, nil
}

func (r *houseRepository) FindByID(ctx context.Context, id string) (*models.House, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	var house models.House
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&house)
	metrics.MongoOperationDuration.WithLabelValues("find_one", "houses").Observe(time.Since(start).Seconds())
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil // Not found
		}
		metrics.MongoErrorsTotal.WithLabelValues("find_one", "houses").Inc()
		return nil, err
	}
	return &house, nil
}

func (r *houseRepository) Create(ctx context.Context, house *models.House) error {
	house.ID = primitive.NewObjectID()
	if house.Status == "" {
		house.Status = models.StatusAvailable
	}
	if house.Date.IsZero() {
		house.Date = time.Now()
	}

	start := time.Now()
	_, err := r.collection.InsertOne(ctx, house)
	metrics.MongoOperationDuration.WithLabelValues("insert", "houses").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("insert", "houses").Inc()
		return err
	}
	return nil
}

func (r *houseRepository) Update(ctx context.Context, house *models.House) (*models.House, error) {
	update := bson.M{
		"$set": bson.M{
			"name":       house.Name,
			"address":    house.Address,
			"city":       house.City,
			"bedrooms":   house.Bedrooms,
			"bathrooms":  house.Bathrooms,
			"size":       house.Size,
			"image":      house.Image,
			"date":       house.Date,
			"rent":       house.Rent,
			"number":     house.Number,
			"des":        house.Description,
			"email":      house.Email,
			"owner_name": house.OwnerName,
		},
	}

	start := time.Now()
	var updated models.House
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": house.ID}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	metrics.MongoOperationDuration.WithLabelValues("find_one_and_update", "houses").Observe(time.Since(start).Seconds())
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil // Not found
		}
		metrics.MongoErrorsTotal.WithLabelValues("find_one_and_update", "houses").Inc()
		return nil, err
	}
	return &updated, nil
}

func (r *houseRepository) MarkBooked(ctx context.Context, id string) (*models.House, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	// conditional update: only an available house transitions, so two
	// concurrent bookings cannot both win
	filter := bson.M{"_id": objectID, "status": models.StatusAvailable}
	update := bson.M{"$set": bson.M{"status": models.StatusBooked}}

	start := time.Now()
	var updated models.House
	err = r.collection.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	metrics.MongoOperationDuration.WithLabelValues("find_one_and_update", "houses").Observe(time.Since(start).Seconds())
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil // No available house matched
		}
		metrics.MongoErrorsTotal.WithLabelValues("find_one_and_update", "houses").Inc()
		return nil, err
	}
	return &updated, nil
}
