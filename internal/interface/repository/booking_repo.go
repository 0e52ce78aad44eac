// internal/interface/repository/booking_repo.go
package repository

import (
	"context"
	"fmt"
	"time"

	"bookingsync-service/internal/domain/entity"
	"bookingsync-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// terminalStatuses are excluded from the active scan and can never be
// the precondition of a conditional update.
var terminalStatuses = []entity.Status{entity.StatusCancelled, entity.StatusFinished}

// MongoBookingRepository implements the BookingRepository interface
type MongoBookingRepository struct {
	collection *mongo.Collection
}

// NewMongoBookingRepository creates a new MongoDB booking repository
func NewMongoBookingRepository(db *mongo.Database) repository.BookingRepository {
	collection := db.Collection("bookings")

	// Create indexes for better performance
	ctx := context.Background()

	// Unique compound index on the booking identity
	identityIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "bookingId", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	}

	// Index on status for the active filter
	statusIndex := mongo.IndexModel{
		Keys: bson.M{"status": 1},
	}

	// Compound index for paging the active scan efficiently
	scanIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "_id", Value: 1},
		},
	}

	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		identityIndex,
		statusIndex,
		scanIndex,
	})

	return &MongoBookingRepository{
		collection: collection,
	}
}

// FindActivePage finds the next page of non-terminal bookings in _id order.
// afterID is the _id of the last booking of the previous page.
func (r *MongoBookingRepository) FindActivePage(ctx context.Context, afterID string, limit int) ([]*entity.Booking, error) {
	filter := bson.M{
		"status": bson.M{"$nin": terminalStatuses},
	}
	if afterID != "" {
		filter["_id"] = bson.M{"$gt": afterID}
	}

	limit64 := int64(limit)
	cursor, err := r.collection.Find(ctx, filter, &options.FindOptions{
		Limit: &limit64,
		Sort:  bson.D{{Key: "_id", Value: 1}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []*entity.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}

	return bookings, nil
}

// UpdateStatusIfCurrent commits a status transition with a single conditional
// update. The filter matches the exact status the cycle evaluated, so a
// concurrent writer that already moved the booking makes the commit fail.
func (r *MongoBookingRepository) UpdateStatusIfCurrent(ctx context.Context, userID, bookingID string, from, to entity.Status) error {
	filter := bson.M{
		"userId":    userID,
		"bookingId": bookingID,
		"status":    from,
	}

	update := bson.M{
		"$set": bson.M{
			"status":    to,
			"updatedAt": time.Now(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("booking %s/%s no longer in status %s: %w", userID, bookingID, from, repository.ErrStatusConflict)
	}

	return nil
}
