package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SetupIndexes creates the indexes the data layer relies on:
// a TTL index so abandoned checkout tokens are removed automatically, a
// unique index on payments.transactionId so a duplicate Stripe callback can
// never record the same purchase twice, and the per-user uniqueness indexes
// the duplicate checks in the handlers depend on.
func (s *Store) SetupIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	tokenIndex := mongo.IndexModel{
		Keys:    bson.M{"created_at": 1},
		Options: options.Index().SetExpireAfterSeconds(3600),
	}
	if err := s.ensureIndex(ctx, "temporaryTokens", "created_at_1", tokenIndex); err != nil {
		return err
	}

	paymentIndex := mongo.IndexModel{
		Keys:    bson.M{"transactionId": 1},
		Options: options.Index().SetUnique(true),
	}
	if err := s.ensureIndex(ctx, "payments", "transactionId_1", paymentIndex); err != nil {
		return err
	}

	emailIndex := mongo.IndexModel{
		Keys:    bson.M{"email": 1},
		Options: options.Index().SetUnique(true),
	}
	if err := s.ensureIndex(ctx, "users", "email_1", emailIndex); err != nil {
		return err
	}

	// One row per (user, course) pair
	userCourseKeys := bson.D{{Key: "userId", Value: 1}, {Key: "courseId", Value: 1}}
	for _, collection := range []string{"enrollment", "cart", "wishList"} {
		index := mongo.IndexModel{
			Keys:    userCourseKeys,
			Options: options.Index().SetUnique(true),
		}
		if err := s.ensureIndex(ctx, collection, "userId_1_courseId_1", index); err != nil {
			return err
		}
	}

	reviewIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "_studentId", Value: 1}, {Key: "_courseId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	return s.ensureIndex(ctx, "coursesReviews", "_studentId_1__courseId_1", reviewIndex)
}

func (s *Store) ensureIndex(ctx context.Context, collection, name string, model mongo.IndexModel) error {
	cursor, err := s.Collection(collection).Indexes().List(ctx)
	if err != nil {
		return fmt.Errorf("errpr get index list: %v", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var index bson.M
		if err := cursor.Decode(&index); err != nil {
			return fmt.Errorf("index decode error: %v", err)
		}
		if index["name"] == name {
			return nil
		}
	}

	if _, err := s.Collection(collection).Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("error create %s index: %v", name, err)
	}
	return nil
}
