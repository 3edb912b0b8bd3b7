package queries

import (
	"context"
	"errors"

	"github.com/Shihab066/learning-server/app/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// IsUserSuspensionListed reports whether the user already has a suspension entry
func (q *Queries) IsUserSuspensionListed(ctx context.Context, userID string) (bool, error) {
	err := q.col(colSuspended).FindOne(ctx, bson.M{"user_id": userID}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// InsertSuspension records one suspension entry
func (q *Queries) InsertSuspension(ctx context.Context, suspension models.Suspension) error {
	_, err := q.col(colSuspended).InsertOne(ctx, suspension)
	return err
}

// GetSuspendedUsers lists every suspension entry, admin view
func (q *Queries) GetSuspendedUsers(ctx context.Context) ([]models.Suspension, error) {
	cursor, err := q.col(colSuspended).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	suspensions := []models.Suspension{}
	if err := cursor.All(ctx, &suspensions); err != nil {
		return nil, err
	}
	return suspensions, nil
}

// GetSuspensionByUser returns the user's suspension entry
func (q *Queries) GetSuspensionByUser(ctx context.Context, userID string) (models.Suspension, error) {
	var suspension models.Suspension
	err := q.col(colSuspended).FindOne(ctx, bson.M{"user_id": userID}).Decode(&suspension)
	return suspension, err
}

// DeleteSuspension removes one suspension entry
func (q *Queries) DeleteSuspension(ctx context.Context, userID string, id uint64) (int64, error) {
	result, err := q.col(colSuspended).DeleteOne(ctx, bson.M{"user_id": userID, "id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
