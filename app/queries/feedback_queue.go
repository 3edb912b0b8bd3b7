package queries

import (
	"context"

	"github.com/Shihab066/learning-server/app/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetAllFeedback lists the testimonial documents
func (q *Queries) GetAllFeedback(ctx context.Context) ([]bson.M, error) {
	opts := options.Find().SetProjection(bson.M{
		"_id":          0,
		"name":         1,
		"profileImage": 1,
		"headline":     1,
		"feedback":     1,
	})
	cursor, err := q.col(colFeedback).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	feedbacks := []bson.M{}
	if err := cursor.All(ctx, &feedbacks); err != nil {
		return nil, err
	}
	return feedbacks, nil
}

// GetFeedbackByUser returns one user's testimonial
func (q *Queries) GetFeedbackByUser(ctx context.Context, userID string) (models.Feedback, error) {
	var feedback models.Feedback
	err := q.col(colFeedback).FindOne(ctx, bson.M{"userId": userID}).Decode(&feedback)
	return feedback, err
}

// InsertFeedback creates one testimonial
func (q *Queries) InsertFeedback(ctx context.Context, feedback models.Feedback) error {
	_, err := q.col(colFeedback).InsertOne(ctx, feedback)
	return err
}

// UpdateFeedback updates the headline and body of a user's testimonial
func (q *Queries) UpdateFeedback(ctx context.Context, userID, headline, body string) (int64, error) {
	update := bson.M{"$set": bson.M{"headline": headline, "feedback": body}}
	result, err := q.col(colFeedback).UpdateOne(ctx, bson.M{"userId": userID}, update)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

// DeleteFeedback removes a user's testimonial
func (q *Queries) DeleteFeedback(ctx context.Context, userID string) (int64, error) {
	result, err := q.col(colFeedback).DeleteOne(ctx, bson.M{"userId": userID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
