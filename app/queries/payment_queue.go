package queries

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetPaymentsByUser returns the purchase history of one student, newest first
func (q *Queries) GetPaymentsByUser(ctx context.Context, userID string) ([]bson.M, error) {
	opts := options.Find().
		SetProjection(bson.M{
			"courses":       1,
			"amount":        1,
			"status":        1,
			"transactionId": 1,
			"receipt":       1,
			"purchaseDate":  1,
		}).
		SetSort(bson.M{"purchaseDate": -1})

	cursor, err := q.col(colPayments).Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	payments := []bson.M{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
