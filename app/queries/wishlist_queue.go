package queries

import (
	"context"

	"github.com/Shihab066/learning-server/app/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetWishlistItems lists a user's wishlist entries
func (q *Queries) GetWishlistItems(ctx context.Context, userID string) ([]models.WishlistItem, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 0, "courseId": 1, "userId": 1})
	cursor, err := q.col(colWishlist).Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.WishlistItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// FindWishlistItem checks whether the course is already wishlisted
func (q *Queries) FindWishlistItem(ctx context.Context, userID, courseID string) error {
	return q.col(colWishlist).FindOne(ctx, bson.M{"userId": userID, "courseId": courseID}).Err()
}

// InsertWishlistItem adds one course to the wishlist
func (q *Queries) InsertWishlistItem(ctx context.Context, item models.WishlistItem) error {
	_, err := q.col(colWishlist).InsertOne(ctx, item)
	return err
}

// DeleteWishlistItem removes one course from the wishlist
func (q *Queries) DeleteWishlistItem(ctx context.Context, userID, courseID string) (int64, error) {
	result, err := q.col(colWishlist).DeleteOne(ctx, bson.M{"userId": userID, "courseId": courseID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
