package queries

import (
	"context"

	"github.com/Shihab066/learning-server/app/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetCartItems lists the cart entries of one user
func (q *Queries) GetCartItems(ctx context.Context, userID string) ([]models.CartItem, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 0, "courseId": 1, "savedForLater": 1})
	cursor, err := q.col(colCart).Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.CartItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetCartCourses resolves cart entries to course cards, joining the cart
// collection back in to carry the savedForLater flag.
func (q *Queries) GetCartCourses(ctx context.Context, courseIDs []primitive.ObjectID) ([]bson.M, error) {
	pipeline := bson.A{
		bson.M{"$match": bson.M{"_id": bson.M{"$in": courseIDs}}},
		bson.M{"$lookup": bson.M{
			"from": colCart,
			"let":  bson.M{"courseId": "$_id"},
			"pipeline": bson.A{
				bson.M{"$match": bson.M{
					"$expr": bson.M{"$eq": bson.A{bson.M{"$toObjectId": "$courseId"}, "$$courseId"}},
				}},
			},
			"as": "cartItem",
		}},
		bson.M{"$addFields": bson.M{
			"savedForLater": bson.M{"$arrayElemAt": bson.A{"$cartItem.savedForLater", 0}},
		}},
		bson.M{"$project": bson.M{
			"_instructorId":   1,
			"instructorName":  1,
			"courseName":      1,
			"courseThumbnail": 1,
			"level":           1,
			"rating":          1,
			"totalReviews":    1,
			"totalModules":    1,
			"price":           1,
			"discount":        1,
			"savedForLater":   1,
		}},
	}

	cursor, err := q.col(colCourses).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var courses []bson.M
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// FindCartItem checks whether the course is already in the user's cart
func (q *Queries) FindCartItem(ctx context.Context, userID, courseID string) error {
	return q.col(colCart).FindOne(ctx, bson.M{"userId": userID, "courseId": courseID}).Err()
}

// InsertCartItem adds one course to the cart
func (q *Queries) InsertCartItem(ctx context.Context, item models.CartItem) error {
	_, err := q.col(colCart).InsertOne(ctx, item)
	return err
}

// UpdateCartItemStatus toggles the saved-for-later flag
func (q *Queries) UpdateCartItemStatus(ctx context.Context, userID, courseID string, savedForLater bool) (int64, error) {
	update := bson.M{"$set": bson.M{"savedForLater": savedForLater}}
	result, err := q.col(colCart).UpdateOne(ctx, bson.M{"userId": userID, "courseId": courseID}, update)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

// DeleteCartItem removes one course from the cart
func (q *Queries) DeleteCartItem(ctx context.Context, userID, courseID string) (int64, error) {
	result, err := q.col(colCart).DeleteOne(ctx, bson.M{"userId": userID, "courseId": courseID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
