package queries

import (
	"context"

	"github.com/Shihab066/learning-server/app/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Get user by email
func (q *Queries) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := q.col(colUsers).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	return user, err
}

// Get user by user ID
func (q *Queries) GetUserByID(ctx context.Context, id string) (models.User, error) {
	var user models.User
	err := q.col(colUsers).FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	return user, err
}

// Create new user data
func (q *Queries) CreateUser(ctx context.Context, user models.User) error {
	_, err := q.col(colUsers).InsertOne(ctx, user)
	return err
}

// List users matched by name or email, admin view
func (q *Queries) GetUsers(ctx context.Context, search string, limit int) ([]models.User, int64, error) {
	filter := bson.M{
		"$or": bson.A{
			bson.M{"name": bson.M{"$regex": search, "$options": "i"}},
			bson.M{"email": bson.M{"$regex": search, "$options": "i"}},
		},
	}

	total, err := q.col(colUsers).CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	cursor, err := q.col(colUsers).Find(ctx, filter, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// Update user profile name and image
func (q *Queries) UpdateUserProfile(ctx context.Context, id, name, image string) (int64, error) {
	update := bson.M{"$set": bson.M{"name": name, "image": image}}
	result, err := q.col(colUsers).UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

// Update instructor public profile fields
func (q *Queries) UpdateInstructorProfile(ctx context.Context, id string, profile bson.M) (int64, error) {
	result, err := q.col(colUsers).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": profile})
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

// Update user role
func (q *Queries) UpdateUserRole(ctx context.Context, id, role string) (int64, error) {
	result, err := q.col(colUsers).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

// Flip the suspended flag on the user document
func (q *Queries) SetUserSuspended(ctx context.Context, id string, suspended bool) error {
	opts := options.Update().SetUpsert(true)
	_, err := q.col(colUsers).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"suspended": suspended}}, opts)
	return err
}

// GetInstructorProfiles lists the public card fields of every instructor
func (q *Queries) GetInstructorProfiles(ctx context.Context) ([]models.User, error) {
	opts := options.Find().SetProjection(bson.M{"name": 1, "image": 1, "headline": 1})
	cursor, err := q.col(colUsers).Find(ctx, bson.M{"role": "instructor"}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var instructors []models.User
	if err := cursor.All(ctx, &instructors); err != nil {
		return nil, err
	}
	return instructors, nil
}
