package queries

import (
	"context"

	"github.com/Shihab066/learning-server/app/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Projection shared by the public course listings
var courseCardProjection = bson.M{
	"instructorName":  1,
	"courseName":      1,
	"courseThumbnail": 1,
	"level":           1,
	"rating":          1,
	"totalReviews":    1,
	"totalModules":    1,
	"price":           1,
	"discount":        1,
}

// GetTopCourses ranks approved courses by a combined score: students 60%,
// rating plus review count 30%, completion rate 10%.
func (q *Queries) GetTopCourses(ctx context.Context) ([]bson.M, error) {
	pipeline := bson.A{
		bson.M{"$match": bson.M{"status": models.CourseStatusApproved}},
		bson.M{"$addFields": bson.M{
			"combinedScore": bson.M{
				"$add": bson.A{
					bson.M{"$multiply": bson.A{"$students", 0.6}},
					bson.M{"$multiply": bson.A{bson.M{"$add": bson.A{"$rating", "$totalReviews"}}, 0.3}},
					bson.M{"$multiply": bson.A{
						bson.M{"$cond": bson.M{
							"if":   bson.M{"$eq": bson.A{"$students", 0}},
							"then": 0,
							"else": bson.M{"$divide": bson.A{"$courseCompleted", "$students"}},
						}},
						0.1,
					}},
				},
			},
		}},
		bson.M{"$sort": bson.M{"combinedScore": -1}},
		bson.M{"$project": bson.M{
			"courseName":      1,
			"courseThumbnail": 1,
			"instructorName":  1,
			"rating":          1,
			"totalReviews":    1,
		}},
		bson.M{"$limit": 8},
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

// GetApprovedCourses pages through approved courses, optionally filtered by a
// case insensitive name search and sorted by price.
func (q *Queries) GetApprovedCourses(ctx context.Context, search string, page, limit, sort int) ([]bson.M, int64, error) {
	filter := bson.M{
		"status":     models.CourseStatusApproved,
		"courseName": bson.M{"$regex": search, "$options": "i"},
	}

	total, err := q.col(colCourses).CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetProjection(courseCardProjection).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))
	if sort != 0 {
		opts.SetSort(bson.M{"price": sort})
	}

	cursor, err := q.col(colCourses).Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var courses []bson.M
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, 0, err
	}
	return courses, total, nil
}

// GetCourseByID returns a single course with the given projection
func (q *Queries) GetCourseByID(ctx context.Context, id primitive.ObjectID, projection bson.M) (bson.M, error) {
	var course bson.M
	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}
	err := q.col(colCourses).FindOne(ctx, bson.M{"_id": id}, opts).Decode(&course)
	return course, err
}

// GetAllCourses returns every course document, admin moderation view
func (q *Queries) GetAllCourses(ctx context.Context) ([]models.Course, error) {
	cursor, err := q.col(colCourses).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var courses []models.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// GetMoreCoursesByInstructor lists the public course cards of one instructor
func (q *Queries) GetMoreCoursesByInstructor(ctx context.Context, instructorID string) ([]bson.M, error) {
	opts := options.Find().SetProjection(courseCardProjection)
	cursor, err := q.col(colCourses).Find(ctx, bson.M{"_instructorId": instructorID}, opts)
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

// GetInstructorCourses lists an instructor's own courses with moderation state
func (q *Queries) GetInstructorCourses(ctx context.Context, instructorID, search string) ([]bson.M, error) {
	filter := bson.M{
		"_instructorId": instructorID,
		"courseName":    bson.M{"$regex": search, "$options": "i"},
	}
	opts := options.Find().SetProjection(bson.M{
		"_instructorId":   1,
		"courseName":      1,
		"courseThumbnail": 1,
		"price":           1,
		"discount":        1,
		"level":           1,
		"status":          1,
		"feedback":        1,
		"publish":         1,
		"rating":          1,
		"totalReviews":    1,
	})

	cursor, err := q.col(colCourses).Find(ctx, filter, opts)
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

// GetCoursesByIDs resolves cart or wishlist entries to course cards
func (q *Queries) GetCoursesByIDs(ctx context.Context, ids []primitive.ObjectID) ([]bson.M, error) {
	opts := options.Find().SetProjection(courseCardProjection)
	cursor, err := q.col(colCourses).Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
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

// InsertCourse creates a new course document
func (q *Queries) InsertCourse(ctx context.Context, course models.Course) (primitive.ObjectID, error) {
	result, err := q.col(colCourses).InsertOne(ctx, course)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := result.InsertedID.(primitive.ObjectID)
	return id, nil
}

// UpdateCourse applies a $set update on one course
func (q *Queries) UpdateCourse(ctx context.Context, id primitive.ObjectID, set bson.M) (int64, error) {
	result, err := q.col(colCourses).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

// DeleteCourse removes one course
func (q *Queries) DeleteCourse(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := q.col(colCourses).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// CountCoursesByInstructor counts courses owned by the instructor
func (q *Queries) CountCoursesByInstructor(ctx context.Context, instructorID string) (int64, error) {
	return q.col(colCourses).CountDocuments(ctx, bson.M{"_instructorId": instructorID})
}

// SumStudentsByInstructor totals student counts across an instructor's courses
func (q *Queries) SumStudentsByInstructor(ctx context.Context, instructorID string) (int64, error) {
	pipeline := bson.A{
		bson.M{"$match": bson.M{"_instructorId": instructorID}},
		bson.M{"$group": bson.M{"_id": nil, "totalStudents": bson.M{"$sum": "$students"}}},
		bson.M{"$project": bson.M{"_id": 0, "totalStudents": 1}},
	}

	cursor, err := q.col(colCourses).Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		TotalStudents int64 `bson:"totalStudents"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].TotalStudents, nil
}

// IncrementCourseCompleted bumps the completion counter of one course
func (q *Queries) IncrementCourseCompleted(ctx context.Context, id primitive.ObjectID) error {
	_, err := q.col(colCourses).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"courseCompleted": 1}})
	return err
}
