package queries

import (
	"context"
	"math"

	"github.com/Shihab066/learning-server/app/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var reviewProjection = bson.M{
	"_id":       0,
	"userName":  1,
	"userImage": 1,
	"rating":    1,
	"date":      1,
	"review":    1,
}

// GetCourseRatingCounts buckets a course's review ratings per star
func (q *Queries) GetCourseRatingCounts(ctx context.Context, courseID string) (map[int]int, int, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 0, "rating": 1})
	cursor, err := q.col(colReviews).Find(ctx, bson.M{"_courseId": courseID}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Rating int `bson:"rating"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, 0, err
	}

	counts := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	for _, row := range rows {
		if row.Rating >= 1 && row.Rating <= 5 {
			counts[row.Rating]++
		}
	}
	return counts, len(rows), nil
}

// GetCourseReviews returns up to limit reviews of a course plus the total count
func (q *Queries) GetCourseReviews(ctx context.Context, courseID string, limit int) ([]bson.M, int64, error) {
	filter := bson.M{"_courseId": courseID}

	total, err := q.col(colReviews).CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().SetProjection(reviewProjection).SetLimit(int64(limit))
	cursor, err := q.col(colReviews).Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	reviews := []bson.M{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

// GetInstructorReviews searches reviews across an instructor's courses
func (q *Queries) GetInstructorReviews(ctx context.Context, instructorID, search string, limit int) ([]bson.M, int64, error) {
	filter := bson.M{
		"_instructorId": instructorID,
		"$or": bson.A{
			bson.M{"courseName": bson.M{"$regex": search, "$options": "i"}},
			bson.M{"userName": bson.M{"$regex": search, "$options": "i"}},
		},
	}

	total, err := q.col(colReviews).CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	projection := bson.M{
		"_id":        0,
		"userName":   1,
		"userImage":  1,
		"courseName": 1,
		"rating":     1,
		"date":       1,
		"review":     1,
	}
	opts := options.Find().SetProjection(projection).SetLimit(int64(limit))
	cursor, err := q.col(colReviews).Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	reviews := []bson.M{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

// GetReviewsByStudent lists a student's own reviews
func (q *Queries) GetReviewsByStudent(ctx context.Context, studentID string) ([]bson.M, error) {
	opts := options.Find().SetProjection(bson.M{
		"_courseId":       1,
		"courseName":      1,
		"courseThumbnail": 1,
		"rating":          1,
		"review":          1,
		"date":            1,
	})
	cursor, err := q.col(colReviews).Find(ctx, bson.M{"_studentId": studentID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reviews := []bson.M{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// InsertReview stores a new review document
func (q *Queries) InsertReview(ctx context.Context, review models.Review) error {
	_, err := q.col(colReviews).InsertOne(ctx, review)
	return err
}

// RecalculateCourseRating recomputes a course's average rating and review
// count from its reviews and writes them back on the course document.
func (q *Queries) RecalculateCourseRating(ctx context.Context, courseID primitive.ObjectID) error {
	pipeline := bson.A{
		bson.M{"$match": bson.M{"_courseId": courseID.Hex()}},
		bson.M{"$group": bson.M{
			"_id":          nil,
			"rating":       bson.M{"$avg": "$rating"},
			"totalReviews": bson.M{"$sum": 1},
		}},
	}

	cursor, err := q.col(colReviews).Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Rating       float64 `bson:"rating"`
		TotalReviews int     `bson:"totalReviews"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return err
	}

	rating := 0.0
	totalReviews := 0
	if len(results) > 0 {
		rating = math.Round(results[0].Rating*10) / 10
		totalReviews = results[0].TotalReviews
	}

	update := bson.M{"$set": bson.M{"rating": rating, "totalReviews": totalReviews}}
	_, err = q.col(colCourses).UpdateOne(ctx, bson.M{"_id": courseID}, update)
	return err
}

// CountReviewsByInstructor counts reviews across an instructor's courses
func (q *Queries) CountReviewsByInstructor(ctx context.Context, instructorID string) (int64, error) {
	return q.col(colReviews).CountDocuments(ctx, bson.M{"_instructorId": instructorID})
}

// AverageRatingByInstructor computes the mean review rating of an instructor
func (q *Queries) AverageRatingByInstructor(ctx context.Context, instructorID string) (float64, int64, error) {
	total, err := q.col(colReviews).CountDocuments(ctx, bson.M{"_instructorId": instructorID})
	if err != nil {
		return 0, 0, err
	}
	if total == 0 {
		return 0, 0, nil
	}

	pipeline := bson.A{
		bson.M{"$match": bson.M{"_instructorId": instructorID}},
		bson.M{"$group": bson.M{"_id": nil, "ratingAverage": bson.M{"$avg": "$rating"}}},
	}

	cursor, err := q.col(colReviews).Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		RatingAverage float64 `bson:"ratingAverage"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, 0, err
	}
	if len(results) == 0 {
		return 0, total, nil
	}
	return math.Round(results[0].RatingAverage*10) / 10, total, nil
}
