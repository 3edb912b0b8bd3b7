package queries

import (
	"context"
	"errors"

	"github.com/Shihab066/learning-server/app/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IsEnrolled reports whether the user is enrolled in the course
func (q *Queries) IsEnrolled(ctx context.Context, userID, courseID string) (bool, error) {
	err := q.col(colEnrollment).FindOne(ctx, bson.M{"userId": userID, "courseId": courseID}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetEnrolledCourseIDs lists the course ids a student is enrolled in
func (q *Queries) GetEnrolledCourseIDs(ctx context.Context, userID string) ([]string, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 0, "courseId": 1})
	cursor, err := q.col(colEnrollment).Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		CourseID string `bson:"courseId"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.CourseID)
	}
	return ids, nil
}

// GetPendingReviewEnrollments lists enrollments the student has not reviewed
func (q *Queries) GetPendingReviewEnrollments(ctx context.Context, userID string) ([]bson.M, error) {
	opts := options.Find().SetProjection(bson.M{"courseId": 1, "enrollmentDate": 1})
	cursor, err := q.col(colEnrollment).Find(ctx, bson.M{"userId": userID, "reviewed": false}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	rows := []bson.M{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// MarkEnrollmentReviewed flips the reviewed flag after a review is added
func (q *Queries) MarkEnrollmentReviewed(ctx context.Context, userID, courseID string) error {
	filter := bson.M{"userId": userID, "courseId": courseID}
	_, err := q.col(colEnrollment).UpdateOne(ctx, filter, bson.M{"$set": bson.M{"reviewed": true}})
	return err
}

// UpdateEnrollmentProgress records watched lectures and, on completion,
// marks the enrollment complete. Returns the pre-update document so the
// caller can tell whether this update was the first completion.
func (q *Queries) UpdateEnrollmentProgress(ctx context.Context, userID, courseID string, lecturesWatched int, complete bool) (models.Enrollment, error) {
	filter := bson.M{"userId": userID, "courseId": courseID}
	set := bson.M{"totalLecturesWatched": lecturesWatched}
	if complete {
		set["complete"] = true
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.Before)
	var previous models.Enrollment
	err := q.col(colEnrollment).FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&previous)
	return previous, err
}
