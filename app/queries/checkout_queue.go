package queries

import (
	"context"
	"errors"

	"github.com/Shihab066/learning-server/app/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// SaveCheckoutToken persists the single-use redemption token before the
// hosted session is created.
func (q *Queries) SaveCheckoutToken(ctx context.Context, token models.CheckoutToken) error {
	_, err := q.col(colTokens).InsertOne(ctx, token)
	return err
}

// CheckoutTokenExists reports whether the token is still live. A missing
// token means already redeemed or never issued.
func (q *Queries) CheckoutTokenExists(ctx context.Context, token string) (bool, error) {
	err := q.col(colTokens).FindOne(ctx, bson.M{"token": token}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// DeleteCheckoutToken removes the token, used by session expiry
func (q *Queries) DeleteCheckoutToken(ctx context.Context, token string) error {
	_, err := q.col(colTokens).DeleteOne(ctx, bson.M{"token": token})
	return err
}

// errDuplicateTransaction aborts the confirmation transaction when the
// payment intent was already recorded under an earlier token.
var errDuplicateTransaction = errors.New("transaction already recorded")

// CompletePurchase runs the confirmation fan-out in one multi-document
// transaction: consume the token, insert the payment record, insert one
// enrollment per course, clear the matching cart entries and bump each
// course's student counter. The token consumption is a FindOneAndDelete
// inside the transaction, so the first confirmer wins, a concurrent retry
// observes no token, and a partial failure rolls the token back and leaves
// the purchase retryable.
//
// Returns false when the token was already consumed (nothing written) or
// when the payment intent was recorded before (unique transactionId index);
// the duplicate case still consumes the token, outside the transaction,
// since a write error aborts the transaction server side.
func (q *Queries) CompletePurchase(ctx context.Context, token string, payment models.Payment, enrollments []models.Enrollment) (bool, error) {
	// Duplicate adapter callback: the same payment intent was recorded
	// under an earlier token. Consume this token and report not successful.
	err := q.col(colPayments).FindOne(ctx, bson.M{"transactionId": payment.TransactionID}).Err()
	if err == nil {
		if _, err := q.col(colTokens).DeleteOne(ctx, bson.M{"token": token}); err != nil {
			return false, err
		}
		return false, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return false, err
	}

	courseIDs := make([]string, 0, len(payment.Courses))
	objectIDs := make([]primitive.ObjectID, 0, len(payment.Courses))
	for _, course := range payment.Courses {
		courseIDs = append(courseIDs, course.CourseID)
		if id, err := primitive.ObjectIDFromHex(course.CourseID); err == nil {
			objectIDs = append(objectIDs, id)
		}
	}

	sess, err := q.store.Client.StartSession()
	if err != nil {
		return false, err
	}
	defer sess.EndSession(ctx)

	confirmed, err := sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		err := q.col(colTokens).FindOneAndDelete(sc, bson.M{"token": token}).Err()
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		if err != nil {
			return false, err
		}

		if _, err := q.col(colPayments).InsertOne(sc, payment); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				// Lost the race against a concurrent confirmation of the
				// same intent. The write error already aborted the
				// transaction, surface that and clean up outside it.
				return false, errDuplicateTransaction
			}
			return false, err
		}

		docs := make([]interface{}, 0, len(enrollments))
		for _, enrollment := range enrollments {
			docs = append(docs, enrollment)
		}
		if _, err := q.col(colEnrollment).InsertMany(sc, docs); err != nil {
			return false, err
		}

		cartFilter := bson.M{"userId": payment.UserID, "courseId": bson.M{"$in": courseIDs}}
		if _, err := q.col(colCart).DeleteMany(sc, cartFilter); err != nil {
			return false, err
		}

		counterFilter := bson.M{"_id": bson.M{"$in": objectIDs}}
		if _, err := q.col(colCourses).UpdateMany(sc, counterFilter, bson.M{"$inc": bson.M{"students": 1}}); err != nil {
			return false, err
		}

		return true, nil
	})
	if errors.Is(err, errDuplicateTransaction) {
		if _, err := q.col(colTokens).DeleteOne(ctx, bson.M{"token": token}); err != nil {
			return false, err
		}
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return confirmed.(bool), nil
}
