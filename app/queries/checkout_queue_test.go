package queries

import (
	"context"
	"testing"
	"time"

	"github.com/Shihab066/learning-server/app/models"
	"github.com/Shihab066/learning-server/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func purchaseFixture() (models.Payment, []models.Enrollment) {
	payment := models.Payment{
		UserID: "user1",
		Courses: []models.PurchasedCourse{
			{CourseID: "64f1b2a3c4d5e6f7a8b9c0d1", InstructorID: "inst1", CourseName: "Go Basics", Price: 19.99},
		},
		Amount:        19.99,
		Status:        "succeeded",
		PaymentMethod: []string{"card"},
		TransactionID: "pi_123",
		PurchaseDate:  time.Now(),
	}
	enrollments := []models.Enrollment{
		{UserID: "user1", InstructorID: "inst1", CourseID: "64f1b2a3c4d5e6f7a8b9c0d1", PaymentID: "pi_123", Price: 19.99, Status: "active"},
	}
	return payment, enrollments
}

func TestCompletePurchase(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("records payment and enrollments", func(mt *mtest.T) {
		q := New(database.NewStore(mt.Client, "testdb"))
		payment, enrollments := purchaseFixture()

		mt.AddMockResponses(
			// no payment with this transactionId yet
			mtest.CreateCursorResponse(0, "testdb.payments", mtest.FirstBatch),
			// findAndModify consumes the token
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{{Key: "token", Value: "tok1"}}}),
			// payment insert, enrollment insert, cart cleanup, student counters
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
			// commitTransaction
			mtest.CreateSuccessResponse(),
		)

		confirmed, err := q.CompletePurchase(context.Background(), "tok1", payment, enrollments)
		require.NoError(mt, err)
		assert.True(mt, confirmed)
	})

	mt.Run("token already consumed", func(mt *mtest.T) {
		q := New(database.NewStore(mt.Client, "testdb"))
		payment, enrollments := purchaseFixture()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "testdb.payments", mtest.FirstBatch),
			// findAndModify finds no token
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}),
			// commitTransaction
			mtest.CreateSuccessResponse(),
		)

		confirmed, err := q.CompletePurchase(context.Background(), "tok1", payment, enrollments)
		require.NoError(mt, err)
		assert.False(mt, confirmed)
	})

	mt.Run("transactionId recorded under an earlier token", func(mt *mtest.T) {
		q := New(database.NewStore(mt.Client, "testdb"))
		payment, enrollments := purchaseFixture()

		mt.AddMockResponses(
			// existing payment short-circuits before the transaction starts
			mtest.CreateCursorResponse(0, "testdb.payments", mtest.FirstBatch,
				bson.D{{Key: "transactionId", Value: "pi_123"}}),
			// token delete
			mtest.CreateSuccessResponse(),
		)

		confirmed, err := q.CompletePurchase(context.Background(), "tok1", payment, enrollments)
		require.NoError(mt, err)
		assert.False(mt, confirmed)
	})

	mt.Run("concurrent confirmation wins the unique index race", func(mt *mtest.T) {
		q := New(database.NewStore(mt.Client, "testdb"))
		payment, enrollments := purchaseFixture()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "testdb.payments", mtest.FirstBatch),
			// findAndModify consumes the token
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{{Key: "token", Value: "tok1"}}}),
			// payment insert hits the unique transactionId index
			mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key"}),
			// abortTransaction
			mtest.CreateSuccessResponse(),
			// token delete outside the transaction
			mtest.CreateSuccessResponse(),
		)

		// The write error aborts the transaction server side, so the duplicate
		// must be reported as not confirmed rather than a failed commit.
		confirmed, err := q.CompletePurchase(context.Background(), "tok1", payment, enrollments)
		require.NoError(mt, err)
		assert.False(mt, confirmed)
	})
}
