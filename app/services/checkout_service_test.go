package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Shihab066/learning-server/app/models"
	"github.com/Shihab066/learning-server/pkg/payments"
	"github.com/Shihab066/learning-server/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	utils.ClientURL = "http://localhost:5173"
	utils.Currency = "usd"
	utils.CheckoutExpires = 30
}

type stubStore struct {
	saveToken        func(ctx context.Context, token models.CheckoutToken) error
	tokenExists      func(ctx context.Context, token string) (bool, error)
	deleteToken      func(ctx context.Context, token string) error
	completePurchase func(ctx context.Context, token string, payment models.Payment, enrollments []models.Enrollment) (bool, error)
}

func (s *stubStore) SaveCheckoutToken(ctx context.Context, token models.CheckoutToken) error {
	return s.saveToken(ctx, token)
}

func (s *stubStore) CheckoutTokenExists(ctx context.Context, token string) (bool, error) {
	return s.tokenExists(ctx, token)
}

func (s *stubStore) DeleteCheckoutToken(ctx context.Context, token string) error {
	return s.deleteToken(ctx, token)
}

func (s *stubStore) CompletePurchase(ctx context.Context, token string, payment models.Payment, enrollments []models.Enrollment) (bool, error) {
	return s.completePurchase(ctx, token, payment, enrollments)
}

type stubProvider struct {
	createSession   func(ctx context.Context, params payments.SessionParams) (string, error)
	retrieveSession func(ctx context.Context, sessionID string) (payments.SessionResult, error)
	expireSession   func(ctx context.Context, sessionID string) error
}

func (p *stubProvider) CreateSession(ctx context.Context, params payments.SessionParams) (string, error) {
	return p.createSession(ctx, params)
}

func (p *stubProvider) RetrieveSession(ctx context.Context, sessionID string) (payments.SessionResult, error) {
	return p.retrieveSession(ctx, sessionID)
}

func (p *stubProvider) ExpireSession(ctx context.Context, sessionID string) error {
	return p.expireSession(ctx, sessionID)
}

func TestCreateSessionPersistsTokenBeforeOpeningSession(t *testing.T) {
	var savedToken string
	var gotParams payments.SessionParams

	store := &stubStore{
		saveToken: func(ctx context.Context, token models.CheckoutToken) error {
			savedToken = token.Token
			assert.False(t, token.CreatedAt.IsZero())
			return nil
		},
	}
	provider := &stubProvider{
		createSession: func(ctx context.Context, params payments.SessionParams) (string, error) {
			require.NotEmpty(t, savedToken, "token must be persisted before the session is opened")
			gotParams = params
			return "cs_123", nil
		},
	}

	svc := NewCheckoutService(store, provider)
	sessionID, err := svc.CreateSession(context.Background(), "user1", []models.CheckoutProduct{
		{CourseID: "c1", InstructorID: "i1", Name: "Go Basics", Price: 19.99, Image: "img1"},
		{CourseID: "c2", InstructorID: "i2", Name: "Advanced Go", Price: 5.99, Image: "img2"},
	})
	require.NoError(t, err)
	assert.Equal(t, "cs_123", sessionID)

	assert.Len(t, savedToken, 64)

	require.Len(t, gotParams.LineItems, 2)
	assert.Equal(t, int64(1999), gotParams.LineItems[0].UnitAmount)
	assert.Equal(t, int64(599), gotParams.LineItems[1].UnitAmount)
	assert.Equal(t, "usd", gotParams.LineItems[0].Currency)

	assert.Contains(t, gotParams.SuccessURL, "/paymentSuccess/"+savedToken+"/")
	assert.Contains(t, gotParams.CancelURL, "cancel="+savedToken)

	assert.Equal(t, "user1", gotParams.Metadata["user_id"])
	var courses []models.PurchasedCourse
	require.NoError(t, json.Unmarshal([]byte(gotParams.Metadata["courses"]), &courses))
	require.Len(t, courses, 2)
	assert.Equal(t, "c1", courses[0].CourseID)
	assert.Equal(t, "i1", courses[0].InstructorID)
	assert.Equal(t, 19.99, courses[0].Price)
}

func TestConfirmSessionMissingTokenSkipsProvider(t *testing.T) {
	store := &stubStore{
		tokenExists: func(ctx context.Context, token string) (bool, error) {
			return false, nil
		},
	}
	provider := &stubProvider{
		retrieveSession: func(ctx context.Context, sessionID string) (payments.SessionResult, error) {
			t.Fatal("provider must not be called when the token is already redeemed")
			return payments.SessionResult{}, nil
		},
	}

	svc := NewCheckoutService(store, provider)
	_, err := svc.ConfirmSession(context.Background(), "gone", "cs_123")
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestConfirmSessionCompletesPurchase(t *testing.T) {
	coursesJSON, _ := json.Marshal([]models.PurchasedCourse{
		{CourseID: "c1", InstructorID: "i1", CourseName: "Go Basics", Price: 19.99},
		{CourseID: "c2", InstructorID: "i2", CourseName: "Advanced Go", Price: 5.99},
	})

	var gotToken string
	var gotPayment models.Payment
	var gotEnrollments []models.Enrollment

	store := &stubStore{
		tokenExists: func(ctx context.Context, token string) (bool, error) {
			return true, nil
		},
		completePurchase: func(ctx context.Context, token string, payment models.Payment, enrollments []models.Enrollment) (bool, error) {
			gotToken = token
			gotPayment = payment
			gotEnrollments = enrollments
			return true, nil
		},
	}
	provider := &stubProvider{
		retrieveSession: func(ctx context.Context, sessionID string) (payments.SessionResult, error) {
			assert.Equal(t, "cs_123", sessionID)
			return payments.SessionResult{
				Metadata: map[string]string{
					"user_id": "user1",
					"courses": string(coursesJSON),
				},
				AmountReceived:     2598,
				Status:             "succeeded",
				PaymentMethodTypes: []string{"card"},
				TransactionID:      "pi_123",
				ReceiptURL:         "https://receipt.test/r1",
			}, nil
		},
	}

	svc := NewCheckoutService(store, provider)
	result, err := svc.ConfirmSession(context.Background(), "tok", "cs_123")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 25.98, result.Amount)
	assert.Equal(t, "pi_123", result.TransactionID)

	assert.Equal(t, "tok", gotToken)
	assert.Equal(t, "user1", gotPayment.UserID)
	assert.Equal(t, 25.98, gotPayment.Amount)
	assert.Equal(t, "succeeded", gotPayment.Status)
	assert.Equal(t, "pi_123", gotPayment.TransactionID)
	assert.Len(t, gotPayment.Courses, 2)

	require.Len(t, gotEnrollments, 2)
	for _, enrollment := range gotEnrollments {
		assert.Equal(t, "user1", enrollment.UserID)
		assert.Equal(t, "pi_123", enrollment.PaymentID)
		assert.Equal(t, models.EnrollmentStatusActive, enrollment.Status)
		assert.False(t, enrollment.EnrollmentDate.IsZero())
	}
	assert.Equal(t, "c1", gotEnrollments[0].CourseID)
	assert.Equal(t, "i1", gotEnrollments[0].InstructorID)
	assert.Equal(t, 19.99, gotEnrollments[0].Price)
}

func TestConfirmSessionDuplicateTransactionReportsFailure(t *testing.T) {
	coursesJSON, _ := json.Marshal([]models.PurchasedCourse{
		{CourseID: "c1", InstructorID: "i1", CourseName: "Go Basics", Price: 19.99},
	})

	store := &stubStore{
		tokenExists: func(ctx context.Context, token string) (bool, error) {
			return true, nil
		},
		completePurchase: func(ctx context.Context, token string, payment models.Payment, enrollments []models.Enrollment) (bool, error) {
			return false, nil
		},
	}
	provider := &stubProvider{
		retrieveSession: func(ctx context.Context, sessionID string) (payments.SessionResult, error) {
			return payments.SessionResult{
				Metadata:      map[string]string{"user_id": "user1", "courses": string(coursesJSON)},
				TransactionID: "pi_dup",
			}, nil
		},
	}

	svc := NewCheckoutService(store, provider)
	result, err := svc.ConfirmSession(context.Background(), "tok", "cs_123")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Empty(t, result.TransactionID)
}

func TestExpireSessionDeletesTokenBeforeProvider(t *testing.T) {
	var deleted bool

	store := &stubStore{
		deleteToken: func(ctx context.Context, token string) error {
			deleted = true
			assert.Equal(t, "tok", token)
			return nil
		},
	}
	provider := &stubProvider{
		expireSession: func(ctx context.Context, sessionID string) error {
			require.True(t, deleted, "token must be removed before the provider call")
			assert.Equal(t, "cs_123", sessionID)
			return nil
		},
	}

	svc := NewCheckoutService(store, provider)
	require.NoError(t, svc.ExpireSession(context.Background(), "tok", "cs_123"))
	assert.True(t, deleted)
}

func TestExpireSessionStopsWhenDeleteFails(t *testing.T) {
	store := &stubStore{
		deleteToken: func(ctx context.Context, token string) error {
			return errors.New("write failed")
		},
	}
	provider := &stubProvider{
		expireSession: func(ctx context.Context, sessionID string) error {
			t.Fatal("provider must not be called when the token delete fails")
			return nil
		},
	}

	svc := NewCheckoutService(store, provider)
	assert.Error(t, svc.ExpireSession(context.Background(), "tok", "cs_123"))
}
