package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/Shihab066/learning-server/app/models"
	"github.com/Shihab066/learning-server/pkg/encryption"
	"github.com/Shihab066/learning-server/pkg/payments"
	"github.com/Shihab066/learning-server/pkg/utils"
)

var ErrTokenNotFound = errors.New("checkout token not found")

// CheckoutStore is the persistence surface the checkout flow needs.
type CheckoutStore interface {
	SaveCheckoutToken(ctx context.Context, token models.CheckoutToken) error
	CheckoutTokenExists(ctx context.Context, token string) (bool, error)
	DeleteCheckoutToken(ctx context.Context, token string) error
	CompletePurchase(ctx context.Context, token string, payment models.Payment, enrollments []models.Enrollment) (bool, error)
}

// CheckoutService drives the purchase flow against a hosted checkout
// provider: open a session bound to a single-use token, confirm the session
// after redirect and redeem the token, or expire the session on cancel.
type CheckoutService struct {
	store    CheckoutStore
	provider payments.CheckoutProvider
}

func NewCheckoutService(store CheckoutStore, provider payments.CheckoutProvider) *CheckoutService {
	return &CheckoutService{store: store, provider: provider}
}

// ConfirmResult is handed back to the client after session confirmation.
type ConfirmResult struct {
	Success       bool    `json:"success"`
	Amount        float64 `json:"amount,omitempty"`
	TransactionID string  `json:"transactionId,omitempty"`
}

// CreateSession issues a fresh redemption token, persists it, then opens a
// hosted checkout session whose redirect URLs carry the token back. The
// purchased courses travel in the session metadata so confirmation does not
// trust the client for them.
func (s *CheckoutService) CreateSession(ctx context.Context, userID string, products []models.CheckoutProduct) (string, error) {
	token, err := encryption.GenerateTemporaryToken(64)
	if err != nil {
		return "", err
	}

	err = s.store.SaveCheckoutToken(ctx, models.CheckoutToken{
		Token:     token,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return "", err
	}

	lineItems := make([]payments.LineItem, 0, len(products))
	courses := make([]models.PurchasedCourse, 0, len(products))
	for _, product := range products {
		lineItems = append(lineItems, payments.LineItem{
			Name:       product.Name,
			Image:      product.Image,
			UnitAmount: int64(math.Round(product.Price * 100)),
			Currency:   utils.Currency,
		})
		courses = append(courses, models.PurchasedCourse{
			CourseID:     product.CourseID,
			InstructorID: product.InstructorID,
			CourseName:   product.Name,
			Price:        product.Price,
		})
	}

	coursesJSON, err := json.Marshal(courses)
	if err != nil {
		return "", err
	}

	sessionID, err := s.provider.CreateSession(ctx, payments.SessionParams{
		LineItems:  lineItems,
		SuccessURL: fmt.Sprintf("%s/paymentSuccess/%s/{CHECKOUT_SESSION_ID}", utils.ClientURL, token),
		CancelURL:  fmt.Sprintf("%s/cart?cancel=%s&session={CHECKOUT_SESSION_ID}", utils.ClientURL, token),
		ExpiresAt:  time.Now().Add(time.Duration(utils.CheckoutExpires) * time.Minute),
		Metadata: map[string]string{
			"user_id": userID,
			"courses": string(coursesJSON),
		},
	})
	if err != nil {
		return "", err
	}
	return sessionID, nil
}

// ConfirmSession redeems the token against the settled session. The token
// existence is checked before touching the provider so replays of an already
// redeemed redirect never cost a provider round trip.
func (s *CheckoutService) ConfirmSession(ctx context.Context, token, sessionID string) (ConfirmResult, error) {
	exists, err := s.store.CheckoutTokenExists(ctx, token)
	if err != nil {
		return ConfirmResult{}, err
	}
	if !exists {
		return ConfirmResult{}, ErrTokenNotFound
	}

	result, err := s.provider.RetrieveSession(ctx, sessionID)
	if err != nil {
		return ConfirmResult{}, err
	}

	var courses []models.PurchasedCourse
	if err := json.Unmarshal([]byte(result.Metadata["courses"]), &courses); err != nil {
		return ConfirmResult{}, err
	}
	userID := result.Metadata["user_id"]

	now := time.Now().UTC()
	payment := models.Payment{
		UserID:        userID,
		Courses:       courses,
		Amount:        float64(result.AmountReceived) / 100,
		Status:        result.Status,
		PaymentMethod: result.PaymentMethodTypes,
		TransactionID: result.TransactionID,
		Receipt:       result.ReceiptURL,
		PurchaseDate:  now,
	}

	enrollments := make([]models.Enrollment, 0, len(courses))
	for _, course := range courses {
		enrollments = append(enrollments, models.Enrollment{
			UserID:         userID,
			InstructorID:   course.InstructorID,
			CourseID:       course.CourseID,
			EnrollmentDate: now,
			PaymentID:      result.TransactionID,
			Price:          course.Price,
			Status:         models.EnrollmentStatusActive,
		})
	}

	confirmed, err := s.store.CompletePurchase(ctx, token, payment, enrollments)
	if err != nil {
		return ConfirmResult{}, err
	}
	if !confirmed {
		return ConfirmResult{Success: false}, nil
	}
	return ConfirmResult{
		Success:       true,
		Amount:        payment.Amount,
		TransactionID: payment.TransactionID,
	}, nil
}

// ExpireSession cancels an open session. The token is removed first so the
// session can never be confirmed afterwards, even when the provider call
// fails.
func (s *CheckoutService) ExpireSession(ctx context.Context, token, sessionID string) error {
	if err := s.store.DeleteCheckoutToken(ctx, token); err != nil {
		return err
	}
	return s.provider.ExpireSession(ctx, sessionID)
}
