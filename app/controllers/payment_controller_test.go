package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Shihab066/learning-server/app/models"
	"github.com/Shihab066/learning-server/app/services"
	"github.com/Shihab066/learning-server/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.Logger = zap.NewNop()
}

type stubCheckout struct {
	createSession  func(ctx context.Context, userID string, products []models.CheckoutProduct) (string, error)
	confirmSession func(ctx context.Context, token, sessionID string) (services.ConfirmResult, error)
	expireSession  func(ctx context.Context, token, sessionID string) error
}

func (s *stubCheckout) CreateSession(ctx context.Context, userID string, products []models.CheckoutProduct) (string, error) {
	return s.createSession(ctx, userID, products)
}

func (s *stubCheckout) ConfirmSession(ctx context.Context, token, sessionID string) (services.ConfirmResult, error) {
	return s.confirmSession(ctx, token, sessionID)
}

func (s *stubCheckout) ExpireSession(ctx context.Context, token, sessionID string) error {
	return s.expireSession(ctx, token, sessionID)
}

func paymentRouter(checkout *stubCheckout) *gin.Engine {
	ctrl := NewPaymentController(checkout, nil)
	r := gin.New()
	r.POST("/payment/create-checkout-session", ctrl.CreateCheckoutSession)
	r.GET("/payment/retrieve-checkout-session/:token/:sessionId", ctrl.RetrieveCheckoutSession)
	r.POST("/payment/expire-session", ctrl.ExpireSession)
	return r
}

func TestCreateCheckoutSessionReturnsSessionID(t *testing.T) {
	checkout := &stubCheckout{
		createSession: func(ctx context.Context, userID string, products []models.CheckoutProduct) (string, error) {
			assert.Equal(t, "user1", userID)
			require.Len(t, products, 1)
			return "cs_123", nil
		},
	}
	r := paymentRouter(checkout)

	body := `{"userId":"user1","products":[{"courseId":"c1","_instructorId":"i1","name":"Go Basics","price":19.99,"image":"img"}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payment/create-checkout-session", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "cs_123", response["id"])
}

func TestCreateCheckoutSessionRejectsEmptyProducts(t *testing.T) {
	r := paymentRouter(&stubCheckout{})

	body := `{"userId":"user1","products":[]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payment/create-checkout-session", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRetrieveCheckoutSessionMissingTokenAnswersFailure(t *testing.T) {
	checkout := &stubCheckout{
		confirmSession: func(ctx context.Context, token, sessionID string) (services.ConfirmResult, error) {
			return services.ConfirmResult{}, services.ErrTokenNotFound
		},
	}
	r := paymentRouter(checkout)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payment/retrieve-checkout-session/gone/cs_123", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]bool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.False(t, response["success"])
}

func TestRetrieveCheckoutSessionConfirms(t *testing.T) {
	checkout := &stubCheckout{
		confirmSession: func(ctx context.Context, token, sessionID string) (services.ConfirmResult, error) {
			assert.Equal(t, "tok", token)
			assert.Equal(t, "cs_123", sessionID)
			return services.ConfirmResult{Success: true, Amount: 25.98, TransactionID: "pi_123"}, nil
		},
	}
	r := paymentRouter(checkout)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payment/retrieve-checkout-session/tok/cs_123", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]bool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response["success"])
}

func TestExpireSessionRejectsMissingFields(t *testing.T) {
	r := paymentRouter(&stubCheckout{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payment/expire-session", strings.NewReader(`{"sessionId":"cs_123"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExpireSessionCancels(t *testing.T) {
	var expired bool
	checkout := &stubCheckout{
		expireSession: func(ctx context.Context, token, sessionID string) error {
			expired = true
			assert.Equal(t, "tok", token)
			assert.Equal(t, "cs_123", sessionID)
			return nil
		},
	}
	r := paymentRouter(checkout)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payment/expire-session", strings.NewReader(`{"sessionId":"cs_123","token":"tok"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, expired)
}
