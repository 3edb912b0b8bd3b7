package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/Shihab066/learning-server/app/models"
	"github.com/Shihab066/learning-server/app/services"
	"github.com/Shihab066/learning-server/pkg/utils"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// PaymentStore is the slice of the data layer the payment handlers read.
type PaymentStore interface {
	GetPaymentsByUser(ctx context.Context, userID string) ([]bson.M, error)
}

// Checkout drives the hosted session flow for the payment handlers.
type Checkout interface {
	CreateSession(ctx context.Context, userID string, products []models.CheckoutProduct) (string, error)
	ConfirmSession(ctx context.Context, token, sessionID string) (services.ConfirmResult, error)
	ExpireSession(ctx context.Context, token, sessionID string) error
}

type PaymentController struct {
	checkout Checkout
	store    PaymentStore
}

func NewPaymentController(checkout Checkout, store PaymentStore) *PaymentController {
	return &PaymentController{checkout: checkout, store: store}
}

// CreateCheckoutSession opens a hosted checkout session for the cart content
func (ctrl *PaymentController) CreateCheckoutSession(c *gin.Context) {
	type checkoutRequest struct {
		UserID   string                   `json:"userId" binding:"required"`
		Products []models.CheckoutProduct `json:"products" binding:"required,min=1,dive"`
	}

	var request checkoutRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.SimpleResponse(c, http.StatusBadRequest, "Invalid request", utils.ErrBadRequest, nil)
		return
	}

	sessionID, err := ctrl.checkout.CreateSession(c.Request.Context(), request.UserID, request.Products)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to create checkout session", utils.ErrCheckoutSession, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": sessionID})
}

// RetrieveCheckoutSession redeems the redirect token and finalizes the
// purchase. A missing token answers success false, not an error, the client
// treats it as an already handled redirect.
func (ctrl *PaymentController) RetrieveCheckoutSession(c *gin.Context) {
	token := c.Param("token")
	sessionID := c.Param("sessionId")

	result, err := ctrl.checkout.ConfirmSession(c.Request.Context(), token, sessionID)
	if errors.Is(err, services.ErrTokenNotFound) {
		c.JSON(http.StatusOK, gin.H{"success": false})
		return
	}
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to confirm checkout session", utils.ErrConfirmPurchase, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": result.Success})
}

// ExpireSession cancels an open checkout session
func (ctrl *PaymentController) ExpireSession(c *gin.Context) {
	type expireRequest struct {
		SessionID string `json:"sessionId" binding:"required"`
		Token     string `json:"token" binding:"required"`
	}

	var request expireRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.SimpleResponse(c, http.StatusBadRequest, "Invalid request", utils.ErrBadRequest, nil)
		return
	}

	if err := ctrl.checkout.ExpireSession(c.Request.Context(), request.Token, request.SessionID); err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to expire checkout session", utils.ErrExpireSession, err)
		return
	}

	utils.SimpleResponse(c, http.StatusOK, "Checkout session expired", "", nil)
}

// GetPayments lists a student's payment history, newest first
func (ctrl *PaymentController) GetPayments(c *gin.Context) {
	studentID := c.Param("studentId")

	payments, err := ctrl.store.GetPaymentsByUser(c.Request.Context(), studentID)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get payments data", utils.ErrGetData, err)
		return
	}

	c.JSON(http.StatusOK, payments)
}
