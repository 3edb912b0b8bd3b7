package payments

import (
	"context"
	"time"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/checkout/session"
)

// LineItem is one purchasable course on the hosted checkout page.
type LineItem struct {
	Name       string
	Image      string
	UnitAmount int64
	Currency   string
}

// SessionParams carries everything needed to open a hosted checkout session.
type SessionParams struct {
	LineItems  []LineItem
	SuccessURL string
	CancelURL  string
	ExpiresAt  time.Time
	Metadata   map[string]string
}

// SessionResult is the settled state of a checkout session: the payment
// intent details plus the metadata handed over at creation time.
type SessionResult struct {
	Metadata           map[string]string
	AmountReceived     int64
	Status             string
	PaymentMethodTypes []string
	TransactionID      string
	ReceiptURL         string
}

// CheckoutProvider wraps the hosted checkout collaborator.
type CheckoutProvider interface {
	CreateSession(ctx context.Context, params SessionParams) (string, error)
	RetrieveSession(ctx context.Context, sessionID string) (SessionResult, error)
	ExpireSession(ctx context.Context, sessionID string) error
}

// StripeProvider implements CheckoutProvider on Stripe Checkout.
type StripeProvider struct{}

func NewStripeProvider(secretKey string) *StripeProvider {
	stripe.Key = secretKey
	return &StripeProvider{}
}

func (p *StripeProvider) CreateSession(ctx context.Context, params SessionParams) (string, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(params.LineItems))
	for _, item := range params.LineItems {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(item.Currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:   stripe.String(item.Name),
					Images: stripe.StringSlice([]string{item.Image}),
				},
				UnitAmount: stripe.Int64(item.UnitAmount),
			},
			Quantity: stripe.Int64(1),
		})
	}

	sessionParams := &stripe.CheckoutSessionParams{
		Params:             stripe.Params{Context: ctx},
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(params.SuccessURL),
		CancelURL:          stripe.String(params.CancelURL),
		ExpiresAt:          stripe.Int64(params.ExpiresAt.Unix()),
	}
	for key, value := range params.Metadata {
		sessionParams.AddMetadata(key, value)
	}

	s, err := session.New(sessionParams)
	if err != nil {
		return "", err
	}
	return s.ID, nil
}

func (p *StripeProvider) RetrieveSession(ctx context.Context, sessionID string) (SessionResult, error) {
	params := &stripe.CheckoutSessionParams{Params: stripe.Params{Context: ctx}}
	params.AddExpand("payment_intent")
	params.AddExpand("payment_intent.latest_charge")

	s, err := session.Get(sessionID, params)
	if err != nil {
		return SessionResult{}, err
	}

	result := SessionResult{Metadata: s.Metadata}
	if intent := s.PaymentIntent; intent != nil {
		result.AmountReceived = intent.AmountReceived
		result.Status = string(intent.Status)
		result.PaymentMethodTypes = intent.PaymentMethodTypes
		result.TransactionID = intent.ID
		if intent.LatestCharge != nil {
			result.ReceiptURL = intent.LatestCharge.ReceiptURL
		}
	}
	return result, nil
}

func (p *StripeProvider) ExpireSession(ctx context.Context, sessionID string) error {
	params := &stripe.CheckoutSessionExpireParams{Params: stripe.Params{Context: ctx}}
	_, err := session.Expire(sessionID, params)
	return err
}
