package utils

import "os"

var (
	ClientURL       string
	Currency        string
	CheckoutExpires int
)

// Init some usefil variables
func InitVariables() {
	ClientURL = os.Getenv("CLIENT_URL")
	if ClientURL == "" {
		ClientURL = "http://localhost:5173"
	}

	Currency = os.Getenv("CURRENCY")
	if Currency == "" {
		Currency = "usd"
	}

	// checkout session lifetime in minutes
	CheckoutExpires = AtoiDefault(os.Getenv("CHECKOUT_EXPIRES_MINUTES"), 30)
}
