package encryption

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Generate new jwt token carrying the caller email
func GenerateNewJwtToken(email string, expiresAt time.Time) (string, error) {
	// Set secret key from .env file.
	secret := os.Getenv("SECRET_TOKEN")

	// Create a new claims.
	claims := jwt.MapClaims{}

	// Set public claims:
	claims["email"] = email
	claims["sub"] = time.Now().Unix()
	claims["expires"] = expiresAt.Unix()

	// Create a new JWT access token with claims.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	t, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return t, nil
}
