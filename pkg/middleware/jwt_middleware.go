package middleware

import (
	"os"
	"strings"
	"time"

	"github.com/Shihab066/learning-server/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// VerifyToken checks the Authorization bearer token and stores the caller
// email in the request context.
func VerifyToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		authorization := c.GetHeader("Authorization")
		if authorization == "" {
			utils.SimpleResponse(c, 401, "Authorization token is empty.", utils.ErrAuthenticationKeyNotFound, nil)
			c.Abort()
			return
		}

		parts := strings.SplitN(authorization, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.SimpleResponse(c, 401, "Unauthorized Access", utils.ErrUnauthorized, nil)
			c.Abort()
			return
		}

		parseError := false

		secret := os.Getenv("SECRET_TOKEN")
		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			// Ensure the signing method is as expected.
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				parseError = true
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid || parseError {
			utils.SimpleResponse(c, 401, "Unauthorized Access", utils.ErrUnauthorized, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			utils.SimpleResponse(c, 401, "Unauthorized Access", utils.ErrUnauthorized, nil)
			c.Abort()
			return
		}

		expiresAtFloat, ok := claims["expires"].(float64)
		if !ok {
			utils.SimpleResponse(c, 401, "Invalid expries datatype", utils.ErrUnauthorized, nil)
			c.Abort()
			return
		}

		if time.Now().Unix() >= int64(expiresAtFloat) {
			utils.SimpleResponse(c, 401, "Token expired", utils.ErrTokenExpired, nil)
			c.Abort()
			return
		}

		email, ok := claims["email"].(string)
		if !ok || email == "" {
			utils.SimpleResponse(c, 401, "Email claim missing", utils.ErrUnauthorized, nil)
			c.Abort()
			return
		}

		c.Set("email", email)
		c.Next()
	}
}
