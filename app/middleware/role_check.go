package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/Shihab066/learning-server/app/models"
	"github.com/Shihab066/learning-server/pkg/utils"
	"github.com/gin-gonic/gin"
)

var errCallerRejected = errors.New("caller rejected")

// UserGetter resolves the authenticated caller to a stored user record.
type UserGetter interface {
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
}

// VerifyActiveUser blocks suspended accounts. Runs after the token check so
// the caller email is already on the context.
func VerifyActiveUser(users UserGetter) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := lookupCaller(c, users)
		if err != nil {
			return
		}

		if user.Suspended {
			utils.SimpleResponse(c, http.StatusLocked, "Account is suspended", utils.ErrAccountSuspended, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// VerifyStudent allows the student role only
func VerifyStudent(users UserGetter) gin.HandlerFunc {
	return verifyRole(users, "student")
}

// VerifyInstructor allows the instructor role only
func VerifyInstructor(users UserGetter) gin.HandlerFunc {
	return verifyRole(users, "instructor")
}

// VerifyAdmin allows the admin role only
func VerifyAdmin(users UserGetter) gin.HandlerFunc {
	return verifyRole(users, "admin")
}

func verifyRole(users UserGetter, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := lookupCaller(c, users)
		if err != nil {
			return
		}

		if user.Role != role {
			utils.SimpleResponse(c, http.StatusForbidden, "Forbidden access", utils.ErrForbidden, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

func lookupCaller(c *gin.Context, users UserGetter) (models.User, error) {
	email := c.GetString("email")
	if email == "" {
		utils.SimpleResponse(c, http.StatusUnauthorized, "Unauthorized", utils.ErrUnauthorized, nil)
		c.Abort()
		return models.User{}, errCallerRejected
	}

	user, err := users.GetUserByEmail(c.Request.Context(), email)
	if err != nil {
		utils.SimpleResponse(c, http.StatusForbidden, "Forbidden access", utils.ErrForbidden, nil)
		c.Abort()
		return models.User{}, errCallerRejected
	}
	return user, nil
}
