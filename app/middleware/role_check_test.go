package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Shihab066/learning-server/app/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubUsers struct {
	user models.User
	err  error
}

func (s *stubUsers) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	return s.user, s.err
}

func roleRouter(handler gin.HandlerFunc, email string) *gin.Engine {
	r := gin.New()
	if email != "" {
		r.Use(func(c *gin.Context) { c.Set("email", email) })
	}
	r.GET("/protected", handler, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func serve(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestVerifyActiveUserBlocksSuspendedAccount(t *testing.T) {
	users := &stubUsers{user: models.User{Email: "a@b.c", Role: "student", Suspended: true}}
	w := serve(roleRouter(VerifyActiveUser(users), "a@b.c"))
	assert.Equal(t, http.StatusLocked, w.Code)
}

func TestVerifyActiveUserPassesActiveAccount(t *testing.T) {
	users := &stubUsers{user: models.User{Email: "a@b.c", Role: "student"}}
	w := serve(roleRouter(VerifyActiveUser(users), "a@b.c"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestVerifyRoleRequiresCallerEmail(t *testing.T) {
	users := &stubUsers{user: models.User{Role: "student"}}
	w := serve(roleRouter(VerifyStudent(users), ""))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVerifyRoleRejectsUnknownCaller(t *testing.T) {
	users := &stubUsers{err: errors.New("not found")}
	w := serve(roleRouter(VerifyStudent(users), "a@b.c"))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestVerifyRoleRejectsWrongRole(t *testing.T) {
	users := &stubUsers{user: models.User{Email: "a@b.c", Role: "student"}}
	w := serve(roleRouter(VerifyInstructor(users), "a@b.c"))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestVerifyRolePassesMatchingRole(t *testing.T) {
	users := &stubUsers{user: models.User{Email: "a@b.c", Role: "admin"}}
	w := serve(roleRouter(VerifyAdmin(users), "a@b.c"))
	assert.Equal(t, http.StatusOK, w.Code)
}
