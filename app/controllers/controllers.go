package controllers

import (
	"net/http"

	"github.com/Shihab066/learning-server/app/queries"
	"github.com/Shihab066/learning-server/pkg/utils"
	"github.com/gin-gonic/gin"
)

// ensureAuthorized answers the rejection envelope for Forbidden and NotFound
// outcomes and reports whether the handler may proceed.
func ensureAuthorized(c *gin.Context, result queries.AuthzResult) bool {
	switch result {
	case queries.Authorized:
		return true
	case queries.NotFound:
		utils.SimpleResponse(c, http.StatusNotFound, "User not found", utils.ErrUserNotFound, nil)
		return false
	default:
		utils.SimpleResponse(c, http.StatusForbidden, "Forbidden access", utils.ErrForbidden, nil)
		return false
	}
}

// callerEmail is set by the token middleware
func callerEmail(c *gin.Context) string {
	return c.GetString("email")
}
