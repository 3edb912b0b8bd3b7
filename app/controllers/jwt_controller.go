package controllers

import (
	"net/http"
	"time"

	"github.com/Shihab066/learning-server/pkg/encryption"
	"github.com/Shihab066/learning-server/pkg/utils"
	"github.com/gin-gonic/gin"
)

type JwtController struct{}

func NewJwtController() *JwtController {
	return &JwtController{}
}

// GenerateToken signs a twelve hour access token for the client session
func (ctrl *JwtController) GenerateToken(c *gin.Context) {
	var request struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.SimpleResponse(c, http.StatusBadRequest, "Invalid request", utils.ErrBadRequest, nil)
		return
	}

	token, err := encryption.GenerateNewJwtToken(request.Email, time.Now().Add(12*time.Hour))
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to generate token", utils.ErrGenerateToken, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
