package routes

import (
	"github.com/Shihab066/learning-server/app/controllers"
	"github.com/gin-gonic/gin"
)

func JwtRoute(r *gin.Engine, ctrl *controllers.JwtController) {
	r.POST("/jwt", ctrl.GenerateToken)
}
