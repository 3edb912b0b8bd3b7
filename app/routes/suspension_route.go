package routes

import (
	"github.com/Shihab066/learning-server/app/controllers"
	appmid "github.com/Shihab066/learning-server/app/middleware"
	"github.com/Shihab066/learning-server/pkg/middleware"
	"github.com/gin-gonic/gin"
)

func SuspensionRoute(r *gin.Engine, ctrl *controllers.SuspensionController, users appmid.UserGetter) {
	suspension := r.Group("/suspension")

	verified := middleware.VerifyToken()
	active := appmid.VerifyActiveUser(users)
	admin := appmid.VerifyAdmin(users)

	suspension.GET("/getUsers", verified, active, admin, ctrl.GetSuspendedUsers)
	suspension.GET("/details/:userId", verified, ctrl.GetSuspensionDetails)
	suspension.POST("/addUser", verified, active, admin, ctrl.AddSuspension)
	suspension.DELETE("/remove/:userId/:suspendId", verified, active, admin, ctrl.RemoveSuspension)
}
