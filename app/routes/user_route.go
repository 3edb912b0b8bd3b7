package routes

import (
	"github.com/Shihab066/learning-server/app/controllers"
	appmid "github.com/Shihab066/learning-server/app/middleware"
	"github.com/Shihab066/learning-server/pkg/middleware"
	"github.com/gin-gonic/gin"
)

func UserRoute(r *gin.Engine, ctrl *controllers.UserController, users appmid.UserGetter) {
	user := r.Group("/user")

	verified := middleware.VerifyToken()
	active := appmid.VerifyActiveUser(users)

	user.GET("/get/:id", verified, active, ctrl.GetUser)
	user.GET("/all/:adminId", verified, active, appmid.VerifyAdmin(users), ctrl.GetUsers)
	user.GET("/getSignupMethod/:id", verified, active, ctrl.GetSignupMethod)
	user.GET("/role/:id", ctrl.GetUserRole)
	user.GET("/suspendedStatus/:id", verified, active, ctrl.GetSuspendedStatus)

	user.POST("/add", verified, ctrl.AddUser)

	user.PATCH("/update/:id", verified, active, ctrl.UpdateUser)
	user.PATCH("/updateInstructorProfile/:id", verified, active, appmid.VerifyInstructor(users), ctrl.UpdateInstructorProfile)
	user.PATCH("/role/:id", verified, active, appmid.VerifyAdmin(users), ctrl.UpdateUserRole)
}
