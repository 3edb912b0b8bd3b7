package routes

import (
	"github.com/Shihab066/learning-server/app/controllers"
	appmid "github.com/Shihab066/learning-server/app/middleware"
	"github.com/Shihab066/learning-server/pkg/middleware"
	"github.com/gin-gonic/gin"
)

func CartRoute(r *gin.Engine, ctrl *controllers.CartController, users appmid.UserGetter) {
	cart := r.Group("/cart")
	cart.Use(middleware.VerifyToken(), appmid.VerifyActiveUser(users), appmid.VerifyStudent(users))

	cart.GET("/get/:userId", ctrl.GetCartItems)
	cart.GET("/get/:userId/:courseId", ctrl.GetCartItem)
	cart.POST("/courses", ctrl.GetCartCourses)
	cart.POST("/add", ctrl.AddCourseToCart)
	cart.PATCH("/update/:userId/:courseId", ctrl.UpdateCartItemStatus)
	cart.DELETE("/delete/:userId/:courseId", ctrl.DeleteCartItem)
}
