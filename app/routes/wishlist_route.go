package routes

import (
	"github.com/Shihab066/learning-server/app/controllers"
	appmid "github.com/Shihab066/learning-server/app/middleware"
	"github.com/Shihab066/learning-server/pkg/middleware"
	"github.com/gin-gonic/gin"
)

func WishlistRoute(r *gin.Engine, ctrl *controllers.WishlistController, users appmid.UserGetter) {
	wishlist := r.Group("/wishlist")
	wishlist.Use(middleware.VerifyToken(), appmid.VerifyActiveUser(users), appmid.VerifyStudent(users))

	wishlist.GET("/get/:userId", ctrl.GetWishlistItems)
	wishlist.POST("/courses", ctrl.GetWishlistCourses)
	wishlist.POST("/add", ctrl.AddWishlistItem)
	wishlist.DELETE("/delete/:userId/:courseId", ctrl.RemoveWishlistItem)
}
