package routes

import (
	"github.com/Shihab066/learning-server/app/controllers"
	appmid "github.com/Shihab066/learning-server/app/middleware"
	"github.com/Shihab066/learning-server/pkg/middleware"
	"github.com/gin-gonic/gin"
)

func BannerRoute(r *gin.Engine, ctrl *controllers.BannerController, users appmid.UserGetter) {
	banner := r.Group("/banner")

	verified := middleware.VerifyToken()
	active := appmid.VerifyActiveUser(users)
	admin := appmid.VerifyAdmin(users)

	banner.GET("/slider-images", ctrl.GetSliderImages)
	banner.GET("/get", verified, active, admin, ctrl.GetAllBanners)
	banner.POST("/add", verified, active, admin, ctrl.AddBanner)
	banner.PATCH("/update/:bannerId", verified, active, admin, ctrl.UpdateBanner)
	banner.DELETE("/delete/:bannerId", verified, active, admin, ctrl.DeleteBanner)
}
