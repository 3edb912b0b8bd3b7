package routes

import (
	"github.com/Shihab066/learning-server/app/controllers"
	appmid "github.com/Shihab066/learning-server/app/middleware"
	"github.com/Shihab066/learning-server/pkg/middleware"
	"github.com/gin-gonic/gin"
)

func MediaRoute(r *gin.Engine, ctrl *controllers.MediaController, users appmid.UserGetter) {
	media := r.Group("/media")

	verified := middleware.VerifyToken()
	active := appmid.VerifyActiveUser(users)

	media.GET("/image/get-signature", verified, active, ctrl.GetImageUploadSignature)
	media.GET("/video/get-signature", verified, active, appmid.VerifyInstructor(users), ctrl.GetVideoUploadSignature)
	media.POST("/video/get/:courseId/:publicId", verified, active, ctrl.GetVideoPlaylist)
	media.POST("/video/add/:courseId/:publicId", verified, active, appmid.VerifyInstructor(users), ctrl.AddVideoPlaylist)
}
