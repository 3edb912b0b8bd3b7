package routes

import (
	"github.com/Shihab066/learning-server/app/controllers"
	appmid "github.com/Shihab066/learning-server/app/middleware"
	"github.com/Shihab066/learning-server/pkg/middleware"
	"github.com/gin-gonic/gin"
)

func FeedbackRoute(r *gin.Engine, ctrl *controllers.FeedbackController, users appmid.UserGetter) {
	feedback := r.Group("/feedback")

	verified := middleware.VerifyToken()
	active := appmid.VerifyActiveUser(users)

	feedback.GET("/getAll", ctrl.GetAllFeedback)
	feedback.GET("/get/:userId", verified, active, ctrl.GetFeedback)
	feedback.POST("/add", verified, active, ctrl.AddFeedback)
	feedback.PATCH("/update", verified, active, ctrl.UpdateFeedback)
	feedback.DELETE("/delete/:userId", verified, active, ctrl.RemoveFeedback)
}
