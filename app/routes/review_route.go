package routes

import (
	"github.com/Shihab066/learning-server/app/controllers"
	appmid "github.com/Shihab066/learning-server/app/middleware"
	"github.com/Shihab066/learning-server/pkg/middleware"
	"github.com/gin-gonic/gin"
)

func ReviewRoute(r *gin.Engine, ctrl *controllers.ReviewController, users appmid.UserGetter) {
	review := r.Group("/review")

	verified := middleware.VerifyToken()
	active := appmid.VerifyActiveUser(users)
	student := appmid.VerifyStudent(users)

	review.GET("/ratings/:courseId", ctrl.GetCourseRatings)
	review.GET("/get/:courseId", ctrl.GetCourseReviews)
	review.GET("/instructor/:instructorId", verified, active, appmid.VerifyInstructor(users), ctrl.GetInstructorReviews)
	review.GET("/myReviews/:studentId", verified, active, student, ctrl.GetMyReviews)
	review.GET("/pending/:studentId", verified, active, student, ctrl.GetPendingReviews)
	review.POST("/add", verified, active, student, ctrl.AddReview)
}
