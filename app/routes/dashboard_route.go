package routes

import (
	"github.com/Shihab066/learning-server/app/controllers"
	appmid "github.com/Shihab066/learning-server/app/middleware"
	"github.com/Shihab066/learning-server/pkg/middleware"
	"github.com/gin-gonic/gin"
)

func DashboardRoute(r *gin.Engine, ctrl *controllers.DashboardController, users appmid.UserGetter) {
	dashboard := r.Group("/dashboard")
	dashboard.Use(middleware.VerifyToken(), appmid.VerifyActiveUser(users))

	instructor := appmid.VerifyInstructor(users)

	dashboard.GET("/admin/getTotalSalesData", appmid.VerifyAdmin(users), ctrl.GetTotalSalesData)
	dashboard.GET("/instructor/getTotalSalesData/:instructorId", instructor, ctrl.GetInstructorTotalSalesData)
	dashboard.GET("/instructor/getReviewsStatistics/:instructorId", instructor, ctrl.GetInstructorReviewsStatistics)
	dashboard.GET("/instructor/getCoursesStatistics/:instructorId", instructor, ctrl.GetInstructorCoursesStatistics)
}
