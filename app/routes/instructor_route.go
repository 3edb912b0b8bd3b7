package routes

import (
	"github.com/Shihab066/learning-server/app/controllers"
	"github.com/gin-gonic/gin"
)

func InstructorRoute(r *gin.Engine, ctrl *controllers.InstructorController) {
	instructor := r.Group("/instructor")

	instructor.GET("/details/:instructorId", ctrl.GetInstructor)
	instructor.GET("/all", ctrl.GetInstructors)
	instructor.GET("/popular", ctrl.GetPopularInstructors)
}
