package routes

import (
	"github.com/Shihab066/learning-server/app/controllers"
	appmid "github.com/Shihab066/learning-server/app/middleware"
	"github.com/Shihab066/learning-server/pkg/middleware"
	"github.com/gin-gonic/gin"
)

func CourseRoute(r *gin.Engine, ctrl *controllers.CourseController, users appmid.UserGetter) {
	course := r.Group("/course")

	verified := middleware.VerifyToken()
	active := appmid.VerifyActiveUser(users)
	student := appmid.VerifyStudent(users)
	instructor := appmid.VerifyInstructor(users)
	admin := appmid.VerifyAdmin(users)

	course.GET("/top", ctrl.GetTopCourses)
	course.GET("/all", ctrl.GetApprovedCourses)
	course.GET("/details/:courseId", ctrl.GetCourseDetails)
	course.GET("/moreCourse/:instructorId", ctrl.GetMoreCoursesByInstructor)

	course.GET("/all/admin", verified, active, admin, ctrl.GetAllCourses)
	course.GET("/instructorCourse", verified, active, instructor, ctrl.GetInstructorCourse)
	course.GET("/instructorCourses/:instructorId", verified, active, instructor, ctrl.GetInstructorCourses)
	course.GET("/studentCourses/:studentId", verified, active, student, ctrl.GetStudentCourses)
	course.GET("/content/:studentId/:courseId", verified, active, student, ctrl.GetCourseContents)
	course.GET("/enrolledCoursesId/:studentId", verified, active, student, ctrl.GetEnrolledCoursesID)

	course.POST("/add", verified, active, instructor, ctrl.AddNewCourse)

	course.PATCH("/update", verified, active, instructor, ctrl.UpdateCourse)
	course.PATCH("/updatePublishStatus", verified, active, instructor, ctrl.UpdateCoursePublishStatus)
	course.PATCH("/updatefeedback/:id", verified, active, admin, ctrl.UpdateCourseFeedback)
	course.PATCH("/updateFeedbackReadStatus/:id", verified, active, instructor, ctrl.UpdateCourseFeedbackReadStatus)
	course.PATCH("/status/:id", verified, active, admin, ctrl.UpdateCourseApprovedStatus)
	course.PATCH("/update/progress/:studentId/:courseId", verified, active, student, ctrl.UpdateCourseProgress)

	course.DELETE("/delete", verified, active, instructor, ctrl.DeleteCourse)
}
