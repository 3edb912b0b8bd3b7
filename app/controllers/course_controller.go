package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Shihab066/learning-server/app/models"
	"github.com/Shihab066/learning-server/app/queries"
	"github.com/Shihab066/learning-server/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const topCoursesCacheKey = "courses:top"

type CourseController struct {
	queries *queries.Queries
	cache   *redis.Client
}

func NewCourseController(q *queries.Queries, cache *redis.Client) *CourseController {
	return &CourseController{queries: q, cache: cache}
}

// GetTopCourses serves the landing page ranking, cached for ten minutes
func (ctrl *CourseController) GetTopCourses(c *gin.Context) {
	ctx := c.Request.Context()

	if ctrl.cache != nil {
		if cached, err := ctrl.cache.Get(ctx, topCoursesCacheKey).Result(); err == nil {
			c.Data(http.StatusOK, "application/json", []byte(cached))
			return
		}
	}

	courses, err := ctrl.queries.GetTopCourses(ctx)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get top courses", utils.ErrGetData, err)
		return
	}

	if ctrl.cache != nil {
		if payload, err := json.Marshal(courses); err == nil {
			if err := ctrl.cache.Set(ctx, topCoursesCacheKey, payload, 10*time.Minute).Err(); err != nil {
				utils.Logger.Warn("failed to cache top courses", zap.Error(err))
			}
		}
	}

	c.JSON(http.StatusOK, courses)
}

// GetApprovedCourses pages the public catalog
func (ctrl *CourseController) GetApprovedCourses(c *gin.Context) {
	page := utils.AtoiDefault(c.Query("page"), 1)
	limit := utils.AtoiDefault(c.Query("limit"), 10)
	sort := utils.AtoiDefault(c.Query("sort"), 0)
	search := c.Query("search")
	if search == "undefined" {
		search = ""
	}

	courses, total, err := ctrl.queries.GetApprovedCourses(c.Request.Context(), search, page, limit, sort)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get courses", utils.ErrGetData, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"courses": courses, "coursesCount": total})
}

// GetCourseDetails merges the course document with its instructor's public
// profile and aggregate stats.
func (ctrl *CourseController) GetCourseDetails(c *gin.Context) {
	ctx := c.Request.Context()

	courseID, err := primitive.ObjectIDFromHex(c.Param("courseId"))
	if err != nil {
		utils.SimpleResponse(c, http.StatusBadRequest, "Invalid course id", utils.ErrBadRequest, nil)
		return
	}

	projection := bson.M{
		"_id": 0, "_instructorId": 1, "courseName": 1, "courseThumbnail": 1,
		"summary": 1, "description": 1, "level": 1, "category": 1, "price": 1,
		"discount": 1, "students": 1, "rating": 1, "totalReviews": 1,
		"courseContents": 1, "totalModules": 1,
	}
	course, err := ctrl.queries.GetCourseByID(ctx, courseID, projection)
	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.SimpleResponse(c, http.StatusNotFound, "Course not found", utils.ErrCourseNotExist, nil)
		return
	}
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get course details", utils.ErrGetData, err)
		return
	}

	instructorID, _ := course["_instructorId"].(string)
	instructor, err := ctrl.queries.GetUserByID(ctx, instructorID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.SimpleResponse(c, http.StatusNotFound, "Instructor not found", utils.ErrInstructorNotFound, nil)
		return
	}
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get course details", utils.ErrGetData, err)
		return
	}

	totalCourses, err := ctrl.queries.CountCoursesByInstructor(ctx, instructorID)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get course details", utils.ErrGetData, err)
		return
	}
	totalReviews, err := ctrl.queries.CountReviewsByInstructor(ctx, instructorID)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get course details", utils.ErrGetData, err)
		return
	}
	totalStudents, err := ctrl.queries.SumStudentsByInstructor(ctx, instructorID)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get course details", utils.ErrGetData, err)
		return
	}

	// Strip module lists down to per-milestone counts for the landing page
	course["courseContents"] = summarizeContents(course["courseContents"])
	course["name"] = instructor.Name
	course["image"] = instructor.Image
	course["headline"] = instructor.Headline
	course["experience"] = instructor.Experience
	course["totalCoursesCount"] = totalCourses
	course["totalReviewsCount"] = totalReviews
	course["totalStudents"] = totalStudents

	c.JSON(http.StatusOK, course)
}

// GetAllCourses is the admin moderation list
func (ctrl *CourseController) GetAllCourses(c *gin.Context) {
	courses, err := ctrl.queries.GetAllCourses(c.Request.Context())
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get courses", utils.ErrGetData, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

// GetMoreCoursesByInstructor lists other public courses of one instructor
func (ctrl *CourseController) GetMoreCoursesByInstructor(c *gin.Context) {
	courses, err := ctrl.queries.GetMoreCoursesByInstructor(c.Request.Context(), c.Param("instructorId"))
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get courses", utils.ErrGetData, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

// GetInstructorCourse returns one course of the calling instructor for the
// edit screen, with an ownership check on the stored document.
func (ctrl *CourseController) GetInstructorCourse(c *gin.Context) {
	ctx := c.Request.Context()
	instructorID := c.Query("id")

	result, err := ctrl.queries.AuthorizeInstructor(ctx, instructorID, callerEmail(c))
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to authorize instructor", utils.ErrGetData, err)
		return
	}
	if !ensureAuthorized(c, result) {
		return
	}

	courseID, err := primitive.ObjectIDFromHex(c.Query("courseId"))
	if err != nil {
		utils.SimpleResponse(c, http.StatusBadRequest, "Invalid course id", utils.ErrBadRequest, nil)
		return
	}

	projection := bson.M{
		"_instructorId": 1, "courseName": 1, "courseThumbnail": 1, "summary": 1,
		"description": 1, "level": 1, "category": 1, "price": 1, "discount": 1,
		"seats": 1, "courseContents": 1,
	}
	course, err := ctrl.queries.GetCourseByID(ctx, courseID, projection)
	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.SimpleResponse(c, http.StatusNotFound, "Course not found", utils.ErrCourseNotExist, nil)
		return
	}
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get course", utils.ErrGetData, err)
		return
	}
	if owner, _ := course["_instructorId"].(string); owner != instructorID {
		utils.SimpleResponse(c, http.StatusForbidden, "Forbidden access", utils.ErrForbidden, nil)
		return
	}

	c.JSON(http.StatusOK, course)
}

// GetInstructorCourses lists the calling instructor's own courses
func (ctrl *CourseController) GetInstructorCourses(c *gin.Context) {
	ctx := c.Request.Context()
	instructorID := c.Param("instructorId")

	result, err := ctrl.queries.AuthorizeInstructor(ctx, instructorID, callerEmail(c))
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to authorize instructor", utils.ErrGetData, err)
		return
	}
	if !ensureAuthorized(c, result) {
		return
	}

	courses, err := ctrl.queries.GetInstructorCourses(ctx, instructorID, c.Query("search"))
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get courses", utils.ErrGetData, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

// GetStudentCourses lists the cards of the student's enrolled courses
func (ctrl *CourseController) GetStudentCourses(c *gin.Context) {
	ctx := c.Request.Context()

	courseIDs, err := ctrl.queries.GetEnrolledCourseIDs(ctx, c.Param("studentId"))
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get enrolled courses", utils.ErrGetData, err)
		return
	}

	objectIDs := make([]primitive.ObjectID, 0, len(courseIDs))
	for _, id := range courseIDs {
		if objectID, err := primitive.ObjectIDFromHex(id); err == nil {
			objectIDs = append(objectIDs, objectID)
		}
	}

	courses, err := ctrl.queries.GetCoursesByIDs(ctx, objectIDs)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get enrolled courses", utils.ErrGetData, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

// GetCourseContents serves the full milestone/module tree to an enrolled
// student only.
func (ctrl *CourseController) GetCourseContents(c *gin.Context) {
	ctx := c.Request.Context()
	studentID := c.Param("studentId")
	courseParam := c.Param("courseId")

	enrolled, err := ctrl.queries.IsEnrolled(ctx, studentID, courseParam)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to check enrollment", utils.ErrGetData, err)
		return
	}
	if !enrolled {
		utils.SimpleResponse(c, http.StatusForbidden, "Course is not enrolled", utils.ErrNotEnrolled, nil)
		return
	}

	courseID, err := primitive.ObjectIDFromHex(courseParam)
	if err != nil {
		utils.SimpleResponse(c, http.StatusBadRequest, "Invalid course id", utils.ErrBadRequest, nil)
		return
	}

	projection := bson.M{"_id": 0, "courseName": 1, "courseContents": 1, "totalModules": 1}
	course, err := ctrl.queries.GetCourseByID(ctx, courseID, projection)
	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.SimpleResponse(c, http.StatusNotFound, "Course not found", utils.ErrCourseNotExist, nil)
		return
	}
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get course contents", utils.ErrGetData, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

// GetEnrolledCoursesID returns the ids of the student's enrolled courses
func (ctrl *CourseController) GetEnrolledCoursesID(c *gin.Context) {
	courseIDs, err := ctrl.queries.GetEnrolledCourseIDs(c.Request.Context(), c.Param("studentId"))
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get enrolled courses", utils.ErrGetData, err)
		return
	}
	c.JSON(http.StatusOK, courseIDs)
}

// AddNewCourse creates a course in the pending moderation state
func (ctrl *CourseController) AddNewCourse(c *gin.Context) {
	var course models.Course
	if err := c.ShouldBindJSON(&course); err != nil {
		utils.SimpleResponse(c, http.StatusBadRequest, "Invalid request", utils.ErrBadRequest, nil)
		return
	}

	course.ID = primitive.NilObjectID
	course.Students = 0
	course.CourseCompleted = 0
	course.Status = models.CourseStatusPending
	course.Feedback = ""
	course.Rating = 0
	course.TotalReviews = 0

	id, err := ctrl.queries.InsertCourse(c.Request.Context(), course)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to add course", utils.ErrSaveData, err)
		return
	}
	utils.SimpleResponse(c, http.StatusCreated, "Course added successfully", "", gin.H{"insertedId": id})
}

// UpdateCourse applies an instructor's edit to their own course
func (ctrl *CourseController) UpdateCourse(c *gin.Context) {
	ctx := c.Request.Context()
	instructorID := c.Query("id")

	result, err := ctrl.queries.AuthorizeInstructor(ctx, instructorID, callerEmail(c))
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to authorize instructor", utils.ErrGetData, err)
		return
	}
	if !ensureAuthorized(c, result) {
		return
	}

	courseID, err := primitive.ObjectIDFromHex(c.Query("courseId"))
	if err != nil {
		utils.SimpleResponse(c, http.StatusBadRequest, "Invalid course id", utils.ErrBadRequest, nil)
		return
	}

	if ok, err := ctrl.ownsCourse(ctx, courseID, instructorID); err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to update course", utils.ErrGetData, err)
		return
	} else if !ok {
		utils.SimpleResponse(c, http.StatusForbidden, "Forbidden access", utils.ErrForbidden, nil)
		return
	}

	var update bson.M
	if err := c.ShouldBindJSON(&update); err != nil || len(update) == 0 {
		utils.SimpleResponse(c, http.StatusBadRequest, "Invalid request", utils.ErrBadRequest, nil)
		return
	}
	// Moderation fields are not editable through this endpoint
	delete(update, "_id")
	delete(update, "_instructorId")
	delete(update, "status")
	delete(update, "students")

	modified, err := ctrl.queries.UpdateCourse(ctx, courseID, update)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to update course", utils.ErrUpdateData, err)
		return
	}
	if modified == 0 {
		utils.SimpleResponse(c, http.StatusNotFound, "Course not found or no changes made", utils.ErrCourseNotExist, nil)
		return
	}
	utils.SimpleResponse(c, http.StatusOK, "Course updated successfully", "", nil)
}

// UpdateCoursePublishStatus toggles the course visibility
func (ctrl *CourseController) UpdateCoursePublishStatus(c *gin.Context) {
	ctx := c.Request.Context()
	instructorID := c.Query("id")

	result, err := ctrl.queries.AuthorizeInstructor(ctx, instructorID, callerEmail(c))
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to authorize instructor", utils.ErrGetData, err)
		return
	}
	if !ensureAuthorized(c, result) {
		return
	}

	courseID, err := primitive.ObjectIDFromHex(c.Query("courseId"))
	if err != nil {
		utils.SimpleResponse(c, http.StatusBadRequest, "Invalid course id", utils.ErrBadRequest, nil)
		return
	}

	var request struct {
		Publish *bool `json:"publish" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.SimpleResponse(c, http.StatusBadRequest, "Invalid request", utils.ErrBadRequest, nil)
		return
	}

	modified, err := ctrl.queries.UpdateCourse(ctx, courseID, bson.M{"publish": *request.Publish})
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to update publish status", utils.ErrUpdateData, err)
		return
	}
	if modified == 0 {
		utils.SimpleResponse(c, http.StatusNotFound, "Course not found or no changes made", utils.ErrCourseNotExist, nil)
		return
	}
	utils.SimpleResponse(c, http.StatusOK, "Publish status updated successfully", "", nil)
}

// UpdateCourseFeedback stores the admin's moderation note on a course
func (ctrl *CourseController) UpdateCourseFeedback(c *gin.Context) {
	courseID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.SimpleResponse(c, http.StatusBadRequest, "Invalid course id", utils.ErrBadRequest, nil)
		return
	}

	var request struct {
		Feedback string `json:"feedback" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.SimpleResponse(c, http.StatusBadRequest, "Feedback is required", utils.ErrBadRequest, nil)
		return
	}

	modified, err := ctrl.queries.UpdateCourse(c.Request.Context(), courseID, bson.M{"feedback": request.Feedback, "feedbackRead": false})
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to update feedback", utils.ErrUpdateData, err)
		return
	}
	if modified == 0 {
		utils.SimpleResponse(c, http.StatusNotFound, "Course not found or no changes made", utils.ErrCourseNotExist, nil)
		return
	}
	utils.SimpleResponse(c, http.StatusOK, "Feedback updated successfully", "", nil)
}

// UpdateCourseFeedbackReadStatus marks the moderation note as seen
func (ctrl *CourseController) UpdateCourseFeedbackReadStatus(c *gin.Context) {
	courseID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.SimpleResponse(c, http.StatusBadRequest, "Invalid course id", utils.ErrBadRequest, nil)
		return
	}

	if _, err := ctrl.queries.UpdateCourse(c.Request.Context(), courseID, bson.M{"feedbackRead": true}); err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to update feedback status", utils.ErrUpdateData, err)
		return
	}
	utils.SimpleResponse(c, http.StatusOK, "Feedback read status updated successfully", "", nil)
}

// UpdateCourseApprovedStatus moves a course through the moderation lifecycle
func (ctrl *CourseController) UpdateCourseApprovedStatus(c *gin.Context) {
	courseID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.SimpleResponse(c, http.StatusBadRequest, "Invalid course id", utils.ErrBadRequest, nil)
		return
	}

	var request struct {
		Status string `json:"status" binding:"required,oneof=pending approved denied"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.SimpleResponse(c, http.StatusBadRequest, "Status is required", utils.ErrBadRequest, nil)
		return
	}

	modified, err := ctrl.queries.UpdateCourse(c.Request.Context(), courseID, bson.M{"status": request.Status})
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to update course status", utils.ErrUpdateData, err)
		return
	}
	if modified == 0 {
		utils.SimpleResponse(c, http.StatusNotFound, "Course not found or no changes made", utils.ErrCourseNotExist, nil)
		return
	}
	utils.SimpleResponse(c, http.StatusOK, "Status updated successfully", "", nil)
}

// UpdateCourseProgress records watched lectures. The first transition to
// complete bumps the course's completion counter once.
func (ctrl *CourseController) UpdateCourseProgress(c *gin.Context) {
	ctx := c.Request.Context()
	studentID := c.Param("studentId")
	courseParam := c.Param("courseId")

	var request struct {
		TotalLecturesWatched int  `json:"totalLecturesWatched" binding:"min=0"`
		Complete             bool `json:"complete"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.SimpleResponse(c, http.StatusBadRequest, "Invalid request", utils.ErrBadRequest, nil)
		return
	}

	previous, err := ctrl.queries.UpdateEnrollmentProgress(ctx, studentID, courseParam, request.TotalLecturesWatched, request.Complete)
	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.SimpleResponse(c, http.StatusNotFound, "Course is not enrolled", utils.ErrNotEnrolled, nil)
		return
	}
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to update progress", utils.ErrUpdateData, err)
		return
	}

	if request.Complete && !previous.Complete {
		if courseID, err := primitive.ObjectIDFromHex(courseParam); err == nil {
			if err := ctrl.queries.IncrementCourseCompleted(ctx, courseID); err != nil {
				utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to update progress", utils.ErrUpdateData, err)
				return
			}
		}
	}
	utils.SimpleResponse(c, http.StatusOK, "Progress updated successfully", "", nil)
}

// DeleteCourse removes an instructor's own course
func (ctrl *CourseController) DeleteCourse(c *gin.Context) {
	ctx := c.Request.Context()
	instructorID := c.Query("id")

	result, err := ctrl.queries.AuthorizeInstructor(ctx, instructorID, callerEmail(c))
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to authorize instructor", utils.ErrGetData, err)
		return
	}
	if !ensureAuthorized(c, result) {
		return
	}

	courseID, err := primitive.ObjectIDFromHex(c.Query("courseId"))
	if err != nil {
		utils.SimpleResponse(c, http.StatusBadRequest, "Invalid course id", utils.ErrBadRequest, nil)
		return
	}

	if ok, err := ctrl.ownsCourse(ctx, courseID, instructorID); err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to delete course", utils.ErrGetData, err)
		return
	} else if !ok {
		utils.SimpleResponse(c, http.StatusForbidden, "Forbidden access", utils.ErrForbidden, nil)
		return
	}

	deleted, err := ctrl.queries.DeleteCourse(ctx, courseID)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to delete course", utils.ErrDeleteData, err)
		return
	}
	if deleted == 0 {
		utils.SimpleResponse(c, http.StatusNotFound, "Course not found, no course deleted", utils.ErrCourseNotExist, nil)
		return
	}
	utils.SimpleResponse(c, http.StatusOK, "Course deleted successfully", "", nil)
}

func (ctrl *CourseController) ownsCourse(ctx context.Context, courseID primitive.ObjectID, instructorID string) (bool, error) {
	course, err := ctrl.queries.GetCourseByID(ctx, courseID, bson.M{"_instructorId": 1})
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	owner, _ := course["_instructorId"].(string)
	return owner == instructorID, nil
}

func summarizeContents(contents interface{}) []gin.H {
	milestones, ok := contents.(primitive.A)
	if !ok {
		return []gin.H{}
	}

	summary := make([]gin.H, 0, len(milestones))
	for _, raw := range milestones {
		milestone, ok := raw.(bson.M)
		if !ok {
			continue
		}
		totalModules := 0
		if modules, ok := milestone["milestoneModules"].(primitive.A); ok {
			totalModules = len(modules)
		}
		summary = append(summary, gin.H{
			"milestoneName":    milestone["milestoneName"],
			"milestoneDetails": milestone["milestoneDetails"],
			"totalModules":     totalModules,
		})
	}
	return summary
}
