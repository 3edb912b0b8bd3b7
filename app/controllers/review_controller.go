package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Shihab066/learning-server/app/models"
	"github.com/Shihab066/learning-server/app/queries"
	"github.com/Shihab066/learning-server/pkg/encryption"
	"github.com/Shihab066/learning-server/pkg/utils"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ReviewController struct {
	queries *queries.Queries
}

func NewReviewController(q *queries.Queries) *ReviewController {
	return &ReviewController{queries: q}
}

// GetCourseRatings answers the star distribution as percentages
func (ctrl *ReviewController) GetCourseRatings(c *gin.Context) {
	counts, total, err := ctrl.queries.GetCourseRatingCounts(c.Request.Context(), c.Param("courseId"))
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get course ratings", utils.ErrGetData, err)
		return
	}

	percentages := gin.H{}
	for star := 1; star <= 5; star++ {
		percentage := 0.0
		if total > 0 {
			percentage = float64(counts[star]) / float64(total) * 100
		}
		percentages[strconv.Itoa(star)] = percentage
	}
	c.JSON(http.StatusOK, percentages)
}

// GetCourseReviews lists the newest reviews of a course
func (ctrl *ReviewController) GetCourseReviews(c *gin.Context) {
	limit := utils.AtoiDefault(c.Query("limit"), 3)

	reviews, total, err := ctrl.queries.GetCourseReviews(c.Request.Context(), c.Param("courseId"), limit)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get course reviews", utils.ErrGetData, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews, "totalReviews": total})
}

// GetInstructorReviews lists reviews across an instructor's courses,
// searchable by course or reviewer name.
func (ctrl *ReviewController) GetInstructorReviews(c *gin.Context) {
	limit := utils.AtoiDefault(c.Query("limit"), 4)

	reviews, total, err := ctrl.queries.GetInstructorReviews(c.Request.Context(), c.Param("instructorId"), c.Query("search"), limit)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get instructor reviews", utils.ErrGetData, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews, "totalReviews": total})
}

// AddReview stores an enrolled student's review, marks the enrollment
// reviewed and recomputes the course's average rating.
func (ctrl *ReviewController) AddReview(c *gin.Context) {
	ctx := c.Request.Context()

	var request struct {
		CourseID        string `json:"courseId" binding:"required"`
		CourseName      string `json:"courseName" binding:"required"`
		CourseThumbnail string `json:"courseThumbnail"`
		StudentID       string `json:"studentId" binding:"required"`
		UserName        string `json:"userName" binding:"required"`
		UserImage       string `json:"userImage"`
		Rating          int    `json:"rating" binding:"required,min=1,max=5"`
		Review          string `json:"review" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.SimpleResponse(c, http.StatusBadRequest, "Invalid request", utils.ErrBadRequest, nil)
		return
	}

	enrolled, err := ctrl.queries.IsEnrolled(ctx, request.StudentID, request.CourseID)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to add review", utils.ErrGetData, err)
		return
	}
	if !enrolled {
		utils.SimpleResponse(c, http.StatusForbidden, "Course is not enrolled", utils.ErrNotEnrolled, nil)
		return
	}

	courseID, err := primitive.ObjectIDFromHex(request.CourseID)
	if err != nil {
		utils.SimpleResponse(c, http.StatusBadRequest, "Invalid course id", utils.ErrBadRequest, nil)
		return
	}
	course, err := ctrl.queries.GetCourseByID(ctx, courseID, bson.M{"_instructorId": 1})
	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.SimpleResponse(c, http.StatusNotFound, "Course not found", utils.ErrCourseNotExist, nil)
		return
	}
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to add review", utils.ErrGetData, err)
		return
	}
	instructorID, _ := course["_instructorId"].(string)

	review := models.Review{
		ID:              encryption.GenerateID(),
		CourseID:        request.CourseID,
		StudentID:       request.StudentID,
		InstructorID:    instructorID,
		UserName:        request.UserName,
		UserImage:       request.UserImage,
		Rating:          request.Rating,
		Review:          request.Review,
		Date:            time.Now().UTC(),
		CourseName:      request.CourseName,
		CourseThumbnail: request.CourseThumbnail,
	}
	if err := ctrl.queries.InsertReview(ctx, review); err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to add review", utils.ErrSaveData, err)
		return
	}

	if err := ctrl.queries.MarkEnrollmentReviewed(ctx, request.StudentID, request.CourseID); err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to add review", utils.ErrUpdateData, err)
		return
	}
	if err := ctrl.queries.RecalculateCourseRating(ctx, courseID); err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to add review", utils.ErrUpdateData, err)
		return
	}

	utils.SimpleResponse(c, http.StatusCreated, "Review added successfully", "", nil)
}

// GetMyReviews lists everything the student has reviewed
func (ctrl *ReviewController) GetMyReviews(c *gin.Context) {
	reviews, err := ctrl.queries.GetReviewsByStudent(c.Request.Context(), c.Param("studentId"))
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get reviews", utils.ErrGetData, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// GetPendingReviews lists enrollments the student has not reviewed yet
func (ctrl *ReviewController) GetPendingReviews(c *gin.Context) {
	pending, err := ctrl.queries.GetPendingReviewEnrollments(c.Request.Context(), c.Param("studentId"))
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get pending reviews", utils.ErrGetData, err)
		return
	}
	c.JSON(http.StatusOK, pending)
}
