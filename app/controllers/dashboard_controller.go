package controllers

import (
	"net/http"
	"time"

	"github.com/Shihab066/learning-server/app/queries"
	"github.com/Shihab066/learning-server/pkg/utils"
	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	queries *queries.Queries
}

func NewDashboardController(q *queries.Queries) *DashboardController {
	return &DashboardController{queries: q}
}

// GetTotalSalesData answers the admin dashboard: revenue summary, lifetime
// sales count and the two monthly chart series.
func (ctrl *DashboardController) GetTotalSalesData(c *gin.Context) {
	ctx := c.Request.Context()

	summary, err := ctrl.queries.GetSalesSummary(ctx, time.Now().UTC())
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get sales data", utils.ErrGetData, err)
		return
	}
	totalSalesCount, err := ctrl.queries.CountEnrollments(ctx)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get sales data", utils.ErrGetData, err)
		return
	}
	salesChart, err := ctrl.queries.GetMonthlySalesCounts(ctx)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get sales data", utils.ErrGetData, err)
		return
	}
	amountChart, err := ctrl.queries.GetMonthlySalesAmounts(ctx)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get sales data", utils.ErrGetData, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalSales":                summary,
		"totalSalesCount":           totalSalesCount,
		"totalSalesChartData":       salesChart,
		"totalSalesAmountChartData": amountChart,
	})
}

// GetInstructorTotalSalesData is the instructor's view of the same charts,
// scoped to their own courses.
func (ctrl *DashboardController) GetInstructorTotalSalesData(c *gin.Context) {
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

	summary, err := ctrl.queries.GetInstructorSalesSummary(ctx, instructorID, time.Now().UTC())
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get sales data", utils.ErrGetData, err)
		return
	}
	totalSalesCount, err := ctrl.queries.CountEnrollmentsByInstructor(ctx, instructorID)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get sales data", utils.ErrGetData, err)
		return
	}
	salesChart, err := ctrl.queries.GetInstructorMonthlySalesCounts(ctx, instructorID)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get sales data", utils.ErrGetData, err)
		return
	}
	amountChart, err := ctrl.queries.GetInstructorMonthlySalesAmounts(ctx, instructorID)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get sales data", utils.ErrGetData, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalSales":                summary,
		"totalSalesCount":           totalSalesCount,
		"totalSalesChartData":       salesChart,
		"totalSalesAmountChartData": amountChart,
	})
}

// GetInstructorReviewsStatistics answers review volume and average rating
func (ctrl *DashboardController) GetInstructorReviewsStatistics(c *gin.Context) {
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

	average, total, err := ctrl.queries.AverageRatingByInstructor(ctx, instructorID)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get reviews statistics", utils.ErrGetData, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"totalReviews": total, "averageRating": average})
}

// GetInstructorCoursesStatistics answers course and student counts
func (ctrl *DashboardController) GetInstructorCoursesStatistics(c *gin.Context) {
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

	totalCourses, err := ctrl.queries.CountCoursesByInstructor(ctx, instructorID)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get courses statistics", utils.ErrGetData, err)
		return
	}
	totalStudents, err := ctrl.queries.SumStudentsByInstructor(ctx, instructorID)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get courses statistics", utils.ErrGetData, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"totalCourses": totalCourses, "totalStudents": totalStudents})
}
