package controllers

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"sort"
	"time"

	"github.com/Shihab066/learning-server/app/queries"
	"github.com/Shihab066/learning-server/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const popularInstructorsCacheKey = "instructors:popular"

type InstructorController struct {
	queries *queries.Queries
	cache   *redis.Client
}

func NewInstructorController(q *queries.Queries, cache *redis.Client) *InstructorController {
	return &InstructorController{queries: q, cache: cache}
}

// GetInstructor serves an instructor's public profile with aggregate stats
func (ctrl *InstructorController) GetInstructor(c *gin.Context) {
	ctx := c.Request.Context()
	instructorID := c.Param("instructorId")

	instructor, err := ctrl.queries.GetUserByID(ctx, instructorID)
	if errors.Is(err, mongo.ErrNoDocuments) || (err == nil && instructor.Role != "instructor") {
		utils.SimpleResponse(c, http.StatusNotFound, "Instructor not found", utils.ErrInstructorNotFound, nil)
		return
	}
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get instructor", utils.ErrGetData, err)
		return
	}

	totalCourses, err := ctrl.queries.CountCoursesByInstructor(ctx, instructorID)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get instructor", utils.ErrGetData, err)
		return
	}
	totalReviews, err := ctrl.queries.CountReviewsByInstructor(ctx, instructorID)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get instructor", utils.ErrGetData, err)
		return
	}
	totalStudents, err := ctrl.queries.SumStudentsByInstructor(ctx, instructorID)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get instructor", utils.ErrGetData, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":              instructor.Name,
		"image":             instructor.Image,
		"headline":          instructor.Headline,
		"bioData":           instructor.BioData,
		"experience":        instructor.Experience,
		"expertise":         instructor.Expertise,
		"socialLinks":       instructor.SocialLinks,
		"totalCoursesCount": totalCourses,
		"totalReviewsCount": totalReviews,
		"totalStudents":     totalStudents,
	})
}

// GetInstructors lists every instructor card with their average rating
func (ctrl *InstructorController) GetInstructors(c *gin.Context) {
	ctx := c.Request.Context()

	instructors, err := ctrl.queries.GetInstructorProfiles(ctx)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get instructors", utils.ErrGetData, err)
		return
	}

	cards := make([]gin.H, 0, len(instructors))
	for _, instructor := range instructors {
		average, _, err := ctrl.queries.AverageRatingByInstructor(ctx, instructor.ID)
		if err != nil {
			utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get instructors", utils.ErrGetData, err)
			return
		}
		cards = append(cards, gin.H{
			"_id":      instructor.ID,
			"name":     instructor.Name,
			"image":    instructor.Image,
			"headline": instructor.Headline,
			"rating":   math.Round(average*10) / 10,
		})
	}
	c.JSON(http.StatusOK, cards)
}

// GetPopularInstructors ranks instructors by 40% rating volume and 60%
// student count, top eight, cached for ten minutes.
func (ctrl *InstructorController) GetPopularInstructors(c *gin.Context) {
	ctx := c.Request.Context()

	if ctrl.cache != nil {
		if cached, err := ctrl.cache.Get(ctx, popularInstructorsCacheKey).Result(); err == nil {
			c.Data(http.StatusOK, "application/json", []byte(cached))
			return
		}
	}

	instructors, err := ctrl.queries.GetInstructorProfiles(ctx)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get popular instructors", utils.ErrGetData, err)
		return
	}

	type rankedInstructor struct {
		card  gin.H
		score float64
	}
	ranked := make([]rankedInstructor, 0, len(instructors))
	for _, instructor := range instructors {
		average, totalRatings, err := ctrl.queries.AverageRatingByInstructor(ctx, instructor.ID)
		if err != nil {
			utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get popular instructors", utils.ErrGetData, err)
			return
		}
		totalStudents, err := ctrl.queries.SumStudentsByInstructor(ctx, instructor.ID)
		if err != nil {
			utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get popular instructors", utils.ErrGetData, err)
			return
		}

		score := (float64(totalRatings)+average)*0.4 + float64(totalStudents)*0.6
		ranked = append(ranked, rankedInstructor{
			card: gin.H{
				"_id":      instructor.ID,
				"name":     instructor.Name,
				"image":    instructor.Image,
				"headline": instructor.Headline,
				"rating":   math.Round(average*10) / 10,
			},
			score: score,
		})
	}

	sort.Slice(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	if len(ranked) > 8 {
		ranked = ranked[:8]
	}

	popular := make([]gin.H, 0, len(ranked))
	for _, instructor := range ranked {
		popular = append(popular, instructor.card)
	}

	if ctrl.cache != nil {
		if payload, err := json.Marshal(popular); err == nil {
			if err := ctrl.cache.Set(ctx, popularInstructorsCacheKey, payload, 10*time.Minute).Err(); err != nil {
				utils.Logger.Warn("failed to cache popular instructors", zap.Error(err))
			}
		}
	}

	c.JSON(http.StatusOK, popular)
}
