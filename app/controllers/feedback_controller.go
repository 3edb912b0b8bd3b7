package controllers

import (
	"errors"
	"net/http"

	"github.com/Shihab066/learning-server/app/models"
	"github.com/Shihab066/learning-server/app/queries"
	"github.com/Shihab066/learning-server/pkg/encryption"
	"github.com/Shihab066/learning-server/pkg/utils"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

type FeedbackController struct {
	queries *queries.Queries
}

func NewFeedbackController(q *queries.Queries) *FeedbackController {
	return &FeedbackController{queries: q}
}

// GetAllFeedback is the public testimonial wall
func (ctrl *FeedbackController) GetAllFeedback(c *gin.Context) {
	feedbacks, err := ctrl.queries.GetAllFeedback(c.Request.Context())
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get feedbacks", utils.ErrGetData, err)
		return
	}
	c.JSON(http.StatusOK, feedbacks)
}

// GetFeedback returns the user's own testimonial, null when absent
func (ctrl *FeedbackController) GetFeedback(c *gin.Context) {
	feedback, err := ctrl.queries.GetFeedbackByUser(c.Request.Context(), c.Param("userId"))
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get feedback", utils.ErrGetData, err)
		return
	}
	c.JSON(http.StatusOK, feedback)
}

// AddFeedback stores one testimonial per user, 409 on a second attempt
func (ctrl *FeedbackController) AddFeedback(c *gin.Context) {
	ctx := c.Request.Context()

	var request struct {
		UserID       string `json:"userId" binding:"required"`
		Name         string `json:"name" binding:"required"`
		ProfileImage string `json:"profileImage"`
		Headline     string `json:"headline"`
		Feedback     string `json:"feedback" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.SimpleResponse(c, http.StatusBadRequest, "Invalid request", utils.ErrBadRequest, nil)
		return
	}

	_, err := ctrl.queries.GetFeedbackByUser(ctx, request.UserID)
	if err == nil {
		utils.SimpleResponse(c, http.StatusConflict, "Cannot add multiple feedbacks", utils.ErrFeedbackExist, nil)
		return
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to add feedback", utils.ErrGetData, err)
		return
	}

	feedback := models.Feedback{
		ID:           encryption.GenerateID(),
		UserID:       request.UserID,
		Name:         request.Name,
		ProfileImage: request.ProfileImage,
		Headline:     request.Headline,
		Feedback:     request.Feedback,
	}
	if err := ctrl.queries.InsertFeedback(ctx, feedback); err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to add feedback", utils.ErrSaveData, err)
		return
	}
	utils.SimpleResponse(c, http.StatusCreated, "Feedback added successfully", "", nil)
}

// UpdateFeedback edits the user's own testimonial
func (ctrl *FeedbackController) UpdateFeedback(c *gin.Context) {
	var request struct {
		UserID   string `json:"userId" binding:"required"`
		Headline string `json:"headline"`
		Feedback string `json:"feedback" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.SimpleResponse(c, http.StatusBadRequest, "Invalid request", utils.ErrBadRequest, nil)
		return
	}

	modified, err := ctrl.queries.UpdateFeedback(c.Request.Context(), request.UserID, request.Headline, request.Feedback)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to update feedback", utils.ErrUpdateData, err)
		return
	}
	utils.SimpleResponse(c, http.StatusOK, "Feedback updated successfully", "", gin.H{"modifiedCount": modified})
}

// RemoveFeedback deletes the user's testimonial
func (ctrl *FeedbackController) RemoveFeedback(c *gin.Context) {
	deleted, err := ctrl.queries.DeleteFeedback(c.Request.Context(), c.Param("userId"))
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to remove feedback", utils.ErrDeleteData, err)
		return
	}
	utils.SimpleResponse(c, http.StatusOK, "Feedback removed successfully", "", gin.H{"deletedCount": deleted})
}
