package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Shihab066/learning-server/app/models"
	"github.com/Shihab066/learning-server/app/queries"
	"github.com/Shihab066/learning-server/pkg/encryption"
	"github.com/Shihab066/learning-server/pkg/utils"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

type SuspensionController struct {
	queries *queries.Queries
}

func NewSuspensionController(q *queries.Queries) *SuspensionController {
	return &SuspensionController{queries: q}
}

// GetSuspendedUsers is the admin list of suspension entries
func (ctrl *SuspensionController) GetSuspendedUsers(c *gin.Context) {
	suspensions, err := ctrl.queries.GetSuspendedUsers(c.Request.Context())
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get suspended users", utils.ErrGetData, err)
		return
	}
	c.JSON(http.StatusOK, suspensions)
}

// GetSuspensionDetails shows a suspended user why their account is locked
func (ctrl *SuspensionController) GetSuspensionDetails(c *gin.Context) {
	suspension, err := ctrl.queries.GetSuspensionByUser(c.Request.Context(), c.Param("userId"))
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get suspension details", utils.ErrGetData, err)
		return
	}
	c.JSON(http.StatusOK, suspension)
}

// AddSuspension lists a user as suspended and flips their account flag. A
// user already on the list answers 409.
func (ctrl *SuspensionController) AddSuspension(c *gin.Context) {
	ctx := c.Request.Context()

	var request struct {
		UserID      string `json:"user_id" binding:"required"`
		Reason      string `json:"reason" binding:"required"`
		SuspendedBy string `json:"suspendedBy"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.SimpleResponse(c, http.StatusBadRequest, "Invalid request", utils.ErrBadRequest, nil)
		return
	}

	listed, err := ctrl.queries.IsUserSuspensionListed(ctx, request.UserID)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to add suspension", utils.ErrGetData, err)
		return
	}
	if listed {
		utils.SimpleResponse(c, http.StatusConflict, "User is already in the suspension list", utils.ErrAlreadySuspended, nil)
		return
	}

	if err := ctrl.queries.SetUserSuspended(ctx, request.UserID, true); err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to add suspension", utils.ErrUpdateData, err)
		return
	}

	suspension := models.Suspension{
		ID:          encryption.GenerateID(),
		UserID:      request.UserID,
		Reason:      request.Reason,
		SuspendedBy: request.SuspendedBy,
		Date:        time.Now().UTC(),
	}
	if err := ctrl.queries.InsertSuspension(ctx, suspension); err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to add suspension", utils.ErrSaveData, err)
		return
	}
	utils.SimpleResponse(c, http.StatusCreated, "User suspended successfully", "", gin.H{"id": suspension.ID})
}

// RemoveSuspension lifts the suspension and clears the account flag
func (ctrl *SuspensionController) RemoveSuspension(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.Param("userId")

	suspendID, err := utils.ParseUint(c.Param("suspendId"))
	if err != nil {
		utils.SimpleResponse(c, http.StatusBadRequest, "Invalid suspension id", utils.ErrBadRequest, nil)
		return
	}

	deleted, err := ctrl.queries.DeleteSuspension(ctx, userID, suspendID)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to remove suspension", utils.ErrDeleteData, err)
		return
	}
	if deleted == 0 {
		utils.SimpleResponse(c, http.StatusNotFound, "Suspension entry not found", utils.ErrUserNotFound, nil)
		return
	}

	if err := ctrl.queries.SetUserSuspended(ctx, userID, false); err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to remove suspension", utils.ErrUpdateData, err)
		return
	}
	utils.SimpleResponse(c, http.StatusOK, "Suspension removed successfully", "", nil)
}
