package controllers

import (
	"errors"
	"net/http"

	"github.com/Shihab066/learning-server/app/models"
	"github.com/Shihab066/learning-server/app/queries"
	"github.com/Shihab066/learning-server/pkg/utils"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type WishlistController struct {
	queries *queries.Queries
}

func NewWishlistController(q *queries.Queries) *WishlistController {
	return &WishlistController{queries: q}
}

// GetWishlistItems lists the owner's wishlist entries
func (ctrl *WishlistController) GetWishlistItems(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.Param("userId")

	result, err := ctrl.queries.AuthorizeUser(ctx, userID, callerEmail(c))
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to authorize user", utils.ErrGetData, err)
		return
	}
	if !ensureAuthorized(c, result) {
		return
	}

	items, err := ctrl.queries.GetWishlistItems(ctx, userID)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get wishlist", utils.ErrGetData, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetWishlistCourses resolves wishlist entries to course cards
func (ctrl *WishlistController) GetWishlistCourses(c *gin.Context) {
	var request struct {
		Wishlist []models.WishlistItem `json:"wishlist" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.SimpleResponse(c, http.StatusBadRequest, "Invalid request", utils.ErrBadRequest, nil)
		return
	}

	courseIDs := make([]primitive.ObjectID, 0, len(request.Wishlist))
	for _, item := range request.Wishlist {
		if id, err := primitive.ObjectIDFromHex(item.CourseID); err == nil {
			courseIDs = append(courseIDs, id)
		}
	}

	courses, err := ctrl.queries.GetCoursesByIDs(c.Request.Context(), courseIDs)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get wishlist courses", utils.ErrGetData, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

// AddWishlistItem rejects duplicates with 409
func (ctrl *WishlistController) AddWishlistItem(c *gin.Context) {
	ctx := c.Request.Context()

	var item models.WishlistItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.SimpleResponse(c, http.StatusBadRequest, "Invalid request", utils.ErrBadRequest, nil)
		return
	}

	err := ctrl.queries.FindWishlistItem(ctx, item.UserID, item.CourseID)
	if err == nil {
		utils.SimpleResponse(c, http.StatusConflict, "Course already wishlisted", utils.ErrAlreadyWishlisted, nil)
		return
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to add wishlist item", utils.ErrGetData, err)
		return
	}

	if err := ctrl.queries.InsertWishlistItem(ctx, item); err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to add wishlist item", utils.ErrSaveData, err)
		return
	}
	utils.SimpleResponse(c, http.StatusCreated, "Course added to wishlist", "", nil)
}

// RemoveWishlistItem deletes one of the owner's wishlist entries
func (ctrl *WishlistController) RemoveWishlistItem(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.Param("userId")

	result, err := ctrl.queries.AuthorizeUser(ctx, userID, callerEmail(c))
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to authorize user", utils.ErrGetData, err)
		return
	}
	if !ensureAuthorized(c, result) {
		return
	}

	deleted, err := ctrl.queries.DeleteWishlistItem(ctx, userID, c.Param("courseId"))
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to delete wishlist item", utils.ErrDeleteData, err)
		return
	}
	utils.SimpleResponse(c, http.StatusOK, "Wishlist item deleted", "", gin.H{"deletedCount": deleted})
}
