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

type CartController struct {
	queries *queries.Queries
}

func NewCartController(q *queries.Queries) *CartController {
	return &CartController{queries: q}
}

// GetCartItems lists the user's cart entries
func (ctrl *CartController) GetCartItems(c *gin.Context) {
	items, err := ctrl.queries.GetCartItems(c.Request.Context(), c.Param("userId"))
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get cart items", utils.ErrGetData, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetCartItem answers whether one course sits in the user's cart
func (ctrl *CartController) GetCartItem(c *gin.Context) {
	err := ctrl.queries.FindCartItem(c.Request.Context(), c.Param("userId"), c.Param("courseId"))
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusOK, gin.H{"inCart": false})
		return
	}
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get cart item", utils.ErrGetData, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"inCart": true})
}

// GetCartCourses resolves the cart entries to course documents with the
// saved-for-later flag joined in.
func (ctrl *CartController) GetCartCourses(c *gin.Context) {
	var request struct {
		CartItems []models.CartItem `json:"cartItems" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.SimpleResponse(c, http.StatusBadRequest, "Invalid request", utils.ErrBadRequest, nil)
		return
	}

	courseIDs := make([]primitive.ObjectID, 0, len(request.CartItems))
	for _, item := range request.CartItems {
		if id, err := primitive.ObjectIDFromHex(item.CourseID); err == nil {
			courseIDs = append(courseIDs, id)
		}
	}

	courses, err := ctrl.queries.GetCartCourses(c.Request.Context(), courseIDs)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get cart courses", utils.ErrGetData, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

// AddCourseToCart rejects duplicates and already enrolled courses with 409
func (ctrl *CartController) AddCourseToCart(c *gin.Context) {
	ctx := c.Request.Context()

	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.SimpleResponse(c, http.StatusBadRequest, "Invalid request", utils.ErrBadRequest, nil)
		return
	}
	item.SavedForLater = false

	err := ctrl.queries.FindCartItem(ctx, item.UserID, item.CourseID)
	if err == nil {
		utils.SimpleResponse(c, http.StatusConflict, "Course already added to cart", utils.ErrAlreadyInCart, nil)
		return
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to add course to cart", utils.ErrGetData, err)
		return
	}

	enrolled, err := ctrl.queries.IsEnrolled(ctx, item.UserID, item.CourseID)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to add course to cart", utils.ErrGetData, err)
		return
	}
	if enrolled {
		utils.SimpleResponse(c, http.StatusConflict, "Course already enrolled", utils.ErrAlreadyEnrolled, nil)
		return
	}

	if err := ctrl.queries.InsertCartItem(ctx, item); err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to add course to cart", utils.ErrSaveData, err)
		return
	}
	utils.SimpleResponse(c, http.StatusCreated, "Course added to cart", "", nil)
}

// UpdateCartItemStatus toggles saved-for-later
func (ctrl *CartController) UpdateCartItemStatus(c *gin.Context) {
	var request struct {
		SavedForLater *bool `json:"savedForLater" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.SimpleResponse(c, http.StatusBadRequest, "Invalid request", utils.ErrBadRequest, nil)
		return
	}

	modified, err := ctrl.queries.UpdateCartItemStatus(c.Request.Context(), c.Param("userId"), c.Param("courseId"), *request.SavedForLater)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to update cart item", utils.ErrUpdateData, err)
		return
	}
	utils.SimpleResponse(c, http.StatusOK, "Cart item updated", "", gin.H{"modifiedCount": modified})
}

// DeleteCartItem removes one course from the cart
func (ctrl *CartController) DeleteCartItem(c *gin.Context) {
	deleted, err := ctrl.queries.DeleteCartItem(c.Request.Context(), c.Param("userId"), c.Param("courseId"))
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to delete cart item", utils.ErrDeleteData, err)
		return
	}
	utils.SimpleResponse(c, http.StatusOK, "Cart item deleted", "", gin.H{"deletedCount": deleted})
}
