package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Shihab066/learning-server/app/models"
	"github.com/Shihab066/learning-server/app/queries"
	"github.com/Shihab066/learning-server/pkg/utils"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserController struct {
	queries *queries.Queries
}

func NewUserController(q *queries.Queries) *UserController {
	return &UserController{queries: q}
}

// GetUser returns the caller's own user document, email stripped
func (ctrl *UserController) GetUser(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.Param("id")

	result, err := ctrl.queries.AuthorizeUser(ctx, userID, callerEmail(c))
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to authorize user", utils.ErrGetData, err)
		return
	}
	if !ensureAuthorized(c, result) {
		return
	}

	user, err := ctrl.queries.GetUserByID(ctx, userID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.SimpleResponse(c, http.StatusNotFound, "User not found", utils.ErrUserNotFound, nil)
		return
	}
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get user", utils.ErrGetData, err)
		return
	}

	user.Email = ""
	c.JSON(http.StatusOK, user)
}

// GetUsers is the admin listing with name/email search
func (ctrl *UserController) GetUsers(c *gin.Context) {
	ctx := c.Request.Context()

	result, err := ctrl.queries.AuthorizeAdmin(ctx, c.Param("adminId"), callerEmail(c))
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to authorize admin", utils.ErrGetData, err)
		return
	}
	if !ensureAuthorized(c, result) {
		return
	}

	limit := utils.AtoiDefault(c.Query("limit"), 10)
	users, total, err := ctrl.queries.GetUsers(ctx, c.Query("search"), limit)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get users", utils.ErrGetData, err)
		return
	}
	if len(users) == 0 {
		utils.SimpleResponse(c, http.StatusNotFound, "No users found", utils.ErrUserNotFound, nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"totalUsers": total, "users": users})
}

// GetSignupMethod answers which auth provider created the account
func (ctrl *UserController) GetSignupMethod(c *gin.Context) {
	user, err := ctrl.queries.GetUserByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.SimpleResponse(c, http.StatusNotFound, "Signup method not found", utils.ErrUserNotFound, nil)
		return
	}
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get signup method", utils.ErrGetData, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"signupMethod": user.SignupMethod})
}

// GetUserRole is public, the client uses it to route after sign-in
func (ctrl *UserController) GetUserRole(c *gin.Context) {
	user, err := ctrl.queries.GetUserByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.SimpleResponse(c, http.StatusNotFound, "User role not found", utils.ErrUserNotFound, nil)
		return
	}
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get user role", utils.ErrGetData, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": user.Role})
}

// GetSuspendedStatus answers the caller's own suspension flag
func (ctrl *UserController) GetSuspendedStatus(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.Param("id")

	result, err := ctrl.queries.AuthorizeUser(ctx, userID, callerEmail(c))
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to authorize user", utils.ErrGetData, err)
		return
	}
	if !ensureAuthorized(c, result) {
		return
	}

	user, err := ctrl.queries.GetUserByID(ctx, userID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.SimpleResponse(c, http.StatusNotFound, "User not found", utils.ErrUserNotFound, nil)
		return
	}
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get suspended status", utils.ErrGetData, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suspended": user.Suspended})
}

// AddUser registers the account document the auth provider created
func (ctrl *UserController) AddUser(c *gin.Context) {
	var request struct {
		ID           string `json:"_id" binding:"required"`
		Name         string `json:"name" binding:"required"`
		Email        string `json:"email" binding:"required,email"`
		SignupMethod string `json:"signupMethod"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.SimpleResponse(c, http.StatusBadRequest, "Invalid request", utils.ErrBadRequest, nil)
		return
	}

	user := models.User{
		ID:           request.ID,
		Name:         request.Name,
		Email:        strings.ToLower(request.Email),
		Image:        "",
		Role:         "student",
		Suspended:    false,
		SignupMethod: request.SignupMethod,
	}
	if err := ctrl.queries.CreateUser(c.Request.Context(), user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.SimpleResponse(c, http.StatusConflict, "User already exist", utils.ErrUserAlreadyExist, nil)
			return
		}
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to add user", utils.ErrSaveData, err)
		return
	}
	utils.SimpleResponse(c, http.StatusCreated, "User added successfully", "", nil)
}

// UpdateUser changes the caller's own display name and avatar
func (ctrl *UserController) UpdateUser(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.Param("id")

	result, err := ctrl.queries.AuthorizeUser(ctx, userID, callerEmail(c))
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to authorize user", utils.ErrGetData, err)
		return
	}
	if !ensureAuthorized(c, result) {
		return
	}

	var request struct {
		Name  string `json:"name"`
		Image string `json:"image"`
	}
	if err := c.ShouldBindJSON(&request); err != nil || (request.Name == "" && request.Image == "") {
		utils.SimpleResponse(c, http.StatusBadRequest, "Name or image are required", utils.ErrBadRequest, nil)
		return
	}

	modified, err := ctrl.queries.UpdateUserProfile(ctx, userID, request.Name, request.Image)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to update user", utils.ErrUpdateData, err)
		return
	}
	if modified == 0 {
		utils.SimpleResponse(c, http.StatusNotFound, "User not found or no changes made", utils.ErrUserNotFound, nil)
		return
	}
	utils.SimpleResponse(c, http.StatusOK, "User updated successfully", "", nil)
}

// UpdateInstructorProfile updates the instructor-only profile fields
func (ctrl *UserController) UpdateInstructorProfile(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.Param("id")

	result, err := ctrl.queries.AuthorizeInstructor(ctx, userID, callerEmail(c))
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to authorize instructor", utils.ErrGetData, err)
		return
	}
	if !ensureAuthorized(c, result) {
		return
	}

	var request struct {
		Headline    string            `json:"headline"`
		BioData     string            `json:"bioData"`
		Experience  string            `json:"experience"`
		Expertise   []string          `json:"expertise"`
		SocialLinks map[string]string `json:"socialLinks"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.SimpleResponse(c, http.StatusBadRequest, "Invalid request", utils.ErrBadRequest, nil)
		return
	}

	profile := bson.M{
		"headline":    request.Headline,
		"bioData":     request.BioData,
		"experience":  request.Experience,
		"expertise":   request.Expertise,
		"socialLinks": request.SocialLinks,
	}
	modified, err := ctrl.queries.UpdateInstructorProfile(ctx, userID, profile)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to update instructor profile", utils.ErrUpdateData, err)
		return
	}
	if modified == 0 {
		utils.SimpleResponse(c, http.StatusNotFound, "User not found or no changes made", utils.ErrUserNotFound, nil)
		return
	}
	utils.SimpleResponse(c, http.StatusOK, "User updated successfully", "", nil)
}

// UpdateUserRole is the admin role change
func (ctrl *UserController) UpdateUserRole(c *gin.Context) {
	ctx := c.Request.Context()

	result, err := ctrl.queries.AuthorizeAdmin(ctx, c.Param("id"), callerEmail(c))
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to authorize admin", utils.ErrGetData, err)
		return
	}
	if !ensureAuthorized(c, result) {
		return
	}

	var request struct {
		UserID string `json:"userId" binding:"required"`
		Role   string `json:"role" binding:"required,role"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.SimpleResponse(c, http.StatusBadRequest, "UserId and Role is required", utils.ErrBadRequest, nil)
		return
	}

	modified, err := ctrl.queries.UpdateUserRole(ctx, request.UserID, request.Role)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to update user role", utils.ErrUpdateData, err)
		return
	}
	if modified == 0 {
		utils.SimpleResponse(c, http.StatusNotFound, "User not found or no changes made", utils.ErrUserNotFound, nil)
		return
	}
	utils.SimpleResponse(c, http.StatusOK, "User role updated successfully", "", nil)
}
