package controllers

import (
	"net/http"
	"time"

	"github.com/Shihab066/learning-server/app/models"
	"github.com/Shihab066/learning-server/app/queries"
	"github.com/Shihab066/learning-server/pkg/encryption"
	"github.com/Shihab066/learning-server/pkg/utils"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

type BannerController struct {
	queries *queries.Queries
}

func NewBannerController(q *queries.Queries) *BannerController {
	return &BannerController{queries: q}
}

// GetSliderImages is the public landing page slider
func (ctrl *BannerController) GetSliderImages(c *gin.Context) {
	banners, err := ctrl.queries.GetActiveBanners(c.Request.Context())
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get slider images", utils.ErrGetData, err)
		return
	}
	c.JSON(http.StatusOK, banners)
}

// GetAllBanners is the admin management list
func (ctrl *BannerController) GetAllBanners(c *gin.Context) {
	banners, err := ctrl.queries.GetBanners(c.Request.Context())
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get banners", utils.ErrGetData, err)
		return
	}
	c.JSON(http.StatusOK, banners)
}

// AddBanner creates a banner with a server generated id
func (ctrl *BannerController) AddBanner(c *gin.Context) {
	var banner models.Banner
	if err := c.ShouldBindJSON(&banner); err != nil || banner.Image == "" {
		utils.SimpleResponse(c, http.StatusBadRequest, "Invalid request", utils.ErrBadRequest, nil)
		return
	}

	banner.ID = encryption.GenerateID()
	banner.CreatedAt = time.Now().UTC()

	if err := ctrl.queries.InsertBanner(c.Request.Context(), banner); err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to add banner", utils.ErrSaveData, err)
		return
	}
	utils.SimpleResponse(c, http.StatusCreated, "Banner added successfully", "", gin.H{"id": banner.ID})
}

// UpdateBanner edits one banner's image, copy or active flag
func (ctrl *BannerController) UpdateBanner(c *gin.Context) {
	bannerID, err := utils.ParseUint(c.Param("bannerId"))
	if err != nil {
		utils.SimpleResponse(c, http.StatusBadRequest, "Invalid banner id", utils.ErrBadRequest, nil)
		return
	}

	var request struct {
		Image      string `json:"image"`
		Heading    string `json:"heading"`
		SubHeading string `json:"subHeading"`
		Active     *bool  `json:"active"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.SimpleResponse(c, http.StatusBadRequest, "Invalid request", utils.ErrBadRequest, nil)
		return
	}

	set := bson.M{}
	if request.Image != "" {
		set["image"] = request.Image
	}
	if request.Heading != "" {
		set["heading"] = request.Heading
	}
	if request.SubHeading != "" {
		set["subHeading"] = request.SubHeading
	}
	if request.Active != nil {
		set["active"] = *request.Active
	}
	if len(set) == 0 {
		utils.SimpleResponse(c, http.StatusBadRequest, "Nothing to update", utils.ErrBadRequest, nil)
		return
	}

	modified, err := ctrl.queries.UpdateBanner(c.Request.Context(), bannerID, set)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to update banner", utils.ErrUpdateData, err)
		return
	}
	utils.SimpleResponse(c, http.StatusOK, "Banner updated successfully", "", gin.H{"modifiedCount": modified})
}

// DeleteBanner removes one banner
func (ctrl *BannerController) DeleteBanner(c *gin.Context) {
	bannerID, err := utils.ParseUint(c.Param("bannerId"))
	if err != nil {
		utils.SimpleResponse(c, http.StatusBadRequest, "Invalid banner id", utils.ErrBadRequest, nil)
		return
	}

	deleted, err := ctrl.queries.DeleteBanner(c.Request.Context(), bannerID)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to delete banner", utils.ErrDeleteData, err)
		return
	}
	utils.SimpleResponse(c, http.StatusOK, "Banner deleted successfully", "", gin.H{"deletedCount": deleted})
}
