package controllers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/Shihab066/learning-server/app/models"
	"github.com/Shihab066/learning-server/app/queries"
	"github.com/Shihab066/learning-server/pkg/media"
	"github.com/Shihab066/learning-server/pkg/utils"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

type MediaController struct {
	queries     *queries.Queries
	signer      *media.Signer
	client      *http.Client
	imagePreset string
	videoPreset string
}

func NewMediaController(q *queries.Queries, signer *media.Signer, client *http.Client, imagePreset, videoPreset string) *MediaController {
	if client == nil {
		client = http.DefaultClient
	}
	return &MediaController{
		queries:     q,
		signer:      signer,
		client:      client,
		imagePreset: imagePreset,
		videoPreset: videoPreset,
	}
}

// GetImageUploadSignature signs a direct image upload for the client
func (ctrl *MediaController) GetImageUploadSignature(c *gin.Context) {
	ctrl.uploadSignature(c, ctrl.imagePreset)
}

// GetVideoUploadSignature signs a direct video upload for the client
func (ctrl *MediaController) GetVideoUploadSignature(c *gin.Context) {
	ctrl.uploadSignature(c, ctrl.videoPreset)
}

func (ctrl *MediaController) uploadSignature(c *gin.Context, preset string) {
	signature, timestamp, err := ctrl.signer.UploadSignature(preset)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to generate signature", utils.ErrSignature, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"signature":     signature,
		"timestamp":     timestamp,
		"cloud_name":    ctrl.signer.CloudName,
		"cloud_api":     ctrl.signer.APIKey,
		"upload_preset": preset,
	})
}

// AddVideoPlaylist fetches the freshly uploaded video's HLS manifest from the
// signed delivery URL and stores it for later playback rewriting.
func (ctrl *MediaController) AddVideoPlaylist(c *gin.Context) {
	publicID := c.Param("publicId")
	courseID := c.Param("courseId")

	var request struct {
		Duration float64 `json:"duration"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.SimpleResponse(c, http.StatusBadRequest, "Invalid request", utils.ErrBadRequest, nil)
		return
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, ctrl.signer.PlaybackURL(publicID), nil)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to fetch playlist", utils.ErrGetData, err)
		return
	}
	resp, err := ctrl.client.Do(req)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to fetch playlist", utils.ErrGetData, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		utils.ServerErrorResponse(c, http.StatusBadGateway, "Failed to fetch playlist", utils.ErrGetData, errors.New(resp.Status))
		return
	}
	manifest, err := io.ReadAll(resp.Body)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to fetch playlist", utils.ErrGetData, err)
		return
	}

	playlist := models.VideoPlaylist{
		CourseID: courseID,
		PublicID: publicID,
		Duration: request.Duration,
		Playlist: string(manifest),
	}
	if err := ctrl.queries.InsertVideoPlaylist(c.Request.Context(), playlist); err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to save playlist", utils.ErrSaveData, err)
		return
	}
	utils.SimpleResponse(c, http.StatusCreated, "Playlist added successfully", "", nil)
}

// GetVideoPlaylist serves the stored manifest to an enrolled student, with
// every segment reference rewritten to a freshly signed delivery URL.
func (ctrl *MediaController) GetVideoPlaylist(c *gin.Context) {
	ctx := c.Request.Context()
	publicID := c.Param("publicId")
	courseID := c.Param("courseId")

	user, err := ctrl.queries.GetUserByEmail(ctx, callerEmail(c))
	if err != nil {
		utils.SimpleResponse(c, http.StatusForbidden, "Forbidden access", utils.ErrForbidden, nil)
		return
	}

	enrolled, err := ctrl.queries.IsEnrolled(ctx, user.ID, courseID)
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to check enrollment", utils.ErrGetData, err)
		return
	}
	if !enrolled {
		utils.SimpleResponse(c, http.StatusForbidden, "Forbidden access", utils.ErrForbidden, nil)
		return
	}

	stored, err := ctrl.queries.GetVideoPlaylist(ctx, publicID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.SimpleResponse(c, http.StatusNotFound, "Playlist not found", utils.ErrGetData, nil)
		return
	}
	if err != nil {
		utils.ServerErrorResponse(c, http.StatusInternalServerError, "Failed to get playlist", utils.ErrGetData, err)
		return
	}

	rewritten := strings.ReplaceAll(stored.Playlist, publicID, ctrl.signer.PlaybackURLPrefix(publicID))
	c.Data(http.StatusOK, "application/x-mpegURL", []byte(rewritten))
}
