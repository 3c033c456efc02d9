package handlers

import (
	"inspekta/internal/responses"
	"inspekta/internal/services"
	"inspekta/internal/utils"
	"inspekta/internal/validators"

	"github.com/gin-gonic/gin"
)

type PhotoHandler struct {
	photoService services.PhotoService
}

func NewPhotoHandler(photoService services.PhotoService) *PhotoHandler {
	return &PhotoHandler{
		photoService: photoService,
	}
}

// UploadPhotos stores one or more photos for an inspection. The request is
// multipart: image files under "files" plus a "metadata" field holding a
// JSON array, matched to the files by position.
func (h *PhotoHandler) UploadPhotos(c *gin.Context) {
	inspectionID, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.BadRequestResponse(c, "Invalid multipart form: "+err.Error())
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		utils.BadRequestResponse(c, "No files uploaded")
		return
	}
	if len(files) > utils.MaxPhotosPerUpload {
		utils.BadRequestResponse(c, "Too many files in one upload")
		return
	}

	mode := c.PostForm("mode")
	rawMetadata := c.PostForm("metadata")

	metadata, validationErrors := validators.ParsePhotoMetadata(rawMetadata, mode, len(files))
	if validationErrors != nil {
		utils.ValidationErrorResponse(c, validationErrors.Details())
		return
	}

	photos, err := h.photoService.Upload(c.Request.Context(), inspectionID, files, metadata)
	if err != nil {
		respondServiceError(c, err, "PHOTO_UPLOAD_FAILED")
		return
	}

	utils.CreatedResponse(c, "Photos uploaded successfully", photos)
}

// GetInspectionPhotos lists an inspection's photos grouped by type
func (h *PhotoHandler) GetInspectionPhotos(c *gin.Context) {
	inspectionID, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	photos, err := h.photoService.GetByInspection(c.Request.Context(), inspectionID)
	if err != nil {
		respondServiceError(c, err, "PHOTO_FETCH_FAILED")
		return
	}

	grouped := responses.NewTypedPhotoResponse(photos, h.photoService.ResolveURL)
	utils.SuccessResponse(c, "Photos retrieved successfully", grouped)
}

// UpdatePhoto edits a photo's annotation
func (h *PhotoHandler) UpdatePhoto(c *gin.Context) {
	photoID, ok := parseObjectID(c, "photoId")
	if !ok {
		return
	}

	var request validators.PhotoUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	photo, err := h.photoService.UpdateAnnotation(c.Request.Context(), photoID, &request)
	if err != nil {
		respondServiceError(c, err, "PHOTO_UPDATE_FAILED")
		return
	}

	utils.SuccessResponse(c, "Photo updated successfully", photo)
}

// GetPhotoURL returns a short-lived signed URL for direct download of one
// photo from the storage backend.
func (h *PhotoHandler) GetPhotoURL(c *gin.Context) {
	photoID, ok := parseObjectID(c, "photoId")
	if !ok {
		return
	}

	url, err := h.photoService.GetSignedURL(c.Request.Context(), photoID)
	if err != nil {
		respondServiceError(c, err, "PHOTO_URL_FAILED")
		return
	}

	utils.SuccessResponse(c, "Photo URL generated successfully", gin.H{"url": url})
}

// DeletePhoto removes one photo and its stored file
func (h *PhotoHandler) DeletePhoto(c *gin.Context) {
	photoID, ok := parseObjectID(c, "photoId")
	if !ok {
		return
	}

	if err := h.photoService.Delete(c.Request.Context(), photoID); err != nil {
		respondServiceError(c, err, "PHOTO_DELETE_FAILED")
		return
	}

	utils.SuccessResponse(c, "Photo deleted successfully", nil)
}
