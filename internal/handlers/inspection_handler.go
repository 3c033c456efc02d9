package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"inspekta/internal/models"
	"inspekta/internal/responses"
	"inspekta/internal/services"
	"inspekta/internal/utils"
	"inspekta/internal/validators"

	"github.com/gin-gonic/gin"
)

type InspectionHandler struct {
	inspectionService services.InspectionService
	mintService       services.MintService
}

func NewInspectionHandler(inspectionService services.InspectionService, mintService services.MintService) *InspectionHandler {
	return &InspectionHandler{
		inspectionService: inspectionService,
		mintService:       mintService,
	}
}

// CreateInspection submits a new inspection report
func (h *InspectionHandler) CreateInspection(c *gin.Context) {
	var request validators.InspectionCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	inspection, err := h.inspectionService.Create(c.Request.Context(), &request)
	if err != nil {
		respondServiceError(c, err, "INSPECTION_CREATE_FAILED")
		return
	}

	utils.CreatedResponse(c, "Inspection submitted successfully", inspection)
}

// GetInspection retrieves one inspection with its photos
func (h *InspectionHandler) GetInspection(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	detail, err := h.inspectionService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.NotFoundResponse(c, "Inspection")
		return
	}

	utils.SuccessResponse(c, "Inspection retrieved successfully", detail)
}

// UpdateInspection edits a pre-archive inspection
func (h *InspectionHandler) UpdateInspection(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	var request validators.InspectionUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	inspection, err := h.inspectionService.Update(c.Request.Context(), id, &request)
	if err != nil {
		respondServiceError(c, err, "INSPECTION_UPDATE_FAILED")
		return
	}

	utils.SuccessResponse(c, "Inspection updated successfully", inspection)
}

// DeleteInspection removes a non-minted inspection and its photos
func (h *InspectionHandler) DeleteInspection(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	if err := h.inspectionService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "INSPECTION_DELETE_FAILED")
		return
	}

	utils.SuccessResponse(c, "Inspection deleted successfully", nil)
}

// ListInspections lists inspections with pagination and search
func (h *InspectionHandler) ListInspections(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	var (
		items []responses.InspectionListItem
		total int64
		err   error
	)

	if status := c.Query("status"); status != "" {
		items, total, err = h.inspectionService.ListByStatus(c.Request.Context(), models.InspectionStatus(status), params)
	} else if branchID := c.Query("cabangId"); branchID != "" {
		items, total, err = h.inspectionService.ListByBranch(c.Request.Context(), branchID, params)
	} else {
		items, total, err = h.inspectionService.List(c.Request.Context(), params)
	}
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponseWithMeta(c, "Inspections retrieved successfully", items, &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
	})
}

// ListMyInspections lists the authenticated inspector's own reports
func (h *InspectionHandler) ListMyInspections(c *gin.Context) {
	inspectorID, exists := c.Get("inspector_id")
	if !exists {
		utils.ForbiddenResponse(c)
		return
	}

	params := utils.GetPaginationParams(c)
	items, total, err := h.inspectionService.ListByInspector(c.Request.Context(), inspectorID.(string), params)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponseWithMeta(c, "Inspections retrieved successfully", items, &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
	})
}

// GetPlateHistory lists every inspection recorded for one plate number
func (h *InspectionHandler) GetPlateHistory(c *gin.Context) {
	plateNumber := c.Param("platNomor")

	var request struct {
		PlatNomor string `validate:"required,plate_number"`
	}
	request.PlatNomor = plateNumber
	if validationErrors := validators.ValidateStruct(&request); validationErrors != nil {
		utils.ValidationErrorResponse(c, validationErrors.Details())
		return
	}

	items, err := h.inspectionService.GetPlateHistory(c.Request.Context(), plateNumber)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponseWithMeta(c, "Inspections retrieved successfully", items, &utils.Meta{
		Count: len(items),
	})
}

// GetLatestArchived serves the public archived-report listing
func (h *InspectionHandler) GetLatestArchived(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(utils.LatestArchivedDefaultLimit)))

	items, err := h.inspectionService.GetLatestArchived(c.Request.Context(), limit)
	if err != nil {
		if errors.Is(err, responses.ErrDataConsistency) {
			utils.ErrorResponse(c, http.StatusInternalServerError, "DATA_CONSISTENCY", utils.ErrInternalServer)
			return
		}
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponseWithMeta(c, "Archived inspections retrieved successfully", items, &utils.Meta{
		Count: len(items),
	})
}

// ApproveInspection finalizes a reviewed report
func (h *InspectionHandler) ApproveInspection(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	inspection, err := h.inspectionService.Approve(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "INSPECTION_APPROVE_FAILED")
		return
	}

	utils.SuccessResponse(c, "Inspection approved successfully", inspection)
}

// DeactivateInspection hides a report from customer lookups
func (h *InspectionHandler) DeactivateInspection(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	if err := h.inspectionService.Deactivate(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "INSPECTION_DEACTIVATE_FAILED")
		return
	}

	utils.SuccessResponse(c, "Inspection deactivated successfully", nil)
}

// MintInspection anchors an approved report on chain
func (h *InspectionHandler) MintInspection(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	var request struct {
		OwnerWallet string `json:"ownerWallet" validate:"required,wallet_address"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	if validationErrors := validators.ValidateStruct(&request); validationErrors != nil {
		utils.ValidationErrorResponse(c, validationErrors.Details())
		return
	}

	inspection, err := h.mintService.Mint(c.Request.Context(), id, request.OwnerWallet)
	if err != nil {
		respondServiceError(c, err, "MINT_FAILED")
		return
	}

	utils.SuccessResponse(c, "Inspection minted successfully", inspection)
}
