package services

import (
	"context"
	"fmt"
	"time"

	"inspekta/internal/models"
	"inspekta/internal/repositories/interfaces"
	"inspekta/internal/responses"
	"inspekta/internal/utils"
	"inspekta/internal/validators"
	"inspekta/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InspectionService interface {
	Create(ctx context.Context, req *validators.InspectionCreateRequest) (*models.Inspection, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*responses.InspectionDetailResponse, error)
	Update(ctx context.Context, id primitive.ObjectID, req *validators.InspectionUpdateRequest) (*models.Inspection, error)
	Delete(ctx context.Context, id primitive.ObjectID) error

	List(ctx context.Context, params *utils.PaginationParams) ([]responses.InspectionListItem, int64, error)
	ListByInspector(ctx context.Context, inspectorID string, params *utils.PaginationParams) ([]responses.InspectionListItem, int64, error)
	ListByStatus(ctx context.Context, status models.InspectionStatus, params *utils.PaginationParams) ([]responses.InspectionListItem, int64, error)
	ListByBranch(ctx context.Context, branchID string, params *utils.PaginationParams) ([]responses.InspectionListItem, int64, error)
	GetPlateHistory(ctx context.Context, plateNumber string) ([]responses.InspectionListItem, error)
	GetLatestArchived(ctx context.Context, limit int) ([]*responses.LatestArchivedItem, error)

	Approve(ctx context.Context, id primitive.ObjectID) (*models.Inspection, error)
	Deactivate(ctx context.Context, id primitive.ObjectID) error
}

type inspectionService struct {
	inspectionRepo interfaces.InspectionRepository
	photoRepo      interfaces.PhotoRepository
	photoService   PhotoService
	reportService  ReportService
	cache          CacheService
	logger         *logger.Logger
}

func NewInspectionService(
	inspectionRepo interfaces.InspectionRepository,
	photoRepo interfaces.PhotoRepository,
	photoService PhotoService,
	reportService ReportService,
	cache CacheService,
	logger *logger.Logger,
) InspectionService {
	return &inspectionService{
		inspectionRepo: inspectionRepo,
		photoRepo:      photoRepo,
		photoService:   photoService,
		reportService:  reportService,
		cache:          cache,
		logger:         logger,
	}
}

func (s *inspectionService) Create(ctx context.Context, req *validators.InspectionCreateRequest) (*models.Inspection, error) {
	inspection, validationErrors := validators.ValidateInspectionCreate(req)
	if validationErrors != nil {
		return nil, validationErrors
	}

	if err := s.inspectionRepo.Create(ctx, inspection); err != nil {
		s.logger.WithError(err).Error("Failed to create inspection")
		return nil, err
	}

	s.logger.LogInspectionEvent(inspection.ID, utils.EventInspectionSubmitted, map[string]interface{}{
		"inspector_id": inspection.InspectorID,
		"branch_id":    inspection.BranchID,
		"plat_nomor":   inspection.VehicleData.PlatNomor,
	})

	return inspection, nil
}

func (s *inspectionService) GetByID(ctx context.Context, id primitive.ObjectID) (*responses.InspectionDetailResponse, error) {
	inspection, err := s.inspectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	photos, err := s.photoRepo.GetByInspectionID(ctx, id)
	if err != nil {
		return nil, err
	}

	return responses.NewInspectionDetailResponse(inspection, photos, s.photoService.ResolveURL), nil
}

func (s *inspectionService) Update(ctx context.Context, id primitive.ObjectID, req *validators.InspectionUpdateRequest) (*models.Inspection, error) {
	existing, err := s.inspectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Archived reports are immutable
	if existing.IsArchived() || existing.Status == models.InspectionStatusDeactivated {
		return nil, fmt.Errorf("%s: inspection is %s", utils.ErrInvalidStatusChange, existing.Status)
	}

	updated, validationErrors := validators.ValidateInspectionUpdate(req, existing)
	if validationErrors != nil {
		return nil, validationErrors
	}

	if err := s.inspectionRepo.Replace(ctx, updated); err != nil {
		s.logger.WithInspectionID(id).WithError(err).Error("Failed to update inspection")
		return nil, err
	}

	return updated, nil
}

func (s *inspectionService) Delete(ctx context.Context, id primitive.ObjectID) error {
	inspection, err := s.inspectionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Minted reports are anchored on chain and can only be deactivated
	if inspection.Status == models.InspectionStatusMinted {
		return fmt.Errorf("%s: minted inspections cannot be deleted", utils.ErrInvalidStatusChange)
	}

	if err := s.photoService.DeleteByInspection(ctx, id); err != nil {
		s.logger.WithInspectionID(id).WithError(err).Warn("Failed to delete inspection photos")
	}

	return s.inspectionRepo.Delete(ctx, id)
}

func (s *inspectionService) List(ctx context.Context, params *utils.PaginationParams) ([]responses.InspectionListItem, int64, error) {
	inspections, total, err := s.inspectionRepo.List(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	return toListItems(inspections), total, nil
}

func (s *inspectionService) ListByInspector(ctx context.Context, inspectorID string, params *utils.PaginationParams) ([]responses.InspectionListItem, int64, error) {
	inspections, total, err := s.inspectionRepo.GetByInspectorID(ctx, inspectorID, params)
	if err != nil {
		return nil, 0, err
	}
	return toListItems(inspections), total, nil
}

func (s *inspectionService) ListByStatus(ctx context.Context, status models.InspectionStatus, params *utils.PaginationParams) ([]responses.InspectionListItem, int64, error) {
	inspections, total, err := s.inspectionRepo.GetByStatus(ctx, status, params)
	if err != nil {
		return nil, 0, err
	}
	return toListItems(inspections), total, nil
}

func (s *inspectionService) ListByBranch(ctx context.Context, branchID string, params *utils.PaginationParams) ([]responses.InspectionListItem, int64, error) {
	inspections, total, err := s.inspectionRepo.GetByBranchID(ctx, branchID, params)
	if err != nil {
		return nil, 0, err
	}
	return toListItems(inspections), total, nil
}

// GetPlateHistory returns every inspection ever recorded for one plate
// number, newest first. Resold vehicles accumulate reports across branches.
func (s *inspectionService) GetPlateHistory(ctx context.Context, plateNumber string) ([]responses.InspectionListItem, error) {
	inspections, err := s.inspectionRepo.GetByPlateNumber(ctx, plateNumber)
	if err != nil {
		return nil, err
	}
	return toListItems(inspections), nil
}

// GetLatestArchived builds the public listing of recently archived reports.
// A missing front view photo on any listed report fails the whole request:
// serving the card without it would hide a storage-level fault.
func (s *inspectionService) GetLatestArchived(ctx context.Context, limit int) ([]*responses.LatestArchivedItem, error) {
	if limit <= 0 {
		limit = utils.LatestArchivedDefaultLimit
	}
	if limit > utils.LatestArchivedMaxLimit {
		limit = utils.LatestArchivedMaxLimit
	}

	var items []*responses.LatestArchivedItem
	if err := s.cache.Get(ctx, utils.CacheLatestArchived, &items); err == nil && len(items) > 0 && len(items) >= limit {
		return items[:limit], nil
	}

	inspections, err := s.inspectionRepo.GetLatestArchived(ctx, limit)
	if err != nil {
		return nil, err
	}

	items = make([]*responses.LatestArchivedItem, 0, len(inspections))
	for _, inspection := range inspections {
		photos, err := s.photoRepo.GetByInspectionIDAndType(ctx, inspection.ID, models.PhotoTypeFixed)
		if err != nil {
			return nil, err
		}

		item, err := responses.NewLatestArchivedItem(inspection, photos, s.photoService.ResolveURL)
		if err != nil {
			s.logger.WithInspectionID(inspection.ID).WithError(err).Error("Archived inspection missing front view photo")
			return nil, err
		}
		items = append(items, item)
	}

	s.cache.Set(ctx, utils.CacheLatestArchived, items, 5*time.Minute)
	return items, nil
}

// Approve finalizes a reviewed inspection: the report artifact is generated,
// hashed and stored, and the record becomes archived.
func (s *inspectionService) Approve(ctx context.Context, id primitive.ObjectID) (*models.Inspection, error) {
	inspection, err := s.inspectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if inspection.Status != models.InspectionStatusNeedReview {
		return nil, fmt.Errorf("%s: cannot approve inspection in status %s", utils.ErrInvalidStatusChange, inspection.Status)
	}

	// Approval requires the mandatory front view photo to be present
	if _, err := s.photoRepo.GetFixedByLabel(ctx, id, models.FrontViewLabel); err != nil {
		return nil, fmt.Errorf("cannot approve: missing %q photo", models.FrontViewLabel)
	}

	reportURL, reportHash, err := s.reportService.Generate(ctx, inspection)
	if err != nil {
		s.logger.WithInspectionID(id).WithError(err).Error("Failed to generate report")
		return nil, err
	}

	approvedAt := time.Now()
	if err := s.inspectionRepo.SetApproved(ctx, id, reportURL, reportHash, approvedAt); err != nil {
		return nil, err
	}

	inspection.Status = models.InspectionStatusApproved
	inspection.ReportURL = reportURL
	inspection.ReportHash = reportHash
	inspection.ApprovedAt = &approvedAt

	s.logger.LogInspectionEvent(id, utils.EventInspectionApproved, map[string]interface{}{
		"report_hash": reportHash,
	})

	return inspection, nil
}

func (s *inspectionService) Deactivate(ctx context.Context, id primitive.ObjectID) error {
	inspection, err := s.inspectionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if inspection.Status == models.InspectionStatusDeactivated {
		return nil
	}

	return s.inspectionRepo.UpdateStatus(ctx, id, models.InspectionStatusDeactivated)
}

func toListItems(inspections []*models.Inspection) []responses.InspectionListItem {
	items := make([]responses.InspectionListItem, 0, len(inspections))
	for _, inspection := range inspections {
		items = append(items, responses.NewInspectionListItem(inspection))
	}
	return items
}
