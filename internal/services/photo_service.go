package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"inspekta/internal/models"
	"inspekta/internal/repositories/interfaces"
	"inspekta/internal/utils"
	"inspekta/internal/validators"
	"inspekta/pkg/logger"
	"inspekta/pkg/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PhotoService interface {
	Upload(ctx context.Context, inspectionID primitive.ObjectID, files []*multipart.FileHeader, metadata []validators.ResolvedPhotoMeta) ([]*models.Photo, error)
	GetByInspection(ctx context.Context, inspectionID primitive.ObjectID) ([]*models.Photo, error)
	UpdateAnnotation(ctx context.Context, photoID primitive.ObjectID, req *validators.PhotoUpdateRequest) (*models.Photo, error)
	Delete(ctx context.Context, photoID primitive.ObjectID) error
	DeleteByInspection(ctx context.Context, inspectionID primitive.ObjectID) error
	GetSignedURL(ctx context.Context, photoID primitive.ObjectID) (string, error)
	ResolveURL(path string) string
}

type photoService struct {
	photoRepo      interfaces.PhotoRepository
	inspectionRepo interfaces.InspectionRepository
	storage        storage.StorageProvider
	baseURL        string
	logger         *logger.Logger
}

func NewPhotoService(
	photoRepo interfaces.PhotoRepository,
	inspectionRepo interfaces.InspectionRepository,
	storageProvider storage.StorageProvider,
	baseURL string,
	logger *logger.Logger,
) PhotoService {
	return &photoService{
		photoRepo:      photoRepo,
		inspectionRepo: inspectionRepo,
		storage:        storageProvider,
		baseURL:        baseURL,
		logger:         logger,
	}
}

// Upload stores the files and their metadata records. Files and metadata
// entries are matched positionally; the validator has already reconciled the
// counts.
func (s *photoService) Upload(ctx context.Context, inspectionID primitive.ObjectID, files []*multipart.FileHeader, metadata []validators.ResolvedPhotoMeta) ([]*models.Photo, error) {
	if err := s.requireMutable(ctx, inspectionID); err != nil {
		return nil, err
	}

	if len(files) != len(metadata) {
		return nil, fmt.Errorf("file count does not match metadata count")
	}

	existing, err := s.photoRepo.CountByInspectionID(ctx, inspectionID)
	if err != nil {
		return nil, err
	}
	if existing+int64(len(files)) > utils.MaxPhotosPerInspection {
		return nil, fmt.Errorf("inspection already has %d photos; limit is %d", existing, utils.MaxPhotosPerInspection)
	}

	photos := make([]*models.Photo, 0, len(files))
	for i, fileHeader := range files {
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileHeader.Filename), "."))
		if !isAllowedImageType(ext) {
			return nil, fmt.Errorf("unsupported file type: %s", ext)
		}
		if fileHeader.Size > utils.MaxImageSize {
			return nil, fmt.Errorf("file %s exceeds maximum size", fileHeader.Filename)
		}

		file, err := fileHeader.Open()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", utils.ErrFileUploadFailed, err)
		}

		key := fmt.Sprintf("inspections/%s/%s.%s", inspectionID.Hex(), uuid.NewString(), ext)
		_, err = s.storage.Upload(ctx, &storage.UploadRequest{
			Key:         key,
			Reader:      file,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Size:        fileHeader.Size,
		})
		file.Close()
		if err != nil {
			s.logger.WithInspectionID(inspectionID).WithError(err).Error("Photo upload failed")
			return nil, fmt.Errorf("%s: %w", utils.ErrFileUploadFailed, err)
		}

		meta := metadata[i]
		photos = append(photos, &models.Photo{
			InspectionID:  inspectionID,
			Type:          meta.Type,
			Path:          key,
			Label:         meta.Label,
			OriginalLabel: meta.OriginalLabel,
			NeedAttention: meta.NeedAttention,
		})
	}

	if err := s.photoRepo.CreateMany(ctx, photos); err != nil {
		return nil, err
	}

	return photos, nil
}

func (s *photoService) GetByInspection(ctx context.Context, inspectionID primitive.ObjectID) ([]*models.Photo, error) {
	return s.photoRepo.GetByInspectionID(ctx, inspectionID)
}

func (s *photoService) UpdateAnnotation(ctx context.Context, photoID primitive.ObjectID, req *validators.PhotoUpdateRequest) (*models.Photo, error) {
	photo, err := s.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		return nil, err
	}

	if err := s.requireMutable(ctx, photo.InspectionID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Label != nil {
		// Fixed photo labels identify checklist slots and cannot change
		if photo.Type == models.PhotoTypeFixed {
			return nil, fmt.Errorf("fixed photo labels cannot be changed")
		}
		updates["label"] = *req.Label
		photo.Label = *req.Label
	}
	if req.NeedAttention != nil {
		updates["need_attention"] = *req.NeedAttention
		photo.NeedAttention = *req.NeedAttention
	}

	if len(updates) == 0 {
		return photo, nil
	}

	if err := s.photoRepo.Update(ctx, photoID, updates); err != nil {
		return nil, err
	}
	return photo, nil
}

func (s *photoService) Delete(ctx context.Context, photoID primitive.ObjectID) error {
	photo, err := s.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		return err
	}

	if err := s.requireMutable(ctx, photo.InspectionID); err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, photo.Path); err != nil {
		s.logger.WithField("path", photo.Path).WithError(err).Warn("Failed to delete stored file")
	}

	return s.photoRepo.Delete(ctx, photoID)
}

// DeleteByInspection is the cascade path for inspection deletion; the
// inspection service owns the status policy there.
func (s *photoService) DeleteByInspection(ctx context.Context, inspectionID primitive.ObjectID) error {
	photos, err := s.photoRepo.GetByInspectionID(ctx, inspectionID)
	if err != nil {
		return err
	}

	for _, photo := range photos {
		if err := s.storage.Delete(ctx, photo.Path); err != nil {
			s.logger.WithField("path", photo.Path).WithError(err).Warn("Failed to delete stored file")
		}
	}

	return s.photoRepo.DeleteByInspectionID(ctx, inspectionID)
}

// GetSignedURL returns a short-lived direct URL to one stored photo, signed
// by the storage provider.
func (s *photoService) GetSignedURL(ctx context.Context, photoID primitive.ObjectID) (string, error) {
	photo, err := s.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		return "", err
	}
	return s.storage.GetURL(ctx, photo.Path, utils.SignedURLTTL)
}

func (s *photoService) ResolveURL(path string) string {
	return fmt.Sprintf("%s/%s", strings.TrimSuffix(s.baseURL, "/"), path)
}

// requireMutable rejects photo writes once the owning inspection is archived.
// Archived reports are hashed and possibly anchored on chain; their photo set
// must not drift from what the report captured.
func (s *photoService) requireMutable(ctx context.Context, inspectionID primitive.ObjectID) error {
	inspection, err := s.inspectionRepo.GetByID(ctx, inspectionID)
	if err != nil {
		return err
	}
	if inspection.IsArchived() {
		return fmt.Errorf("%s: archived inspections are immutable", utils.ErrInvalidStatusChange)
	}
	return nil
}

func isAllowedImageType(ext string) bool {
	for _, allowed := range utils.AllowedImageTypes {
		if ext == allowed {
			return true
		}
	}
	return false
}
