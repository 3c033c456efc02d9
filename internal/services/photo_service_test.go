package services

import (
	"context"
	"mime/multipart"
	"testing"
	"time"

	"inspekta/internal/models"
	"inspekta/internal/repositories/interfaces"
	"inspekta/internal/utils"
	"inspekta/internal/validators"
	"inspekta/pkg/logger"
	"inspekta/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubInspectionRepo struct {
	interfaces.InspectionRepository
	inspection *models.Inspection
}

func (s *stubInspectionRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Inspection, error) {
	return s.inspection, nil
}

type stubPhotoRepo struct {
	interfaces.PhotoRepository
	photo   *models.Photo
	count   int64
	deleted bool
	updated bool
}

func (s *stubPhotoRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Photo, error) {
	return s.photo, nil
}

func (s *stubPhotoRepo) CountByInspectionID(ctx context.Context, inspectionID primitive.ObjectID) (int64, error) {
	return s.count, nil
}

func (s *stubPhotoRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	s.deleted = true
	return nil
}

func (s *stubPhotoRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	s.updated = true
	return nil
}

type stubStorage struct {
	storage.StorageProvider
	deleted bool
	url     string
}

func (s *stubStorage) Delete(ctx context.Context, key string) error {
	s.deleted = true
	return nil
}

func (s *stubStorage) GetURL(ctx context.Context, key string, expiration time.Duration) (string, error) {
	return s.url, nil
}

func newTestPhotoService(inspection *models.Inspection, photoRepo *stubPhotoRepo, store *stubStorage) PhotoService {
	log, _ := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Format: "json", Output: "stdout"})
	return NewPhotoService(photoRepo, &stubInspectionRepo{inspection: inspection}, store, "http://localhost/files", log)
}

func archivedInspection() *models.Inspection {
	return &models.Inspection{
		ID:     primitive.NewObjectID(),
		Status: models.InspectionStatusApproved,
	}
}

func TestPhotoDeleteRejectsArchivedInspection(t *testing.T) {
	inspection := archivedInspection()
	photoRepo := &stubPhotoRepo{photo: &models.Photo{
		ID:           primitive.NewObjectID(),
		InspectionID: inspection.ID,
		Type:         models.PhotoTypeFixed,
		Label:        models.FrontViewLabel,
		Path:         "inspections/x/front.jpg",
	}}
	store := &stubStorage{}
	svc := newTestPhotoService(inspection, photoRepo, store)

	err := svc.Delete(context.Background(), photoRepo.photo.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), utils.ErrInvalidStatusChange)
	// Neither the record nor the stored file may go away
	assert.False(t, photoRepo.deleted)
	assert.False(t, store.deleted)
}

func TestPhotoUpdateAnnotationRejectsArchivedInspection(t *testing.T) {
	inspection := archivedInspection()
	inspection.Status = models.InspectionStatusMinted
	photoRepo := &stubPhotoRepo{photo: &models.Photo{
		ID:           primitive.NewObjectID(),
		InspectionID: inspection.ID,
		Type:         models.PhotoTypeDynamic,
		Label:        "Baret pintu",
	}}
	svc := newTestPhotoService(inspection, photoRepo, &stubStorage{})

	attention := true
	_, err := svc.UpdateAnnotation(context.Background(), photoRepo.photo.ID, &validators.PhotoUpdateRequest{
		NeedAttention: &attention,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), utils.ErrInvalidStatusChange)
	assert.False(t, photoRepo.updated)
}

func TestPhotoUploadRejectsArchivedInspection(t *testing.T) {
	inspection := archivedInspection()
	svc := newTestPhotoService(inspection, &stubPhotoRepo{}, &stubStorage{})

	files := []*multipart.FileHeader{{Filename: "a.jpg", Size: 100}}
	metadata := []validators.ResolvedPhotoMeta{{Type: models.PhotoTypeDynamic, Label: "Baret"}}

	_, err := svc.Upload(context.Background(), inspection.ID, files, metadata)
	require.Error(t, err)
	assert.Contains(t, err.Error(), utils.ErrInvalidStatusChange)
}

func TestPhotoUploadEnforcesPerInspectionLimit(t *testing.T) {
	inspection := &models.Inspection{
		ID:     primitive.NewObjectID(),
		Status: models.InspectionStatusNeedReview,
	}
	photoRepo := &stubPhotoRepo{count: utils.MaxPhotosPerInspection}
	svc := newTestPhotoService(inspection, photoRepo, &stubStorage{})

	files := []*multipart.FileHeader{{Filename: "a.jpg", Size: 100}}
	metadata := []validators.ResolvedPhotoMeta{{Type: models.PhotoTypeDynamic, Label: "Baret"}}

	_, err := svc.Upload(context.Background(), inspection.ID, files, metadata)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limit")
}

func TestPhotoGetSignedURL(t *testing.T) {
	inspection := &models.Inspection{
		ID:     primitive.NewObjectID(),
		Status: models.InspectionStatusApproved,
	}
	photoRepo := &stubPhotoRepo{photo: &models.Photo{
		ID:           primitive.NewObjectID(),
		InspectionID: inspection.ID,
		Path:         "inspections/x/front.jpg",
	}}
	store := &stubStorage{url: "https://cdn.example.com/signed"}
	svc := newTestPhotoService(inspection, photoRepo, store)

	url, err := svc.GetSignedURL(context.Background(), photoRepo.photo.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/signed", url)
}
