package responses

import (
	"errors"
	"testing"
	"time"

	"inspekta/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testResolver(path string) string {
	return "https://cdn.example.com/" + path
}

func archivedInspection() *models.Inspection {
	return &models.Inspection{
		ID:           primitive.NewObjectID(),
		InspectorID:  "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		BranchID:     "6ba7b811-9dad-11d1-80b4-00c04fd430c8",
		CustomerName: "Budi Santoso",
		VehicleData: models.VehicleData{
			Merek:     "Honda",
			Tipe:      "Brio RS",
			Tahun:     2021,
			PlatNomor: "D 5678 XYZ",
		},
		Status:    models.InspectionStatusApproved,
		CreatedAt: time.Now(),
	}
}

func photoOf(inspectionID primitive.ObjectID, photoType models.PhotoType, label string) *models.Photo {
	return &models.Photo{
		ID:           primitive.NewObjectID(),
		InspectionID: inspectionID,
		Type:         photoType,
		Path:         "inspections/" + inspectionID.Hex() + "/" + primitive.NewObjectID().Hex() + ".jpg",
		Label:        label,
	}
}

func TestNewLatestArchivedItem(t *testing.T) {
	inspection := archivedInspection()
	photos := []*models.Photo{
		photoOf(inspection.ID, models.PhotoTypeDynamic, ""),
		photoOf(inspection.ID, models.PhotoTypeFixed, models.FrontViewLabel),
	}

	item, err := NewLatestArchivedItem(inspection, photos, testResolver)
	require.NoError(t, err)

	assert.Equal(t, inspection.ID.Hex(), item.ID)
	assert.Equal(t, "Honda", item.Merek)
	assert.Equal(t, 2021, item.Tahun)
	assert.Equal(t, string(models.InspectionStatusApproved), item.Status)
	assert.Equal(t, testResolver(photos[1].Path), item.FrontPhotoURL)
}

func TestNewLatestArchivedItemMissingFrontView(t *testing.T) {
	inspection := archivedInspection()
	photos := []*models.Photo{
		// A fixed photo with another label does not satisfy the front view
		photoOf(inspection.ID, models.PhotoTypeFixed, "Tampak Belakang"),
		photoOf(inspection.ID, models.PhotoTypeDynamic, models.FrontViewLabel),
	}

	item, err := NewLatestArchivedItem(inspection, photos, testResolver)
	assert.Nil(t, item)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDataConsistency))
	assert.Contains(t, err.Error(), inspection.ID.Hex())
}

func TestNewTypedPhotoResponseGrouping(t *testing.T) {
	inspectionID := primitive.NewObjectID()
	photos := []*models.Photo{
		photoOf(inspectionID, models.PhotoTypeFixed, models.FrontViewLabel),
		photoOf(inspectionID, models.PhotoTypeDynamic, ""),
		photoOf(inspectionID, models.PhotoTypeFixed, "Tampak Belakang"),
		photoOf(inspectionID, models.PhotoTypeDocument, "STNK"),
	}

	grouped := NewTypedPhotoResponse(photos, testResolver)

	require.Len(t, grouped.Fixed, 2)
	require.Len(t, grouped.Dynamic, 1)
	require.Len(t, grouped.Document, 1)

	// Upload order survives inside each group
	assert.Equal(t, models.FrontViewLabel, grouped.Fixed[0].Label)
	assert.Equal(t, "Tampak Belakang", grouped.Fixed[1].Label)

	// Unlabeled photos keep the empty label, exactly as stored
	assert.Equal(t, "", grouped.Dynamic[0].Label)
}

func TestNewTypedPhotoResponseEmpty(t *testing.T) {
	grouped := NewTypedPhotoResponse(nil, testResolver)

	// Empty slices, not nil, so JSON renders [] instead of null
	assert.NotNil(t, grouped.Fixed)
	assert.NotNil(t, grouped.Dynamic)
	assert.NotNil(t, grouped.Document)
	assert.Empty(t, grouped.Fixed)
}

func TestNewPhotoResponse(t *testing.T) {
	photo := photoOf(primitive.NewObjectID(), models.PhotoTypeDynamic, "Baret pintu")
	photo.NeedAttention = true

	resp := NewPhotoResponse(photo, testResolver(photo.Path))

	assert.Equal(t, photo.ID.Hex(), resp.ID)
	assert.Equal(t, "Baret pintu", resp.Label)
	assert.Equal(t, string(models.PhotoTypeDynamic), resp.Type)
	assert.True(t, resp.NeedAttention)
	assert.Equal(t, "https://cdn.example.com/"+photo.Path, resp.URL)
}
