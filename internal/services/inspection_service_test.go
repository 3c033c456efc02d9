package services

import (
	"context"
	"testing"
	"time"

	"inspekta/internal/models"
	"inspekta/internal/repositories/interfaces"
	"inspekta/internal/utils"
	"inspekta/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubListingRepo struct {
	interfaces.InspectionRepository
	byPlate  []*models.Inspection
	byBranch []*models.Inspection
}

func (s *stubListingRepo) GetByPlateNumber(ctx context.Context, plateNumber string) ([]*models.Inspection, error) {
	return s.byPlate, nil
}

func (s *stubListingRepo) GetByBranchID(ctx context.Context, branchID string, params *utils.PaginationParams) ([]*models.Inspection, int64, error) {
	return s.byBranch, int64(len(s.byBranch)), nil
}

func listingInspection(plate string, createdAt time.Time) *models.Inspection {
	return &models.Inspection{
		ID:           primitive.NewObjectID(),
		CustomerName: "Budi Santoso",
		Status:       models.InspectionStatusApproved,
		VehicleData: models.VehicleData{
			Merek:     "Toyota",
			Tipe:      "Avanza 1.3 G",
			Tahun:     2019,
			PlatNomor: plate,
		},
		CreatedAt: createdAt,
	}
}

func newTestInspectionService(repo interfaces.InspectionRepository) InspectionService {
	log, _ := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Format: "json", Output: "stdout"})
	return NewInspectionService(repo, nil, nil, nil, nil, log)
}

func TestGetPlateHistoryPreservesOrder(t *testing.T) {
	newer := listingInspection("B 1234 ABC", time.Now())
	older := listingInspection("B 1234 ABC", time.Now().AddDate(-1, 0, 0))
	svc := newTestInspectionService(&stubListingRepo{byPlate: []*models.Inspection{newer, older}})

	items, err := svc.GetPlateHistory(context.Background(), "B 1234 ABC")
	require.NoError(t, err)
	require.Len(t, items, 2)
	// Repository order (newest first) carries through untouched
	assert.Equal(t, newer.ID.Hex(), items[0].ID)
	assert.Equal(t, older.ID.Hex(), items[1].ID)
}

func TestListByBranch(t *testing.T) {
	inspection := listingInspection("D 5678 EF", time.Now())
	svc := newTestInspectionService(&stubListingRepo{byBranch: []*models.Inspection{inspection}})

	params := &utils.PaginationParams{Page: 1, PageSize: utils.DefaultPageSize, Sort: "created_at", Order: "desc"}
	items, total, err := svc.ListByBranch(context.Background(), "6ba7b811-9dad-11d1-80b4-00c04fd430c8", params)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, "D 5678 EF", items[0].PlatNomor)
}
