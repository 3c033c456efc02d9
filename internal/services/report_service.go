package services

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"inspekta/internal/models"
	"inspekta/pkg/logger"
	"inspekta/pkg/storage"
)

// ReportService renders the immutable report artifact for an approved
// inspection and returns its URL and SHA-256 hash. The hash is what gets
// anchored on chain, so the artifact bytes must be deterministic for a given
// inspection.
type ReportService interface {
	Generate(ctx context.Context, inspection *models.Inspection) (url string, hash string, err error)
}

type reportService struct {
	storage storage.StorageProvider
	baseURL string
	logger  *logger.Logger
}

func NewReportService(storageProvider storage.StorageProvider, baseURL string, logger *logger.Logger) ReportService {
	return &reportService{
		storage: storageProvider,
		baseURL: baseURL,
		logger:  logger,
	}
}

// reportDocument is the canonical report payload. Field order is fixed by
// the struct so marshaling is deterministic.
type reportDocument struct {
	ID           string                   `json:"id"`
	InspectorID  string                   `json:"inspectorId"`
	BranchID     string                   `json:"cabangId"`
	CustomerName string                   `json:"namaCustomer"`
	VehicleData  models.VehicleData       `json:"vehicleData"`
	Fitur        models.Fitur             `json:"fitur"`
	Summary      models.InspectionSummary `json:"summary"`
	CreatedAt    time.Time                `json:"createdAt"`
}

func (s *reportService) Generate(ctx context.Context, inspection *models.Inspection) (string, string, error) {
	doc := reportDocument{
		ID:           inspection.ID.Hex(),
		InspectorID:  inspection.InspectorID,
		BranchID:     inspection.BranchID,
		CustomerName: inspection.CustomerName,
		VehicleData:  inspection.VehicleData,
		Fitur:        inspection.Fitur,
		Summary:      inspection.Summary,
		CreatedAt:    inspection.CreatedAt,
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal report: %w", err)
	}

	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])

	key := fmt.Sprintf("reports/%s.json", inspection.ID.Hex())
	_, err = s.storage.Upload(ctx, &storage.UploadRequest{
		Key:         key,
		Reader:      bytes.NewReader(data),
		ContentType: "application/json",
		Size:        int64(len(data)),
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to store report: %w", err)
	}

	url := fmt.Sprintf("%s/%s", s.baseURL, key)
	s.logger.WithInspectionID(inspection.ID).WithField("report_hash", hash).Info("Report generated")

	return url, hash, nil
}
