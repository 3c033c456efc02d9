package responses

import (
	"errors"
	"fmt"
	"time"

	"inspekta/internal/models"
)

// ErrDataConsistency marks a stored record that violates an invariant the
// write path should have enforced. Handlers map it to an internal error,
// never to a client validation error.
var ErrDataConsistency = errors.New("data consistency violation")

// InspectionDetailResponse is the full report returned by the detail
// endpoint.
type InspectionDetailResponse struct {
	ID           string `json:"id"`
	InspectorID  string `json:"inspectorId"`
	BranchID     string `json:"cabangId"`
	CustomerName string `json:"namaCustomer"`

	VehicleData models.VehicleData       `json:"vehicleData"`
	Fitur       models.Fitur             `json:"fitur"`
	Summary     models.InspectionSummary `json:"summary"`

	Status     string `json:"status"`
	ReportURL  string `json:"reportUrl,omitempty"`
	ReportHash string `json:"reportHash,omitempty"`

	NFTMintAddress string `json:"nftMintAddress,omitempty"`
	NFTTxSignature string `json:"nftTxSignature,omitempty"`

	Photos TypedPhotoResponse `json:"photos"`

	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	ApprovedAt *time.Time `json:"approvedAt,omitempty"`
	MintedAt   *time.Time `json:"mintedAt,omitempty"`
}

func NewInspectionDetailResponse(inspection *models.Inspection, photos []*models.Photo, resolve URLResolver) *InspectionDetailResponse {
	return &InspectionDetailResponse{
		ID:             inspection.ID.Hex(),
		InspectorID:    inspection.InspectorID,
		BranchID:       inspection.BranchID,
		CustomerName:   inspection.CustomerName,
		VehicleData:    inspection.VehicleData,
		Fitur:          inspection.Fitur,
		Summary:        inspection.Summary,
		Status:         string(inspection.Status),
		ReportURL:      inspection.ReportURL,
		ReportHash:     inspection.ReportHash,
		NFTMintAddress: inspection.NFTMintAddress,
		NFTTxSignature: inspection.NFTTxSignature,
		Photos:         NewTypedPhotoResponse(photos, resolve),
		CreatedAt:      inspection.CreatedAt,
		UpdatedAt:      inspection.UpdatedAt,
		ApprovedAt:     inspection.ApprovedAt,
		MintedAt:       inspection.MintedAt,
	}
}

// LatestArchivedItem is one card in the archived-report listing: vehicle
// identity plus its front view photo.
type LatestArchivedItem struct {
	ID            string    `json:"id"`
	Merek         string    `json:"merek"`
	Tipe          string    `json:"tipe"`
	Tahun         int       `json:"tahun"`
	PlatNomor     string    `json:"platNomor"`
	Status        string    `json:"status"`
	FrontPhotoURL string    `json:"frontPhotoUrl"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewLatestArchivedItem builds one listing card. Every archived inspection
// must have a front view photo; its absence means the stored data is corrupt
// and the whole listing request fails rather than serving a partial card.
func NewLatestArchivedItem(inspection *models.Inspection, photos []*models.Photo, resolve URLResolver) (*LatestArchivedItem, error) {
	var front *models.Photo
	for _, photo := range photos {
		if photo.Type == models.PhotoTypeFixed && photo.Label == models.FrontViewLabel {
			front = photo
			break
		}
	}
	if front == nil {
		return nil, fmt.Errorf("%w: inspection %s has no %q photo",
			ErrDataConsistency, inspection.ID.Hex(), models.FrontViewLabel)
	}

	return &LatestArchivedItem{
		ID:            inspection.ID.Hex(),
		Merek:         inspection.VehicleData.Merek,
		Tipe:          inspection.VehicleData.Tipe,
		Tahun:         inspection.VehicleData.Tahun,
		PlatNomor:     inspection.VehicleData.PlatNomor,
		Status:        string(inspection.Status),
		FrontPhotoURL: resolve(front.Path),
		CreatedAt:     inspection.CreatedAt,
	}, nil
}

// InspectionListItem is the admin/inspector listing row; no photo join.
type InspectionListItem struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"namaCustomer"`
	Merek        string    `json:"merek"`
	Tipe         string    `json:"tipe"`
	PlatNomor    string    `json:"platNomor"`
	Status       string    `json:"status"`
	InspectorID  string    `json:"inspectorId"`
	BranchID     string    `json:"cabangId"`
	CreatedAt    time.Time `json:"createdAt"`
}

func NewInspectionListItem(inspection *models.Inspection) InspectionListItem {
	return InspectionListItem{
		ID:           inspection.ID.Hex(),
		CustomerName: inspection.CustomerName,
		Merek:        inspection.VehicleData.Merek,
		Tipe:         inspection.VehicleData.Tipe,
		PlatNomor:    inspection.VehicleData.PlatNomor,
		Status:       string(inspection.Status),
		InspectorID:  inspection.InspectorID,
		BranchID:     inspection.BranchID,
		CreatedAt:    inspection.CreatedAt,
	}
}
