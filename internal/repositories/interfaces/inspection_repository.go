package interfaces

import (
	"context"
	"time"

	"inspekta/internal/models"
	"inspekta/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InspectionRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, inspection *models.Inspection) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Inspection, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Replace(ctx context.Context, inspection *models.Inspection) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// Listing
	List(ctx context.Context, params *utils.PaginationParams) ([]*models.Inspection, int64, error)
	GetByInspectorID(ctx context.Context, inspectorID string, params *utils.PaginationParams) ([]*models.Inspection, int64, error)
	GetByBranchID(ctx context.Context, branchID string, params *utils.PaginationParams) ([]*models.Inspection, int64, error)
	GetByStatus(ctx context.Context, status models.InspectionStatus, params *utils.PaginationParams) ([]*models.Inspection, int64, error)
	GetByPlateNumber(ctx context.Context, plateNumber string) ([]*models.Inspection, error)

	// Archived reports, newest first
	GetLatestArchived(ctx context.Context, limit int) ([]*models.Inspection, error)

	// Status transitions
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.InspectionStatus) error
	SetApproved(ctx context.Context, id primitive.ObjectID, reportURL, reportHash string, approvedAt time.Time) error
	SetMinted(ctx context.Context, id primitive.ObjectID, mintAddress, txSignature string, mintedAt time.Time) error

	// Dashboard aggregations
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) (map[models.InspectionStatus]int64, error)
	CountByMonth(ctx context.Context, months int) ([]MonthlyInspectionCount, error)
	CountByBranch(ctx context.Context) ([]BranchInspectionCount, error)
}

type MonthlyInspectionCount struct {
	Year  int   `bson:"year"`
	Month int   `bson:"month"`
	Count int64 `bson:"count"`
}

type BranchInspectionCount struct {
	BranchID string `bson:"branch_id"`
	Total    int64  `bson:"total"`
	Archived int64  `bson:"archived"`
}
