package interfaces

import (
	"context"

	"inspekta/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PhotoRepository interface {
	Create(ctx context.Context, photo *models.Photo) error
	CreateMany(ctx context.Context, photos []*models.Photo) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Photo, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// Ownership
	GetByInspectionID(ctx context.Context, inspectionID primitive.ObjectID) ([]*models.Photo, error)
	GetByInspectionIDAndType(ctx context.Context, inspectionID primitive.ObjectID, photoType models.PhotoType) ([]*models.Photo, error)
	GetFixedByLabel(ctx context.Context, inspectionID primitive.ObjectID, label string) (*models.Photo, error)
	DeleteByInspectionID(ctx context.Context, inspectionID primitive.ObjectID) error
	CountByInspectionID(ctx context.Context, inspectionID primitive.ObjectID) (int64, error)
}
