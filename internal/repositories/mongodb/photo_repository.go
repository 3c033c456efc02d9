package mongodb

import (
	"context"
	"fmt"
	"time"

	"inspekta/internal/models"
	"inspekta/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type photoRepository struct {
	collection *mongo.Collection
	cache      CacheService
}

func NewPhotoRepository(db *mongo.Database, cache CacheService) interfaces.PhotoRepository {
	return &photoRepository{
		collection: db.Collection("photos"),
		cache:      cache,
	}
}

func (r *photoRepository) Create(ctx context.Context, photo *models.Photo) error {
	photo.ID = primitive.NewObjectID()
	photo.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, photo)
	if err != nil {
		return fmt.Errorf("failed to create photo: %w", err)
	}

	r.invalidateInspectionPhotos(ctx, photo.InspectionID.Hex())
	return nil
}

func (r *photoRepository) CreateMany(ctx context.Context, photos []*models.Photo) error {
	if len(photos) == 0 {
		return nil
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(photos))
	for _, photo := range photos {
		photo.ID = primitive.NewObjectID()
		photo.CreatedAt = now
		docs = append(docs, photo)
	}

	_, err := r.collection.InsertMany(ctx, docs)
	if err != nil {
		return fmt.Errorf("failed to create photos: %w", err)
	}

	r.invalidateInspectionPhotos(ctx, photos[0].InspectionID.Hex())
	return nil
}

func (r *photoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Photo, error) {
	var photo models.Photo
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&photo)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("photo not found")
		}
		return nil, fmt.Errorf("failed to get photo: %w", err)
	}
	return &photo, nil
}

func (r *photoRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("failed to update photo: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("photo not found")
	}
	return nil
}

func (r *photoRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	photo, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete photo: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("photo not found")
	}

	r.invalidateInspectionPhotos(ctx, photo.InspectionID.Hex())
	return nil
}

func (r *photoRepository) GetByInspectionID(ctx context.Context, inspectionID primitive.ObjectID) ([]*models.Photo, error) {
	return r.findPhotos(ctx, bson.M{"inspection_id": inspectionID})
}

func (r *photoRepository) GetByInspectionIDAndType(ctx context.Context, inspectionID primitive.ObjectID, photoType models.PhotoType) ([]*models.Photo, error) {
	return r.findPhotos(ctx, bson.M{"inspection_id": inspectionID, "type": photoType})
}

func (r *photoRepository) GetFixedByLabel(ctx context.Context, inspectionID primitive.ObjectID, label string) (*models.Photo, error) {
	var photo models.Photo
	err := r.collection.FindOne(ctx, bson.M{
		"inspection_id": inspectionID,
		"type":          models.PhotoTypeFixed,
		"label":         label,
	}).Decode(&photo)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("photo not found")
		}
		return nil, fmt.Errorf("failed to get photo: %w", err)
	}
	return &photo, nil
}

func (r *photoRepository) DeleteByInspectionID(ctx context.Context, inspectionID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"inspection_id": inspectionID})
	if err != nil {
		return fmt.Errorf("failed to delete photos: %w", err)
	}

	r.invalidateInspectionPhotos(ctx, inspectionID.Hex())
	return nil
}

func (r *photoRepository) CountByInspectionID(ctx context.Context, inspectionID primitive.ObjectID) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"inspection_id": inspectionID})
	if err != nil {
		return 0, fmt.Errorf("failed to count photos: %w", err)
	}
	return count, nil
}

func (r *photoRepository) findPhotos(ctx context.Context, filter bson.M) ([]*models.Photo, error) {
	// Upload order is creation order
	cursor, err := r.collection.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find photos: %w", err)
	}
	defer cursor.Close(ctx)

	var photos []*models.Photo
	if err := cursor.All(ctx, &photos); err != nil {
		return nil, fmt.Errorf("failed to decode photos: %w", err)
	}
	return photos, nil
}

func (r *photoRepository) invalidateInspectionPhotos(ctx context.Context, inspectionID string) {
	if r.cache == nil {
		return
	}
	r.cache.Delete(ctx, fmt.Sprintf("photos:inspection:%s", inspectionID))
}
