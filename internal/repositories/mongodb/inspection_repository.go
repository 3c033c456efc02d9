package mongodb

import (
	"context"
	"fmt"
	"time"

	"inspekta/internal/models"
	"inspekta/internal/repositories/interfaces"
	"inspekta/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type inspectionRepository struct {
	collection *mongo.Collection
	cache      CacheService
}

func NewInspectionRepository(db *mongo.Database, cache CacheService) interfaces.InspectionRepository {
	return &inspectionRepository{
		collection: db.Collection("inspections"),
		cache:      cache,
	}
}

// Basic CRUD operations
func (r *inspectionRepository) Create(ctx context.Context, inspection *models.Inspection) error {
	inspection.ID = primitive.NewObjectID()
	inspection.CreatedAt = time.Now()
	inspection.UpdatedAt = time.Now()

	if inspection.Status == "" {
		inspection.Status = models.InspectionStatusNeedReview
	}

	_, err := r.collection.InsertOne(ctx, inspection)
	if err != nil {
		return fmt.Errorf("failed to create inspection: %w", err)
	}

	r.invalidateListCaches(ctx)
	return nil
}

func (r *inspectionRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Inspection, error) {
	// Try cache first
	if inspection := r.getFromCache(ctx, id.Hex()); inspection != nil {
		return inspection, nil
	}

	var inspection models.Inspection
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&inspection)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("inspection not found")
		}
		return nil, fmt.Errorf("failed to get inspection: %w", err)
	}

	// Archived reports are read-heavy and safe to cache
	if inspection.IsArchived() {
		r.cacheInspection(ctx, &inspection)
	}

	return &inspection, nil
}

func (r *inspectionRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("failed to update inspection: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("inspection not found")
	}

	r.invalidateCache(ctx, id.Hex())
	return nil
}

func (r *inspectionRepository) Replace(ctx context.Context, inspection *models.Inspection) error {
	inspection.UpdatedAt = time.Now()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": inspection.ID}, inspection)
	if err != nil {
		return fmt.Errorf("failed to replace inspection: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("inspection not found")
	}

	r.invalidateCache(ctx, inspection.ID.Hex())
	return nil
}

func (r *inspectionRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete inspection: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("inspection not found")
	}

	r.invalidateCache(ctx, id.Hex())
	return nil
}

// Listing
func (r *inspectionRepository) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Inspection, int64, error) {
	filter := params.GetSearchFilter([]string{"customer_name", "vehicle_data.merek", "vehicle_data.plat_nomor"})
	return r.findWithFilter(ctx, filter, params)
}

func (r *inspectionRepository) GetByInspectorID(ctx context.Context, inspectorID string, params *utils.PaginationParams) ([]*models.Inspection, int64, error) {
	return r.findWithFilter(ctx, bson.M{"inspector_id": inspectorID}, params)
}

func (r *inspectionRepository) GetByBranchID(ctx context.Context, branchID string, params *utils.PaginationParams) ([]*models.Inspection, int64, error) {
	return r.findWithFilter(ctx, bson.M{"branch_id": branchID}, params)
}

func (r *inspectionRepository) GetByStatus(ctx context.Context, status models.InspectionStatus, params *utils.PaginationParams) ([]*models.Inspection, int64, error) {
	return r.findWithFilter(ctx, bson.M{"status": status}, params)
}

func (r *inspectionRepository) GetByPlateNumber(ctx context.Context, plateNumber string) ([]*models.Inspection, error) {
	cursor, err := r.collection.Find(ctx,
		bson.M{"vehicle_data.plat_nomor": plateNumber},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to get inspections by plate number: %w", err)
	}
	defer cursor.Close(ctx)

	var inspections []*models.Inspection
	if err := cursor.All(ctx, &inspections); err != nil {
		return nil, fmt.Errorf("failed to decode inspections: %w", err)
	}
	return inspections, nil
}

// GetLatestArchived lists the newest archived inspections that carry the
// mandatory front view photo. The photo check runs in the pipeline so a
// report with a broken photo set never reaches the public listing.
func (r *inspectionRepository) GetLatestArchived(ctx context.Context, limit int) ([]*models.Inspection, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"status": bson.M{"$in": []models.InspectionStatus{
			models.InspectionStatusApproved,
			models.InspectionStatusMinted,
		}}}},
		{"$lookup": bson.M{
			"from":         "photos",
			"localField":   "_id",
			"foreignField": "inspection_id",
			"as":           "front_view",
		}},
		{"$match": bson.M{"front_view": bson.M{"$elemMatch": bson.M{
			"type":  models.PhotoTypeFixed,
			"label": models.FrontViewLabel,
		}}}},
		{"$project": bson.M{"front_view": 0}},
		{"$sort": bson.M{"created_at": -1}},
		{"$limit": int64(limit)},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to get archived inspections: %w", err)
	}
	defer cursor.Close(ctx)

	var inspections []*models.Inspection
	if err := cursor.All(ctx, &inspections); err != nil {
		return nil, fmt.Errorf("failed to decode inspections: %w", err)
	}
	return inspections, nil
}

// Status transitions
func (r *inspectionRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.InspectionStatus) error {
	return r.Update(ctx, id, map[string]interface{}{"status": status})
}

func (r *inspectionRepository) SetApproved(ctx context.Context, id primitive.ObjectID, reportURL, reportHash string, approvedAt time.Time) error {
	return r.Update(ctx, id, map[string]interface{}{
		"status":      models.InspectionStatusApproved,
		"report_url":  reportURL,
		"report_hash": reportHash,
		"approved_at": approvedAt,
	})
}

func (r *inspectionRepository) SetMinted(ctx context.Context, id primitive.ObjectID, mintAddress, txSignature string, mintedAt time.Time) error {
	return r.Update(ctx, id, map[string]interface{}{
		"status":           models.InspectionStatusMinted,
		"nft_mint_address": mintAddress,
		"nft_tx_signature": txSignature,
		"minted_at":        mintedAt,
	})
}

// Dashboard aggregations
func (r *inspectionRepository) CountAll(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count inspections: %w", err)
	}
	return count, nil
}

func (r *inspectionRepository) CountByStatus(ctx context.Context) (map[models.InspectionStatus]int64, error) {
	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to count inspections by status: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Status models.InspectionStatus `bson:"_id"`
		Count  int64                   `bson:"count"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode status counts: %w", err)
	}

	counts := make(map[models.InspectionStatus]int64, len(results))
	for _, res := range results {
		counts[res.Status] = res.Count
	}
	return counts, nil
}

func (r *inspectionRepository) CountByMonth(ctx context.Context, months int) ([]interfaces.MonthlyInspectionCount, error) {
	since := time.Now().AddDate(0, -months, 0)

	pipeline := []bson.M{
		{"$match": bson.M{"created_at": bson.M{"$gte": since}}},
		{"$group": bson.M{
			"_id": bson.M{
				"year":  bson.M{"$year": "$created_at"},
				"month": bson.M{"$month": "$created_at"},
			},
			"count": bson.M{"$sum": 1},
		}},
		{"$project": bson.M{
			"year":  "$_id.year",
			"month": "$_id.month",
			"count": 1,
		}},
		{"$sort": bson.M{"year": -1, "month": -1}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to count inspections by month: %w", err)
	}
	defer cursor.Close(ctx)

	var results []interfaces.MonthlyInspectionCount
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode monthly counts: %w", err)
	}
	return results, nil
}

func (r *inspectionRepository) CountByBranch(ctx context.Context) ([]interfaces.BranchInspectionCount, error) {
	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":   "$branch_id",
			"total": bson.M{"$sum": 1},
			"archived": bson.M{"$sum": bson.M{"$cond": []interface{}{
				bson.M{"$in": []interface{}{"$status", []string{
					string(models.InspectionStatusApproved),
					string(models.InspectionStatusMinted),
				}}},
				1, 0,
			}}},
		}},
		{"$project": bson.M{
			"branch_id": "$_id",
			"total":     1,
			"archived":  1,
		}},
		{"$sort": bson.M{"total": -1}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to count inspections by branch: %w", err)
	}
	defer cursor.Close(ctx)

	var results []interfaces.BranchInspectionCount
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode branch counts: %w", err)
	}
	return results, nil
}

// Helper methods
func (r *inspectionRepository) findWithFilter(ctx context.Context, filter bson.M, params *utils.PaginationParams) ([]*models.Inspection, int64, error) {
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count inspections: %w", err)
	}

	cursor, err := r.collection.Find(ctx, filter, params.GetSortOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find inspections: %w", err)
	}
	defer cursor.Close(ctx)

	var inspections []*models.Inspection
	if err := cursor.All(ctx, &inspections); err != nil {
		return nil, 0, fmt.Errorf("failed to decode inspections: %w", err)
	}

	return inspections, total, nil
}

func (r *inspectionRepository) cacheInspection(ctx context.Context, inspection *models.Inspection) {
	if r.cache == nil {
		return
	}
	key := fmt.Sprintf("inspection:%s", inspection.ID.Hex())
	r.cache.Set(ctx, key, inspection, 30*time.Minute)
}

func (r *inspectionRepository) getFromCache(ctx context.Context, id string) *models.Inspection {
	if r.cache == nil {
		return nil
	}
	var inspection models.Inspection
	if err := r.cache.Get(ctx, fmt.Sprintf("inspection:%s", id), &inspection); err != nil {
		return nil
	}
	return &inspection
}

func (r *inspectionRepository) invalidateCache(ctx context.Context, id string) {
	if r.cache == nil {
		return
	}
	r.cache.Delete(ctx, fmt.Sprintf("inspection:%s", id))
	r.invalidateListCaches(ctx)
}

func (r *inspectionRepository) invalidateListCaches(ctx context.Context) {
	if r.cache == nil {
		return
	}
	r.cache.Delete(ctx, "inspections:latest_archived", "dashboard:stats")
}
