package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the query paths rely on. Safe to run at
// every startup; Mongo treats existing identical indexes as a no-op.
func (m *MongoDB) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	users := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "google_id", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
		{
			Keys:    bson.D{{Key: "wallet_address", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
		{
			Keys:    bson.D{{Key: "inspector_id", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
	}
	if _, err := m.Collection("users").Indexes().CreateMany(ctx, users); err != nil {
		return err
	}

	inspections := []mongo.IndexModel{
		{Keys: bson.D{{Key: "inspector_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "branch_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "vehicle_data.plat_nomor", Value: 1}}},
	}
	if _, err := m.Collection("inspections").Indexes().CreateMany(ctx, inspections); err != nil {
		return err
	}

	photos := []mongo.IndexModel{
		{Keys: bson.D{{Key: "inspection_id", Value: 1}, {Key: "created_at", Value: 1}}},
		{Keys: bson.D{{Key: "inspection_id", Value: 1}, {Key: "type", Value: 1}, {Key: "label", Value: 1}}},
	}
	if _, err := m.Collection("photos").Indexes().CreateMany(ctx, photos); err != nil {
		return err
	}

	return nil
}
