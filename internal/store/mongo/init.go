package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureIndexes creates single-field ascending indexes, keyed by collection name.
// Reference fields are scanned by cascades and sums, so every one of them is indexed.
func EnsureIndexes(ctx context.Context, db *mongo.Database, fields map[string][]string) error {
	const op = "mongo.EnsureIndexes"

	for coll, names := range fields {
		if len(names) == 0 {
			continue
		}
		models := make([]mongo.IndexModel, 0, len(names))
		for _, name := range names {
			models = append(models, mongo.IndexModel{Keys: bson.D{{Key: name, Value: 1}}})
		}
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models, options.CreateIndexes()); err != nil {
			return fmt.Errorf("%s %s: %w", op, coll, err)
		}
	}
	return nil
}
