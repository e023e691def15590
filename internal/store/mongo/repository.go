package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/you-humble/parts-inventory/internal/store"
	"github.com/you-humble/parts-inventory/platform/logger"
)

type repository struct {
	db *mongo.Database
}

func NewStore(db *mongo.Database) *repository {
	return &repository{db: db}
}

func (r *repository) coll(name string) *mongo.Collection {
	return r.db.Collection(name)
}

func (r *repository) Exists(ctx context.Context, coll, id string) (bool, error) {
	const op = "mongo.Exists"

	n, err := r.coll(coll).CountDocuments(ctx, bson.M{store.IDField: id}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return n > 0, nil
}

func (r *repository) Get(ctx context.Context, coll, id string) (store.Document, error) {
	return r.findOne(ctx, "mongo.Get", coll, bson.M{store.IDField: id})
}

func (r *repository) SearchOne(ctx context.Context, coll string, filter store.Filter) (store.Document, error) {
	return r.findOne(ctx, "mongo.SearchOne", coll, BuildMongoFilter(filter))
}

func (r *repository) findOne(ctx context.Context, op, coll string, q bson.M) (store.Document, error) {
	var m bson.M
	err := r.coll(coll).FindOne(ctx, q).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return DocumentFromBSON(m), nil
}

func (r *repository) SearchMany(ctx context.Context, coll string, filter store.Filter) ([]store.Document, error) {
	const op = "mongo.SearchMany"

	cur, err := r.coll(coll).Find(ctx, BuildMongoFilter(filter), options.Find().SetSort(bson.D{{Key: "$natural", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if cerr := cur.Close(ctx); cerr != nil {
			logger.Error(ctx, "failed to close cursor", logger.String("op", op), logger.ErrorF(cerr))
		}
	}()

	out := make([]store.Document, 0)
	for cur.Next(ctx) {
		var m bson.M
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("%s decode: %w", op, err)
		}
		out = append(out, DocumentFromBSON(m))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s cursor: %w", op, err)
	}

	return out, nil
}

func (r *repository) Create(ctx context.Context, coll string, doc store.Document) (string, error) {
	const op = "mongo.Create"

	if doc.ID() != "" {
		return "", store.ErrIdentityAssigned
	}

	id := bson.NewObjectID().Hex()
	ins := bson.M(doc.Clone())
	ins[store.IDField] = id

	if _, err := r.coll(coll).InsertOne(ctx, ins); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

func (r *repository) Update(ctx context.Context, coll, id string, patch store.Patch) (bool, error) {
	const op = "mongo.Update"

	res, err := r.coll(coll).UpdateOne(ctx, bson.M{store.IDField: id}, BuildMongoSet(patch))
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return res.MatchedCount > 0, nil
}

func (r *repository) UpdateMany(ctx context.Context, coll string, filter store.Filter, patch store.Patch) error {
	const op = "mongo.UpdateMany"

	if _, err := r.coll(coll).UpdateMany(ctx, BuildMongoFilter(filter), BuildMongoSet(patch)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r *repository) Replace(ctx context.Context, coll string, doc store.Document) (bool, error) {
	const op = "mongo.Replace"

	id := doc.ID()
	if id == "" {
		return false, nil
	}

	res, err := r.coll(coll).ReplaceOne(ctx, bson.M{store.IDField: id}, bson.M(doc.Clone()))
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return res.MatchedCount > 0, nil
}

func (r *repository) Delete(ctx context.Context, coll, id string) error {
	const op = "mongo.Delete"

	if _, err := r.coll(coll).DeleteOne(ctx, bson.M{store.IDField: id}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r *repository) Sum(ctx context.Context, coll, field string, filter store.Filter) (float64, error) {
	const op = "mongo.Sum"

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: BuildMongoFilter(filter)}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$" + field}}},
		}}},
	}

	cur, err := r.coll(coll).Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if cerr := cur.Close(ctx); cerr != nil {
			logger.Error(ctx, "failed to close cursor", logger.String("op", op), logger.ErrorF(cerr))
		}
	}()

	if !cur.Next(ctx) {
		if err := cur.Err(); err != nil {
			return 0, fmt.Errorf("%s cursor: %w", op, err)
		}
		return 0, nil
	}

	var row struct {
		Total any `bson:"total"`
	}
	if err := cur.Decode(&row); err != nil {
		return 0, fmt.Errorf("%s decode: %w", op, err)
	}

	total, err := store.Number(row.Total)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return total, nil
}

// Clear drops every collection of the database.
func (r *repository) Clear(ctx context.Context) error {
	const op = "mongo.Clear"

	names, err := r.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	for _, name := range names {
		if err := r.coll(name).Drop(ctx); err != nil {
			return fmt.Errorf("%s %s: %w", op, name, err)
		}
	}
	return nil
}
