package mongo

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/you-humble/parts-inventory/internal/store"
)

func BuildMongoFilter(f store.Filter) bson.M {
	q := bson.M{}
	for field, v := range f {
		if c, ok := v.(store.Cond); ok {
			switch c.Op {
			case store.OpNe:
				q[field] = bson.M{"$ne": c.Value}
			}
			continue
		}
		q[field] = v
	}
	return q
}

func BuildMongoSet(p store.Patch) bson.M {
	set := bson.M{}
	for k, v := range p {
		if k == store.IDField {
			continue
		}
		set[k] = v
	}
	return bson.M{"$set": set}
}

func DocumentFromBSON(m bson.M) store.Document {
	if m == nil {
		return nil
	}
	out := make(store.Document, len(m))
	for k, v := range m {
		if oid, ok := v.(bson.ObjectID); ok {
			v = oid.Hex()
		}
		out[k] = v
	}
	return out
}
