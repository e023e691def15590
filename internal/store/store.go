// Package store defines the document store contract consumed by the entity framework.
package store

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// IDField is the identity attribute of every document.
const IDField = "_id"

var (
	ErrIdentityAssigned = errors.New("store: document already has an identity")
	ErrNotNumeric       = errors.New("store: value is not numeric")
)

// Document is one persisted record: field name to canonical value.
type Document map[string]any

// ID returns the document identity or "" when it has none.
func (d Document) ID() string {
	id, _ := d[IDField].(string)
	return id
}

// Clone returns a shallow copy.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Filter selects documents. A plain value means equality, a Cond value a comparison.
type Filter map[string]any

// Patch is a set of field assignments.
type Patch map[string]any

type Op int

const (
	OpNe Op = iota + 1
)

type Cond struct {
	Op    Op
	Value any
}

// Ne matches documents whose field differs from v.
func Ne(v any) Cond { return Cond{Op: OpNe, Value: v} }

// Store is the collection-scoped persistence contract.
type Store interface {
	Exists(ctx context.Context, coll, id string) (bool, error)
	Get(ctx context.Context, coll, id string) (Document, error)
	SearchOne(ctx context.Context, coll string, filter Filter) (Document, error)
	SearchMany(ctx context.Context, coll string, filter Filter) ([]Document, error)
	Create(ctx context.Context, coll string, doc Document) (string, error)
	Update(ctx context.Context, coll, id string, patch Patch) (bool, error)
	UpdateMany(ctx context.Context, coll string, filter Filter, patch Patch) error
	Replace(ctx context.Context, coll string, doc Document) (bool, error)
	Delete(ctx context.Context, coll, id string) error
	Sum(ctx context.Context, coll, field string, filter Filter) (float64, error)
}

// Match reports whether doc satisfies filter. Missing fields compare as nil.
func Match(doc Document, filter Filter) bool {
	for field, want := range filter {
		got := doc[field]
		if c, ok := want.(Cond); ok {
			switch c.Op {
			case OpNe:
				if Equal(got, c.Value) {
					return false
				}
			default:
				return false
			}
			continue
		}
		if !Equal(got, want) {
			return false
		}
	}
	return true
}

// Equal compares two canonical values; numbers compare by value regardless of width.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	fa, aNum := toFloat(a)
	fb, bNum := toFloat(b)
	if aNum && bNum {
		return fa == fb
	}
	if aNum != bNum {
		return false
	}
	return a == b
}

// Number converts a numeric store value to float64.
func Number(v any) (float64, error) {
	if v == nil {
		return 0, nil
	}
	f, ok := toFloat(v)
	if !ok {
		return 0, fmt.Errorf("%w: %T", ErrNotNumeric, v)
	}
	return f, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		if math.IsNaN(n) {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
