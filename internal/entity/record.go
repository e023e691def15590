package entity

import (
	"maps"

	"github.com/you-humble/parts-inventory/internal/store"
)

// Record is the in-memory view of one document of a kind.
// The identity is assigned by the store on first create and never changes afterwards.
type Record struct {
	schema *Schema
	id     string
	values map[string]any
	dirty  map[string]struct{}
	cache  Cache
}

func newRecord(s *Schema, values map[string]any) *Record {
	r := &Record{
		schema: s,
		values: s.defaults(),
		dirty:  make(map[string]struct{}),
	}
	for k, v := range values {
		r.Set(k, v)
	}
	return r
}

// loadRecord builds a persisted, clean record from a store document.
func loadRecord(s *Schema, doc store.Document) *Record {
	r := &Record{
		schema: s,
		id:     doc.ID(),
		values: s.defaults(),
		dirty:  make(map[string]struct{}),
	}
	for k, v := range doc {
		if k == store.IDField {
			continue
		}
		if f, ok := s.Field(k); ok {
			if cv, ok := coerce(f.Type, v); ok {
				v = cv
			}
		}
		r.values[k] = v
	}
	return r
}

func (r *Record) Kind() Kind { return r.schema.kind }

func (r *Record) Schema() *Schema { return r.schema }

func (r *Record) ID() string { return r.id }

// Exists reports whether the record has an identity, i.e. was found or persisted.
func (r *Record) Exists() bool { return r.id != "" }

// Dirty reports whether any field changed since the record was loaded or saved.
func (r *Record) Dirty() bool { return len(r.dirty) > 0 }

func (r *Record) Cache() *Cache { return &r.cache }

// Set assigns a field. The identity field is silently ignored.
func (r *Record) Set(name string, v any) {
	if name == store.IDField {
		return
	}
	r.values[name] = v
	r.dirty[name] = struct{}{}
}

func (r *Record) Get(name string) any { return r.values[name] }

func (r *Record) IsNull(name string) bool { return r.values[name] == nil }

func (r *Record) String(name string) string {
	s, _ := r.values[name].(string)
	return s
}

// Ref returns the referenced identity or "" when unset.
func (r *Record) Ref(name string) string { return r.String(name) }

func (r *Record) Int(name string) int64 {
	v, ok := coerceInt(r.values[name])
	if !ok {
		return 0
	}
	return v.(int64)
}

func (r *Record) Float(name string) float64 {
	v, ok := coerceFloat(r.values[name])
	if !ok {
		return 0
	}
	return v.(float64)
}

func (r *Record) Bool(name string) bool {
	b, _ := r.values[name].(bool)
	return b
}

// Values returns a copy of every assigned field, including unknown ones.
func (r *Record) Values() map[string]any { return maps.Clone(r.values) }

// Document renders the persisted shape: schema fields plus identity when present.
func (r *Record) Document() store.Document {
	doc := make(store.Document, len(r.schema.fields)+1)
	for _, f := range r.schema.fields {
		doc[f.Name] = r.values[f.Name]
	}
	if r.id != "" {
		doc[store.IDField] = r.id
	}
	return doc
}

func (r *Record) markClean() {
	r.dirty = make(map[string]struct{})
}

func (r *Record) reset() {
	r.id = ""
	r.values = r.schema.defaults()
	r.markClean()
	r.cache.Clear()
}
