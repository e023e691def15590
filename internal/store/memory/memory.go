package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/you-humble/parts-inventory/internal/store"
)

type collection struct {
	order []string
	docs  map[string]store.Document
}

type storage struct {
	mu    sync.RWMutex
	colls map[string]*collection
}

func NewStore() *storage {
	return &storage{colls: make(map[string]*collection)}
}

func (s *storage) coll(name string) *collection {
	c, ok := s.colls[name]
	if !ok {
		c = &collection{docs: make(map[string]store.Document)}
		s.colls[name] = c
	}
	return c
}

func (s *storage) Exists(ctx context.Context, coll, id string) (bool, error) {
	doc, err := s.Get(ctx, coll, id)
	return doc != nil, err
}

func (s *storage) Get(_ context.Context, coll, id string) (store.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.colls[coll]
	if !ok {
		return nil, nil
	}
	doc, ok := c.docs[id]
	if !ok {
		return nil, nil
	}
	return doc.Clone(), nil
}

func (s *storage) SearchOne(_ context.Context, coll string, filter store.Filter) (store.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.colls[coll]
	if !ok {
		return nil, nil
	}
	for _, id := range c.order {
		if doc := c.docs[id]; store.Match(doc, filter) {
			return doc.Clone(), nil
		}
	}
	return nil, nil
}

func (s *storage) SearchMany(_ context.Context, coll string, filter store.Filter) ([]store.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.Document, 0)
	c, ok := s.colls[coll]
	if !ok {
		return out, nil
	}
	for _, id := range c.order {
		if doc := c.docs[id]; store.Match(doc, filter) {
			out = append(out, doc.Clone())
		}
	}
	return out, nil
}

func (s *storage) Create(_ context.Context, coll string, doc store.Document) (string, error) {
	if doc.ID() != "" {
		return "", store.ErrIdentityAssigned
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	cp := doc.Clone()
	cp[store.IDField] = id

	c := s.coll(coll)
	c.docs[id] = cp
	c.order = append(c.order, id)

	return id, nil
}

func (s *storage) Update(_ context.Context, coll, id string, patch store.Patch) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.colls[coll]
	if !ok {
		return false, nil
	}
	doc, ok := c.docs[id]
	if !ok {
		return false, nil
	}
	apply(doc, patch)
	return true, nil
}

func (s *storage) UpdateMany(_ context.Context, coll string, filter store.Filter, patch store.Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.colls[coll]
	if !ok {
		return nil
	}
	for _, id := range c.order {
		if doc := c.docs[id]; store.Match(doc, filter) {
			apply(doc, patch)
		}
	}
	return nil
}

// Replace swaps the whole document stored under its identity. A document that is not
// stored is not inserted.
func (s *storage) Replace(_ context.Context, coll string, doc store.Document) (bool, error) {
	id := doc.ID()
	if id == "" {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.colls[coll]
	if !ok {
		return false, nil
	}
	if _, ok := c.docs[id]; !ok {
		return false, nil
	}
	c.docs[id] = doc.Clone()
	return true, nil
}

func (s *storage) Delete(_ context.Context, coll, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.colls[coll]
	if !ok {
		return nil
	}
	if _, ok := c.docs[id]; !ok {
		return nil
	}
	delete(c.docs, id)
	c.order = slices.DeleteFunc(c.order, func(x string) bool { return x == id })
	return nil
}

func (s *storage) Sum(_ context.Context, coll, field string, filter store.Filter) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.colls[coll]
	if !ok {
		return 0, nil
	}

	var total float64
	for _, id := range c.order {
		doc := c.docs[id]
		if !store.Match(doc, filter) {
			continue
		}
		// Non-numeric values are skipped, as $sum does.
		if n, err := store.Number(doc[field]); err == nil {
			total += n
		}
	}
	return total, nil
}

// Clear drops every collection.
func (s *storage) Clear() {
	s.mu.Lock()
	s.colls = make(map[string]*collection)
	s.mu.Unlock()
}

func apply(doc store.Document, patch store.Patch) {
	for k, v := range patch {
		if k == store.IDField {
			continue
		}
		doc[k] = v
	}
}
