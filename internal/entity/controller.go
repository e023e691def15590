package entity

import (
	"context"
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/you-humble/parts-inventory/internal/store"
)

// Controller owns the save and delete lifecycle of every registered kind.
// It assumes a single logical writer: validation queries and the following write are
// not atomic.
type Controller struct {
	store     store.Store
	defs      map[Kind]Definition
	rules     *Registry
	observers []Observer
}

func NewController(s store.Store, rules *Registry) *Controller {
	if rules == nil {
		rules = NewRegistry()
	}
	return &Controller{
		store: s,
		defs:  make(map[Kind]Definition),
		rules: rules,
	}
}

func (c *Controller) Register(defs ...Definition) {
	for _, d := range defs {
		c.defs[d.Schema().Kind()] = d
	}
}

func (c *Controller) Observe(o Observer) {
	c.observers = append(c.observers, o)
}

func (c *Controller) Store() store.Store { return c.store }

func (c *Controller) Rules() *Registry { return c.rules }

func (c *Controller) Definition(kind Kind) (Definition, error) {
	d, ok := c.defs[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	return d, nil
}

// Kinds lists the registered kinds in name order.
func (c *Controller) Kinds() []Kind {
	kinds := lo.Keys(c.defs)
	slices.Sort(kinds)
	return kinds
}

// New returns an unsaved record with defaults applied and values assigned on top.
func (c *Controller) New(kind Kind, values map[string]any) (*Record, error) {
	def, err := c.Definition(kind)
	if err != nil {
		return nil, err
	}
	return newRecord(def.Schema(), values), nil
}

// Get fetches a record by identity. A missing document yields a record whose
// Exists reports false; it is not an error.
func (c *Controller) Get(ctx context.Context, kind Kind, id string) (*Record, error) {
	const op = "entity.Get"

	def, err := c.Definition(kind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	doc, err := c.store.Get(ctx, string(kind), id)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", op, kind, err)
	}
	if doc == nil {
		return newRecord(def.Schema(), nil), nil
	}
	return loadRecord(def.Schema(), doc), nil
}

func (c *Controller) Find(ctx context.Context, kind Kind, filter store.Filter) ([]*Record, error) {
	const op = "entity.Find"

	def, err := c.Definition(kind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	docs, err := c.store.SearchMany(ctx, string(kind), filter)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", op, kind, err)
	}

	return lo.Map(docs, func(d store.Document, _ int) *Record {
		return loadRecord(def.Schema(), d)
	}), nil
}

func (c *Controller) All(ctx context.Context, kind Kind) ([]*Record, error) {
	return c.Find(ctx, kind, store.Filter{})
}

// Reload refreshes r from the store and drops its cache. A record that disappeared
// loses its identity.
func (c *Controller) Reload(ctx context.Context, r *Record) error {
	const op = "entity.Reload"

	if !r.Exists() {
		return fmt.Errorf("%s %s: %w", op, r.Kind(), ErrNotFound)
	}

	doc, err := c.store.Get(ctx, string(r.Kind()), r.id)
	if err != nil {
		return fmt.Errorf("%s %s: %w", op, r.Kind(), err)
	}
	if doc == nil {
		r.reset()
		return nil
	}

	fresh := loadRecord(r.schema, doc)
	r.values = fresh.values
	r.markClean()
	r.cache.Clear()
	return nil
}

// Save validates r, runs the pre-save hook, inserts or fully replaces the document and
// runs the post-save hook. Validation failures return *ValidationError and leave the
// store untouched. Saving a persisted record whose document is gone returns ErrNotFound.
func (c *Controller) Save(ctx context.Context, r *Record) error {
	const op = "entity.Save"

	def, err := c.Definition(r.Kind())
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	errs, err := c.Validate(ctx, r)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if len(errs) > 0 {
		return &ValidationError{Kind: r.Kind(), Fields: errs}
	}

	if h, ok := def.(PreSaver); ok {
		if err := h.PreSave(ctx, r); err != nil {
			return fmt.Errorf("%s %s pre-save: %w", op, r.Kind(), err)
		}
	}

	evOp := OpUpdated
	if !r.Exists() {
		id, err := c.store.Create(ctx, string(r.Kind()), r.Document())
		if err != nil {
			return fmt.Errorf("%s %s create: %w", op, r.Kind(), err)
		}
		r.id = id
		evOp = OpCreated
	} else {
		ok, err := c.store.Replace(ctx, string(r.Kind()), r.Document())
		if err != nil {
			return fmt.Errorf("%s %s replace: %w", op, r.Kind(), err)
		}
		if !ok {
			return fmt.Errorf("%s %s %s: %w", op, r.Kind(), r.id, ErrNotFound)
		}
	}
	r.markClean()

	if h, ok := def.(PostSaver); ok {
		if err := h.PostSave(ctx, r); err != nil {
			return fmt.Errorf("%s %s post-save: %w", op, r.Kind(), err)
		}
	}

	c.notify(ctx, Event{Kind: r.Kind(), ID: r.id, Op: evOp, Document: r.Document()})
	return nil
}

// Delete runs the pre-delete hook and the integrity rules of the kind, removes the
// document, clears r and runs the post-delete hook. A failure inside a cascade aborts
// the delete; cascade steps already applied stay applied.
func (c *Controller) Delete(ctx context.Context, r *Record) error {
	const op = "entity.Delete"

	def, err := c.Definition(r.Kind())
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !r.Exists() {
		return fmt.Errorf("%s %s: %w", op, r.Kind(), ErrNotFound)
	}

	if h, ok := def.(PreDeleter); ok {
		if err := h.PreDelete(ctx, r); err != nil {
			return fmt.Errorf("%s %s pre-delete: %w", op, r.Kind(), err)
		}
	}

	if err := c.enforce(ctx, r); err != nil {
		return fmt.Errorf("%s %s: %w", op, r.Kind(), err)
	}

	old := r.Document()
	if err := c.store.Delete(ctx, string(r.Kind()), r.id); err != nil {
		return fmt.Errorf("%s %s: %w", op, r.Kind(), err)
	}
	r.reset()

	if h, ok := def.(PostDeleter); ok {
		if err := h.PostDelete(ctx, old); err != nil {
			return fmt.Errorf("%s %s post-delete: %w", op, r.Kind(), err)
		}
	}

	c.notify(ctx, Event{Kind: r.Kind(), ID: old.ID(), Op: OpDeleted, Document: old})
	return nil
}

// View renders the persisted fields merged with the kind's computed fields.
func (c *Controller) View(ctx context.Context, r *Record) (store.Document, error) {
	const op = "entity.View"

	def, err := c.Definition(r.Kind())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	doc := r.Document()
	if h, ok := def.(Computer); ok && r.Exists() {
		computed, err := h.Computed(ctx, r)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", op, r.Kind(), err)
		}
		for k, v := range computed {
			doc[k] = v
		}
	}
	return doc, nil
}

func (c *Controller) notify(ctx context.Context, ev Event) {
	for _, o := range c.observers {
		o(ctx, ev)
	}
}
