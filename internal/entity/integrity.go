package entity

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/you-humble/parts-inventory/internal/store"
)

type Action int

const (
	// Cascade deletes every dependent through the lifecycle, running its hooks.
	Cascade Action = iota + 1
	// Nullify clears the dependent's reference field.
	Nullify
	// Restrict vetoes the delete while any dependent exists.
	Restrict
)

func (a Action) String() string {
	switch a {
	case Cascade:
		return "cascade"
	case Nullify:
		return "nullify"
	case Restrict:
		return "restrict"
	default:
		return "unknown"
	}
}

// Rule binds a dependent kind's reference field to an action taken when the
// referenced record is deleted.
type Rule struct {
	Dependent Kind
	Field     string
	Action    Action
}

// Registry holds the delete rules of every kind. It is filled once at start-up.
type Registry struct {
	byKind map[Kind][]Rule
}

func NewRegistry() *Registry {
	return &Registry{byKind: make(map[Kind][]Rule)}
}

func (r *Registry) Register(kind Kind, rules ...Rule) {
	r.byKind[kind] = append(r.byKind[kind], rules...)
}

// RulesFor returns the rules of kind in registration order.
func (r *Registry) RulesFor(kind Kind) []Rule {
	return r.byKind[kind]
}

// enforce applies the rules of r's kind. Restrict rules are all checked before any
// cascade or nullify step runs.
func (c *Controller) enforce(ctx context.Context, rec *Record) error {
	rules := c.rules.RulesFor(rec.Kind())
	restrict, rest := lo.FilterReject(rules, func(rl Rule, _ int) bool {
		return rl.Action == Restrict
	})

	for _, rl := range restrict {
		dep, err := c.store.SearchOne(ctx, string(rl.Dependent), store.Filter{rl.Field: rec.id})
		if err != nil {
			return err
		}
		if dep != nil {
			return &RestrictedError{
				Kind:      rec.Kind(),
				ID:        rec.id,
				Dependent: rl.Dependent,
				Field:     rl.Field,
			}
		}
	}

	for _, rl := range rest {
		switch rl.Action {
		case Nullify:
			err := c.store.UpdateMany(ctx, string(rl.Dependent),
				store.Filter{rl.Field: rec.id},
				store.Patch{rl.Field: nil},
			)
			if err != nil {
				return fmt.Errorf("nullify %s.%s: %w", rl.Dependent, rl.Field, err)
			}
		case Cascade:
			if err := c.cascade(ctx, rec, rl); err != nil {
				return fmt.Errorf("cascade %s.%s: %w", rl.Dependent, rl.Field, err)
			}
		}
	}

	return nil
}

// cascade deletes the dependents of rec one at a time. Each one is fetched right before
// its delete: hooks of earlier deletes may have changed it or removed it already.
func (c *Controller) cascade(ctx context.Context, rec *Record, rl Rule) error {
	ctx = context.WithValue(ctx, cascadeKey{}, &cascadeFrame{kind: rec.Kind(), id: rec.id, up: cascadeOf(ctx)})

	docs, err := c.store.SearchMany(ctx, string(rl.Dependent), store.Filter{rl.Field: rec.id})
	if err != nil {
		return err
	}

	for _, id := range lo.Map(docs, func(d store.Document, _ int) string { return d.ID() }) {
		dep, err := c.Get(ctx, rl.Dependent, id)
		if err != nil {
			return err
		}
		if !dep.Exists() {
			continue
		}
		if err := c.Delete(ctx, dep); err != nil {
			return err
		}
	}
	return nil
}

type cascadeKey struct{}

type cascadeFrame struct {
	kind Kind
	id   string
	up   *cascadeFrame
}

func cascadeOf(ctx context.Context) *cascadeFrame {
	f, _ := ctx.Value(cascadeKey{}).(*cascadeFrame)
	return f
}

// CascadedFrom reports whether ctx belongs to a cascade started by deleting the given
// record, directly or further up the chain.
func CascadedFrom(ctx context.Context, kind Kind, id string) bool {
	for f := cascadeOf(ctx); f != nil; f = f.up {
		if f.kind == kind && f.id == id {
			return true
		}
	}
	return false
}
