// Package inventory defines the electronic-parts entity kinds on top of the entity
// framework: their schemas, validation, hooks, computed fields and delete rules.
package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/you-humble/parts-inventory/internal/entity"
	"github.com/you-humble/parts-inventory/internal/ledger"
	m "github.com/you-humble/parts-inventory/internal/model"
	"github.com/you-humble/parts-inventory/internal/store"
)

type Option func(*deps)

// WithClock replaces the time source used to stamp created_at.
func WithClock(now func() time.Time) Option {
	return func(d *deps) { d.now = now }
}

type deps struct {
	ctrl   *entity.Controller
	ledger *ledger.Ledger
	now    func() time.Time
}

// Register installs every kind and the delete rule table into ctrl.
func Register(ctrl *entity.Controller, l *ledger.Ledger, opts ...Option) {
	d := &deps{ctrl: ctrl, ledger: l, now: time.Now}
	for _, opt := range opts {
		opt(d)
	}

	ctrl.Register(
		&category{d},
		&unit{Singleton: entity.Singleton{Ctrl: ctrl, Kind: m.KindUnit, Flag: m.FieldIsDefault}},
		simple{mountingStyleSchema},
		simple{footprintSchema},
		simple{storageGroupSchema},
		&storageLocation{d},
		simple{distributorSchema},
		&part{d},
		&partLocation{
			Singleton: entity.Singleton{Ctrl: ctrl, Kind: m.KindPartLocation, Flag: m.FieldIsDefault},
			deps:      d,
		},
		&partDistributor{
			Singleton: entity.Singleton{Ctrl: ctrl, Kind: m.KindPartDistributor, Flag: m.FieldIsPreferred},
		},
		&order{d},
		&stockChange{d},
	)

	for kind, rules := range Rules() {
		ctrl.Rules().Register(kind, rules...)
	}
}

// New wires a controller over s with every kind registered.
func New(s store.Store, opts ...Option) *entity.Controller {
	ctrl := entity.NewController(s, entity.NewRegistry())
	Register(ctrl, ledger.New(s), opts...)
	return ctrl
}

// SeedDefaults creates the default Unit when no Unit exists yet.
func SeedDefaults(ctx context.Context, ctrl *entity.Controller) error {
	const op = "inventory.SeedDefaults"

	existing, err := ctrl.Store().SearchOne(ctx, string(m.KindUnit), store.Filter{})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if existing != nil {
		return nil
	}

	u, err := ctrl.New(m.KindUnit, map[string]any{
		m.FieldName: m.DefaultUnitName,
		m.FieldDesc: "pieces",
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := ctrl.Save(ctx, u); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// simple is a kind with schema checks only.
type simple struct {
	schema *entity.Schema
}

func (s simple) Schema() *entity.Schema { return s.schema }
