package inventory

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/you-humble/parts-inventory/internal/entity"
	"github.com/you-humble/parts-inventory/internal/ledger"
	m "github.com/you-humble/parts-inventory/internal/model"
)

type partLocation struct {
	entity.Singleton
	*deps
}

func (*partLocation) Schema() *entity.Schema { return partLocationSchema }

// Validate keeps the part of a location fixed once entries linked to an order of that
// part are stored there.
func (p *partLocation) Validate(ctx context.Context, r *entity.Record, errs entity.Errors) error {
	if !r.Exists() || errs.Has(m.FieldPart) {
		return nil
	}

	moved, err := refChanged(ctx, p.ctrl, r, m.FieldPart)
	if err != nil || !moved {
		return err
	}

	entries, err := p.ledger.Movements(ctx, r.ID())
	if err != nil {
		return err
	}
	if lo.ContainsBy(entries, func(e ledger.Entry) bool { return e.OrderID != "" }) {
		errs.Add(m.FieldPart, m.MsgPartLinked)
	}
	return nil
}

func (p *partLocation) Computed(ctx context.Context, r *entity.Record) (map[string]any, error) {
	level, err := entity.Memo(r.Cache(), m.FieldStockLevel, func() (int64, error) {
		return p.ledger.LocationLevel(ctx, r.ID())
	})
	if err != nil {
		return nil, fmt.Errorf("part location %s: %w", r.ID(), err)
	}

	price, err := entity.Memo(r.Cache(), m.FieldStockPrice, func() (decimal.Decimal, error) {
		return p.ledger.LocationValue(ctx, r.ID())
	})
	if err != nil {
		return nil, fmt.Errorf("part location %s: %w", r.ID(), err)
	}

	return map[string]any{
		m.FieldStockLevel: level,
		m.FieldStockPrice: price.InexactFloat64(),
	}, nil
}

type partDistributor struct {
	entity.Singleton
}

func (*partDistributor) Schema() *entity.Schema { return partDistributorSchema }

func (*partDistributor) Validate(_ context.Context, r *entity.Record, errs entity.Errors) error {
	if !errs.Has(m.FieldPkgPrice) && r.Float(m.FieldPkgPrice) < 0 {
		errs.Add(m.FieldPkgPrice, entity.MsgNegative)
	}
	if !errs.Has(m.FieldPkgUnits) && r.Int(m.FieldPkgUnits) < 0 {
		errs.Add(m.FieldPkgUnits, entity.MsgNegative)
	}
	return nil
}
