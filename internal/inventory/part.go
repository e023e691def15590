package inventory

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/you-humble/parts-inventory/internal/entity"
	m "github.com/you-humble/parts-inventory/internal/model"
)

type part struct {
	*deps
}

func (*part) Schema() *entity.Schema { return partSchema }

func (p *part) Validate(_ context.Context, r *entity.Record, errs entity.Errors) error {
	if !errs.Has(m.FieldMinStock) && r.Int(m.FieldMinStock) < 0 {
		errs.Add(m.FieldMinStock, entity.MsgNegative)
	}
	return nil
}

// PreSave lets the footprint decide the mounting style.
func (p *part) PreSave(ctx context.Context, r *entity.Record) error {
	if r.IsNull(m.FieldFootprint) {
		return nil
	}

	fp, err := p.ctrl.Get(ctx, m.KindFootprint, r.Ref(m.FieldFootprint))
	if err != nil {
		return err
	}
	if fp.Exists() {
		r.Set(m.FieldMountingStyle, fp.Get(m.FieldMountingStyle))
	}
	return nil
}

func (p *part) Computed(ctx context.Context, r *entity.Record) (map[string]any, error) {
	level, err := p.StockLevel(ctx, r)
	if err != nil {
		return nil, err
	}
	price, err := p.StockPrice(ctx, r)
	if err != nil {
		return nil, err
	}
	open, err := p.OpenOrders(ctx, r)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		m.FieldStockLevel: level,
		m.FieldStockPrice: price.InexactFloat64(),
		m.FieldStockLow:   level < r.Int(m.FieldMinStock),
		m.FieldOpenOrders: open,
	}, nil
}

func (p *part) StockLevel(ctx context.Context, r *entity.Record) (int64, error) {
	return entity.Memo(r.Cache(), m.FieldStockLevel, func() (int64, error) {
		n, err := p.ledger.PartLevel(ctx, r.ID())
		if err != nil {
			return 0, fmt.Errorf("part %s stock level: %w", r.ID(), err)
		}
		return n, nil
	})
}

func (p *part) StockPrice(ctx context.Context, r *entity.Record) (decimal.Decimal, error) {
	return entity.Memo(r.Cache(), m.FieldStockPrice, func() (decimal.Decimal, error) {
		v, err := p.ledger.PartValue(ctx, r.ID())
		if err != nil {
			return decimal.Zero, fmt.Errorf("part %s stock price: %w", r.ID(), err)
		}
		return v, nil
	})
}

func (p *part) OpenOrders(ctx context.Context, r *entity.Record) (bool, error) {
	return entity.Memo(r.Cache(), m.FieldOpenOrders, func() (bool, error) {
		open, err := p.ledger.PartHasOpenOrders(ctx, r.ID())
		if err != nil {
			return false, fmt.Errorf("part %s open orders: %w", r.ID(), err)
		}
		return open, nil
	})
}
