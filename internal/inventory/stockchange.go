package inventory

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/you-humble/parts-inventory/internal/entity"
	"github.com/you-humble/parts-inventory/internal/ledger"
	m "github.com/you-humble/parts-inventory/internal/model"
	"github.com/you-humble/parts-inventory/internal/store"
)

type stockChange struct {
	*deps
}

func (*stockChange) Schema() *entity.Schema { return stockChangeSchema }

func (s *stockChange) Validate(ctx context.Context, r *entity.Record, errs entity.Errors) error {
	linked := !r.IsNull(m.FieldOrder)

	var ord store.Document
	if linked && !errs.Has(m.FieldOrder) {
		var err error
		if ord, err = s.ctrl.Store().Get(ctx, string(m.KindOrder), r.Ref(m.FieldOrder)); err != nil {
			return err
		}
	}

	if ord != nil && !errs.Has(m.FieldPartLocation) {
		pl, err := s.ctrl.Store().Get(ctx, string(m.KindPartLocation), r.Ref(m.FieldPartLocation))
		if err != nil {
			return err
		}
		if pl != nil && !store.Equal(ord[m.FieldPart], pl[m.FieldPart]) {
			errs.Add(m.FieldOrder, m.MsgPartMismatch)
		}
	}

	if !errs.Has(m.FieldAmount) {
		switch amount := r.Int(m.FieldAmount); {
		case amount == 0:
			errs.Add(m.FieldAmount, entity.MsgZero)
		case linked && amount < 0:
			errs.Add(m.FieldAmount, entity.MsgNegative)
		}
	}
	if !linked && !errs.Has(m.FieldPrice) && r.Float(m.FieldPrice) < 0 {
		errs.Add(m.FieldPrice, entity.MsgNegative)
	}
	checkCreatedAt(r, errs)

	if ord != nil && !errs.Has(m.FieldOrder) && !errs.Has(m.FieldAmount) {
		received, err := s.ledger.OrderReceived(ctx, ord.ID(), r.ID())
		if err != nil {
			return err
		}
		ordered, err := store.Number(ord[m.FieldAmount])
		if err != nil {
			return err
		}
		if received+r.Int(m.FieldAmount) > int64(ordered) {
			errs.Add(m.FieldAmount, m.MsgExceedsOrder)
		}
	}

	if !errs.Has(m.FieldPartLocation) && !errs.Has(m.FieldAmount) && !errs.Has(m.FieldCreatedAt) {
		candidate := ledger.Entry{
			ID:        r.ID(),
			Amount:    r.Int(m.FieldAmount),
			CreatedAt: lo.ToPtr(s.createdAt(r)),
		}
		ok, err := s.ledger.Balanced(ctx, r.Ref(m.FieldPartLocation), candidate)
		if err != nil {
			return err
		}
		if !ok {
			errs.Add(m.FieldAmount, m.MsgNegativeStock)
		}
	}

	if r.Exists() && !errs.Has(m.FieldPartLocation) {
		if err := s.checkSource(ctx, r, errs); err != nil {
			return err
		}
	}

	return nil
}

// checkSource guards the location an edited entry moves away from.
func (s *stockChange) checkSource(ctx context.Context, r *entity.Record, errs entity.Errors) error {
	stored, err := s.ctrl.Store().Get(ctx, string(m.KindStockChange), r.ID())
	if err != nil || stored == nil {
		return err
	}

	from, _ := stored[m.FieldPartLocation].(string)
	if from == "" || from == r.Ref(m.FieldPartLocation) {
		return nil
	}

	ok, err := s.ledger.BalancedWithout(ctx, from, r.ID())
	if err != nil {
		return err
	}
	if !ok {
		errs.Add(m.FieldPartLocation, m.MsgNegativeStock)
	}
	return nil
}

// PreDelete refuses to drop an entry that later entries of its location depend on.
// Entries go unchecked when their location itself is being deleted.
func (s *stockChange) PreDelete(ctx context.Context, r *entity.Record) error {
	pl := r.Ref(m.FieldPartLocation)
	if entity.CascadedFrom(ctx, m.KindPartLocation, pl) {
		return nil
	}

	ok, err := s.ledger.BalancedWithout(ctx, pl, r.ID())
	if err != nil {
		return err
	}
	if !ok {
		return &entity.ValidationError{
			Kind:   m.KindStockChange,
			Fields: entity.Errors{m.FieldAmount: m.MsgNegativeStock},
		}
	}
	return nil
}

// PreSave stamps the creation time and derives the price of an order-linked entry.
func (s *stockChange) PreSave(ctx context.Context, r *entity.Record) error {
	stamp(r, s.createdAt(r))

	if r.IsNull(m.FieldOrder) {
		return nil
	}

	ord, err := s.ctrl.Get(ctx, m.KindOrder, r.Ref(m.FieldOrder))
	if err != nil {
		return err
	}
	if !ord.Exists() {
		return fmt.Errorf("stock change: %w: order %s", entity.ErrNotFound, r.Ref(m.FieldOrder))
	}

	price := ledger.LinkedPrice(
		decimal.NewFromFloat(ord.Float(m.FieldPrice)),
		ord.Int(m.FieldAmount),
		r.Int(m.FieldAmount),
	)
	r.Set(m.FieldPrice, price.InexactFloat64())
	return nil
}
