package inventory

import (
	"context"
	"fmt"

	"github.com/you-humble/parts-inventory/internal/entity"
	m "github.com/you-humble/parts-inventory/internal/model"
	"github.com/you-humble/parts-inventory/internal/store"
)

type order struct {
	*deps
}

func (*order) Schema() *entity.Schema { return orderSchema }

func (o *order) Validate(ctx context.Context, r *entity.Record, errs entity.Errors) error {
	if !errs.Has(m.FieldAmount) && r.Int(m.FieldAmount) < 1 {
		errs.Add(m.FieldAmount, entity.MsgOneOrMore)
	}
	if r.Exists() {
		received, err := o.ledger.OrderReceived(ctx, r.ID(), "")
		if err != nil {
			return err
		}
		if !errs.Has(m.FieldAmount) && received > r.Int(m.FieldAmount) {
			errs.Add(m.FieldAmount, m.MsgBelowReceived)
		}
		if received > 0 && !errs.Has(m.FieldPart) {
			moved, err := refChanged(ctx, o.ctrl, r, m.FieldPart)
			if err != nil {
				return err
			}
			if moved {
				errs.Add(m.FieldPart, m.MsgPartLinked)
			}
		}
	}
	if !errs.Has(m.FieldPrice) && r.Float(m.FieldPrice) < 0 {
		errs.Add(m.FieldPrice, entity.MsgNegative)
	}
	checkCreatedAt(r, errs)
	return nil
}

func (o *order) PreSave(_ context.Context, r *entity.Record) error {
	stamp(r, o.createdAt(r))
	return nil
}

func (o *order) Computed(ctx context.Context, r *entity.Record) (map[string]any, error) {
	done, err := entity.Memo(r.Cache(), m.FieldCompleted, func() (bool, error) {
		return o.ledger.OrderCompleted(ctx, r.ID(), r.Int(m.FieldAmount))
	})
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", r.ID(), err)
	}
	return map[string]any{m.FieldCompleted: done}, nil
}

func checkCreatedAt(r *entity.Record, errs entity.Errors) {
	if errs.Has(m.FieldCreatedAt) || r.IsNull(m.FieldCreatedAt) {
		return
	}
	if r.Int(m.FieldCreatedAt) < 0 {
		errs.Add(m.FieldCreatedAt, entity.MsgNegative)
	}
}

func stamp(r *entity.Record, now int64) {
	if r.IsNull(m.FieldCreatedAt) {
		r.Set(m.FieldCreatedAt, now)
	}
	r.Cache().Drop(pendingCreatedAt)
}

const pendingCreatedAt = "pending_created_at"

// createdAt is the creation time r has or will be stamped with. The clock is read once
// per save, so validation sees the same value the pre-save hook stores.
func (d *deps) createdAt(r *entity.Record) int64 {
	if !r.IsNull(m.FieldCreatedAt) {
		return r.Int(m.FieldCreatedAt)
	}
	ts, _ := entity.Memo(r.Cache(), pendingCreatedAt, func() (int64, error) {
		return d.now().Unix(), nil
	})
	return ts
}

// refChanged reports whether field of a persisted record differs from its stored value.
func refChanged(ctx context.Context, ctrl *entity.Controller, r *entity.Record, field string) (bool, error) {
	stored, err := ctrl.Store().Get(ctx, string(r.Kind()), r.ID())
	if err != nil {
		return false, err
	}
	if stored == nil {
		return false, nil
	}
	return !store.Equal(stored[field], r.Get(field)), nil
}
