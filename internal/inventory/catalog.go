package inventory

import (
	"context"

	"github.com/you-humble/parts-inventory/internal/entity"
	m "github.com/you-humble/parts-inventory/internal/model"
)

type unit struct {
	entity.Singleton
}

func (unit) Schema() *entity.Schema { return unitSchema }

type category struct {
	*deps
}

func (*category) Schema() *entity.Schema { return categorySchema }

func (c *category) Validate(ctx context.Context, r *entity.Record, errs entity.Errors) error {
	return checkParent(ctx, c.ctrl, r, m.FieldParentCategory, errs)
}

type storageLocation struct {
	*deps
}

func (*storageLocation) Schema() *entity.Schema { return storageLocationSchema }

func (s *storageLocation) Validate(ctx context.Context, r *entity.Record, errs entity.Errors) error {
	return checkParent(ctx, s.ctrl, r, m.FieldParentStorageLocation, errs)
}

// checkParent rejects a parent reference pointing at r itself or at one of its
// descendants. Records that are not persisted yet can't close a loop.
func checkParent(ctx context.Context, ctrl *entity.Controller, r *entity.Record, field string, errs entity.Errors) error {
	if errs.Has(field) || r.IsNull(field) || !r.Exists() {
		return nil
	}

	parent := r.Ref(field)
	if parent == r.ID() {
		errs.Add(field, entity.MsgOwnID)
		return nil
	}

	seen := map[string]struct{}{r.ID(): {}}
	for parent != "" {
		if parent == r.ID() {
			errs.Add(field, entity.MsgCycle)
			return nil
		}
		if _, ok := seen[parent]; ok {
			// A loop above r that r is not part of.
			return nil
		}
		seen[parent] = struct{}{}

		doc, err := ctrl.Store().Get(ctx, string(r.Kind()), parent)
		if err != nil {
			return err
		}
		if doc == nil {
			return nil
		}
		parent, _ = doc[field].(string)
	}
	return nil
}
