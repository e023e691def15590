package entity_test

import (
	"context"

	"github.com/you-humble/parts-inventory/internal/entity"
	"github.com/you-humble/parts-inventory/internal/store"
	"github.com/you-humble/parts-inventory/internal/store/memory"
)

const (
	kindOwner entity.Kind = "Owner"
	kindBox   entity.Kind = "Box"
	kindTag   entity.Kind = "Tag"
)

var (
	ownerSchema = entity.NewSchema(kindOwner,
		entity.Field{Name: "name", Type: entity.TypeString},
	)

	boxSchema = entity.NewSchema(kindBox,
		entity.Field{Name: "name", Type: entity.TypeString, Unique: true},
		entity.Field{Name: "size", Type: entity.TypeInt, Default: int64(1)},
		entity.Field{Name: "weight", Type: entity.TypeFloat, Nullable: true},
		entity.Field{Name: "open", Type: entity.TypeBool, Default: false},
		entity.Field{Name: "owner_id", Type: entity.TypeRef, Ref: kindOwner, Nullable: true},
		entity.Field{Name: "parent_id", Type: entity.TypeRef, Ref: kindBox, Nullable: true},
	)

	tagSchema = entity.NewSchema(kindTag,
		entity.Field{Name: "box_id", Type: entity.TypeRef, Ref: kindBox},
		entity.Field{Name: "primary", Type: entity.TypeBool, Default: false},
	)
)

// plain has no hooks.
type plain struct{ s *entity.Schema }

func (p plain) Schema() *entity.Schema { return p.s }

// hooked exposes every hook through optional funcs.
type hooked struct {
	s *entity.Schema

	validate   func(ctx context.Context, r *entity.Record, errs entity.Errors) error
	preSave    func(ctx context.Context, r *entity.Record) error
	postSave   func(ctx context.Context, r *entity.Record) error
	preDelete  func(ctx context.Context, r *entity.Record) error
	postDelete func(ctx context.Context, old store.Document) error
	computed   func(ctx context.Context, r *entity.Record) (map[string]any, error)
}

func (h *hooked) Schema() *entity.Schema { return h.s }

func (h *hooked) Validate(ctx context.Context, r *entity.Record, errs entity.Errors) error {
	if h.validate == nil {
		return nil
	}
	return h.validate(ctx, r, errs)
}

func (h *hooked) PreSave(ctx context.Context, r *entity.Record) error {
	if h.preSave == nil {
		return nil
	}
	return h.preSave(ctx, r)
}

func (h *hooked) PostSave(ctx context.Context, r *entity.Record) error {
	if h.postSave == nil {
		return nil
	}
	return h.postSave(ctx, r)
}

func (h *hooked) PreDelete(ctx context.Context, r *entity.Record) error {
	if h.preDelete == nil {
		return nil
	}
	return h.preDelete(ctx, r)
}

func (h *hooked) PostDelete(ctx context.Context, old store.Document) error {
	if h.postDelete == nil {
		return nil
	}
	return h.postDelete(ctx, old)
}

func (h *hooked) Computed(ctx context.Context, r *entity.Record) (map[string]any, error) {
	if h.computed == nil {
		return nil, nil
	}
	return h.computed(ctx, r)
}

func newController(defs ...entity.Definition) *entity.Controller {
	ctrl := entity.NewController(memory.NewStore(), entity.NewRegistry())
	ctrl.Register(plain{ownerSchema}, plain{boxSchema}, plain{tagSchema})
	ctrl.Register(defs...)
	return ctrl
}

func mustSave(ctx context.Context, ctrl *entity.Controller, kind entity.Kind, values map[string]any) *entity.Record {
	r, err := ctrl.New(kind, values)
	if err != nil {
		panic(err)
	}
	if err := ctrl.Save(ctx, r); err != nil {
		panic(err)
	}
	return r
}
