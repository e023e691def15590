package entity_test

import (
	"context"
	"errors"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/parts-inventory/internal/entity"
	"github.com/you-humble/parts-inventory/internal/store"
)

func TestControllerSave(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("create assigns identity and update replaces", func(t *testing.T) {
		t.Parallel()
		ctrl := newController()

		r, _ := ctrl.New(kindBox, map[string]any{"name": gofakeit.Word()})
		require.NoError(t, ctrl.Save(ctx, r))
		require.True(t, r.Exists())
		assert.False(t, r.Dirty())
		id := r.ID()

		r.Set("size", 7)
		require.NoError(t, ctrl.Save(ctx, r))
		assert.Equal(t, id, r.ID())

		got, err := ctrl.Get(ctx, kindBox, id)
		require.NoError(t, err)
		assert.Equal(t, int64(7), got.Int("size"))

		all, err := ctrl.All(ctx, kindBox)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("invalid record is not persisted", func(t *testing.T) {
		t.Parallel()
		ctrl := newController()

		r, _ := ctrl.New(kindBox, map[string]any{"size": "x"})
		err := ctrl.Save(ctx, r)
		require.ErrorIs(t, err, entity.ErrValidation)

		var verr *entity.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, kindBox, verr.Kind)
		assert.Contains(t, verr.Fields, "name")
		assert.Contains(t, verr.Fields, "size")
		assert.False(t, r.Exists())

		all, _ := ctrl.All(ctx, kindBox)
		assert.Empty(t, all)
	})

	t.Run("hooks run around the write", func(t *testing.T) {
		t.Parallel()

		var seenID string
		def := &hooked{
			s: boxSchema,
			preSave: func(_ context.Context, r *entity.Record) error {
				r.Set("open", true)
				return nil
			},
			postSave: func(_ context.Context, r *entity.Record) error {
				seenID = r.ID()
				return nil
			},
		}
		ctrl := newController(def)

		r := mustSave(ctx, ctrl, kindBox, map[string]any{"name": "x"})
		assert.Equal(t, r.ID(), seenID)

		got, _ := ctrl.Get(ctx, kindBox, r.ID())
		assert.True(t, got.Bool("open"))
	})

	t.Run("observers see created and updated", func(t *testing.T) {
		t.Parallel()
		ctrl := newController()

		var ops []entity.Op
		ctrl.Observe(func(_ context.Context, ev entity.Event) {
			ops = append(ops, ev.Op)
		})

		r := mustSave(ctx, ctrl, kindBox, map[string]any{"name": "x"})
		require.NoError(t, ctrl.Save(ctx, r))
		require.NoError(t, ctrl.Delete(ctx, r))

		assert.Equal(t, []entity.Op{entity.OpCreated, entity.OpUpdated, entity.OpDeleted}, ops)
	})

	t.Run("stale copy of a deleted record stays deleted", func(t *testing.T) {
		t.Parallel()
		ctrl := newController()

		r := mustSave(ctx, ctrl, kindBox, map[string]any{"name": "x"})
		stale, err := ctrl.Get(ctx, kindBox, r.ID())
		require.NoError(t, err)
		id := r.ID()

		require.NoError(t, ctrl.Delete(ctx, r))

		stale.Set("size", 7)
		assert.ErrorIs(t, ctrl.Save(ctx, stale), entity.ErrNotFound)

		ok, err := ctrl.Store().Exists(ctx, string(kindBox), id)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestControllerGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl := newController()

	r, err := ctrl.Get(ctx, kindBox, gofakeit.UUID())
	require.NoError(t, err)
	assert.False(t, r.Exists())

	_, err = ctrl.Get(ctx, "Nope", "1")
	assert.ErrorIs(t, err, entity.ErrUnknownKind)

	saved := mustSave(ctx, ctrl, kindBox, map[string]any{"name": "a"})
	found, err := ctrl.Find(ctx, kindBox, store.Filter{"name": "a"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, saved.ID(), found[0].ID())
}

func TestControllerReload(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl := newController()

	r := mustSave(ctx, ctrl, kindBox, map[string]any{"name": "a"})
	r.Cache().Set("k", 1)

	_, err := ctrl.Store().Update(ctx, string(kindBox), r.ID(), store.Patch{"size": int64(9)})
	require.NoError(t, err)

	require.NoError(t, ctrl.Reload(ctx, r))
	assert.Equal(t, int64(9), r.Int("size"))
	_, ok := r.Cache().Get("k")
	assert.False(t, ok)

	require.NoError(t, ctrl.Store().Delete(ctx, string(kindBox), r.ID()))
	require.NoError(t, ctrl.Reload(ctx, r))
	assert.False(t, r.Exists())

	assert.ErrorIs(t, ctrl.Reload(ctx, r), entity.ErrNotFound)
}

func TestControllerDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("clears identity and fields", func(t *testing.T) {
		t.Parallel()

		var old store.Document
		def := &hooked{
			s: boxSchema,
			postDelete: func(_ context.Context, doc store.Document) error {
				old = doc
				return nil
			},
		}
		ctrl := newController(def)

		r := mustSave(ctx, ctrl, kindBox, map[string]any{"name": "a", "size": 3})
		id := r.ID()
		require.NoError(t, ctrl.Delete(ctx, r))

		assert.False(t, r.Exists())
		assert.True(t, r.IsNull("name"))
		assert.Equal(t, int64(1), r.Int("size"))
		assert.Equal(t, id, old.ID())
		assert.Equal(t, "a", old["name"])

		got, _ := ctrl.Get(ctx, kindBox, id)
		assert.False(t, got.Exists())
	})

	t.Run("unsaved record", func(t *testing.T) {
		t.Parallel()
		ctrl := newController()

		r, _ := ctrl.New(kindBox, map[string]any{"name": "a"})
		assert.ErrorIs(t, ctrl.Delete(ctx, r), entity.ErrNotFound)
	})

	t.Run("pre-delete veto keeps the record", func(t *testing.T) {
		t.Parallel()

		def := &hooked{
			s: boxSchema,
			preDelete: func(_ context.Context, r *entity.Record) error {
				return &entity.RestrictedError{Kind: kindBox, ID: r.ID(), Dependent: kindTag, Field: "box_id"}
			},
		}
		ctrl := newController(def)

		r := mustSave(ctx, ctrl, kindBox, map[string]any{"name": "a"})
		err := ctrl.Delete(ctx, r)
		require.ErrorIs(t, err, entity.ErrRestricted)
		assert.True(t, r.Exists())

		got, _ := ctrl.Get(ctx, kindBox, r.ID())
		assert.True(t, got.Exists())
	})
}

func TestControllerView(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	def := &hooked{
		s: boxSchema,
		computed: func(_ context.Context, r *entity.Record) (map[string]any, error) {
			if r.String("name") == "broken" {
				return nil, errors.New("boom")
			}
			return map[string]any{"volume": r.Int("size") * 2}, nil
		},
	}
	ctrl := newController(def)

	r := mustSave(ctx, ctrl, kindBox, map[string]any{"name": "a", "size": 4})
	doc, err := ctrl.View(ctx, r)
	require.NoError(t, err)
	assert.Equal(t, int64(8), doc["volume"])
	assert.Equal(t, r.ID(), doc.ID())

	stored, _ := ctrl.Store().Get(ctx, string(kindBox), r.ID())
	assert.NotContains(t, stored, "volume")

	broken := mustSave(ctx, ctrl, kindBox, map[string]any{"name": "broken"})
	_, err = ctrl.View(ctx, broken)
	assert.Error(t, err)
}

func TestControllerKinds(t *testing.T) {
	t.Parallel()
	ctrl := newController()
	assert.Equal(t, []entity.Kind{kindBox, kindOwner, kindTag}, ctrl.Kinds())
}
