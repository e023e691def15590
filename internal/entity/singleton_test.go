package entity_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/parts-inventory/internal/entity"
	"github.com/you-humble/parts-inventory/internal/store"
)

type primaryTag struct {
	entity.Singleton
}

func (primaryTag) Schema() *entity.Schema { return tagSchema }

func newSingletonController() *entity.Controller {
	ctrl := newController()
	ctrl.Register(primaryTag{entity.Singleton{Ctrl: ctrl, Kind: kindTag, Flag: "primary"}})
	return ctrl
}

func flagged(t *testing.T, ctrl *entity.Controller) []string {
	t.Helper()
	recs, err := ctrl.Find(context.Background(), kindTag, store.Filter{"primary": true})
	require.NoError(t, err)

	ids := make([]string, 0, len(recs))
	for _, r := range recs {
		ids = append(ids, r.ID())
	}
	return ids
}

func TestSingleton(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("first record is flagged", func(t *testing.T) {
		t.Parallel()
		ctrl := newSingletonController()
		box := mustSave(ctx, ctrl, kindBox, map[string]any{"name": "b"})

		first := mustSave(ctx, ctrl, kindTag, map[string]any{"box_id": box.ID()})
		assert.True(t, first.Bool("primary"))

		mustSave(ctx, ctrl, kindTag, map[string]any{"box_id": box.ID()})
		assert.Equal(t, []string{first.ID()}, flagged(t, ctrl))
	})

	t.Run("flagging another moves the flag", func(t *testing.T) {
		t.Parallel()
		ctrl := newSingletonController()
		box := mustSave(ctx, ctrl, kindBox, map[string]any{"name": "b"})

		mustSave(ctx, ctrl, kindTag, map[string]any{"box_id": box.ID()})
		second := mustSave(ctx, ctrl, kindTag, map[string]any{"box_id": box.ID(), "primary": true})

		assert.Equal(t, []string{second.ID()}, flagged(t, ctrl))
	})

	t.Run("clearing the only flag is undone", func(t *testing.T) {
		t.Parallel()
		ctrl := newSingletonController()
		box := mustSave(ctx, ctrl, kindBox, map[string]any{"name": "b"})

		only := mustSave(ctx, ctrl, kindTag, map[string]any{"box_id": box.ID()})
		only.Set("primary", false)
		require.NoError(t, ctrl.Save(ctx, only))

		assert.True(t, only.Bool("primary"))
		assert.Equal(t, []string{only.ID()}, flagged(t, ctrl))
	})

	t.Run("deleting the flagged record promotes a survivor", func(t *testing.T) {
		t.Parallel()
		ctrl := newSingletonController()
		box := mustSave(ctx, ctrl, kindBox, map[string]any{"name": "b"})

		first := mustSave(ctx, ctrl, kindTag, map[string]any{"box_id": box.ID()})
		second := mustSave(ctx, ctrl, kindTag, map[string]any{"box_id": box.ID()})

		require.NoError(t, ctrl.Delete(ctx, first))
		assert.Equal(t, []string{second.ID()}, flagged(t, ctrl))

		require.NoError(t, ctrl.Delete(ctx, second))
		assert.Empty(t, flagged(t, ctrl))
	})

	t.Run("deleting an unflagged record keeps the flag", func(t *testing.T) {
		t.Parallel()
		ctrl := newSingletonController()
		box := mustSave(ctx, ctrl, kindBox, map[string]any{"name": "b"})

		first := mustSave(ctx, ctrl, kindTag, map[string]any{"box_id": box.ID()})
		second := mustSave(ctx, ctrl, kindTag, map[string]any{"box_id": box.ID()})

		require.NoError(t, ctrl.Delete(ctx, second))
		assert.Equal(t, []string{first.ID()}, flagged(t, ctrl))
	})

	t.Run("cascade over several members leaves one flagged", func(t *testing.T) {
		t.Parallel()
		ctrl := newSingletonController()
		ctrl.Rules().Register(kindBox, entity.Rule{Dependent: kindTag, Field: "box_id", Action: entity.Cascade})

		doomed := mustSave(ctx, ctrl, kindBox, map[string]any{"name": "a"})
		kept := mustSave(ctx, ctrl, kindBox, map[string]any{"name": "b"})
		mustSave(ctx, ctrl, kindTag, map[string]any{"box_id": doomed.ID()})
		mustSave(ctx, ctrl, kindTag, map[string]any{"box_id": doomed.ID()})
		survivor := mustSave(ctx, ctrl, kindTag, map[string]any{"box_id": kept.ID()})

		require.NoError(t, ctrl.Delete(ctx, doomed))

		left, err := ctrl.All(ctx, kindTag)
		require.NoError(t, err)
		require.Len(t, left, 1)
		assert.Equal(t, []string{survivor.ID()}, flagged(t, ctrl))
	})

	t.Run("deleting a stale unflagged copy still promotes", func(t *testing.T) {
		t.Parallel()
		ctrl := newSingletonController()
		box := mustSave(ctx, ctrl, kindBox, map[string]any{"name": "b"})

		first := mustSave(ctx, ctrl, kindTag, map[string]any{"box_id": box.ID()})
		second := mustSave(ctx, ctrl, kindTag, map[string]any{"box_id": box.ID()})
		stale, err := ctrl.Get(ctx, kindTag, second.ID())
		require.NoError(t, err)
		require.False(t, stale.Bool("primary"))

		require.NoError(t, ctrl.Delete(ctx, first))
		require.Equal(t, []string{second.ID()}, flagged(t, ctrl))

		third := mustSave(ctx, ctrl, kindTag, map[string]any{"box_id": box.ID()})
		require.NoError(t, ctrl.Delete(ctx, stale))

		assert.Equal(t, []string{third.ID()}, flagged(t, ctrl))
	})
}
