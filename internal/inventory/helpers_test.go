package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/parts-inventory/internal/entity"
	"github.com/you-humble/parts-inventory/internal/inventory"
	m "github.com/you-humble/parts-inventory/internal/model"
	"github.com/you-humble/parts-inventory/internal/store/memory"
)

// env is an inventory over a memory store with a clock that ticks one second per read.
type env struct {
	t    *testing.T
	ctx  context.Context
	ctrl *entity.Controller
	tick int64
}

func newEnv(t *testing.T) *env {
	t.Helper()
	e := &env{t: t, ctx: context.Background(), tick: 1_000}
	e.ctrl = inventory.New(memory.NewStore(), inventory.WithClock(func() time.Time {
		e.tick++
		return time.Unix(e.tick, 0)
	}))
	return e
}

func (e *env) save(kind entity.Kind, values map[string]any) *entity.Record {
	e.t.Helper()
	r, err := e.ctrl.New(kind, values)
	require.NoError(e.t, err)
	require.NoError(e.t, e.ctrl.Save(e.ctx, r))
	return r
}

// try saves a new record and returns the error instead of failing.
func (e *env) try(kind entity.Kind, values map[string]any) (*entity.Record, error) {
	e.t.Helper()
	r, err := e.ctrl.New(kind, values)
	require.NoError(e.t, err)
	return r, e.ctrl.Save(e.ctx, r)
}

func (e *env) get(kind entity.Kind, id string) *entity.Record {
	e.t.Helper()
	r, err := e.ctrl.Get(e.ctx, kind, id)
	require.NoError(e.t, err)
	return r
}

func (e *env) view(r *entity.Record) map[string]any {
	e.t.Helper()
	fresh := e.get(r.Kind(), r.ID())
	require.True(e.t, fresh.Exists())
	doc, err := e.ctrl.View(e.ctx, fresh)
	require.NoError(e.t, err)
	return doc
}

func (e *env) count(kind entity.Kind) int {
	e.t.Helper()
	all, err := e.ctrl.All(e.ctx, kind)
	require.NoError(e.t, err)
	return len(all)
}

func (e *env) unit() *entity.Record {
	return e.save(m.KindUnit, map[string]any{m.FieldName: gofakeit.UUID()})
}

func (e *env) category() *entity.Record {
	return e.save(m.KindCategory, map[string]any{m.FieldName: gofakeit.Word()})
}

func (e *env) part() *entity.Record {
	return e.save(m.KindPart, map[string]any{
		m.FieldName:     gofakeit.ProductName(),
		m.FieldUnit:     e.unit().ID(),
		m.FieldCategory: e.category().ID(),
	})
}

func (e *env) storageLocation() *entity.Record {
	return e.save(m.KindStorageLocation, map[string]any{m.FieldName: gofakeit.Word()})
}

func (e *env) partLocation(part *entity.Record) *entity.Record {
	return e.save(m.KindPartLocation, map[string]any{
		m.FieldPart:            part.ID(),
		m.FieldStorageLocation: e.storageLocation().ID(),
	})
}

func (e *env) distributor() *entity.Record {
	return e.save(m.KindDistributor, map[string]any{m.FieldName: gofakeit.UUID()})
}

func (e *env) order(part *entity.Record, amount int64, price float64) *entity.Record {
	return e.save(m.KindOrder, map[string]any{
		m.FieldPart:   part.ID(),
		m.FieldAmount: amount,
		m.FieldPrice:  price,
	})
}

func (e *env) change(pl *entity.Record, amount int64, price float64) *entity.Record {
	return e.save(m.KindStockChange, map[string]any{
		m.FieldPartLocation: pl.ID(),
		m.FieldAmount:       amount,
		m.FieldPrice:        price,
	})
}

func (e *env) receive(pl, ord *entity.Record, amount int64) *entity.Record {
	return e.save(m.KindStockChange, map[string]any{
		m.FieldPartLocation: pl.ID(),
		m.FieldOrder:        ord.ID(),
		m.FieldAmount:       amount,
	})
}

func fieldErrors(t *testing.T, err error) entity.Errors {
	t.Helper()
	var verr *entity.ValidationError
	require.ErrorAs(t, err, &verr)
	return verr.Fields
}
