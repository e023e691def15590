package ledger

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/you-humble/parts-inventory/internal/model"
	"github.com/you-humble/parts-inventory/internal/store"
)

// Ledger answers stock questions straight from the store. It holds no state of its
// own; callers memoize results where they need to.
type Ledger struct {
	store store.Store
}

func New(s store.Store) *Ledger {
	return &Ledger{store: s}
}

// Movements returns the entries of a PartLocation in creation order.
func (l *Ledger) Movements(ctx context.Context, partLocationID string) ([]Entry, error) {
	const op = "ledger.Movements"

	docs, err := l.store.SearchMany(ctx, string(model.KindStockChange), store.Filter{
		model.FieldPartLocation: partLocationID,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	entries := make([]Entry, 0, len(docs))
	for _, d := range docs {
		e, err := EntryFromDocument(d)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		entries = append(entries, e)
	}
	return Sorted(entries), nil
}

func (l *Ledger) LocationLevel(ctx context.Context, partLocationID string) (int64, error) {
	const op = "ledger.LocationLevel"

	sum, err := l.store.Sum(ctx, string(model.KindStockChange), model.FieldAmount, store.Filter{
		model.FieldPartLocation: partLocationID,
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int64(sum), nil
}

func (l *Ledger) LocationValue(ctx context.Context, partLocationID string) (decimal.Decimal, error) {
	entries, err := l.Movements(ctx, partLocationID)
	if err != nil {
		return decimal.Zero, err
	}
	return Value(entries), nil
}

func (l *Ledger) PartLevel(ctx context.Context, partID string) (int64, error) {
	const op = "ledger.PartLevel"

	ids, err := l.partLocations(ctx, partID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var level int64
	for _, id := range ids {
		n, err := l.LocationLevel(ctx, id)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
		level += n
	}
	return level, nil
}

// PartValue sums the valuations of every location of the part.
func (l *Ledger) PartValue(ctx context.Context, partID string) (decimal.Decimal, error) {
	const op = "ledger.PartValue"

	ids, err := l.partLocations(ctx, partID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", op, err)
	}

	total := decimal.Zero
	for _, id := range ids {
		v, err := l.LocationValue(ctx, id)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%s: %w", op, err)
		}
		total = total.Add(v)
	}
	return total, nil
}

// OrderReceived sums the entries linked to an order, skipping excludeID when set.
func (l *Ledger) OrderReceived(ctx context.Context, orderID, excludeID string) (int64, error) {
	const op = "ledger.OrderReceived"

	filter := store.Filter{model.FieldOrder: orderID}
	if excludeID != "" {
		filter[store.IDField] = store.Ne(excludeID)
	}

	sum, err := l.store.Sum(ctx, string(model.KindStockChange), model.FieldAmount, filter)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int64(sum), nil
}

// OrderCompleted reports whether the linked entries cover the ordered amount.
func (l *Ledger) OrderCompleted(ctx context.Context, orderID string, orderAmount int64) (bool, error) {
	received, err := l.OrderReceived(ctx, orderID, "")
	if err != nil {
		return false, err
	}
	return received >= orderAmount, nil
}

func (l *Ledger) PartHasOpenOrders(ctx context.Context, partID string) (bool, error) {
	const op = "ledger.PartHasOpenOrders"

	orders, err := l.store.SearchMany(ctx, string(model.KindOrder), store.Filter{
		model.FieldPart: partID,
	})
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	for _, o := range orders {
		amount, err := store.Number(o[model.FieldAmount])
		if err != nil {
			return false, fmt.Errorf("%s: %w", op, err)
		}
		done, err := l.OrderCompleted(ctx, o.ID(), int64(amount))
		if err != nil {
			return false, fmt.Errorf("%s: %w", op, err)
		}
		if !done {
			return true, nil
		}
	}
	return false, nil
}

// Balanced checks candidate against the current entries of its location. An entry that
// is being edited is matched by its identity.
func (l *Ledger) Balanced(ctx context.Context, partLocationID string, candidate Entry) (bool, error) {
	entries, err := l.Movements(ctx, partLocationID)
	if err != nil {
		return false, err
	}
	return CheckBalance(entries, candidate), nil
}

// BalancedWithout checks that the entry entryID can leave its location.
func (l *Ledger) BalancedWithout(ctx context.Context, partLocationID, entryID string) (bool, error) {
	entries, err := l.Movements(ctx, partLocationID)
	if err != nil {
		return false, err
	}
	return CheckRemoval(entries, entryID), nil
}

// PartOfLocation returns the part stored at a PartLocation or "" when the location is
// gone.
func (l *Ledger) PartOfLocation(ctx context.Context, partLocationID string) (string, error) {
	const op = "ledger.PartOfLocation"

	doc, err := l.store.Get(ctx, string(model.KindPartLocation), partLocationID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if doc == nil {
		return "", nil
	}
	partID, _ := doc[model.FieldPart].(string)
	return partID, nil
}

func (l *Ledger) partLocations(ctx context.Context, partID string) ([]string, error) {
	docs, err := l.store.SearchMany(ctx, string(model.KindPartLocation), store.Filter{
		model.FieldPart: partID,
	})
	if err != nil {
		return nil, err
	}
	return lo.Map(docs, func(d store.Document, _ int) string { return d.ID() }), nil
}

// EntryFromDocument reads a persisted StockChange.
func EntryFromDocument(doc store.Document) (Entry, error) {
	amount, err := store.Number(doc[model.FieldAmount])
	if err != nil {
		return Entry{}, fmt.Errorf("amount: %w", err)
	}
	price, err := store.Number(doc[model.FieldPrice])
	if err != nil {
		return Entry{}, fmt.Errorf("price: %w", err)
	}

	e := Entry{
		ID:     doc.ID(),
		Amount: int64(amount),
		Price:  decimal.NewFromFloat(price),
	}
	if doc[model.FieldCreatedAt] != nil {
		ts, err := store.Number(doc[model.FieldCreatedAt])
		if err != nil {
			return Entry{}, fmt.Errorf("created_at: %w", err)
		}
		e.CreatedAt = lo.ToPtr(int64(ts))
	}
	e.OrderID, _ = doc[model.FieldOrder].(string)
	return e, nil
}
