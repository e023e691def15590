// Package ledger computes stock levels, FIFO cost-basis valuations and order
// fulfilment from StockChange entries.
package ledger

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"
)

// Entry is one signed stock movement of a PartLocation. Price is the total price of
// the movement, not a unit price.
type Entry struct {
	ID        string
	Amount    int64
	Price     decimal.Decimal
	CreatedAt *int64
	OrderID   string
}

// Sorted returns entries ordered by creation time. Ties keep their input order and
// entries without a timestamp go last.
func Sorted(entries []Entry) []Entry {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(a, b Entry) int {
		switch {
		case a.CreatedAt == nil && b.CreatedAt == nil:
			return 0
		case a.CreatedAt == nil:
			return 1
		case b.CreatedAt == nil:
			return -1
		default:
			return cmp.Compare(*a.CreatedAt, *b.CreatedAt)
		}
	})
	return out
}

func Level(entries []Entry) int64 {
	var level int64
	for _, e := range entries {
		level += e.Amount
	}
	return level
}

// Value is the remaining cost basis of entries, which must be in creation order.
// Removals consume the oldest additions first, whatever their own position.
func Value(entries []Entry) decimal.Decimal {
	var removed int64
	for _, e := range entries {
		if e.Amount < 0 {
			removed -= e.Amount
		}
	}

	result := decimal.Zero
	for _, e := range entries {
		if e.Amount <= 0 {
			continue
		}
		switch {
		case removed == 0:
			result = result.Add(e.Price)
		case removed >= e.Amount:
			removed -= e.Amount
		default:
			left := decimal.NewFromInt(e.Amount - removed)
			result = result.Add(e.Price.Mul(left).Div(decimal.NewFromInt(e.Amount)))
			removed = 0
		}
	}
	return result
}

// LinkedPrice is the share of an order's price covered by amount units.
func LinkedPrice(orderPrice decimal.Decimal, orderAmount, amount int64) decimal.Decimal {
	if orderAmount == 0 {
		return decimal.Zero
	}
	return orderPrice.Mul(decimal.NewFromInt(amount)).Div(decimal.NewFromInt(orderAmount))
}

// CheckBalance reports whether candidate can join history without driving the running
// level of the location below zero. A candidate with the identity of a history entry
// replaces it in place. A history that already dips below zero only rejects a
// candidate that makes the dip deeper.
func CheckBalance(history []Entry, candidate Entry) bool {
	next := slices.Clone(history)
	i := slices.IndexFunc(next, func(e Entry) bool { return candidate.ID != "" && e.ID == candidate.ID })
	if i >= 0 {
		next[i] = candidate
	} else {
		next = append(next, candidate)
	}
	return keepsBalance(history, next)
}

// CheckRemoval reports whether the entry with the given identity can leave history
// under the same rule CheckBalance applies to a new entry.
func CheckRemoval(history []Entry, id string) bool {
	next := slices.DeleteFunc(slices.Clone(history), func(e Entry) bool { return e.ID == id })
	return keepsBalance(history, next)
}

func keepsBalance(before, after []Entry) bool {
	without := minRunning(Sorted(before))
	with := minRunning(Sorted(after))
	return with >= 0 || with >= without
}

func minRunning(entries []Entry) int64 {
	var level, low int64
	for _, e := range entries {
		level += e.Amount
		low = min(low, level)
	}
	return low
}
