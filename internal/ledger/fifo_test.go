package ledger_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/you-humble/parts-inventory/internal/ledger"
)

func entry(id string, amount int64, price string, ts *int64) ledger.Entry {
	return ledger.Entry{
		ID:        id,
		Amount:    amount,
		Price:     decimal.RequireFromString(price),
		CreatedAt: ts,
	}
}

func TestSorted(t *testing.T) {
	t.Parallel()

	in := []ledger.Entry{
		entry("none", 1, "0", nil),
		entry("late", 1, "0", lo.ToPtr(int64(30))),
		entry("early", 1, "0", lo.ToPtr(int64(10))),
		entry("tie", 1, "0", lo.ToPtr(int64(30))),
	}

	got := lo.Map(ledger.Sorted(in), func(e ledger.Entry, _ int) string { return e.ID })
	assert.Equal(t, []string{"early", "late", "tie", "none"}, got)
	assert.Equal(t, "none", in[0].ID)
}

func TestValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []ledger.Entry
		want    string
	}{
		{
			name:    "empty",
			entries: nil,
			want:    "0",
		},
		{
			name: "partial consumption of the oldest addition",
			entries: []ledger.Entry{
				entry("a", 5, "0.5", nil),
				entry("b", -4, "0", nil),
			},
			want: "0.1",
		},
		{
			name: "removal spans several additions",
			entries: []ledger.Entry{
				entry("a", 2, "2", nil),
				entry("b", 4, "8", nil),
				entry("c", -3, "0", nil),
			},
			want: "6",
		},
		{
			name: "removal before a later addition still hits the oldest",
			entries: []ledger.Entry{
				entry("a", 10, "10", nil),
				entry("b", -5, "0", nil),
				entry("c", 10, "30", nil),
			},
			want: "35",
		},
		{
			name: "everything removed",
			entries: []ledger.Entry{
				entry("a", 3, "9", nil),
				entry("b", -3, "0", nil),
			},
			want: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ledger.Value(tt.entries)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestLevel(t *testing.T) {
	t.Parallel()
	assert.Equal(t, int64(3), ledger.Level([]ledger.Entry{
		entry("a", 5, "0", nil),
		entry("b", -4, "0", nil),
		entry("c", 2, "0", nil),
	}))
}

func TestLinkedPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		orderPrice  string
		orderAmount int64
		amount      int64
		want        string
	}{
		{name: "first order", orderPrice: "1.0", orderAmount: 10, amount: 2, want: "0.2"},
		{name: "second order", orderPrice: "2.0", orderAmount: 10, amount: 2, want: "0.4"},
		{name: "thirds", orderPrice: "1", orderAmount: 3, amount: 3, want: "1"},
		{name: "zero order amount", orderPrice: "5", orderAmount: 0, amount: 1, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ledger.LinkedPrice(decimal.RequireFromString(tt.orderPrice), tt.orderAmount, tt.amount)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestCheckBalance(t *testing.T) {
	t.Parallel()

	ts := func(v int64) *int64 { return &v }

	tests := []struct {
		name      string
		history   []ledger.Entry
		candidate ledger.Entry
		want      bool
	}{
		{
			name:      "addition to empty location",
			candidate: entry("c", 5, "0", ts(1)),
			want:      true,
		},
		{
			name:      "removal from empty location",
			candidate: entry("c", -1, "0", ts(1)),
			want:      false,
		},
		{
			name:      "removal within stock",
			history:   []ledger.Entry{entry("a", 5, "0", ts(1))},
			candidate: entry("c", -5, "0", ts(2)),
			want:      true,
		},
		{
			name:      "removal dated before the addition",
			history:   []ledger.Entry{entry("a", 5, "0", ts(10))},
			candidate: entry("c", -1, "0", ts(5)),
			want:      false,
		},
		{
			name: "back-dated addition covering a later removal",
			history: []ledger.Entry{
				entry("a", 1, "0", ts(10)),
				entry("b", -1, "0", ts(20)),
			},
			candidate: entry("c", 3, "0", ts(5)),
			want:      true,
		},
		{
			name: "history already negative and candidate does not worsen it",
			history: []ledger.Entry{
				entry("a", -2, "0", ts(1)),
			},
			candidate: entry("c", 1, "0", ts(2)),
			want:      true,
		},
		{
			name: "history already negative and candidate deepens it",
			history: []ledger.Entry{
				entry("a", -2, "0", ts(1)),
			},
			candidate: entry("c", -1, "0", ts(2)),
			want:      false,
		},
		{
			name: "edited entry replaces its stored version",
			history: []ledger.Entry{
				entry("a", 5, "0", ts(1)),
				entry("b", -3, "0", ts(2)),
			},
			candidate: entry("a", 2, "0", ts(1)),
			want:      false,
		},
		{
			name: "undated candidate goes last",
			history: []ledger.Entry{
				entry("a", 2, "0", ts(1)),
			},
			candidate: entry("c", -2, "0", nil),
			want:      true,
		},
		{
			name: "edited entry keeps its place among equal timestamps",
			history: []ledger.Entry{
				entry("a", -1, "0", ts(1)),
				entry("b", 1, "0", ts(1)),
				entry("c", 1, "0", ts(1)),
			},
			candidate: entry("a", -2, "0", ts(1)),
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ledger.CheckBalance(tt.history, tt.candidate))
		})
	}
}

func TestCheckRemoval(t *testing.T) {
	t.Parallel()

	ts := func(v int64) *int64 { return &v }

	tests := []struct {
		name    string
		history []ledger.Entry
		id      string
		want    bool
	}{
		{
			name:    "only entry",
			history: []ledger.Entry{entry("a", 5, "0", ts(1))},
			id:      "a",
			want:    true,
		},
		{
			name: "addition covering a later removal",
			history: []ledger.Entry{
				entry("a", 5, "0", ts(1)),
				entry("b", -5, "0", ts(2)),
			},
			id:   "a",
			want: false,
		},
		{
			name: "removal leaves",
			history: []ledger.Entry{
				entry("a", 5, "0", ts(1)),
				entry("b", -5, "0", ts(2)),
			},
			id:   "b",
			want: true,
		},
		{
			name: "surplus addition leaves",
			history: []ledger.Entry{
				entry("a", 5, "0", ts(1)),
				entry("b", 2, "0", ts(2)),
				entry("c", -5, "0", ts(3)),
			},
			id:   "b",
			want: true,
		},
		{
			name: "unknown identity changes nothing",
			history: []ledger.Entry{
				entry("a", -1, "0", ts(1)),
			},
			id:   "zz",
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ledger.CheckRemoval(tt.history, tt.id))
		})
	}
}
