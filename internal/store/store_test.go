package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	t.Parallel()

	doc := Document{IDField: "1", "name": "r1", "n": int64(4), "ref": nil}

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{name: "empty filter", filter: Filter{}, want: true},
		{name: "equality", filter: Filter{"name": "r1"}, want: true},
		{name: "mismatch", filter: Filter{"name": "r2"}, want: false},
		{name: "int vs float", filter: Filter{"n": 4.0}, want: true},
		{name: "nil matches nil", filter: Filter{"ref": nil}, want: true},
		{name: "missing field matches nil", filter: Filter{"other": nil}, want: true},
		{name: "nil does not match value", filter: Filter{"name": nil}, want: false},
		{name: "not equal", filter: Filter{IDField: Ne("2")}, want: true},
		{name: "not equal on self", filter: Filter{IDField: Ne("1")}, want: false},
		{name: "string is not a number", filter: Filter{"n": "4"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Match(doc, tt.filter))
		})
	}
}

func TestNumber(t *testing.T) {
	t.Parallel()

	n, err := Number(int32(7))
	require.NoError(t, err)
	assert.InDelta(t, 7.0, n, 0)

	n, err = Number(nil)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = Number("7")
	assert.ErrorIs(t, err, ErrNotNumeric)
}
