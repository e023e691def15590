package converter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/you-humble/parts-inventory/internal/store"
)

// ValuesFromJSON decodes a request body into field values. Numbers stay json.Number so
// the schema decides between int and float. The identity field is dropped.
func ValuesFromJSON(r io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var values map[string]any
	if err := dec.Decode(&values); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("decode body: %w", err)
	}
	if values == nil {
		values = map[string]any{}
	}
	delete(values, store.IDField)
	return values, nil
}

// ValuesFromBytes is ValuesFromJSON over an in-memory payload.
func ValuesFromBytes(b []byte) (map[string]any, error) {
	return ValuesFromJSON(bytes.NewReader(b))
}
