// Package entity implements the schema-driven record model: static per-kind schemas,
// records with identity and dirty tracking, the validation engine, the save/delete
// lifecycle with hooks, and the referential integrity registry consulted on delete.
package entity

import (
	"encoding/json"
	"math"
)

// Kind names an entity type. It doubles as the store collection name.
type Kind string

type Type int

const (
	TypeString Type = iota + 1
	TypeInt
	TypeFloat
	TypeBool
	// TypeRef holds the string identity of a record of Field.Ref.
	TypeRef
)

func (t Type) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeBool:
		return "bool"
	case TypeRef:
		return "reference"
	default:
		return "unknown"
	}
}

type Field struct {
	Name     string
	Type     Type
	Nullable bool
	Default  any
	Unique   bool
	Ref      Kind
}

type Schema struct {
	kind   Kind
	fields []Field
	index  map[string]int
}

func NewSchema(kind Kind, fields ...Field) *Schema {
	s := &Schema{
		kind:   kind,
		fields: fields,
		index:  make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		s.index[f.Name] = i
	}
	return s
}

func (s *Schema) Kind() Kind { return s.kind }

func (s *Schema) Fields() []Field { return s.fields }

func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Refs lists the reference fields, in declaration order.
func (s *Schema) Refs() []Field {
	out := make([]Field, 0)
	for _, f := range s.fields {
		if f.Type == TypeRef {
			out = append(out, f)
		}
	}
	return out
}

func (s *Schema) defaults() map[string]any {
	out := make(map[string]any, len(s.fields))
	for _, f := range s.fields {
		out[f.Name] = f.Default
	}
	return out
}

// coerce converts v to the canonical Go type of t: string, int64, float64 or bool.
// nil passes through; nullability is checked by the validator.
func coerce(t Type, v any) (any, bool) {
	if v == nil {
		return nil, true
	}

	switch t {
	case TypeString, TypeRef:
		s, ok := v.(string)
		return s, ok
	case TypeBool:
		b, ok := v.(bool)
		return b, ok
	case TypeInt:
		return coerceInt(v)
	case TypeFloat:
		return coerceFloat(v)
	default:
		return nil, false
	}
}

func coerceInt(v any) (any, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return nil, false
		}
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return nil, false
		}
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return nil, false
		}
		return i, true
	default:
		return nil, false
	}
}

func coerceFloat(v any) (any, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return nil, false
		}
		return f, true
	default:
		i, ok := coerceInt(v)
		if !ok {
			return nil, false
		}
		return float64(i.(int64)), true
	}
}
