package entity

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

var (
	ErrValidation  = errors.New("validation error")
	ErrRestricted  = errors.New("restricted")
	ErrNotFound    = errors.New("record not found")
	ErrUnknownKind = errors.New("unknown entity kind")
)

// Errors maps a field name to a human-readable message.
type Errors map[string]string

// Add records msg for field unless the field already has an error.
func (e Errors) Add(field, msg string) {
	if _, ok := e[field]; ok {
		return
	}
	e[field] = msg
}

func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

type ValidationError struct {
	Kind   Kind
	Fields Errors
}

func (e *ValidationError) Error() string {
	keys := lo.Keys(e.Fields)
	slices.Sort(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return fmt.Sprintf("%s %s: %s", ErrValidation, e.Kind, strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// RestrictedError vetoes a delete because a dependent record still references it.
type RestrictedError struct {
	Kind      Kind
	ID        string
	Dependent Kind
	Field     string
}

func (e *RestrictedError) Error() string {
	return fmt.Sprintf("%s '%s' can't be deleted, still referenced by %s.%s",
		e.Kind, e.ID, e.Dependent, e.Field)
}

func (e *RestrictedError) Is(target error) bool { return target == ErrRestricted }
