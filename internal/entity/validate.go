package entity

import (
	"context"
	"fmt"

	"github.com/you-humble/parts-inventory/internal/store"
)

const (
	MsgNotNull    = "must not be null"
	MsgUnique     = "must be unique"
	MsgUnknown    = "unknown attribute"
	MsgOwnID      = "can't be the own id"
	MsgCycle      = "can't create a cycle"
	MsgZero       = "can't be zero"
	MsgNegative   = "can't be negative"
	MsgOneOrMore  = "needs to be one or more"
	msgWrongType  = "wrong type, expected %s"
	msgMissingRef = "there is no %s with id '%s'"
)

func MsgMissingRef(kind Kind, id string) string {
	return fmt.Sprintf(msgMissingRef, kind, id)
}

// Validate runs the schema checks and then the kind's own checks, collecting every
// error in one pass. Coerced values are written back to the record.
func (c *Controller) Validate(ctx context.Context, r *Record) (Errors, error) {
	const op = "entity.Validate"

	def, err := c.Definition(r.Kind())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	errs := make(Errors)
	if err := c.validateSchema(ctx, r, errs); err != nil {
		return nil, fmt.Errorf("%s %s: %w", op, r.Kind(), err)
	}

	if v, ok := def.(Validator); ok {
		if err := v.Validate(ctx, r, errs); err != nil {
			return nil, fmt.Errorf("%s %s: %w", op, r.Kind(), err)
		}
	}

	return errs, nil
}

func (c *Controller) validateSchema(ctx context.Context, r *Record, errs Errors) error {
	s := r.schema

	for name := range r.values {
		if _, ok := s.Field(name); !ok {
			errs.Add(name, MsgUnknown)
		}
	}

	for _, f := range s.fields {
		v := r.values[f.Name]
		if v == nil {
			if !f.Nullable {
				errs.Add(f.Name, MsgNotNull)
			}
			continue
		}

		cv, ok := coerce(f.Type, v)
		if !ok {
			errs.Add(f.Name, fmt.Sprintf(msgWrongType, f.Type))
			continue
		}
		r.values[f.Name] = cv

		if f.Unique {
			dup, err := c.store.SearchOne(ctx, string(s.kind), store.Filter{
				f.Name:        cv,
				store.IDField: store.Ne(r.id),
			})
			if err != nil {
				return err
			}
			if dup != nil {
				errs.Add(f.Name, MsgUnique)
				continue
			}
		}

		if f.Type == TypeRef {
			id := cv.(string)
			// Self references are reported by the kind's own checks.
			if f.Ref == s.kind && id == r.id {
				continue
			}
			ok, err := c.store.Exists(ctx, string(f.Ref), id)
			if err != nil {
				return err
			}
			if !ok {
				errs.Add(f.Name, MsgMissingRef(f.Ref, id))
			}
		}
	}

	return nil
}
