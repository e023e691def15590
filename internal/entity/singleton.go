package entity

import (
	"context"
	"fmt"

	"github.com/you-humble/parts-inventory/internal/store"
)

// Singleton keeps exactly one record of Kind with Flag set, as long as the kind has
// any records at all. Definitions embed it to get the three hooks.
type Singleton struct {
	Ctrl *Controller
	Kind Kind
	Flag string
}

// PreSave flags r when no other record carries the flag. Clearing the flag on the
// only flagged record is therefore undone.
func (s Singleton) PreSave(ctx context.Context, r *Record) error {
	if r.Bool(s.Flag) {
		return nil
	}

	other, err := s.Ctrl.Store().SearchOne(ctx, string(s.Kind), store.Filter{
		s.Flag:        true,
		store.IDField: store.Ne(r.ID()),
	})
	if err != nil {
		return fmt.Errorf("singleton %s.%s: %w", s.Kind, s.Flag, err)
	}
	if other == nil {
		r.Set(s.Flag, true)
	}
	return nil
}

// PostSave clears the flag on every other record once r holds it.
func (s Singleton) PostSave(ctx context.Context, r *Record) error {
	if !r.Bool(s.Flag) {
		return nil
	}

	err := s.Ctrl.Store().UpdateMany(ctx, string(s.Kind),
		store.Filter{s.Flag: true, store.IDField: store.Ne(r.ID())},
		store.Patch{s.Flag: false},
	)
	if err != nil {
		return fmt.Errorf("singleton %s.%s: %w", s.Kind, s.Flag, err)
	}
	return nil
}

// PostDelete promotes a survivor when no record carries the flag any more. The deleted
// document may be a stale copy, so its own flag is not trusted.
func (s Singleton) PostDelete(ctx context.Context, _ store.Document) error {
	survivor, err := s.Ctrl.Store().SearchOne(ctx, string(s.Kind), store.Filter{s.Flag: true})
	if err != nil {
		return fmt.Errorf("singleton %s.%s: %w", s.Kind, s.Flag, err)
	}
	if survivor != nil {
		return nil
	}

	survivor, err = s.Ctrl.Store().SearchOne(ctx, string(s.Kind), store.Filter{})
	if err != nil {
		return fmt.Errorf("singleton %s.%s: %w", s.Kind, s.Flag, err)
	}
	if survivor == nil {
		return nil
	}

	rec, err := s.Ctrl.Get(ctx, s.Kind, survivor.ID())
	if err != nil {
		return err
	}
	rec.Set(s.Flag, true)
	return s.Ctrl.Save(ctx, rec)
}
