package entity

import (
	"context"

	"github.com/you-humble/parts-inventory/internal/store"
)

// Definition describes one entity kind. Hooks are picked up through the optional
// interfaces below.
type Definition interface {
	Schema() *Schema
}

// Validator adds kind-specific checks after the schema checks.
// Fields that already carry a schema error must be skipped or left to errs.Add.
type Validator interface {
	Validate(ctx context.Context, r *Record, errs Errors) error
}

type PreSaver interface {
	PreSave(ctx context.Context, r *Record) error
}

type PostSaver interface {
	PostSave(ctx context.Context, r *Record) error
}

// PreDeleter may veto a delete by returning a *RestrictedError or a *ValidationError.
type PreDeleter interface {
	PreDelete(ctx context.Context, r *Record) error
}

// PostDeleter runs after the document is gone; old is its last persisted state.
type PostDeleter interface {
	PostDelete(ctx context.Context, old store.Document) error
}

// Computer derives read-only fields merged into View. They are never persisted.
type Computer interface {
	Computed(ctx context.Context, r *Record) (map[string]any, error)
}

type Op string

const (
	OpCreated Op = "created"
	OpUpdated Op = "updated"
	OpDeleted Op = "deleted"
)

// Event describes a completed lifecycle transition.
type Event struct {
	Kind     Kind
	ID       string
	Op       Op
	Document store.Document
}

// Observer is notified after every successful save and delete, cascades included.
type Observer func(ctx context.Context, ev Event)
