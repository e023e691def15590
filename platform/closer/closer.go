package closer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type namedFunc struct {
	name string
	fn   func(context.Context) error
}

type closer struct {
	mu     sync.Mutex
	funcs  []namedFunc
	logger Logger
	done   bool
}

var global = &closer{}

func SetLogger(l Logger) {
	global.mu.Lock()
	global.logger = l
	global.mu.Unlock()
}

func Add(fn func(context.Context) error) { AddNamed("", fn) }

func AddNamed(name string, fn func(context.Context) error) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.funcs = append(global.funcs, namedFunc{name: name, fn: fn})
}

// CloseAll runs registered closers in reverse order. It is safe to call more than once.
func CloseAll(ctx context.Context) error {
	global.mu.Lock()
	if global.done {
		global.mu.Unlock()
		return nil
	}
	global.done = true
	funcs := global.funcs
	global.funcs = nil
	log := global.logger
	global.mu.Unlock()

	var errs []error
	for i := len(funcs) - 1; i >= 0; i-- {
		f := funcs[i]
		if err := f.fn(ctx); err != nil {
			if log != nil {
				log.Error(ctx, "failed to close", zap.String("name", f.name), zap.Error(err))
			}
			errs = append(errs, fmt.Errorf("%s: %w", f.name, err))
			continue
		}
		if log != nil && f.name != "" {
			log.Info(ctx, "closed", zap.String("name", f.name))
		}
	}

	return errors.Join(errs...)
}
