package record

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/you-humble/parts-inventory/internal/entity"
	"github.com/you-humble/parts-inventory/internal/model"
	"github.com/you-humble/parts-inventory/internal/store"
	"github.com/you-humble/parts-inventory/platform/logger"
)

type Controller interface {
	New(kind entity.Kind, values map[string]any) (*entity.Record, error)
	Get(ctx context.Context, kind entity.Kind, id string) (*entity.Record, error)
	All(ctx context.Context, kind entity.Kind) ([]*entity.Record, error)
	Save(ctx context.Context, r *entity.Record) error
	Delete(ctx context.Context, r *entity.Record) error
	View(ctx context.Context, r *entity.Record) (store.Document, error)
}

type service struct {
	ctrl           Controller
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewRecordService(
	ctrl Controller,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		ctrl:           ctrl,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

func (s *service) List(ctx context.Context, kind entity.Kind) ([]store.Document, error) {
	const op = "record.service.List"
	log := logger.With(logger.String("kind", string(kind)))

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	recs, err := s.ctrl.All(ctx, kind)
	if err != nil {
		logFailure(ctx, log, "controller all", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]store.Document, 0, len(recs))
	for _, r := range recs {
		doc, err := s.ctrl.View(ctx, r)
		if err != nil {
			log.Error(ctx, "controller view", logger.String("id", r.ID()), logger.ErrorF(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		out = append(out, doc)
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, kind entity.Kind, id string) (store.Document, error) {
	const op = "record.service.Get"
	log := logger.With(
		logger.String("kind", string(kind)),
		logger.String("id", id),
	)

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	r, err := s.find(ctx, kind, id)
	if err != nil {
		logFailure(ctx, log, "find record", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	doc, err := s.ctrl.View(ctx, r)
	if err != nil {
		log.Error(ctx, "controller view", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return doc, nil
}

// Create saves a new record and returns its identity.
func (s *service) Create(ctx context.Context, kind entity.Kind, values map[string]any) (string, error) {
	const op = "record.service.Create"
	log := logger.With(logger.String("kind", string(kind)))

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	r, err := s.ctrl.New(kind, values)
	if err != nil {
		logFailure(ctx, log, "controller new", err)
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if err := s.ctrl.Save(ctx, r); err != nil {
		logFailure(ctx, log, "controller save", err)
		return "", fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "record created", logger.String("id", r.ID()))
	return r.ID(), nil
}

// Update applies values on top of the stored record and saves the result.
func (s *service) Update(ctx context.Context, kind entity.Kind, id string, values map[string]any) (string, error) {
	const op = "record.service.Update"
	log := logger.With(
		logger.String("kind", string(kind)),
		logger.String("id", id),
	)

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	r, err := s.find(ctx, kind, id)
	if err != nil {
		logFailure(ctx, log, "find record", err)
		return "", fmt.Errorf("%s: %w", op, err)
	}

	for k, v := range values {
		r.Set(k, v)
	}

	if err := s.ctrl.Save(ctx, r); err != nil {
		logFailure(ctx, log, "controller save", err)
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return r.ID(), nil
}

func (s *service) Delete(ctx context.Context, kind entity.Kind, id string) error {
	const op = "record.service.Delete"
	log := logger.With(
		logger.String("kind", string(kind)),
		logger.String("id", id),
	)

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	r, err := s.find(ctx, kind, id)
	if err != nil {
		logFailure(ctx, log, "find record", err)
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.ctrl.Delete(ctx, r); err != nil {
		logFailure(ctx, log, "controller delete", err)
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "record deleted")
	return nil
}

func (s *service) find(ctx context.Context, kind entity.Kind, id string) (*entity.Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.Join(model.ErrInvalidArgument, errors.New("id must be non-empty"))
	}

	r, err := s.ctrl.Get(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if !r.Exists() {
		return nil, fmt.Errorf("%w: id %s", model.ErrNotFound, id)
	}
	return r, nil
}

// logFailure keeps expected domain outcomes out of the error log.
func logFailure(ctx context.Context, log *logger.Logger, msg string, err error) {
	switch {
	case errors.Is(err, entity.ErrValidation),
		errors.Is(err, entity.ErrRestricted),
		errors.Is(err, entity.ErrUnknownKind),
		errors.Is(err, model.ErrNotFound),
		errors.Is(err, entity.ErrNotFound),
		errors.Is(err, model.ErrInvalidArgument):
		log.Warn(ctx, msg, logger.ErrorF(err))
	default:
		log.Error(ctx, msg, logger.ErrorF(err))
	}
}
