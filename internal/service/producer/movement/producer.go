package movement

import (
	"context"
	"fmt"

	"github.com/you-humble/parts-inventory/internal/entity"
	"github.com/you-humble/parts-inventory/internal/model"
	"github.com/you-humble/parts-inventory/platform/kafka"
	"github.com/you-humble/parts-inventory/platform/logger"
)

type Converter interface {
	EventToMovement(ev entity.Event) (model.StockMovement, error)
	MovementToPayload(m model.StockMovement) ([]byte, error)
}

// LocationReader resolves what the event document alone does not carry.
type LocationReader interface {
	LocationLevel(ctx context.Context, partLocationID string) (int64, error)
	PartOfLocation(ctx context.Context, partLocationID string) (string, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
	reader   LocationReader
}

func NewMovementProducer(producer kafka.Producer, conv Converter, reader LocationReader) *service {
	return &service{producer: producer, conv: conv, reader: reader}
}

func (s *service) SendMovement(ctx context.Context, event model.StockMovement) error {
	payload, err := s.conv.MovementToPayload(event)
	if err != nil {
		return fmt.Errorf("converter movement_to_payload error: %w", err)
	}

	if err := s.producer.Send(ctx, []byte(event.PartLocationID), payload); err != nil {
		return fmt.Errorf("producer to stock movement topic error: %w", err)
	}

	return nil
}

// Observe publishes every stock change event. Failures are logged and swallowed: the
// ledger entry is already persisted.
func (s *service) Observe(ctx context.Context, ev entity.Event) {
	if ev.Kind != model.KindStockChange {
		return
	}

	log := logger.With(
		logger.String("stock_change_id", ev.ID),
		logger.String("op", string(ev.Op)),
	)

	mv, err := s.conv.EventToMovement(ev)
	if err != nil {
		log.Error(ctx, "convert stock change event", logger.ErrorF(err))
		return
	}

	if mv.PartID, err = s.reader.PartOfLocation(ctx, mv.PartLocationID); err != nil {
		log.Error(ctx, "resolve part of location", logger.ErrorF(err))
		return
	}
	if mv.LocationLevel, err = s.reader.LocationLevel(ctx, mv.PartLocationID); err != nil {
		log.Error(ctx, "read location level", logger.ErrorF(err))
		return
	}

	if err := s.SendMovement(ctx, mv); err != nil {
		log.Error(ctx, "send stock movement", logger.ErrorF(err))
	}
}
