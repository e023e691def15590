package converter

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/you-humble/parts-inventory/internal/entity"
	"github.com/you-humble/parts-inventory/internal/ledger"
	"github.com/you-humble/parts-inventory/internal/model"
)

type stockMovementRecord struct {
	EventUUID      string          `json:"event_uuid"`
	Op             string          `json:"op"`
	StockChangeID  string          `json:"stock_change_id"`
	PartLocationID string          `json:"part_location_id"`
	PartID         string          `json:"part_id"`
	OrderID        *string         `json:"order_id,omitempty"`
	Amount         int64           `json:"amount"`
	Price          decimal.Decimal `json:"price"`
	CreatedAt      time.Time       `json:"created_at"`
	LocationLevel  int64           `json:"location_level"`
}

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

// EventToMovement builds a movement from a StockChange lifecycle event. Updates are
// reported as recorded movements.
func (c *kafkaConverter) EventToMovement(ev entity.Event) (model.StockMovement, error) {
	if ev.Kind != model.KindStockChange {
		return model.StockMovement{}, fmt.Errorf("%w: %s is not a stock change", model.ErrInvalidArgument, ev.Kind)
	}

	e, err := ledger.EntryFromDocument(ev.Document)
	if err != nil {
		return model.StockMovement{}, fmt.Errorf("stock change %s: %w", ev.ID, err)
	}

	mv := model.StockMovement{
		EventID:       uuid.New(),
		Op:            model.MovementRecorded,
		StockChangeID: ev.ID,
		Amount:        e.Amount,
		Price:         e.Price,
	}
	if ev.Op == entity.OpDeleted {
		mv.Op = model.MovementRemoved
	}
	mv.PartLocationID, _ = ev.Document[model.FieldPartLocation].(string)
	if e.OrderID != "" {
		mv.OrderID = &e.OrderID
	}
	if e.CreatedAt != nil {
		mv.CreatedAt = *e.CreatedAt
	}
	return mv, nil
}

func (c *kafkaConverter) MovementToPayload(m model.StockMovement) ([]byte, error) {
	rec := stockMovementRecord{
		EventUUID:      m.EventID.String(),
		Op:             string(m.Op),
		StockChangeID:  m.StockChangeID,
		PartLocationID: m.PartLocationID,
		PartID:         m.PartID,
		OrderID:        m.OrderID,
		Amount:         m.Amount,
		Price:          m.Price,
		CreatedAt:      time.Unix(m.CreatedAt, 0).UTC(),
		LocationLevel:  m.LocationLevel,
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal stock movement: %w", err)
	}
	return payload, nil
}
