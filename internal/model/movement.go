package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MovementOp string

const (
	MovementRecorded MovementOp = "RECORDED"
	MovementRemoved  MovementOp = "REMOVED"
)

// StockMovement is published whenever a ledger entry is recorded or removed.
type StockMovement struct {
	EventID        uuid.UUID
	Op             MovementOp
	StockChangeID  string
	PartLocationID string
	PartID         string
	OrderID        *string
	// Signed amount of the entry.
	Amount int64
	Price  decimal.Decimal
	// Epoch seconds.
	CreatedAt int64
	// Location level after the movement was applied.
	LocationLevel int64
}
