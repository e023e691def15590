package model

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrNotAllowed      = errors.New("method not allowed")
)

const (
	MsgExceedsOrder  = "would exceed amount of Order"
	MsgNegativeStock = "results in negative PartLocation stock level"
	MsgPartMismatch  = "Part of Order doesn't match Part of PartLocation"
	MsgBelowReceived = "less than the amount already received"
	MsgPartLinked    = "can't change while StockChanges are linked to Orders"
)
