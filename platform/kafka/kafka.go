package kafka

import "context"

type Producer interface {
	Send(ctx context.Context, key, value []byte) error
}
