package pubsub

import (
	"context"
	"encoding/json"
)

const (
	PurchaseRecordedTopic = "purchase_recorded"
	PayoutRequestedTopic  = "payout_requested"
)

type Pack struct {
	Key []byte
	Msg []byte
}

// NewPack encodes v as the message of a pack keyed by key.
func NewPack(key string, v any) (*Pack, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	return &Pack{Key: []byte(key), Msg: b}, nil
}

type Publisher interface {
	Publish(ctx context.Context, topic string, pack *Pack) error
}

type nopPublisher struct{}

// NewNopPublisher returns a publisher dropping every message. It is used
// when no broker is configured.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) Publish(context.Context, string, *Pack) error {
	return nil
}
