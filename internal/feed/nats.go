package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
)

const DefaultSubject = "storefront.orders.changed"

// NATSFeed publishes events on a NATS subject and relays everything
// received on that subject to local subscribers, so every API replica
// sees changes made by the others.
type NATSFeed struct {
	conn    *nats.Conn
	subject string
	sub     *nats.Subscription
	local   *Broadcaster
}

func NewNATSFeed(url, subject string) (*NATSFeed, error) {
	conn, err := nats.Connect(url, nats.Name("storefront-api"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	f := &NATSFeed{
		conn:    conn,
		subject: subject,
		local:   NewBroadcaster(),
	}

	sub, err := conn.Subscribe(subject, f.relay)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", subject, err)
	}
	f.sub = sub

	return f, nil
}

func (f *NATSFeed) relay(msg *nats.Msg) {
	ev, err := decodeEvent(msg.Data)
	if err != nil {
		log.Warn().Err(err).Str("subject", msg.Subject).Msg("dropping malformed feed message")
		return
	}
	f.local.Publish(context.Background(), ev)
}

func (f *NATSFeed) Publish(ctx context.Context, ev Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return f.conn.Publish(f.subject, data)
}

func (f *NATSFeed) Subscribe() (<-chan Event, func()) {
	return f.local.Subscribe()
}

func (f *NATSFeed) Close() error {
	if f.sub != nil {
		f.sub.Unsubscribe()
	}
	f.conn.Close()
	return f.local.Close()
}

func decodeEvent(data []byte) (Event, error) {
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return Event{}, err
	}
	if ev.Type == "" {
		return Event{}, errors.New("feed event without type")
	}
	return ev, nil
}
