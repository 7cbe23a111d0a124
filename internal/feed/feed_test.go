package feed

import (
	"context"
	"testing"
	"time"
)

func receive(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
	return Event{}
}

func TestBroadcaster_FanOut(t *testing.T) {
	b := NewBroadcaster()
	ctx := context.Background()

	one, cancelOne := b.Subscribe()
	two, cancelTwo := b.Subscribe()
	defer cancelOne()
	defer cancelTwo()

	b.Publish(ctx, Event{Type: OrdersChanged, OrderID: "o1"})

	if ev := receive(t, one); ev.OrderID != "o1" {
		t.Fatalf("unexpected event %+v", ev)
	}
	if ev := receive(t, two); ev.OrderID != "o1" {
		t.Fatalf("unexpected event %+v", ev)
	}
}

func TestBroadcaster_SlowSubscriberDoesNotBlock(t *testing.T) {
	b := NewBroadcaster()
	ctx := context.Background()

	_, cancel := b.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBuffer*4; i++ {
			b.Publish(ctx, Event{Type: OrdersChanged})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}
}

func TestBroadcaster_CancelClosesChannel(t *testing.T) {
	b := NewBroadcaster()

	ch, cancel := b.Subscribe()
	cancel()
	cancel()

	if _, ok := <-ch; ok {
		t.Fatal("expected closed channel")
	}
	if b.Subscribers() != 0 {
		t.Fatalf("expected no subscribers, got %d", b.Subscribers())
	}
}

func TestBroadcaster_SubscribeAfterClose(t *testing.T) {
	b := NewBroadcaster()
	b.Close()

	ch, cancel := b.Subscribe()
	defer cancel()

	if _, ok := <-ch; ok {
		t.Fatal("expected closed channel after Close")
	}
}

func TestDecodeEvent(t *testing.T) {
	ev, err := decodeEvent([]byte(`{"type":"orders_changed","order_id":"o1","status":"ready"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Status != "ready" {
		t.Fatalf("unexpected event %+v", ev)
	}

	if _, err := decodeEvent([]byte(`{}`)); err == nil {
		t.Fatal("expected error for missing type")
	}
	if _, err := decodeEvent([]byte(`nope`)); err == nil {
		t.Fatal("expected error for bad json")
	}
}
