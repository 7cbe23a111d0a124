package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/feed"

	"github.com/shopspring/decimal"
)

func placeOrder(t *testing.T, svc *Service, name string) *Order {
	t.Helper()
	ctx := context.Background()

	o := &Order{
		CustomerName:  name,
		CustomerPhone: "9876543210",
		OrderType:     TypeTakeaway,
		Total:         decimal.NewFromInt(300),
		Status:        StatusPending,
	}
	if err := svc.CreateOrder(ctx, o); err != nil {
		t.Fatalf("create order: %v", err)
	}
	items := []Item{{
		MenuItemID: "lemon-rice",
		DishName:   "Lemon Rice",
		Quantity:   2,
		SpiceLevel: 3,
		ItemPrice:  decimal.NewFromInt(300),
	}}
	if err := svc.CreateItems(ctx, o.ID, items); err != nil {
		t.Fatalf("create items: %v", err)
	}
	return o
}

func TestList_NewestFirstWithItems(t *testing.T) {
	svc := NewService(NewInMemoryRepository(), nil)

	placeOrder(t, svc, "first")
	placeOrder(t, svc, "second")

	orders, err := svc.List(context.Background(), "all")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 2 || orders[0].CustomerName != "second" {
		t.Fatalf("expected newest first, got %+v", orders)
	}
	if len(orders[0].Items) != 1 || orders[0].Items[0].DishName != "Lemon Rice" {
		t.Fatalf("expected order items, got %+v", orders[0].Items)
	}
}

func TestList_StatusFilter(t *testing.T) {
	svc := NewService(NewInMemoryRepository(), nil)
	ctx := context.Background()

	a := placeOrder(t, svc, "a")
	placeOrder(t, svc, "b")

	if _, err := svc.UpdateStatus(ctx, a.ID, "ready"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ready, _ := svc.List(ctx, "ready")
	if len(ready) != 1 || ready[0].ID != a.ID {
		t.Fatalf("expected only order a, got %+v", ready)
	}

	pending, _ := svc.List(ctx, "pending")
	if len(pending) != 1 {
		t.Fatalf("expected 1 pending order, got %d", len(pending))
	}

	if _, err := svc.List(ctx, "shipped"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestUpdateStatus_Validation(t *testing.T) {
	svc := NewService(NewInMemoryRepository(), nil)
	ctx := context.Background()
	o := placeOrder(t, svc, "a")

	if _, err := svc.UpdateStatus(ctx, o.ID, "delivered"); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
	if _, err := svc.UpdateStatus(ctx, "missing", "ready"); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got %v", err)
	}
	for _, st := range Statuses {
		if _, err := svc.UpdateStatus(ctx, o.ID, string(st)); err != nil {
			t.Errorf("status %s: unexpected error %v", st, err)
		}
	}
}

func TestChangesArePublished(t *testing.T) {
	b := feed.NewBroadcaster()
	svc := NewService(NewInMemoryRepository(), b)

	events, cancel := b.Subscribe()
	defer cancel()

	o := placeOrder(t, svc, "a")
	svc.UpdateStatus(context.Background(), o.ID, "confirmed")

	want := []Status{StatusPending, StatusConfirmed}
	for _, st := range want {
		select {
		case ev := <-events:
			if ev.Type != feed.OrdersChanged || ev.OrderID != o.ID || ev.Status != string(st) {
				t.Fatalf("unexpected event %+v", ev)
			}
		case <-time.After(time.Second):
			t.Fatalf("no event for %s", st)
		}
	}
}

func TestCreateItemsFailureNotPublished(t *testing.T) {
	repo := NewInMemoryRepository()
	b := feed.NewBroadcaster()
	svc := NewService(repo, b)
	ctx := context.Background()

	events, cancel := b.Subscribe()
	defer cancel()

	o := &Order{CustomerName: "a", Status: StatusPending}
	svc.CreateOrder(ctx, o)

	repo.CreateItemsErr = errors.New("insert failed")
	if err := svc.CreateItems(ctx, o.ID, []Item{{MenuItemID: "x", Quantity: 1, SpiceLevel: 1}}); err == nil {
		t.Fatal("expected error")
	}

	select {
	case ev := <-events:
		t.Fatalf("unexpected event %+v", ev)
	default:
	}
}
