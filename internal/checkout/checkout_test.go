package checkout

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"storefront/internal/cart"
	"storefront/internal/menu"
	"storefront/internal/order"

	"github.com/shopspring/decimal"
)

type recordingWriter struct {
	orderCalls int
	itemCalls  int
	items      []order.Item
	total      decimal.Decimal

	orderErr error
	itemsErr error
	started  chan struct{}
	block    chan struct{}
}

func (w *recordingWriter) CreateOrder(ctx context.Context, o *order.Order) error {
	w.orderCalls++
	if w.started != nil {
		close(w.started)
	}
	if w.block != nil {
		<-w.block
	}
	if w.orderErr != nil {
		return w.orderErr
	}
	o.ID = "3f2b8c1e-0000-4000-8000-0000abcd1234"
	w.total = o.Total
	return nil
}

func (w *recordingWriter) CreateItems(ctx context.Context, orderID string, items []order.Item) error {
	w.itemCalls++
	if w.itemsErr != nil {
		return w.itemsErr
	}
	w.items = items
	return nil
}

type fakeChannel struct {
	messages []string
}

func (f *fakeChannel) Deliver(ctx context.Context, message string) (string, error) {
	f.messages = append(f.messages, message)
	return "https://chat.example/order", nil
}

func testDish(id, name string, price int64) menu.Dish {
	return menu.Dish{ID: id, Name: name, Category: "Others", Price: decimal.NewFromInt(price)}
}

func fillCart(t *testing.T, carts *cart.Manager, cartID string) {
	t.Helper()
	ctx := context.Background()
	e := carts.Engine(ctx, cartID)
	e.AddItem(ctx, testDish("A", "Lemon Rice", 100), 3, 3)
	e.AddItem(ctx, testDish("B", "Rasam", 50), 1, 1)
}

func validCustomer() Customer {
	return Customer{Name: "  Priya  ", Phone: "9876543210"}
}

func TestValidate(t *testing.T) {
	cases := map[string]Customer{
		"empty name":        {Name: "   ", Phone: "1"},
		"long name":         {Name: strings.Repeat("n", 101), Phone: "1"},
		"empty phone":       {Name: "a", Phone: " "},
		"long phone":        {Name: "a", Phone: strings.Repeat("9", 16)},
		"bad order type":    {Name: "a", Phone: "1", OrderType: "dine-in"},
		"long instructions": {Name: "a", Phone: "1", SpecialInstructions: strings.Repeat("x", 501)},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if err := Validate(c.Normalize()); !errors.Is(err, ErrInvalidCustomer) {
				t.Fatalf("expected ErrInvalidCustomer, got %v", err)
			}
		})
	}

	ok := Customer{Name: strings.Repeat("n", 100), Phone: strings.Repeat("9", 15), OrderType: "Delivery"}
	if err := Validate(ok.Normalize()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNormalize_DefaultsToTakeaway(t *testing.T) {
	c := Customer{Name: " a ", Phone: " 1 "}.Normalize()
	if c.OrderType != order.TypeTakeaway || c.Name != "a" || c.Phone != "1" {
		t.Fatalf("unexpected normalized customer %+v", c)
	}
}

func TestCheckout_EmptyNameRejectedBeforeSubmission(t *testing.T) {
	carts := cart.NewManager(cart.NewMemoryStore())
	fillCart(t, carts, "c1")
	w := &recordingWriter{}
	svc := NewStructuredService(carts, w)

	_, err := svc.Checkout(context.Background(), "c1", Customer{Name: "", Phone: "9876543210"})
	if !errors.Is(err, ErrInvalidCustomer) {
		t.Fatalf("expected ErrInvalidCustomer, got %v", err)
	}
	if w.orderCalls != 0 || w.itemCalls != 0 {
		t.Fatalf("expected no backend calls, got %d/%d", w.orderCalls, w.itemCalls)
	}
	if carts.Engine(context.Background(), "c1").TotalItems() != 4 {
		t.Fatal("cart must be untouched")
	}
}

func TestCheckout_EmptyCart(t *testing.T) {
	w := &recordingWriter{}
	svc := NewStructuredService(cart.NewManager(cart.NewMemoryStore()), w)

	if _, err := svc.Checkout(context.Background(), "empty", validCustomer()); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if w.orderCalls != 0 {
		t.Fatal("expected no backend calls")
	}
}

func TestCheckout_StructuredSuccessClearsCart(t *testing.T) {
	ctx := context.Background()
	store := cart.NewMemoryStore()
	carts := cart.NewManager(store)
	fillCart(t, carts, "c1")
	w := &recordingWriter{}
	svc := NewStructuredService(carts, w)

	res, err := svc.Checkout(ctx, "c1", validCustomer())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !res.Total.Equal(decimal.NewFromInt(350)) || !w.total.Equal(decimal.NewFromInt(350)) {
		t.Fatalf("expected total 350, got %s / %s", res.Total, w.total)
	}
	if len(w.items) != 2 || !w.items[0].ItemPrice.Equal(decimal.NewFromInt(300)) || w.items[0].SpiceLevel != 3 {
		t.Fatalf("unexpected order items %+v", w.items)
	}
	if !strings.Contains(res.Notice.Description, "#abcd1234") || !strings.Contains(res.Notice.Description, "₹350.00") {
		t.Fatalf("unexpected notice %q", res.Notice.Description)
	}

	if carts.Engine(ctx, "c1").TotalItems() != 0 {
		t.Fatal("expected cart cleared after checkout")
	}
	if len(cart.NewEngine(ctx, "c1", store).Items()) != 0 {
		t.Fatal("expected cleared cart persisted")
	}
}

func TestCheckout_ItemsFailureReportsOrderFailed(t *testing.T) {
	carts := cart.NewManager(cart.NewMemoryStore())
	fillCart(t, carts, "c1")
	w := &recordingWriter{itemsErr: errors.New("insert failed")}
	svc := NewStructuredService(carts, w)

	_, err := svc.Checkout(context.Background(), "c1", validCustomer())
	if !errors.Is(err, ErrOrderFailed) {
		t.Fatalf("expected ErrOrderFailed, got %v", err)
	}
	if w.orderCalls != 1 {
		t.Fatalf("expected the header to have been written once, got %d", w.orderCalls)
	}
	if carts.Engine(context.Background(), "c1").TotalItems() != 4 {
		t.Fatal("cart must survive a failed order")
	}
}

func TestCheckout_HeaderFailure(t *testing.T) {
	carts := cart.NewManager(cart.NewMemoryStore())
	fillCart(t, carts, "c1")
	w := &recordingWriter{orderErr: errors.New("backend down")}
	svc := NewStructuredService(carts, w)

	if _, err := svc.Checkout(context.Background(), "c1", validCustomer()); !errors.Is(err, ErrOrderFailed) {
		t.Fatalf("expected ErrOrderFailed, got %v", err)
	}
	if w.itemCalls != 0 {
		t.Fatal("items must not be written without a header")
	}
}

func TestCheckout_DuplicateSubmitRejected(t *testing.T) {
	carts := cart.NewManager(cart.NewMemoryStore())
	fillCart(t, carts, "c1")
	w := &recordingWriter{block: make(chan struct{})}
	svc := NewStructuredService(carts, w)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Checkout(context.Background(), "c1", validCustomer())
		done <- err
	}()

	deadline := time.Now().Add(time.Second)
	for {
		svc.mu.Lock()
		busy := svc.inFlight["c1"]
		svc.mu.Unlock()
		if busy {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("first checkout never started")
		}
		time.Sleep(time.Millisecond)
	}

	if _, err := svc.Checkout(context.Background(), "c1", validCustomer()); !errors.Is(err, ErrCheckoutInProgress) {
		t.Fatalf("expected ErrCheckoutInProgress, got %v", err)
	}

	close(w.block)
	if err := <-done; err != nil {
		t.Fatalf("first checkout failed: %v", err)
	}
}

func TestCheckout_KeepsItemsAddedDuringSubmission(t *testing.T) {
	ctx := context.Background()
	store := cart.NewMemoryStore()
	carts := cart.NewManager(store)
	fillCart(t, carts, "c1")
	w := &recordingWriter{started: make(chan struct{}), block: make(chan struct{})}
	svc := NewStructuredService(carts, w)

	type outcome struct {
		res *Result
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := svc.Checkout(ctx, "c1", validCustomer())
		done <- outcome{res, err}
	}()

	<-w.started
	e := carts.Engine(ctx, "c1")
	if _, err := e.AddItem(ctx, testDish("C", "Curd Rice", 80), 2, 2); err != nil {
		t.Fatalf("add during checkout: %v", err)
	}
	close(w.block)

	out := <-done
	if out.err != nil {
		t.Fatalf("unexpected error: %v", out.err)
	}

	ordered := 0
	for _, it := range w.items {
		if it.MenuItemID == "C" {
			t.Fatal("dish added after the cart was copied must not be ordered")
		}
		ordered += it.Quantity
	}
	if ordered != 4 {
		t.Fatalf("expected 4 items ordered, got %d", ordered)
	}

	if len(out.res.Remaining) != 1 || out.res.Remaining[0].Dish.ID != "C" || out.res.Remaining[0].SelectedQuantity != 2 {
		t.Fatalf("expected C x2 left in the result, got %+v", out.res.Remaining)
	}
	if got := carts.Engine(ctx, "c1").TotalItems(); got != 2 {
		t.Fatalf("expected the late dish kept in cart, got %d items", got)
	}
	if got := cart.NewEngine(ctx, "c1", store).TotalItems(); got != 2 {
		t.Fatalf("expected the late dish persisted, got %d items", got)
	}
}

func TestCheckout_EvictsEmptiedCart(t *testing.T) {
	ctx := context.Background()
	carts := cart.NewManager(cart.NewMemoryStore())
	fillCart(t, carts, "c1")
	svc := NewStructuredService(carts, &recordingWriter{})

	if _, err := svc.Checkout(ctx, "c1", validCustomer()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if carts.Len() != 0 {
		t.Fatalf("expected emptied cart evicted, %d engines live", carts.Len())
	}
}

func TestCheckout_Handoff(t *testing.T) {
	carts := cart.NewManager(cart.NewMemoryStore())
	fillCart(t, carts, "c1")
	ch := &fakeChannel{}
	svc := NewHandoffService(carts, ch, "Serving Avadi Area | Take-away Service")

	res, err := svc.Checkout(context.Background(), "c1", validCustomer())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.HandoffURL == "" || len(ch.messages) != 1 || res.Message != ch.messages[0] {
		t.Fatalf("unexpected handoff result %+v", res)
	}
	if carts.Engine(context.Background(), "c1").TotalItems() != 0 {
		t.Fatal("expected cart cleared after handoff")
	}
}

func TestFormatMessage_Deterministic(t *testing.T) {
	items := []cart.LineItem{
		{Dish: testDish("A", "Lemon Rice", 160), SelectedQuantity: 2, SelectedSpiceLevel: 3},
		{Dish: menu.Dish{ID: "B", Name: "Rasam", Price: decimal.RequireFromString("49.5")}, SelectedQuantity: 1, SelectedSpiceLevel: 1},
	}
	c := Customer{Name: "Priya", Phone: "9876543210", OrderType: "takeaway", SpecialInstructions: "Less oil"}

	want := "*New Order*\n\n" +
		"*Name:* Priya\n" +
		"*Phone:* 9876543210\n" +
		"*Order Type:* Takeaway\n" +
		"\n*Items:*\n" +
		"1. Lemon Rice\n" +
		"   Qty: 2 | Spice: 3/5 | ₹320.00\n" +
		"2. Rasam\n" +
		"   Qty: 1 | Spice: 1/5 | ₹49.50\n" +
		"\n*Total: ₹369.50*\n" +
		"\n*Special Instructions:*\nLess oil\n" +
		"\nServing Avadi Area"

	got := FormatMessage(items, c, "Serving Avadi Area")
	if got != want {
		t.Fatalf("unexpected message:\n%s\nwant:\n%s", got, want)
	}
	if again := FormatMessage(items, c, "Serving Avadi Area"); again != got {
		t.Fatal("message is not deterministic")
	}

	c.SpecialInstructions = ""
	if strings.Contains(FormatMessage(items, c, ""), "Special Instructions") {
		t.Fatal("instructions section must be omitted when empty")
	}
}

func TestWhatsAppChannel(t *testing.T) {
	if _, err := NewWhatsAppChannel("n/a"); err == nil {
		t.Fatal("expected error for number without digits")
	}

	ch, err := NewWhatsAppChannel("+91 98765-43210")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	link, _ := ch.Deliver(context.Background(), "Hi there & 2+2\nnext")
	want := "https://wa.me/919876543210?text=Hi%20there%20%26%202%2B2%0Anext"
	if link != want {
		t.Fatalf("expected %s, got %s", want, link)
	}
}
