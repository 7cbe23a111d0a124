package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"storefront/internal/cart"
	"storefront/internal/config"
	"storefront/internal/notice"
	"storefront/internal/order"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrOrderFailed        = errors.New("order failed")
	ErrCheckoutInProgress = errors.New("checkout already in progress")
)

// OrderWriter is the backend side of a structured checkout.
type OrderWriter interface {
	CreateOrder(ctx context.Context, o *order.Order) error
	CreateItems(ctx context.Context, orderID string, items []order.Item) error
}

type Result struct {
	Mode       string          `json:"mode"`
	OrderID    string          `json:"order_id,omitempty"`
	Total      decimal.Decimal `json:"total"`
	HandoffURL string          `json:"handoff_url,omitempty"`
	Message    string          `json:"message,omitempty"`
	Notice     *notice.Notice  `json:"notice"`

	// Remaining is what is left in the cart after the ordered lines are
	// taken out. Non-empty only when the cart changed during submission.
	Remaining []cart.LineItem `json:"-"`
}

// Service runs checkout in exactly one mode, structured or handoff.
type Service struct {
	mode    string
	carts   *cart.Manager
	orders  OrderWriter
	channel Channel
	footer  string

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewStructuredService(carts *cart.Manager, orders OrderWriter) *Service {
	return &Service{
		mode:     config.CheckoutStructured,
		carts:    carts,
		orders:   orders,
		inFlight: make(map[string]bool),
	}
}

func NewHandoffService(carts *cart.Manager, channel Channel, footer string) *Service {
	return &Service{
		mode:     config.CheckoutHandoff,
		carts:    carts,
		channel:  channel,
		footer:   footer,
		inFlight: make(map[string]bool),
	}
}

func (s *Service) Mode() string {
	return s.mode
}

// Checkout validates the customer, submits the cart and removes the
// submitted lines on success. Nothing is submitted when validation fails.
func (s *Service) Checkout(ctx context.Context, cartID string, customer Customer) (*Result, error) {
	customer = customer.Normalize()
	if err := Validate(customer); err != nil {
		return nil, err
	}

	if !s.begin(cartID) {
		return nil, ErrCheckoutInProgress
	}
	defer s.end(cartID)

	engine := s.carts.Engine(ctx, cartID)
	items := engine.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	var (
		res *Result
		err error
	)
	switch s.mode {
	case config.CheckoutHandoff:
		res, err = s.handoff(ctx, items, customer)
	default:
		res, err = s.submit(ctx, items, customer)
	}
	if err != nil {
		return nil, err
	}

	res.Remaining = engine.RemoveOrdered(ctx, items)
	if len(res.Remaining) == 0 {
		s.carts.Evict(cartID)
	} else {
		log.Info().Str("cart_id", cartID).Int("lines", len(res.Remaining)).
			Msg("cart changed during checkout, later lines kept")
	}
	return res, nil
}

// --------------------------------------------------
// Structured submission
// --------------------------------------------------
func (s *Service) submit(ctx context.Context, items []cart.LineItem, customer Customer) (*Result, error) {
	total := cart.TotalPrice(items)

	o := &order.Order{
		CustomerName:        customer.Name,
		CustomerPhone:       customer.Phone,
		OrderType:           customer.OrderType,
		SpecialInstructions: customer.SpecialInstructions,
		Total:               total,
		Status:              order.StatusPending,
	}
	if err := s.orders.CreateOrder(ctx, o); err != nil {
		log.Error().Err(err).Msg("placing order: header")
		return nil, fmt.Errorf("%w: %v", ErrOrderFailed, err)
	}

	lines := make([]order.Item, 0, len(items))
	for _, li := range items {
		lines = append(lines, order.Item{
			MenuItemID:   li.Dish.ID,
			DishName:     li.Dish.Name,
			DishCategory: li.Dish.Category,
			Quantity:     li.SelectedQuantity,
			SpiceLevel:   li.SelectedSpiceLevel,
			ItemPrice:    li.LineTotal(),
		})
	}

	// The header is left behind if this fails.
	if err := s.orders.CreateItems(ctx, o.ID, lines); err != nil {
		log.Error().Err(err).Str("order_id", o.ID).Msg("placing order: items, header orphaned")
		return nil, fmt.Errorf("%w: %v", ErrOrderFailed, err)
	}

	log.Info().Str("order_id", o.ID).Str("total", total.StringFixed(2)).Msg("order placed")

	n := notice.Info(
		"Order Placed Successfully!",
		fmt.Sprintf("Your order #%s has been placed. Total: ₹%s", shortID(o.ID), total.StringFixed(2)),
	)
	n.DurationMS = 5000

	return &Result{
		Mode:    s.mode,
		OrderID: o.ID,
		Total:   total,
		Notice:  n,
	}, nil
}

// --------------------------------------------------
// Formatted handoff
// --------------------------------------------------
func (s *Service) handoff(ctx context.Context, items []cart.LineItem, customer Customer) (*Result, error) {
	msg := FormatMessage(items, customer, s.footer)

	link, err := s.channel.Deliver(ctx, msg)
	if err != nil {
		log.Error().Err(err).Msg("order handoff")
		return nil, fmt.Errorf("%w: %v", ErrOrderFailed, err)
	}

	return &Result{
		Mode:       s.mode,
		Total:      cart.TotalPrice(items),
		HandoffURL: link,
		Message:    msg,
		Notice:     notice.Info("Order ready", "Send the message to complete your order"),
	}, nil
}

func (s *Service) begin(cartID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight[cartID] {
		return false
	}
	s.inFlight[cartID] = true
	return true
}

func (s *Service) end(cartID string) {
	s.mu.Lock()
	delete(s.inFlight, cartID)
	s.mu.Unlock()
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[len(id)-8:]
}
