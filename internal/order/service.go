package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"storefront/internal/feed"

	"github.com/rs/zerolog/log"
)

var ErrInvalidStatus = errors.New("invalid order status")

type Service struct {
	repo Repository
	feed feed.Feed
}

func NewService(repo Repository, f feed.Feed) *Service {
	return &Service{repo: repo, feed: f}
}

// CreateOrder stores a new order header.
func (s *Service) CreateOrder(ctx context.Context, o *Order) error {
	if err := s.repo.CreateOrder(ctx, o); err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

// CreateItems stores the order lines and announces the new order.
func (s *Service) CreateItems(ctx context.Context, orderID string, items []Item) error {
	if err := s.repo.CreateItems(ctx, orderID, items); err != nil {
		return fmt.Errorf("create order items: %w", err)
	}
	s.publish(ctx, feed.Event{Type: feed.OrdersChanged, OrderID: orderID, Status: string(StatusPending)})
	return nil
}

// List accepts "all", "" or one of Statuses.
func (s *Service) List(ctx context.Context, filter string) ([]Order, error) {
	var status Status
	if f := strings.ToLower(strings.TrimSpace(filter)); f != "" && f != "all" {
		st, ok := ParseStatus(filter)
		if !ok {
			return nil, ErrInvalidStatus
		}
		status = st
	}
	return s.repo.List(ctx, status)
}

// UpdateStatus returns the status actually stored.
func (s *Service) UpdateStatus(ctx context.Context, id, status string) (Status, error) {
	st, ok := ParseStatus(status)
	if !ok {
		return "", ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(ctx, id, st); err != nil {
		return "", err
	}

	s.publish(ctx, feed.Event{Type: feed.OrdersChanged, OrderID: id, Status: string(st)})
	return st, nil
}

func (s *Service) publish(ctx context.Context, ev feed.Event) {
	if s.feed == nil {
		return
	}
	if err := s.feed.Publish(ctx, ev); err != nil {
		log.Warn().Err(err).Str("order_id", ev.OrderID).Msg("publish order change")
	}
}
