// Package order implements order intake: payload validation, order-number
// generation, optional discount-code validation, and best-effort hand-off
// to the notification webhook. Nothing is persisted; the notification is
// the order's only record.
package order

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/bilegt6969/sainto-api/internal/metrics"
	"github.com/bilegt6969/sainto-api/internal/notify"
	domain "github.com/bilegt6969/sainto-api/pkg/types"
)

// Validation errors surfaced to the client as 400s.
var (
	ErrMissingOrderID          = errors.New("Order ID is required")
	ErrMissingPaymentReference = errors.New("Payment reference is required")
	ErrEmptyOrder              = errors.New("Order must contain at least one item")
	ErrInvalidQuantity         = errors.New("Item quantity must be positive")
	ErrInvalidDiscountCode     = errors.New("Discount code is not valid")
)

// Service validates and dispatches orders.
type Service struct {
	notifier  notify.Notifier
	discounts *DiscountSet
	log       *slog.Logger
}

// NewService creates an order Service. discounts may be nil to disable
// discount-code validation.
func NewService(notifier notify.Notifier, discounts *DiscountSet, log *slog.Logger) *Service {
	return &Service{
		notifier:  notifier,
		discounts: discounts,
		log:       log,
	}
}

// Result is the outcome of a successful order submission.
type Result struct {
	OrderID     string
	OrderNumber string
}

// Create validates the order and hands it off to the notification webhook.
// The declared total is forwarded as-is; there is no server-side price
// recomputation. Webhook delivery failure is logged and counted but never
// fails the order.
func (s *Service) Create(ctx context.Context, order *domain.Order) (*Result, error) {
	if err := s.validate(ctx, order); err != nil {
		return nil, err
	}

	if order.OrderNumber == "" {
		order.OrderNumber = generateOrderNumber()
	}

	if err := s.notifier.SendOrder(ctx, order); err != nil {
		metrics.OrderWebhookFailuresTotal.Inc()
		s.log.Error("order notification delivery failed",
			"order_id", order.OrderID,
			"order_number", order.OrderNumber,
			"error", err,
		)
	}

	metrics.OrdersCreatedTotal.Inc()
	s.log.Info("order accepted",
		"order_id", order.OrderID,
		"order_number", order.OrderNumber,
		"items", len(order.Items),
		"total", order.TotalAmount,
	)

	return &Result{
		OrderID:     order.OrderID,
		OrderNumber: order.OrderNumber,
	}, nil
}

func (s *Service) validate(ctx context.Context, order *domain.Order) error {
	if strings.TrimSpace(order.OrderID) == "" {
		return ErrMissingOrderID
	}
	if strings.TrimSpace(order.PaymentReference) == "" {
		return ErrMissingPaymentReference
	}
	if len(order.Items) == 0 {
		return ErrEmptyOrder
	}
	for i := range order.Items {
		if order.Items[i].Quantity <= 0 {
			return fmt.Errorf("%w (item %d)", ErrInvalidQuantity, i)
		}
	}
	if order.DiscountCode != "" && s.discounts != nil && !s.discounts.IsValid(ctx, order.DiscountCode) {
		return ErrInvalidDiscountCode
	}
	return nil
}

// generateOrderNumber produces a short human-quotable order number.
func generateOrderNumber() string {
	id := uuid.NewString()
	return "SNT-" + strings.ToUpper(id[:8])
}
