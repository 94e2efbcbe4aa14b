package notify

import (
	"context"
	"log/slog"

	domain "github.com/bilegt6969/sainto-api/pkg/types"
)

// NoOpNotifier implements Notifier by logging discarded orders. It is used
// when Discord is not configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards orders with a log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// SendOrder logs and discards an order notification.
func (n *NoOpNotifier) SendOrder(_ context.Context, order *domain.Order) error {
	n.log.Debug("order notification discarded (no backend configured)",
		"order_id", order.OrderID,
		"order_number", order.OrderNumber,
		"items", len(order.Items),
	)
	return nil
}
