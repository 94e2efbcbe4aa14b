// Package notify defines the order-notification interface and
// implementations. Order delivery is the storefront's only checkout
// hand-off: a human reads the notification and reconciles the bank
// transfer against the payment reference.
package notify

import (
	"context"

	domain "github.com/bilegt6969/sainto-api/pkg/types"
)

// Notifier defines the interface for sending order notifications.
type Notifier interface {
	SendOrder(ctx context.Context, order *domain.Order) error
}
