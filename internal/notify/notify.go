// Package notify delivers placed orders and catalog changes to the outside.
package notify

import (
	"context"
	"log/slog"

	"github.com/Skotchmaster/vape_shop/internal/checkout"
	"github.com/Skotchmaster/vape_shop/pkg/logging"
)

// LogNotifier writes the order to the structured log.
type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, r checkout.Record) error {
	logging.FromContext(ctx).Info("order_placed",
		"order_id", r.ID,
		"customer", r.Customer.FullName,
		"email", r.Customer.Email,
		"payment_method", string(r.PaymentMethod),
		"items", len(r.Items),
		"subtotal", r.Subtotal,
		"shipping", r.Shipping,
		"total", r.Total,
		slog.String("summary", checkout.Summary(r)),
	)
	return nil
}

// Multi hands the order to every notifier in turn and reports the first
// failure after all of them ran.
type Multi []checkout.Notifier

func (m Multi) Notify(ctx context.Context, r checkout.Record) error {
	var first error
	for _, n := range m {
		if n == nil {
			continue
		}
		if err := n.Notify(ctx, r); err != nil && first == nil {
			first = err
		}
	}
	return first
}
