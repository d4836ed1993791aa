// Package checkout validates the order form and turns the cart into an order.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Skotchmaster/vape_shop/internal/models"
	"github.com/Skotchmaster/vape_shop/pkg/logging"
)

var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrSubmitFailed = errors.New("order submission failed")
	// ErrSubmitInProgress is returned while another order is being placed.
	ErrSubmitInProgress = errors.New("order submission in progress")
)

// GenericFailure is shown to the shopper whenever submission fails after
// the form was accepted.
const GenericFailure = "Произошла ошибка при оформлении заказа. Пожалуйста, попробуйте еще раз."

type Item struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
	Total    int64  `json:"total"`
}

type Record struct {
	ID            string        `json:"id"`
	Customer      Form          `json:"customer"`
	Items         []Item        `json:"items"`
	Subtotal      int64         `json:"subtotal"`
	Shipping      int64         `json:"shipping"`
	Total         int64         `json:"total"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	PlacedAt      time.Time     `json:"orderDate"`
}

type Cart interface {
	Lines() []models.CartLine
	// Deduct removes the ordered quantities, leaving anything added since.
	Deduct(ctx context.Context, ordered []models.CartLine) error
}

type Notifier interface {
	Notify(ctx context.Context, r Record) error
}

type Service struct {
	Cart     Cart
	Notifier Notifier
	Delay    time.Duration

	Now   func() time.Time
	NewID func() string

	inFlight sync.Mutex
}

func NewService(cart Cart, notifier Notifier, delay time.Duration) *Service {
	return &Service{
		Cart:     cart,
		Notifier: notifier,
		Delay:    delay,
		Now:      func() time.Time { return time.Now().UTC() },
		NewID:    uuid.NewString,
	}
}

// Submit places the order held in the cart. Only one submission runs at a
// time. The ordered lines leave the cart only after every notifier accepted
// the order and the delay elapsed; any failure from that point leaves the
// cart as it was.
func (s *Service) Submit(ctx context.Context, form Form) (*Record, error) {
	l := logging.FromContext(ctx).With("component", "checkout")

	if !s.inFlight.TryLock() {
		return nil, ErrSubmitInProgress
	}
	defer s.inFlight.Unlock()

	form = form.Normalize()
	if errs := Validate(form); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	lines := s.Cart.Lines()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	rec := s.buildRecord(form, lines)
	l.Info("order_submitting", "order_id", rec.ID, "items", len(rec.Items), "total", rec.Total)

	if s.Notifier != nil {
		if err := s.Notifier.Notify(ctx, rec); err != nil {
			return nil, fmt.Errorf("%w: notify: %v", ErrSubmitFailed, err)
		}
	}

	if err := sleep(ctx, s.Delay); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}

	if err := s.Cart.Deduct(ctx, lines); err != nil {
		return nil, fmt.Errorf("%w: update cart: %v", ErrSubmitFailed, err)
	}

	l.Info("order_submitted", "order_id", rec.ID)
	return &rec, nil
}

func (s *Service) buildRecord(form Form, lines []models.CartLine) Record {
	items := make([]Item, 0, len(lines))
	for _, line := range lines {
		items = append(items, Item{
			ID:       line.Product.ID,
			Name:     line.Product.Name,
			Price:    line.Product.Price,
			Quantity: line.Quantity,
			Total:    line.LineTotal(),
		})
	}

	totals := ComputeTotal(lines)
	now := time.Now().UTC()
	if s.Now != nil {
		now = s.Now()
	}
	id := uuid.NewString()
	if s.NewID != nil {
		id = s.NewID()
	}

	return Record{
		ID:            id,
		Customer:      form,
		Items:         items,
		Subtotal:      totals.Subtotal,
		Shipping:      totals.Shipping,
		Total:         totals.Total,
		PaymentMethod: form.PaymentMethod,
		PlacedAt:      now,
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
