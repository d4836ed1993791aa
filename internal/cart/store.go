// Package cart holds the shopper's cart lines and persists them as one snapshot.
package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Skotchmaster/vape_shop/internal/models"
	"github.com/Skotchmaster/vape_shop/internal/snapshot"
)

var ErrValidation = errors.New("validation")

type Store struct {
	mu      sync.RWMutex
	storage snapshot.Storage
	lines   []models.CartLine
}

func Open(ctx context.Context, storage snapshot.Storage) (*Store, error) {
	lines, _, err := snapshot.LoadJSON[models.CartLine](ctx, storage, snapshot.KeyCart)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if lines == nil {
		lines = []models.CartLine{}
	}
	return &Store{storage: storage, lines: lines}, nil
}

// Add puts qty units of product into the cart. A product already in the
// cart has its quantity increased; its stored copy is left as it was.
func (s *Store) Add(ctx context.Context, product models.Product, qty int) error {
	if qty < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}
	if product.ID == "" {
		return fmt.Errorf("%w: product id is empty", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneLines(s.lines)
	if i := indexOf(next, product.ID); i >= 0 {
		next[i].Quantity += qty
	} else {
		next = append(next, models.CartLine{Product: product.Clone(), Quantity: qty})
	}
	return s.commit(ctx, next)
}

// SetQuantity replaces the quantity of an existing line. Unknown ids are a
// no-op reported through found.
func (s *Store) SetQuantity(ctx context.Context, productID string, qty int) (bool, error) {
	if qty < 1 {
		return false, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.lines, productID)
	if i < 0 {
		return false, nil
	}
	next := cloneLines(s.lines)
	next[i].Quantity = qty
	return true, s.commit(ctx, next)
}

func (s *Store) Remove(ctx context.Context, productID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.lines, productID)
	if i < 0 {
		return false, nil
	}
	next := make([]models.CartLine, 0, len(s.lines)-1)
	next = append(next, cloneLines(s.lines[:i])...)
	next = append(next, cloneLines(s.lines[i+1:])...)
	return true, s.commit(ctx, next)
}

func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(ctx, []models.CartLine{})
}

// Deduct subtracts the ordered quantities from the matching lines and drops
// lines that reach zero. Lines added or topped up after the order was taken
// stay in the cart.
func (s *Store) Deduct(ctx context.Context, ordered []models.CartLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneLines(s.lines)
	for _, o := range ordered {
		if i := indexOf(next, o.Product.ID); i >= 0 {
			next[i].Quantity -= o.Quantity
		}
	}

	kept := make([]models.CartLine, 0, len(next))
	for _, l := range next {
		if l.Quantity > 0 {
			kept = append(kept, l)
		}
	}
	return s.commit(ctx, kept)
}

func (s *Store) Lines() []models.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneLines(s.lines)
}

func (s *Store) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n
}

func (s *Store) Subtotal() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Subtotal(s.lines)
}

func (s *Store) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lines) == 0
}

func Subtotal(lines []models.CartLine) int64 {
	var sum int64
	for _, l := range lines {
		sum += l.LineTotal()
	}
	return sum
}

// commit persists next and only then swaps it in. Caller holds s.mu.
func (s *Store) commit(ctx context.Context, next []models.CartLine) error {
	if err := snapshot.SaveJSON(ctx, s.storage, snapshot.KeyCart, next); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	s.lines = next
	return nil
}

func indexOf(lines []models.CartLine, productID string) int {
	for i := range lines {
		if lines[i].Product.ID == productID {
			return i
		}
	}
	return -1
}

func cloneLines(in []models.CartLine) []models.CartLine {
	out := make([]models.CartLine, len(in))
	for i, l := range in {
		out[i] = models.CartLine{Product: l.Product.Clone(), Quantity: l.Quantity}
	}
	return out
}
