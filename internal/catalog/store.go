// Package catalog owns the product catalog and its persisted snapshot.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Skotchmaster/vape_shop/internal/models"
	"github.com/Skotchmaster/vape_shop/internal/snapshot"
)

var ErrValidation = errors.New("validation")

// Observer is told about every mutation after it has been persisted.
type Observer interface {
	ProductSaved(ctx context.Context, p models.Product, created bool)
	ProductDeleted(ctx context.Context, id string)
}

type Option func(*Store)

func WithObserver(o Observer) Option {
	return func(s *Store) { s.observers = append(s.observers, o) }
}

func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

type Store struct {
	mu       sync.RWMutex
	storage  snapshot.Storage
	products []models.Product

	observers []Observer
	validate  *validator.Validate
	newID     func() string
}

// Open loads the catalog snapshot. When none exists the seed is adopted,
// given fresh ids and written immediately.
func Open(ctx context.Context, storage snapshot.Storage, seed []models.Product, opts ...Option) (*Store, error) {
	s := &Store{
		storage:  storage,
		validate: validator.New(),
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}

	items, found, err := snapshot.LoadJSON[models.Product](ctx, storage, snapshot.KeyProducts)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if found {
		s.products = items
		return s, nil
	}

	seeded := make([]models.Product, 0, len(seed))
	for _, p := range seed {
		p = p.Clone()
		if p.ID == "" {
			p.ID = s.newID()
		}
		seeded = append(seeded, p)
	}
	if err := snapshot.SaveJSON(ctx, storage, snapshot.KeyProducts, seeded); err != nil {
		return nil, fmt.Errorf("seed catalog: %w", err)
	}
	s.products = seeded
	return s, nil
}

func (s *Store) List() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.products)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

func (s *Store) Get(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.products[i].Clone(), true
	}
	return models.Product{}, false
}

func (s *Store) Create(ctx context.Context, f models.ProductFields) (models.Product, error) {
	if err := s.validate.Struct(f); err != nil {
		return models.Product{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	p := models.Product{
		Name:           f.Name,
		Price:          f.Price,
		Category:       f.Category,
		Image:          f.Image,
		Description:    f.Description,
		Variant:        f.Variant,
		Specifications: f.Specifications,
	}.Clone()

	s.mu.Lock()
	p.ID = s.newID()
	for s.indexOf(p.ID) >= 0 {
		p.ID = s.newID()
	}
	next := append(cloneAll(s.products), p)
	if err := s.commit(ctx, next); err != nil {
		s.mu.Unlock()
		return models.Product{}, err
	}
	s.mu.Unlock()

	s.notifySaved(ctx, p, true)
	return p.Clone(), nil
}

// Update merges the non-nil fields of patch into the product. An unknown id
// is not an error: found is false and nothing changes.
func (s *Store) Update(ctx context.Context, id string, patch models.ProductPatch) (models.Product, bool, error) {
	if err := s.validate.Struct(patch); err != nil {
		return models.Product{}, false, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return models.Product{}, false, nil
	}

	merged := applyPatch(s.products[i].Clone(), patch)
	if err := s.validate.Struct(fieldsOf(merged)); err != nil {
		s.mu.Unlock()
		return models.Product{}, true, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	next := cloneAll(s.products)
	next[i] = merged
	if err := s.commit(ctx, next); err != nil {
		s.mu.Unlock()
		return models.Product{}, true, err
	}
	s.mu.Unlock()

	s.notifySaved(ctx, merged, false)
	return merged.Clone(), true, nil
}

// Delete removes the product if present. Removing an unknown id succeeds
// with deleted == false.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return false, nil
	}

	next := make([]models.Product, 0, len(s.products)-1)
	next = append(next, s.products[:i]...)
	next = append(next, s.products[i+1:]...)
	if err := s.commit(ctx, next); err != nil {
		s.mu.Unlock()
		return false, err
	}
	s.mu.Unlock()

	for _, o := range s.observers {
		o.ProductDeleted(ctx, id)
	}
	return true, nil
}

// Featured returns the first limit products in catalog order.
func (s *Store) Featured(limit int) []models.Product {
	return s.collect(limit, func(models.Product) bool { return true })
}

func (s *Store) ByCategory(c models.Category, limit int) []models.Product {
	return s.collect(limit, func(p models.Product) bool { return p.Category == c })
}

// Related returns products of the same category as id, excluding id itself.
func (s *Store) Related(id string, limit int) []models.Product {
	p, ok := s.Get(id)
	if !ok {
		return []models.Product{}
	}
	return s.collect(limit, func(o models.Product) bool {
		return o.Category == p.Category && o.ID != p.ID
	})
}

func (s *Store) collect(limit int, keep func(models.Product) bool) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, 0)
	for _, p := range s.products {
		if limit > 0 && len(out) == limit {
			break
		}
		if keep(p) {
			out = append(out, p.Clone())
		}
	}
	return out
}

// commit persists next and only then swaps it in. Caller holds s.mu.
func (s *Store) commit(ctx context.Context, next []models.Product) error {
	if err := snapshot.SaveJSON(ctx, s.storage, snapshot.KeyProducts, next); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	s.products = next
	return nil
}

func (s *Store) notifySaved(ctx context.Context, p models.Product, created bool) {
	for _, o := range s.observers {
		o.ProductSaved(ctx, p.Clone(), created)
	}
}

func (s *Store) indexOf(id string) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}

func applyPatch(p models.Product, patch models.ProductPatch) models.Product {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Variant != nil {
		p.Variant = *patch.Variant
	}
	if patch.Specifications != nil {
		p.Specifications = models.Product{Specifications: *patch.Specifications}.Clone().Specifications
	}
	return p
}

func fieldsOf(p models.Product) models.ProductFields {
	return models.ProductFields{
		Name:           p.Name,
		Price:          p.Price,
		Category:       p.Category,
		Image:          p.Image,
		Description:    p.Description,
		Variant:        p.Variant,
		Specifications: p.Specifications,
	}
}

func cloneAll(in []models.Product) []models.Product {
	out := make([]models.Product, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}
