package cart

import (
	"context"
	"sync"

	"github.com/vinyloveschody/storefront-api/internal/models"
)

// ProductInfo is the slice of a catalog record the cart snapshots at add
// time. Prices are fixed here; later catalog changes do not touch lines
// already in a cart.
type ProductInfo struct {
	Slug       string
	Title      string
	Image      string
	Link       string
	PriceNet   int64
	PriceGross int64
	Currency   string
}

// Summary is the cart read model: the live lines plus the derived
// aggregates the storefront header renders.
type Summary struct {
	Items      []models.CartItem `json:"items"`
	TotalItems int               `json:"totalItems"`
	TotalPrice int64             `json:"totalPrice"`
	Currency   string            `json:"currency"`
}

// Store is the single source of truth for shopping carts, keyed by the
// cart session key. Every mutation runs as load-modify-save against the
// injected persistence adapter, so a cart survives reloads and restarts.
type Store struct {
	mu      sync.Mutex
	persist Persistence
}

func NewStore(p Persistence) *Store {
	return &Store{persist: p}
}

// AddItem adds a product to the cart. If a non-sample line with the same
// identity already exists its quantity is incremented; an existing sample
// line makes the call a no-op. The returned item is the line as stored.
func (s *Store) AddItem(ctx context.Context, key string, p ProductInfo, quantity int, sample bool) (models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.persist.Load(ctx, key)
	if err != nil {
		return models.CartItem{}, err
	}

	if quantity < 1 {
		quantity = 1
	}
	if sample {
		// Samples are capped at one unit.
		quantity = 1
	}

	id := models.CartLineID(p.Slug, sample)
	for i := range items {
		if items[i].ID != id {
			continue
		}
		if items[i].IsSample {
			// Second "add sample" request is a no-op.
			return items[i], nil
		}
		items[i].Quantity += quantity
		if err := s.persist.Save(ctx, key, items); err != nil {
			return models.CartItem{}, err
		}
		return items[i], nil
	}

	item := models.CartItem{
		ID:          id,
		ProductSlug: p.Slug,
		Title:       p.Title,
		Image:       p.Image,
		Link:        p.Link,
		Quantity:    quantity,
		PriceNet:    p.PriceNet,
		PriceGross:  p.PriceGross,
		Currency:    p.Currency,
		IsSample:    sample,
	}
	items = append(items, item)
	if err := s.persist.Save(ctx, key, items); err != nil {
		return models.CartItem{}, err
	}
	return item, nil
}

// RemoveItem removes the line with the given identity. Removing an
// absent line is a no-op.
func (s *Store) RemoveItem(ctx context.Context, key, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.persist.Load(ctx, key)
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(items) {
		return nil
	}
	return s.persist.Save(ctx, key, kept)
}

// UpdateQuantity sets the line's quantity to the given absolute value.
// A quantity of zero or less removes the line entirely.
func (s *Store) UpdateQuantity(ctx context.Context, key, id string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(ctx, key, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.persist.Load(ctx, key)
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ID == id {
			items[i].Quantity = quantity
			return s.persist.Save(ctx, key, items)
		}
	}
	return nil
}

// ClearCart empties the cart unconditionally. Called when the customer
// reaches the order-confirmation page.
func (s *Store) ClearCart(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.persist.Save(ctx, key, []models.CartItem{})
}

// Items returns the current line items of the cart.
func (s *Store) Items(ctx context.Context, key string) ([]models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.persist.Load(ctx, key)
}

// Summary returns the items plus the derived totals. TotalPrice sums the
// gross price times quantity over all lines.
func (s *Store) Summary(ctx context.Context, key string) (Summary, error) {
	items, err := s.Items(ctx, key)
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{Items: items, Currency: "CZK"}
	if sum.Items == nil {
		sum.Items = []models.CartItem{}
	}
	for _, it := range items {
		sum.TotalItems += it.Quantity
		sum.TotalPrice += it.PriceGross * int64(it.Quantity)
	}
	return sum, nil
}
