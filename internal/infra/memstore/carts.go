package memstore

import (
	"context"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
)

// CartStore implements repository.CartRepository in memory, one cart per
// user. The store owns all aggregate math: line subtotals, item counts and
// totals are computed here, never by the client.
type CartStore struct {
	mu    sync.RWMutex
	carts map[string]*entity.Cart // userID -> cart
}

// NewCartStore is the constructor for CartStore.
func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[string]*entity.Cart)}
}

// Get returns the user's cart, creating an empty one on first access.
func (s *CartStore) Get(ctx context.Context, userID string) (*entity.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return copyCart(s.cartLocked(userID)), nil
}

// AddItem adds quantity of product to the user's cart, merging with an
// existing line item for the same product.
func (s *CartStore) AddItem(ctx context.Context, userID string, product *entity.Product, quantity int) (*entity.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cartLocked(userID)
	for i := range cart.Items {
		if cart.Items[i].ProductID == product.ID {
			cart.Items[i].Quantity += quantity
			recalculate(cart)

			return copyCart(cart), nil
		}
	}

	cart.Items = append(cart.Items, entity.CartItem{
		ID:          uuid.NewString(),
		ProductID:   product.ID,
		ProductName: product.Name,
		UnitPrice:   product.Price,
		Quantity:    quantity,
	})
	recalculate(cart)

	return copyCart(cart), nil
}

// UpdateItem sets a line item's quantity. A quantity of zero or less removes
// the line item.
func (s *CartStore) UpdateItem(ctx context.Context, userID, itemID string, quantity int) (*entity.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cartLocked(userID)
	for i := range cart.Items {
		if cart.Items[i].ID != itemID {
			continue
		}

		if quantity <= 0 {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
		} else {
			cart.Items[i].Quantity = quantity
		}
		recalculate(cart)

		return copyCart(cart), nil
	}

	return nil, repository.ErrCartItemNotFound
}

// RemoveItem removes a single line item.
func (s *CartStore) RemoveItem(ctx context.Context, userID, itemID string) (*entity.Cart, error) {
	return s.UpdateItem(ctx, userID, itemID, 0)
}

// Clear empties the user's cart.
func (s *CartStore) Clear(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, userID)

	return nil
}

func (s *CartStore) cartLocked(userID string) *entity.Cart {
	cart, ok := s.carts[userID]
	if !ok {
		cart = &entity.Cart{ID: uuid.NewString()}
		s.carts[userID] = cart
	}

	return cart
}

// recalculate refreshes every aggregate from the line items.
func recalculate(cart *entity.Cart) {
	totalItems := 0
	totalAmount := 0.0
	for i := range cart.Items {
		item := &cart.Items[i]
		item.Subtotal = float64(item.Quantity) * item.UnitPrice
		totalItems += item.Quantity
		totalAmount += item.Subtotal
	}
	cart.TotalItems = totalItems
	cart.TotalAmount = totalAmount
}

func copyCart(cart *entity.Cart) *entity.Cart {
	copied := *cart
	copied.Items = append([]entity.CartItem(nil), cart.Items...)

	return &copied
}
