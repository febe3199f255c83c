package memstore

import (
	"context"
	"sort"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// OrderStore implements repository.OrderRepository in memory.
type OrderStore struct {
	mu     sync.RWMutex
	orders map[string]map[string]*entity.Order // userID -> orderID -> order
}

// NewOrderStore is the constructor for OrderStore.
func NewOrderStore() *OrderStore {
	return &OrderStore{orders: make(map[string]map[string]*entity.Order)}
}

// Create stores a new order for the user.
func (s *OrderStore) Create(ctx context.Context, userID string, order *entity.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.orders[userID] == nil {
		s.orders[userID] = make(map[string]*entity.Order)
	}
	copied := copyOrder(order)
	s.orders[userID][order.ID] = copied

	return nil
}

// ListByUser returns the user's orders, newest first.
func (s *OrderStore) ListByUser(ctx context.Context, userID string) ([]entity.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]entity.Order, 0, len(s.orders[userID]))
	for _, order := range s.orders[userID] {
		list = append(list, *copyOrder(order))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })

	return list, nil
}

// FindByID returns one of the user's orders.
func (s *OrderStore) FindByID(ctx context.Context, userID, orderID string) (*entity.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[userID][orderID]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}

	return copyOrder(order), nil
}

// Update replaces a stored order.
func (s *OrderStore) Update(ctx context.Context, userID string, order *entity.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[userID][order.ID]; !ok {
		return repository.ErrOrderNotFound
	}
	s.orders[userID][order.ID] = copyOrder(order)

	return nil
}

func copyOrder(order *entity.Order) *entity.Order {
	copied := *order
	copied.Items = append([]entity.OrderItem(nil), order.Items...)

	return &copied
}
