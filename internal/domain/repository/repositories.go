// Package repository defines the storage ports used by the dev server.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// Sentinel errors returned by repository implementations.
var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrAccountExists     = errors.New("account already exists")
	ErrProductNotFound   = errors.New("product not found")
	ErrCartItemNotFound  = errors.New("cart item not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Account is a stored user plus its password hash.
type Account struct {
	User         entity.User
	PasswordHash string
}

// AccountRepository stores registered accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	FindByEmail(ctx context.Context, email string) (*Account, error)
	FindByID(ctx context.Context, id string) (*Account, error)
}

// CatalogRepository stores the product catalog.
type CatalogRepository interface {
	List(ctx context.Context, query entity.ProductQuery) (*entity.ProductPage, error)
	FindByID(ctx context.Context, id string) (*entity.Product, error)
	Featured(ctx context.Context) ([]entity.Product, error)
	// AdjustStock changes a product's stock by delta and fails with
	// ErrInsufficientStock when the result would go negative.
	AdjustStock(ctx context.Context, id string, delta int) error
}

// CartRepository stores one cart per user.
type CartRepository interface {
	Get(ctx context.Context, userID string) (*entity.Cart, error)
	AddItem(ctx context.Context, userID string, product *entity.Product, quantity int) (*entity.Cart, error)
	UpdateItem(ctx context.Context, userID, itemID string, quantity int) (*entity.Cart, error)
	RemoveItem(ctx context.Context, userID, itemID string) (*entity.Cart, error)
	Clear(ctx context.Context, userID string) error
}

// OrderRepository stores placed orders per user.
type OrderRepository interface {
	Create(ctx context.Context, userID string, order *entity.Order) error
	ListByUser(ctx context.Context, userID string) ([]entity.Order, error)
	FindByID(ctx context.Context, userID, orderID string) (*entity.Order, error)
	Update(ctx context.Context, userID string, order *entity.Order) error
}
