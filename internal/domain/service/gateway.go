// Package service defines the ports implemented by infrastructure adapters.
package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// Credentials is the input for an email/password login.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignupProfile is the input for account creation.
type SignupProfile struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
}

// AuthResult is the payload returned by login and signup.
type AuthResult struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// CheckoutInput is the payload for placing an order from the current cart.
type CheckoutInput struct {
	ShippingAddress entity.ShippingAddress `json:"shippingAddress" validate:"required"`
	PaymentMethod   string                 `json:"paymentMethod" validate:"required"`
}

// CommerceGateway translates typed application calls into requests against the
// remote commerce API. One call maps to exactly one request; there is no
// retry, caching or batching at this layer. Transport errors and non-2xx
// responses are returned to the caller unchanged.
type CommerceGateway interface {
	Login(ctx context.Context, creds Credentials) (*AuthResult, error)
	Signup(ctx context.Context, profile SignupProfile) (*AuthResult, error)
	GetCurrentUser(ctx context.Context) (*entity.User, error)

	GetProducts(ctx context.Context, query entity.ProductQuery) (*entity.ProductPage, error)
	GetProduct(ctx context.Context, productID string) (*entity.Product, error)
	GetFeaturedProducts(ctx context.Context) ([]entity.Product, error)

	GetCart(ctx context.Context) (*entity.Cart, error)
	AddToCart(ctx context.Context, productID string, quantity int) (*entity.Cart, error)
	UpdateCartItem(ctx context.Context, itemID string, quantity int) (*entity.Cart, error)
	RemoveFromCart(ctx context.Context, itemID string) (*entity.Cart, error)
	ClearCart(ctx context.Context) error

	CreateOrder(ctx context.Context, input CheckoutInput) (*entity.Order, error)
	GetOrders(ctx context.Context) ([]entity.Order, error)
	GetOrder(ctx context.Context, orderID string) (*entity.Order, error)
	CancelOrder(ctx context.Context, orderID string) (*entity.Order, error)
}
