package impl

import (
	"context"
	"io"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeGateway implements service.CommerceGateway for testing. Behavior is
// injected per method; unset methods panic so tests fail loudly when a store
// calls something unexpected.
type fakeGateway struct {
	loginFn          func(ctx context.Context, creds service.Credentials) (*service.AuthResult, error)
	signupFn         func(ctx context.Context, profile service.SignupProfile) (*service.AuthResult, error)
	getCartFn        func(ctx context.Context) (*entity.Cart, error)
	addToCartFn      func(ctx context.Context, productID string, quantity int) (*entity.Cart, error)
	updateCartItemFn func(ctx context.Context, itemID string, quantity int) (*entity.Cart, error)
	removeFromCartFn func(ctx context.Context, itemID string) (*entity.Cart, error)
	clearCartFn      func(ctx context.Context) error
}

func (f *fakeGateway) Login(ctx context.Context, creds service.Credentials) (*service.AuthResult, error) {
	if f.loginFn == nil {
		panic("unexpected Login call")
	}

	return f.loginFn(ctx, creds)
}

func (f *fakeGateway) Signup(ctx context.Context, profile service.SignupProfile) (*service.AuthResult, error) {
	if f.signupFn == nil {
		panic("unexpected Signup call")
	}

	return f.signupFn(ctx, profile)
}

func (f *fakeGateway) GetCurrentUser(ctx context.Context) (*entity.User, error) {
	panic("unexpected GetCurrentUser call")
}

func (f *fakeGateway) GetProducts(ctx context.Context, query entity.ProductQuery) (*entity.ProductPage, error) {
	panic("unexpected GetProducts call")
}

func (f *fakeGateway) GetProduct(ctx context.Context, productID string) (*entity.Product, error) {
	panic("unexpected GetProduct call")
}

func (f *fakeGateway) GetFeaturedProducts(ctx context.Context) ([]entity.Product, error) {
	panic("unexpected GetFeaturedProducts call")
}

func (f *fakeGateway) GetCart(ctx context.Context) (*entity.Cart, error) {
	if f.getCartFn == nil {
		panic("unexpected GetCart call")
	}

	return f.getCartFn(ctx)
}

func (f *fakeGateway) AddToCart(ctx context.Context, productID string, quantity int) (*entity.Cart, error) {
	if f.addToCartFn == nil {
		panic("unexpected AddToCart call")
	}

	return f.addToCartFn(ctx, productID, quantity)
}

func (f *fakeGateway) UpdateCartItem(ctx context.Context, itemID string, quantity int) (*entity.Cart, error) {
	if f.updateCartItemFn == nil {
		panic("unexpected UpdateCartItem call")
	}

	return f.updateCartItemFn(ctx, itemID, quantity)
}

func (f *fakeGateway) RemoveFromCart(ctx context.Context, itemID string) (*entity.Cart, error) {
	if f.removeFromCartFn == nil {
		panic("unexpected RemoveFromCart call")
	}

	return f.removeFromCartFn(ctx, itemID)
}

func (f *fakeGateway) ClearCart(ctx context.Context) error {
	if f.clearCartFn == nil {
		panic("unexpected ClearCart call")
	}

	return f.clearCartFn(ctx)
}

func (f *fakeGateway) CreateOrder(ctx context.Context, input service.CheckoutInput) (*entity.Order, error) {
	panic("unexpected CreateOrder call")
}

func (f *fakeGateway) GetOrders(ctx context.Context) ([]entity.Order, error) {
	panic("unexpected GetOrders call")
}

func (f *fakeGateway) GetOrder(ctx context.Context, orderID string) (*entity.Order, error) {
	panic("unexpected GetOrder call")
}

func (f *fakeGateway) CancelOrder(ctx context.Context, orderID string) (*entity.Order, error) {
	panic("unexpected CancelOrder call")
}

var _ service.CommerceGateway = (*fakeGateway)(nil)
