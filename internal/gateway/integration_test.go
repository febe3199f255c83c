package gateway_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/delivery/http/validator"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/gateway"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/credstore"
	"storefront/internal/infra/memstore"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startCommerceServer builds the full dev server in-process: the same
// handlers, routes, middleware and in-memory stores the devserver binary
// wires via fx.
func startCommerceServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "integration-secret"
	cfg.Auth = &config.AuthConfig{BcryptCost: 4, TokenTTL: time.Hour}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	catalog, err := memstore.NewCatalogStore(cfg)
	require.NoError(t, err)
	carts := memstore.NewCartStore()
	orders := memstore.NewOrderStore()
	accounts := memstore.NewAccountStore()

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	r := router.NewRouter(router.RouterParams{
		AuthHandler:    handler.NewAuthHandler(accounts, auth.NewBcryptHasher(cfg), tokenSvc, logger),
		ProductHandler: handler.NewProductHandler(catalog),
		CartHandler:    handler.NewCartHandler(carts, catalog),
		OrderHandler:   handler.NewOrderHandler(orders, carts, catalog, logger),
		AuthMiddleware: middleware.NewAuthMiddleware(tokenSvc),
	})
	r.RegisterRoutes(e)

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	return server
}

// newStores builds the client-side stack against the given server URL.
func newStores(t *testing.T, baseURL string) (usecase.SessionUsecase, usecase.CartUsecase, *gateway.Client) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Client.BaseURL = baseURL
	cfg.Client.Timeout = 5 * time.Second

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	creds := credstore.NewMemoryStore()
	client := gateway.NewClient(cfg, creds, logger)
	session := impl.NewSessionStore(client, creds, logger)
	cart := impl.NewCartStore(client, session, logger)

	return session, cart, client
}

func signup(t *testing.T, session usecase.SessionUsecase) *entity.Session {
	t.Helper()

	established, err := session.Signup(context.Background(), service.SignupProfile{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		Password:  "password123",
	})
	require.NoError(t, err)

	return established
}

func TestIntegration_SignupLoginAndProfile(t *testing.T) {
	server := startCommerceServer(t)
	session, _, client := newStores(t, server.URL)
	ctx := context.Background()

	established := signup(t, session)
	assert.NotEmpty(t, established.Token)
	assert.True(t, session.IsAuthenticated())

	// The bearer token from signup authenticates the profile endpoint.
	user, err := client.GetCurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", user.Email)

	require.NoError(t, session.Logout())
	assert.False(t, session.IsAuthenticated())

	// Fresh store against the same server: the account persists.
	session2, _, _ := newStores(t, server.URL)
	logged, err := session2.Login(ctx, service.Credentials{
		Email:    "john@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "John", logged.User.FirstName)
}

func TestIntegration_LoginWrongPassword(t *testing.T) {
	server := startCommerceServer(t)
	session, _, _ := newStores(t, server.URL)

	signup(t, session)
	require.NoError(t, session.Logout())

	_, err := session.Login(context.Background(), service.Credentials{
		Email:    "john@example.com",
		Password: "not-the-password",
	})

	require.Error(t, err)
	var apiErr *domainerrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "INVALID_CREDENTIALS", apiErr.Code)
	assert.False(t, session.IsAuthenticated())
	assert.Error(t, session.LastError())
}

func TestIntegration_CatalogBrowsing(t *testing.T) {
	server := startCommerceServer(t)
	_, _, client := newStores(t, server.URL)
	ctx := context.Background()

	page, err := client.GetProducts(ctx, entity.ProductQuery{Limit: 3})
	require.NoError(t, err)
	assert.Len(t, page.Products, 3)
	assert.Equal(t, 3, page.Limit)

	filtered, err := client.GetProducts(ctx, entity.ProductQuery{Category: "kitchen"})
	require.NoError(t, err)
	for _, product := range filtered.Products {
		assert.Equal(t, "kitchen", product.Category)
	}

	featured, err := client.GetFeaturedProducts(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, featured)
	for _, product := range featured {
		assert.True(t, product.Featured)
	}

	single, err := client.GetProduct(ctx, "product-1")
	require.NoError(t, err)
	assert.Equal(t, "Wireless Headphones", single.Name)

	_, err = client.GetProduct(ctx, "no-such-product")
	var apiErr *domainerrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestIntegration_CartLifecycle(t *testing.T) {
	server := startCommerceServer(t)
	session, cart, _ := newStores(t, server.URL)
	ctx := context.Background()

	// Mutations before login fail with a typed error and never hit the wire.
	_, err := cart.AddItem(ctx, "product-1", 1)
	assert.ErrorIs(t, err, domainerrors.ErrAuthRequired)

	signup(t, session)

	snapshot, err := cart.AddItem(ctx, "product-1", 2)
	require.NoError(t, err)
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, 2, snapshot.Items[0].Quantity)
	assert.InDelta(t, 259.98, snapshot.TotalAmount, 0.001)

	snapshot, err = cart.AddItem(ctx, "product-2", 1)
	require.NoError(t, err)
	assert.Len(t, snapshot.Items, 2)
	assert.Equal(t, 3, snapshot.TotalItems)

	itemID := snapshot.Item(snapshot.Items[0].ID).ID
	snapshot, err = cart.UpdateQuantity(ctx, itemID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, snapshot.Items[0].Quantity)

	// Zero quantity removes the line item entirely.
	snapshot, err = cart.UpdateQuantity(ctx, itemID, 0)
	require.NoError(t, err)
	assert.Len(t, snapshot.Items, 1)

	require.NoError(t, cart.Clear(ctx))
	assert.Nil(t, cart.Snapshot())

	refreshed, err := cart.Refresh(ctx)
	require.NoError(t, err)
	assert.Empty(t, refreshed.Items)
}

func TestIntegration_CartDroppedOnLogout(t *testing.T) {
	server := startCommerceServer(t)
	session, cart, _ := newStores(t, server.URL)
	ctx := context.Background()

	signup(t, session)

	_, err := cart.AddItem(ctx, "product-1", 1)
	require.NoError(t, err)
	require.NotNil(t, cart.Snapshot())

	require.NoError(t, session.Logout())
	assert.Nil(t, cart.Snapshot())

	_, err = cart.Refresh(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrAuthRequired)
}

func TestIntegration_OrderLifecycle(t *testing.T) {
	server := startCommerceServer(t)
	session, cart, client := newStores(t, server.URL)
	ctx := context.Background()

	signup(t, session)

	_, err := cart.AddItem(ctx, "product-1", 2)
	require.NoError(t, err)

	input := service.CheckoutInput{
		ShippingAddress: entity.ShippingAddress{
			Street: "1 Main St", City: "Springfield", State: "IL", Zip: "62701", Country: "USA",
		},
		PaymentMethod: "credit_card",
	}

	order, err := client.CreateOrder(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.InDelta(t, 259.98, order.TotalAmount, 0.001)

	// Checkout consumes the cart.
	refreshed, err := cart.Refresh(ctx)
	require.NoError(t, err)
	assert.Empty(t, refreshed.Items)

	// Checkout with an empty cart is rejected.
	_, err = client.CreateOrder(ctx, input)
	var apiErr *domainerrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "EMPTY_CART", apiErr.Code)

	orders, err := client.GetOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	fetched, err := client.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, fetched.ID)

	cancelled, err := client.CancelOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, cancelled.Status)

	// A cancelled order cannot be cancelled again.
	_, err = client.CancelOrder(ctx, order.ID)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
}

func TestIntegration_StockEnforcedAcrossCheckout(t *testing.T) {
	server := startCommerceServer(t)
	session, cart, client := newStores(t, server.URL)
	ctx := context.Background()

	signup(t, session)

	// product-3 seeds with 12 in stock: buy 10, then try 5 more.
	_, err := cart.AddItem(ctx, "product-3", 10)
	require.NoError(t, err)

	_, err = client.CreateOrder(ctx, service.CheckoutInput{
		ShippingAddress: entity.ShippingAddress{
			Street: "1 Main St", City: "Springfield", State: "IL", Zip: "62701", Country: "USA",
		},
		PaymentMethod: "credit_card",
	})
	require.NoError(t, err)

	_, err = cart.AddItem(ctx, "product-3", 5)
	require.Error(t, err)
	var apiErr *domainerrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "OUT_OF_STOCK", apiErr.Code)
}
