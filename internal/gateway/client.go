// Package gateway implements the HTTP client for the remote commerce API.
// It is a stateless one-call-to-one-request mapping: no retry, no backoff,
// no caching, no batching.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

// envelope mirrors the unified response structure of the commerce API.
type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *errorInfo      `json:"error,omitempty"`
}

type errorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}

// Client implements service.CommerceGateway over HTTP. A bearer token, when
// present in the credential store, is attached to every request.
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      service.CredentialStore
	logger     *slog.Logger
}

// NewClient is the constructor for Client.
func NewClient(cfg *config.Config, creds service.CredentialStore, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    cfg.Client.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Client.Timeout},
		creds:      creds,
		logger:     logger,
	}
}

// do issues one request and decodes the response envelope. Any transport
// error or non-2xx status is returned to the caller; status codes are not
// interpreted here.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "marshal request body")
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.creds.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response body")
	}

	var env envelope
	if len(respBody) > 0 {
		// A body that is not the expected envelope still yields a typed
		// failure below when the status is non-2xx.
		_ = json.Unmarshal(respBody, &env)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices || (len(respBody) > 0 && !env.Success) {
		apiErr := &domainerrors.APIError{
			Status: resp.StatusCode,
			Msg:    env.Message,
		}
		if apiErr.Msg == "" {
			apiErr.Msg = http.StatusText(resp.StatusCode)
		}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Detail = env.Error.Details
		}
		c.logger.Debug("api call failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.String("code", apiErr.Code),
		)

		return nil, apiErr
	}

	return env.Data, nil
}

// call decodes the envelope's data payload into T.
func call[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) (*T, error) {
	data, err := c.do(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}

	out := new(T)
	if len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return nil, errors.Wrapf(err, "decode %s %s response", method, path)
		}
	}

	return out, nil
}

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, creds service.Credentials) (*service.AuthResult, error) {
	return call[service.AuthResult](ctx, c, http.MethodPost, "/auth/login", nil, creds)
}

// Signup registers a new account.
func (c *Client) Signup(ctx context.Context, profile service.SignupProfile) (*service.AuthResult, error) {
	return call[service.AuthResult](ctx, c, http.MethodPost, "/auth/signup", nil, profile)
}

// GetCurrentUser fetches the profile of the authenticated user.
func (c *Client) GetCurrentUser(ctx context.Context) (*entity.User, error) {
	return call[entity.User](ctx, c, http.MethodGet, "/auth/profile", nil, nil)
}

// GetProducts lists catalog products with optional paging and filters.
func (c *Client) GetProducts(ctx context.Context, query entity.ProductQuery) (*entity.ProductPage, error) {
	values := url.Values{}
	if query.Page > 0 {
		values.Set("page", strconv.Itoa(query.Page))
	}
	if query.Limit > 0 {
		values.Set("limit", strconv.Itoa(query.Limit))
	}
	if query.Search != "" {
		values.Set("search", query.Search)
	}
	if query.Category != "" {
		values.Set("category", query.Category)
	}

	return call[entity.ProductPage](ctx, c, http.MethodGet, "/products", values, nil)
}

// GetProduct fetches a single product by ID.
func (c *Client) GetProduct(ctx context.Context, productID string) (*entity.Product, error) {
	return call[entity.Product](ctx, c, http.MethodGet, "/products/"+url.PathEscape(productID), nil, nil)
}

// GetFeaturedProducts fetches the featured product selection.
func (c *Client) GetFeaturedProducts(ctx context.Context) ([]entity.Product, error) {
	products, err := call[[]entity.Product](ctx, c, http.MethodGet, "/products/featured", nil, nil)
	if err != nil {
		return nil, err
	}

	return *products, nil
}

// GetCart fetches the current cart.
func (c *Client) GetCart(ctx context.Context) (*entity.Cart, error) {
	return call[entity.Cart](ctx, c, http.MethodGet, "/cart", nil, nil)
}

// AddToCart adds a product to the cart and returns the updated cart.
func (c *Client) AddToCart(ctx context.Context, productID string, quantity int) (*entity.Cart, error) {
	body := map[string]any{"productId": productID, "quantity": quantity}

	return call[entity.Cart](ctx, c, http.MethodPost, "/cart", nil, body)
}

// UpdateCartItem changes a line item's quantity and returns the updated cart.
func (c *Client) UpdateCartItem(ctx context.Context, itemID string, quantity int) (*entity.Cart, error) {
	body := map[string]any{"quantity": quantity}

	return call[entity.Cart](ctx, c, http.MethodPut, "/cart/"+url.PathEscape(itemID), nil, body)
}

// RemoveFromCart removes a line item and returns the updated cart.
func (c *Client) RemoveFromCart(ctx context.Context, itemID string) (*entity.Cart, error) {
	return call[entity.Cart](ctx, c, http.MethodDelete, "/cart/"+url.PathEscape(itemID), nil, nil)
}

// ClearCart empties the entire cart.
func (c *Client) ClearCart(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodDelete, "/cart", nil, nil)

	return err
}

// CreateOrder places an order from the current cart.
func (c *Client) CreateOrder(ctx context.Context, input service.CheckoutInput) (*entity.Order, error) {
	return call[entity.Order](ctx, c, http.MethodPost, "/orders", nil, input)
}

// GetOrders lists the authenticated user's orders.
func (c *Client) GetOrders(ctx context.Context) ([]entity.Order, error) {
	orders, err := call[[]entity.Order](ctx, c, http.MethodGet, "/orders", nil, nil)
	if err != nil {
		return nil, err
	}

	return *orders, nil
}

// GetOrder fetches a single order by ID.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*entity.Order, error) {
	return call[entity.Order](ctx, c, http.MethodGet, "/orders/"+url.PathEscape(orderID), nil, nil)
}

// CancelOrder cancels a pending or processing order.
func (c *Client) CancelOrder(ctx context.Context, orderID string) (*entity.Order, error) {
	return call[entity.Order](ctx, c, http.MethodPut, "/orders/"+url.PathEscape(orderID)+"/cancel", nil, nil)
}

var _ service.CommerceGateway = (*Client)(nil)
