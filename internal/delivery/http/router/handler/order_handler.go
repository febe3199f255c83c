package handler

import (
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for the order endpoints.
type OrderHandler struct {
	orders  repository.OrderRepository
	carts   repository.CartRepository
	catalog repository.CatalogRepository
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(
	orders repository.OrderRepository,
	carts repository.CartRepository,
	catalog repository.CatalogRepository,
	logger *slog.Logger,
) *OrderHandler {
	return &OrderHandler{
		orders:  orders,
		carts:   carts,
		catalog: catalog,
		logger:  logger,
	}
}

// Create places an order from the current cart, reserves stock for every
// line item, and empties the cart.
func (h *OrderHandler) Create(c echo.Context) error {
	var input service.CheckoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "invalid checkout input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	ctx := c.Request().Context()
	userID := middleware.UserID(c)

	cart, err := h.carts.Get(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "get cart")
	}
	if len(cart.Items) == 0 {
		return errors.WithStack(domainerrors.ErrEmptyCart)
	}

	// Reserve stock; roll back already reserved lines on failure.
	reserved := make([]entity.CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		if err := h.catalog.AdjustStock(ctx, item.ProductID, -item.Quantity); err != nil {
			for _, done := range reserved {
				_ = h.catalog.AdjustStock(ctx, done.ProductID, done.Quantity)
			}
			if errors.Is(err, repository.ErrInsufficientStock) {
				return errors.WithStack(domainerrors.ErrOutOfStock.WithDetails(item.ProductName))
			}

			return errors.Wrap(err, "reserve stock")
		}
		reserved = append(reserved, item)
	}

	order := &entity.Order{
		ID:              uuid.NewString(),
		Status:          entity.OrderStatusPending,
		TotalAmount:     cart.TotalAmount,
		ShippingAddress: input.ShippingAddress,
		PaymentMethod:   input.PaymentMethod,
		CreatedAt:       time.Now().UTC(),
	}
	for _, item := range cart.Items {
		order.Items = append(order.Items, entity.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal,
		})
	}

	if err := h.orders.Create(ctx, userID, order); err != nil {
		return errors.Wrap(err, "create order")
	}
	if err := h.carts.Clear(ctx, userID); err != nil {
		return errors.Wrap(err, "clear cart after checkout")
	}

	h.logger.Info("order placed",
		slog.String("order_id", order.ID),
		slog.Int("lines", len(order.Items)),
	)

	return response.Success(c, http.StatusCreated, order, "Order placed")
}

// List returns the authenticated user's orders, newest first.
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.orders.ListByUser(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return errors.Wrap(err, "list orders")
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// Get returns a single order by ID.
func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.orders.FindByID(c.Request().Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return errors.WithStack(domainerrors.ErrOrderNotFound)
		}

		return errors.Wrap(err, "find order")
	}

	return response.Success(c, http.StatusOK, order, "")
}

// Cancel cancels a pending or processing order and releases its stock.
func (h *OrderHandler) Cancel(c echo.Context) error {
	ctx := c.Request().Context()
	userID := middleware.UserID(c)

	order, err := h.orders.FindByID(ctx, userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return errors.WithStack(domainerrors.ErrOrderNotFound)
		}

		return errors.Wrap(err, "find order")
	}

	if !order.Status.Cancellable() {
		return errors.WithStack(domainerrors.ErrOrderNotCancellable)
	}

	order.Status = entity.OrderStatusCancelled
	if err := h.orders.Update(ctx, userID, order); err != nil {
		return errors.Wrap(err, "update order")
	}
	for _, item := range order.Items {
		_ = h.catalog.AdjustStock(ctx, item.ProductID, item.Quantity)
	}

	return response.Success(c, http.StatusOK, order, "Order cancelled")
}
