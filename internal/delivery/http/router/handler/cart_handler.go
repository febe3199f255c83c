package handler

import (
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for the cart endpoints. All of them operate
// on the authenticated user's cart.
type CartHandler struct {
	carts   repository.CartRepository
	catalog repository.CatalogRepository
}

// NewCartHandler is the constructor for CartHandler.
func NewCartHandler(carts repository.CartRepository, catalog repository.CatalogRepository) *CartHandler {
	return &CartHandler{carts: carts, catalog: catalog}
}

type addToCartInput struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

type updateCartItemInput struct {
	Quantity int `json:"quantity"`
}

// Get returns the current cart.
func (h *CartHandler) Get(c echo.Context) error {
	cart, err := h.carts.Get(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return errors.Wrap(err, "get cart")
	}

	return response.Success(c, http.StatusOK, cart, "")
}

// Add puts a product into the cart. The catalog's stock is the limit for the
// resulting line quantity.
func (h *CartHandler) Add(c echo.Context) error {
	var input addToCartInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "invalid cart input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	ctx := c.Request().Context()
	userID := middleware.UserID(c)

	product, err := h.catalog.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.WithStack(domainerrors.ErrProductNotFound)
		}

		return errors.Wrap(err, "find product")
	}

	current, err := h.carts.Get(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "get cart")
	}
	inCart := 0
	for _, item := range current.Items {
		if item.ProductID == product.ID {
			inCart = item.Quantity
		}
	}
	if inCart+input.Quantity > product.Stock {
		return errors.WithStack(domainerrors.ErrOutOfStock)
	}

	cart, err := h.carts.AddItem(ctx, userID, product, input.Quantity)
	if err != nil {
		return errors.Wrap(err, "add cart item")
	}

	return response.Success(c, http.StatusOK, cart, "Item added to cart")
}

// Update changes a line item's quantity; zero or less removes the line item.
func (h *CartHandler) Update(c echo.Context) error {
	var input updateCartItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "invalid cart input")
	}

	cart, err := h.carts.UpdateItem(c.Request().Context(), middleware.UserID(c), c.Param("itemId"), input.Quantity)
	if err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return errors.WithStack(domainerrors.ErrCartItemNotFound)
		}

		return errors.Wrap(err, "update cart item")
	}

	return response.Success(c, http.StatusOK, cart, "Cart updated")
}

// Remove deletes a single line item.
func (h *CartHandler) Remove(c echo.Context) error {
	cart, err := h.carts.RemoveItem(c.Request().Context(), middleware.UserID(c), c.Param("itemId"))
	if err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return errors.WithStack(domainerrors.ErrCartItemNotFound)
		}

		return errors.Wrap(err, "remove cart item")
	}

	return response.Success(c, http.StatusOK, cart, "Item removed from cart")
}

// Clear empties the entire cart.
func (h *CartHandler) Clear(c echo.Context) error {
	if err := h.carts.Clear(c.Request().Context(), middleware.UserID(c)); err != nil {
		return errors.Wrap(err, "clear cart")
	}

	return response.Success(c, http.StatusOK, nil, "Cart cleared")
}
