package handler

import (
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for the catalog endpoints.
type ProductHandler struct {
	catalog repository.CatalogRepository
}

// NewProductHandler is the constructor for ProductHandler.
func NewProductHandler(catalog repository.CatalogRepository) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// List returns one page of products, optionally filtered by search term and
// category.
func (h *ProductHandler) List(c echo.Context) error {
	query := entity.ProductQuery{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
	}
	query.Page, _ = strconv.Atoi(c.QueryParam("page"))
	query.Limit, _ = strconv.Atoi(c.QueryParam("limit"))

	page, err := h.catalog.List(c.Request().Context(), query)
	if err != nil {
		return errors.Wrap(err, "list products")
	}

	return response.Success(c, http.StatusOK, page, "")
}

// Featured returns the featured product selection.
func (h *ProductHandler) Featured(c echo.Context) error {
	products, err := h.catalog.Featured(c.Request().Context())
	if err != nil {
		return errors.Wrap(err, "list featured products")
	}

	return response.Success(c, http.StatusOK, products, "")
}

// Get returns a single product by ID.
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.catalog.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.WithStack(domainerrors.ErrProductNotFound)
		}

		return errors.Wrap(err, "find product")
	}

	return response.Success(c, http.StatusOK, product, "")
}
