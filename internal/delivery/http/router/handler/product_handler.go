package handler

import (
	"log/slog"
	"net/http"

	"vendo/internal/delivery/http/response"
	"vendo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// ProductHandler holds dependencies for catalog handlers.
type ProductHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler.
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// CreateProductRequest represents the request body for listing a product.
type CreateProductRequest struct {
	Title             string  `json:"title" validate:"required"`
	Description       string  `json:"description"`
	Price             float64 `json:"price" validate:"gte=0"`
	QuantityAvailable int     `json:"quantityAvailable" validate:"gte=0"`
}

// UpdateProductRequest carries a partial product update. Omitted fields keep
// their stored values.
type UpdateProductRequest struct {
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	Price             float64 `json:"price"`
	QuantityAvailable int     `json:"quantityAvailable"`
}

// Create handles listing a new product under the caller's store.
func (h *ProductHandler) Create(c echo.Context) error {
	accountID, err := callerAccountID(c)
	if err != nil {
		return err
	}

	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	product, err := h.catalogUC.CreateProduct(c.Request().Context(), accountID, &usecase.CreateProductInput{
		Title:             req.Title,
		Description:       req.Description,
		Price:             req.Price,
		QuantityAvailable: req.QuantityAvailable,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"product": newProductView(product),
	}, "Product created successfully")
}

// All returns the whole live catalog.
func (h *ProductHandler) All(c echo.Context) error {
	products, err := h.catalogUC.ListProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"products": newProductViews(products),
	}, "Products retrieved successfully")
}

// Get returns a single live product.
func (h *ProductHandler) Get(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"product": newProductView(product),
	}, "Product retrieved successfully")
}

// Update applies a partial update to a product the caller owns.
func (h *ProductHandler) Update(c echo.Context) error {
	accountID, err := callerAccountID(c)
	if err != nil {
		return err
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	product, err := h.catalogUC.UpdateProduct(c.Request().Context(), accountID, productID, &usecase.UpdateProductInput{
		Title:             req.Title,
		Description:       req.Description,
		Price:             req.Price,
		QuantityAvailable: req.QuantityAvailable,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"product": newProductView(product),
	}, "Product updated successfully")
}

// Delete tombstones a product the caller owns.
func (h *ProductHandler) Delete(c echo.Context) error {
	accountID, err := callerAccountID(c)
	if err != nil {
		return err
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	if err := h.catalogUC.DeleteProduct(c.Request().Context(), accountID, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}
