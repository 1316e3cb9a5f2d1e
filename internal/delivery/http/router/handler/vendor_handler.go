package handler

import (
	"log/slog"
	"net/http"

	"vendo/internal/delivery/http/response"
	"vendo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// VendorHandlerParams holds dependencies for VendorHandler, injected by Fx.
type VendorHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	CatalogUC usecase.CatalogUsecase
	ReviewUC  usecase.ReviewUsecase
	Logger    *slog.Logger
}

// VendorHandler holds dependencies for vendor-facing handlers.
type VendorHandler struct {
	profileUC usecase.ProfileUsecase
	catalogUC usecase.CatalogUsecase
	reviewUC  usecase.ReviewUsecase
	logger    *slog.Logger
}

// NewVendorHandler is the constructor for VendorHandler.
func NewVendorHandler(params VendorHandlerParams) *VendorHandler {
	return &VendorHandler{
		profileUC: params.ProfileUC,
		catalogUC: params.CatalogUC,
		reviewUC:  params.ReviewUC,
		logger:    params.Logger,
	}
}

// CreateStoreRequest represents the request body for opening a store.
type CreateStoreRequest struct {
	StoreName        string `json:"storeName" validate:"required"`
	StoreLogo        string `json:"storeLogo"`
	StoreDescription string `json:"storeDescription"`
}

// AddProductRequest represents the request body for listing a product
// through the vendor surface.
type AddProductRequest struct {
	Title             string  `json:"title" validate:"required"`
	Description       string  `json:"description"`
	Price             float64 `json:"price" validate:"gte=0"`
	QuantityAvailable int     `json:"quantityAvailable" validate:"gte=0"`
}

// CreateStore handles opening the caller's store.
func (h *VendorHandler) CreateStore(c echo.Context) error {
	accountID, err := callerAccountID(c)
	if err != nil {
		return err
	}

	var req CreateStoreRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	profile, err := h.profileUC.CreateStore(c.Request().Context(), accountID, &usecase.CreateStoreInput{
		StoreName:        req.StoreName,
		StoreLogo:        req.StoreLogo,
		StoreDescription: req.StoreDescription,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"store": newVendorProfileView(profile),
	}, "Store created successfully")
}

// AddProduct handles listing a new product under the caller's store.
func (h *VendorHandler) AddProduct(c echo.Context) error {
	accountID, err := callerAccountID(c)
	if err != nil {
		return err
	}

	var req AddProductRequest
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
		"productId": product.ID,
	}, "Product added successfully")
}

// ProductReviews returns the reviews of every product in the caller's store.
func (h *VendorHandler) ProductReviews(c echo.Context) error {
	accountID, err := callerAccountID(c)
	if err != nil {
		return err
	}

	grouped, err := h.reviewUC.ReviewsForVendor(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"productReviews": newProductReviewsViews(grouped),
	}, "Product reviews retrieved successfully")
}

// Followers returns the customer accounts following the caller's store.
func (h *VendorHandler) Followers(c echo.Context) error {
	accountID, err := callerAccountID(c)
	if err != nil {
		return err
	}

	followers, err := h.profileUC.Followers(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*AccountView, 0, len(followers))
	for _, follower := range followers {
		views = append(views, newAccountView(follower))
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"followers": views,
	}, "Followers retrieved successfully")
}

// StoreQR renders a PNG QR code deep-linking the caller's store page.
func (h *VendorHandler) StoreQR(c echo.Context) error {
	accountID, err := callerAccountID(c)
	if err != nil {
		return err
	}

	png, err := h.profileUC.StoreQR(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
