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

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	OrderUC   usecase.OrderUsecase
	ReviewUC  usecase.ReviewUsecase
	Logger    *slog.Logger
}

// CustomerHandler holds dependencies for customer-facing handlers.
type CustomerHandler struct {
	profileUC usecase.ProfileUsecase
	orderUC   usecase.OrderUsecase
	reviewUC  usecase.ReviewUsecase
	logger    *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler.
func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{
		profileUC: params.ProfileUC,
		orderUC:   params.OrderUC,
		reviewUC:  params.ReviewUC,
		logger:    params.Logger,
	}
}

// CreateCustomerProfileRequest represents the request body for creating a
// customer profile. The profile blob is stored opaquely.
type CreateCustomerProfileRequest struct {
	Profile string `json:"profile"`
}

// UpdateCustomerProfileRequest replaces the whole profile blob.
type UpdateCustomerProfileRequest struct {
	Profile string `json:"profile"`
}

// CreateProfile handles creating the caller's customer profile.
func (h *CustomerHandler) CreateProfile(c echo.Context) error {
	accountID, err := callerAccountID(c)
	if err != nil {
		return err
	}

	var req CreateCustomerProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	profile, err := h.profileUC.CreateCustomerProfile(c.Request().Context(), accountID, &usecase.CreateCustomerProfileInput{
		Profile: req.Profile,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"profile": newCustomerProfileView(profile),
	}, "Customer profile created successfully")
}

// UpdateProfile handles replacing the caller's profile blob.
func (h *CustomerHandler) UpdateProfile(c echo.Context) error {
	accountID, err := callerAccountID(c)
	if err != nil {
		return err
	}

	var req UpdateCustomerProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	profile, err := h.profileUC.UpdateCustomerProfile(c.Request().Context(), accountID, &usecase.UpdateCustomerProfileInput{
		Profile: req.Profile,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"profile": newCustomerProfileView(profile),
	}, "Customer profile updated successfully")
}

// Orders returns the caller's order history.
func (h *CustomerHandler) Orders(c echo.Context) error {
	accountID, err := callerAccountID(c)
	if err != nil {
		return err
	}

	orders, err := h.orderUC.OrdersForCustomer(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"orders": newOrderViews(orders),
	}, "Orders retrieved successfully")
}

// Reviews returns the reviews the caller has written.
func (h *CustomerHandler) Reviews(c echo.Context) error {
	accountID, err := callerAccountID(c)
	if err != nil {
		return err
	}

	reviews, err := h.reviewUC.ReviewsForCustomer(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"reviews": newReviewViews(reviews),
	}, "Reviews retrieved successfully")
}

// Vendors returns every store on the site, products included.
func (h *CustomerHandler) Vendors(c echo.Context) error {
	vendors, err := h.profileUC.ListVendors(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"vendors": newVendorProfileViews(vendors),
	}, "Vendors retrieved successfully")
}

// Follow records that the caller follows a store. Idempotent.
func (h *CustomerHandler) Follow(c echo.Context) error {
	accountID, err := callerAccountID(c)
	if err != nil {
		return err
	}

	vendorID, err := uuid.Parse(c.Param("vendorId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vendor ID")
	}

	if err := h.profileUC.FollowVendor(c.Request().Context(), accountID, vendorID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Vendor followed successfully")
}

// Unfollow removes the caller's follow edge to a store. Idempotent.
func (h *CustomerHandler) Unfollow(c echo.Context) error {
	accountID, err := callerAccountID(c)
	if err != nil {
		return err
	}

	vendorID, err := uuid.Parse(c.Param("vendorId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vendor ID")
	}

	if err := h.profileUC.UnfollowVendor(c.Request().Context(), accountID, vendorID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Vendor unfollowed successfully")
}

// Following returns the stores the caller follows.
func (h *CustomerHandler) Following(c echo.Context) error {
	accountID, err := callerAccountID(c)
	if err != nil {
		return err
	}

	vendors, err := h.profileUC.FollowedVendors(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"vendors": newVendorProfileViews(vendors),
	}, "Followed vendors retrieved successfully")
}
