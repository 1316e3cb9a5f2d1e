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

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order ledger handlers.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// CreateOrderRequest represents the request body for placing an order.
// The total is stored exactly as submitted.
type CreateOrderRequest struct {
	Products    []uuid.UUID `json:"products" validate:"required,min=1"`
	TotalAmount float64     `json:"totalAmount"`
}

// Create handles placing a new order for the caller.
func (h *OrderHandler) Create(c echo.Context) error {
	accountID, err := callerAccountID(c)
	if err != nil {
		return err
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), accountID, &usecase.CreateOrderInput{
		ProductIDs:  req.Products,
		TotalAmount: req.TotalAmount,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"order": newOrderView(order),
	}, "Order placed successfully")
}

// VendorOrders returns every order touching the caller's products, with the
// per-product occurrence count.
func (h *OrderHandler) VendorOrders(c echo.Context) error {
	accountID, err := callerAccountID(c)
	if err != nil {
		return err
	}

	output, err := h.orderUC.OrdersForVendor(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"orders":            newOrderViews(output.Orders),
		"productOrderCount": output.ProductOrderCount,
	}, "Vendor orders retrieved successfully")
}

// CustomerOrders returns the caller's own orders.
func (h *OrderHandler) CustomerOrders(c echo.Context) error {
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

// Get returns a single order the caller placed.
func (h *OrderHandler) Get(c echo.Context) error {
	accountID, err := callerAccountID(c)
	if err != nil {
		return err
	}

	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), accountID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"order": newOrderView(order),
	}, "Order retrieved successfully")
}
