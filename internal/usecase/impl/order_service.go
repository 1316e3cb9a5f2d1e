package impl

import (
	"context"
	"log/slog"
	"math/rand/v2"

	deliverycontext "vendo/internal/delivery/context"
	"vendo/internal/domain/authz"
	"vendo/internal/domain/entity"
	domainerrors "vendo/internal/domain/errors"
	"vendo/internal/domain/repository"
	"vendo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Order numbers are random 15-digit integers, in [1e14, 1e15).
const (
	orderNumberMin  = 100_000_000_000_000
	orderNumberSpan = 900_000_000_000_000
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	ProductRepo repository.ProductRepository
	OrderRepo   repository.OrderRepository
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		productRepo: params.ProductRepo,
		orderRepo:   params.OrderRepo,
		logger:      params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder places a new order for the caller. The order row and the
// caller's purchase history append commit in one transaction.
// TotalAmount is stored exactly as submitted; the server does not price the
// cart server-side.
func (srv *orderService) CreateOrder(ctx context.Context, callerID uuid.UUID, input *usecase.CreateOrderInput) (*entity.Order, error) {
	srv.log(ctx).Info("Creating order", slog.Any("customerID", callerID), slog.Int("products", len(input.ProductIDs)))

	if len(input.ProductIDs) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "order must contain at least one product")
	}

	order := &entity.Order{
		OrderNumber: newOrderNumber(),
		CustomerID:  callerID,
		ProductIDs:  input.ProductIDs,
		TotalAmount: input.TotalAmount,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.AccountRepo().FindCustomerProfile(ctx, callerID); err != nil {
			if errors.Is(err, repository.ErrCustomerProfileNotFound) {
				return domainerrors.ErrCustomerProfileMissing
			}

			return errors.Wrap(err, "failed to load customer profile")
		}

		if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		return repoFactory.AccountRepo().AddPurchases(ctx, callerID, input.ProductIDs)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create order", slog.Any("customerID", callerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute order creation transaction")
	}

	srv.log(ctx).Debug("Order created", slog.Any("orderID", order.ID), slog.Int64("orderNumber", order.OrderNumber))

	return order, nil
}

// OrdersForCustomer returns all orders placed by the caller.
func (srv *orderService) OrdersForCustomer(ctx context.Context, callerID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByCustomer(ctx, callerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer orders")
	}

	return orders, nil
}

// OrdersForVendor returns every order containing at least one of the caller's
// products, together with a per-product occurrence count. The count covers
// every line of each matched order, so an order mixing stores also counts the
// other stores' products.
func (srv *orderService) OrdersForVendor(ctx context.Context, callerID uuid.UUID) (*usecase.VendorOrdersOutput, error) {
	if _, err := srv.accountRepo.FindVendorProfile(ctx, callerID); err != nil {
		if errors.Is(err, repository.ErrVendorProfileNotFound) {
			return nil, domainerrors.ErrVendorProfileMissing
		}

		return nil, errors.Wrap(err, "failed to load vendor profile")
	}

	products, err := srv.productRepo.ListByVendor(ctx, callerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendor products")
	}

	productIDs := make([]uuid.UUID, 0, len(products))
	for _, product := range products {
		productIDs = append(productIDs, product.ID)
	}

	orders, err := srv.orderRepo.ListContainingProducts(ctx, productIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendor orders")
	}

	counts := make(map[uuid.UUID]int)
	for _, order := range orders {
		for _, productID := range order.ProductIDs {
			counts[productID]++
		}
	}

	return &usecase.VendorOrdersOutput{
		Orders:            orders,
		ProductOrderCount: counts,
	}, nil
}

// GetOrder returns a single order. Existence is resolved before ownership so
// a missing order reports 404, never 403.
func (srv *orderService) GetOrder(ctx context.Context, callerID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to load order")
	}

	if err := authz.RequireOwner(callerID, order.CustomerID); err != nil {
		srv.log(ctx).Warn("Rejected order read by non-owner", slog.Any("callerID", callerID), slog.Any("orderID", orderID))

		return nil, err
	}

	return order, nil
}

func newOrderNumber() int64 {
	return orderNumberMin + rand.Int64N(orderNumberSpan)
}
