package impl

import (
	"context"
	"log/slog"

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

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct lists a new product under the caller's store.
func (srv *catalogService) CreateProduct(ctx context.Context, callerID uuid.UUID, input *usecase.CreateProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Creating product", slog.Any("vendorID", callerID), slog.String("title", input.Title))

	if input.Price < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "price must not be negative")
	}
	if input.QuantityAvailable < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "quantity must not be negative")
	}

	product := &entity.Product{
		Title:             input.Title,
		Description:       input.Description,
		Price:             input.Price,
		QuantityAvailable: input.QuantityAvailable,
		VendorID:          callerID,
	}

	// The profile check and the insert share a transaction so a store removed
	// mid-flight cannot end up with an orphaned product.
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.AccountRepo().FindVendorProfile(ctx, callerID); err != nil {
			if errors.Is(err, repository.ErrVendorProfileNotFound) {
				return domainerrors.ErrVendorProfileMissing
			}

			return errors.Wrap(err, "failed to load vendor profile")
		}

		return repoFactory.ProductRepo().Create(ctx, product)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create product", slog.Any("vendorID", callerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute product creation transaction")
	}

	return product, nil
}

// ListProducts returns the whole live catalog.
func (srv *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct returns a single live product.
func (srv *catalogService) GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	return product, nil
}

// UpdateProduct applies a partial update to a product the caller owns.
// Zero-valued input fields are left untouched; an empty input is a no-op.
// Existence is resolved before ownership so a missing product reports 404,
// never 403.
func (srv *catalogService) UpdateProduct(ctx context.Context, callerID, productID uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := authz.RequireOwner(callerID, product.VendorID); err != nil {
		srv.log(ctx).Warn("Rejected product update by non-owner", slog.Any("callerID", callerID), slog.Any("productID", productID))

		return nil, err
	}

	changed := false
	if input.Title != "" {
		product.Title = input.Title
		changed = true
	}
	if input.Description != "" {
		product.Description = input.Description
		changed = true
	}
	if input.Price != 0 {
		if input.Price < 0 {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "price must not be negative")
		}
		product.Price = input.Price
		changed = true
	}
	if input.QuantityAvailable != 0 {
		if input.QuantityAvailable < 0 {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "quantity must not be negative")
		}
		product.QuantityAvailable = input.QuantityAvailable
		changed = true
	}

	if !changed {
		return product, nil
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		srv.log(ctx).Warn("Failed to update product", slog.Any("productID", productID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// DeleteProduct tombstones a product the caller owns. Existing orders keep
// resolving the product through the tombstone.
func (srv *catalogService) DeleteProduct(ctx context.Context, callerID, productID uuid.UUID) error {
	product, err := srv.GetProduct(ctx, productID)
	if err != nil {
		return err
	}

	if err := authz.RequireOwner(callerID, product.VendorID); err != nil {
		srv.log(ctx).Warn("Rejected product deletion by non-owner", slog.Any("callerID", callerID), slog.Any("productID", productID))

		return err
	}

	if err := srv.productRepo.Delete(ctx, productID); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}
	srv.log(ctx).Info("Product deleted", slog.Any("productID", productID), slog.Any("vendorID", callerID))

	return nil
}
