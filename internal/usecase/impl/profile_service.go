package impl

import (
	"context"
	"log/slog"

	deliverycontext "vendo/internal/delivery/context"
	"vendo/internal/domain/entity"
	domainerrors "vendo/internal/domain/errors"
	"vendo/internal/domain/repository"
	"vendo/internal/domain/service"
	"vendo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	accountRepo   repository.AccountRepository
	productRepo   repository.ProductRepository
	qrcodeService service.QRCodeService
	logger        *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	AccountRepo   repository.AccountRepository
	ProductRepo   repository.ProductRepository
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		accountRepo:   params.AccountRepo,
		productRepo:   params.ProductRepo,
		qrcodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateStore opens the caller's store. An account holds at most one.
func (srv *profileService) CreateStore(ctx context.Context, callerID uuid.UUID, input *usecase.CreateStoreInput) (*entity.VendorProfile, error) {
	srv.log(ctx).Info("Creating store", slog.Any("accountID", callerID))

	account, err := srv.loadAccount(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if account.Role != entity.RoleVendor {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only vendor accounts can open a store")
	}

	profile := &entity.VendorProfile{
		AccountID:        callerID,
		StoreName:        input.StoreName,
		StoreLogo:        input.StoreLogo,
		StoreDescription: input.StoreDescription,
	}

	if err := srv.accountRepo.CreateVendorProfile(ctx, profile); err != nil {
		srv.log(ctx).Warn("Failed to create store", slog.Any("accountID", callerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create vendor profile")
	}

	return profile, nil
}

// CreateCustomerProfile creates the caller's customer profile.
func (srv *profileService) CreateCustomerProfile(ctx context.Context, callerID uuid.UUID, input *usecase.CreateCustomerProfileInput) (*entity.CustomerProfile, error) {
	srv.log(ctx).Info("Creating customer profile", slog.Any("accountID", callerID))

	account, err := srv.loadAccount(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if account.Role != entity.RoleCustomer {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only customer accounts can create a customer profile")
	}

	profile := &entity.CustomerProfile{
		AccountID: callerID,
		Profile:   input.Profile,
	}

	if err := srv.accountRepo.CreateCustomerProfile(ctx, profile); err != nil {
		srv.log(ctx).Warn("Failed to create customer profile", slog.Any("accountID", callerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create customer profile")
	}

	return profile, nil
}

// UpdateCustomerProfile replaces the caller's whole profile blob.
func (srv *profileService) UpdateCustomerProfile(ctx context.Context, callerID uuid.UUID, input *usecase.UpdateCustomerProfileInput) (*entity.CustomerProfile, error) {
	profile := &entity.CustomerProfile{
		AccountID: callerID,
		Profile:   input.Profile,
	}

	if err := srv.accountRepo.UpdateCustomerProfile(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrCustomerProfileNotFound) {
			return nil, domainerrors.ErrCustomerProfileMissing
		}

		return nil, errors.Wrap(err, "failed to update customer profile")
	}

	updated, err := srv.accountRepo.FindCustomerProfile(ctx, callerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload customer profile")
	}

	return updated, nil
}

// ListVendors returns every store, products included.
func (srv *profileService) ListVendors(ctx context.Context) ([]*entity.VendorProfile, error) {
	profiles, err := srv.accountRepo.ListVendorProfiles(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendor profiles")
	}

	for _, profile := range profiles {
		if err := srv.attachProducts(ctx, profile); err != nil {
			return nil, err
		}
	}

	return profiles, nil
}

// Followers returns the customer accounts following the caller's store.
func (srv *profileService) Followers(ctx context.Context, callerID uuid.UUID) ([]*entity.Account, error) {
	profile, err := srv.loadOwnStore(ctx, callerID)
	if err != nil {
		return nil, err
	}

	followers := make([]*entity.Account, 0, len(profile.Followers))
	for _, followerID := range profile.Followers {
		follower, err := srv.accountRepo.FindByID(ctx, followerID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				// A deleted account leaves a dangling edge; skip it.
				continue
			}

			return nil, errors.Wrap(err, "failed to load follower account")
		}
		followers = append(followers, follower)
	}

	return followers, nil
}

// FollowVendor records that the caller follows a store. Idempotent.
func (srv *profileService) FollowVendor(ctx context.Context, callerID, vendorID uuid.UUID) error {
	if _, err := srv.accountRepo.FindCustomerProfile(ctx, callerID); err != nil {
		if errors.Is(err, repository.ErrCustomerProfileNotFound) {
			return domainerrors.ErrCustomerProfileMissing
		}

		return errors.Wrap(err, "failed to load customer profile")
	}

	if _, err := srv.accountRepo.FindVendorProfile(ctx, vendorID); err != nil {
		if errors.Is(err, repository.ErrVendorProfileNotFound) {
			return domainerrors.ErrVendorNotFound
		}

		return errors.Wrap(err, "failed to load vendor profile")
	}

	if err := srv.accountRepo.AddFollower(ctx, vendorID, callerID); err != nil {
		return errors.Wrap(err, "failed to follow vendor")
	}
	srv.log(ctx).Debug("Followed vendor", slog.Any("customerID", callerID), slog.Any("vendorID", vendorID))

	return nil
}

// UnfollowVendor removes the caller's follow edge to a store. Removing an
// edge that was never there is a no-op.
func (srv *profileService) UnfollowVendor(ctx context.Context, callerID, vendorID uuid.UUID) error {
	if _, err := srv.accountRepo.FindCustomerProfile(ctx, callerID); err != nil {
		if errors.Is(err, repository.ErrCustomerProfileNotFound) {
			return domainerrors.ErrCustomerProfileMissing
		}

		return errors.Wrap(err, "failed to load customer profile")
	}

	if _, err := srv.accountRepo.FindVendorProfile(ctx, vendorID); err != nil {
		if errors.Is(err, repository.ErrVendorProfileNotFound) {
			return domainerrors.ErrVendorNotFound
		}

		return errors.Wrap(err, "failed to load vendor profile")
	}

	if err := srv.accountRepo.RemoveFollower(ctx, vendorID, callerID); err != nil {
		return errors.Wrap(err, "failed to unfollow vendor")
	}
	srv.log(ctx).Debug("Unfollowed vendor", slog.Any("customerID", callerID), slog.Any("vendorID", vendorID))

	return nil
}

// FollowedVendors returns the stores the caller follows.
func (srv *profileService) FollowedVendors(ctx context.Context, callerID uuid.UUID) ([]*entity.VendorProfile, error) {
	if _, err := srv.accountRepo.FindCustomerProfile(ctx, callerID); err != nil {
		if errors.Is(err, repository.ErrCustomerProfileNotFound) {
			return nil, domainerrors.ErrCustomerProfileMissing
		}

		return nil, errors.Wrap(err, "failed to load customer profile")
	}

	profiles, err := srv.accountRepo.ListFollowedVendors(ctx, callerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list followed vendors")
	}

	for _, profile := range profiles {
		if err := srv.attachProducts(ctx, profile); err != nil {
			return nil, err
		}
	}

	return profiles, nil
}

// StoreQR renders a PNG QR code deep-linking the caller's store.
func (srv *profileService) StoreQR(ctx context.Context, callerID uuid.UUID) ([]byte, error) {
	if _, err := srv.loadOwnStore(ctx, callerID); err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.GenerateStoreQR(callerID)
	if err != nil {
		srv.log(ctx).Error("Failed to render store QR code", slog.Any("vendorID", callerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate store QR code")
	}

	return png, nil
}

// loadAccount fetches an account or reports it missing.
func (srv *profileService) loadAccount(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to load account")
	}

	return account, nil
}

// loadOwnStore fetches the caller's own store, reporting a missing one as a
// precondition failure rather than a 404.
func (srv *profileService) loadOwnStore(ctx context.Context, callerID uuid.UUID) (*entity.VendorProfile, error) {
	profile, err := srv.accountRepo.FindVendorProfile(ctx, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorProfileNotFound) {
			return nil, domainerrors.ErrVendorProfileMissing
		}

		return nil, errors.Wrap(err, "failed to load vendor profile")
	}

	return profile, nil
}

// attachProducts fills the has-many product projection of a store.
func (srv *profileService) attachProducts(ctx context.Context, profile *entity.VendorProfile) error {
	products, err := srv.productRepo.ListByVendor(ctx, profile.AccountID)
	if err != nil {
		return errors.Wrap(err, "failed to load store products")
	}
	profile.Products = products

	return nil
}
