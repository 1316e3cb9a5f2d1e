// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"vendo/internal/domain/entity"
	domainerrors "vendo/internal/domain/errors"
	"vendo/internal/domain/repository"
	"vendo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// accountRepository implements the domain.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByID retrieves a single account by its unique ID, preloading both role profiles.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Preload("VendorProfile.Followers").
		Preload("CustomerProfile.Purchases").
		Where("id = ?", id).
		First(&accountM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toAccountDomain(&accountM), nil
}

// FindByEmail retrieves a single account by its email address, preloading both role profiles.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Preload("VendorProfile.Followers").
		Preload("CustomerProfile.Purchases").
		Where("email = ?", email).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return toAccountDomain(&accountM), nil
}

// Create persists a new account entity to the database.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAccountCreationFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	// Update the account entity with the generated ID and timestamps
	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// CreateVendorProfile attaches a store to an existing account.
func (repo *accountRepository) CreateVendorProfile(ctx context.Context, profile *entity.VendorProfile) error {
	profileM := fromVendorProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrVendorProfileExists
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAccountNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create vendor profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// CreateCustomerProfile attaches a customer profile to an existing account.
func (repo *accountRepository) CreateCustomerProfile(ctx context.Context, profile *entity.CustomerProfile) error {
	profileM := fromCustomerProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrCustomerProfileExists
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAccountNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindVendorProfile retrieves the store attached to an account.
func (repo *accountRepository) FindVendorProfile(ctx context.Context, accountID uuid.UUID) (*entity.VendorProfile, error) {
	var profileM model.VendorProfileModel
	err := repo.db.WithContext(ctx).
		Preload("Followers").
		Where("account_id = ?", accountID).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor profile")
	}

	return toVendorProfileDomain(&profileM), nil
}

// FindCustomerProfile retrieves the customer profile attached to an account.
func (repo *accountRepository) FindCustomerProfile(ctx context.Context, accountID uuid.UUID) (*entity.CustomerProfile, error) {
	var profileM model.CustomerProfileModel
	err := repo.db.WithContext(ctx).
		Preload("Purchases").
		Where("account_id = ?", accountID).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer profile")
	}

	return toCustomerProfileDomain(&profileM), nil
}

// UpdateCustomerProfile replaces the opaque profile blob of a customer.
func (repo *accountRepository) UpdateCustomerProfile(ctx context.Context, profile *entity.CustomerProfile) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CustomerProfileModel{}).
		Where("account_id = ?", profile.AccountID).
		Update("profile", profile.Profile)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update customer profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCustomerProfileNotFound
	}

	return nil
}

// ListVendorProfiles retrieves every store on the site.
func (repo *accountRepository) ListVendorProfiles(ctx context.Context) ([]*entity.VendorProfile, error) {
	var profileModels []*model.VendorProfileModel
	err := repo.db.WithContext(ctx).
		Preload("Followers").
		Order("created_at DESC").
		Find(&profileModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendor profiles")
	}

	profiles := make([]*entity.VendorProfile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toVendorProfileDomain(profileM))
	}

	return profiles, nil
}

// AddFollower records that a customer follows a vendor. The composite primary
// key plus ON CONFLICT DO NOTHING makes repeated follows idempotent.
func (repo *accountRepository) AddFollower(ctx context.Context, vendorID, customerID uuid.UUID) error {
	edge := &model.VendorFollowerModel{
		VendorID:   vendorID,
		CustomerID: customerID,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(edge).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrVendorProfileNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add follower")
	}

	return nil
}

// RemoveFollower removes a follow edge. Removing a missing edge is a no-op.
func (repo *accountRepository) RemoveFollower(ctx context.Context, vendorID, customerID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("vendor_id = ? AND customer_id = ?", vendorID, customerID).
		Delete(&model.VendorFollowerModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove follower")
	}

	return nil
}

// ListFollowedVendors retrieves the stores a customer follows.
func (repo *accountRepository) ListFollowedVendors(ctx context.Context, customerID uuid.UUID) ([]*entity.VendorProfile, error) {
	followed := repo.db.
		Table("vendor_followers").
		Select("vendor_id").
		Where("customer_id = ?", customerID)

	var profileModels []*model.VendorProfileModel
	err := repo.db.WithContext(ctx).
		Preload("Followers").
		Where("account_id IN (?)", followed).
		Find(&profileModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list followed vendors")
	}

	profiles := make([]*entity.VendorProfile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toVendorProfileDomain(profileM))
	}

	return profiles, nil
}

// AddPurchases appends product IDs to a customer's purchase history.
// The history is append-only, so repeat purchases produce repeat rows.
func (repo *accountRepository) AddPurchases(ctx context.Context, customerID uuid.UUID, productIDs []uuid.UUID) error {
	if len(productIDs) == 0 {
		return nil
	}

	rows := make([]model.CustomerPurchaseModel, 0, len(productIDs))
	for _, productID := range productIDs {
		rows = append(rows, model.CustomerPurchaseModel{
			CustomerID: customerID,
			ProductID:  productID,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&rows).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCustomerProfileNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record purchases")
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:              data.ID,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		Email:           data.Email,
		PasswordHash:    data.PasswordHash,
		Role:            entity.Role(data.Role),
		VendorProfile:   toVendorProfileDomain(data.VendorProfile),
		CustomerProfile: toCustomerProfileDomain(data.CustomerProfile),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel for persistence.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:              data.ID,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		Email:           data.Email,
		PasswordHash:    data.PasswordHash,
		Role:            data.Role.String(),
		VendorProfile:   fromVendorProfileDomain(data.VendorProfile),
		CustomerProfile: fromCustomerProfileDomain(data.CustomerProfile),
	}
}

// toVendorProfileDomain converts a GORM VendorProfileModel to a domain VendorProfile entity.
// The Products projection is resolved by the application layer, not here.
func toVendorProfileDomain(data *model.VendorProfileModel) *entity.VendorProfile {
	if data == nil {
		return nil
	}

	followers := make([]uuid.UUID, 0, len(data.Followers))
	for _, edge := range data.Followers {
		followers = append(followers, edge.CustomerID)
	}

	return &entity.VendorProfile{
		AccountID:        data.AccountID,
		StoreName:        data.StoreName,
		StoreLogo:        data.StoreLogo,
		StoreDescription: data.StoreDescription,
		Followers:        followers,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromVendorProfileDomain converts a domain VendorProfile entity to a GORM VendorProfileModel.
// Follower edges are managed through AddFollower/RemoveFollower and never written here.
func fromVendorProfileDomain(data *entity.VendorProfile) *model.VendorProfileModel {
	if data == nil {
		return nil
	}

	return &model.VendorProfileModel{
		AccountID:        data.AccountID,
		StoreName:        data.StoreName,
		StoreLogo:        data.StoreLogo,
		StoreDescription: data.StoreDescription,
	}
}

// toCustomerProfileDomain converts a GORM CustomerProfileModel to a domain CustomerProfile entity.
func toCustomerProfileDomain(data *model.CustomerProfileModel) *entity.CustomerProfile {
	if data == nil {
		return nil
	}

	purchases := make([]uuid.UUID, 0, len(data.Purchases))
	for _, row := range data.Purchases {
		purchases = append(purchases, row.ProductID)
	}

	return &entity.CustomerProfile{
		AccountID: data.AccountID,
		Profile:   data.Profile,
		Purchases: purchases,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromCustomerProfileDomain converts a domain CustomerProfile entity to a GORM CustomerProfileModel.
// Purchase rows are appended through AddPurchases and never written here.
func fromCustomerProfileDomain(data *entity.CustomerProfile) *model.CustomerProfileModel {
	if data == nil {
		return nil
	}

	return &model.CustomerProfileModel{
		AccountID: data.AccountID,
		Profile:   data.Profile,
	}
}
