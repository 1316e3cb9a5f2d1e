package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"vendo/internal/domain/entity"
	domainerrors "vendo/internal/domain/errors"
	"vendo/internal/domain/repository"
	"vendo/internal/domain/service"

	"github.com/google/uuid"
)

// The fakes below are in-memory stand-ins for the persistence and auth
// infrastructure, mirroring the error contracts of the real repositories.

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- account repository fake ---

type fakeAccountRepo struct {
	mu               sync.Mutex
	accounts         map[uuid.UUID]*entity.Account
	vendorProfiles   map[uuid.UUID]*entity.VendorProfile
	customerProfiles map[uuid.UUID]*entity.CustomerProfile
	followers        map[uuid.UUID][]uuid.UUID // vendorID -> customer IDs
	purchases        map[uuid.UUID][]uuid.UUID // customerID -> product IDs
	vendorOrder      []uuid.UUID               // store creation order
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		accounts:         make(map[uuid.UUID]*entity.Account),
		vendorProfiles:   make(map[uuid.UUID]*entity.VendorProfile),
		customerProfiles: make(map[uuid.UUID]*entity.CustomerProfile),
		followers:        make(map[uuid.UUID][]uuid.UUID),
		purchases:        make(map[uuid.UUID][]uuid.UUID),
	}
}

func (f *fakeAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	account, ok := f.accounts[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return f.projectAccount(account), nil
}

func (f *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, account := range f.accounts {
		if account.Email == email {
			return f.projectAccount(account), nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (f *fakeAccountRepo) Create(_ context.Context, account *entity.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.accounts {
		if existing.Email == account.Email {
			return repository.ErrDuplicateEmail
		}
	}

	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt

	stored := *account
	f.accounts[account.ID] = &stored

	return nil
}

func (f *fakeAccountRepo) CreateVendorProfile(_ context.Context, profile *entity.VendorProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.accounts[profile.AccountID]; !ok {
		return repository.ErrAccountNotFound
	}
	if _, ok := f.vendorProfiles[profile.AccountID]; ok {
		return domainerrors.ErrVendorProfileExists
	}

	stored := *profile
	f.vendorProfiles[profile.AccountID] = &stored
	f.vendorOrder = append(f.vendorOrder, profile.AccountID)

	return nil
}

func (f *fakeAccountRepo) CreateCustomerProfile(_ context.Context, profile *entity.CustomerProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.accounts[profile.AccountID]; !ok {
		return repository.ErrAccountNotFound
	}
	if _, ok := f.customerProfiles[profile.AccountID]; ok {
		return domainerrors.ErrCustomerProfileExists
	}

	stored := *profile
	f.customerProfiles[profile.AccountID] = &stored

	return nil
}

func (f *fakeAccountRepo) FindVendorProfile(_ context.Context, accountID uuid.UUID) (*entity.VendorProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	profile, ok := f.vendorProfiles[accountID]
	if !ok {
		return nil, repository.ErrVendorProfileNotFound
	}

	return f.projectVendorProfile(profile), nil
}

func (f *fakeAccountRepo) FindCustomerProfile(_ context.Context, accountID uuid.UUID) (*entity.CustomerProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	profile, ok := f.customerProfiles[accountID]
	if !ok {
		return nil, repository.ErrCustomerProfileNotFound
	}

	return f.projectCustomerProfile(profile), nil
}

func (f *fakeAccountRepo) UpdateCustomerProfile(_ context.Context, profile *entity.CustomerProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	existing, ok := f.customerProfiles[profile.AccountID]
	if !ok {
		return repository.ErrCustomerProfileNotFound
	}
	existing.Profile = profile.Profile
	existing.UpdatedAt = time.Now()

	return nil
}

func (f *fakeAccountRepo) ListVendorProfiles(_ context.Context) ([]*entity.VendorProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	profiles := make([]*entity.VendorProfile, 0, len(f.vendorOrder))
	for _, accountID := range f.vendorOrder {
		profiles = append(profiles, f.projectVendorProfile(f.vendorProfiles[accountID]))
	}

	return profiles, nil
}

func (f *fakeAccountRepo) AddFollower(_ context.Context, vendorID, customerID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.vendorProfiles[vendorID]; !ok {
		return repository.ErrVendorProfileNotFound
	}
	for _, existing := range f.followers[vendorID] {
		if existing == customerID {
			return nil
		}
	}
	f.followers[vendorID] = append(f.followers[vendorID], customerID)

	return nil
}

func (f *fakeAccountRepo) RemoveFollower(_ context.Context, vendorID, customerID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	edges := f.followers[vendorID]
	for i, existing := range edges {
		if existing == customerID {
			f.followers[vendorID] = append(edges[:i], edges[i+1:]...)

			break
		}
	}

	return nil
}

func (f *fakeAccountRepo) ListFollowedVendors(_ context.Context, customerID uuid.UUID) ([]*entity.VendorProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var profiles []*entity.VendorProfile
	for _, vendorID := range f.vendorOrder {
		for _, follower := range f.followers[vendorID] {
			if follower == customerID {
				profiles = append(profiles, f.projectVendorProfile(f.vendorProfiles[vendorID]))

				break
			}
		}
	}

	return profiles, nil
}

func (f *fakeAccountRepo) AddPurchases(_ context.Context, customerID uuid.UUID, productIDs []uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.purchases[customerID] = append(f.purchases[customerID], productIDs...)

	return nil
}

func (f *fakeAccountRepo) projectAccount(account *entity.Account) *entity.Account {
	projected := *account
	if profile, ok := f.vendorProfiles[account.ID]; ok {
		projected.VendorProfile = f.projectVendorProfile(profile)
	}
	if profile, ok := f.customerProfiles[account.ID]; ok {
		projected.CustomerProfile = f.projectCustomerProfile(profile)
	}

	return &projected
}

func (f *fakeAccountRepo) projectVendorProfile(profile *entity.VendorProfile) *entity.VendorProfile {
	projected := *profile
	projected.Followers = append([]uuid.UUID(nil), f.followers[profile.AccountID]...)

	return &projected
}

func (f *fakeAccountRepo) projectCustomerProfile(profile *entity.CustomerProfile) *entity.CustomerProfile {
	projected := *profile
	projected.Purchases = append([]uuid.UUID(nil), f.purchases[profile.AccountID]...)

	return &projected
}

// --- product repository fake ---

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[uuid.UUID]*entity.Product
	deleted  map[uuid.UUID]bool
	order    []uuid.UUID
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products: make(map[uuid.UUID]*entity.Product),
		deleted:  make(map[uuid.UUID]bool),
	}
}

func (f *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt

	stored := *product
	f.products[product.ID] = &stored
	f.order = append(f.order, product.ID)

	return nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	product, ok := f.products[id]
	if !ok || f.deleted[id] {
		return nil, repository.ErrProductNotFound
	}

	copied := *product

	return &copied, nil
}

func (f *fakeProductRepo) ListAll(_ context.Context) ([]*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	products := make([]*entity.Product, 0, len(f.order))
	for i := len(f.order) - 1; i >= 0; i-- {
		id := f.order[i]
		if f.deleted[id] {
			continue
		}
		copied := *f.products[id]
		products = append(products, &copied)
	}

	return products, nil
}

func (f *fakeProductRepo) ListByVendor(_ context.Context, vendorID uuid.UUID) ([]*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var products []*entity.Product
	for i := len(f.order) - 1; i >= 0; i-- {
		id := f.order[i]
		if f.deleted[id] {
			continue
		}
		if f.products[id].VendorID == vendorID {
			copied := *f.products[id]
			products = append(products, &copied)
		}
	}

	return products, nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	existing, ok := f.products[product.ID]
	if !ok || f.deleted[product.ID] {
		return repository.ErrProductNotFound
	}

	existing.Title = product.Title
	existing.Description = product.Description
	existing.Price = product.Price
	existing.QuantityAvailable = product.QuantityAvailable
	existing.UpdatedAt = time.Now()

	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.products[id]; !ok || f.deleted[id] {
		return repository.ErrProductNotFound
	}
	f.deleted[id] = true

	return nil
}

func (f *fakeProductRepo) FindByIDIncludingDeleted(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	product, ok := f.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}

	copied := *product

	return &copied, nil
}

// --- order repository fake ---

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders []*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{}
}

func (f *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	order.CreatedAt = time.Now()

	stored := *order
	stored.ProductIDs = append([]uuid.UUID(nil), order.ProductIDs...)
	f.orders = append(f.orders, &stored)

	return nil
}

func (f *fakeOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, order := range f.orders {
		if order.ID == id {
			copied := *order

			return &copied, nil
		}
	}

	return nil, repository.ErrOrderNotFound
}

func (f *fakeOrderRepo) ListByCustomer(_ context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []*entity.Order
	for i := len(f.orders) - 1; i >= 0; i-- {
		if f.orders[i].CustomerID == customerID {
			copied := *f.orders[i]
			matched = append(matched, &copied)
		}
	}

	return matched, nil
}

func (f *fakeOrderRepo) ListContainingProducts(_ context.Context, productIDs []uuid.UUID) ([]*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	wanted := make(map[uuid.UUID]bool, len(productIDs))
	for _, id := range productIDs {
		wanted[id] = true
	}

	var matched []*entity.Order
	for i := len(f.orders) - 1; i >= 0; i-- {
		for _, productID := range f.orders[i].ProductIDs {
			if wanted[productID] {
				copied := *f.orders[i]
				matched = append(matched, &copied)

				break
			}
		}
	}

	return matched, nil
}

// --- review repository fake ---

type fakeReviewRepo struct {
	mu       sync.Mutex
	reviews  map[uuid.UUID]*entity.Review
	order    []uuid.UUID
	accounts *fakeAccountRepo // author name resolution on read paths
}

func newFakeReviewRepo(accounts *fakeAccountRepo) *fakeReviewRepo {
	return &fakeReviewRepo{
		reviews:  make(map[uuid.UUID]*entity.Review),
		accounts: accounts,
	}
}

func (f *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	review.CreatedAt = time.Now()
	review.UpdatedAt = review.CreatedAt

	stored := *review
	f.reviews[review.ID] = &stored
	f.order = append(f.order, review.ID)

	return nil
}

func (f *fakeReviewRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	review, ok := f.reviews[id]
	if !ok {
		return nil, repository.ErrReviewNotFound
	}

	copied := *review

	return &copied, nil
}

func (f *fakeReviewRepo) ListByProduct(_ context.Context, productID uuid.UUID) ([]*entity.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []*entity.Review
	for i := len(f.order) - 1; i >= 0; i-- {
		review := f.reviews[f.order[i]]
		if review.ProductID == productID {
			matched = append(matched, f.withAuthorName(review))
		}
	}

	return matched, nil
}

func (f *fakeReviewRepo) ListByAuthor(_ context.Context, accountID uuid.UUID) ([]*entity.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []*entity.Review
	for i := len(f.order) - 1; i >= 0; i-- {
		review := f.reviews[f.order[i]]
		if review.AccountID == accountID {
			matched = append(matched, f.withAuthorName(review))
		}
	}

	return matched, nil
}

func (f *fakeReviewRepo) Update(_ context.Context, review *entity.Review) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	existing, ok := f.reviews[review.ID]
	if !ok {
		return repository.ErrReviewNotFound
	}
	existing.Rating = review.Rating
	existing.Comment = review.Comment
	existing.UpdatedAt = time.Now()

	return nil
}

func (f *fakeReviewRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.reviews[id]; !ok {
		return repository.ErrReviewNotFound
	}
	delete(f.reviews, id)
	for i, existing := range f.order {
		if existing == id {
			f.order = append(f.order[:i], f.order[i+1:]...)

			break
		}
	}

	return nil
}

func (f *fakeReviewRepo) withAuthorName(review *entity.Review) *entity.Review {
	copied := *review
	if f.accounts != nil {
		if account, ok := f.accounts.accounts[review.AccountID]; ok {
			copied.AuthorName = account.DisplayName()
		}
	}

	return &copied
}

// --- refresh token repository fake ---

type fakeRefreshTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]*entity.RefreshToken // by hash
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{tokens: make(map[string]*entity.RefreshToken)}
}

func (f *fakeRefreshTokenRepo) CreateRefreshToken(_ context.Context, token *entity.RefreshToken) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	token.CreatedAt = time.Now()

	stored := *token
	f.tokens[token.TokenHash] = &stored

	return nil
}

func (f *fakeRefreshTokenRepo) FindRefreshTokenByHash(_ context.Context, hash string) (*entity.RefreshToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	token, ok := f.tokens[hash]
	if !ok || token.ExpiresAt.Before(time.Now()) {
		return nil, repository.ErrTokenNotFound
	}

	copied := *token

	return &copied, nil
}

func (f *fakeRefreshTokenRepo) DeleteRefreshTokenByHash(_ context.Context, hash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.tokens[hash]; !ok {
		return repository.ErrTokenNotFound
	}
	delete(f.tokens, hash)

	return nil
}

// --- transaction manager fake ---

type fakeRepoFactory struct {
	accountRepo      repository.AccountRepository
	productRepo      repository.ProductRepository
	orderRepo        repository.OrderRepository
	reviewRepo       repository.ReviewRepository
	refreshTokenRepo repository.RefreshTokenRepository
}

func (f *fakeRepoFactory) AccountRepo() repository.AccountRepository           { return f.accountRepo }
func (f *fakeRepoFactory) ProductRepo() repository.ProductRepository           { return f.productRepo }
func (f *fakeRepoFactory) OrderRepo() repository.OrderRepository               { return f.orderRepo }
func (f *fakeRepoFactory) ReviewRepo() repository.ReviewRepository             { return f.reviewRepo }
func (f *fakeRepoFactory) RefreshTokenRepo() repository.RefreshTokenRepository { return f.refreshTokenRepo }

// fakeTxManager runs the callback directly against the shared fakes. Rollback
// is not simulated; tests assert on the returned errors instead.
type fakeTxManager struct {
	factory *fakeRepoFactory
}

func (f *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(f.factory)
}

// --- domain service fakes ---

type fakePasswordHasher struct{}

func (fakePasswordHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakePasswordHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

func (fakePasswordHasher) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return domainerrors.ErrPasswordStrength.WithDetails("password is too short")
	}

	return nil
}

type fakeTokenService struct {
	mu     sync.Mutex
	serial int
	claims map[string]*service.Claims
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{claims: make(map[string]*service.Claims)}
}

func (f *fakeTokenService) GenerateTokens(accountID uuid.UUID, email string, role entity.Role) (string, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.serial++
	access := fmt.Sprintf("access-%d", f.serial)
	refresh := fmt.Sprintf("refresh-%d", f.serial)
	f.claims[access] = &service.Claims{AccountID: accountID, Email: email, Role: role.String(), Type: "access"}
	f.claims[refresh] = &service.Claims{AccountID: accountID, Type: "refresh"}

	return access, refresh, nil
}

func (f *fakeTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	claims, ok := f.claims[tokenString]
	if !ok {
		return nil, fmt.Errorf("unknown token: %s", tokenString)
	}

	return claims, nil
}

func (f *fakeTokenService) HashToken(token string) string {
	return "h:" + token
}

func (f *fakeTokenService) GetRefreshTokenDuration() time.Duration {
	return 7 * 24 * time.Hour
}

type fakeQRCodeService struct{}

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47}

func (fakeQRCodeService) GenerateStoreQR(vendorID uuid.UUID) ([]byte, error) {
	return append(append([]byte(nil), pngMagic...), vendorID[:]...), nil
}

func (fakeQRCodeService) ParseStoreQR(qrData string) (uuid.UUID, error) {
	return uuid.Parse(qrData)
}
