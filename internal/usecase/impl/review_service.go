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

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	accountRepo repository.AccountRepository
	productRepo repository.ProductRepository
	reviewRepo  repository.ReviewRepository
	logger      *slog.Logger
}

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	ProductRepo repository.ProductRepository
	ReviewRepo  repository.ReviewRepository
	Logger      *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		accountRepo: params.AccountRepo,
		productRepo: params.ProductRepo,
		reviewRepo:  params.ReviewRepo,
		logger:      params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddReview records a review of an existing product. Nothing prevents repeat
// reviews of the same product, or reviews of products the caller never bought.
func (srv *reviewService) AddReview(ctx context.Context, callerID uuid.UUID, input *usecase.AddReviewInput) (*entity.Review, error) {
	srv.log(ctx).Info("Adding review", slog.Any("accountID", callerID), slog.Any("productID", input.ProductID))

	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "rating must be between 1 and 5")
	}
	if len(input.Comment) > 500 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "comment must not exceed 500 characters")
	}

	// The product is resolved first so a bogus product ID reports 404 before
	// any profile precondition fires.
	if _, err := srv.productRepo.FindByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product for review")
	}

	author, err := srv.accountRepo.FindByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to load review author")
	}
	if author.CustomerProfile == nil {
		return nil, domainerrors.ErrCustomerProfileMissing
	}

	review := &entity.Review{
		AccountID: callerID,
		ProductID: input.ProductID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}

	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		srv.log(ctx).Warn("Failed to create review", slog.Any("accountID", callerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create review")
	}
	review.AuthorName = author.DisplayName()

	return review, nil
}

// ReviewsForProduct returns all reviews of a product, author names resolved.
// The product must exist; an unknown ID reports 404 rather than an empty list.
func (srv *reviewService) ReviewsForProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error) {
	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	reviews, err := srv.reviewRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list product reviews")
	}

	return reviews, nil
}

// UpdateReview replaces a review's rating and comment. Existence is resolved
// before authorship so a missing review reports 404, never 403.
func (srv *reviewService) UpdateReview(ctx context.Context, callerID, reviewID uuid.UUID, input *usecase.UpdateReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "rating must be between 1 and 5")
	}
	if len(input.Comment) > 500 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "comment must not exceed 500 characters")
	}

	review, err := srv.loadReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	if err := authz.RequireOwner(callerID, review.AccountID); err != nil {
		srv.log(ctx).Warn("Rejected review update by non-author", slog.Any("callerID", callerID), slog.Any("reviewID", reviewID))

		return nil, err
	}

	review.Rating = input.Rating
	review.Comment = input.Comment

	if err := srv.reviewRepo.Update(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to update review")
	}

	return review, nil
}

// DeleteReview removes a review permanently. Author only.
func (srv *reviewService) DeleteReview(ctx context.Context, callerID, reviewID uuid.UUID) error {
	review, err := srv.loadReview(ctx, reviewID)
	if err != nil {
		return err
	}

	if err := authz.RequireOwner(callerID, review.AccountID); err != nil {
		srv.log(ctx).Warn("Rejected review deletion by non-author", slog.Any("callerID", callerID), slog.Any("reviewID", reviewID))

		return err
	}

	if err := srv.reviewRepo.Delete(ctx, reviewID); err != nil {
		return errors.Wrap(err, "failed to delete review")
	}

	return nil
}

// ReviewsForVendor returns the reviews of every live product in the caller's store.
func (srv *reviewService) ReviewsForVendor(ctx context.Context, callerID uuid.UUID) ([]*usecase.ProductReviews, error) {
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

	grouped := make([]*usecase.ProductReviews, 0, len(products))
	for _, product := range products {
		reviews, err := srv.reviewRepo.ListByProduct(ctx, product.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list product reviews")
		}

		grouped = append(grouped, &usecase.ProductReviews{
			ProductID: product.ID,
			Reviews:   reviews,
		})
	}

	return grouped, nil
}

// ReviewsForCustomer returns the reviews the caller has written.
func (srv *reviewService) ReviewsForCustomer(ctx context.Context, callerID uuid.UUID) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.ListByAuthor(ctx, callerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer reviews")
	}

	return reviews, nil
}

func (srv *reviewService) loadReview(ctx context.Context, reviewID uuid.UUID) (*entity.Review, error) {
	review, err := srv.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to load review")
	}

	return review, nil
}
