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

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler holds dependencies for review ledger handlers.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler.
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// AddReviewRequest represents the request body for reviewing a product.
type AddReviewRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Rating    int       `json:"rating" validate:"required,gte=1,lte=5"`
	Comment   string    `json:"comment" validate:"max=500"`
}

// UpdateReviewRequest replaces a review's rating and comment.
type UpdateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"max=500"`
}

// Add handles reviewing a product.
func (h *ReviewHandler) Add(c echo.Context) error {
	accountID, err := callerAccountID(c)
	if err != nil {
		return err
	}

	var req AddReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	review, err := h.reviewUC.AddReview(c.Request().Context(), accountID, &usecase.AddReviewInput{
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"review": newReviewView(review),
	}, "Review added successfully")
}

// ByProduct returns all reviews of a product, author names resolved.
func (h *ReviewHandler) ByProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	reviews, err := h.reviewUC.ReviewsForProduct(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"reviews": newReviewViews(reviews),
	}, "Reviews retrieved successfully")
}

// Update replaces a review's rating and comment. Author only.
func (h *ReviewHandler) Update(c echo.Context) error {
	accountID, err := callerAccountID(c)
	if err != nil {
		return err
	}

	reviewID, err := uuid.Parse(c.Param("reviewId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid review ID")
	}

	var req UpdateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	review, err := h.reviewUC.UpdateReview(c.Request().Context(), accountID, reviewID, &usecase.UpdateReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"review": newReviewView(review),
	}, "Review updated successfully")
}

// Delete removes a review permanently. Author only.
func (h *ReviewHandler) Delete(c echo.Context) error {
	accountID, err := callerAccountID(c)
	if err != nil {
		return err
	}

	reviewID, err := uuid.Parse(c.Param("reviewId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid review ID")
	}

	if err := h.reviewUC.DeleteReview(c.Request().Context(), accountID, reviewID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Review deleted successfully")
}
