package handler

import (
	"time"

	"vendo/internal/domain/entity"
	"vendo/internal/usecase"

	"github.com/google/uuid"
)

// The view structs below shape domain entities for JSON responses. They keep
// the password hash and other internals off the wire.

// AccountView is the public shape of an account.
type AccountView struct {
	ID              uuid.UUID            `json:"id"`
	FirstName       string               `json:"firstName"`
	LastName        string               `json:"lastName"`
	Email           string               `json:"email"`
	Role            string               `json:"role"`
	VendorProfile   *VendorProfileView   `json:"vendorProfile,omitempty"`
	CustomerProfile *CustomerProfileView `json:"customerProfile,omitempty"`
	CreatedAt       time.Time            `json:"createdAt"`
}

// VendorProfileView is the public shape of a vendor's store.
type VendorProfileView struct {
	AccountID        uuid.UUID      `json:"accountId"`
	StoreName        string         `json:"storeName"`
	StoreLogo        string         `json:"storeLogo"`
	StoreDescription string         `json:"storeDescription"`
	Products         []*ProductView `json:"products,omitempty"`
	Followers        []uuid.UUID    `json:"followers,omitempty"`
}

// CustomerProfileView is the public shape of a customer profile.
type CustomerProfileView struct {
	AccountID uuid.UUID   `json:"accountId"`
	Profile   string      `json:"profile"`
	Purchases []uuid.UUID `json:"purchases,omitempty"`
}

// ProductView is the public shape of a catalog item.
type ProductView struct {
	ID                uuid.UUID `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Price             float64   `json:"price"`
	QuantityAvailable int       `json:"quantityAvailable"`
	VendorID          uuid.UUID `json:"vendorId"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// OrderView is the public shape of an order.
type OrderView struct {
	ID          uuid.UUID   `json:"id"`
	OrderNumber int64       `json:"orderNumber"`
	CustomerID  uuid.UUID   `json:"customerId"`
	Products    []uuid.UUID `json:"products"`
	TotalAmount float64     `json:"totalAmount"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// ReviewView is the public shape of a review.
type ReviewView struct {
	ID         uuid.UUID `json:"id"`
	AccountID  uuid.UUID `json:"accountId"`
	ProductID  uuid.UUID `json:"productId"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	AuthorName string    `json:"authorName,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ProductReviewsView groups a product's reviews for the vendor-wide listing.
type ProductReviewsView struct {
	ProductID uuid.UUID     `json:"productId"`
	Reviews   []*ReviewView `json:"reviews"`
}

func newAccountView(account *entity.Account) *AccountView {
	if account == nil {
		return nil
	}

	return &AccountView{
		ID:              account.ID,
		FirstName:       account.FirstName,
		LastName:        account.LastName,
		Email:           account.Email,
		Role:            account.Role.String(),
		VendorProfile:   newVendorProfileView(account.VendorProfile),
		CustomerProfile: newCustomerProfileView(account.CustomerProfile),
		CreatedAt:       account.CreatedAt,
	}
}

func newVendorProfileView(profile *entity.VendorProfile) *VendorProfileView {
	if profile == nil {
		return nil
	}

	return &VendorProfileView{
		AccountID:        profile.AccountID,
		StoreName:        profile.StoreName,
		StoreLogo:        profile.StoreLogo,
		StoreDescription: profile.StoreDescription,
		Products:         newProductViews(profile.Products),
		Followers:        profile.Followers,
	}
}

func newVendorProfileViews(profiles []*entity.VendorProfile) []*VendorProfileView {
	views := make([]*VendorProfileView, 0, len(profiles))
	for _, profile := range profiles {
		views = append(views, newVendorProfileView(profile))
	}

	return views
}

func newCustomerProfileView(profile *entity.CustomerProfile) *CustomerProfileView {
	if profile == nil {
		return nil
	}

	return &CustomerProfileView{
		AccountID: profile.AccountID,
		Profile:   profile.Profile,
		Purchases: profile.Purchases,
	}
}

func newProductView(product *entity.Product) *ProductView {
	if product == nil {
		return nil
	}

	return &ProductView{
		ID:                product.ID,
		Title:             product.Title,
		Description:       product.Description,
		Price:             product.Price,
		QuantityAvailable: product.QuantityAvailable,
		VendorID:          product.VendorID,
		CreatedAt:         product.CreatedAt,
		UpdatedAt:         product.UpdatedAt,
	}
}

func newProductViews(products []*entity.Product) []*ProductView {
	views := make([]*ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, newProductView(product))
	}

	return views
}

func newOrderView(order *entity.Order) *OrderView {
	if order == nil {
		return nil
	}

	return &OrderView{
		ID:          order.ID,
		OrderNumber: order.OrderNumber,
		CustomerID:  order.CustomerID,
		Products:    order.ProductIDs,
		TotalAmount: order.TotalAmount,
		CreatedAt:   order.CreatedAt,
	}
}

func newOrderViews(orders []*entity.Order) []*OrderView {
	views := make([]*OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, newOrderView(order))
	}

	return views
}

func newReviewView(review *entity.Review) *ReviewView {
	if review == nil {
		return nil
	}

	return &ReviewView{
		ID:         review.ID,
		AccountID:  review.AccountID,
		ProductID:  review.ProductID,
		Rating:     review.Rating,
		Comment:    review.Comment,
		AuthorName: review.AuthorName,
		CreatedAt:  review.CreatedAt,
		UpdatedAt:  review.UpdatedAt,
	}
}

func newReviewViews(reviews []*entity.Review) []*ReviewView {
	views := make([]*ReviewView, 0, len(reviews))
	for _, review := range reviews {
		views = append(views, newReviewView(review))
	}

	return views
}

func newProductReviewsViews(groups []*usecase.ProductReviews) []*ProductReviewsView {
	views := make([]*ProductReviewsView, 0, len(groups))
	for _, group := range groups {
		views = append(views, &ProductReviewsView{
			ProductID: group.ProductID,
			Reviews:   newReviewViews(group.Reviews),
		})
	}

	return views
}
