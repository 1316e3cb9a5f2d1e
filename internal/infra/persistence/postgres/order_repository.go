// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"sort"

	"vendo/internal/domain/entity"
	domainerrors "vendo/internal/domain/errors"
	"vendo/internal/domain/repository"
	"vendo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the domain.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists a new order together with its product lines. GORM writes
// the association rows alongside the order row.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrTransactionFailed.WrapMessage("order number collision")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	// Update the entity with generated values
	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt

	return nil
}

// FindByID retrieves a single order by its unique ID.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Lines").
		Where("id = ?", id).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// ListByCustomer retrieves all orders placed by a customer, newest first.
func (repo *orderRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Lines").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&orderModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer orders")
	}

	return toOrderDomainSlice(orderModels), nil
}

// ListContainingProducts retrieves all orders that reference at least one of
// the given product IDs, newest first.
func (repo *orderRepository) ListContainingProducts(ctx context.Context, productIDs []uuid.UUID) ([]*entity.Order, error) {
	if len(productIDs) == 0 {
		return []*entity.Order{}, nil
	}

	matching := repo.db.
		Table("order_lines").
		Select("DISTINCT order_id").
		Where("product_id IN ?", productIDs)

	var orderModels []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Lines").
		Where("id IN (?)", matching).
		Order("created_at DESC").
		Find(&orderModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by products")
	}

	return toOrderDomainSlice(orderModels), nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
// Lines are sorted by position so the customer's submission order survives.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	lines := make([]model.OrderLineModel, len(data.Lines))
	copy(lines, data.Lines)
	sort.Slice(lines, func(i, j int) bool { return lines[i].Position < lines[j].Position })

	productIDs := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		productIDs = append(productIDs, line.ProductID)
	}

	return &entity.Order{
		ID:          data.ID,
		OrderNumber: data.OrderNumber,
		CustomerID:  data.CustomerID,
		ProductIDs:  productIDs,
		TotalAmount: data.TotalAmount,
		CreatedAt:   data.CreatedAt,
	}
}

func toOrderDomainSlice(data []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(data))
	for _, orderM := range data {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel for persistence.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	lines := make([]model.OrderLineModel, 0, len(data.ProductIDs))
	for position, productID := range data.ProductIDs {
		lines = append(lines, model.OrderLineModel{
			Position:  position,
			ProductID: productID,
		})
	}

	return &model.OrderModel{
		ID:          data.ID,
		OrderNumber: data.OrderNumber,
		CustomerID:  data.CustomerID,
		TotalAmount: data.TotalAmount,
		Lines:       lines,
	}
}
