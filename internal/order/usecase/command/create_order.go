package command

import (
	"fmt"
	"time"

	customerdomain "github.com/tansu/autoservice/internal/customer/domain"
	apperr "github.com/tansu/autoservice/internal/domain"
	"github.com/tansu/autoservice/internal/order/domain"
)

// CreateOrderCommand represents the command to open a service order
type CreateOrderCommand struct {
	CustomerID    uint
	OrderDate     time.Time
	VehicleModel  string
	VehicleNumber string
}

// CreateOrderHandler handles order creation
type CreateOrderHandler struct {
	orders    domain.OrderRepository
	customers customerdomain.CustomerRepository
}

// NewCreateOrderHandler creates a new create order handler
func NewCreateOrderHandler(orders domain.OrderRepository, customers customerdomain.CustomerRepository) *CreateOrderHandler {
	return &CreateOrderHandler{orders: orders, customers: customers}
}

// Handle verifies the customer exists, then creates the order in Pending
// state. The existence check and the insert are separate repository calls;
// there is no cross-entity transaction, so a customer deleted in between
// is caught by the foreign key as an integrity violation instead.
func (h *CreateOrderHandler) Handle(cmd CreateOrderCommand) (*domain.Order, error) {
	if cmd.CustomerID == 0 {
		return nil, fmt.Errorf("%w: customer id is required", apperr.ErrInvalidArgument)
	}
	if cmd.VehicleModel == "" {
		return nil, fmt.Errorf("%w: vehicle model is required", apperr.ErrInvalidArgument)
	}
	if cmd.VehicleNumber == "" {
		return nil, fmt.Errorf("%w: vehicle number is required", apperr.ErrInvalidArgument)
	}

	exists, err := h.customers.ExistsByID(cmd.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check customer: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: customer %d does not exist", apperr.ErrIntegrityViolation, cmd.CustomerID)
	}

	orderDate := cmd.OrderDate
	if orderDate.IsZero() {
		orderDate = time.Now()
	}

	order := &domain.Order{
		CustomerID:    cmd.CustomerID,
		OrderDate:     orderDate,
		VehicleModel:  cmd.VehicleModel,
		VehicleNumber: cmd.VehicleNumber,
		Status:        domain.StatusPending,
	}
	if err := h.orders.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return order, nil
}
