//go:build wireinject
// +build wireinject

package order

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	customerdomain "github.com/tansu/autoservice/internal/customer/domain"
	customerrepo "github.com/tansu/autoservice/internal/customer/repository"
	"github.com/tansu/autoservice/internal/order/domain"
	"github.com/tansu/autoservice/internal/order/repository"
	"github.com/tansu/autoservice/internal/order/usecase/command"
	"github.com/tansu/autoservice/internal/order/usecase/query"
)

// ProvideOrderRepository provides the order repository
func ProvideOrderRepository(db *gorm.DB) domain.OrderRepository {
	return repository.NewGormOrderRepository(db)
}

// ProvideCustomerRepository provides the customer repository the order
// handlers check references against
func ProvideCustomerRepository(db *gorm.DB) customerdomain.CustomerRepository {
	return customerrepo.NewGormCustomerRepository(db)
}

// Handlers holds all order handlers
type Handlers struct {
	CreateHandler       *command.CreateOrderHandler
	UpdateStatusHandler *command.UpdateStatusHandler
	GetHandler          *query.GetOrderHandler
	ListHandler         *query.ListOrdersHandler
}

// ProvideHandlers provides all order handlers
func ProvideHandlers(orders domain.OrderRepository, customers customerdomain.CustomerRepository) *Handlers {
	return &Handlers{
		CreateHandler:       command.NewCreateOrderHandler(orders, customers),
		UpdateStatusHandler: command.NewUpdateStatusHandler(orders),
		GetHandler:          query.NewGetOrderHandler(orders),
		ListHandler:         query.NewListOrdersHandler(orders),
	}
}

// Wire sets
var HandlerSet = wire.NewSet(
	ProvideOrderRepository,
	ProvideCustomerRepository,
	ProvideHandlers,
)

// InitializeHandlers initializes order handlers
func InitializeHandlers(db *gorm.DB) (*Handlers, error) {
	wire.Build(HandlerSet)
	return nil, nil
}
