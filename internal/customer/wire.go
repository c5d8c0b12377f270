//go:build wireinject
// +build wireinject

package customer

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tansu/autoservice/internal/customer/domain"
	"github.com/tansu/autoservice/internal/customer/repository"
	"github.com/tansu/autoservice/internal/customer/usecase/command"
	"github.com/tansu/autoservice/internal/customer/usecase/query"
)

// ProvideCustomerRepository provides the customer repository
func ProvideCustomerRepository(db *gorm.DB) domain.CustomerRepository {
	return repository.NewGormCustomerRepository(db)
}

// CommandHandlers holds all customer command handlers
type CommandHandlers struct {
	RegisterHandler      *command.RegisterCustomerHandler
	UpdateHandler        *command.UpdateCustomerHandler
	DeactivateHandler    *command.DeactivateCustomerHandler
	AppendHistoryHandler *command.AppendHistoryHandler
}

// QueryHandlers holds all customer query handlers
type QueryHandlers struct {
	GetHandler    *query.GetCustomerHandler
	ListHandler   *query.ListCustomersHandler
	SearchHandler *query.SearchCustomersHandler
}

// ProvideCommandHandlers provides all customer command handlers
func ProvideCommandHandlers(repo domain.CustomerRepository) *CommandHandlers {
	return &CommandHandlers{
		RegisterHandler:      command.NewRegisterCustomerHandler(repo),
		UpdateHandler:        command.NewUpdateCustomerHandler(repo),
		DeactivateHandler:    command.NewDeactivateCustomerHandler(repo),
		AppendHistoryHandler: command.NewAppendHistoryHandler(repo),
	}
}

// ProvideQueryHandlers provides all customer query handlers
func ProvideQueryHandlers(repo domain.CustomerRepository) *QueryHandlers {
	return &QueryHandlers{
		GetHandler:    query.NewGetCustomerHandler(repo),
		ListHandler:   query.NewListCustomersHandler(repo),
		SearchHandler: query.NewSearchCustomersHandler(repo),
	}
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideCustomerRepository,
)

var HandlerSet = wire.NewSet(
	RepositorySet,
	ProvideCommandHandlers,
	ProvideQueryHandlers,
)

// InitializeHandlers initializes command and query handlers
func InitializeHandlers(db *gorm.DB) (*CommandHandlers, *QueryHandlers, error) {
	wire.Build(HandlerSet)
	return nil, nil, nil
}
