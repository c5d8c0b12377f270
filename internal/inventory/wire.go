//go:build wireinject
// +build wireinject

package inventory

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tansu/autoservice/internal/inventory/domain"
	"github.com/tansu/autoservice/internal/inventory/repository"
	"github.com/tansu/autoservice/internal/inventory/usecase/command"
	"github.com/tansu/autoservice/internal/inventory/usecase/query"
)

// ProvideItemRepository provides the inventory repository with tracing
func ProvideItemRepository(db *gorm.DB) domain.ItemRepository {
	return repository.NewGormItemRepositoryWithTracing(db)
}

// CommandHandlers holds all inventory command handlers
type CommandHandlers struct {
	CreateHandler  *command.CreateItemHandler
	UpdateHandler  *command.UpdateItemHandler
	DeleteHandler  *command.DeleteItemHandler
	RestockHandler *command.RestockHandler
	ConsumeHandler *command.ConsumeStockHandler
	AdjustHandler  *command.AdjustQuantityHandler
}

// QueryHandlers holds all inventory query handlers
type QueryHandlers struct {
	GetHandler    *query.GetItemHandler
	ListHandler   *query.ListItemsHandler
	ReportHandler *query.StockReportHandler
}

// ProvideCommandHandlers provides all inventory command handlers
func ProvideCommandHandlers(repo domain.ItemRepository) *CommandHandlers {
	return &CommandHandlers{
		CreateHandler:  command.NewCreateItemHandler(repo),
		UpdateHandler:  command.NewUpdateItemHandler(repo),
		DeleteHandler:  command.NewDeleteItemHandler(repo),
		RestockHandler: command.NewRestockHandler(repo),
		ConsumeHandler: command.NewConsumeStockHandler(repo),
		AdjustHandler:  command.NewAdjustQuantityHandler(repo),
	}
}

// ProvideQueryHandlers provides all inventory query handlers
func ProvideQueryHandlers(repo domain.ItemRepository) *QueryHandlers {
	return &QueryHandlers{
		GetHandler:    query.NewGetItemHandler(repo),
		ListHandler:   query.NewListItemsHandler(repo),
		ReportHandler: query.NewStockReportHandler(repo),
	}
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideItemRepository,
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
