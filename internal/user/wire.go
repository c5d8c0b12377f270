//go:build wireinject
// +build wireinject

package user

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tansu/autoservice/internal/user/domain"
	"github.com/tansu/autoservice/internal/user/repository"
	"github.com/tansu/autoservice/internal/user/usecase/command"
	"github.com/tansu/autoservice/internal/user/usecase/query"
)

// ProvideUserRepository provides the user repository with tracing
func ProvideUserRepository(db *gorm.DB) domain.UserRepository {
	return repository.NewGormUserRepositoryWithTracing(db)
}

// CommandHandlers holds all user command handlers
type CommandHandlers struct {
	RegisterHandler       *command.RegisterUserHandler
	LoginHandler          *command.LoginUserHandler
	UpdateHandler         *command.UpdateUserHandler
	ChangePasswordHandler *command.ChangePasswordHandler
	ChangeRoleHandler     *command.ChangeRoleHandler
	ToggleActiveHandler   *command.ToggleActiveHandler
	DeleteHandler         *command.DeleteUserHandler
	BootstrapHandler      *command.BootstrapAdminHandler
}

// QueryHandlers holds all user query handlers
type QueryHandlers struct {
	GetHandler   *query.GetUserHandler
	ListHandler  *query.ListUsersHandler
	StatsHandler *query.GetStatsHandler
}

// ProvideCommandHandlers provides all user command handlers
func ProvideCommandHandlers(repo domain.UserRepository) *CommandHandlers {
	return &CommandHandlers{
		RegisterHandler:       command.NewRegisterUserHandler(repo),
		LoginHandler:          command.NewLoginUserHandler(repo),
		UpdateHandler:         command.NewUpdateUserHandler(repo),
		ChangePasswordHandler: command.NewChangePasswordHandler(repo),
		ChangeRoleHandler:     command.NewChangeRoleHandler(repo),
		ToggleActiveHandler:   command.NewToggleActiveHandler(repo),
		DeleteHandler:         command.NewDeleteUserHandler(repo),
		BootstrapHandler:      command.NewBootstrapAdminHandler(repo),
	}
}

// ProvideQueryHandlers provides all user query handlers
func ProvideQueryHandlers(repo domain.UserRepository) *QueryHandlers {
	return &QueryHandlers{
		GetHandler:   query.NewGetUserHandler(repo),
		ListHandler:  query.NewListUsersHandler(repo),
		StatsHandler: query.NewGetStatsHandler(repo),
	}
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideUserRepository,
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
