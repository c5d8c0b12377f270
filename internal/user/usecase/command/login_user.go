package command

import (
	"context"
	"fmt"
	"time"

	apperr "github.com/tansu/autoservice/internal/domain"
	"github.com/tansu/autoservice/internal/user/domain"
	"github.com/tansu/autoservice/pkg/auth"
	"github.com/tansu/autoservice/pkg/logger"
)

// LoginUserCommand represents the command to authenticate a staff account
type LoginUserCommand struct {
	Username string
	Password string
}

// LoginResponse represents the response after successful login
type LoginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// LoginUserHandler handles authentication
type LoginUserHandler struct {
	repo domain.UserRepository
}

// NewLoginUserHandler creates a new login user handler
func NewLoginUserHandler(repo domain.UserRepository) *LoginUserHandler {
	return &LoginUserHandler{repo: repo}
}

// Handle authenticates the credentials. An unknown username, a
// deactivated account and a wrong password all return the same
// ErrInvalidCredentials so callers cannot probe which usernames exist.
func (h *LoginUserHandler) Handle(cmd LoginUserCommand) (*LoginResponse, error) {
	if cmd.Username == "" || cmd.Password == "" {
		return nil, apperr.ErrInvalidCredentials
	}

	user, err := h.repo.FindByUsername(cmd.Username)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !user.Active {
		return nil, apperr.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.PasswordHash, cmd.Password) {
		return nil, apperr.ErrInvalidCredentials
	}

	now := time.Now()
	if err := h.repo.UpdateLastLogin(user.ID, now); err != nil {
		// The login itself succeeded; a failed stamp is not fatal.
		logger.Warn(context.Background()).Err(err).Uint("user_id", user.ID).Msg("failed to stamp last login")
	} else {
		user.LastLoginAt = &now
	}

	token, err := auth.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResponse{Token: token, User: user}, nil
}
