package command

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	apperr "github.com/tansu/autoservice/internal/domain"
	"github.com/tansu/autoservice/internal/user/domain"
	"github.com/tansu/autoservice/pkg/auth"
)

// RegisterUserCommand represents the command to register a staff account
type RegisterUserCommand struct {
	Username string `validate:"required,min=3,max=40,alphanum"`
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
	FullName string `validate:"required,min=2,max=100"`
	Role     string
}

// RegisterUserHandler handles user registration
type RegisterUserHandler struct {
	repo     domain.UserRepository
	validate *validator.Validate
}

// NewRegisterUserHandler creates a new register user handler
func NewRegisterUserHandler(repo domain.UserRepository) *RegisterUserHandler {
	return &RegisterUserHandler{repo: repo, validate: validator.New()}
}

// Handle registers a new account. The password must satisfy the strength
// policy and is stored only as a bcrypt hash.
func (h *RegisterUserHandler) Handle(cmd RegisterUserCommand) (*domain.User, error) {
	if err := h.validate.Struct(cmd); err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrInvalidArgument, err)
	}

	role := cmd.Role
	if role == "" {
		role = domain.RoleEmployee
	}
	if !domain.ValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", apperr.ErrInvalidArgument, role)
	}

	if err := auth.ValidatePasswordStrength(cmd.Password); err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrInvalidArgument, err)
	}

	if existing, err := h.repo.FindByUsername(cmd.Username); err != nil && !apperr.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	} else if existing != nil {
		return nil, fmt.Errorf("%w: username %s already taken", apperr.ErrConflict, cmd.Username)
	}
	if existing, err := h.repo.FindByEmail(cmd.Email); err != nil && !apperr.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	} else if existing != nil {
		return nil, fmt.Errorf("%w: email %s already taken", apperr.ErrConflict, cmd.Email)
	}

	hash, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Username:     cmd.Username,
		Email:        cmd.Email,
		PasswordHash: hash,
		FullName:     cmd.FullName,
		Role:         role,
		Active:       true,
	}
	if err := h.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}
