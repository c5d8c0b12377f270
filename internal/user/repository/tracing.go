package repository

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tansu/autoservice/internal/user/domain"
)

var tracer = otel.Tracer("user-repository")

// GormUserRepositoryWithTracing wraps GormUserRepository with tracing
type GormUserRepositoryWithTracing struct {
	*GormUserRepository
}

// NewGormUserRepositoryWithTracing creates a new repository with tracing
func NewGormUserRepositoryWithTracing(db *gorm.DB) *GormUserRepositoryWithTracing {
	return &GormUserRepositoryWithTracing{
		GormUserRepository: NewGormUserRepository(db),
	}
}

// CreateWithContext records a span around Create
func (r *GormUserRepositoryWithTracing) CreateWithContext(ctx context.Context, user *domain.User) error {
	_, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("user.username", user.Username),
			attribute.String("user.role", user.Role),
		),
	)
	defer span.End()

	err := r.GormUserRepository.Create(user)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("user.id", int(user.ID)))
	return nil
}

// FindByIDWithContext records a span around FindByID
func (r *GormUserRepositoryWithTracing) FindByIDWithContext(ctx context.Context, id uint) (*domain.User, error) {
	_, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.Int("user.id", int(id))),
	)
	defer span.End()

	user, err := r.GormUserRepository.FindByID(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return user, nil
}

// FindByUsernameWithContext records a span around FindByUsername. The
// span carries the username only; credentials never become attributes.
func (r *GormUserRepositoryWithTracing) FindByUsernameWithContext(ctx context.Context, username string) (*domain.User, error) {
	_, span := tracer.Start(ctx, "repository.FindByUsername",
		trace.WithAttributes(attribute.String("user.username", username)),
	)
	defer span.End()

	user, err := r.GormUserRepository.FindByUsername(username)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return user, nil
}

// UpdateLastLoginWithContext records a span around UpdateLastLogin
func (r *GormUserRepositoryWithTracing) UpdateLastLoginWithContext(ctx context.Context, id uint, at time.Time) error {
	_, span := tracer.Start(ctx, "repository.UpdateLastLogin",
		trace.WithAttributes(attribute.Int("user.id", int(id))),
	)
	defer span.End()

	err := r.GormUserRepository.UpdateLastLogin(id, at)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// UpdatePasswordWithContext records a span around UpdatePassword
func (r *GormUserRepositoryWithTracing) UpdatePasswordWithContext(ctx context.Context, id uint, passwordHash string) error {
	_, span := tracer.Start(ctx, "repository.UpdatePassword",
		trace.WithAttributes(attribute.Int("user.id", int(id))),
	)
	defer span.End()

	err := r.GormUserRepository.UpdatePassword(id, passwordHash)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// FindAllWithContext records a span around FindAll
func (r *GormUserRepositoryWithTracing) FindAllWithContext(ctx context.Context, limit, offset int) ([]domain.User, error) {
	_, span := tracer.Start(ctx, "repository.FindAll",
		trace.WithAttributes(
			attribute.Int("query.limit", limit),
			attribute.Int("query.offset", offset),
		),
	)
	defer span.End()

	users, err := r.GormUserRepository.FindAll(limit, offset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(users)))
	return users, nil
}
