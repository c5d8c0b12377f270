package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tansu/autoservice/internal/inventory/domain"
)

var tracer = otel.Tracer("inventory-repository")

// GormItemRepositoryWithTracing wraps GormItemRepository with tracing
type GormItemRepositoryWithTracing struct {
	*GormItemRepository
}

// NewGormItemRepositoryWithTracing creates a new repository with tracing
func NewGormItemRepositoryWithTracing(db *gorm.DB) *GormItemRepositoryWithTracing {
	return &GormItemRepositoryWithTracing{
		GormItemRepository: NewGormItemRepository(db),
	}
}

// CreateWithContext records a span around Create
func (r *GormItemRepositoryWithTracing) CreateWithContext(ctx context.Context, item *domain.Item) error {
	_, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("item.name", item.Name),
			attribute.Int("item.quantity", item.Quantity),
		),
	)
	defer span.End()

	err := r.GormItemRepository.Create(item)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("item.id", int(item.ID)))
	return nil
}

// FindByIDWithContext records a span around FindByID
func (r *GormItemRepositoryWithTracing) FindByIDWithContext(ctx context.Context, id uint) (*domain.Item, error) {
	_, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.Int("item.id", int(id))),
	)
	defer span.End()

	item, err := r.GormItemRepository.FindByID(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("item.sku", item.SKU),
		attribute.Int("item.quantity", item.Quantity),
	)
	return item, nil
}

// ReduceStockWithContext records a span around ReduceStock, tagging whether
// the reduction was accepted
func (r *GormItemRepositoryWithTracing) ReduceStockWithContext(ctx context.Context, id uint, amount int) (bool, error) {
	_, span := tracer.Start(ctx, "repository.ReduceStock",
		trace.WithAttributes(
			attribute.Int("item.id", int(id)),
			attribute.Int("stock.amount", amount),
		),
	)
	defer span.End()

	ok, err := r.GormItemRepository.ReduceStock(id, amount)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return false, err
	}

	span.SetAttributes(attribute.Bool("stock.reduced", ok))
	return ok, nil
}

// AddStockWithContext records a span around AddStock
func (r *GormItemRepositoryWithTracing) AddStockWithContext(ctx context.Context, id uint, amount int) error {
	_, span := tracer.Start(ctx, "repository.AddStock",
		trace.WithAttributes(
			attribute.Int("item.id", int(id)),
			attribute.Int("stock.amount", amount),
		),
	)
	defer span.End()

	err := r.GormItemRepository.AddStock(id, amount)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

// UpdateQuantityWithContext records a span around UpdateQuantity
func (r *GormItemRepositoryWithTracing) UpdateQuantityWithContext(ctx context.Context, id uint, quantity int) error {
	_, span := tracer.Start(ctx, "repository.UpdateQuantity",
		trace.WithAttributes(
			attribute.Int("item.id", int(id)),
			attribute.Int("quantity.new_value", quantity),
		),
	)
	defer span.End()

	err := r.GormItemRepository.UpdateQuantity(id, quantity)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

// FindLowStockWithContext records a span around FindLowStock
func (r *GormItemRepositoryWithTracing) FindLowStockWithContext(ctx context.Context) ([]domain.Item, error) {
	_, span := tracer.Start(ctx, "repository.FindLowStock")
	defer span.End()

	items, err := r.GormItemRepository.FindLowStock()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(items)))
	return items, nil
}
