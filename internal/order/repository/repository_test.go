package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"

	customerdomain "github.com/tansu/autoservice/internal/customer/domain"
	customerrepo "github.com/tansu/autoservice/internal/customer/repository"
	apperr "github.com/tansu/autoservice/internal/domain"
	"github.com/tansu/autoservice/internal/order/domain"
	"github.com/tansu/autoservice/pkg/database"
)

func newTestRepo(t *testing.T) (*GormOrderRepository, *customerdomain.Customer) {
	t.Helper()
	// One connection keeps the in-memory database alive for the whole
	// test; the DSN flag turns foreign key enforcement on.
	m, err := database.OpenWithDialector(sqlite.Open(":memory:?_foreign_keys=on"), database.Config{MaxOpenConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })

	crepo := customerrepo.NewGormCustomerRepository(m.DB())
	require.NoError(t, crepo.AutoMigrate())

	repo := NewGormOrderRepository(m.DB())
	require.NoError(t, repo.AutoMigrate())

	customer := &customerdomain.Customer{
		Name: "Alice Smith", Email: "alice@example.com", Phone: "555-0101", Active: true,
	}
	require.NoError(t, crepo.Create(customer))
	return repo, customer
}

func newOrder(customerID uint, date time.Time) *domain.Order {
	return &domain.Order{
		CustomerID:    customerID,
		OrderDate:     date,
		VehicleModel:  "Honda Civic",
		VehicleNumber: "34 ABC 123",
		Status:        domain.StatusPending,
	}
}

func TestCreateAndFindOrder(t *testing.T) {
	repo, customer := newTestRepo(t)

	o := newOrder(customer.ID, time.Now())
	require.NoError(t, repo.Create(o))
	require.NotZero(t, o.ID)

	found, err := repo.FindByID(o.ID)
	require.NoError(t, err)
	assert.Equal(t, customer.ID, found.CustomerID)
	assert.Equal(t, domain.StatusPending, found.Status)
	assert.Equal(t, "34 ABC 123", found.VehicleNumber)
}

func TestCreateOrderForMissingCustomerFails(t *testing.T) {
	repo, _ := newTestRepo(t)

	err := repo.Create(newOrder(9999, time.Now()))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrIntegrityViolation)
}

func TestFindByCustomerNewestFirst(t *testing.T) {
	repo, customer := newTestRepo(t)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	older := newOrder(customer.ID, base)
	newer := newOrder(customer.ID, base.AddDate(0, 0, 7))
	require.NoError(t, repo.Create(older))
	require.NoError(t, repo.Create(newer))

	orders, err := repo.FindByCustomer(customer.ID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, newer.ID, orders[0].ID, "orders list newest first")
	assert.Equal(t, older.ID, orders[1].ID)
}

func TestFindByDateRangeIsInclusive(t *testing.T) {
	repo, customer := newTestRepo(t)

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	inside := newOrder(customer.ID, base.AddDate(0, 0, 5))
	boundary := newOrder(customer.ID, base)
	outside := newOrder(customer.ID, base.AddDate(0, 1, 0))
	for _, o := range []*domain.Order{inside, boundary, outside} {
		require.NoError(t, repo.Create(o))
	}

	orders, err := repo.FindByDateRange(base, base.AddDate(0, 0, 10))
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, inside.ID, orders[0].ID)
	assert.Equal(t, boundary.ID, orders[1].ID)
}

func TestUpdateStatus(t *testing.T) {
	repo, customer := newTestRepo(t)

	o := newOrder(customer.ID, time.Now())
	require.NoError(t, repo.Create(o))

	require.NoError(t, repo.UpdateStatus(o.ID, domain.StatusInProgress))

	found, err := repo.FindByID(o.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, found.Status)

	assert.ErrorIs(t, repo.UpdateStatus(9999, domain.StatusCompleted), apperr.ErrNotFound)
}

func TestCountByStatus(t *testing.T) {
	repo, customer := newTestRepo(t)

	a := newOrder(customer.ID, time.Now())
	b := newOrder(customer.ID, time.Now())
	require.NoError(t, repo.Create(a))
	require.NoError(t, repo.Create(b))
	require.NoError(t, repo.UpdateStatus(b.ID, domain.StatusInProgress))

	pending, err := repo.CountByStatus(domain.StatusPending)
	require.NoError(t, err)
	assert.EqualValues(t, 1, pending)

	total, err := repo.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
}

func TestStatusTransitions(t *testing.T) {
	o := &domain.Order{Status: domain.StatusPending}
	assert.True(t, o.CanTransitionTo(domain.StatusInProgress))
	assert.True(t, o.CanTransitionTo(domain.StatusCancelled))
	assert.False(t, o.CanTransitionTo(domain.StatusCompleted))

	o.Status = domain.StatusInProgress
	assert.True(t, o.CanTransitionTo(domain.StatusCompleted))
	assert.True(t, o.CanTransitionTo(domain.StatusCancelled))
	assert.False(t, o.CanTransitionTo(domain.StatusPending))

	o.Status = domain.StatusCompleted
	assert.False(t, o.CanTransitionTo(domain.StatusCancelled))

	o.Status = domain.StatusCancelled
	assert.False(t, o.CanTransitionTo(domain.StatusInProgress))
}

var _ domain.OrderRepository = (*GormOrderRepository)(nil)
