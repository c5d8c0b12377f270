package repository

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"

	apperr "github.com/tansu/autoservice/internal/domain"
	"github.com/tansu/autoservice/internal/inventory/domain"
	supplierrepo "github.com/tansu/autoservice/internal/supplier/repository"
	"github.com/tansu/autoservice/pkg/database"
)

func newTestRepo(t *testing.T) *GormItemRepository {
	t.Helper()
	// One connection keeps the in-memory database alive for the whole test.
	m, err := database.OpenWithDialector(sqlite.Open(":memory:"), database.Config{MaxOpenConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })

	// Suppliers migrate first; inventory_items carries a foreign key to them.
	require.NoError(t, supplierrepo.NewGormSupplierRepository(m.DB()).AutoMigrate())

	repo := NewGormItemRepository(m.DB())
	require.NoError(t, repo.AutoMigrate())
	return repo
}

func newItem(name, sku string, qty, min int) *domain.Item {
	return &domain.Item{
		Name:        name,
		SKU:         sku,
		Category:    "Brakes",
		Quantity:    qty,
		Unit:        "pcs",
		MinQuantity: min,
		UnitPrice:   19.90,
		CostPrice:   12.50,
		Active:      true,
	}
}

func TestCreateAssignsIDAndGeneratesSKU(t *testing.T) {
	repo := newTestRepo(t)

	item := newItem("Brake Pad Set", "", 10, 3)
	require.NoError(t, repo.Create(item))
	require.NotZero(t, item.ID)
	assert.True(t, strings.HasPrefix(item.SKU, "SKU-"), "blank SKU must be generated")

	found, err := repo.FindByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.SKU, found.SKU)
	assert.Equal(t, 10, found.Quantity)
}

func TestCreateInactiveItemPersistsInactive(t *testing.T) {
	repo := newTestRepo(t)

	item := newItem("Discontinued Part", "DSC-001", 0, 5)
	item.Active = false
	require.NoError(t, repo.Create(item))

	found, err := repo.FindByID(item.ID)
	require.NoError(t, err)
	assert.False(t, found.Active, "a false active flag must survive the insert")

	// Inactive items stay out of the stock views.
	outOfStock, err := repo.FindOutOfStock()
	require.NoError(t, err)
	assert.Empty(t, outOfStock)
}

func TestFindByIDNotFound(t *testing.T) {
	repo := newTestRepo(t)

	item, err := repo.FindByID(9999)
	assert.Nil(t, item)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestReduceStockSufficient(t *testing.T) {
	repo := newTestRepo(t)

	item := newItem("Oil Filter", "FLT-001", 5, 2)
	require.NoError(t, repo.Create(item))

	ok, err := repo.ReduceStock(item.ID, 5)
	require.NoError(t, err)
	assert.True(t, ok)

	found, err := repo.FindByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, found.Quantity)
}

func TestReduceStockInsufficientLeavesQuantityUnchanged(t *testing.T) {
	repo := newTestRepo(t)

	item := newItem("Oil Filter", "FLT-001", 5, 2)
	require.NoError(t, repo.Create(item))

	ok, err := repo.ReduceStock(item.ID, 6)
	require.NoError(t, err, "a declined reduction is not an error")
	assert.False(t, ok)

	found, err := repo.FindByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, found.Quantity)
}

func TestReduceStockMissingItemReportsFalse(t *testing.T) {
	repo := newTestRepo(t)

	ok, err := repo.ReduceStock(9999, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReduceStockRejectsNonPositiveAmount(t *testing.T) {
	repo := newTestRepo(t)

	item := newItem("Oil Filter", "FLT-001", 5, 2)
	require.NoError(t, repo.Create(item))

	_, err := repo.ReduceStock(item.ID, 0)
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
	_, err = repo.ReduceStock(item.ID, -3)
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestConcurrentReducersNeverOversell(t *testing.T) {
	repo := newTestRepo(t)

	const stock = 20
	const reducers = 50

	item := newItem("Spark Plug", "SPK-001", stock, 5)
	require.NoError(t, repo.Create(item))

	var wg sync.WaitGroup
	granted := make(chan bool, reducers)
	for i := 0; i < reducers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := repo.ReduceStock(item.ID, 1)
			assert.NoError(t, err)
			granted <- ok
		}()
	}
	wg.Wait()
	close(granted)

	successes := 0
	for ok := range granted {
		if ok {
			successes++
		}
	}
	assert.Equal(t, stock, successes, "exactly the available stock may be granted")

	found, err := repo.FindByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, found.Quantity)
}

func TestAddStockIncrementsAndStampsRestockTime(t *testing.T) {
	repo := newTestRepo(t)

	item := newItem("Wiper Blade", "WPR-001", 2, 1)
	require.NoError(t, repo.Create(item))
	require.Nil(t, item.LastRestockedAt)

	require.NoError(t, repo.AddStock(item.ID, 8))

	found, err := repo.FindByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, found.Quantity)
	require.NotNil(t, found.LastRestockedAt)
}

func TestAddStockMissingItem(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.AddStock(9999, 5)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateQuantitySetsAbsoluteValue(t *testing.T) {
	repo := newTestRepo(t)

	item := newItem("Air Filter", "AIR-001", 7, 2)
	require.NoError(t, repo.Create(item))

	require.NoError(t, repo.UpdateQuantity(item.ID, 42))

	found, err := repo.FindByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 42, found.Quantity)
}

func TestFindLowStockAndOutOfStock(t *testing.T) {
	repo := newTestRepo(t)

	low := newItem("Brake Fluid", "BRF-001", 2, 5)
	healthy := newItem("Coolant", "COO-001", 20, 5)
	empty := newItem("Gear Oil", "GRO-001", 0, 5)
	inactive := newItem("Old Part", "OLD-001", 0, 5)
	inactive.Active = false
	for _, it := range []*domain.Item{low, healthy, empty, inactive} {
		require.NoError(t, repo.Create(it))
	}

	lowStock, err := repo.FindLowStock()
	require.NoError(t, err)
	require.Len(t, lowStock, 1)
	assert.Equal(t, low.ID, lowStock[0].ID)

	outOfStock, err := repo.FindOutOfStock()
	require.NoError(t, err)
	require.Len(t, outOfStock, 1)
	assert.Equal(t, empty.ID, outOfStock[0].ID)
}

func TestSearchMatchesNameSKUAndCategoryCaseInsensitively(t *testing.T) {
	repo := newTestRepo(t)

	pad := newItem("Brake Pad Set", "PAD-100", 4, 1)
	filter := newItem("Oil Filter", "FLT-200", 4, 1)
	filter.Category = "Engine"
	require.NoError(t, repo.Create(pad))
	require.NoError(t, repo.Create(filter))

	bySKU, err := repo.Search("flt")
	require.NoError(t, err)
	require.Len(t, bySKU, 1)
	assert.Equal(t, filter.ID, bySKU[0].ID)

	byName, err := repo.Search("BRAKE")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, pad.ID, byName[0].ID)
}

func TestTotalStockValueSumsActiveCost(t *testing.T) {
	repo := newTestRepo(t)

	a := newItem("Brake Pad Set", "PAD-100", 4, 1) // 4 * 12.50 = 50
	b := newItem("Oil Filter", "FLT-200", 2, 1)
	b.CostPrice = 5.25 // 2 * 5.25 = 10.50
	inactive := newItem("Old Part", "OLD-001", 100, 1)
	inactive.Active = false
	for _, it := range []*domain.Item{a, b, inactive} {
		require.NoError(t, repo.Create(it))
	}

	value, err := repo.TotalStockValue()
	require.NoError(t, err)
	assert.InDelta(t, 60.50, value, 0.001)
}

func TestDeleteRemovesItem(t *testing.T) {
	repo := newTestRepo(t)

	item := newItem("Brake Pad Set", "PAD-100", 4, 1)
	require.NoError(t, repo.Create(item))

	require.NoError(t, repo.Delete(item.ID))

	_, err := repo.FindByID(item.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(item.ID), apperr.ErrNotFound)
}

func TestItemStockHelpers(t *testing.T) {
	item := newItem("Brake Pad Set", "PAD-100", 3, 5)
	assert.True(t, item.IsLowStock())
	assert.False(t, item.IsOutOfStock())

	item.Quantity = 0
	assert.False(t, item.IsLowStock())
	assert.True(t, item.IsOutOfStock())

	item.Quantity = 10
	assert.False(t, item.IsLowStock())
	assert.False(t, item.IsOutOfStock())
}

var _ domain.ItemRepository = (*GormItemRepository)(nil)
