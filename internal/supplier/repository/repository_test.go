package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"

	apperr "github.com/tansu/autoservice/internal/domain"
	"github.com/tansu/autoservice/internal/supplier/domain"
	"github.com/tansu/autoservice/pkg/database"
)

func newTestRepo(t *testing.T) *GormSupplierRepository {
	t.Helper()
	m, err := database.OpenWithDialector(sqlite.Open(":memory:"), database.Config{MaxOpenConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })

	repo := NewGormSupplierRepository(m.DB())
	require.NoError(t, repo.AutoMigrate())
	return repo
}

func newSupplier(company, category, status string) *domain.Supplier {
	return &domain.Supplier{
		CompanyName:   company,
		ContactPerson: "Sales Desk",
		Email:         "sales@parts.example",
		Phone:         "555-0150",
		Category:      category,
		Status:        status,
	}
}

func TestCreateSyncsActiveFlag(t *testing.T) {
	repo := newTestRepo(t)

	s := newSupplier("Parts R Us", "Brakes", domain.StatusActive)
	require.NoError(t, repo.Create(s))
	require.NotZero(t, s.ID)
	assert.True(t, s.Active)

	blocked := newSupplier("Shady Parts", "Brakes", domain.StatusBlacklisted)
	require.NoError(t, repo.Create(blocked))
	assert.False(t, blocked.Active, "active flag follows the status on every write")

	// The cleared flag must reach the store, not just the struct.
	stored, err := repo.FindByID(blocked.ID)
	require.NoError(t, err)
	assert.False(t, stored.Active)
	assert.Equal(t, domain.StatusBlacklisted, stored.Status)
}

func TestUpdateStatusResyncsActiveFlag(t *testing.T) {
	repo := newTestRepo(t)

	s := newSupplier("Parts R Us", "Brakes", domain.StatusActive)
	require.NoError(t, repo.Create(s))

	s.Status = domain.StatusInactive
	require.NoError(t, repo.Update(s))

	found, err := repo.FindByID(s.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInactive, found.Status)
	assert.False(t, found.Active)
}

func TestFindAllActiveExcludesBlockedSuppliers(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Create(newSupplier("Beta Brakes", "Brakes", domain.StatusActive)))
	require.NoError(t, repo.Create(newSupplier("Alpha Auto", "Engine", domain.StatusActive)))
	require.NoError(t, repo.Create(newSupplier("Shady Parts", "Brakes", domain.StatusBlacklisted)))

	active, err := repo.FindAllActive()
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "Alpha Auto", active[0].CompanyName, "listing is ordered by company name")
	assert.Equal(t, "Beta Brakes", active[1].CompanyName)
}

func TestFindByStatusAndCategory(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Create(newSupplier("Beta Brakes", "Brakes", domain.StatusActive)))
	require.NoError(t, repo.Create(newSupplier("Alpha Auto", "Engine", domain.StatusInactive)))

	inactive, err := repo.FindByStatus(domain.StatusInactive)
	require.NoError(t, err)
	require.Len(t, inactive, 1)
	assert.Equal(t, "Alpha Auto", inactive[0].CompanyName)

	brakes, err := repo.FindByCategory("Brakes")
	require.NoError(t, err)
	require.Len(t, brakes, 1)
	assert.Equal(t, "Beta Brakes", brakes[0].CompanyName)
}

func TestSearchSuppliers(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Create(newSupplier("Beta Brakes", "Brakes", domain.StatusActive)))
	require.NoError(t, repo.Create(newSupplier("Alpha Auto", "Engine", domain.StatusActive)))

	results, err := repo.Search("beta")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Beta Brakes", results[0].CompanyName)
}

func TestDeleteSupplier(t *testing.T) {
	repo := newTestRepo(t)

	s := newSupplier("Parts R Us", "Brakes", domain.StatusActive)
	require.NoError(t, repo.Create(s))

	require.NoError(t, repo.Delete(s.ID))
	_, err := repo.FindByID(s.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

var _ domain.SupplierRepository = (*GormSupplierRepository)(nil)
