package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"

	"github.com/tansu/autoservice/internal/customer/domain"
	apperr "github.com/tansu/autoservice/internal/domain"
	"github.com/tansu/autoservice/pkg/database"
)

func newTestRepo(t *testing.T) *GormCustomerRepository {
	t.Helper()
	// One connection keeps the in-memory database alive for the whole test.
	m, err := database.OpenWithDialector(sqlite.Open(":memory:"), database.Config{MaxOpenConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })

	repo := NewGormCustomerRepository(m.DB())
	require.NoError(t, repo.AutoMigrate())
	return repo
}

func newCustomer(name, email, phone string) *domain.Customer {
	return &domain.Customer{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Address: "12 Main St",
		Active:  true,
	}
}

func TestCreateAssignsIDAndRoundTrips(t *testing.T) {
	repo := newTestRepo(t)

	c := newCustomer("Alice Smith", "alice@example.com", "555-0101")
	require.NoError(t, repo.Create(c))
	require.NotZero(t, c.ID, "create must populate the generated identity")

	found, err := repo.FindByID(c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.Name, found.Name)
	assert.Equal(t, c.Email, found.Email)
	assert.Equal(t, c.Phone, found.Phone)
	assert.Equal(t, c.Address, found.Address)
	assert.True(t, found.Active)
}

func TestCreateInactiveCustomerPersistsInactive(t *testing.T) {
	repo := newTestRepo(t)

	c := newCustomer("Former Customer", "former@example.com", "555-0199")
	c.Active = false
	require.NoError(t, repo.Create(c))

	found, err := repo.FindByID(c.ID)
	require.NoError(t, err)
	assert.False(t, found.Active, "a false active flag must survive the insert")

	active, err := repo.CountActive()
	require.NoError(t, err)
	assert.Zero(t, active)
}

func TestUpdateChangesOnlyUpdatedFields(t *testing.T) {
	repo := newTestRepo(t)

	c := newCustomer("Alice Smith", "alice@example.com", "555-0101")
	require.NoError(t, repo.Create(c))

	c.Address = "99 Harbor Rd"
	require.NoError(t, repo.Update(c))

	found, err := repo.FindByID(c.ID)
	require.NoError(t, err)
	assert.Equal(t, "99 Harbor Rd", found.Address)
	assert.Equal(t, "Alice Smith", found.Name, "unrelated field must be untouched")
	assert.Equal(t, "alice@example.com", found.Email, "unrelated field must be untouched")
}

func TestFindByIDNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.FindByID(12345)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestSoftDeleteKeepsRowButHidesFromActiveViews(t *testing.T) {
	repo := newTestRepo(t)

	c := newCustomer("Alice Smith", "alice@example.com", "555-0101")
	require.NoError(t, repo.Create(c))
	require.NoError(t, repo.Create(newCustomer("Bob Jones", "bob@example.com", "555-0102")))

	before, err := repo.CountActive()
	require.NoError(t, err)

	require.NoError(t, repo.Delete(c.ID))

	found, err := repo.FindByID(c.ID)
	require.NoError(t, err, "soft-deleted customer must stay queryable by id")
	assert.False(t, found.Active)

	after, err := repo.CountActive()
	require.NoError(t, err)
	assert.Equal(t, before-1, after)

	active, err := repo.FindAllActive(0, 0)
	require.NoError(t, err)
	for _, a := range active {
		assert.NotEqual(t, c.ID, a.ID, "active listing must exclude soft-deleted customers")
	}

	total, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(2), total, "row must not be physically removed")

	exists, err := repo.ExistsByID(c.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestDeleteMissingCustomer(t *testing.T) {
	repo := newTestRepo(t)
	assert.ErrorIs(t, repo.Delete(999), apperr.ErrNotFound)
}

func TestFindByEmailAndPhoneIgnoreInactive(t *testing.T) {
	repo := newTestRepo(t)

	c := newCustomer("Alice Smith", "alice@example.com", "555-0101")
	require.NoError(t, repo.Create(c))

	byEmail, err := repo.FindByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, c.ID, byEmail.ID)

	byPhone, err := repo.FindByPhone("555-0101")
	require.NoError(t, err)
	assert.Equal(t, c.ID, byPhone.ID)

	require.NoError(t, repo.Delete(c.ID))

	_, err = repo.FindByEmail("alice@example.com")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	_, err = repo.FindByPhone("555-0101")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestEmailInUseConsidersOnlyActiveRows(t *testing.T) {
	repo := newTestRepo(t)

	c := newCustomer("Alice Smith", "alice@example.com", "555-0101")
	require.NoError(t, repo.Create(c))

	taken, err := repo.EmailInUse("alice@example.com", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.EmailInUse("alice@example.com", c.ID)
	require.NoError(t, err)
	assert.False(t, taken, "the customer's own row must be excludable")

	require.NoError(t, repo.Delete(c.ID))
	taken, err = repo.EmailInUse("alice@example.com", 0)
	require.NoError(t, err)
	assert.False(t, taken, "soft-deleted rows do not hold the email")
}

func TestSearchMatchesSubstringCaseInsensitively(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Create(newCustomer("Alice Smith", "alice@example.com", "555-0101")))
	require.NoError(t, repo.Create(newCustomer("Bob Jones", "bob@example.com", "555-0102")))
	require.NoError(t, repo.Create(newCustomer("Carol Smithers", "carol@example.com", "555-0103")))

	results, err := repo.Search("SMITH")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Alice Smith", results[0].Name, "default order is by name")
	assert.Equal(t, "Carol Smithers", results[1].Name)

	results, err = repo.Search("0102")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Bob Jones", results[0].Name)
}

func TestAppendVehicleHistoryIsAppendOnly(t *testing.T) {
	repo := newTestRepo(t)

	c := newCustomer("Alice Smith", "alice@example.com", "555-0101")
	require.NoError(t, repo.Create(c))

	require.NoError(t, repo.AppendVehicleHistory(c.ID, "oil change"))
	require.NoError(t, repo.AppendVehicleHistory(c.ID, "brake pads"))

	found, err := repo.FindByID(c.ID)
	require.NoError(t, err)
	assert.Equal(t, "oil change\nbrake pads\n", found.VehicleHistory)

	assert.ErrorIs(t, repo.AppendVehicleHistory(999, "ghost"), apperr.ErrNotFound)
}

var _ domain.CustomerRepository = (*GormCustomerRepository)(nil)
