package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"

	apperr "github.com/tansu/autoservice/internal/domain"
	"github.com/tansu/autoservice/internal/user/domain"
	"github.com/tansu/autoservice/pkg/database"
)

func newTestRepo(t *testing.T) *GormUserRepository {
	t.Helper()
	// One connection keeps the in-memory database alive for the whole test.
	m, err := database.OpenWithDialector(sqlite.Open(":memory:"), database.Config{MaxOpenConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })

	repo := NewGormUserRepository(m.DB())
	require.NoError(t, repo.AutoMigrate())
	return repo
}

func newUser(username, email, role string) *domain.User {
	return &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: "$2a$12$notarealhashnotarealhashnotarealhash",
		FullName:     "Test User",
		Role:         role,
		Active:       true,
	}
}

func TestCreateAndFindByUsername(t *testing.T) {
	repo := newTestRepo(t)

	u := newUser("jmechanic", "j@shop.example", domain.RoleEmployee)
	require.NoError(t, repo.Create(u))
	require.NotZero(t, u.ID)

	found, err := repo.FindByUsername("jmechanic")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)
	assert.Equal(t, u.Email, found.Email)

	_, err = repo.FindByUsername("nobody")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDuplicateUsernameIsConflict(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Create(newUser("jmechanic", "j@shop.example", domain.RoleEmployee)))

	err := repo.Create(newUser("jmechanic", "other@shop.example", domain.RoleEmployee))
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestDuplicateEmailIsConflict(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Create(newUser("jmechanic", "j@shop.example", domain.RoleEmployee)))

	err := repo.Create(newUser("other", "j@shop.example", domain.RoleEmployee))
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestUpdateLastLogin(t *testing.T) {
	repo := newTestRepo(t)

	u := newUser("jmechanic", "j@shop.example", domain.RoleEmployee)
	require.NoError(t, repo.Create(u))
	require.Nil(t, u.LastLoginAt)

	stamp := time.Now().Truncate(time.Second)
	require.NoError(t, repo.UpdateLastLogin(u.ID, stamp))

	found, err := repo.FindByID(u.ID)
	require.NoError(t, err)
	require.NotNil(t, found.LastLoginAt)
	assert.WithinDuration(t, stamp, *found.LastLoginAt, time.Second)

	assert.ErrorIs(t, repo.UpdateLastLogin(9999, stamp), apperr.ErrNotFound)
}

func TestUpdatePasswordReplacesHashOnly(t *testing.T) {
	repo := newTestRepo(t)

	u := newUser("jmechanic", "j@shop.example", domain.RoleEmployee)
	require.NoError(t, repo.Create(u))

	require.NoError(t, repo.UpdatePassword(u.ID, "newhash"))

	found, err := repo.FindByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "newhash", found.PasswordHash)
	assert.Equal(t, u.Username, found.Username)
}

func TestCreateInactiveUserPersistsInactive(t *testing.T) {
	repo := newTestRepo(t)

	u := newUser("parked", "parked@shop.example", domain.RoleEmployee)
	u.Active = false
	require.NoError(t, repo.Create(u))

	found, err := repo.FindByID(u.ID)
	require.NoError(t, err)
	assert.False(t, found.Active, "a false active flag must survive the insert")
}

func TestSetActive(t *testing.T) {
	repo := newTestRepo(t)

	u := newUser("jmechanic", "j@shop.example", domain.RoleEmployee)
	require.NoError(t, repo.Create(u))

	require.NoError(t, repo.SetActive(u.ID, false))
	found, err := repo.FindByID(u.ID)
	require.NoError(t, err)
	assert.False(t, found.Active)
}

func TestFindByRoleAndCounts(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Create(newUser("boss", "boss@shop.example", domain.RoleAdmin)))
	require.NoError(t, repo.Create(newUser("amy", "amy@shop.example", domain.RoleEmployee)))
	require.NoError(t, repo.Create(newUser("zed", "zed@shop.example", domain.RoleEmployee)))

	employees, err := repo.FindByRole(domain.RoleEmployee)
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, "amy", employees[0].Username, "role listing is ordered by username")

	total, err := repo.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)

	admins, err := repo.CountByRole(domain.RoleAdmin)
	require.NoError(t, err)
	assert.EqualValues(t, 1, admins)
}

func TestDeleteUser(t *testing.T) {
	repo := newTestRepo(t)

	u := newUser("jmechanic", "j@shop.example", domain.RoleEmployee)
	require.NoError(t, repo.Create(u))

	require.NoError(t, repo.Delete(u.ID))
	_, err := repo.FindByID(u.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(u.ID), apperr.ErrNotFound)
}

var _ domain.UserRepository = (*GormUserRepository)(nil)
