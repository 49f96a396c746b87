package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/AlbaniHafiz/symfony-ecommerce-backend-sub001/models"
	"github.com/AlbaniHafiz/symfony-ecommerce-backend-sub001/repository"
	"github.com/AlbaniHafiz/symfony-ecommerce-backend-sub001/softdelete"
)

func seedUser(t *testing.T, db *gorm.DB, name, email string, roles ...string) models.User {
	t.Helper()
	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: "x",
		Roles:        roles,
		Active:       true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func TestUsersByRole(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db, "Alice", "alice@example.com", string(models.RoleCustomer))
	seedUser(t, db, "Driss", "driss@example.com", string(models.RoleDelivery), string(models.RoleCustomer))
	seedUser(t, db, "Nadia", "nadia@example.com", string(models.RoleDelivery))

	repo := repository.NewUsers(db)
	agents, err := repo.ByRole(models.RoleDelivery, softdelete.Live)
	require.NoError(t, err)
	require.Len(t, agents, 2)
	assert.Equal(t, "Driss", agents[0].Name)
	assert.Equal(t, "Nadia", agents[1].Name)
}

func TestUsersByRoleExcludesDeleted(t *testing.T) {
	db := setupTestDB(t)
	agent := seedUser(t, db, "Driss", "driss@example.com", string(models.RoleDelivery))
	require.NoError(t, softdelete.Delete(db, &agent))

	repo := repository.NewUsers(db)
	live, err := repo.ByRole(models.RoleDelivery, softdelete.Live)
	require.NoError(t, err)
	assert.Empty(t, live)
}

func TestUsersByEmail(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db, "Alice", "alice@example.com", string(models.RoleCustomer))

	repo := repository.NewUsers(db)
	found, err := repo.ByEmail("alice@example.com", softdelete.Live)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Alice", found.Name)

	missing, err := repo.ByEmail("bob@example.com", softdelete.Live)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
