package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haitch/internal/domain/catalog"
)

func TestDeviceModelRepository_CRUD(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDeviceModelRepository(db, testLogger())
	ctx := context.Background()

	m, err := catalog.NewDeviceModel("LaserJet 400")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, m))

	exists, err := repo.ExistsByName(ctx, "LaserJet 400")
	require.NoError(t, err)
	assert.True(t, exists)

	// Unique name enforced by the index.
	dup, err := catalog.NewDeviceModel("LaserJet 400")
	require.NoError(t, err)
	assert.Error(t, repo.Create(ctx, dup))

	require.NoError(t, m.Rename("LaserJet 400 Pro"))
	require.NoError(t, repo.Update(ctx, m))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "LaserJet 400 Pro", all[0].Name())

	require.NoError(t, repo.Delete(ctx, m.ID()))
	all, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCustomerRepository_SoftDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCustomerRepository(db, testLogger())
	ctx := context.Background()

	c, err := catalog.NewCustomer("Acme")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, c))

	require.NoError(t, repo.Delete(ctx, c.ID()))

	found, err := repo.GetByID(ctx, c.ID())
	require.NoError(t, err)
	assert.Nil(t, found)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	exists, err := repo.ExistsByName(ctx, "Acme")
	require.NoError(t, err)
	assert.False(t, exists, "soft-deleted customers do not block the name check")
}
