package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mylegs/backend/models"
)

func TestTierResolve(t *testing.T) {
	r := NewTierRegistry(SeedTiers())

	premium := r.Resolve("premium")
	assert.NotNil(t, premium)
	assert.Equal(t, "premium", premium.ID)

	// A dangling id falls back to the default (free) tier.
	fallback := r.Resolve("retired-tier")
	assert.NotNil(t, fallback)
	assert.True(t, fallback.IsDefault)
}

func TestTierResolveWithoutDefault(t *testing.T) {
	r := NewTierRegistry([]models.SubscriptionTier{
		{ID: "premium", ModuleLimit: models.UnlimitedModules},
	})

	assert.Nil(t, r.Resolve("retired-tier"))
}

func TestTierRegistryCRUD(t *testing.T) {
	r := NewTierRegistry(SeedTiers())

	added := r.Add(models.SubscriptionTier{ID: "campus", Name: "Campus", ModuleLimit: 4})
	got, ok := r.ByID("campus")
	assert.True(t, ok)
	assert.Equal(t, added.Name, got.Name)

	limit := 6
	updated, err := r.Update("campus", models.TierPatch{ModuleLimit: &limit})
	assert.NoError(t, err)
	assert.Equal(t, 6, updated.ModuleLimit)

	assert.NoError(t, r.Delete("campus"))
	_, ok = r.ByID("campus")
	assert.False(t, ok)

	_, err = r.Update("campus", models.TierPatch{})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, r.Delete("campus"), ErrNotFound)
}

func TestDefaultTierUndeletable(t *testing.T) {
	r := NewTierRegistry(SeedTiers())

	assert.ErrorIs(t, r.Delete("free"), ErrDefaultTier)
	_, ok := r.ByID("free")
	assert.True(t, ok)
}
