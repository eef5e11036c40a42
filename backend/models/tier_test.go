package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnlocksLimitedTier(t *testing.T) {
	free := &SubscriptionTier{ID: "free", ModuleLimit: 3}

	assert.True(t, free.Unlocks(0))
	assert.True(t, free.Unlocks(2))
	assert.False(t, free.Unlocks(3))
	assert.False(t, free.Unlocks(10))
}

func TestUnlocksUnlimitedTier(t *testing.T) {
	premium := &SubscriptionTier{ID: "premium", ModuleLimit: UnlimitedModules}

	assert.True(t, premium.Unlocks(0))
	assert.True(t, premium.Unlocks(999))
}

func TestUnlocksNilTierLocksEverything(t *testing.T) {
	var tier *SubscriptionTier

	assert.False(t, tier.Unlocks(0))
	assert.False(t, tier.Unlocks(1))
}

func TestUnlocksZeroLimit(t *testing.T) {
	locked := &SubscriptionTier{ID: "trial", ModuleLimit: 0}

	assert.False(t, locked.Unlocks(0))
}

func TestTierPatchApply(t *testing.T) {
	tier := SubscriptionTier{ID: "plus", Name: "Exam Pack", Price: 5.90, ModuleLimit: 5}

	name := "Exam Pack+"
	limit := 6
	tier.Apply(TierPatch{Name: &name, ModuleLimit: &limit})

	assert.Equal(t, "Exam Pack+", tier.Name)
	assert.Equal(t, 6, tier.ModuleLimit)
	assert.Equal(t, 5.90, tier.Price)
}
