package store

import (
	"sync"

	"mylegs/backend/models"
)

// TierRegistry maps tier identifiers to their entitlements. Like the user
// directory it is in-memory; admin edits do not survive a restart.
type TierRegistry struct {
	mu    sync.RWMutex
	tiers []models.SubscriptionTier
}

func NewTierRegistry(seed []models.SubscriptionTier) *TierRegistry {
	tiers := make([]models.SubscriptionTier, len(seed))
	copy(tiers, seed)
	return &TierRegistry{tiers: tiers}
}

func (r *TierRegistry) Tiers() []models.SubscriptionTier {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.SubscriptionTier, len(r.tiers))
	copy(out, r.tiers)
	return out
}

func (r *TierRegistry) ByID(id string) (models.SubscriptionTier, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.tiers {
		if t.ID == id {
			return t, true
		}
	}
	return models.SubscriptionTier{}, false
}

// Resolve returns the tier for the given id, falling back to the default
// tier when the id does not resolve. It returns nil when neither exists;
// entitlement checks on a nil tier lock everything.
func (r *TierRegistry) Resolve(id string) *models.SubscriptionTier {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.tiers {
		if r.tiers[i].ID == id {
			t := r.tiers[i]
			return &t
		}
	}
	for i := range r.tiers {
		if r.tiers[i].IsDefault {
			t := r.tiers[i]
			return &t
		}
	}
	return nil
}

// Default returns the tier flagged as the fallback, if any.
func (r *TierRegistry) Default() *models.SubscriptionTier {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.tiers {
		if r.tiers[i].IsDefault {
			t := r.tiers[i]
			return &t
		}
	}
	return nil
}

func (r *TierRegistry) Add(tier models.SubscriptionTier) models.SubscriptionTier {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tiers = append(r.tiers, tier)
	return tier
}

func (r *TierRegistry) Update(id string, patch models.TierPatch) (models.SubscriptionTier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tiers {
		if r.tiers[i].ID == id {
			r.tiers[i].Apply(patch)
			return r.tiers[i], nil
		}
	}
	return models.SubscriptionTier{}, ErrNotFound
}

func (r *TierRegistry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tiers {
		if r.tiers[i].ID == id {
			if r.tiers[i].IsDefault {
				return ErrDefaultTier
			}
			r.tiers = append(r.tiers[:i], r.tiers[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
