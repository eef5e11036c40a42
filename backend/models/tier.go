package models

// UnlimitedModules is the sentinel module limit for tiers that unlock the
// whole curriculum.
const UnlimitedModules = -1

type SubscriptionTier struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	ModuleLimit int      `json:"moduleLimit"`
	Features    []string `json:"features"`
	ColorTheme  string   `json:"colorTheme"`
	IsDefault   bool     `json:"isDefault,omitempty"`
}

// Unlocks reports whether the curriculum entry at the given zero-based
// position is accessible on this tier. A nil tier (no resolvable tier and
// no default configured) locks everything rather than failing.
func (t *SubscriptionTier) Unlocks(index int) bool {
	if t == nil {
		return false
	}
	if t.ModuleLimit == UnlimitedModules {
		return true
	}
	return index < t.ModuleLimit
}

type TierPatch struct {
	Name        *string   `json:"name"`
	Price       *float64  `json:"price"`
	Description *string   `json:"description"`
	ModuleLimit *int      `json:"moduleLimit"`
	Features    *[]string `json:"features"`
	ColorTheme  *string   `json:"colorTheme"`
	IsDefault   *bool     `json:"isDefault"`
}

func (t *SubscriptionTier) Apply(p TierPatch) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Price != nil {
		t.Price = *p.Price
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.ModuleLimit != nil {
		t.ModuleLimit = *p.ModuleLimit
	}
	if p.Features != nil {
		t.Features = *p.Features
	}
	if p.ColorTheme != nil {
		t.ColorTheme = *p.ColorTheme
	}
	if p.IsDefault != nil {
		t.IsDefault = *p.IsDefault
	}
}
