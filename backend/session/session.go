// Package session tracks the single active authenticated identity for the
// process lifetime. The manager holds its own copy of the user record:
// directory edits (or deletion) never revoke an established session, and a
// session-only tier upgrade never writes back to the directory.
package session

import (
	"sync"
	"time"

	"mylegs/backend/models"
	"mylegs/backend/store"
)

const (
	// GuestEmail is the designated default free account for guest access.
	GuestEmail = "john@gmail.com"

	// PremiumTierID is the tier a session upgrade switches to; it also
	// gates premium-only features like tutor image analysis.
	PremiumTierID = "premium"

	freeTierID = "free"
)

type Manager struct {
	mu        sync.RWMutex
	directory *store.Directory
	tiers     *store.TierRegistry
	current   *models.User
}

func NewManager(directory *store.Directory, tiers *store.TierRegistry) *Manager {
	return &Manager{directory: directory, tiers: tiers}
}

// Login matches email, password and Active status against the directory.
// Any mismatch is the same generic failure; callers learn nothing about
// which field was wrong.
func (m *Manager) Login(email, password string) (models.User, bool) {
	user, ok := m.directory.ByEmail(email)
	if !ok || !user.IsActive() || !user.CheckPassword(password) {
		return models.User{}, false
	}

	m.mu.Lock()
	m.current = &user
	m.mu.Unlock()
	return user, true
}

// LoginAsAdmin activates the first admin directory entry, or a transient
// admin identity (never persisted) when the directory has none.
func (m *Manager) LoginAsAdmin() models.User {
	user, ok := m.directory.FirstAdmin()
	if !ok {
		user = models.User{
			ID:     "admin-temp",
			Email:  "admin@mylegs.app",
			Name:   "System Admin",
			TierID: PremiumTierID,
			Role:   models.RoleAdmin,
			Joined: time.Now().Format("2006-01-02"),
			Status: models.StatusActive,
		}
	}

	m.mu.Lock()
	m.current = &user
	m.mu.Unlock()
	return user
}

// LoginAsGuest activates the designated free account, else the first
// free-tier entry, else a transient guest identity.
func (m *Manager) LoginAsGuest() models.User {
	user, ok := m.directory.ByEmail(GuestEmail)
	if !ok {
		user, ok = m.directory.FirstByTier(freeTierID)
	}
	if !ok {
		user = models.User{
			ID:     "guest",
			Email:  "student@mylegs.app",
			Name:   "Student Guest",
			TierID: freeTierID,
			Role:   models.RoleUser,
			Joined: time.Now().Format("2006-01-02"),
			Status: models.StatusActive,
		}
	}

	m.mu.Lock()
	m.current = &user
	m.mu.Unlock()
	return user
}

func (m *Manager) Logout() {
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()
}

// Current returns a copy of the active identity, if any.
func (m *Manager) Current() (models.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return models.User{}, false
	}
	return *m.current, true
}

// UpgradeToPremium rewrites the active identity's tier in place for the
// lifetime of the session. The directory record is untouched; a durable
// upgrade goes through a separate directory update.
func (m *Manager) UpgradeToPremium() (models.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return models.User{}, false
	}
	m.current.TierID = PremiumTierID
	return *m.current, true
}

// CurrentTier resolves the active identity's tier through the registry,
// falling back to the default tier for a dangling tier id. Nil means no
// session or no resolvable tier; everything stays locked.
func (m *Manager) CurrentTier() *models.SubscriptionTier {
	m.mu.RLock()
	user := m.current
	m.mu.RUnlock()
	if user == nil {
		return nil
	}
	return m.tiers.Resolve(user.TierID)
}
