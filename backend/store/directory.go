package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"mylegs/backend/models"
)

// Directory is the in-memory user registry. Admin mutations live only for
// the process lifetime; the interface seam is what a durable implementation
// would replace.
type Directory struct {
	mu    sync.RWMutex
	users []models.User
}

func NewDirectory(seed []models.User) *Directory {
	users := make([]models.User, len(seed))
	copy(users, seed)
	return &Directory{users: users}
}

func (d *Directory) Users() []models.User {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]models.User, len(d.users))
	copy(out, d.users)
	return out
}

func (d *Directory) ByID(id string) (models.User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, u := range d.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

func (d *Directory) ByEmail(email string) (models.User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, u := range d.users {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

// FirstAdmin returns the first directory entry with the admin role.
func (d *Directory) FirstAdmin() (models.User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, u := range d.users {
		if u.Role == models.RoleAdmin {
			return u, true
		}
	}
	return models.User{}, false
}

// FirstByTier returns the first directory entry on the given tier.
func (d *Directory) FirstByTier(tierID string) (models.User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, u := range d.users {
		if u.TierID == tierID {
			return u, true
		}
	}
	return models.User{}, false
}

// Add registers a new user with a freshly hashed password.
func (d *Directory) Add(name, email, password, tierID, role string) (models.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, u := range d.users {
		if u.Email == email {
			return models.User{}, ErrDuplicateEmail
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		TierID:       tierID,
		Role:         role,
		Joined:       time.Now().Format("2006-01-02"),
		Status:       models.StatusActive,
	}
	d.users = append(d.users, user)
	return user, nil
}

func (d *Directory) Update(id string, patch models.UserPatch) (models.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.users {
		if d.users[i].ID != id {
			continue
		}
		if patch.Email != nil && *patch.Email != d.users[i].Email {
			for _, other := range d.users {
				if other.Email == *patch.Email {
					return models.User{}, ErrDuplicateEmail
				}
			}
		}
		d.users[i].Apply(patch)
		if patch.Password != nil && *patch.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
			if err != nil {
				return models.User{}, err
			}
			d.users[i].PasswordHash = string(hash)
		}
		return d.users[i], nil
	}
	return models.User{}, ErrNotFound
}

// Delete removes the entry from the directory. An already established
// session for that user stays valid; nothing here revokes it.
func (d *Directory) Delete(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.users {
		if d.users[i].ID == id {
			d.users = append(d.users[:i], d.users[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (d *Directory) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.users)
}
