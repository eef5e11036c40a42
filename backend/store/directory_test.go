package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mylegs/backend/models"
)

func TestDirectoryAdd(t *testing.T) {
	d := NewDirectory(nil)

	user, err := d.Add("Sarah Ahmad", "sarah@example.com", "secret", "free", models.RoleUser)
	assert.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, models.StatusActive, user.Status)
	assert.True(t, user.CheckPassword("secret"))
	assert.False(t, user.CheckPassword("wrong"))
}

func TestDirectoryAddDuplicateEmail(t *testing.T) {
	d := NewDirectory(nil)
	d.Add("Sarah", "sarah@example.com", "secret", "free", models.RoleUser)

	_, err := d.Add("Other Sarah", "sarah@example.com", "secret2", "free", models.RoleUser)
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Equal(t, 1, d.Count())
}

func TestDirectoryUpdate(t *testing.T) {
	d := NewDirectory(nil)
	user, _ := d.Add("Sarah", "sarah@example.com", "secret", "free", models.RoleUser)

	tier := "premium"
	password := "newsecret"
	updated, err := d.Update(user.ID, models.UserPatch{TierID: &tier, Password: &password})
	assert.NoError(t, err)
	assert.Equal(t, "premium", updated.TierID)
	assert.True(t, updated.CheckPassword("newsecret"))
	assert.False(t, updated.CheckPassword("secret"))
}

func TestDirectoryUpdateDuplicateEmailRefused(t *testing.T) {
	d := NewDirectory(nil)
	d.Add("Sarah", "sarah@example.com", "secret", "free", models.RoleUser)
	other, _ := d.Add("John", "john@example.com", "secret", "free", models.RoleUser)

	email := "sarah@example.com"
	_, err := d.Update(other.ID, models.UserPatch{Email: &email})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestDirectoryDelete(t *testing.T) {
	d := NewDirectory(nil)
	user, _ := d.Add("Sarah", "sarah@example.com", "secret", "free", models.RoleUser)

	assert.NoError(t, d.Delete(user.ID))
	assert.Equal(t, 0, d.Count())
	assert.ErrorIs(t, d.Delete(user.ID), ErrNotFound)
}

func TestDirectoryLookups(t *testing.T) {
	d := NewDirectory(SeedUsers())

	admin, ok := d.FirstAdmin()
	assert.True(t, ok)
	assert.Equal(t, "admin@mylegs.app", admin.Email)

	free, ok := d.FirstByTier("free")
	assert.True(t, ok)
	assert.Equal(t, "john@gmail.com", free.Email)

	_, ok = d.FirstByTier("no-such-tier")
	assert.False(t, ok)
}
