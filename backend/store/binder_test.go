package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"mylegs/backend/models"
)

var (
	freeTier    = &models.SubscriptionTier{ID: "free", ModuleLimit: 3, IsDefault: true}
	premiumTier = &models.SubscriptionTier{ID: "premium", ModuleLimit: models.UnlimitedModules}
)

func newTestBinder(t *testing.T) (*Binder, KV) {
	t.Helper()
	kv := NewMemoryKV()
	return NewBinder(context.Background(), kv), kv
}

func bookmark(id string) models.BookmarkItem {
	return models.BookmarkItem{ID: id, Type: models.BookmarkStatute, Title: "Item " + id}
}

func TestToggleAddsAndRemoves(t *testing.T) {
	b, _ := newTestBinder(t)
	ctx := context.Background()

	added, err := b.Toggle(ctx, bookmark("s1"), premiumTier)
	assert.NoError(t, err)
	assert.True(t, added)
	assert.True(t, b.IsBookmarked("s1"))

	added, err = b.Toggle(ctx, bookmark("s1"), premiumTier)
	assert.NoError(t, err)
	assert.False(t, added)
	assert.False(t, b.IsBookmarked("s1"))
	assert.Empty(t, b.Bookmarks())
}

func TestToggleNewestFirst(t *testing.T) {
	b, _ := newTestBinder(t)
	ctx := context.Background()

	b.Toggle(ctx, bookmark("s1"), premiumTier)
	b.Toggle(ctx, bookmark("s2"), premiumTier)
	b.Toggle(ctx, bookmark("s3"), premiumTier)

	items := b.Bookmarks()
	assert.Equal(t, []string{"s3", "s2", "s1"}, []string{items[0].ID, items[1].ID, items[2].ID})
}

func TestToggleStampsDateAdded(t *testing.T) {
	b, _ := newTestBinder(t)
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return fixed }

	b.Toggle(context.Background(), bookmark("s1"), premiumTier)

	assert.Equal(t, fixed.UnixMilli(), b.Bookmarks()[0].DateAdded)
}

func TestFreeTierQuota(t *testing.T) {
	b, _ := newTestBinder(t)
	ctx := context.Background()

	for _, id := range []string{"s1", "s2", "s3"} {
		added, err := b.Toggle(ctx, bookmark(id), freeTier)
		assert.NoError(t, err)
		assert.True(t, added)
	}

	// The fourth add is refused and state is untouched.
	added, err := b.Toggle(ctx, bookmark("s4"), freeTier)
	assert.ErrorIs(t, err, ErrUpgradeRequired)
	assert.False(t, added)
	assert.Len(t, b.Bookmarks(), 3)

	// Removal at the limit always works.
	_, err = b.Toggle(ctx, bookmark("s1"), freeTier)
	assert.NoError(t, err)
	assert.Len(t, b.Bookmarks(), 2)
}

func TestNilTierTreatedAsFree(t *testing.T) {
	b, _ := newTestBinder(t)
	ctx := context.Background()

	for _, id := range []string{"s1", "s2", "s3"} {
		b.Toggle(ctx, bookmark(id), nil)
	}

	_, err := b.Toggle(ctx, bookmark("s4"), nil)
	assert.ErrorIs(t, err, ErrUpgradeRequired)
}

func TestPremiumTierUnlimited(t *testing.T) {
	b, _ := newTestBinder(t)
	ctx := context.Background()

	for _, id := range []string{"s1", "s2", "s3", "s4", "s5"} {
		added, err := b.Toggle(ctx, bookmark(id), premiumTier)
		assert.NoError(t, err)
		assert.True(t, added)
	}
	assert.Len(t, b.Bookmarks(), 5)
}

func TestBinderPersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	b := NewBinder(ctx, kv)
	b.Toggle(ctx, bookmark("s1"), premiumTier)
	b.Toggle(ctx, bookmark("s2"), premiumTier)
	folder, err := b.CreateFolder(ctx, "Constitutional Law", premiumTier)
	assert.NoError(t, err)

	// A fresh binder over the same storage sees the same state.
	reloaded := NewBinder(ctx, kv)
	items := reloaded.Bookmarks()
	assert.Len(t, items, 2)
	assert.Equal(t, "s2", items[0].ID)
	assert.Equal(t, "s1", items[1].ID)

	folders := reloaded.Folders()
	assert.Len(t, folders, 1)
	assert.Equal(t, folder.ID, folders[0].ID)
	assert.Equal(t, "Constitutional Law", folders[0].Name)
}

func TestBinderCorruptBlobStartsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	kv.Put(ctx, bookmarksKey, []byte("{not json"))
	kv.Put(ctx, foldersKey, []byte("also not json"))

	b := NewBinder(ctx, kv)
	assert.Empty(t, b.Bookmarks())
	assert.Empty(t, b.Folders())

	// The binder stays writable after a corrupt load.
	added, err := b.Toggle(ctx, bookmark("s1"), premiumTier)
	assert.NoError(t, err)
	assert.True(t, added)
}

func TestCreateFolderFreeTierRefused(t *testing.T) {
	b, _ := newTestBinder(t)

	_, err := b.CreateFolder(context.Background(), "My Notes", freeTier)
	assert.ErrorIs(t, err, ErrUpgradeRequired)
	assert.Empty(t, b.Folders())
}

func TestDeleteFolderKeepsBookmarks(t *testing.T) {
	b, _ := newTestBinder(t)
	ctx := context.Background()

	b.Toggle(ctx, bookmark("s1"), premiumTier)
	folder, _ := b.CreateFolder(ctx, "Cases", premiumTier)

	assert.NoError(t, b.DeleteFolder(ctx, folder.ID))
	assert.Empty(t, b.Folders())
	assert.True(t, b.IsBookmarked("s1"))
}

func TestDeleteFolderMissing(t *testing.T) {
	b, _ := newTestBinder(t)

	err := b.DeleteFolder(context.Background(), "folder-missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
