package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"mylegs/backend/models"
)

const (
	bookmarksKey = "mylegs-binder-bookmarks"
	foldersKey   = "mylegs-binder-folders"

	// FreeBookmarkLimit caps the binder for users on the free tier.
	FreeBookmarkLimit = 3
)

// Binder is the personal library: a flat bookmark list plus optional
// folders. Both collections are flushed to storage in full on every
// mutation; the last write wins.
type Binder struct {
	mu        sync.Mutex
	kv        KV
	bookmarks []models.BookmarkItem
	folders   []models.Folder
	now       func() time.Time
}

func NewBinder(ctx context.Context, kv KV) *Binder {
	b := &Binder{kv: kv, now: time.Now}
	b.load(ctx)
	return b
}

// load reads both blobs. Missing keys (first run) and malformed content
// (corrupted write) both come up as empty collections.
func (b *Binder) load(ctx context.Context) {
	if raw, err := b.kv.Get(ctx, bookmarksKey); err == nil && raw != nil {
		var bookmarks []models.BookmarkItem
		if json.Unmarshal(raw, &bookmarks) == nil {
			b.bookmarks = bookmarks
		}
	}
	if raw, err := b.kv.Get(ctx, foldersKey); err == nil && raw != nil {
		var folders []models.Folder
		if json.Unmarshal(raw, &folders) == nil {
			b.folders = folders
		}
	}
}

func (b *Binder) flush(ctx context.Context) error {
	bookmarks, err := json.Marshal(b.bookmarks)
	if err != nil {
		return err
	}
	folders, err := json.Marshal(b.folders)
	if err != nil {
		return err
	}
	if err := b.kv.Put(ctx, bookmarksKey, bookmarks); err != nil {
		return err
	}
	return b.kv.Put(ctx, foldersKey, folders)
}

func (b *Binder) Bookmarks() []models.BookmarkItem {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]models.BookmarkItem, len(b.bookmarks))
	copy(out, b.bookmarks)
	return out
}

func (b *Binder) Folders() []models.Folder {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]models.Folder, len(b.folders))
	copy(out, b.folders)
	return out
}

func (b *Binder) IsBookmarked(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.indexOf(id) >= 0
}

func (b *Binder) indexOf(id string) int {
	for i, item := range b.bookmarks {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Toggle removes an existing bookmark unconditionally, or prepends a new
// one stamped with the current time. Adding past the free-tier limit
// returns ErrUpgradeRequired without touching state; a tier that does not
// resolve at all is treated as free.
func (b *Binder) Toggle(ctx context.Context, item models.BookmarkItem, tier *models.SubscriptionTier) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if i := b.indexOf(item.ID); i >= 0 {
		b.bookmarks = append(b.bookmarks[:i], b.bookmarks[i+1:]...)
		return false, b.flush(ctx)
	}

	if limitedTier(tier) && len(b.bookmarks) >= FreeBookmarkLimit {
		return false, ErrUpgradeRequired
	}

	item.DateAdded = b.now().UnixMilli()
	b.bookmarks = append([]models.BookmarkItem{item}, b.bookmarks...)
	return true, b.flush(ctx)
}

// CreateFolder is a paid feature; the free tier gets the upgrade signal.
func (b *Binder) CreateFolder(ctx context.Context, name string, tier *models.SubscriptionTier) (models.Folder, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if limitedTier(tier) {
		return models.Folder{}, ErrUpgradeRequired
	}

	folder := models.Folder{
		ID:    "folder-" + uuid.NewString(),
		Name:  name,
		Items: []string{},
	}
	b.folders = append(b.folders, folder)
	return folder, b.flush(ctx)
}

// DeleteFolder removes the folder only. Bookmarks it referenced stay in
// the flat list, and other folders keep their member ids as-is.
func (b *Binder) DeleteFolder(ctx context.Context, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.folders {
		if b.folders[i].ID == id {
			b.folders = append(b.folders[:i], b.folders[i+1:]...)
			return b.flush(ctx)
		}
	}
	return ErrNotFound
}

// limitedTier marks tiers under the free binder restrictions: the default
// (free) tier, or no resolvable tier at all.
func limitedTier(tier *models.SubscriptionTier) bool {
	return tier == nil || tier.IsDefault
}
