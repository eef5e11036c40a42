package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"mylegs/backend/models"
)

const activityCap = 100

// ActivityLog keeps a bounded, newest-first feed of logins and admin
// mutations for the back-office activities page.
type ActivityLog struct {
	mu      sync.Mutex
	entries []models.Activity
}

func NewActivityLog() *ActivityLog {
	return &ActivityLog{}
}

func (l *ActivityLog) Record(kind, actor, detail string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := models.Activity{
		ID:     uuid.NewString(),
		Type:   kind,
		Actor:  actor,
		Detail: detail,
		At:     time.Now(),
	}
	l.entries = append([]models.Activity{entry}, l.entries...)
	if len(l.entries) > activityCap {
		l.entries = l.entries[:activityCap]
	}
}

func (l *ActivityLog) Entries() []models.Activity {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.Activity, len(l.entries))
	copy(out, l.entries)
	return out
}
