package store

import (
	"context"
	"encoding/json"
	"sync"
)

const progressKey = "mylegs-progress-completed"

// Progress tracks completed topic ids. Same persistence policy as the
// binder: full re-serialization on every mutation, empty on corrupt load.
type Progress struct {
	mu        sync.Mutex
	kv        KV
	completed []string
}

func NewProgress(ctx context.Context, kv KV) *Progress {
	p := &Progress{kv: kv}
	if raw, err := kv.Get(ctx, progressKey); err == nil && raw != nil {
		var completed []string
		if json.Unmarshal(raw, &completed) == nil {
			p.completed = completed
		}
	}
	return p
}

func (p *Progress) Completed() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.completed))
	copy(out, p.completed)
	return out
}

func (p *Progress) IsCompleted(topicID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.indexOf(topicID) >= 0
}

// Toggle adds the topic id if absent and removes it if present, reporting
// whether the topic is completed afterwards.
func (p *Progress) Toggle(ctx context.Context, topicID string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if i := p.indexOf(topicID); i >= 0 {
		p.completed = append(p.completed[:i], p.completed[i+1:]...)
		return false, p.flush(ctx)
	}
	p.completed = append(p.completed, topicID)
	return true, p.flush(ctx)
}

// Percentage is the raw completed count. It has never been scaled by the
// topic total; clients of the original app depend on the unscaled value.
func (p *Progress) Percentage() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.completed)
}

func (p *Progress) indexOf(topicID string) int {
	for i, id := range p.completed {
		if id == topicID {
			return i
		}
	}
	return -1
}

func (p *Progress) flush(ctx context.Context) error {
	raw, err := json.Marshal(p.completed)
	if err != nil {
		return err
	}
	return p.kv.Put(ctx, progressKey, raw)
}
