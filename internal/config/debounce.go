package config

import (
	"sync"
	"time"
)

// Debouncer collapses a burst of triggers into one call made after the
// burst has been quiet for the configured duration.
type Debouncer struct {
	d time.Duration

	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

func NewDebouncer(d time.Duration) *Debouncer {
	return &Debouncer{d: d}
}

// Trigger (re)starts the quiet period; fn runs when it ends unless another
// Trigger or Stop comes first.
func (b *Debouncer) Trigger(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.gen++
	gen := b.gen
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.d, func() {
		b.mu.Lock()
		current := gen == b.gen
		if current {
			b.timer = nil
		}
		b.mu.Unlock()
		if current {
			fn()
		}
	})
}

// Stop drops any pending call.
func (b *Debouncer) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.gen++
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}
