// Package tips provides the rotating security-tip banner. Purely cosmetic:
// nothing here touches the store.
package tips

import (
	"context"
	"sync"
	"time"
)

var tips = []string{
	"Use a different password for each important website.",
	"Never share your password with anyone — even friends.",
	"Enable two-factor authentication whenever it is available.",
	"Always check the URL before entering login information.",
	"Avoid clicking on suspicious links in emails or messages.",
}

// Rotator cycles through the tip list. Current and Advance are safe for
// concurrent use, so the ticker goroutine and the REPL can share one value.
type Rotator struct {
	mu  sync.Mutex
	idx int
}

func NewRotator() *Rotator {
	return &Rotator{}
}

// Current returns the tip currently on display.
func (r *Rotator) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return tips[r.idx]
}

// Advance moves to the next tip, wrapping around, and returns it.
func (r *Rotator) Advance() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.idx = (r.idx + 1) % len(tips)
	return tips[r.idx]
}

// Start advances the rotator on the given interval until ctx is cancelled.
func (r *Rotator) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.Advance()
		case <-ctx.Done():
			return
		}
	}
}
