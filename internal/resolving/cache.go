package resolving

import (
	"sync"

	"github.com/jonathan/draft-board/internal/db"
)

// RunCache is the per-run index of canonical prospects, loaded lazily per
// position group and extended as new prospects are created mid-run. It exists
// so the resolver stays pure: all run state is explicit and passed through.
type RunCache struct {
	mu         sync.Mutex
	byPosition map[string][]db.Prospect
	loaded     map[string]bool
}

// NewRunCache creates an empty per-run cache.
func NewRunCache() *RunCache {
	return &RunCache{
		byPosition: make(map[string][]db.Prospect),
		loaded:     make(map[string]bool),
	}
}

// Candidates returns the cached prospects for the given positions. The bool
// is false when any requested position has not been loaded yet.
func (c *RunCache) Candidates(positions ...string) ([]db.Prospect, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []db.Prospect
	for _, pos := range positions {
		if !c.loaded[pos] {
			return nil, false
		}
		out = append(out, c.byPosition[pos]...)
	}
	return out, true
}

// Load records the canonical set for one position group. Positions already
// loaded keep their existing entries so overlapping groups don't duplicate.
func (c *RunCache) Load(prospects []db.Prospect, positions ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fresh := make(map[string]bool)
	for _, pos := range positions {
		if !c.loaded[pos] {
			c.loaded[pos] = true
			fresh[pos] = true
		}
	}
	for _, p := range prospects {
		if fresh[p.Position] {
			c.byPosition[p.Position] = append(c.byPosition[p.Position], p)
		}
	}
}

// Add makes a prospect created mid-run visible to later records without a
// canonical-set reload.
func (c *RunCache) Add(p db.Prospect) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.byPosition[p.Position] {
		if existing.ID == p.ID {
			return
		}
	}
	c.byPosition[p.Position] = append(c.byPosition[p.Position], p)
}
