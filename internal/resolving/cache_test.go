package resolving

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/draft-board/internal/db"
)

func TestRunCache_LoadAndLookup(t *testing.T) {
	cache := NewRunCache()

	_, ok := cache.Candidates("QB")
	assert.False(t, ok, "unloaded position should miss")

	cache.Load([]db.Prospect{prospect("Patrick Mahomes", "QB", "Texas Tech")}, "QB")

	candidates, ok := cache.Candidates("QB")
	require.True(t, ok)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Patrick Mahomes", candidates[0].Name)
}

func TestRunCache_AddMidRun(t *testing.T) {
	cache := NewRunCache()
	cache.Load(nil, "RB", "FB")

	created := prospect("Bijan Robinson", "RB", "Texas")
	cache.Add(created)
	cache.Add(created) // idempotent

	candidates, ok := cache.Candidates("RB", "FB")
	require.True(t, ok)
	require.Len(t, candidates, 1)
	assert.Equal(t, created.ID, candidates[0].ID)
}

func TestRunCache_OverlappingGroupsDoNotDuplicate(t *testing.T) {
	cache := NewRunCache()
	edge := prospect("Micah Parsons", "EDGE", "Penn State")

	// EDGE group loads EDGE, DL, LB
	cache.Load([]db.Prospect{edge}, "EDGE", "DL", "LB")
	// A later DL group load overlaps; the EDGE bucket must not grow
	cache.Load([]db.Prospect{edge}, "DL", "EDGE")

	candidates, ok := cache.Candidates("EDGE")
	require.True(t, ok)
	assert.Len(t, candidates, 1)
}

func TestRunCache_PartialGroupMisses(t *testing.T) {
	cache := NewRunCache()
	cache.Load(nil, "EDGE")

	_, ok := cache.Candidates("EDGE", "DL", "LB")
	assert.False(t, ok, "group with an unloaded member should miss")
}
