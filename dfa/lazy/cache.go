package lazy

import (
	"sync"

	"github.com/coregx/regexfa/internal/conv"
)

// Cache holds the determinized states of one DFA with bounded memory.
//
// States are looked up by StateKey (the exact NFA state set) during
// determinization and by StateID while following transitions. States are
// never evicted one at a time: a full cache is cleared as a whole and rebuilt
// on demand.
//
// All methods are safe for concurrent access.
type Cache struct {
	mu sync.RWMutex

	states map[StateKey]*State
	byID   []*State

	maxStates uint32

	// clearCount counts clears since the last ResetClearCount, so a search
	// can detect thrashing and give up.
	clearCount int

	hits   uint64
	misses uint64
}

// NewCache creates a new state cache with the given maximum capacity
func NewCache(maxStates uint32) *Cache {
	return &Cache{
		states:    make(map[StateKey]*State),
		maxStates: maxStates,
	}
}

// Get retrieves a state by its key.
func (c *Cache) Get(key StateKey) (*State, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.states[key]
	if ok {
		c.hits++
	}
	return s, ok
}

// State returns the state with the given ID, or nil.
func (c *Cache) State(id StateID) *State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if int(id) >= len(c.byID) {
		return nil
	}
	return c.byID[id]
}

// Insert adds state under key, assigns it the next ID and returns that ID.
// If key is already present the existing state's ID is returned. Returns
// ErrCacheFull when the cache is at capacity.
func (c *Cache) Insert(key StateKey, state *State) (StateID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.states[key]; ok {
		c.hits++
		return existing.id, nil
	}
	c.misses++
	if conv.IntToUint32(len(c.states)) >= c.maxStates {
		return InvalidState, ErrCacheFull
	}

	state.id = StateID(conv.IntToUint32(len(c.byID)))
	c.states[key] = state
	c.byID = append(c.byID, state)
	return state.id, nil
}

// Size returns the current number of states in the cache
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.states)
}

// IsFull returns true if the cache has reached its maximum capacity
func (c *Cache) IsFull() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return conv.IntToUint32(len(c.states)) >= c.maxStates
}

// Stats returns (hits, misses, hitRate) where hitRate = hits / (hits + misses).
func (c *Cache) Stats() (hits, misses uint64, hitRate float64) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	hits, misses = c.hits, c.misses
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}
	return hits, misses, hitRate
}

// ResetStats resets hit/miss counters
func (c *Cache) ResetStats() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hits, c.misses = 0, 0
}

// Clear removes all states and resets statistics and the clear counter.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.states)
	c.byID = c.byID[:0]
	c.clearCount = 0
	c.hits, c.misses = 0, 0
}

// ClearKeepMemory removes all states but keeps allocated storage and
// statistics, and counts the clear. Every *State obtained earlier is stale
// afterwards; IDs restart at StartState.
func (c *Cache) ClearKeepMemory() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.states)
	clear(c.byID)
	c.byID = c.byID[:0]
	c.clearCount++
}

// ClearCount returns how many times the cache has been cleared since the
// last ResetClearCount.
func (c *Cache) ClearCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.clearCount
}

// ResetClearCount resets the clear counter. Called at the start of each
// search so every search gets the full clear budget.
func (c *Cache) ResetClearCount() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clearCount = 0
}
