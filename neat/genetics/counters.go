package genetics

// Counters holds the monotonic id generators a run needs: hidden-node keys, genome
// ids, and species ids. Spec.md §9 calls for these to be encapsulated behind a value
// owned by the run rather than true package globals, so that independent runs (and
// tests) never share state.
type Counters struct {
	nextNodeID    int
	nextGenomeID  int
	nextSpeciesID int
}

// NewCounters creates a Counters value whose hidden-node ids start at minNodeCount,
// per spec.md §3 ("node keys for newly created hidden nodes are drawn from a global
// monotonic counter starting at a configured minimum").
func NewCounters(minNodeCount int) *Counters {
	return &Counters{
		nextNodeID:    minNodeCount,
		nextGenomeID:  1,
		nextSpeciesID: 1,
	}
}

// NextNodeID returns the next monotonic hidden-node key.
func (c *Counters) NextNodeID() int {
	id := c.nextNodeID
	c.nextNodeID++
	return id
}

// NextGenomeID returns the next monotonic genome id.
func (c *Counters) NextGenomeID() int {
	id := c.nextGenomeID
	c.nextGenomeID++
	return id
}

// NextSpeciesID returns the next monotonic species (partition) id.
func (c *Counters) NextSpeciesID() int {
	id := c.nextSpeciesID
	c.nextSpeciesID++
	return id
}
