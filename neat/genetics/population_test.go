package genetics

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialPopulationSize(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	counters := NewCounters(DefaultMinNodeCount)
	pop, err := InitialPopulation(20, 3, 2, DefaultMinNodeCount, counters, rng)
	require.NoError(t, err)
	assert.Len(t, pop.Genomes, 20)
	assert.Len(t, pop.Ancestors, 20)
	for gid := range pop.Genomes {
		a := pop.Ancestors[gid]
		assert.False(t, a.HasParents)
	}
}

func TestInitialPopulationRejectsOutputCollidingWithNodeCounter(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	counters := NewCounters(5)
	_, err := InitialPopulation(10, 2, 5, 5, counters, rng)
	assert.Error(t, err)
}

func TestInitialPopulationUniqueIDs(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	counters := NewCounters(DefaultMinNodeCount)
	pop, err := InitialPopulation(50, 2, 1, DefaultMinNodeCount, counters, rng)
	require.NoError(t, err)
	seen := make(map[int]bool)
	for gid := range pop.Genomes {
		assert.False(t, seen[gid])
		seen[gid] = true
	}
}

func TestNewChildRecordedAncestry(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	counters := NewCounters(DefaultMinNodeCount)
	pop, err := InitialPopulation(2, 2, 1, DefaultMinNodeCount, counters, rng)
	require.NoError(t, err)

	var ids []int
	for gid := range pop.Genomes {
		ids = append(ids, gid)
	}
	p1, p2 := pop.Genomes[ids[0]], pop.Genomes[ids[1]]
	child := NewChild(p1, p2, 0.5, 0.4, counters, rng)
	pop.Genomes[child.Key] = child
	pop.Ancestors[child.Key] = Ancestry{HasParents: true, P1: p1.Key, P2: p2.Key}

	assert.True(t, pop.Ancestors[child.Key].HasParents)
	assert.Equal(t, p1.Key, pop.Ancestors[child.Key].P1)
}

func TestPopulationPartitionAllGenomesAssigned(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	counters := NewCounters(DefaultMinNodeCount)
	pop, err := InitialPopulation(10, 2, 1, DefaultMinNodeCount, counters, rng)
	require.NoError(t, err)

	prev := NewPartitions()
	next := pop.Partition(prev, DefaultCompatibilityThreshold, counters)

	assigned := 0
	for _, p := range next.ByID {
		assigned += len(p.Members)
	}
	assert.Equal(t, len(pop.Genomes), assigned)
}

func TestPopulationPartitionKeepsRepresentativeSpeciesID(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	counters := NewCounters(DefaultMinNodeCount)
	pop, err := InitialPopulation(5, 2, 1, DefaultMinNodeCount, counters, rng)
	require.NoError(t, err)

	first := pop.Partition(NewPartitions(), DefaultCompatibilityThreshold, counters)
	second := pop.Partition(first, DefaultCompatibilityThreshold, counters)

	for pid := range first.ByID {
		assert.Contains(t, second.ByID, pid)
	}
}
