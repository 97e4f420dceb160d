package genetics

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGenomeTopology(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g := NewGenome(1, 3, 2, rng)

	require.Len(t, g.InputKeys, 3)
	require.Len(t, g.OutputKeys, 2)
	assert.Equal(t, []int{-1, -2, -3}, g.InputKeys)
	assert.Equal(t, []int{0, 1}, g.OutputKeys)

	assert.Len(t, g.Nodes, 2)
	for _, k := range g.OutputKeys {
		assert.Contains(t, g.Nodes, k)
	}
	assert.Len(t, g.Edges, 6)
	for _, u := range g.InputKeys {
		for _, v := range g.OutputKeys {
			assert.Contains(t, g.Edges, EdgeKey{U: u, V: v})
		}
	}
}

func TestGenomeCloneIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g := NewGenome(1, 2, 1, rng)
	c := g.Clone()

	for k, n := range c.Nodes {
		n.Bias = 12345
		assert.NotEqual(t, g.Nodes[k].Bias, n.Bias)
	}
	for k, e := range c.Edges {
		e.Weight = 6789
		assert.NotEqual(t, g.Edges[k].Weight, e.Weight)
	}
}

func TestGenomeDistSelfIsZero(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g := NewGenome(1, 2, 1, rng)
	assert.Equal(t, 0.0, g.Dist(g.Clone()))
}

func TestGenomeDistSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g1 := NewGenome(1, 2, 1, rng)
	g2 := NewGenome(2, 2, 1, rng)
	assert.InDelta(t, g1.Dist(g2), g2.Dist(g1), 1e-9)
}

func TestGenomeDistGrowsWithDisjointStructure(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g1 := NewGenome(1, 2, 1, rng)
	g2 := g1.Clone()

	baseline := g1.Dist(g2)

	counters := NewCounters(DefaultMinNodeCount)
	newNode := NewNode(counters.NextNodeID(), rng)
	g2.Nodes[newNode.Key] = newNode
	e := NewEdge(g2.InputKeys[0], newNode.Key, rng)
	g2.Edges[e.UV] = e

	assert.Greater(t, g1.Dist(g2), baseline)
}

func TestActiveEdgeKeysExcludesInactive(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g := NewGenome(1, 1, 1, rng)
	var anyKey EdgeKey
	for k := range g.Edges {
		anyKey = k
	}
	g.Edges[anyKey].Active = false

	active := g.ActiveEdgeKeys()
	for _, k := range active {
		assert.NotEqual(t, anyKey, k)
	}
	assert.Len(t, active, len(g.Edges)-1)
}

func TestGenomeString(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g := NewGenome(7, 2, 1, rng)
	assert.Contains(t, g.String(), "key: 7")
}
