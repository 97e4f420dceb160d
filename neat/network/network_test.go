package network

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adipandas/goneat/neat/genetics"
	neatmath "github.com/adipandas/goneat/neat/math"
)

func TestCompileForwardMatchesInputOutputSizes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g := genetics.NewGenome(1, 3, 2, rng)
	nn := Compile(g)

	assert.Equal(t, 3, nn.InputSize())
	assert.Equal(t, 2, nn.OutputSize())

	out, err := nn.Forward([]float64{0.1, 0.2, 0.3})
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestForwardRejectsWrongInputSize(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g := genetics.NewGenome(1, 2, 1, rng)
	nn := Compile(g)

	_, err := nn.Forward([]float64{1})
	assert.Error(t, err)
}

func TestForwardIsDeterministicForFixedGenome(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g := genetics.NewGenome(1, 2, 1, rng)
	nn := Compile(g)

	out1, err := nn.Forward([]float64{0.5, -0.2})
	require.NoError(t, err)
	out2, err := nn.Forward([]float64{0.5, -0.2})
	require.NoError(t, err)
	assert.Equal(t, out1, out2)
}

func TestUnreachableOutputEvaluatesToActivationOfBias(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	n := genetics.NewNode(0, rng)
	g := &genetics.Genome{
		Key:        1,
		InputKeys:  []int{-1},
		OutputKeys: []int{0},
		Nodes:      map[int]*genetics.Node{0: n},
		Edges:      map[genetics.EdgeKey]*genetics.Edge{},
	}
	nn := Compile(g)

	out, err := nn.Forward([]float64{1.0})
	require.NoError(t, err)
	require.Len(t, out, 1)

	expected := neatmath.Activate(n.Activation, n.Bias)
	assert.InDelta(t, expected, out[0], 1e-12)
}

func TestCompileHandlesHiddenNodeChain(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	hidden := genetics.NewNode(10, rng)
	out := genetics.NewNode(0, rng)
	g := &genetics.Genome{
		Key:        1,
		InputKeys:  []int{-1},
		OutputKeys: []int{0},
		Nodes: map[int]*genetics.Node{
			10: hidden,
			0:  out,
		},
		Edges: map[genetics.EdgeKey]*genetics.Edge{
			{U: -1, V: 10}: genetics.NewEdgeWithWeight(-1, 10, 1.0),
			{U: 10, V: 0}:  genetics.NewEdgeWithWeight(10, 0, 1.0),
		},
	}
	nn := Compile(g)
	result, err := nn.Forward([]float64{2.0})
	require.NoError(t, err)
	require.Len(t, result, 1)

	expected := neatmath.Activate(out.Activation, out.Bias+neatmath.Activate(hidden.Activation, hidden.Bias+2.0))
	assert.InDelta(t, expected, result[0], 1e-9)
}
