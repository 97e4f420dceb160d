package genetics

import (
	"fmt"
	"math"
	"math/rand"

	neatmath "github.com/adipandas/goneat/neat/math"
)

// Node-property mutation parameters (spec.md §4.3, §6).
const (
	biasMutateRate       = 0.7
	biasReinitRate       = 0.1
	activationMutateRate = 0.20
	biasMutateScale      = 0.5
	biasInitScale        = 1.0
	biasClampLo          = -30.0
	biasClampHi          = 30.0

	// NodeDistCoeff scales the per-node distance contribution in genome distance.
	NodeDistCoeff = 0.5
	// NodeDisjointCoeff scales the contribution of a disjoint (unmatched) node.
	NodeDisjointCoeff = 1.0
)

// Node is a neuron: it owns a bias, a response scalar (unused in evaluation, kept
// for crossover/compatibility parity with the reference implementation), and an
// activation/aggregation selection.
type Node struct {
	Key         int
	Bias        float64
	Response    float64
	Activation  neatmath.ActivationType
	Aggregation neatmath.AggregationType
}

// NewNode creates a node with a freshly sampled bias and default response/activation/
// aggregation, as performed at genome initialisation and by the add-node mutation.
func NewNode(key int, rng *rand.Rand) *Node {
	return &Node{
		Key:         key,
		Bias:        neatmath.RandNormal(rng, 0, biasInitScale),
		Response:    1.0,
		Activation:  neatmath.SigmoidActivation,
		Aggregation: neatmath.SumAggregation,
	}
}

// Clone returns an independent copy of the node.
func (n *Node) Clone() *Node {
	c := *n
	return &c
}

// Dist computes the compatibility distance contribution between this node and other,
// per spec.md §4.3.
func (n *Node) Dist(other *Node) float64 {
	d := math.Abs(n.Bias - other.Bias)
	if n.Activation != other.Activation {
		d += 1.0
	}
	if n.Aggregation != other.Aggregation {
		d += 1.0
	}
	return NodeDistCoeff * d
}

// Mutate applies the node-property mutation operator (spec.md §4.3): bias perturbation
// or reinitialisation, and independently a chance to re-roll the activation function.
func (n *Node) Mutate(rng *rand.Rand) {
	r := rng.Float64()
	if r < biasMutateRate {
		n.Bias = neatmath.Clip(n.Bias+neatmath.RandNormal(rng, 0, biasMutateScale), biasClampLo, biasClampHi)
	} else if r < biasMutateRate+biasReinitRate {
		n.Bias = neatmath.RandNormal(rng, 0, biasInitScale)
	}

	if rng.Float64() < activationMutateRate {
		n.Activation = neatmath.RandomActivationType(rng)
	}
}

func (n *Node) String() string {
	return fmt.Sprintf("Node{key: %d, bias: %.3f, activation: %s}", n.Key, n.Bias, n.Activation)
}
