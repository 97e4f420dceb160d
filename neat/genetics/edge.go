package genetics

import (
	"fmt"
	"math"
	"math/rand"

	neatmath "github.com/adipandas/goneat/neat/math"
)

// Edge-property mutation parameters (spec.md §4.2, §6).
const (
	weightMutateRate = 0.8
	weightReinitRate = 0.1
	activeMutateRate = 0.01
	weightMutateScale = 0.5
	weightInitScale   = 1.0
	weightClampLo     = -30.0
	weightClampHi     = 30.0

	// EdgeDistCoeff scales the per-edge distance contribution in genome distance.
	EdgeDistCoeff = 0.5
	// EdgeDisjointCoeff scales the contribution of a disjoint (unmatched) edge.
	EdgeDisjointCoeff = 1.0
)

// EdgeKey identifies an edge by its ordered pair of endpoint keys. It also serves as
// the only identity an Edge has within a Genome: a genome holds at most one Edge per
// ordered pair.
type EdgeKey struct {
	U, V int
}

// Edge is a directed, weighted connection between two node keys. It can be inactive,
// in which case it is excluded from phenotype evaluation but still participates in
// distance and cycle-detection computations (spec.md §9).
type Edge struct {
	UV     EdgeKey
	Weight float64
	Active bool
}

// NewEdge creates an edge from u to v with a freshly sampled weight.
func NewEdge(u, v int, rng *rand.Rand) *Edge {
	return &Edge{
		UV:     EdgeKey{U: u, V: v},
		Weight: neatmath.RandNormal(rng, 0, weightInitScale),
		Active: true,
	}
}

// NewEdgeWithWeight creates an edge from u to v with an explicit weight, active by
// default. Used by the add-node mutation, which must preserve the split edge's weight.
func NewEdgeWithWeight(u, v int, weight float64) *Edge {
	return &Edge{UV: EdgeKey{U: u, V: v}, Weight: weight, Active: true}
}

// Clone returns an independent copy of the edge.
func (e *Edge) Clone() *Edge {
	c := *e
	return &c
}

// Dist computes the compatibility distance contribution between this edge and other,
// per spec.md §4.2.
func (e *Edge) Dist(other *Edge) float64 {
	d := math.Abs(e.Weight - other.Weight)
	if e.Active != other.Active {
		d += 1.0
	}
	return EdgeDistCoeff * d
}

// Mutate applies the edge-property mutation operator (spec.md §4.2): weight
// perturbation or reinitialisation, and independently a chance to flip the active
// flag.
func (e *Edge) Mutate(rng *rand.Rand) {
	r := rng.Float64()
	if r < weightMutateRate {
		e.Weight = neatmath.Clip(e.Weight+neatmath.RandNormal(rng, 0, weightMutateScale), weightClampLo, weightClampHi)
	} else if r < weightMutateRate+weightReinitRate {
		e.Weight = neatmath.RandNormal(rng, 0, weightInitScale)
	}

	if rng.Float64() < activeMutateRate {
		e.Active = rng.Float64() < 0.5
	}
}

func (e *Edge) String() string {
	activeStr := "active"
	if !e.Active {
		activeStr = "inactive"
	}
	return fmt.Sprintf("Edge{(%d->%d), weight: %.3f, %s}", e.UV.U, e.UV.V, e.Weight, activeStr)
}
