// Package genetics implements the NEAT genotype: nodes, edges, genomes, populations,
// and speciation. The phenotype compiler that turns a Genome into an evaluator lives
// in the sibling neat/network package.
package genetics

import (
	"fmt"
	"math/rand"
	"sort"
)

// Genome is a DAG of nodes and edges with fixed input/output key sets (spec.md §3).
// Input keys are the negative integers -1..-|I| and never have a Node entry; output
// keys are 0..|O|-1 and always have one.
type Genome struct {
	Key        int
	InputKeys  []int
	OutputKeys []int
	Nodes      map[int]*Node
	Edges      map[EdgeKey]*Edge
}

// NewGenome builds a genome with the initial topology from spec.md §4.5: one Node per
// output key, and a fully-connected input->output edge set with random weights.
func NewGenome(key, inputSize, outputSize int, rng *rand.Rand) *Genome {
	inputKeys := make([]int, inputSize)
	for i := 0; i < inputSize; i++ {
		inputKeys[i] = -(i + 1)
	}
	outputKeys := make([]int, outputSize)
	for i := 0; i < outputSize; i++ {
		outputKeys[i] = i
	}

	g := &Genome{
		Key:        key,
		InputKeys:  inputKeys,
		OutputKeys: outputKeys,
		Nodes:      make(map[int]*Node, outputSize),
		Edges:      make(map[EdgeKey]*Edge, inputSize*outputSize),
	}

	for _, k := range outputKeys {
		g.Nodes[k] = NewNode(k, rng)
	}
	for _, u := range inputKeys {
		for _, v := range outputKeys {
			e := NewEdge(u, v, rng)
			g.Edges[e.UV] = e
		}
	}
	return g
}

// Clone returns a deep copy of the genome: every Node and Edge is independently
// owned by the returned genome (spec.md §3 ownership note).
func (g *Genome) Clone() *Genome {
	c := &Genome{
		Key:        g.Key,
		InputKeys:  append([]int(nil), g.InputKeys...),
		OutputKeys: append([]int(nil), g.OutputKeys...),
		Nodes:      make(map[int]*Node, len(g.Nodes)),
		Edges:      make(map[EdgeKey]*Edge, len(g.Edges)),
	}
	for k, n := range g.Nodes {
		c.Nodes[k] = n.Clone()
	}
	for k, e := range g.Edges {
		c.Edges[k] = e.Clone()
	}
	return c
}

// Dist returns the compatibility distance between this genome and other, per
// spec.md §4.5: the sum of the node distance and the edge distance.
func (g *Genome) Dist(other *Genome) float64 {
	return g.nodesDist(other) + g.edgesDist(other)
}

func (g *Genome) nodesDist(other *Genome) float64 {
	if len(g.Nodes) == 0 && len(other.Nodes) == 0 {
		return 0
	}

	disjoint := 0
	matched := 0.0
	for k2 := range other.Nodes {
		if _, ok := g.Nodes[k2]; !ok {
			disjoint++
		}
	}
	for k1, n1 := range g.Nodes {
		if n2, ok := other.Nodes[k1]; !ok {
			disjoint++
		} else {
			matched += n1.Dist(n2)
		}
	}

	maxNodes := len(g.Nodes)
	if len(other.Nodes) > maxNodes {
		maxNodes = len(other.Nodes)
	}
	return (matched + NodeDisjointCoeff*float64(disjoint)) / float64(maxNodes)
}

func (g *Genome) edgesDist(other *Genome) float64 {
	if len(g.Edges) == 0 && len(other.Edges) == 0 {
		return 0
	}

	disjoint := 0
	matched := 0.0
	for k2 := range other.Edges {
		if _, ok := g.Edges[k2]; !ok {
			disjoint++
		}
	}
	for k1, e1 := range g.Edges {
		if e2, ok := other.Edges[k1]; !ok {
			disjoint++
		} else {
			matched += e1.Dist(e2)
		}
	}

	maxEdges := len(g.Edges)
	if len(other.Edges) > maxEdges {
		maxEdges = len(other.Edges)
	}
	return (matched + EdgeDisjointCoeff*float64(disjoint)) / float64(maxEdges)
}

// ActiveEdgeKeys returns the (u, v) keys of every active edge, in ascending (u, v)
// order, used by the phenotype compiler.
func (g *Genome) ActiveEdgeKeys() []EdgeKey {
	keys := make([]EdgeKey, 0, len(g.Edges))
	for k, e := range g.Edges {
		if e.Active {
			keys = append(keys, k)
		}
	}
	sortEdgeKeys(keys)
	return keys
}

// allEdgeKeys returns every edge key, active or not, in ascending (u, v) order. Used
// by the add-edge cycle guard and by every mutation/crossover operator that picks an
// edge uniformly at random or sequentially consumes one rng draw per edge: returning
// keys in raw map iteration order would make those draws depend on Go's randomized
// map order instead of only on the seeded generator, breaking the run-reproducibility
// spec.md §5 requires for a given seed.
func (g *Genome) allEdgeKeys() []EdgeKey {
	keys := make([]EdgeKey, 0, len(g.Edges))
	for k := range g.Edges {
		keys = append(keys, k)
	}
	sortEdgeKeys(keys)
	return keys
}

func sortEdgeKeys(keys []EdgeKey) {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].U != keys[j].U {
			return keys[i].U < keys[j].U
		}
		return keys[i].V < keys[j].V
	})
}

// sortedNodeKeys returns every node key in ascending order, for the same
// reproducibility reason as allEdgeKeys: any rng-driven or sequential traversal of
// the node set must not depend on map iteration order.
func (g *Genome) sortedNodeKeys() []int {
	keys := make([]int, 0, len(g.Nodes))
	for k := range g.Nodes {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func (g *Genome) String() string {
	return fmt.Sprintf("Genome{key: %d, nodes: %d, edges: %d}", g.Key, len(g.Nodes), len(g.Edges))
}
