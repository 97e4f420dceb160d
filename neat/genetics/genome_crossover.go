package genetics

import "math/rand"

// CrossoverEdges fills child's edge set from this genome (p1) and other (p2), per
// spec.md §4.5. Every edge key of p1 is preserved in the child (Testable property
// #7): absent-from-p2 edges are copied as-is, matched edges are resolved attribute-
// by-attribute with a 50/50 coin flip. Edges present only in p2 are ignored. Edges
// are visited in ascending (u, v) order rather than raw map iteration order: each
// matched edge consumes two rng draws, so a non-deterministic visitation order would
// make the result depend on Go's randomized map order instead of only the seeded
// generator (spec.md §5).
func (g *Genome) CrossoverEdges(other *Genome, child *Genome, rng *rand.Rand) {
	for _, key := range g.allEdgeKeys() {
		e1 := g.Edges[key]
		e2, ok := other.Edges[key]
		if !ok {
			child.Edges[key] = e1.Clone()
			continue
		}
		c := &Edge{UV: key}
		if rng.Float64() > 0.5 {
			c.Weight = e1.Weight
		} else {
			c.Weight = e2.Weight
		}
		if rng.Float64() > 0.5 {
			c.Active = e1.Active
		} else {
			c.Active = e2.Active
		}
		child.Edges[key] = c
	}
}

// CrossoverNodes fills child's node set from this genome (p1) and other (p2), per
// spec.md §4.5. A node present only in p1 is copied as-is. A node present in both
// parents is resolved attribute-by-attribute with a 50/50 coin flip; if it is a
// hidden node, the resolved copy is additionally given a *new* global key (spec.md
// §9's renumbering note), since both parents always share the same output keys and
// renumbering those would strip them from the child, violating the "every output key
// has a Node" invariant (spec.md §3). Output nodes therefore always keep their
// original key; only hidden nodes are renumbered on crossover, and the child's edges
// touching a renumbered node are re-keyed onto its new key. Nodes are visited in
// ascending-key order rather than raw map iteration order, for the same
// reproducibility reason as CrossoverEdges.
func (g *Genome) CrossoverNodes(other *Genome, child *Genome, counters *Counters, rng *rand.Rand) {
	isOutput := make(map[int]bool, len(g.OutputKeys))
	for _, k := range g.OutputKeys {
		isOutput[k] = true
	}
	renamed := make(map[int]int)

	for _, key := range g.sortedNodeKeys() {
		n1 := g.Nodes[key]
		n2, ok := other.Nodes[key]
		if !ok {
			child.Nodes[key] = n1.Clone()
			continue
		}
		c := &Node{Key: key}
		if !isOutput[key] {
			c.Key = counters.NextNodeID()
			renamed[key] = c.Key
		}
		if rng.Float64() > 0.5 {
			c.Bias = n1.Bias
		} else {
			c.Bias = n2.Bias
		}
		if rng.Float64() > 0.5 {
			c.Response = n1.Response
		} else {
			c.Response = n2.Response
		}
		if rng.Float64() > 0.5 {
			c.Activation = n1.Activation
		} else {
			c.Activation = n2.Activation
		}
		if rng.Float64() > 0.5 {
			c.Aggregation = n1.Aggregation
		} else {
			c.Aggregation = n2.Aggregation
		}
		child.Nodes[c.Key] = c
	}

	for _, ek := range child.allEdgeKeys() {
		e := child.Edges[ek]
		if k, ok := renamed[ek.U]; ok {
			e.UV.U = k
		}
		if k, ok := renamed[ek.V]; ok {
			e.UV.V = k
		}
		delete(child.Edges, ek)
		child.Edges[e.UV] = e
	}
}
