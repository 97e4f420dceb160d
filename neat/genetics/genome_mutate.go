package genetics

import "math/rand"

// Mutation trigger probabilities (spec.md §4.5, §6).
const (
	NodeAddProb = 0.3
	NodeDelProb = 0.2
	EdgeAddProb = 0.3
	EdgeDelProb = 0.2
)

// Mutate applies, in order, the six independent probabilistic mutation operators of
// spec.md §4.5: add node, delete node, add edge, delete edge, node-property mutation,
// edge-property mutation.
func (g *Genome) Mutate(counters *Counters, rng *rand.Rand) {
	g.mutateAddNode(counters, rng)
	g.mutateDelNode(rng)
	g.mutateAddEdge(rng)
	g.mutateDelEdge(rng)
	g.mutateNodeProperties(rng)
	g.mutateEdgeProperties(rng)
}

// mutateAddNode splits a randomly chosen edge in two, inserting a new node between
// its endpoints. The split edge is deactivated rather than removed, so its structural
// information survives for distance computation (spec.md §4.5 step 1).
func (g *Genome) mutateAddNode(counters *Counters, rng *rand.Rand) {
	if rng.Float64() >= NodeAddProb {
		return
	}
	if len(g.Edges) == 0 {
		return
	}

	keys := g.allEdgeKeys()
	splitKey := keys[rng.Intn(len(keys))]
	splitEdge := g.Edges[splitKey]
	splitEdge.Active = false

	newNode := NewNode(counters.NextNodeID(), rng)
	g.Nodes[newNode.Key] = newNode

	uToNew := NewEdgeWithWeight(splitKey.U, newNode.Key, 1.0)
	g.Edges[uToNew.UV] = uToNew

	newToV := NewEdgeWithWeight(newNode.Key, splitKey.V, splitEdge.Weight)
	g.Edges[newToV.UV] = newToV
}

// mutateDelNode removes a uniformly chosen non-output node along with every edge
// touching it (spec.md §4.5 step 2). Output nodes and input keys (which have no
// Node entry) are never candidates.
func (g *Genome) mutateDelNode(rng *rand.Rand) {
	if rng.Float64() >= NodeDelProb {
		return
	}

	isOutput := make(map[int]bool, len(g.OutputKeys))
	for _, k := range g.OutputKeys {
		isOutput[k] = true
	}

	candidates := make([]int, 0, len(g.Nodes))
	for _, k := range g.sortedNodeKeys() {
		if !isOutput[k] {
			candidates = append(candidates, k)
		}
	}
	if len(candidates) == 0 {
		return
	}

	delKey := candidates[rng.Intn(len(candidates))]
	for key := range g.Edges {
		if key.U == delKey || key.V == delKey {
			delete(g.Edges, key)
		}
	}
	delete(g.Nodes, delKey)
}

// mutateAddEdge inserts a fresh edge between a uniformly chosen out-node and a
// uniformly chosen in-node, unless the edge already exists, both endpoints are
// outputs, or the edge would close a cycle (spec.md §4.5 step 3).
func (g *Genome) mutateAddEdge(rng *rand.Rand) {
	if rng.Float64() >= EdgeAddProb {
		return
	}
	if len(g.Nodes) == 0 {
		return
	}

	nodeKeys := g.sortedNodeKeys()
	outNode := nodeKeys[rng.Intn(len(nodeKeys))]

	possibleInputs := make([]int, 0, len(nodeKeys)+len(g.InputKeys))
	possibleInputs = append(possibleInputs, nodeKeys...)
	possibleInputs = append(possibleInputs, g.InputKeys...)
	inNode := possibleInputs[rng.Intn(len(possibleInputs))]

	key := EdgeKey{U: inNode, V: outNode}
	if _, exists := g.Edges[key]; exists {
		return
	}

	isOutput := make(map[int]bool, len(g.OutputKeys))
	for _, k := range g.OutputKeys {
		isOutput[k] = true
	}
	if isOutput[inNode] && isOutput[outNode] {
		return
	}

	if createsCycle(g.allEdgeKeys(), inNode, outNode) {
		return
	}

	g.Edges[key] = NewEdge(inNode, outNode, rng)
}

// mutateDelEdge removes a uniformly chosen edge, if any exist (spec.md §4.5 step 4).
func (g *Genome) mutateDelEdge(rng *rand.Rand) {
	if rng.Float64() >= EdgeDelProb {
		return
	}
	if len(g.Edges) == 0 {
		return
	}
	keys := g.allEdgeKeys()
	delete(g.Edges, keys[rng.Intn(len(keys))])
}

// mutateNodeProperties runs Node.Mutate on every node in the genome (spec.md §4.5
// step 5).
func (g *Genome) mutateNodeProperties(rng *rand.Rand) {
	for _, k := range g.sortedNodeKeys() {
		g.Nodes[k].Mutate(rng)
	}
}

// mutateEdgeProperties runs Edge.Mutate on every edge in the genome (spec.md §4.5
// step 6).
func (g *Genome) mutateEdgeProperties(rng *rand.Rand) {
	for _, k := range g.allEdgeKeys() {
		g.Edges[k].Mutate(rng)
	}
}
