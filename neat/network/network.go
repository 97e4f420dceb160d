// Package network compiles a genetics.Genome into a NeuralNetwork: an ordered,
// layered evaluator that performs a single-shot forward pass over an input vector
// (spec.md §4.6).
package network

import (
	"github.com/pkg/errors"

	"github.com/adipandas/goneat/neat/genetics"
	neatmath "github.com/adipandas/goneat/neat/math"
)

// incomingSignal is one (source node id, edge weight) pair feeding an evalNode.
type incomingSignal struct {
	from   int
	weight float64
}

// evalNode is one node's compiled evaluation record: its activation and aggregation
// functions, its bias, and its ordered incoming connections.
type evalNode struct {
	nodeID      int
	activation  neatmath.ActivationType
	aggregation neatmath.AggregationType
	bias        float64
	incoming    []incomingSignal
}

// NeuralNetwork is the phenotype compiled from a Genome: a fixed input/output key
// set plus an ordered list of evalNodes that a Forward pass evaluates in sequence.
type NeuralNetwork struct {
	inputKeys  []int
	outputKeys []int
	evalNodes  []evalNode
}

// Compile converts a genome into a NeuralNetwork by computing the required-node set,
// the forward topological layering, and the per-node incoming-edge lists (spec.md
// §4.6 steps 1-4).
func Compile(g *genetics.Genome) *NeuralNetwork {
	activeEdges := g.ActiveEdgeKeys()

	required := requiredNodes(activeEdges, g.InputKeys, g.OutputKeys)
	layers := computeLayers(required, activeEdges, g.InputKeys)

	nn := &NeuralNetwork{
		inputKeys:  append([]int(nil), g.InputKeys...),
		outputKeys: append([]int(nil), g.OutputKeys...),
	}

	// Output nodes that never enter a layer (no reachable predecessor) are appended
	// last so that Forward still evaluates them to activation(bias).
	placed := make(map[int]bool)
	for _, layer := range layers {
		for _, nodeID := range layer {
			placed[nodeID] = true
		}
	}
	var unplaced []int
	for _, k := range g.OutputKeys {
		if !placed[k] {
			unplaced = append(unplaced, k)
		}
	}
	layers = append(layers, unplaced)

	for _, layer := range layers {
		for _, nodeID := range layer {
			var incoming []incomingSignal
			for _, uv := range activeEdges {
				if uv.V == nodeID {
					incoming = append(incoming, incomingSignal{from: uv.U, weight: g.Edges[uv].Weight})
				}
			}
			node := g.Nodes[nodeID]
			nn.evalNodes = append(nn.evalNodes, evalNode{
				nodeID:      nodeID,
				activation:  node.Activation,
				aggregation: node.Aggregation,
				bias:        node.Bias,
				incoming:    incoming,
			})
		}
	}

	return nn
}

// requiredNodes identifies the non-input nodes that can influence an output via
// active edges, working backward from the outputs (spec.md §4.6 step 2).
func requiredNodes(edges []genetics.EdgeKey, inputKeys, outputKeys []int) map[int]bool {
	required := make(map[int]bool, len(outputKeys))
	seen := make(map[int]bool, len(outputKeys))
	for _, k := range outputKeys {
		required[k] = true
		seen[k] = true
	}
	isInput := make(map[int]bool, len(inputKeys))
	for _, k := range inputKeys {
		isInput[k] = true
	}

	for {
		layer := make(map[int]bool)
		for _, e := range edges {
			if seen[e.V] && !seen[e.U] {
				layer[e.U] = true
			}
		}
		if len(layer) == 0 {
			break
		}

		hiddenLayer := make(map[int]bool)
		for u := range layer {
			if !isInput[u] {
				hiddenLayer[u] = true
			}
		}
		if len(hiddenLayer) == 0 {
			break
		}

		for u := range hiddenLayer {
			required[u] = true
		}
		for v := range layer {
			seen[v] = true
		}
	}

	return required
}

// computeLayers produces the forward topological layering: a node enters a layer
// only once all of its active incoming sources are already evaluated (spec.md §4.6
// step 3). Because the genome forbids cycles among active edges, this terminates.
func computeLayers(required map[int]bool, edges []genetics.EdgeKey, inputKeys []int) [][]int {
	seen := make(map[int]bool, len(inputKeys))
	for _, k := range inputKeys {
		seen[k] = true
	}

	incomingOf := make(map[int][]int)
	for _, e := range edges {
		incomingOf[e.V] = append(incomingOf[e.V], e.U)
	}

	var layers [][]int
	for {
		candidates := make(map[int]bool)
		for _, e := range edges {
			if seen[e.U] && !seen[e.V] {
				candidates[e.V] = true
			}
		}

		var layer []int
		for w := range candidates {
			if !required[w] {
				continue
			}
			ready := true
			for _, u := range incomingOf[w] {
				if !seen[u] {
					ready = false
					break
				}
			}
			if ready {
				layer = append(layer, w)
			}
		}
		if len(layer) == 0 {
			break
		}

		layers = append(layers, layer)
		for _, w := range layer {
			seen[w] = true
		}
	}
	return layers
}

// Forward evaluates the network on input x, returning one value per output key.
// Nodes that are required but unreachable from the inputs retain their default
// zero value; an output node with no reachable predecessor evaluates to
// activation(bias) (spec.md §4.6, "Forward pass").
func (nn *NeuralNetwork) Forward(x []float64) ([]float64, error) {
	if len(x) != len(nn.inputKeys) {
		return nil, errors.Errorf("forward: expected %d inputs, got %d", len(nn.inputKeys), len(x))
	}

	values := make(map[int]float64, len(nn.inputKeys)+len(nn.outputKeys))
	for _, k := range nn.inputKeys {
		values[k] = 0
	}
	for _, k := range nn.outputKeys {
		values[k] = 0
	}
	for i, k := range nn.inputKeys {
		values[k] = x[i]
	}

	for _, node := range nn.evalNodes {
		inputs := make([]float64, len(node.incoming))
		for i, s := range node.incoming {
			inputs[i] = values[s.from] * s.weight
		}
		agg := neatmath.Aggregate(node.aggregation, inputs)
		values[node.nodeID] = neatmath.Activate(node.activation, node.bias+agg)
	}

	out := make([]float64, len(nn.outputKeys))
	for i, k := range nn.outputKeys {
		out[i] = values[k]
	}
	return out, nil
}

// InputSize returns the number of input keys this network expects.
func (nn *NeuralNetwork) InputSize() int {
	return len(nn.inputKeys)
}

// OutputSize returns the number of output keys this network produces.
func (nn *NeuralNetwork) OutputSize() int {
	return len(nn.outputKeys)
}
