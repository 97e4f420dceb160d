// Package xor implements the XOR fitness function used as the reference
// end-to-end benchmark for the evolutionary loop: a two-input, one-output
// task with no linearly separable solution, classically used to validate
// that a NEAT implementation can grow the hidden structure XOR requires.
package xor

import (
	"github.com/adipandas/goneat/experiment"
	"github.com/adipandas/goneat/neat/genetics"
	"github.com/adipandas/goneat/neat/network"
)

var (
	inputs  = [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	targets = []float64{0, 1, 1, 0}
)

// Evaluator scores each genome by 4 − Σ(output−target)² over the four XOR
// cases, grounded in the reference implementation's xor_eval_population.
type Evaluator struct{}

var _ experiment.Evaluator = Evaluator{}

// Evaluate compiles every genome in pop to a NeuralNetwork and scores it
// against the XOR truth table.
func (Evaluator) Evaluate(pop *genetics.Population, render bool) (map[int]float64, error) {
	fitnesses := make(map[int]float64, len(pop.Genomes))
	for gid, g := range pop.Genomes {
		nn := network.Compile(g)
		fitness := 4.0
		for i, x := range inputs {
			out, err := nn.Forward(x)
			if err != nil {
				return nil, err
			}
			d := out[0] - targets[i]
			fitness -= d * d
		}
		fitnesses[gid] = fitness
	}
	return fitnesses, nil
}
