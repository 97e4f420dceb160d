package experiment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adipandas/goneat/neat"
	"github.com/adipandas/goneat/neat/genetics"
)

// constantEvaluator always reports the same fitness for every genome; it
// exists only to exercise Run's generation-count stop path, since its
// fitness vector never reaches a meaningful stop_threshold.
type constantEvaluator struct {
	fitness float64
}

func (c constantEvaluator) Evaluate(pop *genetics.Population, render bool) (map[int]float64, error) {
	fitnesses := make(map[int]float64, len(pop.Genomes))
	for gid := range pop.Genomes {
		fitnesses[gid] = c.fitness
	}
	return fitnesses, nil
}

func TestRunStopsAtMaxGenerations(t *testing.T) {
	opts := &neat.Options{
		PopulationSize: 10,
		InputSize:      2,
		OutputSize:     1,
		StopThreshold:  1000,
		MaxGenerations: 3,
		StopCriterion:  neat.StopCriterionMax,
		Task:           "xor",
		Seed:           1,
	}
	best, history, err := Run(context.Background(), constantEvaluator{fitness: 0.5}, opts)
	require.NoError(t, err)
	assert.NotNil(t, best)
	assert.Len(t, history.Max, 4) // generations 1..max+1 before the stop check exits
}

func TestRunStopsAtThreshold(t *testing.T) {
	opts := &neat.Options{
		PopulationSize: 10,
		InputSize:      2,
		OutputSize:     1,
		StopThreshold:  0.5,
		MaxGenerations: 50,
		StopCriterion:  neat.StopCriterionMax,
		Task:           "xor",
		Seed:           1,
	}
	best, history, err := Run(context.Background(), constantEvaluator{fitness: 0.5}, opts)
	require.NoError(t, err)
	assert.NotNil(t, best)
	assert.Len(t, history.Max, 1)
}

func TestRunRespectsContextCancellation(t *testing.T) {
	opts := &neat.Options{
		PopulationSize: 10,
		InputSize:      2,
		OutputSize:     1,
		StopThreshold:  1000,
		MaxGenerations: 1000,
		StopCriterion:  neat.StopCriterionMax,
		Task:           "xor",
		Seed:           1,
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := Run(ctx, constantEvaluator{fitness: 0.1}, opts)
	assert.Error(t, err)
}
